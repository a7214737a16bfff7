package constants

import "fmt"

// Role values stored on users.role
const (
	RoleSchoolStudent  = "school_student"
	RoleCollegeStudent = "college_student"
	RoleSchoolTeacher  = "school_teacher"
	RoleCollegeTeacher = "college_teacher"
	RoleNGO            = "ngo"
	RoleGovernment     = "government"
)

// Error message templates for role gates
const (
	ErrOnlyStudentsCanAccess  = "❌ Only students may access %s."
	ErrOnlyTeachersCanAccess  = "❌ Only teachers may access %s."
	ErrOnlyVerifiersCanAccess = "❌ Only teachers, NGOs, or government accounts may access %s."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorVerifier(feature string) string {
	return fmt.Sprintf(ErrOnlyVerifiersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSchoolStudent,
		RoleCollegeStudent,
		RoleSchoolTeacher,
		RoleCollegeTeacher,
		RoleNGO,
		RoleGovernment,
	}

	StudentRoles = []string{
		RoleSchoolStudent,
		RoleCollegeStudent,
	}

	TeacherRoles = []string{
		RoleSchoolTeacher,
		RoleCollegeTeacher,
	}

	OrganizationRoles = []string{
		RoleNGO,
		RoleGovernment,
	}

	// Roles allowed to verify real-world task submissions.
	VerifierRoles = []string{
		RoleSchoolTeacher,
		RoleCollegeTeacher,
		RoleNGO,
		RoleGovernment,
	}
)

func IsStudentRole(role string) bool {
	for _, r := range StudentRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsTeacherRole(role string) bool {
	for _, r := range TeacherRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsOrganizationRole(role string) bool {
	for _, r := range OrganizationRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
