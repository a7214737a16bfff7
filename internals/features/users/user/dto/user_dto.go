// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ecolearn_backend/internals/features/users/user/model"
)

/* =============================================================================
   UPDATE REQUESTS (partial; nil = keep current value)
============================================================================= */

type UpdateUserRequest struct {
	FirstName *string    `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string    `json:"last_name,omitempty" validate:"omitempty,max=100"`
	ContactNo *string    `json:"contact_no,omitempty" validate:"omitempty,max=15"`
	DOB       *time.Time `json:"dob,omitempty"`
	Address   *string    `json:"address,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.FirstName != nil {
		v := strings.TrimSpace(*r.FirstName)
		r.FirstName = &v
	}
	if r.LastName != nil {
		v := strings.TrimSpace(*r.LastName)
		r.LastName = &v
	}
	if r.ContactNo != nil {
		v := strings.TrimSpace(*r.ContactNo)
		r.ContactNo = &v
	}
}

func (r *UpdateUserRequest) ApplyToModel(u *model.UserModel) {
	if r.FirstName != nil {
		u.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		u.LastName = *r.LastName
	}
	if r.ContactNo != nil {
		u.ContactNo = *r.ContactNo
	}
	if r.DOB != nil {
		u.DOB = r.DOB
	}
	if r.Address != nil {
		u.Address = *r.Address
	}
}

type UpdateStudentProfileRequest struct {
	EnrollmentNo *string `json:"enrollment_no,omitempty" validate:"omitempty,max=50"`
	Grade        *int    `json:"grade,omitempty" validate:"omitempty,min=1,max=12"`
	Stream       *string `json:"stream,omitempty" validate:"omitempty,max=100"`
	CurrentYear  *int    `json:"current_year,omitempty" validate:"omitempty,min=1,max=10"`
	Course       *string `json:"course,omitempty" validate:"omitempty,max=100"`
	FieldOfStudy *string `json:"field_of_study,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdateStudentProfileRequest) ApplyToModel(p *model.StudentProfileModel) {
	if r.EnrollmentNo != nil {
		p.StudentProfileEnrollmentNo = strings.TrimSpace(*r.EnrollmentNo)
	}
	if r.Grade != nil {
		p.StudentProfileGrade = r.Grade
	}
	if r.Stream != nil {
		p.StudentProfileStream = *r.Stream
	}
	if r.CurrentYear != nil {
		p.StudentProfileCurrentYear = r.CurrentYear
	}
	if r.Course != nil {
		p.StudentProfileCourse = *r.Course
	}
	if r.FieldOfStudy != nil {
		p.StudentProfileFieldOfStudy = *r.FieldOfStudy
	}
}

type UpdateTeacherProfileRequest struct {
	Designation *string `json:"designation,omitempty" validate:"omitempty,max=100"`
	Department  *string `json:"department,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdateTeacherProfileRequest) ApplyToModel(p *model.TeacherProfileModel) {
	if r.Designation != nil {
		p.TeacherProfileDesignation = strings.TrimSpace(*r.Designation)
	}
	if r.Department != nil {
		p.TeacherProfileDepartment = strings.TrimSpace(*r.Department)
	}
}

type UpdateOrganizationRequest struct {
	ContactPerson *string `json:"contact_person,omitempty" validate:"omitempty,max=255"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Website       *string `json:"website,omitempty" validate:"omitempty,url"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State         *string `json:"state,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdateOrganizationRequest) ApplyToModel(o *model.OrganizationModel) {
	if r.ContactPerson != nil {
		o.OrganizationContactPerson = strings.TrimSpace(*r.ContactPerson)
	}
	if r.Email != nil {
		o.OrganizationEmail = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Website != nil {
		o.OrganizationWebsite = strings.TrimSpace(*r.Website)
	}
	if r.Address != nil {
		o.OrganizationAddress = *r.Address
	}
	if r.City != nil {
		o.OrganizationCity = *r.City
	}
	if r.State != nil {
		o.OrganizationState = *r.State
	}
}

/* =============================================================================
   RESPONSES
============================================================================= */

// ProfileResponse is the combined view: identity plus whichever role record
// the account carries.
type ProfileResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserName  string     `json:"user_name"`
	Slug      string     `json:"slug"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	ContactNo string     `json:"contact_no,omitempty"`
	DOB       *time.Time `json:"dob,omitempty"`
	Address   string     `json:"address,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	Student      *model.StudentProfileModel `json:"student,omitempty"`
	Teacher      *model.TeacherProfileModel `json:"teacher,omitempty"`
	Organization *model.OrganizationModel   `json:"organization,omitempty"`
}

func NewProfileResponse(u *model.UserModel) ProfileResponse {
	return ProfileResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Slug:      u.Slug,
		Email:     u.Email,
		Role:      u.Role.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		ContactNo: u.ContactNo,
		DOB:       u.DOB,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}
