// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "ecolearn_backend/internals/features/users/user/model"
)

/* =============================================================================
   REGISTER
============================================================================= */

// StudentBlock carries the profile fields for student roles. Grade/stream
// are for school students, current_year/course/field_of_study for college.
type StudentBlock struct {
	InstitutionName  string `json:"institution_name" validate:"required,max=255"`
	InstitutionCity  string `json:"institution_city" validate:"required,max=100"`
	InstitutionState string `json:"institution_state" validate:"required,max=100"`
	EnrollmentNo     string `json:"enrollment_no" validate:"required,max=50"`
	Grade            *int   `json:"grade,omitempty" validate:"omitempty,min=1,max=12"`
	Stream           string `json:"stream,omitempty" validate:"omitempty,max=100"`
	CurrentYear      *int   `json:"current_year,omitempty" validate:"omitempty,min=1,max=10"`
	Course           string `json:"course,omitempty" validate:"omitempty,max=100"`
	FieldOfStudy     string `json:"field_of_study,omitempty" validate:"omitempty,max=100"`
	Gender           string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

type TeacherBlock struct {
	InstitutionName  string `json:"institution_name" validate:"required,max=255"`
	InstitutionCity  string `json:"institution_city" validate:"required,max=100"`
	InstitutionState string `json:"institution_state" validate:"required,max=100"`
	TeacherID        string `json:"teacher_id" validate:"required,max=50"`
	Designation      string `json:"designation" validate:"required,max=100"`
	Department       string `json:"department,omitempty" validate:"omitempty,max=100"`
	Gender           string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

type OrganizationBlock struct {
	Name          string `json:"name" validate:"required,max=255"`
	ContactPerson string `json:"contact_person" validate:"required,max=255"`
	Email         string `json:"email" validate:"required,email"`
	Website       string `json:"website,omitempty" validate:"omitempty,url"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required,max=100"`
	State         string `json:"state" validate:"required,max=100"`
}

// RegisterRequest is the single signup payload; exactly one role block must
// match the requested role.
type RegisterRequest struct {
	UserName        string `json:"user_name" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Role            string `json:"role" validate:"required"`

	FirstName string     `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  string     `json:"last_name,omitempty" validate:"omitempty,max=100"`
	ContactNo string     `json:"contact_no,omitempty" validate:"omitempty,max=15"`
	DOB       *time.Time `json:"dob,omitempty"`
	Address   string     `json:"address,omitempty"`

	Student      *StudentBlock      `json:"student,omitempty"`
	Teacher      *TeacherBlock      `json:"teacher,omitempty"`
	Organization *OrganizationBlock `json:"organization,omitempty"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.ContactNo = strings.TrimSpace(r.ContactNo)
	r.Address = strings.TrimSpace(r.Address)
	if r.Student != nil {
		r.Student.InstitutionName = strings.TrimSpace(r.Student.InstitutionName)
		r.Student.InstitutionCity = strings.TrimSpace(r.Student.InstitutionCity)
		r.Student.InstitutionState = strings.TrimSpace(r.Student.InstitutionState)
		r.Student.EnrollmentNo = strings.TrimSpace(r.Student.EnrollmentNo)
	}
	if r.Teacher != nil {
		r.Teacher.InstitutionName = strings.TrimSpace(r.Teacher.InstitutionName)
		r.Teacher.InstitutionCity = strings.TrimSpace(r.Teacher.InstitutionCity)
		r.Teacher.InstitutionState = strings.TrimSpace(r.Teacher.InstitutionState)
		r.Teacher.TeacherID = strings.TrimSpace(r.Teacher.TeacherID)
	}
	if r.Organization != nil {
		r.Organization.Name = strings.TrimSpace(r.Organization.Name)
		r.Organization.Email = strings.ToLower(strings.TrimSpace(r.Organization.Email))
		r.Organization.ContactPerson = strings.TrimSpace(r.Organization.ContactPerson)
	}
}

// ToUserModel maps the shared identity fields; password must be hashed by the
// caller first.
func (r *RegisterRequest) ToUserModel(hashedPassword string) *userModel.UserModel {
	return &userModel.UserModel{
		UserName:  r.UserName,
		Email:     r.Email,
		Password:  hashedPassword,
		Role:      userModel.UserRole(r.Role),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		ContactNo: r.ContactNo,
		DOB:       r.DOB,
		Address:   r.Address,
		IsActive:  true,
	}
}

/* =============================================================================
   LOGIN
============================================================================= */

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // username or email
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role,omitempty"` // when sent, must match the stored role
}

func (r *LoginRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
	r.Role = strings.TrimSpace(r.Role)
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* =============================================================================
   RESPONSES
============================================================================= */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Slug      string    `json:"slug"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
}

func NewUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Slug:      u.Slug,
		Email:     u.Email,
		Role:      u.Role.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
	DailyReward *int         `json:"daily_reward,omitempty"` // points granted on this login, absent when already claimed today
}
