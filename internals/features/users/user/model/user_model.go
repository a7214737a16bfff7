package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "ecolearn_backend/internals/helpers"
)

/* =============================================================================
   ENUM-like: user role
============================================================================= */

type UserRole string

const (
	RoleSchoolStudent  UserRole = "school_student"
	RoleCollegeStudent UserRole = "college_student"
	RoleSchoolTeacher  UserRole = "school_teacher"
	RoleCollegeTeacher UserRole = "college_teacher"
	RoleNGO            UserRole = "ngo"
	RoleGovernment     UserRole = "government"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) Valid() bool {
	switch r {
	case RoleSchoolStudent, RoleCollegeStudent, RoleSchoolTeacher, RoleCollegeTeacher, RoleNGO, RoleGovernment:
		return true
	default:
		return false
	}
}

func (r UserRole) IsStudent() bool {
	return r == RoleSchoolStudent || r == RoleCollegeStudent
}

func (r UserRole) IsTeacher() bool {
	return r == RoleSchoolTeacher || r == RoleCollegeTeacher
}

func (r UserRole) IsOrganization() bool {
	return r == RoleNGO || r == RoleGovernment
}

func (r *UserRole) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*r = ""
		return nil
	case string:
		*r = UserRole(v)
	case []byte:
		*r = UserRole(string(v))
	default:
		return fmt.Errorf("unsupported type for UserRole: %T", value)
	}
	if !r.Valid() {
		return fmt.Errorf("invalid UserRole: %q", *r)
	}
	return nil
}

func (r UserRole) Value() (driver.Value, error) {
	if r == "" {
		return nil, nil
	}
	if !r.Valid() {
		return nil, fmt.Errorf("invalid UserRole: %q", r)
	}
	return string(r), nil
}

/* =============================================================================
   MODEL: users
============================================================================= */

// UserModel is the root identity. The slug is derived from the username once
// at first save and never recomputed afterwards.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;uniqueIndex;not null" json:"user_name" validate:"required,min=3,max=50"`
	Slug      string    `gorm:"size:60;uniqueIndex;not null" json:"slug"`
	Email     string    `gorm:"size:255;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role      UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	FirstName string    `gorm:"size:100" json:"first_name"`
	LastName  string    `gorm:"size:100" json:"last_name"`
	ContactNo string    `gorm:"size:15" json:"contact_no"`
	DOB       *time.Time `gorm:"type:date" json:"dob,omitempty"`
	Address   string    `gorm:"type:text" json:"address"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate fills the slug exactly once; existing slugs are immutable.
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Slug != "" {
		return nil
	}
	base := helper.Slugify(u.UserName, 50)
	slug, err := helper.EnsureUniqueSlug(tx, "users", "slug", base)
	if err != nil {
		return err
	}
	u.Slug = slug
	return nil
}
