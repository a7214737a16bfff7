package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

func (g *Gender) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*g = ""
		return nil
	case string:
		*g = Gender(v)
	case []byte:
		*g = Gender(string(v))
	default:
		return fmt.Errorf("unsupported type for Gender: %T", value)
	}
	if !g.Valid() {
		return fmt.Errorf("invalid Gender: %q", *g)
	}
	return nil
}

func (g Gender) Value() (driver.Value, error) {
	if g == "" {
		return nil, nil
	}
	if !g.Valid() {
		return nil, fmt.Errorf("invalid Gender: %q", g)
	}
	return string(g), nil
}

// StudentProfileModel: exactly one per student-role user. Grade/stream apply
// to school students, course/current_year to college students.
type StudentProfileModel struct {
	StudentProfileID            uuid.UUID `gorm:"column:student_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_profile_id"`
	StudentProfileUserID        uuid.UUID `gorm:"column:student_profile_user_id;type:uuid;not null;uniqueIndex" json:"student_profile_user_id"`
	StudentProfileInstitutionID uuid.UUID `gorm:"column:student_profile_institution_id;type:uuid;not null;index" json:"student_profile_institution_id"`
	StudentProfileEnrollmentNo  string    `gorm:"column:student_profile_enrollment_no;size:50;not null" json:"student_profile_enrollment_no" validate:"required,max=50"`
	StudentProfileGrade         *int      `gorm:"column:student_profile_grade" json:"student_profile_grade,omitempty" validate:"omitempty,min=1,max=12"`
	StudentProfileStream        string    `gorm:"column:student_profile_stream;size:100" json:"student_profile_stream"`
	StudentProfileCurrentYear   *int      `gorm:"column:student_profile_current_year" json:"student_profile_current_year,omitempty"`
	StudentProfileCourse        string    `gorm:"column:student_profile_course;size:100" json:"student_profile_course"`
	StudentProfileFieldOfStudy  string    `gorm:"column:student_profile_field_of_study;size:100" json:"student_profile_field_of_study"`
	StudentProfileGender        Gender    `gorm:"column:student_profile_gender;type:varchar(7);not null;default:'male'" json:"student_profile_gender"`

	User        *UserModel        `gorm:"foreignKey:StudentProfileUserID" json:"user,omitempty"`
	Institution *InstitutionModel `gorm:"foreignKey:StudentProfileInstitutionID" json:"institution,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentProfileModel) TableName() string {
	return "student_profiles"
}
