package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherProfileModel: exactly one per teacher-role user.
type TeacherProfileModel struct {
	TeacherProfileID            uuid.UUID `gorm:"column:teacher_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_profile_id"`
	TeacherProfileUserID        uuid.UUID `gorm:"column:teacher_profile_user_id;type:uuid;not null;uniqueIndex" json:"teacher_profile_user_id"`
	TeacherProfileInstitutionID uuid.UUID `gorm:"column:teacher_profile_institution_id;type:uuid;not null;index" json:"teacher_profile_institution_id"`
	TeacherProfileTeacherID     string    `gorm:"column:teacher_profile_teacher_id;size:50;not null" json:"teacher_profile_teacher_id" validate:"required,max=50"`
	TeacherProfileDesignation   string    `gorm:"column:teacher_profile_designation;size:100;not null" json:"teacher_profile_designation" validate:"required,max=100"`
	TeacherProfileDepartment    string    `gorm:"column:teacher_profile_department;size:100" json:"teacher_profile_department"`
	TeacherProfileGender        Gender    `gorm:"column:teacher_profile_gender;type:varchar(7);not null;default:'male'" json:"teacher_profile_gender"`

	User        *UserModel        `gorm:"foreignKey:TeacherProfileUserID" json:"user,omitempty"`
	Institution *InstitutionModel `gorm:"foreignKey:TeacherProfileInstitutionID" json:"institution,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TeacherProfileModel) TableName() string {
	return "teacher_profiles"
}
