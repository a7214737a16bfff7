package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type InstitutionType string

const (
	InstitutionSchool  InstitutionType = "School"
	InstitutionCollege InstitutionType = "College"
)

func (t InstitutionType) Valid() bool {
	return t == InstitutionSchool || t == InstitutionCollege
}

func (t *InstitutionType) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = InstitutionType(v)
	case []byte:
		*t = InstitutionType(string(v))
	default:
		return fmt.Errorf("unsupported type for InstitutionType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid InstitutionType: %q", *t)
	}
	return nil
}

func (t InstitutionType) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("invalid InstitutionType: %q", t)
	}
	return string(t), nil
}

// InstitutionModel: schools/colleges referenced by profiles. Names are not
// unique; the same school may be registered twice from the signup form.
type InstitutionModel struct {
	InstitutionID    uuid.UUID       `gorm:"column:institution_id;type:uuid;default:gen_random_uuid();primaryKey" json:"institution_id"`
	InstitutionName  string          `gorm:"column:institution_name;size:255;not null" json:"institution_name" validate:"required,max=255"`
	InstitutionCity  string          `gorm:"column:institution_city;size:100;not null" json:"institution_city" validate:"required,max=100"`
	InstitutionState string          `gorm:"column:institution_state;size:100;not null" json:"institution_state" validate:"required,max=100"`
	InstitutionType  InstitutionType `gorm:"column:institution_type;type:varchar(20);not null" json:"institution_type"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (InstitutionModel) TableName() string {
	return "institutions"
}
