package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrganizationType string

const (
	OrganizationNGO        OrganizationType = "NGO"
	OrganizationGovernment OrganizationType = "Government"
)

func (t OrganizationType) Valid() bool {
	return t == OrganizationNGO || t == OrganizationGovernment
}

func (t *OrganizationType) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = OrganizationType(v)
	case []byte:
		*t = OrganizationType(string(v))
	default:
		return fmt.Errorf("unsupported type for OrganizationType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid OrganizationType: %q", *t)
	}
	return nil
}

func (t OrganizationType) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("invalid OrganizationType: %q", t)
	}
	return string(t), nil
}

// OrganizationModel: the NGO/Government domain record created at signup.
// organization_user_id links back to the account so a logged-in org can
// resolve its own record.
type OrganizationModel struct {
	OrganizationID            uuid.UUID        `gorm:"column:organization_id;type:uuid;default:gen_random_uuid();primaryKey" json:"organization_id"`
	OrganizationUserID        uuid.UUID        `gorm:"column:organization_user_id;type:uuid;not null;uniqueIndex" json:"organization_user_id"`
	OrganizationName          string           `gorm:"column:organization_name;size:255;not null" json:"organization_name" validate:"required,max=255"`
	OrganizationType          OrganizationType `gorm:"column:organization_type;type:varchar(20);not null" json:"organization_type"`
	OrganizationContactPerson string           `gorm:"column:organization_contact_person;size:255;not null" json:"organization_contact_person" validate:"required,max=255"`
	OrganizationEmail         string           `gorm:"column:organization_email;size:255;not null" json:"organization_email" validate:"required,email"`
	OrganizationWebsite       string           `gorm:"column:organization_website;size:255" json:"organization_website" validate:"omitempty,url"`
	OrganizationAddress       string           `gorm:"column:organization_address;type:text;not null" json:"organization_address"`
	OrganizationCity          string           `gorm:"column:organization_city;size:100;not null" json:"organization_city"`
	OrganizationState         string           `gorm:"column:organization_state;size:100;not null" json:"organization_state"`

	User *UserModel `gorm:"foreignKey:OrganizationUserID" json:"user,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}
