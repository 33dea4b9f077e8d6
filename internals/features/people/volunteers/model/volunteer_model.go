// file: internals/features/people/volunteers/model/volunteer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type VolunteerStatusEnum string

const (
	VolunteerActive   VolunteerStatusEnum = "active"
	VolunteerInactive VolunteerStatusEnum = "inactive"
)

type VolunteerModel struct {
	VolunteerID       uuid.UUID `gorm:"column:volunteer_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"volunteer_id"`
	VolunteerTempleID uuid.UUID `gorm:"column:volunteer_temple_id;type:uuid;not null;index" json:"volunteer_temple_id"`

	VolunteerName  string `gorm:"column:volunteer_name;type:varchar(120);not null" json:"volunteer_name"`
	VolunteerPhone string `gorm:"column:volunteer_phone;type:varchar(30)" json:"volunteer_phone"`
	VolunteerEmail string `gorm:"column:volunteer_email;type:varchar(255)" json:"volunteer_email"`

	VolunteerSkills        pq.StringArray `gorm:"column:volunteer_skills;type:text[]" json:"volunteer_skills"`
	VolunteerAvailableDays pq.StringArray `gorm:"column:volunteer_available_days;type:text[]" json:"volunteer_available_days"`

	VolunteerStatus VolunteerStatusEnum `gorm:"column:volunteer_status;type:varchar(20);not null;default:'active'" json:"volunteer_status"`
	VolunteerNotes  string              `gorm:"column:volunteer_notes;type:text" json:"volunteer_notes"`

	VolunteerCreatedBy *uuid.UUID     `gorm:"column:volunteer_created_by;type:uuid" json:"volunteer_created_by,omitempty"`
	VolunteerCreatedAt time.Time      `gorm:"column:volunteer_created_at;type:timestamptz;not null;autoCreateTime" json:"volunteer_created_at"`
	VolunteerUpdatedAt time.Time      `gorm:"column:volunteer_updated_at;type:timestamptz;not null;autoUpdateTime" json:"volunteer_updated_at"`
	VolunteerDeletedAt gorm.DeletedAt `gorm:"column:volunteer_deleted_at;index" json:"volunteer_deleted_at,omitempty"`
}

func (VolunteerModel) TableName() string { return "volunteers" }
