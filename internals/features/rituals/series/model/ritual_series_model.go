// file: internals/features/rituals/series/model/ritual_series_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"templeku_backend/internals/helpers/dbtime"
)

type SeriesStatusEnum string

const (
	SeriesActive    SeriesStatusEnum = "active"
	SeriesInactive  SeriesStatusEnum = "inactive"
	SeriesDraft     SeriesStatusEnum = "draft"
	SeriesCancelled SeriesStatusEnum = "cancelled"
)

type SeriesVisibilityEnum string

const (
	VisibilityPublic    SeriesVisibilityEnum = "public"
	VisibilityCommunity SeriesVisibilityEnum = "community"
	VisibilityPrivate   SeriesVisibilityEnum = "private"
)

type RitualSeriesModel struct {
	RitualSeriesID uuid.UUID `gorm:"column:ritual_series_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"ritual_series_id"`

	// tenant scope
	RitualSeriesTempleID uuid.UUID `gorm:"column:ritual_series_temple_id;type:uuid;not null" json:"ritual_series_temple_id"`

	RitualSeriesTitle       string  `gorm:"column:ritual_series_title;type:varchar(255);not null" json:"ritual_series_title"`
	RitualSeriesSlug        *string `gorm:"column:ritual_series_slug;type:varchar(160)" json:"ritual_series_slug,omitempty"`
	RitualSeriesDescription string  `gorm:"column:ritual_series_description;type:text" json:"ritual_series_description"`
	RitualSeriesRitualType  string  `gorm:"column:ritual_series_ritual_type;type:varchar(50);not null" json:"ritual_series_ritual_type"`
	RitualSeriesDeity       string  `gorm:"column:ritual_series_deity;type:varchar(120)" json:"ritual_series_deity"`
	RitualSeriesLocation    string  `gorm:"column:ritual_series_location;type:varchar(255)" json:"ritual_series_location"`
	RitualSeriesOfficiant   string  `gorm:"column:ritual_series_officiant;type:varchar(255)" json:"ritual_series_officiant"`

	RitualSeriesVisibility SeriesVisibilityEnum `gorm:"column:ritual_series_visibility;type:varchar(20);not null;default:'public'" json:"ritual_series_visibility"`
	RitualSeriesStatus     SeriesStatusEnum     `gorm:"column:ritual_series_status;type:varchar(20);not null;default:'draft'" json:"ritual_series_status"`

	RitualSeriesStartTime       dbtime.Tod `gorm:"column:ritual_series_start_time;type:time;not null" json:"ritual_series_start_time"`
	RitualSeriesDurationMinutes int        `gorm:"column:ritual_series_duration_minutes;not null" json:"ritual_series_duration_minutes"`

	// capacity
	RitualSeriesMaxParticipants      *int `gorm:"column:ritual_series_max_participants" json:"ritual_series_max_participants,omitempty"`
	RitualSeriesRegistrationRequired bool `gorm:"column:ritual_series_registration_required;not null;default:false" json:"ritual_series_registration_required"`

	// recurrence (owned exclusively by this series)
	RitualSeriesRecurrenceType     string         `gorm:"column:ritual_series_recurrence_type;type:varchar(10);not null;default:'none'" json:"ritual_series_recurrence_type"`
	RitualSeriesRecurrenceInterval int            `gorm:"column:ritual_series_recurrence_interval;not null;default:1" json:"ritual_series_recurrence_interval"`
	RitualSeriesDaysOfWeek         pq.StringArray `gorm:"column:ritual_series_days_of_week;type:text[]" json:"ritual_series_days_of_week"`
	RitualSeriesWeekOfMonth        *string        `gorm:"column:ritual_series_week_of_month;type:varchar(10)" json:"ritual_series_week_of_month,omitempty"`
	RitualSeriesStartDate          time.Time      `gorm:"column:ritual_series_start_date;type:date;not null" json:"ritual_series_start_date"`
	RitualSeriesEndMode            string         `gorm:"column:ritual_series_end_mode;type:varchar(10);not null;default:'never'" json:"ritual_series_end_mode"`
	RitualSeriesEndDate            *time.Time     `gorm:"column:ritual_series_end_date;type:date" json:"ritual_series_end_date,omitempty"`
	RitualSeriesCount              *int           `gorm:"column:ritual_series_count" json:"ritual_series_count,omitempty"`

	// audit
	RitualSeriesCreatedBy      *uuid.UUID     `gorm:"column:ritual_series_created_by;type:uuid" json:"ritual_series_created_by,omitempty"`
	RitualSeriesLastModifiedBy *uuid.UUID     `gorm:"column:ritual_series_last_modified_by;type:uuid" json:"ritual_series_last_modified_by,omitempty"`
	RitualSeriesCreatedAt      time.Time      `gorm:"column:ritual_series_created_at;type:timestamptz;not null;autoCreateTime" json:"ritual_series_created_at"`
	RitualSeriesUpdatedAt      time.Time      `gorm:"column:ritual_series_updated_at;type:timestamptz;not null;autoUpdateTime" json:"ritual_series_updated_at"`
	RitualSeriesDeletedAt      gorm.DeletedAt `gorm:"column:ritual_series_deleted_at;index" json:"ritual_series_deleted_at,omitempty"`
}

func (RitualSeriesModel) TableName() string { return "ritual_series" }
