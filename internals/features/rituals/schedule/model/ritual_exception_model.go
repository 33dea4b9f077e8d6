// file: internals/features/rituals/schedule/model/ritual_exception_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"templeku_backend/internals/helpers/dbtime"
)

type ExceptionKindEnum string

const (
	ExceptionKindCancel          ExceptionKindEnum = "cancel"
	ExceptionKindReschedule      ExceptionKindEnum = "reschedule"
	ExceptionKindChangeOfficiant ExceptionKindEnum = "change_officiant"
	ExceptionKindChangeLocation  ExceptionKindEnum = "change_location"
)

type NotifyTimingEnum string

const (
	NotifyImmediate    NotifyTimingEnum = "immediate"
	NotifyOneHour      NotifyTimingEnum = "1h-before"
	NotifyTwentyFourHr NotifyTimingEnum = "24h-before"
	NotifyManual       NotifyTimingEnum = "manual"
)

// RitualExceptionModel is one override of one occurrence, keyed uniquely by
// (series id, original date). A second write for the same key replaces the
// first (ON CONFLICT upsert, last-write-wins).
type RitualExceptionModel struct {
	RitualExceptionID uuid.UUID `gorm:"column:ritual_exception_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"ritual_exception_id"`

	RitualExceptionTempleID     uuid.UUID `gorm:"column:ritual_exception_temple_id;type:uuid;not null" json:"ritual_exception_temple_id"`
	RitualExceptionSeriesID     uuid.UUID `gorm:"column:ritual_exception_series_id;type:uuid;not null;uniqueIndex:uq_ritual_exception_key" json:"ritual_exception_series_id"`
	RitualExceptionOriginalDate time.Time `gorm:"column:ritual_exception_original_date;type:date;not null;uniqueIndex:uq_ritual_exception_key" json:"ritual_exception_original_date"`

	RitualExceptionKind   ExceptionKindEnum `gorm:"column:ritual_exception_kind;type:varchar(20);not null" json:"ritual_exception_kind"`
	RitualExceptionReason string            `gorm:"column:ritual_exception_reason;type:text;not null" json:"ritual_exception_reason"`

	// kind-dependent fields; exactly the ones required by kind are set
	RitualExceptionNewDate      *time.Time  `gorm:"column:ritual_exception_new_date;type:date" json:"ritual_exception_new_date,omitempty"`
	RitualExceptionNewStartTime *dbtime.Tod `gorm:"column:ritual_exception_new_start_time;type:time" json:"ritual_exception_new_start_time,omitempty"`
	RitualExceptionNewOfficiant *string     `gorm:"column:ritual_exception_new_officiant;type:varchar(255)" json:"ritual_exception_new_officiant,omitempty"`
	RitualExceptionNewLocation  *string     `gorm:"column:ritual_exception_new_location;type:varchar(255)" json:"ritual_exception_new_location,omitempty"`

	// notification preferences (dispatch is best-effort, decoupled)
	RitualExceptionNotifySubscribers    bool             `gorm:"column:ritual_exception_notify_subscribers;not null;default:false" json:"ritual_exception_notify_subscribers"`
	RitualExceptionBroadcastToCommunity bool             `gorm:"column:ritual_exception_broadcast_to_community;not null;default:false" json:"ritual_exception_broadcast_to_community"`
	RitualExceptionNotifyTiming         NotifyTimingEnum `gorm:"column:ritual_exception_notify_timing;type:varchar(20);not null;default:'immediate'" json:"ritual_exception_notify_timing"`
	RitualExceptionCustomMessage        *string          `gorm:"column:ritual_exception_custom_message;type:text" json:"ritual_exception_custom_message,omitempty"`

	RitualExceptionCreatedBy *uuid.UUID `gorm:"column:ritual_exception_created_by;type:uuid" json:"ritual_exception_created_by,omitempty"`
	RitualExceptionCreatedAt time.Time  `gorm:"column:ritual_exception_created_at;type:timestamptz;not null;autoCreateTime" json:"ritual_exception_created_at"`
	RitualExceptionUpdatedAt time.Time  `gorm:"column:ritual_exception_updated_at;type:timestamptz;not null;autoUpdateTime" json:"ritual_exception_updated_at"`
}

func (RitualExceptionModel) TableName() string { return "ritual_schedule_exceptions" }
