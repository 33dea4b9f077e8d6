// file: internals/features/rituals/schedule/model/ritual_status_update_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"templeku_backend/internals/helpers/dbtime"
)

// RitualStatusUpdateModel is one row of the append-only status history for an
// occurrence, keyed by (series id, occurrence date). Rows are never updated
// or deleted; the newest row per key is the occurrence's current status.
type RitualStatusUpdateModel struct {
	RitualStatusUpdateID uuid.UUID `gorm:"column:ritual_status_update_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"ritual_status_update_id"`

	RitualStatusUpdateTempleID       uuid.UUID `gorm:"column:ritual_status_update_temple_id;type:uuid;not null" json:"ritual_status_update_temple_id"`
	RitualStatusUpdateSeriesID       uuid.UUID `gorm:"column:ritual_status_update_series_id;type:uuid;not null;index:idx_ritual_status_update_key" json:"ritual_status_update_series_id"`
	RitualStatusUpdateOccurrenceDate time.Time `gorm:"column:ritual_status_update_occurrence_date;type:date;not null;index:idx_ritual_status_update_key" json:"ritual_status_update_occurrence_date"`

	RitualStatusUpdateNewStatus string      `gorm:"column:ritual_status_update_new_status;type:varchar(20);not null" json:"ritual_status_update_new_status"`
	RitualStatusUpdateDelayedTo *dbtime.Tod `gorm:"column:ritual_status_update_delayed_to;type:time" json:"ritual_status_update_delayed_to,omitempty"`
	RitualStatusUpdateReason    *string     `gorm:"column:ritual_status_update_reason;type:text" json:"ritual_status_update_reason,omitempty"`
	RitualStatusUpdateNotify    bool        `gorm:"column:ritual_status_update_notify;not null;default:false" json:"ritual_status_update_notify"`

	RitualStatusUpdateCreatedBy *uuid.UUID `gorm:"column:ritual_status_update_created_by;type:uuid" json:"ritual_status_update_created_by,omitempty"`
	RitualStatusUpdateCreatedAt time.Time  `gorm:"column:ritual_status_update_created_at;type:timestamptz;not null;autoCreateTime" json:"ritual_status_update_created_at"`
}

func (RitualStatusUpdateModel) TableName() string { return "ritual_status_updates" }
