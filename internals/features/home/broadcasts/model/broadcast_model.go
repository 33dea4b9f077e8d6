// file: internals/features/home/broadcasts/model/broadcast_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type BroadcastStatusEnum string

const (
	BroadcastQueued BroadcastStatusEnum = "queued"
	BroadcastSent   BroadcastStatusEnum = "sent"
)

// BroadcastModel records one manual announcement blast. The actual delivery
// rows live in the notification outbox; this table is the audit trail the
// admin screen lists.
type BroadcastModel struct {
	BroadcastID       uuid.UUID `gorm:"column:broadcast_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"broadcast_id"`
	BroadcastTempleID uuid.UUID `gorm:"column:broadcast_temple_id;type:uuid;not null;index" json:"broadcast_temple_id"`

	BroadcastTemplateID *uuid.UUID `gorm:"column:broadcast_template_id;type:uuid" json:"broadcast_template_id,omitempty"`

	BroadcastChannel    string         `gorm:"column:broadcast_channel;type:varchar(20);not null" json:"broadcast_channel"`
	BroadcastRecipients pq.StringArray `gorm:"column:broadcast_recipients;type:text[];not null" json:"broadcast_recipients"`
	BroadcastSubject    string         `gorm:"column:broadcast_subject;type:varchar(255)" json:"broadcast_subject"`
	BroadcastBody       string         `gorm:"column:broadcast_body;type:text;not null" json:"broadcast_body"`

	BroadcastStatus BroadcastStatusEnum `gorm:"column:broadcast_status;type:varchar(20);not null;default:'queued'" json:"broadcast_status"`
	BroadcastSendAt time.Time           `gorm:"column:broadcast_send_at;type:timestamptz;not null" json:"broadcast_send_at"`

	BroadcastCreatedBy *uuid.UUID     `gorm:"column:broadcast_created_by;type:uuid" json:"broadcast_created_by,omitempty"`
	BroadcastCreatedAt time.Time      `gorm:"column:broadcast_created_at;type:timestamptz;not null;autoCreateTime" json:"broadcast_created_at"`
	BroadcastDeletedAt gorm.DeletedAt `gorm:"column:broadcast_deleted_at;index" json:"broadcast_deleted_at,omitempty"`
}

func (BroadcastModel) TableName() string { return "broadcasts" }
