// file: internals/features/notifications/outbox/model/notification_outbox_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type NotificationChannelEnum string

const (
	ChannelEmail    NotificationChannelEnum = "email"
	ChannelSMS      NotificationChannelEnum = "sms"
	ChannelPush     NotificationChannelEnum = "push"
	ChannelWhatsApp NotificationChannelEnum = "whatsapp"
)

type OutboxStatusEnum string

const (
	OutboxPending OutboxStatusEnum = "pending"
	OutboxSent    OutboxStatusEnum = "sent"
	OutboxFailed  OutboxStatusEnum = "failed"
)

// NotificationOutboxModel is a queued notification-dispatch request. Rows are
// claimed by the cron dispatcher once due; delivery is best-effort and never
// blocks the schedule mutation that enqueued it.
type NotificationOutboxModel struct {
	NotificationOutboxID uuid.UUID `gorm:"column:notification_outbox_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_outbox_id"`

	NotificationOutboxTempleID uuid.UUID `gorm:"column:notification_outbox_temple_id;type:uuid;not null" json:"notification_outbox_temple_id"`

	NotificationOutboxChannel    NotificationChannelEnum `gorm:"column:notification_outbox_channel;type:varchar(20);not null" json:"notification_outbox_channel"`
	NotificationOutboxRecipients pq.StringArray          `gorm:"column:notification_outbox_recipients;type:text[]" json:"notification_outbox_recipients"`
	NotificationOutboxSubject    *string                 `gorm:"column:notification_outbox_subject;type:varchar(255)" json:"notification_outbox_subject,omitempty"`
	NotificationOutboxBody       string                  `gorm:"column:notification_outbox_body;type:text;not null" json:"notification_outbox_body"`

	NotificationOutboxSendAt  time.Time        `gorm:"column:notification_outbox_send_at;type:timestamptz;not null;index" json:"notification_outbox_send_at"`
	NotificationOutboxStatus  OutboxStatusEnum `gorm:"column:notification_outbox_status;type:varchar(10);not null;default:'pending';index" json:"notification_outbox_status"`
	NotificationOutboxAttempt int              `gorm:"column:notification_outbox_attempt;not null;default:0" json:"notification_outbox_attempt"`
	NotificationOutboxError   *string          `gorm:"column:notification_outbox_error;type:text" json:"notification_outbox_error,omitempty"`

	// free-form origin context ("exception", "status_update", "broadcast", ids)
	NotificationOutboxContext datatypes.JSONMap `gorm:"column:notification_outbox_context;type:jsonb" json:"notification_outbox_context,omitempty"`

	NotificationOutboxCreatedAt time.Time `gorm:"column:notification_outbox_created_at;type:timestamptz;not null;autoCreateTime" json:"notification_outbox_created_at"`
	NotificationOutboxUpdatedAt time.Time `gorm:"column:notification_outbox_updated_at;type:timestamptz;not null;autoUpdateTime" json:"notification_outbox_updated_at"`
}

func (NotificationOutboxModel) TableName() string { return "notification_outbox" }
