// file: internals/features/notifications/outbox/service/dispatcher.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	outboxModel "templeku_backend/internals/features/notifications/outbox/model"
)

const (
	dispatchBatchSize = 50
	maxAttempts       = 3
)

// Outbox enqueues notification requests and drains due rows on a cron
// schedule. Delivery is best-effort: a failed dispatch is logged and retried
// up to maxAttempts, and never affects the mutation that enqueued it.
type Outbox struct {
	DB       *gorm.DB
	Notifier Notifier
	cron     *cron.Cron
}

func NewOutbox(db *gorm.DB, notifier Notifier) *Outbox {
	return &Outbox{DB: db, Notifier: notifier}
}

// EnqueueOptions describes one notification to queue.
type EnqueueOptions struct {
	TempleID   uuid.UUID
	Channel    outboxModel.NotificationChannelEnum
	Recipients []string
	Subject    string
	Body       string
	SendAt     time.Time // zero = now
	Context    datatypes.JSONMap
}

// Enqueue inserts one pending outbox row.
func (o *Outbox) Enqueue(ctx context.Context, opt EnqueueOptions) error {
	sendAt := opt.SendAt
	if sendAt.IsZero() {
		sendAt = time.Now()
	}
	var subject *string
	if opt.Subject != "" {
		subject = &opt.Subject
	}
	row := outboxModel.NotificationOutboxModel{
		NotificationOutboxTempleID:   opt.TempleID,
		NotificationOutboxChannel:    opt.Channel,
		NotificationOutboxRecipients: opt.Recipients,
		NotificationOutboxSubject:    subject,
		NotificationOutboxBody:       opt.Body,
		NotificationOutboxSendAt:     sendAt,
		NotificationOutboxStatus:     outboxModel.OutboxPending,
		NotificationOutboxContext:    opt.Context,
	}
	return o.DB.WithContext(ctx).Create(&row).Error
}

// StartDispatcher drains the outbox every minute until the process exits.
func (o *Outbox) StartDispatcher() {
	o.cron = cron.New()
	if _, err := o.cron.AddFunc("* * * * *", func() {
		if err := o.DispatchDue(context.Background()); err != nil {
			log.Printf("[OUTBOX ERROR] dispatch run failed: %v", err)
		}
	}); err != nil {
		log.Printf("[OUTBOX ERROR] failed to schedule dispatcher: %v", err)
		return
	}
	o.cron.Start()
	log.Println("✅ Notification outbox dispatcher started (every minute)")
}

func (o *Outbox) StopDispatcher() {
	if o.cron != nil {
		o.cron.Stop()
	}
}

// DispatchDue sends every pending row whose send_at has passed.
func (o *Outbox) DispatchDue(ctx context.Context) error {
	var due []outboxModel.NotificationOutboxModel
	if err := o.DB.WithContext(ctx).
		Where("notification_outbox_status = ? AND notification_outbox_send_at <= ?",
			outboxModel.OutboxPending, time.Now()).
		Order("notification_outbox_send_at ASC").
		Limit(dispatchBatchSize).
		Find(&due).Error; err != nil {
		return err
	}

	for i := range due {
		o.dispatchOne(ctx, &due[i])
	}
	return nil
}

func (o *Outbox) dispatchOne(ctx context.Context, row *outboxModel.NotificationOutboxModel) {
	subject := ""
	if row.NotificationOutboxSubject != nil {
		subject = *row.NotificationOutboxSubject
	}

	result, err := o.Notifier.Send(ctx,
		string(row.NotificationOutboxChannel),
		row.NotificationOutboxRecipients,
		subject,
		row.NotificationOutboxBody,
	)

	patch := map[string]any{
		"notification_outbox_attempt": gorm.Expr("notification_outbox_attempt + 1"),
	}
	if err != nil {
		msg := err.Error()
		patch["notification_outbox_error"] = msg
		if row.NotificationOutboxAttempt+1 >= maxAttempts {
			patch["notification_outbox_status"] = outboxModel.OutboxFailed
		}
		log.Printf("[OUTBOX WARN] dispatch %s failed (attempt %d): %v",
			row.NotificationOutboxID, row.NotificationOutboxAttempt+1, err)
	} else {
		patch["notification_outbox_status"] = outboxModel.OutboxSent
		patch["notification_outbox_error"] = nil
		log.Printf("[OUTBOX] dispatched %s via %s (ok=%d fail=%d)",
			row.NotificationOutboxID, row.NotificationOutboxChannel,
			result.SuccessCount, result.FailureCount)
	}

	if uerr := o.DB.WithContext(ctx).
		Model(&outboxModel.NotificationOutboxModel{}).
		Where("notification_outbox_id = ?", row.NotificationOutboxID).
		Updates(patch).Error; uerr != nil {
		log.Printf("[OUTBOX ERROR] failed to update outbox row %s: %v", row.NotificationOutboxID, uerr)
	}
}
