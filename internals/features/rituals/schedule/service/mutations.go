// file: internals/features/rituals/schedule/service/mutations.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	outboxModel "templeku_backend/internals/features/notifications/outbox/model"
	outboxSvc "templeku_backend/internals/features/notifications/outbox/service"
	schedModel "templeku_backend/internals/features/rituals/schedule/model"
	seriesModel "templeku_backend/internals/features/rituals/series/model"
)

/* =========================
   Temple scoping
========================= */

// Every mutation-side lookup is keyed by temple as well as series, so a
// series id belonging to another temple behaves as not found.

func seriesKeyScope(templeID, seriesID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("ritual_series_id = ? AND ritual_series_temple_id = ?", seriesID, templeID)
	}
}

func exceptionKeyScope(templeID, seriesID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("ritual_exception_series_id = ? AND ritual_exception_temple_id = ?", seriesID, templeID)
	}
}

func statusKeyScope(templeID, seriesID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("ritual_status_update_series_id = ? AND ritual_status_update_temple_id = ?", seriesID, templeID)
	}
}

/* =========================
   Exception upsert
========================= */

// UpsertException writes the override for (series, original date). A second
// write for the same key replaces the first: last-write-wins lives in the ON
// CONFLICT clause, not in the resolver. The series must belong to the
// caller's temple; nothing is written otherwise. Notification dispatch is
// enqueued best-effort after the row is stored.
func (s *ScheduleService) UpsertException(ctx context.Context, row *schedModel.RitualExceptionModel) error {
	if err := validateExceptionRow(row); err != nil {
		return err
	}
	row.RitualExceptionOriginalDate = dateOnly(row.RitualExceptionOriginalDate)

	sm, err := s.loadSeries(ctx, row.RitualExceptionTempleID, row.RitualExceptionSeriesID)
	if err != nil {
		return err
	}

	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "ritual_exception_series_id"},
				{Name: "ritual_exception_original_date"},
			},
			UpdateAll: true,
		}).
		Create(row).Error; err != nil {
		return err
	}

	if row.RitualExceptionNotifySubscribers || row.RitualExceptionBroadcastToCommunity {
		s.enqueueExceptionNotice(ctx, sm, row)
	}
	return nil
}

func validateExceptionRow(row *schedModel.RitualExceptionModel) error {
	if strings.TrimSpace(row.RitualExceptionReason) == "" {
		return &InvalidRuleError{Reason: "exception reason is required"}
	}

	switch row.RitualExceptionKind {
	case schedModel.ExceptionKindCancel:
		row.RitualExceptionNewDate = nil
		row.RitualExceptionNewStartTime = nil
		row.RitualExceptionNewOfficiant = nil
		row.RitualExceptionNewLocation = nil
	case schedModel.ExceptionKindReschedule:
		if row.RitualExceptionNewDate == nil || row.RitualExceptionNewStartTime == nil {
			return &InvalidRuleError{Reason: "reschedule requires new date and new start time"}
		}
		row.RitualExceptionNewOfficiant = nil
		row.RitualExceptionNewLocation = nil
	case schedModel.ExceptionKindChangeOfficiant:
		if row.RitualExceptionNewOfficiant == nil || strings.TrimSpace(*row.RitualExceptionNewOfficiant) == "" {
			return &InvalidRuleError{Reason: "change of officiant requires the new officiant"}
		}
		row.RitualExceptionNewDate = nil
		row.RitualExceptionNewStartTime = nil
		row.RitualExceptionNewLocation = nil
	case schedModel.ExceptionKindChangeLocation:
		if row.RitualExceptionNewLocation == nil || strings.TrimSpace(*row.RitualExceptionNewLocation) == "" {
			return &InvalidRuleError{Reason: "change of location requires the new location"}
		}
		row.RitualExceptionNewDate = nil
		row.RitualExceptionNewStartTime = nil
		row.RitualExceptionNewOfficiant = nil
	default:
		return &InvalidRuleError{Reason: fmt.Sprintf("unknown exception kind %q", string(row.RitualExceptionKind))}
	}
	return nil
}

/* =========================
   Notice audiences
========================= */

// Audience scope tokens the notification API expands into concrete addresses
// (see outbox service Notifier).

func subscriberAudience(seriesID uuid.UUID) string {
	return "scope:series-subscribers:" + seriesID.String()
}

func communityAudience(templeID uuid.UUID) string {
	return "scope:temple-community:" + templeID.String()
}

func exceptionNoticeRecipients(row *schedModel.RitualExceptionModel) []string {
	var out []string
	if row.RitualExceptionNotifySubscribers {
		out = append(out, subscriberAudience(row.RitualExceptionSeriesID))
	}
	if row.RitualExceptionBroadcastToCommunity {
		out = append(out, communityAudience(row.RitualExceptionTempleID))
	}
	return out
}

func (s *ScheduleService) enqueueExceptionNotice(ctx context.Context, sm *seriesModel.RitualSeriesModel, row *schedModel.RitualExceptionModel) {
	if s.Outbox == nil {
		return
	}
	if row.RitualExceptionNotifyTiming == schedModel.NotifyManual {
		return // stored only; an admin triggers the send later
	}

	body := exceptionNoticeBody(sm, row)
	if row.RitualExceptionCustomMessage != nil && strings.TrimSpace(*row.RitualExceptionCustomMessage) != "" {
		body = *row.RitualExceptionCustomMessage
	}

	sendAt := noticeSendAt(row.RitualExceptionNotifyTiming,
		sm.RitualSeriesStartTime.On(row.RitualExceptionOriginalDate))

	err := s.Outbox.Enqueue(ctx, outboxSvc.EnqueueOptions{
		TempleID:   row.RitualExceptionTempleID,
		Channel:    outboxModel.ChannelPush,
		Recipients: exceptionNoticeRecipients(row),
		Subject:    "Schedule change: " + sm.RitualSeriesTitle,
		Body:       body,
		SendAt:     sendAt,
		Context: datatypes.JSONMap{
			"source":        "exception",
			"series_id":     row.RitualExceptionSeriesID.String(),
			"original_date": DateKey(row.RitualExceptionOriginalDate),
			"kind":          string(row.RitualExceptionKind),
			"broadcast":     row.RitualExceptionBroadcastToCommunity,
		},
	})
	if err != nil {
		// best-effort: the exception itself is already stored
		log.Printf("[SCHEDULE WARN] failed to enqueue exception notice: %v", err)
	}
}

func exceptionNoticeBody(sm *seriesModel.RitualSeriesModel, row *schedModel.RitualExceptionModel) string {
	date := row.RitualExceptionOriginalDate.Format("Monday, 2 January 2006")
	switch row.RitualExceptionKind {
	case schedModel.ExceptionKindCancel:
		return fmt.Sprintf("%s on %s is cancelled. Reason: %s", sm.RitualSeriesTitle, date, row.RitualExceptionReason)
	case schedModel.ExceptionKindReschedule:
		return fmt.Sprintf("%s on %s has moved to %s at %s. Reason: %s",
			sm.RitualSeriesTitle, date,
			row.RitualExceptionNewDate.Format("Monday, 2 January 2006"),
			row.RitualExceptionNewStartTime.Format("15:04"),
			row.RitualExceptionReason)
	case schedModel.ExceptionKindChangeOfficiant:
		return fmt.Sprintf("%s on %s will be conducted by %s. Reason: %s",
			sm.RitualSeriesTitle, date, *row.RitualExceptionNewOfficiant, row.RitualExceptionReason)
	case schedModel.ExceptionKindChangeLocation:
		return fmt.Sprintf("%s on %s has moved to %s. Reason: %s",
			sm.RitualSeriesTitle, date, *row.RitualExceptionNewLocation, row.RitualExceptionReason)
	default:
		return fmt.Sprintf("%s on %s has a schedule change.", sm.RitualSeriesTitle, date)
	}
}

func noticeSendAt(timing schedModel.NotifyTimingEnum, occurrenceAt time.Time) time.Time {
	switch timing {
	case schedModel.NotifyOneHour:
		return occurrenceAt.Add(-1 * time.Hour)
	case schedModel.NotifyTwentyFourHr:
		return occurrenceAt.Add(-24 * time.Hour)
	default:
		return time.Now()
	}
}

/* =========================
   Status updates
========================= */

// UpdateStatus validates and appends one status transition for the
// occurrence keyed by (series, date). On success exactly one history row is
// added; on failure the history is untouched.
func (s *ScheduleService) UpdateStatus(
	ctx context.Context,
	templeID uuid.UUID,
	seriesID uuid.UUID,
	occurrenceDate time.Time,
	change StatusChange,
	actorID *uuid.UUID,
) (*schedModel.RitualStatusUpdateModel, error) {
	occurrenceDate = dateOnly(occurrenceDate)

	sm, err := s.loadSeries(ctx, templeID, seriesID)
	if err != nil {
		return nil, err
	}

	current, err := s.currentStatus(ctx, templeID, seriesID, occurrenceDate)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(current, change); err != nil {
		return nil, err
	}

	var reason *string
	if strings.TrimSpace(change.Reason) != "" {
		r := change.Reason
		reason = &r
	}
	row := schedModel.RitualStatusUpdateModel{
		RitualStatusUpdateTempleID:       sm.RitualSeriesTempleID,
		RitualStatusUpdateSeriesID:       seriesID,
		RitualStatusUpdateOccurrenceDate: occurrenceDate,
		RitualStatusUpdateNewStatus:      string(change.NewStatus),
		RitualStatusUpdateDelayedTo:      change.DelayedTo,
		RitualStatusUpdateReason:         reason,
		RitualStatusUpdateNotify:         change.Notify,
		RitualStatusUpdateCreatedBy:      actorID,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	if change.Notify {
		s.enqueueStatusNotice(ctx, sm, &row)
	}
	return &row, nil
}

// StatusHistory returns the full append-only log for one occurrence, oldest
// first.
func (s *ScheduleService) StatusHistory(ctx context.Context, templeID, seriesID uuid.UUID, occurrenceDate time.Time) ([]schedModel.RitualStatusUpdateModel, error) {
	var rows []schedModel.RitualStatusUpdateModel
	err := s.DB.WithContext(ctx).
		Scopes(statusKeyScope(templeID, seriesID)).
		Where("ritual_status_update_occurrence_date = ?", dateOnly(occurrenceDate)).
		Order("ritual_status_update_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *ScheduleService) currentStatus(ctx context.Context, templeID, seriesID uuid.UUID, occurrenceDate time.Time) (OccurrenceStatus, error) {
	var last schedModel.RitualStatusUpdateModel
	err := s.DB.WithContext(ctx).
		Scopes(statusKeyScope(templeID, seriesID)).
		Where("ritual_status_update_occurrence_date = ?", occurrenceDate).
		Order("ritual_status_update_created_at DESC").
		Limit(1).
		Take(&last).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		// no rows yet: exceptions may still have cancelled the occurrence
		ex, exErr := s.exceptionFor(ctx, templeID, seriesID, occurrenceDate)
		if exErr != nil {
			if errors.Is(exErr, gorm.ErrRecordNotFound) {
				return StatusScheduled, nil
			}
			return "", exErr
		}
		if ex.RitualExceptionKind == schedModel.ExceptionKindCancel {
			return StatusCancelled, nil
		}
		return StatusScheduled, nil
	}
	if st, ok := ParseOccurrenceStatus(last.RitualStatusUpdateNewStatus); ok {
		return st, nil
	}
	return StatusScheduled, nil
}

func (s *ScheduleService) exceptionFor(ctx context.Context, templeID, seriesID uuid.UUID, occurrenceDate time.Time) (*schedModel.RitualExceptionModel, error) {
	var row schedModel.RitualExceptionModel
	err := s.DB.WithContext(ctx).
		Scopes(exceptionKeyScope(templeID, seriesID)).
		Where("ritual_exception_original_date = ?", occurrenceDate).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *ScheduleService) loadSeries(ctx context.Context, templeID, seriesID uuid.UUID) (*seriesModel.RitualSeriesModel, error) {
	var sm seriesModel.RitualSeriesModel
	if err := s.DB.WithContext(ctx).
		Scopes(seriesKeyScope(templeID, seriesID)).
		Take(&sm).Error; err != nil {
		return nil, err
	}
	return &sm, nil
}

func (s *ScheduleService) enqueueStatusNotice(ctx context.Context, sm *seriesModel.RitualSeriesModel, row *schedModel.RitualStatusUpdateModel) {
	if s.Outbox == nil {
		return
	}

	date := row.RitualStatusUpdateOccurrenceDate.Format("Monday, 2 January 2006")
	body := fmt.Sprintf("%s on %s is now %s.", sm.RitualSeriesTitle, date, row.RitualStatusUpdateNewStatus)
	if row.RitualStatusUpdateNewStatus == string(StatusDelayed) && row.RitualStatusUpdateDelayedTo != nil {
		body = fmt.Sprintf("%s on %s is delayed to %s.",
			sm.RitualSeriesTitle, date, row.RitualStatusUpdateDelayedTo.Format("15:04"))
	}
	if row.RitualStatusUpdateReason != nil {
		body += " Reason: " + *row.RitualStatusUpdateReason
	}

	err := s.Outbox.Enqueue(ctx, outboxSvc.EnqueueOptions{
		TempleID:   sm.RitualSeriesTempleID,
		Channel:    outboxModel.ChannelPush,
		Recipients: []string{subscriberAudience(row.RitualStatusUpdateSeriesID)},
		Subject:    "Status update: " + sm.RitualSeriesTitle,
		Body:       body,
		Context: datatypes.JSONMap{
			"source":          "status_update",
			"series_id":       row.RitualStatusUpdateSeriesID.String(),
			"occurrence_date": DateKey(row.RitualStatusUpdateOccurrenceDate),
			"new_status":      row.RitualStatusUpdateNewStatus,
		},
	})
	if err != nil {
		log.Printf("[SCHEDULE WARN] failed to enqueue status notice: %v", err)
	}
}

// ListExceptions returns the stored overrides for a series in a window,
// newest original date first (for the exception management modal).
func (s *ScheduleService) ListExceptions(ctx context.Context, templeID, seriesID uuid.UUID, from, to time.Time) ([]schedModel.RitualExceptionModel, error) {
	var rows []schedModel.RitualExceptionModel
	err := s.DB.WithContext(ctx).
		Scopes(exceptionKeyScope(templeID, seriesID)).
		Where("ritual_exception_original_date BETWEEN ? AND ?", dateOnly(from), dateOnly(to)).
		Order("ritual_exception_original_date DESC").
		Find(&rows).Error
	return rows, err
}

// DeleteException removes an override so the occurrence reverts to the
// generated slot.
func (s *ScheduleService) DeleteException(ctx context.Context, templeID, seriesID uuid.UUID, originalDate time.Time) error {
	res := s.DB.WithContext(ctx).
		Scopes(exceptionKeyScope(templeID, seriesID)).
		Where("ritual_exception_original_date = ?", dateOnly(originalDate)).
		Delete(&schedModel.RitualExceptionModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrExceptionNotFound
	}
	return nil
}

var ErrExceptionNotFound = fmt.Errorf("exception not found")
