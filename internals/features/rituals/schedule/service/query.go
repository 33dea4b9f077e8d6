// file: internals/features/rituals/schedule/service/query.go
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	schedModel "templeku_backend/internals/features/rituals/schedule/model"
	seriesModel "templeku_backend/internals/features/rituals/series/model"
	outboxSvc "templeku_backend/internals/features/notifications/outbox/service"
)

// maxWindowDays bounds a single schedule query; the admin calendar never asks
// for more than a month at a time.
const maxWindowDays = 370

// ScheduleService composes the pure scheduling pipeline with persisted
// exceptions and status overlays. All I/O happens here at the boundary; the
// generate/resolve/status functions stay pure.
type ScheduleService struct {
	DB     *gorm.DB
	Outbox *outboxSvc.Outbox
}

func NewScheduleService(db *gorm.DB, outbox *outboxSvc.Outbox) *ScheduleService {
	return &ScheduleService{DB: db, Outbox: outbox}
}

// RuleFromSeries converts the recurrence columns of a series row into the
// pure rule value.
func RuleFromSeries(m *seriesModel.RitualSeriesModel) (Rule, error) {
	days, err := ParseWeekdays(m.RitualSeriesDaysOfWeek)
	if err != nil {
		return Rule{}, err
	}

	ordinal := OrdinalUnset
	if m.RitualSeriesWeekOfMonth != nil {
		o, ok := ParseWeekOrdinal(*m.RitualSeriesWeekOfMonth)
		if !ok {
			return Rule{}, &InvalidRuleError{Reason: "unknown week-of-month selector " + *m.RitualSeriesWeekOfMonth}
		}
		ordinal = o
	}

	rule := Rule{
		Type:        RecurrenceType(m.RitualSeriesRecurrenceType),
		Interval:    m.RitualSeriesRecurrenceInterval,
		DaysOfWeek:  days,
		WeekOfMonth: ordinal,
		StartDate:   m.RitualSeriesStartDate,
		EndMode:     EndMode(m.RitualSeriesEndMode),
	}
	if m.RitualSeriesEndDate != nil {
		rule.EndDate = *m.RitualSeriesEndDate
	}
	if m.RitualSeriesCount != nil {
		rule.Count = *m.RitualSeriesCount
	}
	return rule, nil
}

/* =========================
   Query surface
========================= */

// QueryParams filters the schedule window. From/To are inclusive calendar
// dates. Month grid, day grid and flat list all consume the same result.
type QueryParams struct {
	TempleID  uuid.UUID
	SeriesID  *uuid.UUID
	Location  string
	Officiant string
	Status    OccurrenceStatus
	From      time.Time
	To        time.Time

	// MaxPerSeries caps expansion per series; <=0 uses the default.
	MaxPerSeries int
}

// Query materializes all resolved occurrences in the window, ordered by
// (date, start time) ascending.
func (s *ScheduleService) Query(ctx context.Context, p QueryParams) ([]Instance, error) {
	if dateOnly(p.To).Before(dateOnly(p.From)) {
		return nil, &InvalidRangeError{Reason: "query window end is before start"}
	}
	if int(dateOnly(p.To).Sub(dateOnly(p.From)).Hours()/24) > maxWindowDays {
		return nil, &InvalidRangeError{Reason: "query window too large"}
	}

	// 1) active series in scope
	q := s.DB.WithContext(ctx).
		Where("ritual_series_temple_id = ?", p.TempleID).
		Where("ritual_series_status = ?", seriesModel.SeriesActive)
	if p.SeriesID != nil {
		q = q.Where("ritual_series_id = ?", *p.SeriesID)
	}

	var series []seriesModel.RitualSeriesModel
	if err := q.Find(&series).Error; err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return []Instance{}, nil
	}

	seriesIDs := make([]uuid.UUID, 0, len(series))
	for i := range series {
		seriesIDs = append(seriesIDs, series[i].RitualSeriesID)
	}

	// 2) exceptions + status overlays for the window, one query each
	exceptions, err := s.loadExceptions(ctx, seriesIDs, p.From, p.To)
	if err != nil {
		return nil, err
	}
	statuses, err := s.loadLatestStatuses(ctx, seriesIDs, p.From, p.To)
	if err != nil {
		return nil, err
	}

	// 3) expand + overlay per series (pure from here on)
	out := make([]Instance, 0, 64)
	for i := range series {
		sm := &series[i]
		rule, err := RuleFromSeries(sm)
		if err != nil {
			return nil, err
		}
		dates, err := GenerateOccurrences(rule, p.From, p.To, p.MaxPerSeries)
		if err != nil {
			return nil, err
		}

		instances := make([]Instance, 0, len(dates))
		for _, d := range dates {
			instances = append(instances, Instance{
				ID:              InstanceID(sm.RitualSeriesID, d),
				SeriesID:        sm.RitualSeriesID,
				OriginalDate:    d,
				Date:            d,
				StartTime:       sm.RitualSeriesStartTime,
				DurationMinutes: sm.RitualSeriesDurationMinutes,
				Title:           sm.RitualSeriesTitle,
				Deity:           sm.RitualSeriesDeity,
				Location:        sm.RitualSeriesLocation,
				Officiant:       sm.RitualSeriesOfficiant,
				Status:          StatusScheduled,
			})
		}

		instances = ApplyExceptions(instances, exceptions[sm.RitualSeriesID])

		for j := range instances {
			if st, ok := statuses[statusKey(instances[j].SeriesID, instances[j].OriginalDate)]; ok {
				instances[j].Status = st
			}
		}

		out = append(out, instances...)
	}

	// 4) filter + order
	out = filterInstances(out, p)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if !out[i].StartTime.Time.Equal(out[j].StartTime.Time) {
			return out[i].StartTime.Time.Before(out[j].StartTime.Time)
		}
		return out[i].SeriesID.String() < out[j].SeriesID.String()
	})

	return out, nil
}

func filterInstances(in []Instance, p QueryParams) []Instance {
	out := in[:0]
	for _, inst := range in {
		if p.Location != "" && !strings.EqualFold(inst.Location, p.Location) {
			continue
		}
		if p.Officiant != "" && !strings.EqualFold(inst.Officiant, p.Officiant) {
			continue
		}
		if p.Status != "" && inst.Status != p.Status {
			continue
		}
		out = append(out, inst)
	}
	return out
}

func (s *ScheduleService) loadExceptions(ctx context.Context, seriesIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]map[string]ExceptionOverride, error) {
	var rows []schedModel.RitualExceptionModel
	if err := s.DB.WithContext(ctx).
		Where("ritual_exception_series_id IN ?", seriesIDs).
		Where("ritual_exception_original_date BETWEEN ? AND ?", dateOnly(from), dateOnly(to)).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]map[string]ExceptionOverride, len(rows))
	for i := range rows {
		r := &rows[i]
		m := out[r.RitualExceptionSeriesID]
		if m == nil {
			m = make(map[string]ExceptionOverride)
			out[r.RitualExceptionSeriesID] = m
		}
		m[DateKey(r.RitualExceptionOriginalDate)] = ExceptionOverride{
			Kind:         ExceptionKind(r.RitualExceptionKind),
			Reason:       r.RitualExceptionReason,
			NewDate:      r.RitualExceptionNewDate,
			NewStartTime: r.RitualExceptionNewStartTime,
			NewOfficiant: r.RitualExceptionNewOfficiant,
			NewLocation:  r.RitualExceptionNewLocation,
		}
	}
	return out, nil
}

// loadLatestStatuses folds the append-only status log down to the newest
// status per (series, date) key.
func (s *ScheduleService) loadLatestStatuses(ctx context.Context, seriesIDs []uuid.UUID, from, to time.Time) (map[string]OccurrenceStatus, error) {
	var rows []schedModel.RitualStatusUpdateModel
	if err := s.DB.WithContext(ctx).
		Where("ritual_status_update_series_id IN ?", seriesIDs).
		Where("ritual_status_update_occurrence_date BETWEEN ? AND ?", dateOnly(from), dateOnly(to)).
		Order("ritual_status_update_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]OccurrenceStatus, len(rows))
	for i := range rows {
		r := &rows[i]
		if st, ok := ParseOccurrenceStatus(r.RitualStatusUpdateNewStatus); ok {
			out[statusKey(r.RitualStatusUpdateSeriesID, r.RitualStatusUpdateOccurrenceDate)] = st
		}
	}
	return out, nil
}

func statusKey(seriesID uuid.UUID, date time.Time) string {
	return seriesID.String() + "|" + DateKey(date)
}
