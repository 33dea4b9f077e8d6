// file: internals/features/rituals/series/dto/ritual_series_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	seriesModel "templeku_backend/internals/features/rituals/series/model"
	schedule "templeku_backend/internals/features/rituals/schedule/service"
	"templeku_backend/internals/helpers/dbtime"
)

/* =========================================================
   === REQUEST ===
========================================================= */

type CreateRitualSeriesRequest struct {
	RitualSeriesTitle       string `json:"ritual_series_title" validate:"required,min=3,max=255"`
	RitualSeriesDescription string `json:"ritual_series_description" validate:"omitempty"`
	RitualSeriesRitualType  string `json:"ritual_series_ritual_type" validate:"required,max=50"`
	RitualSeriesDeity       string `json:"ritual_series_deity" validate:"omitempty,max=120"`
	RitualSeriesLocation    string `json:"ritual_series_location" validate:"omitempty,max=255"`
	RitualSeriesOfficiant   string `json:"ritual_series_officiant" validate:"omitempty,max=255"`

	RitualSeriesVisibility string `json:"ritual_series_visibility" validate:"omitempty,oneof=public community private"`

	RitualSeriesStartTime       string `json:"ritual_series_start_time" validate:"required"`
	RitualSeriesDurationMinutes int    `json:"ritual_series_duration_minutes" validate:"required,gte=1,lte=1440"`

	RitualSeriesMaxParticipants      *int `json:"ritual_series_max_participants" validate:"omitempty,gte=1"`
	RitualSeriesRegistrationRequired bool `json:"ritual_series_registration_required"`

	RitualSeriesRecurrenceType     string   `json:"ritual_series_recurrence_type" validate:"required,oneof=none daily weekly monthly yearly"`
	RitualSeriesRecurrenceInterval int      `json:"ritual_series_recurrence_interval" validate:"omitempty,gte=1"`
	RitualSeriesDaysOfWeek         []string `json:"ritual_series_days_of_week" validate:"omitempty,dive,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	RitualSeriesWeekOfMonth        *string  `json:"ritual_series_week_of_month" validate:"omitempty,oneof=1st 2nd 3rd 4th last"`
	RitualSeriesStartDate          string   `json:"ritual_series_start_date" validate:"required,datetime=2006-01-02"`
	RitualSeriesEndMode            string   `json:"ritual_series_end_mode" validate:"omitempty,oneof=never by_date by_count"`
	RitualSeriesEndDate            *string  `json:"ritual_series_end_date" validate:"omitempty,datetime=2006-01-02"`
	RitualSeriesCount              *int     `json:"ritual_series_count" validate:"omitempty,gte=1"`
}

func (r *CreateRitualSeriesRequest) ToModel(templeID uuid.UUID, actorID *uuid.UUID) (*seriesModel.RitualSeriesModel, error) {
	startTime, err := dbtime.Parse(r.RitualSeriesStartTime)
	if err != nil {
		return nil, err
	}
	startDate, err := time.Parse("2006-01-02", r.RitualSeriesStartDate)
	if err != nil {
		return nil, err
	}

	visibility := seriesModel.VisibilityPublic
	if r.RitualSeriesVisibility != "" {
		visibility = seriesModel.SeriesVisibilityEnum(r.RitualSeriesVisibility)
	}
	interval := r.RitualSeriesRecurrenceInterval
	if interval < 1 {
		interval = 1
	}
	endMode := r.RitualSeriesEndMode
	if endMode == "" {
		endMode = string(schedule.EndNever)
	}

	m := &seriesModel.RitualSeriesModel{
		RitualSeriesTempleID: templeID,

		RitualSeriesTitle:       r.RitualSeriesTitle,
		RitualSeriesDescription: r.RitualSeriesDescription,
		RitualSeriesRitualType:  r.RitualSeriesRitualType,
		RitualSeriesDeity:       r.RitualSeriesDeity,
		RitualSeriesLocation:    r.RitualSeriesLocation,
		RitualSeriesOfficiant:   r.RitualSeriesOfficiant,

		RitualSeriesVisibility: visibility,
		RitualSeriesStatus:     seriesModel.SeriesActive,

		RitualSeriesStartTime:       startTime,
		RitualSeriesDurationMinutes: r.RitualSeriesDurationMinutes,

		RitualSeriesMaxParticipants:      r.RitualSeriesMaxParticipants,
		RitualSeriesRegistrationRequired: r.RitualSeriesRegistrationRequired,

		RitualSeriesRecurrenceType:     r.RitualSeriesRecurrenceType,
		RitualSeriesRecurrenceInterval: interval,
		RitualSeriesDaysOfWeek:         r.RitualSeriesDaysOfWeek,
		RitualSeriesWeekOfMonth:        r.RitualSeriesWeekOfMonth,
		RitualSeriesStartDate:          startDate,
		RitualSeriesEndMode:            endMode,
		RitualSeriesCount:              r.RitualSeriesCount,

		RitualSeriesCreatedBy: actorID,
	}
	if r.RitualSeriesEndDate != nil {
		d, err := time.Parse("2006-01-02", *r.RitualSeriesEndDate)
		if err != nil {
			return nil, err
		}
		m.RitualSeriesEndDate = &d
	}
	return m, nil
}

// UpdateRitualSeriesRequest is a partial update: nil fields keep the stored
// value. Recurrence fields travel together since they are re-validated as a
// whole rule.
type UpdateRitualSeriesRequest struct {
	RitualSeriesTitle       *string `json:"ritual_series_title" validate:"omitempty,min=3,max=255"`
	RitualSeriesDescription *string `json:"ritual_series_description" validate:"omitempty"`
	RitualSeriesRitualType  *string `json:"ritual_series_ritual_type" validate:"omitempty,max=50"`
	RitualSeriesDeity       *string `json:"ritual_series_deity" validate:"omitempty,max=120"`
	RitualSeriesLocation    *string `json:"ritual_series_location" validate:"omitempty,max=255"`
	RitualSeriesOfficiant   *string `json:"ritual_series_officiant" validate:"omitempty,max=255"`

	RitualSeriesVisibility *string `json:"ritual_series_visibility" validate:"omitempty,oneof=public community private"`
	RitualSeriesStatus     *string `json:"ritual_series_status" validate:"omitempty,oneof=active inactive draft cancelled"`

	RitualSeriesStartTime       *string `json:"ritual_series_start_time" validate:"omitempty"`
	RitualSeriesDurationMinutes *int    `json:"ritual_series_duration_minutes" validate:"omitempty,gte=1,lte=1440"`

	RitualSeriesMaxParticipants      *int  `json:"ritual_series_max_participants" validate:"omitempty,gte=1"`
	RitualSeriesRegistrationRequired *bool `json:"ritual_series_registration_required"`

	RitualSeriesRecurrenceType     *string  `json:"ritual_series_recurrence_type" validate:"omitempty,oneof=none daily weekly monthly yearly"`
	RitualSeriesRecurrenceInterval *int     `json:"ritual_series_recurrence_interval" validate:"omitempty,gte=1"`
	RitualSeriesDaysOfWeek         []string `json:"ritual_series_days_of_week" validate:"omitempty,dive,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	RitualSeriesWeekOfMonth        *string  `json:"ritual_series_week_of_month" validate:"omitempty,oneof=1st 2nd 3rd 4th last"`
	RitualSeriesStartDate          *string  `json:"ritual_series_start_date" validate:"omitempty,datetime=2006-01-02"`
	RitualSeriesEndMode            *string  `json:"ritual_series_end_mode" validate:"omitempty,oneof=never by_date by_count"`
	RitualSeriesEndDate            *string  `json:"ritual_series_end_date" validate:"omitempty,datetime=2006-01-02"`
	RitualSeriesCount              *int     `json:"ritual_series_count" validate:"omitempty,gte=1"`
}

func (r *UpdateRitualSeriesRequest) ApplyToModel(m *seriesModel.RitualSeriesModel, actorID *uuid.UUID) error {
	if r.RitualSeriesTitle != nil {
		m.RitualSeriesTitle = *r.RitualSeriesTitle
	}
	if r.RitualSeriesDescription != nil {
		m.RitualSeriesDescription = *r.RitualSeriesDescription
	}
	if r.RitualSeriesRitualType != nil {
		m.RitualSeriesRitualType = *r.RitualSeriesRitualType
	}
	if r.RitualSeriesDeity != nil {
		m.RitualSeriesDeity = *r.RitualSeriesDeity
	}
	if r.RitualSeriesLocation != nil {
		m.RitualSeriesLocation = *r.RitualSeriesLocation
	}
	if r.RitualSeriesOfficiant != nil {
		m.RitualSeriesOfficiant = *r.RitualSeriesOfficiant
	}
	if r.RitualSeriesVisibility != nil {
		m.RitualSeriesVisibility = seriesModel.SeriesVisibilityEnum(*r.RitualSeriesVisibility)
	}
	if r.RitualSeriesStatus != nil {
		m.RitualSeriesStatus = seriesModel.SeriesStatusEnum(*r.RitualSeriesStatus)
	}
	if r.RitualSeriesStartTime != nil {
		tt, err := dbtime.Parse(*r.RitualSeriesStartTime)
		if err != nil {
			return err
		}
		m.RitualSeriesStartTime = tt
	}
	if r.RitualSeriesDurationMinutes != nil {
		m.RitualSeriesDurationMinutes = *r.RitualSeriesDurationMinutes
	}
	if r.RitualSeriesMaxParticipants != nil {
		m.RitualSeriesMaxParticipants = r.RitualSeriesMaxParticipants
	}
	if r.RitualSeriesRegistrationRequired != nil {
		m.RitualSeriesRegistrationRequired = *r.RitualSeriesRegistrationRequired
	}
	if r.RitualSeriesRecurrenceType != nil {
		m.RitualSeriesRecurrenceType = *r.RitualSeriesRecurrenceType
	}
	if r.RitualSeriesRecurrenceInterval != nil {
		m.RitualSeriesRecurrenceInterval = *r.RitualSeriesRecurrenceInterval
	}
	if r.RitualSeriesDaysOfWeek != nil {
		m.RitualSeriesDaysOfWeek = r.RitualSeriesDaysOfWeek
	}
	if r.RitualSeriesWeekOfMonth != nil {
		m.RitualSeriesWeekOfMonth = r.RitualSeriesWeekOfMonth
	}
	if r.RitualSeriesStartDate != nil {
		d, err := time.Parse("2006-01-02", *r.RitualSeriesStartDate)
		if err != nil {
			return err
		}
		m.RitualSeriesStartDate = d
	}
	if r.RitualSeriesEndMode != nil {
		m.RitualSeriesEndMode = *r.RitualSeriesEndMode
	}
	if r.RitualSeriesEndDate != nil {
		d, err := time.Parse("2006-01-02", *r.RitualSeriesEndDate)
		if err != nil {
			return err
		}
		m.RitualSeriesEndDate = &d
	}
	if r.RitualSeriesCount != nil {
		m.RitualSeriesCount = r.RitualSeriesCount
	}
	m.RitualSeriesLastModifiedBy = actorID
	return nil
}

/* =========================================================
   === RESPONSE ===
========================================================= */

type RitualSeriesResponse struct {
	RitualSeriesID uuid.UUID `json:"ritual_series_id"`

	RitualSeriesTitle       string  `json:"ritual_series_title"`
	RitualSeriesSlug        *string `json:"ritual_series_slug,omitempty"`
	RitualSeriesDescription string  `json:"ritual_series_description"`
	RitualSeriesRitualType  string  `json:"ritual_series_ritual_type"`
	RitualSeriesDeity       string  `json:"ritual_series_deity"`
	RitualSeriesLocation    string  `json:"ritual_series_location"`
	RitualSeriesOfficiant   string  `json:"ritual_series_officiant"`

	RitualSeriesVisibility string `json:"ritual_series_visibility"`
	RitualSeriesStatus     string `json:"ritual_series_status"`

	RitualSeriesStartTime       string `json:"ritual_series_start_time"`
	RitualSeriesDurationMinutes int    `json:"ritual_series_duration_minutes"`

	RitualSeriesMaxParticipants      *int `json:"ritual_series_max_participants,omitempty"`
	RitualSeriesRegistrationRequired bool `json:"ritual_series_registration_required"`

	RitualSeriesRecurrenceType     string   `json:"ritual_series_recurrence_type"`
	RitualSeriesRecurrenceInterval int      `json:"ritual_series_recurrence_interval"`
	RitualSeriesDaysOfWeek         []string `json:"ritual_series_days_of_week,omitempty"`
	RitualSeriesWeekOfMonth        *string  `json:"ritual_series_week_of_month,omitempty"`
	RitualSeriesStartDate          string   `json:"ritual_series_start_date"`
	RitualSeriesEndMode            string   `json:"ritual_series_end_mode"`
	RitualSeriesEndDate            *string  `json:"ritual_series_end_date,omitempty"`
	RitualSeriesCount              *int     `json:"ritual_series_count,omitempty"`

	// Human sentence for the admin form, e.g. "Every 2 weeks on Tuesday,
	// Thursday until 2025-12-31".
	RitualSeriesRecurrenceSummary string `json:"ritual_series_recurrence_summary"`

	RitualSeriesCreatedAt time.Time `json:"ritual_series_created_at"`
	RitualSeriesUpdatedAt time.Time `json:"ritual_series_updated_at"`
}

func ToRitualSeriesResponse(m *seriesModel.RitualSeriesModel) *RitualSeriesResponse {
	if m == nil {
		return nil
	}

	summary := ""
	if rule, err := schedule.RuleFromSeries(m); err == nil {
		summary = rule.Describe()
	}

	resp := &RitualSeriesResponse{
		RitualSeriesID: m.RitualSeriesID,

		RitualSeriesTitle:       m.RitualSeriesTitle,
		RitualSeriesSlug:        m.RitualSeriesSlug,
		RitualSeriesDescription: m.RitualSeriesDescription,
		RitualSeriesRitualType:  m.RitualSeriesRitualType,
		RitualSeriesDeity:       m.RitualSeriesDeity,
		RitualSeriesLocation:    m.RitualSeriesLocation,
		RitualSeriesOfficiant:   m.RitualSeriesOfficiant,

		RitualSeriesVisibility: string(m.RitualSeriesVisibility),
		RitualSeriesStatus:     string(m.RitualSeriesStatus),

		RitualSeriesStartTime:       m.RitualSeriesStartTime.Format("15:04:05"),
		RitualSeriesDurationMinutes: m.RitualSeriesDurationMinutes,

		RitualSeriesMaxParticipants:      m.RitualSeriesMaxParticipants,
		RitualSeriesRegistrationRequired: m.RitualSeriesRegistrationRequired,

		RitualSeriesRecurrenceType:     m.RitualSeriesRecurrenceType,
		RitualSeriesRecurrenceInterval: m.RitualSeriesRecurrenceInterval,
		RitualSeriesDaysOfWeek:         m.RitualSeriesDaysOfWeek,
		RitualSeriesWeekOfMonth:        m.RitualSeriesWeekOfMonth,
		RitualSeriesStartDate:          m.RitualSeriesStartDate.Format("2006-01-02"),
		RitualSeriesEndMode:            m.RitualSeriesEndMode,
		RitualSeriesCount:              m.RitualSeriesCount,

		RitualSeriesRecurrenceSummary: summary,

		RitualSeriesCreatedAt: m.RitualSeriesCreatedAt,
		RitualSeriesUpdatedAt: m.RitualSeriesUpdatedAt,
	}
	if m.RitualSeriesEndDate != nil {
		d := m.RitualSeriesEndDate.Format("2006-01-02")
		resp.RitualSeriesEndDate = &d
	}
	return resp
}

func ToRitualSeriesResponseList(models []seriesModel.RitualSeriesModel) []RitualSeriesResponse {
	out := make([]RitualSeriesResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToRitualSeriesResponse(&models[i]))
	}
	return out
}
