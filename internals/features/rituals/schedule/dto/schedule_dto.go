// file: internals/features/rituals/schedule/dto/schedule_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	schedModel "templeku_backend/internals/features/rituals/schedule/model"
	"templeku_backend/internals/features/rituals/schedule/service"
	"templeku_backend/internals/helpers/dbtime"
)

// ================== REQUEST ==================

type CreateExceptionRequest struct {
	SeriesID     string `json:"series_id" validate:"required,uuid4"`
	OriginalDate string `json:"original_date" validate:"required,datetime=2006-01-02"`
	Kind         string `json:"kind" validate:"required,oneof=cancel reschedule change_officiant change_location"`
	Reason       string `json:"reason" validate:"required"`

	NewDate      *string `json:"new_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	NewStartTime *string `json:"new_start_time,omitempty"`
	NewOfficiant *string `json:"new_officiant,omitempty"`
	NewLocation  *string `json:"new_location,omitempty"`

	NotifySubscribers    bool    `json:"notify_subscribers"`
	BroadcastToCommunity bool    `json:"broadcast_to_community"`
	NotifyTiming         string  `json:"notify_timing" validate:"omitempty,oneof=immediate 1h-before 24h-before manual"`
	CustomMessage        *string `json:"custom_message,omitempty"`
}

// ToModel builds the persistence row. Date/time strings are assumed valid
// (validator ran first); kind-field consistency is enforced by the service.
func (r *CreateExceptionRequest) ToModel(templeID uuid.UUID, actorID *uuid.UUID) (*schedModel.RitualExceptionModel, error) {
	seriesID, err := uuid.Parse(r.SeriesID)
	if err != nil {
		return nil, err
	}
	originalDate, err := time.Parse("2006-01-02", r.OriginalDate)
	if err != nil {
		return nil, err
	}

	row := &schedModel.RitualExceptionModel{
		RitualExceptionTempleID:     templeID,
		RitualExceptionSeriesID:     seriesID,
		RitualExceptionOriginalDate: originalDate,
		RitualExceptionKind:         schedModel.ExceptionKindEnum(r.Kind),
		RitualExceptionReason:       r.Reason,

		RitualExceptionNotifySubscribers:    r.NotifySubscribers,
		RitualExceptionBroadcastToCommunity: r.BroadcastToCommunity,
		RitualExceptionNotifyTiming:         schedModel.NotifyImmediate,
		RitualExceptionCustomMessage:        r.CustomMessage,
		RitualExceptionCreatedBy:            actorID,
	}
	if r.NotifyTiming != "" {
		row.RitualExceptionNotifyTiming = schedModel.NotifyTimingEnum(r.NotifyTiming)
	}

	if r.NewDate != nil {
		d, err := time.Parse("2006-01-02", *r.NewDate)
		if err != nil {
			return nil, err
		}
		row.RitualExceptionNewDate = &d
	}
	if r.NewStartTime != nil {
		t, err := dbtime.Parse(*r.NewStartTime)
		if err != nil {
			return nil, err
		}
		row.RitualExceptionNewStartTime = &t
	}
	row.RitualExceptionNewOfficiant = r.NewOfficiant
	row.RitualExceptionNewLocation = r.NewLocation

	return row, nil
}

type UpdateStatusRequest struct {
	SeriesID       string  `json:"series_id" validate:"required,uuid4"`
	OccurrenceDate string  `json:"occurrence_date" validate:"required,datetime=2006-01-02"`
	NewStatus      string  `json:"new_status" validate:"required,oneof=scheduled on-time delayed cancelled completed"`
	DelayedToTime  *string `json:"delayed_to_time,omitempty"`
	Reason         string  `json:"reason"`
	Notify         bool    `json:"notify"`
}

func (r *UpdateStatusRequest) ToChange() (service.StatusChange, error) {
	change := service.StatusChange{
		NewStatus: service.OccurrenceStatus(r.NewStatus),
		Reason:    r.Reason,
		Notify:    r.Notify,
	}
	if r.DelayedToTime != nil {
		t, err := dbtime.Parse(*r.DelayedToTime)
		if err != nil {
			return change, err
		}
		change.DelayedTo = &t
	}
	return change, nil
}

// ================== RESPONSE ==================

type OccurrenceResponse struct {
	ID              uuid.UUID `json:"id"`
	SeriesID        uuid.UUID `json:"series_id"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Title           string    `json:"title"`
	Deity           string    `json:"deity,omitempty"`
	Location        string    `json:"location"`
	Officiant       string    `json:"officiant"`
	Status          string    `json:"status"`
	RescheduledFrom *string   `json:"rescheduled_from,omitempty"`
	ExceptionReason string    `json:"exception_reason,omitempty"`
	OriginalDate    string    `json:"original_date"`
}

func ToOccurrenceResponse(inst *service.Instance) *OccurrenceResponse {
	resp := &OccurrenceResponse{
		ID:              inst.ID,
		SeriesID:        inst.SeriesID,
		Date:            inst.Date.Format("2006-01-02"),
		StartTime:       inst.StartTime.Format("15:04:05"),
		DurationMinutes: inst.DurationMinutes,
		Title:           inst.Title,
		Deity:           inst.Deity,
		Location:        inst.Location,
		Officiant:       inst.Officiant,
		Status:          string(inst.Status),
		ExceptionReason: inst.ExceptionReason,
		OriginalDate:    inst.OriginalDate.Format("2006-01-02"),
	}
	if inst.RescheduledFrom != nil {
		s := inst.RescheduledFrom.Format("2006-01-02")
		resp.RescheduledFrom = &s
	}
	return resp
}

func ToOccurrenceResponseList(instances []service.Instance) []OccurrenceResponse {
	out := make([]OccurrenceResponse, 0, len(instances))
	for i := range instances {
		out = append(out, *ToOccurrenceResponse(&instances[i]))
	}
	return out
}

type StatusUpdateResponse struct {
	ID             uuid.UUID `json:"id"`
	SeriesID       uuid.UUID `json:"series_id"`
	OccurrenceDate string    `json:"occurrence_date"`
	NewStatus      string    `json:"new_status"`
	DelayedTo      *string   `json:"delayed_to,omitempty"`
	Reason         *string   `json:"reason,omitempty"`
	CreatedAt      string    `json:"created_at"`
}

func ToStatusUpdateResponse(m *schedModel.RitualStatusUpdateModel) *StatusUpdateResponse {
	resp := &StatusUpdateResponse{
		ID:             m.RitualStatusUpdateID,
		SeriesID:       m.RitualStatusUpdateSeriesID,
		OccurrenceDate: m.RitualStatusUpdateOccurrenceDate.Format("2006-01-02"),
		NewStatus:      m.RitualStatusUpdateNewStatus,
		Reason:         m.RitualStatusUpdateReason,
		CreatedAt:      m.RitualStatusUpdateCreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.RitualStatusUpdateDelayedTo != nil {
		s := m.RitualStatusUpdateDelayedTo.Format("15:04:05")
		resp.DelayedTo = &s
	}
	return resp
}

func ToStatusUpdateResponseList(models []schedModel.RitualStatusUpdateModel) []StatusUpdateResponse {
	out := make([]StatusUpdateResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToStatusUpdateResponse(&models[i]))
	}
	return out
}

type ExceptionResponse struct {
	ID           uuid.UUID `json:"id"`
	SeriesID     uuid.UUID `json:"series_id"`
	OriginalDate string    `json:"original_date"`
	Kind         string    `json:"kind"`
	Reason       string    `json:"reason"`
	NewDate      *string   `json:"new_date,omitempty"`
	NewStartTime *string   `json:"new_start_time,omitempty"`
	NewOfficiant *string   `json:"new_officiant,omitempty"`
	NewLocation  *string   `json:"new_location,omitempty"`
	NotifyTiming string    `json:"notify_timing"`
	CreatedAt    string    `json:"created_at"`
}

func ToExceptionResponse(m *schedModel.RitualExceptionModel) *ExceptionResponse {
	resp := &ExceptionResponse{
		ID:           m.RitualExceptionID,
		SeriesID:     m.RitualExceptionSeriesID,
		OriginalDate: m.RitualExceptionOriginalDate.Format("2006-01-02"),
		Kind:         string(m.RitualExceptionKind),
		Reason:       m.RitualExceptionReason,
		NewOfficiant: m.RitualExceptionNewOfficiant,
		NewLocation:  m.RitualExceptionNewLocation,
		NotifyTiming: string(m.RitualExceptionNotifyTiming),
		CreatedAt:    m.RitualExceptionCreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.RitualExceptionNewDate != nil {
		s := m.RitualExceptionNewDate.Format("2006-01-02")
		resp.NewDate = &s
	}
	if m.RitualExceptionNewStartTime != nil {
		s := m.RitualExceptionNewStartTime.Format("15:04:05")
		resp.NewStartTime = &s
	}
	return resp
}

func ToExceptionResponseList(models []schedModel.RitualExceptionModel) []ExceptionResponse {
	out := make([]ExceptionResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToExceptionResponse(&models[i]))
	}
	return out
}
