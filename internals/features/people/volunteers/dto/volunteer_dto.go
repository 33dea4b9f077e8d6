// file: internals/features/people/volunteers/dto/volunteer_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"templeku_backend/internals/features/people/volunteers/model"
)

/* =========================================================
   === REQUEST ===
========================================================= */

type CreateVolunteerRequest struct {
	VolunteerName  string `json:"volunteer_name" validate:"required,min=2,max=120"`
	VolunteerPhone string `json:"volunteer_phone" validate:"omitempty,max=30"`
	VolunteerEmail string `json:"volunteer_email" validate:"omitempty,email"`

	VolunteerSkills        []string `json:"volunteer_skills" validate:"omitempty,dive,max=60"`
	VolunteerAvailableDays []string `json:"volunteer_available_days" validate:"omitempty,dive,oneof=sunday monday tuesday wednesday thursday friday saturday"`

	VolunteerNotes string `json:"volunteer_notes"`
}

func (r *CreateVolunteerRequest) ToModel(templeID uuid.UUID, actorID *uuid.UUID) *model.VolunteerModel {
	return &model.VolunteerModel{
		VolunteerTempleID:      templeID,
		VolunteerName:          r.VolunteerName,
		VolunteerPhone:         r.VolunteerPhone,
		VolunteerEmail:         r.VolunteerEmail,
		VolunteerSkills:        r.VolunteerSkills,
		VolunteerAvailableDays: r.VolunteerAvailableDays,
		VolunteerStatus:        model.VolunteerActive,
		VolunteerNotes:         r.VolunteerNotes,
		VolunteerCreatedBy:     actorID,
	}
}

type UpdateVolunteerRequest struct {
	VolunteerName  *string `json:"volunteer_name" validate:"omitempty,min=2,max=120"`
	VolunteerPhone *string `json:"volunteer_phone" validate:"omitempty,max=30"`
	VolunteerEmail *string `json:"volunteer_email" validate:"omitempty,email"`

	VolunteerSkills        []string `json:"volunteer_skills" validate:"omitempty,dive,max=60"`
	VolunteerAvailableDays []string `json:"volunteer_available_days" validate:"omitempty,dive,oneof=sunday monday tuesday wednesday thursday friday saturday"`

	VolunteerStatus *string `json:"volunteer_status" validate:"omitempty,oneof=active inactive"`
	VolunteerNotes  *string `json:"volunteer_notes"`
}

func (r *UpdateVolunteerRequest) ApplyToModel(m *model.VolunteerModel) {
	if r.VolunteerName != nil {
		m.VolunteerName = *r.VolunteerName
	}
	if r.VolunteerPhone != nil {
		m.VolunteerPhone = *r.VolunteerPhone
	}
	if r.VolunteerEmail != nil {
		m.VolunteerEmail = *r.VolunteerEmail
	}
	if r.VolunteerSkills != nil {
		m.VolunteerSkills = r.VolunteerSkills
	}
	if r.VolunteerAvailableDays != nil {
		m.VolunteerAvailableDays = r.VolunteerAvailableDays
	}
	if r.VolunteerStatus != nil {
		m.VolunteerStatus = model.VolunteerStatusEnum(*r.VolunteerStatus)
	}
	if r.VolunteerNotes != nil {
		m.VolunteerNotes = *r.VolunteerNotes
	}
}

/* =========================================================
   === RESPONSE ===
========================================================= */

type VolunteerResponse struct {
	VolunteerID uuid.UUID `json:"volunteer_id"`

	VolunteerName  string `json:"volunteer_name"`
	VolunteerPhone string `json:"volunteer_phone"`
	VolunteerEmail string `json:"volunteer_email"`

	VolunteerSkills        []string `json:"volunteer_skills"`
	VolunteerAvailableDays []string `json:"volunteer_available_days"`

	VolunteerStatus string `json:"volunteer_status"`
	VolunteerNotes  string `json:"volunteer_notes"`

	VolunteerCreatedAt time.Time `json:"volunteer_created_at"`
	VolunteerUpdatedAt time.Time `json:"volunteer_updated_at"`
}

func ToVolunteerResponse(m *model.VolunteerModel) *VolunteerResponse {
	if m == nil {
		return nil
	}
	return &VolunteerResponse{
		VolunteerID:            m.VolunteerID,
		VolunteerName:          m.VolunteerName,
		VolunteerPhone:         m.VolunteerPhone,
		VolunteerEmail:         m.VolunteerEmail,
		VolunteerSkills:        m.VolunteerSkills,
		VolunteerAvailableDays: m.VolunteerAvailableDays,
		VolunteerStatus:        string(m.VolunteerStatus),
		VolunteerNotes:         m.VolunteerNotes,
		VolunteerCreatedAt:     m.VolunteerCreatedAt,
		VolunteerUpdatedAt:     m.VolunteerUpdatedAt,
	}
}

func ToVolunteerResponseList(models []model.VolunteerModel) []VolunteerResponse {
	out := make([]VolunteerResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToVolunteerResponse(&models[i]))
	}
	return out
}
