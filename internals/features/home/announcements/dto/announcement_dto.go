// file: internals/features/home/announcements/dto/announcement_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"templeku_backend/internals/features/home/announcements/model"
)

/* =========================================================
   === REQUEST ===
========================================================= */

type CreateAnnouncementRequest struct {
	AnnouncementTitle   string   `json:"announcement_title" validate:"required,min=3,max=255"`
	AnnouncementContent string   `json:"announcement_content" validate:"required"`
	AnnouncementTags    []string `json:"announcement_tags" validate:"omitempty,dive,max=40"`

	AnnouncementIsPinned    bool       `json:"announcement_is_pinned"`
	AnnouncementPublishedAt *time.Time `json:"announcement_published_at"`
	AnnouncementExpiresAt   *time.Time `json:"announcement_expires_at"`
}

func (r *CreateAnnouncementRequest) ToModel(templeID uuid.UUID, actorID *uuid.UUID) *model.AnnouncementModel {
	return &model.AnnouncementModel{
		AnnouncementTempleID:    templeID,
		AnnouncementTitle:       r.AnnouncementTitle,
		AnnouncementContent:     r.AnnouncementContent,
		AnnouncementTags:        r.AnnouncementTags,
		AnnouncementIsPinned:    r.AnnouncementIsPinned,
		AnnouncementPublishedAt: r.AnnouncementPublishedAt,
		AnnouncementExpiresAt:   r.AnnouncementExpiresAt,
		AnnouncementCreatedBy:   actorID,
	}
}

type UpdateAnnouncementRequest struct {
	AnnouncementTitle   *string  `json:"announcement_title" validate:"omitempty,min=3,max=255"`
	AnnouncementContent *string  `json:"announcement_content" validate:"omitempty"`
	AnnouncementTags    []string `json:"announcement_tags" validate:"omitempty,dive,max=40"`

	AnnouncementIsPinned    *bool      `json:"announcement_is_pinned"`
	AnnouncementPublishedAt *time.Time `json:"announcement_published_at"`
	AnnouncementExpiresAt   *time.Time `json:"announcement_expires_at"`
}

func (r *UpdateAnnouncementRequest) ApplyToModel(m *model.AnnouncementModel) {
	if r.AnnouncementTitle != nil {
		m.AnnouncementTitle = *r.AnnouncementTitle
	}
	if r.AnnouncementContent != nil {
		m.AnnouncementContent = *r.AnnouncementContent
	}
	if r.AnnouncementTags != nil {
		m.AnnouncementTags = r.AnnouncementTags
	}
	if r.AnnouncementIsPinned != nil {
		m.AnnouncementIsPinned = *r.AnnouncementIsPinned
	}
	if r.AnnouncementPublishedAt != nil {
		m.AnnouncementPublishedAt = r.AnnouncementPublishedAt
	}
	if r.AnnouncementExpiresAt != nil {
		m.AnnouncementExpiresAt = r.AnnouncementExpiresAt
	}
}

/* =========================================================
   === RESPONSE ===
========================================================= */

type AnnouncementResponse struct {
	AnnouncementID uuid.UUID `json:"announcement_id"`

	AnnouncementTitle   string   `json:"announcement_title"`
	AnnouncementContent string   `json:"announcement_content"`
	AnnouncementTags    []string `json:"announcement_tags"`

	AnnouncementIsPinned    bool       `json:"announcement_is_pinned"`
	AnnouncementPublishedAt *time.Time `json:"announcement_published_at,omitempty"`
	AnnouncementExpiresAt   *time.Time `json:"announcement_expires_at,omitempty"`

	AnnouncementCreatedAt time.Time `json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time `json:"announcement_updated_at"`
}

func ToAnnouncementResponse(m *model.AnnouncementModel) *AnnouncementResponse {
	if m == nil {
		return nil
	}
	return &AnnouncementResponse{
		AnnouncementID:          m.AnnouncementID,
		AnnouncementTitle:       m.AnnouncementTitle,
		AnnouncementContent:     m.AnnouncementContent,
		AnnouncementTags:        m.AnnouncementTags,
		AnnouncementIsPinned:    m.AnnouncementIsPinned,
		AnnouncementPublishedAt: m.AnnouncementPublishedAt,
		AnnouncementExpiresAt:   m.AnnouncementExpiresAt,
		AnnouncementCreatedAt:   m.AnnouncementCreatedAt,
		AnnouncementUpdatedAt:   m.AnnouncementUpdatedAt,
	}
}

func ToAnnouncementResponseList(models []model.AnnouncementModel) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToAnnouncementResponse(&models[i]))
	}
	return out
}
