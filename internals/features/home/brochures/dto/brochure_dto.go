// file: internals/features/home/brochures/dto/brochure_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"templeku_backend/internals/features/home/brochures/model"
)

/* =========================================================
   === REQUEST ===
   Brochures arrive as multipart forms (image + fields), so the
   request struct carries form tags instead of json tags.
========================================================= */

type CreateBrochureRequest struct {
	BrochureTitle       string `form:"brochure_title" validate:"required,min=3,max=255"`
	BrochureDescription string `form:"brochure_description" validate:"omitempty"`
	BrochureEventDate   string `form:"brochure_event_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateBrochureRequest) ToModel(templeID uuid.UUID, actorID *uuid.UUID) (*model.BrochureModel, error) {
	m := &model.BrochureModel{
		BrochureTempleID:    templeID,
		BrochureTitle:       r.BrochureTitle,
		BrochureDescription: r.BrochureDescription,
		BrochureIsActive:    true,
		BrochureCreatedBy:   actorID,
	}
	if r.BrochureEventDate != "" {
		d, err := time.Parse("2006-01-02", r.BrochureEventDate)
		if err != nil {
			return nil, err
		}
		m.BrochureEventDate = &d
	}
	return m, nil
}

type UpdateBrochureRequest struct {
	BrochureTitle       *string `form:"brochure_title" validate:"omitempty,min=3,max=255"`
	BrochureDescription *string `form:"brochure_description" validate:"omitempty"`
	BrochureEventDate   *string `form:"brochure_event_date" validate:"omitempty,datetime=2006-01-02"`
	BrochureIsActive    *bool   `form:"brochure_is_active"`
}

func (r *UpdateBrochureRequest) ApplyToModel(m *model.BrochureModel) error {
	if r.BrochureTitle != nil {
		m.BrochureTitle = *r.BrochureTitle
	}
	if r.BrochureDescription != nil {
		m.BrochureDescription = *r.BrochureDescription
	}
	if r.BrochureEventDate != nil {
		d, err := time.Parse("2006-01-02", *r.BrochureEventDate)
		if err != nil {
			return err
		}
		m.BrochureEventDate = &d
	}
	if r.BrochureIsActive != nil {
		m.BrochureIsActive = *r.BrochureIsActive
	}
	return nil
}

/* =========================================================
   === RESPONSE ===
========================================================= */

type BrochureResponse struct {
	BrochureID uuid.UUID `json:"brochure_id"`

	BrochureTitle       string  `json:"brochure_title"`
	BrochureDescription string  `json:"brochure_description"`
	BrochureImageURL    *string `json:"brochure_image_url,omitempty"`

	BrochureEventDate *string `json:"brochure_event_date,omitempty"`
	BrochureIsActive  bool    `json:"brochure_is_active"`

	BrochureCreatedAt time.Time `json:"brochure_created_at"`
	BrochureUpdatedAt time.Time `json:"brochure_updated_at"`
}

func ToBrochureResponse(m *model.BrochureModel) *BrochureResponse {
	if m == nil {
		return nil
	}
	resp := &BrochureResponse{
		BrochureID:          m.BrochureID,
		BrochureTitle:       m.BrochureTitle,
		BrochureDescription: m.BrochureDescription,
		BrochureImageURL:    m.BrochureImageURL,
		BrochureIsActive:    m.BrochureIsActive,
		BrochureCreatedAt:   m.BrochureCreatedAt,
		BrochureUpdatedAt:   m.BrochureUpdatedAt,
	}
	if m.BrochureEventDate != nil {
		d := m.BrochureEventDate.Format("2006-01-02")
		resp.BrochureEventDate = &d
	}
	return resp
}

func ToBrochureResponseList(models []model.BrochureModel) []BrochureResponse {
	out := make([]BrochureResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToBrochureResponse(&models[i]))
	}
	return out
}
