// file: internals/features/home/broadcasts/dto/broadcast_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"templeku_backend/internals/features/home/broadcasts/model"
)

/* =========================================================
   === REQUEST ===
========================================================= */

// CreateBroadcastRequest either references a stored template (template_id +
// variables) or carries a free-form subject/body. send_at in the past or
// omitted means "send on the next dispatcher tick".
type CreateBroadcastRequest struct {
	BroadcastTemplateID *string        `json:"broadcast_template_id" validate:"omitempty,uuid4"`
	BroadcastVariables  map[string]any `json:"broadcast_variables"`

	BroadcastChannel    string     `json:"broadcast_channel" validate:"required,oneof=email sms push whatsapp"`
	BroadcastRecipients []string   `json:"broadcast_recipients" validate:"required,min=1,dive,min=3"`
	BroadcastSubject    string     `json:"broadcast_subject" validate:"omitempty,max=255"`
	BroadcastBody       string     `json:"broadcast_body" validate:"omitempty"`
	BroadcastSendAt     *time.Time `json:"broadcast_send_at"`
}

/* =========================================================
   === RESPONSE ===
========================================================= */

type BroadcastResponse struct {
	BroadcastID uuid.UUID `json:"broadcast_id"`

	BroadcastTemplateID *uuid.UUID `json:"broadcast_template_id,omitempty"`

	BroadcastChannel    string   `json:"broadcast_channel"`
	BroadcastRecipients []string `json:"broadcast_recipients"`
	BroadcastSubject    string   `json:"broadcast_subject"`
	BroadcastBody       string   `json:"broadcast_body"`

	BroadcastStatus string    `json:"broadcast_status"`
	BroadcastSendAt time.Time `json:"broadcast_send_at"`

	BroadcastCreatedAt time.Time `json:"broadcast_created_at"`
}

func ToBroadcastResponse(m *model.BroadcastModel) *BroadcastResponse {
	if m == nil {
		return nil
	}
	return &BroadcastResponse{
		BroadcastID:         m.BroadcastID,
		BroadcastTemplateID: m.BroadcastTemplateID,
		BroadcastChannel:    m.BroadcastChannel,
		BroadcastRecipients: m.BroadcastRecipients,
		BroadcastSubject:    m.BroadcastSubject,
		BroadcastBody:       m.BroadcastBody,
		BroadcastStatus:     string(m.BroadcastStatus),
		BroadcastSendAt:     m.BroadcastSendAt,
		BroadcastCreatedAt:  m.BroadcastCreatedAt,
	}
}

func ToBroadcastResponseList(models []model.BroadcastModel) []BroadcastResponse {
	out := make([]BroadcastResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToBroadcastResponse(&models[i]))
	}
	return out
}
