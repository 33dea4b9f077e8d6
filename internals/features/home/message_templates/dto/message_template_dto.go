// file: internals/features/home/message_templates/dto/message_template_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"templeku_backend/internals/features/home/message_templates/model"
	"templeku_backend/internals/features/home/message_templates/service"
)

/* =========================================================
   === REQUEST ===
========================================================= */

type CreateMessageTemplateRequest struct {
	MessageTemplateName     string         `json:"message_template_name" validate:"required,min=3,max=120"`
	MessageTemplateSubject  string         `json:"message_template_subject" validate:"omitempty,max=255"`
	MessageTemplateBody     string         `json:"message_template_body" validate:"required"`
	MessageTemplateDefaults map[string]any `json:"message_template_defaults"`
}

func (r *CreateMessageTemplateRequest) ToModel(templeID uuid.UUID, actorID *uuid.UUID) *model.MessageTemplateModel {
	return &model.MessageTemplateModel{
		MessageTemplateTempleID:  templeID,
		MessageTemplateName:      r.MessageTemplateName,
		MessageTemplateSubject:   r.MessageTemplateSubject,
		MessageTemplateBody:      r.MessageTemplateBody,
		MessageTemplateDefaults:  datatypes.JSONMap(r.MessageTemplateDefaults),
		MessageTemplateCreatedBy: actorID,
	}
}

type UpdateMessageTemplateRequest struct {
	MessageTemplateName     *string        `json:"message_template_name" validate:"omitempty,min=3,max=120"`
	MessageTemplateSubject  *string        `json:"message_template_subject" validate:"omitempty,max=255"`
	MessageTemplateBody     *string        `json:"message_template_body" validate:"omitempty"`
	MessageTemplateDefaults map[string]any `json:"message_template_defaults"`
}

func (r *UpdateMessageTemplateRequest) ApplyToModel(m *model.MessageTemplateModel) {
	if r.MessageTemplateName != nil {
		m.MessageTemplateName = *r.MessageTemplateName
	}
	if r.MessageTemplateSubject != nil {
		m.MessageTemplateSubject = *r.MessageTemplateSubject
	}
	if r.MessageTemplateBody != nil {
		m.MessageTemplateBody = *r.MessageTemplateBody
	}
	if r.MessageTemplateDefaults != nil {
		m.MessageTemplateDefaults = datatypes.JSONMap(r.MessageTemplateDefaults)
	}
}

type PreviewMessageTemplateRequest struct {
	Variables map[string]any `json:"variables"`
}

/* =========================================================
   === RESPONSE ===
========================================================= */

type MessageTemplateResponse struct {
	MessageTemplateID uuid.UUID `json:"message_template_id"`

	MessageTemplateName    string `json:"message_template_name"`
	MessageTemplateSubject string `json:"message_template_subject"`
	MessageTemplateBody    string `json:"message_template_body"`

	MessageTemplateDefaults     map[string]any `json:"message_template_defaults"`
	MessageTemplatePlaceholders []string       `json:"message_template_placeholders"`

	MessageTemplateCreatedAt time.Time `json:"message_template_created_at"`
	MessageTemplateUpdatedAt time.Time `json:"message_template_updated_at"`
}

func ToMessageTemplateResponse(m *model.MessageTemplateModel) *MessageTemplateResponse {
	if m == nil {
		return nil
	}
	return &MessageTemplateResponse{
		MessageTemplateID:           m.MessageTemplateID,
		MessageTemplateName:         m.MessageTemplateName,
		MessageTemplateSubject:      m.MessageTemplateSubject,
		MessageTemplateBody:         m.MessageTemplateBody,
		MessageTemplateDefaults:     map[string]any(m.MessageTemplateDefaults),
		MessageTemplatePlaceholders: service.Placeholders(m.MessageTemplateBody),
		MessageTemplateCreatedAt:    m.MessageTemplateCreatedAt,
		MessageTemplateUpdatedAt:    m.MessageTemplateUpdatedAt,
	}
}

func ToMessageTemplateResponseList(models []model.MessageTemplateModel) []MessageTemplateResponse {
	out := make([]MessageTemplateResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToMessageTemplateResponse(&models[i]))
	}
	return out
}

type MessageTemplatePreviewResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
