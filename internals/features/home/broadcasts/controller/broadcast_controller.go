// file: internals/features/home/broadcasts/controller/broadcast_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	broadcastDTO "templeku_backend/internals/features/home/broadcasts/dto"
	broadcastModel "templeku_backend/internals/features/home/broadcasts/model"
	tmplModel "templeku_backend/internals/features/home/message_templates/model"
	tmplService "templeku_backend/internals/features/home/message_templates/service"
	outboxModel "templeku_backend/internals/features/notifications/outbox/model"
	outboxService "templeku_backend/internals/features/notifications/outbox/service"
	helper "templeku_backend/internals/helpers"
	helperAuth "templeku_backend/internals/helpers/auth"
)

type BroadcastController struct {
	DB     *gorm.DB
	Outbox *outboxService.Outbox
}

func NewBroadcastController(db *gorm.DB, outbox *outboxService.Outbox) *BroadcastController {
	return &BroadcastController{DB: db, Outbox: outbox}
}

var validateBroadcast = validator.New()

// ===================== CREATE =====================
// POST /broadcasts
// Renders (template + variables) or takes the free-form body, records the
// audit row, then queues delivery through the outbox.
func (ctrl *BroadcastController) Create(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req broadcastDTO.CreateBroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateBroadcast.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	subject := req.BroadcastSubject
	body := req.BroadcastBody
	var templateID *uuid.UUID

	if req.BroadcastTemplateID != nil {
		tid, err := uuid.Parse(*req.BroadcastTemplateID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid template_id")
		}

		var tmpl tmplModel.MessageTemplateModel
		if err := ctrl.DB.
			Where("message_template_id = ? AND message_template_temple_id = ?", tid, templeID).
			First(&tmpl).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Template not found")
			}
			log.Printf("[BROADCAST ERROR] template load: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load template")
		}

		vars := make(map[string]any, len(tmpl.MessageTemplateDefaults)+len(req.BroadcastVariables))
		for k, v := range tmpl.MessageTemplateDefaults {
			vars[k] = v
		}
		for k, v := range req.BroadcastVariables {
			vars[k] = v
		}
		subject = tmplService.Render(tmpl.MessageTemplateSubject, vars)
		body = tmplService.Render(tmpl.MessageTemplateBody, vars)
		templateID = &tid
	}

	if body == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Either broadcast_body or broadcast_template_id is required")
	}

	sendAt := time.Now()
	if req.BroadcastSendAt != nil && req.BroadcastSendAt.After(sendAt) {
		sendAt = *req.BroadcastSendAt
	}

	m := &broadcastModel.BroadcastModel{
		BroadcastTempleID:   templeID,
		BroadcastTemplateID: templateID,
		BroadcastChannel:    req.BroadcastChannel,
		BroadcastRecipients: req.BroadcastRecipients,
		BroadcastSubject:    subject,
		BroadcastBody:       body,
		BroadcastStatus:     broadcastModel.BroadcastQueued,
		BroadcastSendAt:     sendAt,
		BroadcastCreatedBy:  &actorID,
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[BROADCAST ERROR] create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save broadcast")
	}

	err = ctrl.Outbox.Enqueue(c.UserContext(), outboxService.EnqueueOptions{
		TempleID:   templeID,
		Channel:    outboxModel.NotificationChannelEnum(req.BroadcastChannel),
		Recipients: req.BroadcastRecipients,
		Subject:    subject,
		Body:       body,
		SendAt:     sendAt,
		Context: datatypes.JSONMap{
			"source":       "broadcast",
			"broadcast_id": m.BroadcastID.String(),
		},
	})
	if err != nil {
		// audit row stays; the admin can requeue from the list view
		log.Printf("[BROADCAST WARN] enqueue failed for %s: %v", m.BroadcastID, err)
	}

	return helper.JsonCreated(c, "Broadcast queued", broadcastDTO.ToBroadcastResponse(m))
}

// ===================== LIST =====================
// GET /broadcasts?page=&per_page=
func (ctrl *BroadcastController) List(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&broadcastModel.BroadcastModel{}).
		Where("broadcast_temple_id = ?", templeID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[BROADCAST ERROR] count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load broadcasts")
	}

	var rows []broadcastModel.BroadcastModel
	if err := tx.
		Order("broadcast_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[BROADCAST ERROR] list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load broadcasts")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", broadcastDTO.ToBroadcastResponseList(rows), &pagination)
}
