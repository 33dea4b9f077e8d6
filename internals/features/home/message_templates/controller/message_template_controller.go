// file: internals/features/home/message_templates/controller/message_template_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tmplDTO "templeku_backend/internals/features/home/message_templates/dto"
	tmplModel "templeku_backend/internals/features/home/message_templates/model"
	tmplService "templeku_backend/internals/features/home/message_templates/service"
	helper "templeku_backend/internals/helpers"
	helperAuth "templeku_backend/internals/helpers/auth"
)

type MessageTemplateController struct {
	DB *gorm.DB
}

func NewMessageTemplateController(db *gorm.DB) *MessageTemplateController {
	return &MessageTemplateController{DB: db}
}

var validateTemplate = validator.New()

// ===================== CREATE =====================
// POST /message-templates
func (ctrl *MessageTemplateController) Create(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req tmplDTO.CreateMessageTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateTemplate.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m := req.ToModel(templeID, &actorID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[TEMPLATE ERROR] create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save template")
	}
	return helper.JsonCreated(c, "Template created", tmplDTO.ToMessageTemplateResponse(m))
}

// ===================== LIST =====================
// GET /message-templates?page=&per_page=
func (ctrl *MessageTemplateController) List(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&tmplModel.MessageTemplateModel{}).
		Where("message_template_temple_id = ?", templeID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[TEMPLATE ERROR] count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load templates")
	}

	var rows []tmplModel.MessageTemplateModel
	if err := tx.
		Order("message_template_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[TEMPLATE ERROR] list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load templates")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", tmplDTO.ToMessageTemplateResponseList(rows), &pagination)
}

// ===================== PREVIEW =====================
// POST /message-templates/:id/preview
// Renders with the caller's variables layered over the stored defaults.
func (ctrl *MessageTemplateController) Preview(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req tmplDTO.PreviewMessageTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	var m tmplModel.MessageTemplateModel
	if err := ctrl.DB.
		Where("message_template_id = ? AND message_template_temple_id = ?", id, templeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Template not found")
		}
		log.Printf("[TEMPLATE ERROR] load: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load template")
	}

	vars := make(map[string]any, len(m.MessageTemplateDefaults)+len(req.Variables))
	for k, v := range m.MessageTemplateDefaults {
		vars[k] = v
	}
	for k, v := range req.Variables {
		vars[k] = v
	}

	return helper.JsonOK(c, "ok", tmplDTO.MessageTemplatePreviewResponse{
		Subject: tmplService.Render(m.MessageTemplateSubject, vars),
		Body:    tmplService.Render(m.MessageTemplateBody, vars),
	})
}

// ===================== UPDATE =====================
// PUT /message-templates/:id
func (ctrl *MessageTemplateController) Update(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req tmplDTO.UpdateMessageTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateTemplate.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var m tmplModel.MessageTemplateModel
	if err := ctrl.DB.
		Where("message_template_id = ? AND message_template_temple_id = ?", id, templeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Template not found")
		}
		log.Printf("[TEMPLATE ERROR] load: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load template")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		log.Printf("[TEMPLATE ERROR] update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save template")
	}
	return helper.JsonUpdated(c, "Template updated", tmplDTO.ToMessageTemplateResponse(&m))
}

// ===================== DELETE =====================
// DELETE /message-templates/:id (soft delete)
func (ctrl *MessageTemplateController) Delete(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.
		Where("message_template_id = ? AND message_template_temple_id = ?", id, templeID).
		Delete(&tmplModel.MessageTemplateModel{})
	if res.Error != nil {
		log.Printf("[TEMPLATE ERROR] delete: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete template")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Template not found")
	}
	return helper.JsonDeleted(c, "Template deleted", fiber.Map{"message_template_id": id})
}
