// file: internals/features/home/brochures/controller/brochure_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	brochureDTO "templeku_backend/internals/features/home/brochures/dto"
	brochureModel "templeku_backend/internals/features/home/brochures/model"
	helper "templeku_backend/internals/helpers"
	helperAuth "templeku_backend/internals/helpers/auth"
)

type BrochureController struct {
	DB *gorm.DB
}

func NewBrochureController(db *gorm.DB) *BrochureController {
	return &BrochureController{DB: db}
}

var validateBrochure = validator.New()

// ===================== CREATE =====================
// POST /brochures (multipart: fields + optional "image")
func (ctrl *BrochureController) Create(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req brochureDTO.CreateBrochureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateBrochure.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m, err := req.ToModel(templeID, &actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event date")
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := helper.SaveImageAsWebP("brochures", fh)
		if err != nil {
			log.Printf("[BROCHURE ERROR] image convert: %v", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Image could not be processed")
		}
		m.BrochureImageURL = &url
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[BROCHURE ERROR] create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save brochure")
	}
	return helper.JsonCreated(c, "Brochure created", brochureDTO.ToBrochureResponse(m))
}

// ===================== LIST =====================
// GET /brochures?active=&page=&per_page=
func (ctrl *BrochureController) List(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&brochureModel.BrochureModel{}).
		Where("brochure_temple_id = ?", templeID)

	if active := strings.TrimSpace(c.Query("active")); active == "true" {
		tx = tx.Where("brochure_is_active = TRUE")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[BROCHURE ERROR] count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load brochures")
	}

	var rows []brochureModel.BrochureModel
	if err := tx.
		Order("brochure_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[BROCHURE ERROR] list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load brochures")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", brochureDTO.ToBrochureResponseList(rows), &pagination)
}

// ===================== UPDATE =====================
// PUT /brochures/:id (multipart; a new "image" replaces the stored file)
func (ctrl *BrochureController) Update(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req brochureDTO.UpdateBrochureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateBrochure.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var m brochureModel.BrochureModel
	if err := ctrl.DB.
		Where("brochure_id = ? AND brochure_temple_id = ?", id, templeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Brochure not found")
		}
		log.Printf("[BROCHURE ERROR] load: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load brochure")
	}

	if err := req.ApplyToModel(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event date")
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := helper.SaveImageAsWebP("brochures", fh)
		if err != nil {
			log.Printf("[BROCHURE ERROR] image convert: %v", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Image could not be processed")
		}
		if m.BrochureImageURL != nil {
			_ = helper.RemoveUploadedFile(*m.BrochureImageURL)
		}
		m.BrochureImageURL = &url
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		log.Printf("[BROCHURE ERROR] update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save brochure")
	}
	return helper.JsonUpdated(c, "Brochure updated", brochureDTO.ToBrochureResponse(&m))
}

// ===================== DELETE =====================
// DELETE /brochures/:id (soft delete, image file kept for restore)
func (ctrl *BrochureController) Delete(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.
		Where("brochure_id = ? AND brochure_temple_id = ?", id, templeID).
		Delete(&brochureModel.BrochureModel{})
	if res.Error != nil {
		log.Printf("[BROCHURE ERROR] delete: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete brochure")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Brochure not found")
	}
	return helper.JsonDeleted(c, "Brochure deleted", fiber.Map{"brochure_id": id})
}
