// file: internals/features/home/announcements/controller/announcement_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	annDTO "templeku_backend/internals/features/home/announcements/dto"
	annModel "templeku_backend/internals/features/home/announcements/model"
	helper "templeku_backend/internals/helpers"
	helperAuth "templeku_backend/internals/helpers/auth"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

var validateAnnouncement = validator.New()

// ===================== CREATE =====================
// POST /announcements
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req annDTO.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateAnnouncement.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m := req.ToModel(templeID, &actorID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[ANNOUNCEMENT ERROR] create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save announcement")
	}
	return helper.JsonCreated(c, "Announcement created", annDTO.ToAnnouncementResponse(m))
}

// ===================== LIST =====================
// GET /announcements?tag=&pinned=&page=&per_page=
// Public listing only shows rows inside their publish window.
func (ctrl *AnnouncementController) List(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&annModel.AnnouncementModel{}).
		Where("announcement_temple_id = ?", templeID)

	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		tx = tx.Where("? = ANY(announcement_tags)", tag)
	}
	if pinned := strings.TrimSpace(c.Query("pinned")); pinned == "true" {
		tx = tx.Where("announcement_is_pinned = TRUE")
	}
	if c.Query("all") != "true" {
		now := time.Now()
		tx = tx.Where("announcement_published_at IS NULL OR announcement_published_at <= ?", now).
			Where("announcement_expires_at IS NULL OR announcement_expires_at > ?", now)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[ANNOUNCEMENT ERROR] count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load announcements")
	}

	var rows []annModel.AnnouncementModel
	if err := tx.
		Order("announcement_is_pinned DESC, announcement_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ANNOUNCEMENT ERROR] list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load announcements")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", annDTO.ToAnnouncementResponseList(rows), &pagination)
}

// ===================== DETAIL =====================
// GET /announcements/:id
func (ctrl *AnnouncementController) GetByID(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m annModel.AnnouncementModel
	if err := ctrl.DB.
		Where("announcement_id = ? AND announcement_temple_id = ?", id, templeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		log.Printf("[ANNOUNCEMENT ERROR] detail: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load announcement")
	}
	return helper.JsonOK(c, "ok", annDTO.ToAnnouncementResponse(&m))
}

// ===================== UPDATE =====================
// PUT /announcements/:id
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req annDTO.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateAnnouncement.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var m annModel.AnnouncementModel
	if err := ctrl.DB.
		Where("announcement_id = ? AND announcement_temple_id = ?", id, templeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		log.Printf("[ANNOUNCEMENT ERROR] load: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load announcement")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		log.Printf("[ANNOUNCEMENT ERROR] update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save announcement")
	}
	return helper.JsonUpdated(c, "Announcement updated", annDTO.ToAnnouncementResponse(&m))
}

// ===================== DELETE =====================
// DELETE /announcements/:id (soft delete)
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.
		Where("announcement_id = ? AND announcement_temple_id = ?", id, templeID).
		Delete(&annModel.AnnouncementModel{})
	if res.Error != nil {
		log.Printf("[ANNOUNCEMENT ERROR] delete: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}
	return helper.JsonDeleted(c, "Announcement deleted", fiber.Map{"announcement_id": id})
}
