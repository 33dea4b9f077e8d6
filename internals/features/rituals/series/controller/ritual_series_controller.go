// file: internals/features/rituals/series/controller/ritual_series_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	seriesDTO "templeku_backend/internals/features/rituals/series/dto"
	seriesModel "templeku_backend/internals/features/rituals/series/model"
	schedule "templeku_backend/internals/features/rituals/schedule/service"
	helper "templeku_backend/internals/helpers"
	helperAuth "templeku_backend/internals/helpers/auth"
)

type RitualSeriesController struct {
	DB *gorm.DB
}

func NewRitualSeriesController(db *gorm.DB) *RitualSeriesController {
	return &RitualSeriesController{DB: db}
}

var validateSeries = validator.New()

// validateRecurrence rejects the write before anything hits the table.
// Invalid combinations (weekly without weekdays, end date before start,
// monthly ordinal without exactly one weekday) never persist.
func validateRecurrence(m *seriesModel.RitualSeriesModel) error {
	rule, err := schedule.RuleFromSeries(m)
	if err != nil {
		return err
	}
	return rule.Validate()
}

func ruleErrorResponse(c *fiber.Ctx, err error) error {
	var ruleErr *schedule.InvalidRuleError
	if errors.As(err, &ruleErr) {
		return helper.JsonError(c, fiber.StatusBadRequest, ruleErr.Error())
	}
	var rangeErr *schedule.InvalidRangeError
	if errors.As(err, &rangeErr) {
		return helper.JsonError(c, fiber.StatusBadRequest, rangeErr.Error())
	}
	log.Printf("[SERIES ERROR] %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Series storage failed, please retry")
}

// ===================== CREATE =====================
// POST /ritual-series
func (ctrl *RitualSeriesController) Create(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req seriesDTO.CreateRitualSeriesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateSeries.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m, err := req.ToModel(templeID, &actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date or time format")
	}
	if err := validateRecurrence(m); err != nil {
		return ruleErrorResponse(c, err)
	}

	slug, err := helper.EnsureUniqueSlug(ctrl.DB,
		helper.GenerateSlug(m.RitualSeriesTitle),
		"ritual_series", "ritual_series_slug", "ritual_series_deleted_at")
	if err != nil {
		return ruleErrorResponse(c, err)
	}
	m.RitualSeriesSlug = &slug

	if err := ctrl.DB.Create(m).Error; err != nil {
		return ruleErrorResponse(c, err)
	}
	return helper.JsonCreated(c, "Series created", seriesDTO.ToRitualSeriesResponse(m))
}

// ===================== LIST =====================
// GET /ritual-series?status=&ritual_type=&q=&page=&per_page=
func (ctrl *RitualSeriesController) List(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&seriesModel.RitualSeriesModel{}).
		Where("ritual_series_temple_id = ?", templeID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("ritual_series_status = ?", status)
	}
	if rt := strings.TrimSpace(c.Query("ritual_type")); rt != "" {
		tx = tx.Where("ritual_series_ritual_type = ?", rt)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("ritual_series_title ILIKE ? OR ritual_series_deity ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ruleErrorResponse(c, err)
	}

	var rows []seriesModel.RitualSeriesModel
	if err := tx.
		Order("ritual_series_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return ruleErrorResponse(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", seriesDTO.ToRitualSeriesResponseList(rows), &pagination)
}

// ===================== DETAIL =====================
// GET /ritual-series/:id
func (ctrl *RitualSeriesController) GetByID(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m seriesModel.RitualSeriesModel
	if err := ctrl.DB.
		Where("ritual_series_id = ? AND ritual_series_temple_id = ?", id, templeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Series not found")
		}
		return ruleErrorResponse(c, err)
	}
	return helper.JsonOK(c, "ok", seriesDTO.ToRitualSeriesResponse(&m))
}

// ===================== UPDATE =====================
// PUT /ritual-series/:id
// Recurrence edits change every future occurrence; exceptions and status
// history stay keyed to their original dates.
func (ctrl *RitualSeriesController) Update(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req seriesDTO.UpdateRitualSeriesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateSeries.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var m seriesModel.RitualSeriesModel
	if err := ctrl.DB.
		Where("ritual_series_id = ? AND ritual_series_temple_id = ?", id, templeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Series not found")
		}
		return ruleErrorResponse(c, err)
	}

	if err := req.ApplyToModel(&m, &actorID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date or time format")
	}
	if err := validateRecurrence(&m); err != nil {
		return ruleErrorResponse(c, err)
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return ruleErrorResponse(c, err)
	}
	return helper.JsonUpdated(c, "Series updated", seriesDTO.ToRitualSeriesResponse(&m))
}

// ===================== RETIRE =====================
// POST /ritual-series/:id/retire
// Retiring stops future generation but keeps the row, its exceptions and
// status history for past dates.
func (ctrl *RitualSeriesController) Retire(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.Model(&seriesModel.RitualSeriesModel{}).
		Where("ritual_series_id = ? AND ritual_series_temple_id = ?", id, templeID).
		Updates(map[string]any{
			"ritual_series_status":           seriesModel.SeriesInactive,
			"ritual_series_last_modified_by": actorID,
		})
	if res.Error != nil {
		return ruleErrorResponse(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Series not found")
	}
	return helper.JsonUpdated(c, "Series retired", fiber.Map{"ritual_series_id": id})
}

// ===================== DELETE =====================
// DELETE /ritual-series/:id (soft delete)
func (ctrl *RitualSeriesController) Delete(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.
		Where("ritual_series_id = ? AND ritual_series_temple_id = ?", id, templeID).
		Delete(&seriesModel.RitualSeriesModel{})
	if res.Error != nil {
		return ruleErrorResponse(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Series not found")
	}
	return helper.JsonDeleted(c, "Series deleted", fiber.Map{"ritual_series_id": id})
}
