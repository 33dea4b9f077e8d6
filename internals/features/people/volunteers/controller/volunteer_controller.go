// file: internals/features/people/volunteers/controller/volunteer_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	volunteerDTO "templeku_backend/internals/features/people/volunteers/dto"
	volunteerModel "templeku_backend/internals/features/people/volunteers/model"
	helper "templeku_backend/internals/helpers"
	helperAuth "templeku_backend/internals/helpers/auth"
)

type VolunteerController struct {
	DB *gorm.DB
}

func NewVolunteerController(db *gorm.DB) *VolunteerController {
	return &VolunteerController{DB: db}
}

var validateVolunteer = validator.New()

// ===================== CREATE =====================
// POST /volunteers
func (ctrl *VolunteerController) Create(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req volunteerDTO.CreateVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateVolunteer.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m := req.ToModel(templeID, &actorID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[VOLUNTEER ERROR] create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save volunteer")
	}
	return helper.JsonCreated(c, "Volunteer created", volunteerDTO.ToVolunteerResponse(m))
}

// ===================== LIST =====================
// GET /volunteers?status=&skill=&day=&q=&page=&per_page=
func (ctrl *VolunteerController) List(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&volunteerModel.VolunteerModel{}).
		Where("volunteer_temple_id = ?", templeID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("volunteer_status = ?", status)
	}
	if skill := strings.TrimSpace(c.Query("skill")); skill != "" {
		tx = tx.Where("? = ANY(volunteer_skills)", skill)
	}
	if day := strings.TrimSpace(c.Query("day")); day != "" {
		tx = tx.Where("? = ANY(volunteer_available_days)", strings.ToLower(day))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("volunteer_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[VOLUNTEER ERROR] count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load volunteers")
	}

	var rows []volunteerModel.VolunteerModel
	if err := tx.
		Order("volunteer_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[VOLUNTEER ERROR] list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load volunteers")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", volunteerDTO.ToVolunteerResponseList(rows), &pagination)
}

// ===================== DETAIL =====================
// GET /volunteers/:id
func (ctrl *VolunteerController) GetByID(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m volunteerModel.VolunteerModel
	if err := ctrl.DB.
		Where("volunteer_id = ? AND volunteer_temple_id = ?", id, templeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Volunteer not found")
		}
		log.Printf("[VOLUNTEER ERROR] detail: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load volunteer")
	}
	return helper.JsonOK(c, "ok", volunteerDTO.ToVolunteerResponse(&m))
}

// ===================== UPDATE =====================
// PUT /volunteers/:id
func (ctrl *VolunteerController) Update(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req volunteerDTO.UpdateVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateVolunteer.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var m volunteerModel.VolunteerModel
	if err := ctrl.DB.
		Where("volunteer_id = ? AND volunteer_temple_id = ?", id, templeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Volunteer not found")
		}
		log.Printf("[VOLUNTEER ERROR] load: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load volunteer")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		log.Printf("[VOLUNTEER ERROR] update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save volunteer")
	}
	return helper.JsonUpdated(c, "Volunteer updated", volunteerDTO.ToVolunteerResponse(&m))
}

// ===================== DELETE =====================
// DELETE /volunteers/:id (soft delete)
func (ctrl *VolunteerController) Delete(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.
		Where("volunteer_id = ? AND volunteer_temple_id = ?", id, templeID).
		Delete(&volunteerModel.VolunteerModel{})
	if res.Error != nil {
		log.Printf("[VOLUNTEER ERROR] delete: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete volunteer")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Volunteer not found")
	}
	return helper.JsonDeleted(c, "Volunteer deleted", fiber.Map{"volunteer_id": id})
}
