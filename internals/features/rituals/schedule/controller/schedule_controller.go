// file: internals/features/rituals/schedule/controller/schedule_controller.go
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

	schedDTO "templeku_backend/internals/features/rituals/schedule/dto"
	"templeku_backend/internals/features/rituals/schedule/service"
	helper "templeku_backend/internals/helpers"
	helperAuth "templeku_backend/internals/helpers/auth"
)

type ScheduleController struct {
	Service *service.ScheduleService
}

func NewScheduleController(svc *service.ScheduleService) *ScheduleController {
	return &ScheduleController{Service: svc}
}

var validateSchedule = validator.New()

// mapDomainError translates core scheduling errors into HTTP responses.
func mapDomainError(c *fiber.Ctx, err error) error {
	var ruleErr *service.InvalidRuleError
	if errors.As(err, &ruleErr) {
		return helper.JsonError(c, fiber.StatusBadRequest, ruleErr.Error())
	}
	var rangeErr *service.InvalidRangeError
	if errors.As(err, &rangeErr) {
		return helper.JsonError(c, fiber.StatusBadRequest, rangeErr.Error())
	}
	var transErr *service.InvalidTransitionError
	if errors.As(err, &transErr) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, transErr.Error())
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, service.ErrExceptionNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	log.Printf("[SCHEDULE ERROR] %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Schedule storage failed, please retry")
}

// ===================== QUERY =====================
// GET /schedule?from=2024-01-01&to=2024-01-31&series_id=&location=&officiant=&status=
// Calendar grid, day grid and list views all read this endpoint.
func (ctrl *ScheduleController) Query(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	from, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("from")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("to")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}

	params := service.QueryParams{
		TempleID:  templeID,
		Location:  strings.TrimSpace(c.Query("location")),
		Officiant: strings.TrimSpace(c.Query("officiant")),
		From:      from,
		To:        to,
	}

	if raw := strings.TrimSpace(c.Query("series_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid series_id")
		}
		params.SeriesID = &id
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st, ok := service.ParseOccurrenceStatus(raw)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		params.Status = st
	}

	instances, err := ctrl.Service.Query(c.UserContext(), params)
	if err != nil {
		return mapDomainError(c, err)
	}

	return helper.JsonOK(c, "ok", schedDTO.ToOccurrenceResponseList(instances))
}

// ===================== EXCEPTIONS =====================

// POST /schedule/exceptions
// Creating a second exception for the same (series, date) replaces the first.
func (ctrl *ScheduleController) CreateException(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req schedDTO.CreateExceptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateSchedule.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	row, err := req.ToModel(templeID, &actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date or time format")
	}

	if err := ctrl.Service.UpsertException(c.UserContext(), row); err != nil {
		return mapDomainError(c, err)
	}

	return helper.JsonCreated(c, "Exception saved", schedDTO.ToExceptionResponse(row))
}

// GET /schedule/exceptions?series_id=&from=&to=
func (ctrl *ScheduleController) ListExceptions(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	seriesID, err := uuid.Parse(strings.TrimSpace(c.Query("series_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid series_id")
	}
	from, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("from")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("to")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}

	rows, err := ctrl.Service.ListExceptions(c.UserContext(), templeID, seriesID, from, to)
	if err != nil {
		return mapDomainError(c, err)
	}
	return helper.JsonOK(c, "ok", schedDTO.ToExceptionResponseList(rows))
}

// DELETE /schedule/exceptions/:series_id/:date
func (ctrl *ScheduleController) DeleteException(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	seriesID, err := uuid.Parse(c.Params("series_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid series_id")
	}
	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	if err := ctrl.Service.DeleteException(c.UserContext(), templeID, seriesID, date); err != nil {
		return mapDomainError(c, err)
	}
	return helper.JsonDeleted(c, "Exception removed", nil)
}

// ===================== STATUS =====================

// POST /schedule/status
func (ctrl *ScheduleController) UpdateStatus(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req schedDTO.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateSchedule.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	seriesID, err := uuid.Parse(req.SeriesID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid series_id")
	}
	date, err := time.Parse("2006-01-02", req.OccurrenceDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "occurrence_date must be YYYY-MM-DD")
	}
	change, err := req.ToChange()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid delayed_to_time format")
	}

	row, err := ctrl.Service.UpdateStatus(c.UserContext(), templeID, seriesID, date, change, &actorID)
	if err != nil {
		return mapDomainError(c, err)
	}

	return helper.JsonCreated(c, "Status updated", schedDTO.ToStatusUpdateResponse(row))
}

// GET /schedule/status-history?series_id=&date=
func (ctrl *ScheduleController) StatusHistory(c *fiber.Ctx) error {
	templeID, err := helperAuth.GetTempleIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	seriesID, err := uuid.Parse(strings.TrimSpace(c.Query("series_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid series_id")
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("date")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	rows, err := ctrl.Service.StatusHistory(c.UserContext(), templeID, seriesID, date)
	if err != nil {
		return mapDomainError(c, err)
	}
	return helper.JsonOK(c, "ok", schedDTO.ToStatusUpdateResponseList(rows))
}
