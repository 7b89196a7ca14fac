// file: internals/features/admissions/applications/controller/application_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/admissions/applications/dto"
	"kampusku_backend/internals/features/admissions/applications/service"
	helper "kampusku_backend/internals/helpers"
)

// ApplicationController — endpoint aplikasi untuk student
type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

// mapApplicationError memetakan sentinel error service ke kode HTTP.
// Dipakai bersama controller student & admin.
func mapApplicationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrProfileIncomplete),
		errors.Is(err, service.ErrProgramNotOffered):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrStorageConflict):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
}

// Create
// POST /api/u/applications
func (ctrl *ApplicationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	app, err := service.CreateApplication(ctrl.DB, userID, req.ProgramID, req.SessionID)
	if err != nil {
		return mapApplicationError(c, err)
	}
	return helper.JsonCreated(c, "Pendaftaran berhasil dibuat", app)
}

// ListMine
// GET /api/u/applications
func (ctrl *ApplicationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	apps, err := service.ListByStudent(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data aplikasi")
	}
	return helper.JsonList(c, "Daftar aplikasi", apps, nil)
}

// GetByID
// GET /api/u/applications/:id
func (ctrl *ApplicationController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID aplikasi tidak valid")
	}

	app, err := service.GetApplication(ctrl.DB, appID, userID, helper.IsStaff(c))
	if err != nil {
		return mapApplicationError(c, err)
	}
	return helper.JsonOK(c, "Detail aplikasi", app)
}

// Track
// GET /api/u/applications/track/:code — lookup via tracking code (isi QR)
func (ctrl *ApplicationController) Track(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	code := c.Params("code")
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tracking code wajib diisi")
	}

	app, err := service.GetByTrackingCode(ctrl.DB, code, userID, helper.IsStaff(c))
	if err != nil {
		return mapApplicationError(c, err)
	}
	return helper.JsonOK(c, "Detail aplikasi", app)
}

// ListTracking
// GET /api/u/applications/:id/tracking — ledger status, urut kronologis
func (ctrl *ApplicationController) ListTracking(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID aplikasi tidak valid")
	}

	// Cek kepemilikan lewat load aplikasi dulu
	if _, err := service.GetApplication(ctrl.DB, appID, userID, helper.IsStaff(c)); err != nil {
		return mapApplicationError(c, err)
	}

	entries, err := service.ListTracking(ctrl.DB, appID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat status")
	}
	return helper.JsonList(c, "Riwayat status aplikasi", entries, nil)
}
