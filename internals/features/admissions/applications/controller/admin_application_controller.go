// file: internals/features/admissions/applications/controller/admin_application_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/admissions/applications/dto"
	"kampusku_backend/internals/features/admissions/applications/model"
	"kampusku_backend/internals/features/admissions/applications/service"
	helper "kampusku_backend/internals/helpers"
)

// AdminApplicationController — endpoint review & monitoring untuk staff
type AdminApplicationController struct {
	DB *gorm.DB
}

func NewAdminApplicationController(db *gorm.DB) *AdminApplicationController {
	return &AdminApplicationController{DB: db}
}

// List
// GET /api/a/applications?status=&payment_status=&session_id=&program_id=&page=&per_page=
func (ctrl *AdminApplicationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	f := service.ApplicationFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		Limit:         paging.Limit,
		Offset:        paging.Offset,
	}
	if f.Status != "" {
		if _, ok := model.ParseApplicationStatus(f.Status); !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal: "+f.Status)
		}
	}
	if raw := c.Query("session_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "session_id tidak valid")
		}
		f.SessionID = &id
	}
	if raw := c.Query("program_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "program_id tidak valid")
		}
		f.ProgramID = &id
	}

	apps, total, err := service.ListAll(ctrl.DB, f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data aplikasi")
	}
	return helper.JsonList(c, "Daftar aplikasi", apps,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// Review
// POST /api/a/applications/:id/review — transisi status oleh reviewer
func (ctrl *AdminApplicationController) Review(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID aplikasi tidak valid")
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	target, ok := model.ParseApplicationStatus(req.Status)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal: "+req.Status)
	}

	app, err := service.ProposeTransition(ctrl.DB, appID, target, actorID, req.Remarks)
	if err != nil {
		return mapApplicationError(c, err)
	}
	return helper.JsonUpdated(c, "Status aplikasi diperbarui", app)
}

// Stats
// GET /api/a/applications/stats?session_id=
func (ctrl *AdminApplicationController) Stats(c *fiber.Ctx) error {
	var sessionID *uuid.UUID
	if raw := c.Query("session_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "session_id tidak valid")
		}
		sessionID = &id
	}

	stats, err := service.GetAdmissionStats(ctrl.DB, sessionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "Statistik penerimaan", stats)
}
