package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kampusku_backend/internals/features/admissions/programs/dto"
	model "kampusku_backend/internals/features/admissions/programs/model"
	helper "kampusku_backend/internals/helpers"
)

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

/* ======================= SESSIONS ======================= */

// POST /api/a/sessions
func (h *ProgramController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	m.SessionCode = strings.ToUpper(strings.TrimSpace(m.SessionCode))
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Session dengan kode tersebut sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat session")
	}

	return helper.JsonCreated(c, "Academic session berhasil dibuat", m)
}

// GET /api/u/sessions?active=true
func (h *ProgramController) ListSessions(c *fiber.Ctx) error {
	base := h.DB.Model(&model.AcademicSessionModel{})
	if c.Query("active") == "true" {
		base = base.Where("session_is_active = TRUE")
	}

	var list []model.AcademicSessionModel
	if err := base.Order("session_created_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

/* ======================= PROGRAMS ======================= */

// POST /api/a/programs
func (h *ProgramController) CreateProgram(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	m.ProgramCode = strings.ToUpper(strings.TrimSpace(m.ProgramCode))
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Program dengan kode tersebut sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat program")
	}

	return helper.JsonCreated(c, "Program berhasil dibuat", m)
}

// GET /api/u/programs — daftar program + degree untuk halaman pilihan program
func (h *ProgramController) ListPrograms(c *fiber.Ctx) error {
	var list []model.ProgramModel
	if err := h.DB.Preload("Degree").Order("program_name ASC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

/* ======================= OFFERINGS ======================= */

// POST /api/a/offerings
func (h *ProgramController) CreateOffering(c *fiber.Ctx) error {
	var req dto.CreateOfferingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Offering untuk kombinasi (program, session) sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat offering")
	}

	return helper.JsonCreated(c, "Program offering berhasil dibuat", m)
}

// GET /api/u/offerings?session_id=&active=true
func (h *ProgramController) ListOfferings(c *fiber.Ctx) error {
	base := h.DB.Model(&model.ProgramOfferingModel{}).
		Preload("Program").Preload("Program.Degree").Preload("Session")

	if sid := c.Query("session_id"); sid != "" {
		base = base.Where("offering_session_id = ?", sid)
	}
	if c.Query("active") == "true" {
		base = base.Where("offering_is_active = TRUE")
	}

	var list []model.ProgramOfferingModel
	if err := base.Order("offering_created_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}
