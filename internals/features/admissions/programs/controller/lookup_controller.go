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

// LookupController — CRUD ringan data referensi (degrees & institutes)
type LookupController struct {
	DB *gorm.DB
}

func NewLookupController(db *gorm.DB) *LookupController {
	return &LookupController{DB: db}
}

/* ======================= DEGREES ======================= */

// POST /api/a/degrees
func (h *LookupController) CreateDegree(c *fiber.Ctx) error {
	var req dto.CreateNameOnlyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := model.DegreeModel{DegreeName: strings.TrimSpace(req.Name)}
	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Degree dengan nama tersebut sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat degree")
	}

	return helper.JsonCreated(c, "Degree berhasil dibuat", m)
}

// GET /api/u/degrees
func (h *LookupController) ListDegrees(c *fiber.Ctx) error {
	var list []model.DegreeModel
	if err := h.DB.Order("degree_name ASC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

/* ======================= INSTITUTES ======================= */

// POST /api/a/institutes
func (h *LookupController) CreateInstitute(c *fiber.Ctx) error {
	var req dto.CreateNameOnlyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := model.InstituteModel{InstituteName: strings.TrimSpace(req.Name)}
	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Institute dengan nama tersebut sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat institute")
	}

	return helper.JsonCreated(c, "Institute berhasil dibuat", m)
}

// GET /api/u/institutes
func (h *LookupController) ListInstitutes(c *fiber.Ctx) error {
	var list []model.InstituteModel
	if err := h.DB.Order("institute_name ASC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}
