package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "kampusku_backend/internals/features/admissions/profiles/dto"
	model "kampusku_backend/internals/features/admissions/profiles/model"
	service "kampusku_backend/internals/features/admissions/profiles/service"
	helper "kampusku_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

/* ======================= GET PROFILE ======================= */
// GET /api/u/profile — keempat section + profile_completion
func (h *ProfileController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	snap, err := service.LoadSnapshot(h.DB, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	percent, sections := service.EvaluateCompletion(snap)

	return helper.JsonOK(c, "OK", dto.ProfileResponse{
		PersonalInfo:       snap.Personal,
		ContactInfo:        snap.Contact,
		EducationalRecords: snap.EducationalRecords,
		MedicalInfo:        snap.Medical,
		ProfileCompletion:  percent,
		Sections:           sections,
	})
}

/* ======================= PERSONAL ======================= */
// PUT /api/u/profile/personal — upsert per user
func (h *ProfileController) UpsertPersonal(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertPersonalInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(userID)
	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "personal_info_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"personal_info_full_name",
			"personal_info_father_name",
			"personal_info_cnic",
			"personal_info_gender",
			"personal_info_date_of_birth",
		}),
	}).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan personal info")
	}

	return helper.JsonUpdated(c, "Personal info tersimpan", m)
}

/* ======================= CONTACT ======================= */
// PUT /api/u/profile/contact
func (h *ProfileController) UpsertContact(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertContactInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(userID)
	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "contact_info_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"contact_info_address",
			"contact_info_city",
			"contact_info_province",
			"contact_info_postal_code",
			"contact_info_phone",
		}),
	}).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan contact info")
	}

	return helper.JsonUpdated(c, "Contact info tersimpan", m)
}

/* ======================= EDUCATION ======================= */
// POST /api/u/profile/education — tambah satu record
func (h *ProfileController) AddEducationalRecord(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateEducationalRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.ObtainedMarks > req.TotalMarks {
		return fiber.NewError(fiber.StatusBadRequest, "obtained_marks tidak boleh melebihi total_marks")
	}

	m := req.ToModel(userID)
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "foreign key") {
			return fiber.NewError(fiber.StatusBadRequest, "degree_id / institute_id tidak dikenal")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan educational record")
	}

	return helper.JsonCreated(c, "Educational record tersimpan", m)
}

// DELETE /api/u/profile/education/:id — hanya milik sendiri
func (h *ProfileController) DeleteEducationalRecord(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	res := h.DB.
		Where("educational_record_id = ? AND educational_record_user_id = ?", idStr, userID).
		Delete(&model.EducationalRecordModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Educational record dihapus", fiber.Map{"id": idStr})
}

/* ======================= MEDICAL ======================= */
// PUT /api/u/profile/medical
func (h *ProfileController) UpsertMedical(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertMedicalInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(userID)
	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "medical_info_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"medical_info_blood_group",
			"medical_info_has_disability",
			"medical_info_disability_detail",
			"medical_info_emergency_contact",
		}),
	}).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan medical info")
	}

	return helper.JsonUpdated(c, "Medical info tersimpan", m)
}
