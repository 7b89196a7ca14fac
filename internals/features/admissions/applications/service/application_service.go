// file: internals/features/admissions/applications/service/application_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/admissions/applications/model"
	profileService "kampusku_backend/internals/features/admissions/profiles/service"
	programModel "kampusku_backend/internals/features/admissions/programs/model"
)

// BuildTrackingCode susun kode tracking publik: ADM-<kode session>-<nomor
// form 6 digit>. Kode ini yang tersemat di QR dan dipakai pendaftar
// untuk melacak aplikasinya.
func BuildTrackingCode(sessionCode string, formNo int64) string {
	return fmt.Sprintf("ADM-%s-%06d", sessionCode, formNo)
}

// ValidateRegistrationGate — aturan murni precondition pendaftaran, urut:
// profil wajib 100% dulu, baru offering harus ada, aktif, dan session-nya
// aktif. Mengembalikan sentinel error pertama yang melanggar.
func ValidateRegistrationGate(completionPercent int, offering *programModel.ProgramOfferingModel) error {
	if completionPercent < 100 {
		return ErrProfileIncomplete
	}
	if offering == nil || !offering.OfferingIsActive {
		return ErrProgramNotOffered
	}
	if offering.Session == nil || !offering.Session.SessionIsActive {
		return ErrProgramNotOffered
	}
	return nil
}

// CreateApplication — entry point pendaftaran.
// Precondition dicek berurutan: profil harus 100% lengkap, lalu offering
// program+session harus ada & aktif. Baru setelah itu ambil nomor form dari
// sequence, rakit tracking code, dan tulis aplikasi + entri tracking pertama
// dalam satu transaksi.
func CreateApplication(db *gorm.DB, studentID, programID, sessionID uuid.UUID) (*model.ApplicationModel, error) {
	snap, err := profileService.LoadSnapshot(db, studentID)
	if err != nil {
		return nil, err
	}
	percent, _ := profileService.EvaluateCompletion(snap)

	var offeringPtr *programModel.ProgramOfferingModel
	var offering programModel.ProgramOfferingModel
	if err := db.
		Preload("Session").
		Where("offering_program_id = ? AND offering_session_id = ?", programID, sessionID).
		First(&offering).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		offeringPtr = &offering
	}

	if err := ValidateRegistrationGate(percent, offeringPtr); err != nil {
		return nil, err
	}

	var app model.ApplicationModel
	err = db.Transaction(func(tx *gorm.DB) error {
		// Nomor form dari sequence DB — monoton, aman dari duplikat
		// walau dua pendaftaran commit bersamaan.
		var formNo int64
		if err := tx.Raw("SELECT nextval('application_form_no_seq')").Scan(&formNo).Error; err != nil {
			return err
		}

		app = model.ApplicationModel{
			ApplicationFormNo:        formNo,
			ApplicationTrackingCode:  BuildTrackingCode(offering.Session.SessionCode, formNo),
			ApplicationStudentID:     studentID,
			ApplicationProgramID:     programID,
			ApplicationSessionID:     sessionID,
			ApplicationStatus:        model.StatusSubmitted,
			ApplicationPaymentStatus: model.AggregateNotPaid,
		}
		if err := tx.Create(&app).Error; err != nil {
			return err
		}

		// Entri ledger pertama — actor = student sendiri
		entry := model.ApplicationTrackingModel{
			ApplicationTrackingApplicationID: app.ApplicationID,
			ApplicationTrackingStatus:        model.StatusSubmitted,
			ApplicationTrackingActorID:       studentID,
			ApplicationTrackingTimestamp:     time.Now().UTC(),
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[APPLICATION] ✅ aplikasi baru %s (student=%s)", app.ApplicationTrackingCode, studentID)
	return &app, nil
}

// GetApplication load satu aplikasi dengan cek kepemilikan.
// Non-staff hanya boleh lihat miliknya sendiri; selain itu jawab NotFound,
// bukan Forbidden, supaya keberadaan aplikasi orang lain tidak bocor.
func GetApplication(db *gorm.DB, applicationID, requesterID uuid.UUID, isStaff bool) (*model.ApplicationModel, error) {
	var app model.ApplicationModel
	if err := db.
		Preload("Program").
		Preload("Program.Degree").
		Preload("Session").
		First(&app, "application_id = ?", applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !isStaff && app.ApplicationStudentID != requesterID {
		return nil, ErrNotFound
	}
	return &app, nil
}

// GetByTrackingCode — lookup publik via kode tracking (dipakai endpoint
// pelacakan), tetap dibatasi kepemilikan seperti GetApplication.
func GetByTrackingCode(db *gorm.DB, code string, requesterID uuid.UUID, isStaff bool) (*model.ApplicationModel, error) {
	var app model.ApplicationModel
	if err := db.
		Preload("Program").
		Preload("Session").
		First(&app, "application_tracking_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !isStaff && app.ApplicationStudentID != requesterID {
		return nil, ErrNotFound
	}
	return &app, nil
}

// ListByStudent semua aplikasi milik satu student, terbaru dulu
func ListByStudent(db *gorm.DB, studentID uuid.UUID) ([]model.ApplicationModel, error) {
	var apps []model.ApplicationModel
	if err := db.
		Preload("Program").
		Preload("Session").
		Where("application_student_id = ?", studentID).
		Order("application_applied_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// ApplicationFilter — filter list admin (semua opsional)
type ApplicationFilter struct {
	Status        string
	PaymentStatus string
	SessionID     *uuid.UUID
	ProgramID     *uuid.UUID
	Limit         int
	Offset        int
}

// ListAll list untuk staff dengan filter + total untuk pagination
func ListAll(db *gorm.DB, f ApplicationFilter) ([]model.ApplicationModel, int64, error) {
	q := db.Model(&model.ApplicationModel{})
	if f.Status != "" {
		q = q.Where("application_status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("application_payment_status = ?", f.PaymentStatus)
	}
	if f.SessionID != nil {
		q = q.Where("application_session_id = ?", *f.SessionID)
	}
	if f.ProgramID != nil {
		q = q.Where("application_program_id = ?", *f.ProgramID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []model.ApplicationModel
	if err := q.
		Preload("Program").
		Preload("Session").
		Order("application_applied_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

// AdmissionStats — ringkasan dashboard admin
type AdmissionStats struct {
	Total       int64 `json:"total"`
	Submitted   int64 `json:"submitted"`
	UnderReview int64 `json:"under_review"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
	Verified    int64 `json:"payment_verified"`
}

// GetAdmissionStats hitung per status (opsional dibatasi satu session)
func GetAdmissionStats(db *gorm.DB, sessionID *uuid.UUID) (*AdmissionStats, error) {
	base := db.Model(&model.ApplicationModel{})
	if sessionID != nil {
		base = base.Where("application_session_id = ?", *sessionID)
	}

	type row struct {
		Status string
		N      int64
	}
	var rows []row
	if err := base.Session(&gorm.Session{}).
		Select("application_status AS status, COUNT(*) AS n").
		Group("application_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &AdmissionStats{}
	for _, r := range rows {
		stats.Total += r.N
		switch model.ApplicationStatus(r.Status) {
		case model.StatusSubmitted:
			stats.Submitted = r.N
		case model.StatusUnderReview:
			stats.UnderReview = r.N
		case model.StatusApproved:
			stats.Approved = r.N
		case model.StatusRejected:
			stats.Rejected = r.N
		}
	}

	if err := base.Session(&gorm.Session{}).
		Where("application_payment_status = ?", model.AggregateVerified).
		Count(&stats.Verified).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
