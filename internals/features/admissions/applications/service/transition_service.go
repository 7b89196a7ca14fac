// file: internals/features/admissions/applications/service/transition_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kampusku_backend/internals/features/admissions/applications/model"
)

// planTransition — keputusan murni satu langkah transisi. Dua proposal
// bersaing untuk aplikasi yang sama dieksekusi serial oleh row lock;
// yang kalah melihat status hasil commit pemenang dan ditolak di sini.
func planTransition(current, target model.ApplicationStatus) error {
	if !current.CanTransitionTo(target) {
		return &InvalidTransitionError{From: current, To: target}
	}
	return nil
}

// ProposeTransition — satu-satunya jalur mengubah status aplikasi.
// Di dalam satu transaksi: lock row aplikasi (FOR UPDATE), validasi
// transisi terhadap tabel, UPDATE dengan guard status lama, lalu append
// tepat satu entri tracking. Status + entri tracking selalu commit bareng.
func ProposeTransition(db *gorm.DB, applicationID uuid.UUID, target model.ApplicationStatus, actorID uuid.UUID, remarks *string) (*model.ApplicationModel, error) {
	var app model.ApplicationModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&app, "application_id = ?", applicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		current := app.ApplicationStatus
		if err := planTransition(current, target); err != nil {
			return err
		}

		// Guard status lama di WHERE: kalau row sudah keburu berubah di luar
		// lock (mis. retry ganda), RowsAffected 0 dan kita mundur.
		res := tx.Model(&model.ApplicationModel{}).
			Where("application_id = ? AND application_status = ?", applicationID, current).
			Update("application_status", target)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStorageConflict
		}

		entry := model.ApplicationTrackingModel{
			ApplicationTrackingApplicationID: app.ApplicationID,
			ApplicationTrackingStatus:        target,
			ApplicationTrackingActorID:       actorID,
			ApplicationTrackingRemarks:       remarks,
			ApplicationTrackingTimestamp:     time.Now().UTC(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		app.ApplicationStatus = target
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[APPLICATION] %s → %s oleh %s", app.ApplicationTrackingCode, target, actorID)

	// Artefak QR menyusul setelah commit, kegagalannya tidak membatalkan
	// transisi
	if target == model.StatusApproved {
		go AttachQRCode(db, app.ApplicationID, app.ApplicationTrackingCode)
	}
	return &app, nil
}

// ListTracking mengembalikan ledger satu aplikasi, urut timestamp ASC
// dengan id sebagai tie-break supaya urutannya deterministik.
func ListTracking(db *gorm.DB, applicationID uuid.UUID) ([]model.ApplicationTrackingModel, error) {
	var entries []model.ApplicationTrackingModel
	if err := db.
		Where("application_tracking_application_id = ?", applicationID).
		Order("application_tracking_timestamp ASC, application_tracking_id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
