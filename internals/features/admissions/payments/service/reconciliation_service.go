// file: internals/features/admissions/payments/service/reconciliation_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	applicationModel "kampusku_backend/internals/features/admissions/applications/model"
	applicationService "kampusku_backend/internals/features/admissions/applications/service"
	"kampusku_backend/internals/features/admissions/payments/model"
	programModel "kampusku_backend/internals/features/admissions/programs/model"
)

var (
	ErrDuplicateActivePayment = errors.New("sudah ada pembayaran aktif untuk aplikasi ini")
	ErrPaymentNotPending      = errors.New("pembayaran sudah diproses, tidak bisa diubah lagi")
)

// HasActivePayment — predikat murni aturan satu-pembayaran-aktif: ada
// pembayaran pending / verified untuk jenis tagihan yang sama berarti
// pembayaran baru ditolak. Rejected tidak menghitung, jenis lain juga tidak.
func HasActivePayment(payments []model.PaymentModel, t model.PaymentType) bool {
	for _, p := range payments {
		if p.PaymentType == t && p.PaymentStatus.IsActive() {
			return true
		}
	}
	return false
}

// RecordPaymentInput — parameter pencatatan pembayaran baru
type RecordPaymentInput struct {
	Type     model.PaymentType // kosong = application_fee
	MethodID *uuid.UUID
	Amount   int64 // 0 = pakai biaya pendaftaran dari offering
	ProofURL *string
}

// RecordPayment mencatat pembayaran pending untuk satu aplikasi.
// Seluruhnya dalam satu transaksi dengan row aplikasi di-lock FOR UPDATE:
// per aplikasi hanya boleh ada satu pembayaran aktif (pending / verified)
// per jenis tagihan, dan agregat aplikasi dihitung ulang sebelum commit.
func RecordPayment(db *gorm.DB, applicationID, studentID uuid.UUID, in RecordPaymentInput) (*model.PaymentModel, error) {
	var payment model.PaymentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var app applicationModel.ApplicationModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&app, "application_id = ?", applicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return applicationService.ErrNotFound
			}
			return err
		}
		if app.ApplicationStudentID != studentID {
			return applicationService.ErrNotFound
		}

		payType := in.Type
		if payType == "" {
			payType = model.PaymentTypeApplicationFee
		}

		// Satu pembayaran aktif per jenis tagihan per aplikasi
		var existing []model.PaymentModel
		if err := tx.
			Where("payment_application_id = ?", applicationID).
			Find(&existing).Error; err != nil {
			return err
		}
		if HasActivePayment(existing, payType) {
			return ErrDuplicateActivePayment
		}

		amount := in.Amount
		if amount <= 0 {
			var offering programModel.ProgramOfferingModel
			if err := tx.
				Where("offering_program_id = ? AND offering_session_id = ?",
					app.ApplicationProgramID, app.ApplicationSessionID).
				First(&offering).Error; err != nil {
				return err
			}
			amount = offering.OfferingApplicationFee
		}

		id := uuid.New()
		payment = model.PaymentModel{
			PaymentID:            id,
			PaymentApplicationID: applicationID,
			PaymentType:          payType,
			PaymentMethodID:      in.MethodID,
			PaymentAmount:        amount,
			PaymentOrderID:       fmt.Sprintf("PAY-%s-%s", app.ApplicationTrackingCode, id.String()[:8]),
			PaymentStatus:        model.PaymentPending,
			PaymentProofURL:      in.ProofURL,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		return recomputeAggregate(tx, applicationID)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[PAYMENT] ✅ pembayaran baru %s (app=%s)", payment.PaymentOrderID, applicationID)
	return &payment, nil
}

// VerifyPayment — accountant menandai pembayaran pending sebagai verified.
// Row aplikasi di-lock dulu supaya verify/reject/record untuk aplikasi yang
// sama tereksekusi serial; update payment diguard status lama.
func VerifyPayment(db *gorm.DB, paymentID, verifierID uuid.UUID, remarks *string) (*model.PaymentModel, error) {
	return settlePayment(db, paymentID, verifierID, remarks, model.PaymentVerified)
}

// RejectPayment — pembayaran pending ditolak (bukti tidak valid dll).
// Setelah reject, student boleh mencatat pembayaran baru.
func RejectPayment(db *gorm.DB, paymentID, verifierID uuid.UUID, remarks *string) (*model.PaymentModel, error) {
	return settlePayment(db, paymentID, verifierID, remarks, model.PaymentRejected)
}

func settlePayment(db *gorm.DB, paymentID, verifierID uuid.UUID, remarks *string, target model.PaymentStatus) (*model.PaymentModel, error) {
	var payment model.PaymentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, "payment_id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return applicationService.ErrNotFound
			}
			return err
		}

		// Serialisasi per aplikasi
		var app applicationModel.ApplicationModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&app, "application_id = ?", payment.PaymentApplicationID).Error; err != nil {
			return err
		}

		// Reload setelah pegang lock, status bisa berubah sebelum lock didapat
		if err := tx.First(&payment, "payment_id = ?", paymentID).Error; err != nil {
			return err
		}
		if payment.PaymentStatus != model.PaymentPending {
			return ErrPaymentNotPending
		}

		now := time.Now().UTC()
		res := tx.Model(&model.PaymentModel{}).
			Where("payment_id = ? AND payment_status = ?", paymentID, model.PaymentPending).
			Updates(map[string]any{
				"payment_status":      target,
				"payment_remarks":     remarks,
				"payment_verified_by": verifierID,
				"payment_verified_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return applicationService.ErrStorageConflict
		}

		payment.PaymentStatus = target
		payment.PaymentRemarks = remarks
		payment.PaymentVerifiedBy = &verifierID
		payment.PaymentVerifiedAt = &now

		return recomputeAggregate(tx, payment.PaymentApplicationID)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[PAYMENT] %s → %s oleh %s", payment.PaymentOrderID, target, verifierID)
	return &payment, nil
}

// ApplyGatewayStatus dipakai webhook: settle pembayaran berdasar order_id.
// Idempotent terhadap notifikasi ulang (status sudah terminal = no-op).
func ApplyGatewayStatus(db *gorm.DB, orderID string, target model.PaymentStatus, gatewayRef string, payload []byte) (*model.PaymentModel, error) {
	var payment model.PaymentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, "payment_order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return applicationService.ErrNotFound
			}
			return err
		}

		var app applicationModel.ApplicationModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&app, "application_id = ?", payment.PaymentApplicationID).Error; err != nil {
			return err
		}

		updates := map[string]any{
			"payment_gateway_payload": datatypes.JSON(payload),
			"payment_updated_at":      time.Now().UTC(),
		}
		if gatewayRef != "" {
			updates["payment_gateway_reference"] = gatewayRef
		}

		// Status hanya maju dari pending; notifikasi ulang setelah terminal
		// cuma menyegarkan payload.
		if payment.PaymentStatus == model.PaymentPending && target != model.PaymentPending {
			updates["payment_status"] = target
			updates["payment_verified_at"] = time.Now().UTC()
			payment.PaymentStatus = target
		}

		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_id = ?", payment.PaymentID).
			Updates(updates).Error; err != nil {
			return err
		}

		return recomputeAggregate(tx, payment.PaymentApplicationID)
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// recomputeAggregate hitung ulang application_payment_status dari seluruh
// payment aplikasi. Selalu dipanggil di dalam transaksi yang sudah memegang
// lock row aplikasi.
func recomputeAggregate(tx *gorm.DB, applicationID uuid.UUID) error {
	var payments []model.PaymentModel
	if err := tx.
		Where("payment_application_id = ?", applicationID).
		Find(&payments).Error; err != nil {
		return err
	}
	agg := model.AggregateFromPayments(payments)
	return tx.Model(&applicationModel.ApplicationModel{}).
		Where("application_id = ?", applicationID).
		Update("application_payment_status", agg).Error
}

// GetPayment load satu pembayaran dengan cek kepemilikan via aplikasinya
func GetPayment(db *gorm.DB, paymentID, requesterID uuid.UUID, isStaff bool) (*model.PaymentModel, error) {
	var payment model.PaymentModel
	if err := db.First(&payment, "payment_id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, applicationService.ErrNotFound
		}
		return nil, err
	}
	if _, err := applicationService.GetApplication(db, payment.PaymentApplicationID, requesterID, isStaff); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListByApplication pembayaran satu aplikasi, dengan cek kepemilikan
func ListByApplication(db *gorm.DB, applicationID, requesterID uuid.UUID, isStaff bool) ([]model.PaymentModel, error) {
	if _, err := applicationService.GetApplication(db, applicationID, requesterID, isStaff); err != nil {
		return nil, err
	}
	var payments []model.PaymentModel
	if err := db.
		Preload("Method").
		Where("payment_application_id = ?", applicationID).
		Order("payment_created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ListByStatus — antrian verifikasi accountant
func ListByStatus(db *gorm.DB, status model.PaymentStatus, limit, offset int) ([]model.PaymentModel, int64, error) {
	q := db.Model(&model.PaymentModel{}).Where("payment_status = ?", status)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []model.PaymentModel
	if err := q.
		Preload("Method").
		Order("payment_created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}
