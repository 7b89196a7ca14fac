// file: internals/features/admissions/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	applicationModel "kampusku_backend/internals/features/admissions/applications/model"
)

// PaymentStatus — status satu pembayaran (bukan agregat aplikasi)
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

// IsActive: pending & verified menghitung sebagai pembayaran "hidup",
// rejected tidak memblokir pembayaran baru.
func (s PaymentStatus) IsActive() bool {
	return s == PaymentPending || s == PaymentVerified
}

// PaymentType — jenis tagihan admisi
type PaymentType string

const (
	PaymentTypeApplicationFee PaymentType = "application_fee"
	PaymentTypeAdmissionFee   PaymentType = "admission_fee"
)

func (t PaymentType) IsValid() bool {
	return t == PaymentTypeApplicationFee || t == PaymentTypeAdmissionFee
}

// PaymentMethodModel — data referensi metode pembayaran (bank transfer,
// midtrans, tunai di loket, dst)
type PaymentMethodModel struct {
	MethodID       uuid.UUID `gorm:"column:method_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MethodName     string    `gorm:"column:method_name;type:varchar(50);not null;unique" json:"name"`
	MethodIsActive bool      `gorm:"column:method_is_active;not null;default:true" json:"is_active"`

	MethodCreatedAt time.Time `gorm:"column:method_created_at;autoCreateTime" json:"created_at"`
}

func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// PaymentModel — satu pembayaran biaya pendaftaran untuk satu aplikasi.
// payment_order_id adalah identitas eksternal yang dikirim ke gateway
// (dipakai webhook untuk lookup balik).
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey" json:"id"`

	PaymentApplicationID uuid.UUID  `gorm:"column:payment_application_id;type:uuid;not null;index" json:"application_id"`
	PaymentMethodID      *uuid.UUID `gorm:"column:payment_method_id;type:uuid" json:"method_id,omitempty"`

	// Jenis tagihan yang dibayar; satu pembayaran aktif per jenis per aplikasi
	PaymentType PaymentType `gorm:"column:payment_type;type:varchar(30);not null;default:'application_fee'" json:"type"`

	PaymentAmount  int64  `gorm:"column:payment_amount;not null" json:"amount"`
	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(80);not null;uniqueIndex" json:"order_id"`

	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"status"`

	// Bukti transfer manual (URL), opsional
	PaymentProofURL *string `gorm:"column:payment_proof_url;type:text" json:"proof_url,omitempty"`

	// Jejak gateway: transaction_id midtrans + payload notifikasi terakhir
	PaymentGatewayReference *string        `gorm:"column:payment_gateway_reference;type:varchar(100)" json:"gateway_reference,omitempty"`
	PaymentGatewayPayload   datatypes.JSON `gorm:"column:payment_gateway_payload;type:jsonb" json:"-"`

	PaymentRemarks    *string    `gorm:"column:payment_remarks;type:text" json:"remarks,omitempty"`
	PaymentVerifiedBy *uuid.UUID `gorm:"column:payment_verified_by;type:uuid" json:"verified_by,omitempty"`
	PaymentVerifiedAt *time.Time `gorm:"column:payment_verified_at" json:"verified_at,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"updated_at"`

	Method *PaymentMethodModel `gorm:"foreignKey:PaymentMethodID;references:MethodID" json:"method,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// AggregateFromPayments — fungsi murni rekonsiliasi agregat aplikasi:
// ada yang verified ⇒ verified, selain itu ada yang pending ⇒ pending,
// selain itu not_paid. Rejected tidak berpengaruh.
func AggregateFromPayments(payments []PaymentModel) applicationModel.AggregatePaymentStatus {
	hasPending := false
	for _, p := range payments {
		switch p.PaymentStatus {
		case PaymentVerified:
			return applicationModel.AggregateVerified
		case PaymentPending:
			hasPending = true
		}
	}
	if hasPending {
		return applicationModel.AggregatePending
	}
	return applicationModel.AggregateNotPaid
}
