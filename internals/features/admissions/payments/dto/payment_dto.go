// file: internals/features/admissions/payments/dto/payment_dto.go
package dto

import "github.com/google/uuid"

// CreatePaymentRequest — pencatatan pembayaran manual (transfer + bukti)
type CreatePaymentRequest struct {
	ApplicationID uuid.UUID  `json:"application_id" validate:"required"`
	Type          string     `json:"type" validate:"omitempty,oneof=application_fee admission_fee"`
	MethodID      *uuid.UUID `json:"method_id" validate:"omitempty"`
	Amount        int64      `json:"amount" validate:"omitempty,gte=0"`
	ProofURL      *string    `json:"proof_url" validate:"omitempty,url"`
}

// CheckoutResponse dikonsumsi frontend untuk buka halaman Snap
type CheckoutResponse struct {
	PaymentID   uuid.UUID `json:"payment_id"`
	OrderID     string    `json:"order_id"`
	Amount      int64     `json:"amount"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
}

// SettleRequest — body verify / reject dari accountant
type SettleRequest struct {
	Remarks *string `json:"remarks" validate:"omitempty,max=500"`
}

// CreateMethodRequest — data referensi metode pembayaran
type CreateMethodRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}
