// file: internals/features/admissions/payments/service/reconciliation_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kampusku_backend/internals/features/admissions/payments/model"
)

func feePayments(statuses ...model.PaymentStatus) []model.PaymentModel {
	out := make([]model.PaymentModel, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, model.PaymentModel{
			PaymentType:   model.PaymentTypeApplicationFee,
			PaymentStatus: s,
		})
	}
	return out
}

func TestHasActivePayment(t *testing.T) {
	tests := []struct {
		name     string
		payments []model.PaymentModel
		payType  model.PaymentType
		want     bool
	}{
		{
			name:    "tanpa pembayaran",
			payType: model.PaymentTypeApplicationFee,
			want:    false,
		},
		{
			name:     "pending memblokir duplikat",
			payments: feePayments(model.PaymentPending),
			payType:  model.PaymentTypeApplicationFee,
			want:     true,
		},
		{
			name:     "verified memblokir duplikat",
			payments: feePayments(model.PaymentVerified),
			payType:  model.PaymentTypeApplicationFee,
			want:     true,
		},
		{
			name:     "setelah reject boleh bayar lagi",
			payments: feePayments(model.PaymentRejected),
			payType:  model.PaymentTypeApplicationFee,
			want:     false,
		},
		{
			name:     "dua kali reject tetap boleh",
			payments: feePayments(model.PaymentRejected, model.PaymentRejected),
			payType:  model.PaymentTypeApplicationFee,
			want:     false,
		},
		{
			name:     "reject lalu pending baru memblokir lagi",
			payments: feePayments(model.PaymentRejected, model.PaymentPending),
			payType:  model.PaymentTypeApplicationFee,
			want:     true,
		},
		{
			name:     "jenis lain tidak memblokir",
			payments: feePayments(model.PaymentPending),
			payType:  model.PaymentTypeAdmissionFee,
			want:     false,
		},
		{
			name: "aktif di jenis sendiri tetap terdeteksi",
			payments: append(feePayments(model.PaymentRejected), model.PaymentModel{
				PaymentType:   model.PaymentTypeAdmissionFee,
				PaymentStatus: model.PaymentPending,
			}),
			payType: model.PaymentTypeAdmissionFee,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasActivePayment(tt.payments, tt.payType))
		})
	}
}
