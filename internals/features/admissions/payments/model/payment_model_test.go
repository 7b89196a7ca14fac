// file: internals/features/admissions/payments/model/payment_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	applicationModel "kampusku_backend/internals/features/admissions/applications/model"
)

func payments(statuses ...PaymentStatus) []PaymentModel {
	out := make([]PaymentModel, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, PaymentModel{PaymentStatus: s})
	}
	return out
}

func TestAggregateFromPayments(t *testing.T) {
	tests := []struct {
		name     string
		payments []PaymentModel
		want     applicationModel.AggregatePaymentStatus
	}{
		{"tanpa pembayaran", nil, applicationModel.AggregateNotPaid},
		{"satu pending", payments(PaymentPending), applicationModel.AggregatePending},
		{"satu verified", payments(PaymentVerified), applicationModel.AggregateVerified},
		{"hanya rejected", payments(PaymentRejected), applicationModel.AggregateNotPaid},
		{"rejected lalu pending", payments(PaymentRejected, PaymentPending), applicationModel.AggregatePending},
		{"verified menang atas pending", payments(PaymentPending, PaymentVerified), applicationModel.AggregateVerified},
		{"verified menang atas rejected", payments(PaymentRejected, PaymentVerified), applicationModel.AggregateVerified},
		{"campuran lengkap", payments(PaymentRejected, PaymentPending, PaymentVerified), applicationModel.AggregateVerified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateFromPayments(tt.payments))
		})
	}
}

func TestPaymentStatusIsActive(t *testing.T) {
	assert.True(t, PaymentPending.IsActive())
	assert.True(t, PaymentVerified.IsActive())
	assert.False(t, PaymentRejected.IsActive())
}

func TestPaymentTypeIsValid(t *testing.T) {
	assert.True(t, PaymentTypeApplicationFee.IsValid())
	assert.True(t, PaymentTypeAdmissionFee.IsValid())
	assert.False(t, PaymentType("tuition").IsValid())
	assert.False(t, PaymentType("").IsValid())
}
