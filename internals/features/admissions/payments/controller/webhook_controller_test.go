// file: internals/features/admissions/payments/controller/webhook_controller_test.go
package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kampusku_backend/internals/features/admissions/payments/model"
)

func TestMapGatewayStatus(t *testing.T) {
	tests := []struct {
		name         string
		txStatus     string
		fraudStatus  string
		wantStatus   model.PaymentStatus
		wantTerminal bool
	}{
		{"settlement", "settlement", "", model.PaymentVerified, true},
		{"capture accept", "capture", "accept", model.PaymentVerified, true},
		{"capture challenge", "capture", "challenge", model.PaymentPending, false},
		{"capture deny", "capture", "deny", model.PaymentRejected, true},
		{"deny", "deny", "", model.PaymentRejected, true},
		{"cancel", "cancel", "", model.PaymentRejected, true},
		{"expire", "expire", "", model.PaymentRejected, true},
		{"failure", "failure", "", model.PaymentRejected, true},
		{"pending", "pending", "", model.PaymentPending, false},
		{"status asing", "refund", "", model.PaymentPending, false},
		{"case insensitive", "SETTLEMENT", "", model.PaymentVerified, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, terminal := mapGatewayStatus(tt.txStatus, tt.fraudStatus)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantTerminal, terminal)
		})
	}
}

func TestSha512Sum(t *testing.T) {
	// vektor signature midtrans: order_id + status_code + gross_amount + server_key
	got := sha512sum("ORDER-1" + "200" + "150000.00" + "secret")
	assert.Len(t, got, 128)
	assert.Equal(t, got, sha512sum("ORDER-1200150000.00secret"))
	assert.NotEqual(t, got, sha512sum("ORDER-2200150000.00secret"))
}
