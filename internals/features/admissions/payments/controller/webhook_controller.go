// file: internals/features/admissions/payments/controller/webhook_controller.go
package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	applicationService "kampusku_backend/internals/features/admissions/applications/service"
	"kampusku_backend/internals/features/admissions/payments/model"
	"kampusku_backend/internals/features/admissions/payments/service"
)

// WebhookController — penerima notifikasi Midtrans.
// Route-nya di luar auth middleware, keasliannya dicek via signature.
type WebhookController struct {
	DB        *gorm.DB
	ServerKey string
}

func NewWebhookController(db *gorm.DB) *WebhookController {
	return &WebhookController{DB: db, ServerKey: configs.MidtransServerKey}
}

type midtransNotif struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"` // string dari Midtrans
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
	// field lain aman diabaikan
}

// HandleNotification
// POST /api/payments/notification
func (ctrl *WebhookController) HandleNotification(c *fiber.Ctx) error {
	var notif midtransNotif
	if err := c.BodyParser(&notif); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload: "+err.Error())
	}

	// Verify signature — SHA512(order_id + status_code + gross_amount + ServerKey)
	want := strings.ToLower(notif.SignatureKey)
	raw := notif.OrderID + notif.StatusCode + notif.GrossAmount + ctrl.ServerKey
	if want == "" || sha512sum(raw) != want {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid signature")
	}

	target, terminal := mapGatewayStatus(notif.TransactionStatus, notif.FraudStatus)
	if !terminal && target == model.PaymentPending {
		// pending / challenge: belum ada keputusan, cukup ack
		return c.JSON(fiber.Map{"status": "ok", "note": "pending, no state change"})
	}

	payment, err := service.ApplyGatewayStatus(ctrl.DB, notif.OrderID, target, notif.TransactionID, c.Body())
	if err != nil {
		if errors.Is(err, applicationService.ErrNotFound) {
			// Balas 200 supaya Midtrans tidak retry terus untuk order asing
			log.Printf("[PAYMENT] ⚠️ notifikasi untuk order tidak dikenal: %s", notif.OrderID)
			return c.JSON(fiber.Map{"status": "ignored", "reason": "payment not found"})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "update payment failed: "+err.Error())
	}

	return c.JSON(fiber.Map{
		"status":             "ok",
		"payment_id":         payment.PaymentID,
		"payment_status":     payment.PaymentStatus,
		"transaction_status": notif.TransactionStatus,
	})
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}

// mapGatewayStatus — status midtrans → status pembayaran internal.
// settlement / capture+accept berarti dana masuk (verified), deny / cancel /
// expire / failure menolak pembayaran; sisanya tetap pending.
func mapGatewayStatus(transactionStatus, fraudStatus string) (model.PaymentStatus, bool) {
	switch strings.ToLower(transactionStatus) {
	case "settlement":
		return model.PaymentVerified, true
	case "capture":
		if strings.ToLower(fraudStatus) == "accept" {
			return model.PaymentVerified, true
		}
		if strings.ToLower(fraudStatus) == "challenge" {
			return model.PaymentPending, false
		}
		return model.PaymentRejected, true
	case "deny", "cancel", "expire", "failure":
		return model.PaymentRejected, true
	default:
		return model.PaymentPending, false
	}
}
