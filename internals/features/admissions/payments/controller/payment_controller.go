// file: internals/features/admissions/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	applicationService "kampusku_backend/internals/features/admissions/applications/service"
	"kampusku_backend/internals/features/admissions/payments/dto"
	"kampusku_backend/internals/features/admissions/payments/model"
	"kampusku_backend/internals/features/admissions/payments/service"
	userModel "kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
)

// PaymentController — endpoint pembayaran untuk student
type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func mapPaymentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, applicationService.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateActivePayment),
		errors.Is(err, service.ErrPaymentNotPending),
		errors.Is(err, applicationService.ErrStorageConflict):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
}

// Create
// POST /api/u/payments — catat pembayaran manual (transfer + bukti)
func (ctrl *PaymentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	payment, err := service.RecordPayment(ctrl.DB, req.ApplicationID, userID, service.RecordPaymentInput{
		Type:     model.PaymentType(req.Type),
		MethodID: req.MethodID,
		Amount:   req.Amount,
		ProofURL: req.ProofURL,
	})
	if err != nil {
		return mapPaymentError(c, err)
	}
	return helper.JsonCreated(c, "Pembayaran dicatat, menunggu verifikasi", payment)
}

// Checkout
// POST /api/u/payments/:id/checkout — Snap token untuk pembayaran pending
func (ctrl *PaymentController) Checkout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pembayaran tidak valid")
	}

	payment, err := service.GetPayment(ctrl.DB, paymentID, userID, false)
	if err != nil {
		return mapPaymentError(c, err)
	}
	if payment.PaymentStatus != model.PaymentPending {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya pembayaran pending yang bisa di-checkout")
	}

	app, err := applicationService.GetApplication(ctrl.DB, payment.PaymentApplicationID, userID, false)
	if err != nil {
		return mapPaymentError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data user")
	}

	itemName := fmt.Sprintf("Biaya Pendaftaran %s", app.ApplicationTrackingCode)
	token, redirectURL, err := service.GenerateSnapToken(payment, itemName, service.CustomerInput{
		Name:  user.UserName,
		Email: user.Email,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi gateway")
	}

	return helper.JsonOK(c, "Checkout dibuat", dto.CheckoutResponse{
		PaymentID:   payment.PaymentID,
		OrderID:     payment.PaymentOrderID,
		Amount:      payment.PaymentAmount,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

// ListByApplication
// GET /api/u/applications/:id/payments
func (ctrl *PaymentController) ListByApplication(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID aplikasi tidak valid")
	}

	payments, err := service.ListByApplication(ctrl.DB, appID, userID, helper.IsStaff(c))
	if err != nil {
		return mapPaymentError(c, err)
	}
	return helper.JsonList(c, "Daftar pembayaran", payments, nil)
}

// ListMethods
// GET /api/u/payment-methods — metode aktif untuk form pembayaran
func (ctrl *PaymentController) ListMethods(c *fiber.Ctx) error {
	var methods []model.PaymentMethodModel
	if err := ctrl.DB.
		Where("method_is_active = TRUE").
		Order("method_name ASC").
		Find(&methods).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil metode pembayaran")
	}
	return helper.JsonList(c, "Metode pembayaran", methods, nil)
}
