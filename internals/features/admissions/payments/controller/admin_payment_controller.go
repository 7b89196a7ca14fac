// file: internals/features/admissions/payments/controller/admin_payment_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/admissions/payments/dto"
	"kampusku_backend/internals/features/admissions/payments/model"
	"kampusku_backend/internals/features/admissions/payments/service"
	helper "kampusku_backend/internals/helpers"
)

// AdminPaymentController — antrian verifikasi untuk accountant
type AdminPaymentController struct {
	DB *gorm.DB
}

func NewAdminPaymentController(db *gorm.DB) *AdminPaymentController {
	return &AdminPaymentController{DB: db}
}

// List
// GET /api/a/payments?status=pending&page=&per_page=
func (ctrl *AdminPaymentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	status := model.PaymentStatus(c.Query("status", string(model.PaymentPending)))
	switch status {
	case model.PaymentPending, model.PaymentVerified, model.PaymentRejected:
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Status pembayaran tidak dikenal")
	}

	payments, total, err := service.ListByStatus(ctrl.DB, status, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}
	return helper.JsonList(c, "Daftar pembayaran", payments,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// Verify
// POST /api/a/payments/:id/verify
func (ctrl *AdminPaymentController) Verify(c *fiber.Ctx) error {
	return ctrl.settle(c, true)
}

// Reject
// POST /api/a/payments/:id/reject
func (ctrl *AdminPaymentController) Reject(c *fiber.Ctx) error {
	return ctrl.settle(c, false)
}

func (ctrl *AdminPaymentController) settle(c *fiber.Ctx, verify bool) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pembayaran tidak valid")
	}

	var req dto.SettleRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		if err := validator.New().Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	var payment *model.PaymentModel
	if verify {
		payment, err = service.VerifyPayment(ctrl.DB, paymentID, actorID, req.Remarks)
	} else {
		payment, err = service.RejectPayment(ctrl.DB, paymentID, actorID, req.Remarks)
	}
	if err != nil {
		return mapPaymentError(c, err)
	}

	msg := "Pembayaran diverifikasi"
	if !verify {
		msg = "Pembayaran ditolak"
	}
	return helper.JsonUpdated(c, msg, payment)
}

// CreateMethod
// POST /api/a/payment-methods
func (ctrl *AdminPaymentController) CreateMethod(c *fiber.Ctx) error {
	var req dto.CreateMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	method := model.PaymentMethodModel{MethodName: strings.TrimSpace(req.Name)}
	if err := ctrl.DB.Create(&method).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Metode pembayaran sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan metode pembayaran")
	}
	return helper.JsonCreated(c, "Metode pembayaran dibuat", method)
}
