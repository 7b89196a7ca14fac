// file: internals/features/admissions/payments/service/midtrans_service.go
package service

import (
	"errors"
	"log"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"kampusku_backend/internals/features/admissions/payments/model"
)

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if serverKey == "" {
		log.Println("[PAYMENT] ⚠️ MIDTRANS_SERVER_KEY kosong, checkout gateway nonaktif")
		return
	}
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
	log.Println("[PAYMENT] ✅ Midtrans Snap client siap")
}

// CustomerInput — data pendaftar untuk halaman pembayaran Snap
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// GenerateSnapToken buat transaksi Snap untuk satu pembayaran pending.
// Return token + redirect URL yang dipakai frontend membuka halaman bayar.
func GenerateSnapToken(p *model.PaymentModel, itemName string, cust CustomerInput) (string, string, error) {
	if p.PaymentAmount <= 0 {
		return "", "", errors.New("payment_amount tidak valid")
	}
	if p.PaymentOrderID == "" {
		return "", "", errors.New("payment_order_id wajib ada (dipakai sebagai OrderID)")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: p.PaymentAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       p.PaymentOrderID,
				Price:    p.PaymentAmount,
				Qty:      1,
				Name:     itemName,
				Category: "ADMISSION",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
