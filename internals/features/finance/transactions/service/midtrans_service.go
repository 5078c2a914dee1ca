package service

import (
	"fmt"
	"log"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/model"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap Midtrans untuk donasi online.
func GenerateSnapToken(trx *model.Transaction, name, email string) (string, error) {
	if trx.TransactionOrderID == nil {
		return "", fmt.Errorf("transaksi belum punya order_id")
	}
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *trx.TransactionOrderID,
			GrossAmt: trx.TransactionAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// HandleDonationStatusWebhook dipanggil saat menerima notifikasi dari
// Midtrans. Saat pembayaran settle, transaksinya divalidasi lalu
// dirutekan; kegagalan routing ditelan (best-effort) karena pembayaran
// sudah terjadi.
func HandleDonationStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Printf("[DONATION-WEBHOOK] payload tidak lengkap: %v", body)
		return fmt.Errorf("invalid payload")
	}

	log.Printf("[DONATION-WEBHOOK] order_id=%s status=%s", orderID, status)

	var trx model.Transaction
	if err := db.Where("transaction_order_id = ?", orderID).First(&trx).Error; err != nil {
		return fmt.Errorf("transaksi dengan order_id %s tidak ditemukan: %w", orderID, err)
	}

	switch status {
	case "capture", "settlement":
		if err := db.Model(&model.Transaction{}).
			Where("transaction_id = ?", trx.TransactionID).
			Updates(map[string]interface{}{
				"transaction_validated":         true,
				"transaction_validation_status": constants.ValidationStatusApproved,
				"updated_at":                    time.Now(),
			}).Error; err != nil {
			return err
		}
		trx.TransactionValidated = true
		trx.TransactionValidationStatus = constants.ValidationStatusApproved

		// rutekan setelah dana benar-benar masuk
		if err := RouteIncome(db, &trx); err != nil {
			log.Printf("[DONATION-WEBHOOK] ⚠ routing gagal (best-effort), perbaiki manual: %v", err)
		}

	case "expire", "cancel", "deny":
		if err := db.Model(&model.Transaction{}).
			Where("transaction_id = ?", trx.TransactionID).
			Update("transaction_validation_status", constants.ValidationStatusRejected).Error; err != nil {
			return err
		}

	default:
		log.Printf("[DONATION-WEBHOOK] status %s tidak diproses", status)
	}

	return nil
}
