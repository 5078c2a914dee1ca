package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/settings/service"
	txDto "github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/dto"
	txModel "github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/model"
	txService "github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/service"
	"github.com/AlphaJr1/AlumniFund/internals/helpers"
	"github.com/AlphaJr1/AlumniFund/internals/middlewares/auth"
)

type TransactionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{
		DB:       db,
		Validate: validator.New(),
	}
}

// =============================
// ➕ Catat transaksi manual (admin)
// =============================
func (ctrl *TransactionController) CreateTransaction(c *fiber.Ctx) error {
	var req txDto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	settings := service.GetSystemSettings(ctrl.DB)
	if req.TransactionType == constants.TransactionTypeIncome &&
		req.TransactionAmount < settings.MinimumContribution {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("Kontribusi minimal Rp %d", settings.MinimumContribution))
	}

	trx := txModel.Transaction{
		TransactionType:             req.TransactionType,
		TransactionAmount:           req.TransactionAmount,
		TransactionDescription:      req.TransactionDescription,
		TransactionProofURL:         req.TransactionProofURL,
		TransactionTargetID:         req.TransactionTargetID,
		TransactionValidated:        true,
		TransactionValidationStatus: constants.ValidationStatusApproved,
		TransactionCreatedBy:        auth.Username(c),
		TransactionMetadata: txModel.MetadataJSON(map[string]any{
			"submission_method": "manual",
		}),
	}

	if err := ctrl.DB.Create(&trx).Error; err != nil {
		log.Printf("[TRANSACTION] ❌ gagal simpan transaksi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan transaksi")
	}

	// Routing best-effort: transaksi sudah tercatat, kegagalan routing
	// dilaporkan tapi tidak membatalkan pencatatan.
	if err := txService.RouteIncome(ctrl.DB, &trx); err != nil {
		log.Printf("[TRANSACTION] ⚠ routing gagal untuk %s: %v", trx.TransactionID, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi berhasil dicatat", trx)
}

// =============================
// 📥 Daftar transaksi (filter opsional: type, target_id)
// =============================
func (ctrl *TransactionController) GetTransactions(c *fiber.Ctx) error {
	query := ctrl.DB.Model(&txModel.Transaction{}).Order("created_at DESC")

	if t := c.Query("type"); t != "" {
		query = query.Where("transaction_type = ?", t)
	}
	if targetID := c.Query("target_id"); targetID != "" {
		query = query.Where("transaction_target_id = ?", targetID)
	}

	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var transactions []txModel.Transaction
	if err := query.Limit(limit).Find(&transactions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}

	return helper.Success(c, "Daftar transaksi", transactions)
}

// =============================
// 🔍 Detail transaksi
// =============================
func (ctrl *TransactionController) GetTransactionByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}

	var trx txModel.Transaction
	if err := ctrl.DB.First(&trx, "transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}

	return helper.Success(c, "Detail transaksi", trx)
}

// =============================
// 💳 Buat donasi online (Midtrans Snap)
// =============================
func (ctrl *TransactionController) CreateDonation(c *fiber.Ctx) error {
	var req txDto.CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	settings := service.GetSystemSettings(ctrl.DB)
	if req.DonationAmount < settings.MinimumContribution {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("Kontribusi minimal Rp %d", settings.MinimumContribution))
	}

	orderID := fmt.Sprintf("DONATION-%d", time.Now().UnixNano())
	message := ""
	if req.DonationMessage != nil {
		message = *req.DonationMessage
	}

	trx := txModel.Transaction{
		TransactionType:        constants.TransactionTypeIncome,
		TransactionAmount:      req.DonationAmount,
		TransactionDescription: fmt.Sprintf("Donasi online dari %s", req.DonationName),
		TransactionOrderID:     &orderID,
		TransactionCreatedBy:   req.DonationName,
		TransactionMetadata: txModel.MetadataJSON(map[string]any{
			"submission_method": "online",
			"donor_name":        req.DonationName,
			"message":           message,
		}),
	}

	if err := ctrl.DB.Create(&trx).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return helper.Error(c, fiber.StatusConflict, "Order ID sudah terpakai, coba lagi")
		}
		log.Printf("[DONATION] ❌ gagal simpan transaksi donasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat donasi")
	}

	email := ""
	if req.DonationEmail != nil {
		email = *req.DonationEmail
	}

	token, err := txService.GenerateSnapToken(&trx, req.DonationName, email)
	if err != nil {
		log.Printf("[DONATION] ❌ gagal generate snap token: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}

	if err := ctrl.DB.Model(&txModel.Transaction{}).
		Where("transaction_id = ?", trx.TransactionID).
		Update("transaction_payment_token", token).Error; err != nil {
		log.Printf("[DONATION] ⚠ gagal simpan payment token: %v", err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donasi berhasil dibuat", txDto.CreateDonationResponse{
		TransactionID: trx.TransactionID.String(),
		OrderID:       orderID,
		SnapToken:     token,
	})
}

// =============================
// 🔔 Webhook notifikasi Midtrans
// =============================
func (ctrl *TransactionController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := txService.HandleDonationStatusWebhook(ctrl.DB, body); err != nil {
		log.Printf("[DONATION-WEBHOOK] ❌ %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
	}

	return helper.Success(c, "Notifikasi diproses", nil)
}
