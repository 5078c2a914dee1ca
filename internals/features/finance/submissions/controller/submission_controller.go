package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/settings/service"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/submissions/dto"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/submissions/model"
	txModel "github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/model"
	txService "github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/service"
	"github.com/AlphaJr1/AlumniFund/internals/helpers"
	ossHelper "github.com/AlphaJr1/AlumniFund/internals/helpers/oss"
	"github.com/AlphaJr1/AlumniFund/internals/middlewares/auth"
)

type SubmissionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	OSS      *ossHelper.OSSService // nil kalau OSS tidak dikonfigurasi
}

func NewSubmissionController(db *gorm.DB, oss *ossHelper.OSSService) *SubmissionController {
	return &SubmissionController{
		DB:       db,
		Validate: validator.New(),
		OSS:      oss,
	}
}

// =============================
// ➕ Kirim bukti transfer (publik)
// =============================
func (ctrl *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	settings := service.GetSystemSettings(ctrl.DB)
	if req.SubmissionAmount < settings.MinimumContribution {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("Kontribusi minimal Rp %d", settings.MinimumContribution))
	}

	submission := model.PendingSubmission{
		SubmissionName:    req.SubmissionName,
		SubmissionAmount:  req.SubmissionAmount,
		SubmissionMessage: req.SubmissionMessage,
		SubmissionStatus:  constants.SubmissionStatusPending,
	}

	// Bukti transfer opsional tapi sangat disarankan
	if file, err := c.FormFile("proof"); err == nil && file != nil {
		if ctrl.OSS == nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Upload bukti belum dikonfigurasi")
		}
		src, err := file.Open()
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "File bukti tidak bisa dibaca")
		}
		defer src.Close()

		url, err := ctrl.OSS.UploadProofImage(c.Context(), src)
		if err != nil {
			log.Printf("[SUBMISSION] ❌ upload bukti gagal: %v", err)
			return helper.Error(c, fiber.StatusBadGateway, "Gagal mengunggah bukti transfer")
		}
		submission.SubmissionProofURL = &url
	}

	if err := ctrl.DB.Create(&submission).Error; err != nil {
		log.Printf("[SUBMISSION] ❌ gagal simpan submission: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan submission")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Bukti transfer diterima, menunggu review admin", submission)
}

// =============================
// 📥 Daftar submission (admin, filter opsional: status)
// =============================
func (ctrl *SubmissionController) GetSubmissions(c *fiber.Ctx) error {
	query := ctrl.DB.Model(&model.PendingSubmission{}).Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("submission_status = ?", status)
	}

	var submissions []model.PendingSubmission
	if err := query.Find(&submissions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}

	return helper.Success(c, "Daftar submission", submissions)
}

// =============================
// ✅❌ Review submission (admin)
// =============================
func (ctrl *SubmissionController) ReviewSubmission(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	var req dto.ReviewSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var submission model.PendingSubmission
	if err := ctrl.DB.First(&submission, "submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}

	if submission.SubmissionStatus != constants.SubmissionStatusPending {
		return helper.Error(c, fiber.StatusConflict, "Submission sudah direview")
	}

	reviewer := auth.Username(c)
	now := time.Now()

	newStatus := constants.SubmissionStatusRejected
	if req.Action == "approve" {
		newStatus = constants.SubmissionStatusApproved
	}

	var createdTx *txModel.Transaction
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// Guard status=pending menutup review ganda dari dua admin.
		res := tx.Model(&model.PendingSubmission{}).
			Where("submission_id = ? AND submission_status = ?",
				submission.SubmissionID, constants.SubmissionStatusPending).
			Updates(map[string]interface{}{
				"submission_status":      newStatus,
				"submission_reviewed_at": now,
				"submission_reviewed_by": reviewer,
				"submission_review_note": req.ReviewNote,
				"updated_at":             now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("submission sudah direview admin lain")
		}

		if newStatus != constants.SubmissionStatusApproved {
			return nil
		}

		trx := txModel.Transaction{
			TransactionType:             constants.TransactionTypeIncome,
			TransactionAmount:           submission.SubmissionAmount,
			TransactionDescription:      fmt.Sprintf("Kontribusi dari %s", submission.SubmissionName),
			TransactionProofURL:         submission.SubmissionProofURL,
			TransactionValidated:        true,
			TransactionValidationStatus: constants.ValidationStatusApproved,
			TransactionCreatedBy:        reviewer,
			TransactionMetadata: txModel.MetadataJSON(map[string]any{
				"submission_method": "transfer",
				"submission_id":     submission.SubmissionID.String(),
				"donor_name":        submission.SubmissionName,
				"message":           submission.SubmissionMessage,
			}),
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}
		createdTx = &trx
		return nil
	})
	if err != nil {
		log.Printf("[SUBMISSION] ❌ review gagal untuk %s: %v", submission.SubmissionID, err)
		return helper.Error(c, fiber.StatusConflict, err.Error())
	}

	// Routing di luar transaksi review: transaksi sudah sah, kegagalan
	// routing tinggal diulang lewat sweep/manual.
	if createdTx != nil {
		if err := txService.RouteIncome(ctrl.DB, createdTx); err != nil {
			log.Printf("[SUBMISSION] ⚠ routing gagal untuk %s: %v", createdTx.TransactionID, err)
		}
	}

	submission.SubmissionStatus = newStatus
	submission.SubmissionReviewedAt = &now
	submission.SubmissionReviewedBy = &reviewer
	submission.SubmissionReviewNote = req.ReviewNote

	return helper.Success(c, "Submission direview", fiber.Map{
		"submission":  submission,
		"transaction": createdTx,
	})
}
