package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/dto"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/model"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/service"
	"github.com/AlphaJr1/AlumniFund/internals/helpers"
	"github.com/AlphaJr1/AlumniFund/internals/middlewares/auth"
)

type TargetController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTargetController(db *gorm.DB) *TargetController {
	return &TargetController{
		DB:       db,
		Validate: validator.New(),
	}
}

// =============================
// ➕ Buat target wisuda baru
// =============================
func (ctrl *TargetController) CreateTarget(c *fiber.Ctx) error {
	var req dto.CreateTargetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	grads := make([]model.Graduate, 0, len(req.Graduates))
	for _, g := range req.Graduates {
		grads = append(grads, model.Graduate{
			Name:     g.Name,
			Date:     g.Date,
			Location: g.Location,
		})
	}

	target := model.GraduationTarget{
		TargetMonth:    req.TargetMonth,
		TargetYear:     req.TargetYear,
		TargetAmount:   req.TargetAmount,
		TargetDeadline: req.TargetDeadline,
		TargetStatus:   constants.TargetStatusUpcoming,
	}
	if err := target.SetGraduates(grads); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data wisudawan tidak valid")
	}

	if err := ctrl.DB.Create(&target).Error; err != nil {
		log.Printf("[TARGET] ❌ gagal simpan target: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat target")
	}

	// Aktivasi + alokasi awal dari dompet bersama (kalau belum ada target aktif)
	service.HandleTargetCreated(ctrl.DB, &target)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Target berhasil dibuat", target)
}

// =============================
// 📥 Daftar target (filter opsional: status, year)
// =============================
func (ctrl *TargetController) GetTargets(c *fiber.Ctx) error {
	query := ctrl.DB.Model(&model.GraduationTarget{}).
		Order("target_deadline DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("target_status = ?", status)
	}
	if year := c.QueryInt("year", 0); year > 0 {
		query = query.Where("target_year = ?", year)
	}

	var targets []model.GraduationTarget
	if err := query.Find(&targets).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar target")
	}

	return helper.Success(c, "Daftar target", targets)
}

// =============================
// 🔍 Target yang sedang berjalan (active / closing_soon)
// =============================
func (ctrl *TargetController) GetCurrentTarget(c *fiber.Ctx) error {
	var target model.GraduationTarget
	err := ctrl.DB.
		Where("target_status IN ?", []string{constants.TargetStatusActive, constants.TargetStatusClosingSoon}).
		Order("target_deadline ASC").
		First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Belum ada target yang aktif")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil target")
	}

	return helper.Success(c, "Target berjalan", target)
}

// =============================
// 🔍 Detail target
// =============================
func (ctrl *TargetController) GetTargetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID target tidak valid")
	}

	var target model.GraduationTarget
	if err := ctrl.DB.First(&target, "target_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Target tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil target")
	}

	return helper.Success(c, "Detail target", target)
}

// =============================
// ✏️ Ubah status target (manual, admin)
// =============================
func (ctrl *TargetController) UpdateTargetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID target tidak valid")
	}

	var req dto.UpdateTargetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var target model.GraduationTarget
	if err := ctrl.DB.First(&target, "target_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Target tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil target")
	}

	if !service.CanTransition(target.TargetStatus, req.TargetStatus) {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"Transisi status "+target.TargetStatus+" → "+req.TargetStatus+" tidak diizinkan")
	}

	// Penutupan manual menjalankan seluruh kaskade (distribusi, transfer
	// kelebihan, buka target berikutnya), sama seperti sweep otomatis.
	if req.TargetStatus == constants.TargetStatusClosed {
		if err := service.CloseTargetManually(ctrl.DB, &target, auth.Username(c)); err != nil {
			log.Printf("[TARGET] ❌ penutupan manual gagal untuk %s: %v", target.TargetID, err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menutup target")
		}
		return helper.Success(c, "Target ditutup", target)
	}

	before := target
	now := time.Now()

	switch req.TargetStatus {
	case constants.TargetStatusActive:
		// re-verifikasi "hanya satu target aktif" di dalam statement-nya
		activated, err := service.ActivateTargetExclusively(ctrl.DB, &target)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengaktifkan target")
		}
		if !activated {
			return helper.Error(c, fiber.StatusConflict, "Sudah ada target lain yang aktif")
		}

	case constants.TargetStatusArchived:
		if !service.CanArchiveNow(&target, now) {
			return helper.Error(c, fiber.StatusUnprocessableEntity,
				"Masih ada tanggal wisuda yang belum lewat, target belum bisa diarsip")
		}
		res := ctrl.DB.Model(&model.GraduationTarget{}).
			Where("target_id = ? AND target_status = ?", target.TargetID, constants.TargetStatusClosed).
			Updates(map[string]interface{}{
				"target_status": constants.TargetStatusArchived,
				"updated_at":    now,
			})
		if res.Error != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengarsip target")
		}
		if res.RowsAffected == 0 {
			return helper.Error(c, fiber.StatusConflict, "Status target sudah berubah, muat ulang dulu")
		}
		target.TargetStatus = constants.TargetStatusArchived

	default: // active → closing_soon
		res := ctrl.DB.Model(&model.GraduationTarget{}).
			Where("target_id = ? AND target_status = ?", target.TargetID, target.TargetStatus).
			Updates(map[string]interface{}{
				"target_status": req.TargetStatus,
				"updated_at":    now,
			})
		if res.Error != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah status target")
		}
		if res.RowsAffected == 0 {
			return helper.Error(c, fiber.StatusConflict, "Status target sudah berubah, muat ulang dulu")
		}
		target.TargetStatus = req.TargetStatus
	}

	service.OnStatusChanged(ctrl.DB, &before, &target)

	return helper.Success(c, "Status target diperbarui", target)
}
