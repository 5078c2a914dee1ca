package controller

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/settings/dto"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/settings/model"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/settings/service"
	"github.com/AlphaJr1/AlumniFund/internals/helpers"
)

type SettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{
		DB:       db,
		Validate: validator.New(),
	}
}

// =============================
// ⚙️ Baca konfigurasi sistem
// =============================
func (ctrl *SettingController) GetSettings(c *fiber.Ctx) error {
	settings := service.GetSystemSettings(ctrl.DB)

	var row model.AppSetting
	channels := []string{"transfer", "online"}
	if err := ctrl.DB.First(&row, "setting_id = ?", constants.AppConfigDocID).Error; err == nil &&
		len(row.SettingEnabledChannels) > 0 {
		channels = row.SettingEnabledChannels
	}

	return helper.Success(c, "Konfigurasi sistem", fiber.Map{
		"per_person_allocation": settings.PerPersonAllocation,
		"deadline_offset_days":  settings.DeadlineOffsetDays,
		"minimum_contribution":  settings.MinimumContribution,
		"auto_open_next_target": settings.AutoOpenNextTarget,
		"enabled_channels":      channels,
	})
}

// =============================
// ⚙️ Ubah konfigurasi sistem (admin)
// =============================
func (ctrl *SettingController) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Baca current, merge field yang dikirim, lalu upsert dokumen tunggal.
	current := service.GetSystemSettings(ctrl.DB)
	if req.PerPersonAllocation != nil {
		current.PerPersonAllocation = *req.PerPersonAllocation
	}
	if req.DeadlineOffsetDays != nil {
		current.DeadlineOffsetDays = *req.DeadlineOffsetDays
	}
	if req.MinimumContribution != nil {
		current.MinimumContribution = *req.MinimumContribution
	}
	if req.AutoOpenNextTarget != nil {
		current.AutoOpenNextTarget = *req.AutoOpenNextTarget
	}

	raw, err := json.Marshal(map[string]any{
		"per_person_allocation": current.PerPersonAllocation,
		"deadline_offset_days":  current.DeadlineOffsetDays,
		"minimum_contribution":  current.MinimumContribution,
		"auto_open_next_target": current.AutoOpenNextTarget,
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun konfigurasi")
	}

	row := model.AppSetting{
		SettingID:           constants.AppConfigDocID,
		SettingSystemConfig: datatypes.JSON(raw),
		UpdatedAt:           time.Now(),
	}
	if len(req.EnabledChannels) > 0 {
		row.SettingEnabledChannels = req.EnabledChannels
	}

	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_id"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrInvalidData) {
			return helper.Error(c, fiber.StatusBadRequest, "Konfigurasi tidak valid")
		}
		log.Printf("[SETTINGS] ❌ gagal simpan konfigurasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan konfigurasi")
	}

	return helper.Success(c, "Konfigurasi diperbarui", current)
}
