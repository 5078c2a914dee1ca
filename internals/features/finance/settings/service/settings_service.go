package service

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/settings/model"
)

// SystemSettings adalah parameter tunable yang dipakai lifecycle & router.
type SystemSettings struct {
	PerPersonAllocation int64
	DeadlineOffsetDays  int
	MinimumContribution int64
	AutoOpenNextTarget  bool
}

// DefaultSettings fallback kalau dokumen settings tidak ada / gagal dibaca.
// Ketidaktersediaan settings tidak boleh memblokir pergerakan dana.
func DefaultSettings() SystemSettings {
	return SystemSettings{
		PerPersonAllocation: constants.DefaultPerPersonAllocation,
		DeadlineOffsetDays:  constants.DefaultDeadlineOffsetDays,
		MinimumContribution: constants.DefaultMinimumContribution,
		AutoOpenNextTarget:  true,
	}
}

// GetSystemSettings baca dokumen settings/app_config. Semua jalur gagal
// jatuh ke default — tidak pernah return error.
func GetSystemSettings(db *gorm.DB) SystemSettings {
	var s model.AppSetting
	if err := db.First(&s, "setting_id = ?", constants.AppConfigDocID).Error; err != nil {
		log.Printf("[SETTINGS] ⚠ dokumen settings tidak bisa dibaca, pakai default: %v", err)
		return DefaultSettings()
	}
	return ParseSystemConfig(s.SettingSystemConfig)
}

// ParseSystemConfig decode payload system_config; field yang hilang atau
// payload rusak diisi default per-field.
func ParseSystemConfig(raw datatypes.JSON) SystemSettings {
	out := DefaultSettings()
	if len(raw) == 0 {
		return out
	}

	var cfg struct {
		PerPersonAllocation *int64 `json:"per_person_allocation"`
		DeadlineOffsetDays  *int   `json:"deadline_offset_days"`
		MinimumContribution *int64 `json:"minimum_contribution"`
		AutoOpenNextTarget  *bool  `json:"auto_open_next_target"`
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		log.Printf("[SETTINGS] ⚠ system_config rusak, pakai default: %v", err)
		return out
	}

	if cfg.PerPersonAllocation != nil && *cfg.PerPersonAllocation > 0 {
		out.PerPersonAllocation = *cfg.PerPersonAllocation
	}
	if cfg.DeadlineOffsetDays != nil && *cfg.DeadlineOffsetDays > 0 {
		out.DeadlineOffsetDays = *cfg.DeadlineOffsetDays
	}
	if cfg.MinimumContribution != nil && *cfg.MinimumContribution > 0 {
		out.MinimumContribution = *cfg.MinimumContribution
	}
	// default true; hanya false kalau eksplisit false
	if cfg.AutoOpenNextTarget != nil {
		out.AutoOpenNextTarget = *cfg.AutoOpenNextTarget
	}
	return out
}
