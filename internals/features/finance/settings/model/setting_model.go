package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// AppSetting adalah dokumen konfigurasi singleton (ID "app_config").
// system_config disimpan sebagai JSONB, daftar rekening tujuan transfer
// sebagai JSONB, dan kanal pembayaran aktif sebagai text[].
type AppSetting struct {
	SettingID string `gorm:"column:setting_id;type:varchar(30);primaryKey" json:"setting_id"`

	SettingPaymentMethods  datatypes.JSON `gorm:"column:setting_payment_methods;type:jsonb" json:"setting_payment_methods,omitempty"`
	SettingEnabledChannels pq.StringArray `gorm:"column:setting_enabled_channels;type:text[]" json:"setting_enabled_channels,omitempty"`
	SettingSystemConfig    datatypes.JSON `gorm:"column:setting_system_config;type:jsonb" json:"setting_system_config,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AppSetting) TableName() string {
	return "settings"
}
