package model

import (
	"time"

	"github.com/google/uuid"
)

// TargetAnalytics adalah snapshot turunan yang ditulis sekali per target
// saat target ditutup. Keyed by target_id supaya retry menimpa, bukan
// menduplikasi.
type TargetAnalytics struct {
	AnalyticsTargetID uuid.UUID `gorm:"column:analytics_target_id;type:uuid;primaryKey" json:"analytics_target_id"`

	AnalyticsMonth string `gorm:"column:analytics_month;type:varchar(20);not null" json:"analytics_month"`
	AnalyticsYear  int    `gorm:"column:analytics_year;not null" json:"analytics_year"`

	AnalyticsTargetAmount    int64 `gorm:"column:analytics_target_amount;not null" json:"analytics_target_amount"`
	AnalyticsCollectedAmount int64 `gorm:"column:analytics_collected_amount;not null" json:"analytics_collected_amount"`
	AnalyticsPercentage      int   `gorm:"column:analytics_percentage;not null" json:"analytics_percentage"`
	AnalyticsGraduatesCount  int   `gorm:"column:analytics_graduates_count;not null" json:"analytics_graduates_count"`

	AnalyticsFundingStatus string `gorm:"column:analytics_funding_status;type:varchar(20);not null" json:"analytics_funding_status"` // fully_funded | partially_funded
	AnalyticsExcessAmount  int64  `gorm:"column:analytics_excess_amount;not null;default:0" json:"analytics_excess_amount"`
	AnalyticsAutoClosed    bool   `gorm:"column:analytics_auto_closed;not null;default:false" json:"analytics_auto_closed"`

	AnalyticsOpenedAt     *time.Time `gorm:"column:analytics_opened_at" json:"analytics_opened_at,omitempty"`
	AnalyticsClosedAt     *time.Time `gorm:"column:analytics_closed_at" json:"analytics_closed_at,omitempty"`
	AnalyticsDeadline     *time.Time `gorm:"column:analytics_deadline" json:"analytics_deadline,omitempty"`
	AnalyticsDurationDays *int       `gorm:"column:analytics_duration_days" json:"analytics_duration_days,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TargetAnalytics) TableName() string {
	return "analytics"
}
