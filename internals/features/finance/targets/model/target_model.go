package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Graduate adalah satu wisudawan penerima dana dalam target.
type Graduate struct {
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
}

// GraduationTarget adalah target penggalangan dana satu periode wisuda.
type GraduationTarget struct {
	TargetID uuid.UUID `gorm:"column:target_id;type:uuid;default:gen_random_uuid();primaryKey" json:"target_id"`

	TargetMonth string `gorm:"column:target_month;type:varchar(20);not null" json:"target_month"`
	TargetYear  int    `gorm:"column:target_year;not null" json:"target_year"`

	TargetStatus string `gorm:"column:target_status;type:varchar(20);not null;default:'upcoming'" json:"target_status"`

	// Nominal dalam rupiah utuh (integer, bukan desimal)
	TargetAmount            int64 `gorm:"column:target_amount;not null;check:target_amount >= 0" json:"target_amount"`
	TargetCurrentAmount     int64 `gorm:"column:target_current_amount;not null;default:0" json:"target_current_amount"`
	TargetAllocatedFromFund int64 `gorm:"column:target_allocated_from_fund;not null;default:0" json:"target_allocated_from_fund"`

	TargetDeadline   time.Time  `gorm:"column:target_deadline;not null;index" json:"target_deadline"`
	TargetOpenDate   *time.Time `gorm:"column:target_open_date" json:"target_open_date,omitempty"`
	TargetClosedDate *time.Time `gorm:"column:target_closed_date" json:"target_closed_date,omitempty"`

	TargetGraduates datatypes.JSON `gorm:"column:target_graduates;type:jsonb" json:"target_graduates"`

	// Hasil perhitungan distribusi saat target ditutup
	TargetDistributionPerPerson int64      `gorm:"column:target_distribution_per_person;not null;default:0" json:"target_distribution_per_person"`
	TargetDistributionTotal     int64      `gorm:"column:target_distribution_total;not null;default:0" json:"target_distribution_total"`
	TargetDistributionStatus    string     `gorm:"column:target_distribution_status;type:varchar(20);not null;default:'pending'" json:"target_distribution_status"`
	TargetDistributedAt         *time.Time `gorm:"column:target_distributed_at" json:"target_distributed_at,omitempty"`

	// "system" kalau ditutup sweep otomatis, selain itu username admin
	TargetClosedBy string `gorm:"column:target_closed_by;type:varchar(50)" json:"target_closed_by,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GraduationTarget) TableName() string {
	return "graduation_targets"
}

// Label periode, contoh: "Juli 2025"
func (t *GraduationTarget) PeriodLabel() string {
	return fmt.Sprintf("%s %d", t.TargetMonth, t.TargetYear)
}

// Graduates decode kolom JSONB menjadi slice Graduate.
func (t *GraduationTarget) Graduates() ([]Graduate, error) {
	if len(t.TargetGraduates) == 0 {
		return nil, nil
	}
	var out []Graduate
	if err := json.Unmarshal(t.TargetGraduates, &out); err != nil {
		return nil, fmt.Errorf("decode graduates: %w", err)
	}
	return out, nil
}

// SetGraduates encode slice Graduate ke kolom JSONB.
func (t *GraduationTarget) SetGraduates(grads []Graduate) error {
	raw, err := json.Marshal(grads)
	if err != nil {
		return err
	}
	t.TargetGraduates = datatypes.JSON(raw)
	return nil
}
