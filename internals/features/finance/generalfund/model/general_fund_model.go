package model

import "time"

// GeneralFund adalah dompet bersama — record singleton dengan ID "current".
// Saldonya hanya boleh berubah lewat increment/decrement SQL (Fund Ledger),
// tidak pernah di-set langsung dari aplikasi.
type GeneralFund struct {
	GeneralFundID string `gorm:"column:general_fund_id;type:varchar(20);primaryKey" json:"general_fund_id"`

	GeneralFundBalance      int64 `gorm:"column:general_fund_balance;not null;default:0" json:"general_fund_balance"`
	GeneralFundTotalIncome  int64 `gorm:"column:general_fund_total_income;not null;default:0" json:"general_fund_total_income"`
	GeneralFundTotalExpense int64 `gorm:"column:general_fund_total_expense;not null;default:0" json:"general_fund_total_expense"`

	GeneralFundLastUpdated time.Time `gorm:"column:general_fund_last_updated;autoUpdateTime" json:"general_fund_last_updated"`
}

func (GeneralFund) TableName() string {
	return "general_fund"
}
