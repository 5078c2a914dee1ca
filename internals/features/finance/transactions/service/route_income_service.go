package service

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	fundModel "github.com/AlphaJr1/AlumniFund/internals/features/finance/generalfund/model"
	fundService "github.com/AlphaJr1/AlumniFund/internals/features/finance/generalfund/service"
	targetModel "github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/model"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/model"
)

// sentinel internal: baris transaksi sudah dirutekan invocation lain
var errAlreadyRouted = errors.New("transaksi sudah dirutekan")

// ShouldRouteIncome guard idempoten: hanya income yang belum punya
// target_id yang dirutekan. Pengiriman ulang event create jadi no-op.
func ShouldRouteIncome(trx *model.Transaction) bool {
	if trx.TransactionType != constants.TransactionTypeIncome {
		return false
	}
	return trx.TransactionTargetID == nil || *trx.TransactionTargetID == ""
}

// RouteIncome menentukan tujuan satu transaksi income: target yang sedang
// aktif (active/closing_soon) kalau ada, kalau tidak dompet bersama.
// Increment saldo dan stamping target_id jalan dalam satu transaksi DB;
// stamping dijaga `transaction_target_id IS NULL` supaya dua delivery
// bersamaan tidak pernah double-credit.
//
// Error dikembalikan supaya caller bisa log, tapi caller TIDAK boleh
// menggagalkan pembuatan transaksinya — operator bisa merutekan manual.
func RouteIncome(db *gorm.DB, trx *model.Transaction) error {
	if !ShouldRouteIncome(trx) {
		log.Printf("[ROUTE-INCOME] transaksi %s dilewati (type=%s, target_id sudah ada)",
			trx.TransactionID, trx.TransactionType)
		return nil
	}

	log.Printf("[ROUTE-INCOME] === rutekan income %s (Rp %d) ===", trx.TransactionID, trx.TransactionAmount)

	var active targetModel.GraduationTarget
	err := db.Where("target_status IN ?",
		[]string{constants.TargetStatusActive, constants.TargetStatusClosingSoon}).
		Order("target_deadline ASC").
		First(&active).Error

	switch {
	case err == nil:
		return routeToTarget(db, trx, &active)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return routeToGeneralFund(db, trx)
	default:
		return err
	}
}

func routeToTarget(db *gorm.DB, trx *model.Transaction, target *targetModel.GraduationTarget) error {
	targetID := target.TargetID.String()
	label := target.PeriodLabel()
	log.Printf("[ROUTE-INCOME] rutekan ke target aktif: %s", label)

	err := db.Transaction(func(tx *gorm.DB) error {
		// stamp dulu dengan guard NULL; kalau 0 baris berarti invocation
		// lain sudah merutekan — jangan increment apa pun
		res := tx.Model(&model.Transaction{}).
			Where("transaction_id = ? AND transaction_target_id IS NULL", trx.TransactionID).
			Updates(map[string]interface{}{
				"transaction_target_id":    targetID,
				"transaction_target_month": label,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyRouted
		}

		return tx.Model(&targetModel.GraduationTarget{}).
			Where("target_id = ?", target.TargetID).
			Updates(map[string]interface{}{
				"target_current_amount": gorm.Expr("target_current_amount + ?", trx.TransactionAmount),
				"updated_at":            time.Now(),
			}).Error
	})
	if errors.Is(err, errAlreadyRouted) {
		log.Printf("[ROUTE-INCOME] transaksi %s sudah dirutekan invocation lain — no-op", trx.TransactionID)
		return nil
	}
	if err != nil {
		return err
	}

	trx.TransactionTargetID = &targetID
	trx.TransactionTargetMonth = &label
	log.Printf("[ROUTE-INCOME] ✓ transaksi %s → %s", trx.TransactionID, label)
	return nil
}

func routeToGeneralFund(db *gorm.DB, trx *model.Transaction) error {
	log.Printf("[ROUTE-INCOME] tidak ada target aktif — rutekan ke dompet bersama")

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Transaction{}).
			Where("transaction_id = ? AND transaction_target_id IS NULL", trx.TransactionID).
			Updates(map[string]interface{}{
				"transaction_target_id":    constants.GeneralFundTargetID,
				"transaction_target_month": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyRouted
		}

		if err := fundService.EnsureGeneralFund(tx); err != nil {
			return err
		}

		return tx.Model(&fundModel.GeneralFund{}).
			Where("general_fund_id = ?", constants.GeneralFundDocID).
			Updates(map[string]interface{}{
				"general_fund_balance":      gorm.Expr("general_fund_balance + ?", trx.TransactionAmount),
				"general_fund_total_income": gorm.Expr("general_fund_total_income + ?", trx.TransactionAmount),
				"general_fund_last_updated": time.Now(),
			}).Error
	})
	if errors.Is(err, errAlreadyRouted) {
		log.Printf("[ROUTE-INCOME] transaksi %s sudah dirutekan invocation lain — no-op", trx.TransactionID)
		return nil
	}
	if err != nil {
		return err
	}

	gfID := constants.GeneralFundTargetID
	trx.TransactionTargetID = &gfID
	trx.TransactionTargetMonth = nil
	log.Printf("[ROUTE-INCOME] ✓ transaksi %s → dompet bersama", trx.TransactionID)
	return nil
}
