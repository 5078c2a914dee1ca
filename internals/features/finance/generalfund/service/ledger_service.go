package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	fundModel "github.com/AlphaJr1/AlumniFund/internals/features/finance/generalfund/model"
	targetModel "github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/model"
	txModel "github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/model"
)

// EnsureGeneralFund buat baris singleton dompet bersama kalau belum ada,
// supaya increment saldo tidak pernah gagal di instalasi baru.
func EnsureGeneralFund(tx *gorm.DB) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fundModel.GeneralFund{GeneralFundID: constants.GeneralFundDocID}).Error
}

// TransferExcessToGeneralFund memindahkan kelebihan dana target yang sudah
// ditutup ke dompet bersama. Increment saldo + pencatatan transaksi jalan
// dalam satu transaksi DB (all-or-nothing), jadi aman diulang penuh oleh
// retry executor kalau gagal.
func TransferExcessToGeneralFund(db *gorm.DB, target *targetModel.GraduationTarget, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("jumlah transfer tidak valid: %d", amount)
	}

	log.Printf("[TRANSFER-EXCESS] transfer Rp %d kelebihan target %s ke dompet bersama", amount, target.PeriodLabel())

	return db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		if err := EnsureGeneralFund(tx); err != nil {
			return err
		}

		res := tx.Model(&fundModel.GeneralFund{}).
			Where("general_fund_id = ?", constants.GeneralFundDocID).
			Updates(map[string]interface{}{
				"general_fund_balance":      gorm.Expr("general_fund_balance + ?", amount),
				"general_fund_total_income": gorm.Expr("general_fund_total_income + ?", amount),
				"general_fund_last_updated": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("dokumen dompet bersama %q tidak ditemukan", constants.GeneralFundDocID)
		}

		gfID := constants.GeneralFundTargetID
		record := txModel.Transaction{
			TransactionType:             constants.TransactionTypeIncome,
			TransactionAmount:           amount,
			TransactionTargetID:         &gfID,
			TransactionDescription:      fmt.Sprintf("Transfer kelebihan dari target %s", target.PeriodLabel()),
			TransactionValidated:        true,
			TransactionValidationStatus: constants.ValidationStatusApproved,
			TransactionCreatedBy:        constants.SystemUser,
			TransactionMetadata: txModel.MetadataJSON(map[string]any{
				"source_target_id":    target.TargetID.String(),
				"source_target_month": target.PeriodLabel(),
				"submission_method":   "auto",
				"transfer_type":       "excess_funds",
			}),
		}
		return tx.Create(&record).Error
	})
}

// AllocationAmount hitung earmark virtual: min(saldo dompet, sisa kebutuhan),
// di-clamp ke 0 kalau target sudah terpenuhi atau dompet kosong.
func AllocationAmount(fundBalance, targetAmount, currentAmount int64) int64 {
	if fundBalance <= 0 {
		return 0
	}
	needed := targetAmount - currentAmount
	if needed <= 0 {
		return 0
	}
	if fundBalance < needed {
		return fundBalance
	}
	return needed
}

// AutoAllocateToTarget set target_allocated_from_fund sebagai alokasi
// VIRTUAL — saldo dompet bersama TIDAK dikurangi. Best-effort: error
// dikembalikan supaya caller bisa log, tapi tidak pernah menggagalkan
// alur utama.
func AutoAllocateToTarget(db *gorm.DB, targetID uuid.UUID) (int64, error) {
	var fund fundModel.GeneralFund
	if err := db.First(&fund, "general_fund_id = ?", constants.GeneralFundDocID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[AUTO-ALLOCATE] dompet bersama belum ada, tidak ada yang dialokasikan")
			return 0, nil
		}
		return 0, fmt.Errorf("baca dompet bersama: %w", err)
	}
	if fund.GeneralFundBalance <= 0 {
		log.Printf("[AUTO-ALLOCATE] dompet bersama kosong, tidak ada yang dialokasikan")
		return 0, nil
	}

	var target targetModel.GraduationTarget
	if err := db.First(&target, "target_id = ?", targetID).Error; err != nil {
		return 0, fmt.Errorf("baca target %s: %w", targetID, err)
	}

	allocation := AllocationAmount(fund.GeneralFundBalance, target.TargetAmount, target.TargetCurrentAmount)
	if allocation <= 0 {
		log.Printf("[AUTO-ALLOCATE] target %s sudah terpenuhi, tidak perlu alokasi", target.PeriodLabel())
		return 0, nil
	}

	if err := db.Model(&targetModel.GraduationTarget{}).
		Where("target_id = ?", targetID).
		Update("target_allocated_from_fund", allocation).Error; err != nil {
		return 0, fmt.Errorf("update alokasi: %w", err)
	}

	log.Printf("[AUTO-ALLOCATE] ✓ alokasi virtual Rp %d ke target %s (saldo dompet tetap Rp %d)",
		allocation, target.PeriodLabel(), fund.GeneralFundBalance)
	return allocation, nil
}

// AutoOpenNextTarget aktifkan target upcoming berikutnya (deadline paling
// dekat; seri dipecah dengan target_id) dan kuras saldo dompet bersama ke
// target itu dalam satu transaksi DB. No-op kalau tidak ada target upcoming.
func AutoOpenNextTarget(db *gorm.DB) error {
	log.Printf("[AUTO-OPEN] cek target upcoming berikutnya...")

	return db.Transaction(func(tx *gorm.DB) error {
		var next targetModel.GraduationTarget
		err := tx.Where("target_status = ?", constants.TargetStatusUpcoming).
			Order("target_deadline ASC, target_id ASC").
			First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[AUTO-OPEN] tidak ada target upcoming")
			return nil
		}
		if err != nil {
			return err
		}

		now := time.Now()
		log.Printf("[AUTO-OPEN] buka target %s", next.PeriodLabel())

		if err := tx.Model(&targetModel.GraduationTarget{}).
			Where("target_id = ?", next.TargetID).
			Updates(map[string]interface{}{
				"target_status":    constants.TargetStatusActive,
				"target_open_date": now,
				"updated_at":       now,
			}).Error; err != nil {
			return err
		}

		var fund fundModel.GeneralFund
		if err := tx.First(&fund, "general_fund_id = ?", constants.GeneralFundDocID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if fund.GeneralFundBalance <= 0 {
			return nil
		}

		log.Printf("[AUTO-OPEN] transfer Rp %d dari dompet bersama ke target baru", fund.GeneralFundBalance)

		if err := tx.Model(&targetModel.GraduationTarget{}).
			Where("target_id = ?", next.TargetID).
			Update("target_current_amount",
				gorm.Expr("target_current_amount + ?", fund.GeneralFundBalance)).Error; err != nil {
			return err
		}

		if err := tx.Model(&fundModel.GeneralFund{}).
			Where("general_fund_id = ?", constants.GeneralFundDocID).
			Updates(map[string]interface{}{
				"general_fund_balance":      0,
				"general_fund_last_updated": now,
			}).Error; err != nil {
			return err
		}

		targetID := next.TargetID.String()
		label := next.PeriodLabel()
		record := txModel.Transaction{
			TransactionType:             constants.TransactionTypeIncome,
			TransactionAmount:           fund.GeneralFundBalance,
			TransactionTargetID:         &targetID,
			TransactionTargetMonth:      &label,
			TransactionDescription:      "Transfer dari Dompet Bersama",
			TransactionValidated:        true,
			TransactionValidationStatus: constants.ValidationStatusApproved,
			TransactionCreatedBy:        constants.SystemUser,
			TransactionMetadata: txModel.MetadataJSON(map[string]any{
				"submission_method": "auto",
				"transfer_type":     "general_fund_to_target",
			}),
		}
		return tx.Create(&record).Error
	})
}
