package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	analyticsService "github.com/AlphaJr1/AlumniFund/internals/features/finance/analytics/service"
	fundService "github.com/AlphaJr1/AlumniFund/internals/features/finance/generalfund/service"
	settingsService "github.com/AlphaJr1/AlumniFund/internals/features/finance/settings/service"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/model"
	"github.com/AlphaJr1/AlumniFund/internals/helpers/retry"
)

/* =======================================================================
   Tabel transisi status target
   Lifecycle hanya maju: upcoming → active → closing_soon → closed →
   archived. Tidak pernah mundur; archived terminal.
======================================================================= */

type transition struct {
	From string
	To   string
}

var allowedTransitions = map[transition]bool{
	{constants.TargetStatusUpcoming, constants.TargetStatusActive}:    true,
	{constants.TargetStatusActive, constants.TargetStatusClosingSoon}: true,
	{constants.TargetStatusActive, constants.TargetStatusClosed}:      true,
	{constants.TargetStatusClosingSoon, constants.TargetStatusClosed}: true,
	{constants.TargetStatusClosed, constants.TargetStatusArchived}:    true,
}

// CanTransition cek apakah perpindahan status diizinkan tabel transisi.
func CanTransition(from, to string) bool {
	return allowedTransitions[transition{from, to}]
}

// ClosedHookResult memisahkan soft-failure (analytics / archival gagal tapi
// ditelan) dari keberhasilan, supaya caller dan test bisa membedakannya
// tanpa menganggapnya hard failure.
type ClosedHookResult struct {
	Archived     bool
	AnalyticsErr error
	ArchiveErr   error
}

// OnStatusChanged dipanggil setiap kali status target berubah (update dari
// admin). Lookup (from, to) di tabel transisi menentukan aksi lanjutan.
// Kegagalan di sini ditelan — transisi utamanya sudah commit.
func OnStatusChanged(db *gorm.DB, before, after *model.GraduationTarget) {
	switch (transition{before.TargetStatus, after.TargetStatus}) {
	case transition{constants.TargetStatusActive, constants.TargetStatusClosed},
		transition{constants.TargetStatusClosingSoon, constants.TargetStatusClosed}:
		res := runClosedHooks(db, after)
		if res.AnalyticsErr != nil || res.ArchiveErr != nil {
			log.Printf("[TARGET-CLOSED] ⚠ hook best-effort gagal untuk %s (analytics=%v, archive=%v)",
				after.PeriodLabel(), res.AnalyticsErr, res.ArchiveErr)
		}
	case transition{constants.TargetStatusUpcoming, constants.TargetStatusActive}:
		if _, err := fundService.AutoAllocateToTarget(db, after.TargetID); err != nil {
			log.Printf("[TARGET-OPENED] ⚠ auto-allocate gagal (best-effort): %v", err)
		}
	}
}

/* =======================================================================
   Hook pembuatan target
======================================================================= */

// ActivateTargetExclusively coba aktifkan target upcoming. Pengecekan
// "hanya satu target aktif" di-re-verifikasi DI DALAM statement yang sama
// supaya dua aktivasi yang hampir bersamaan (dua admin, atau admin vs
// pembuatan target) tidak bisa sama-sama lolos. Return false kalau sudah
// ada target aktif lain atau statusnya sudah bukan upcoming.
func ActivateTargetExclusively(db *gorm.DB, t *model.GraduationTarget) (bool, error) {
	now := time.Now()
	res := db.Exec(`
		UPDATE graduation_targets
		   SET target_status = ?, target_open_date = ?, updated_at = ?
		 WHERE target_id = ?
		   AND target_status = ?
		   AND NOT EXISTS (
			SELECT 1 FROM graduation_targets
			 WHERE target_status IN (?, ?) AND target_id <> ?
		   )`,
		constants.TargetStatusActive, now, now,
		t.TargetID, constants.TargetStatusUpcoming,
		constants.TargetStatusActive, constants.TargetStatusClosingSoon, t.TargetID,
	)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	t.TargetStatus = constants.TargetStatusActive
	t.TargetOpenDate = &now
	return true, nil
}

// HandleTargetCreated aktifkan target baru kalau belum ada target aktif.
func HandleTargetCreated(db *gorm.DB, t *model.GraduationTarget) {
	log.Printf("[TARGET-CREATED] === target baru: %s (%s) ===", t.PeriodLabel(), t.TargetID)

	if t.TargetStatus == constants.TargetStatusActive {
		// dibuat langsung active — tinggal alokasi
		if _, err := fundService.AutoAllocateToTarget(db, t.TargetID); err != nil {
			log.Printf("[TARGET-CREATED] ⚠ auto-allocate gagal (best-effort): %v", err)
		}
		return
	}
	if t.TargetStatus != constants.TargetStatusUpcoming {
		return
	}

	activated, err := ActivateTargetExclusively(db, t)
	if err != nil {
		log.Printf("[TARGET-CREATED] ⚠ aktivasi gagal (best-effort): %v", err)
		return
	}
	if !activated {
		log.Printf("[TARGET-CREATED] sudah ada target aktif — target baru tetap upcoming")
		return
	}
	log.Printf("[TARGET-CREATED] ✓ target diaktifkan")

	if _, err := fundService.AutoAllocateToTarget(db, t.TargetID); err != nil {
		log.Printf("[TARGET-CREATED] ⚠ auto-allocate gagal (best-effort): %v", err)
	}
}

/* =======================================================================
   Sweep deadline: tutup target yang lewat deadline
======================================================================= */

type closedTarget struct {
	target model.GraduationTarget
	dist   DistributionResult
}

// CheckDeadlines tutup semua target active/closing_soon yang deadline-nya
// sudah lewat. Penutupan satu batch atomik dulu, baru cascade (transfer
// kelebihan + auto-open) yang masing-masing dibungkus retry. Error dari
// batch atau cascade yang kehabisan retry diangkat ke scheduler supaya
// invocation diulang.
func CheckDeadlines(db *gorm.DB) error {
	log.Printf("[CHECK-DEADLINES] === mulai sweep deadline ===")
	now := time.Now()

	settings := settingsService.GetSystemSettings(db)

	var expired []model.GraduationTarget
	if err := db.Where("target_status IN ? AND target_deadline < ?",
		[]string{constants.TargetStatusActive, constants.TargetStatusClosingSoon}, now).
		Order("target_deadline ASC, target_id ASC").
		Find(&expired).Error; err != nil {
		return fmt.Errorf("query target lewat deadline: %w", err)
	}
	if len(expired) == 0 {
		log.Printf("[CHECK-DEADLINES] tidak ada target lewat deadline")
		return nil
	}
	log.Printf("[CHECK-DEADLINES] %d target lewat deadline", len(expired))

	closed, err := closeTargetsBatch(db, expired, settings, now, constants.SystemUser)
	if err != nil {
		return fmt.Errorf("batch penutupan: %w", err)
	}
	log.Printf("[CHECK-DEADLINES] ✓ %d target ditutup", len(closed))

	// hook pasca-tutup (analytics + arsip) — best-effort, tidak boleh
	// bikin sweep diulang karena penutupannya sendiri sudah sukses
	for i := range closed {
		res := runClosedHooks(db, &closed[i].target)
		if res.AnalyticsErr != nil || res.ArchiveErr != nil {
			log.Printf("[CHECK-DEADLINES] ⚠ hook best-effort gagal untuk %s (analytics=%v, archive=%v)",
				closed[i].target.PeriodLabel(), res.AnalyticsErr, res.ArchiveErr)
		}
	}

	if err := runPostClosureCascade(db, closed, settings); err != nil {
		return err
	}

	log.Printf("[CHECK-DEADLINES] === selesai ===")
	return nil
}

// closeTargetsBatch tutup sekumpulan target dalam SATU transaksi DB supaya
// angka distribusi jadi snapshot yang konsisten, lalu kembalikan daftar
// target yang sudah di-stamp untuk cascade.
func closeTargetsBatch(db *gorm.DB, targets []model.GraduationTarget,
	settings settingsService.SystemSettings, now time.Time, closedBy string) ([]closedTarget, error) {

	closed := make([]closedTarget, 0, len(targets))
	for i := range targets {
		t := targets[i]
		grads, err := t.Graduates()
		if err != nil {
			log.Printf("[CLOSE-BATCH] ⚠ graduates %s tidak bisa didecode: %v", t.PeriodLabel(), err)
		}
		dist := ComputeDistribution(t.TargetAmount, t.TargetCurrentAmount, len(grads), settings.PerPersonAllocation)

		t.TargetStatus = constants.TargetStatusClosed
		t.TargetClosedDate = &now
		t.TargetDistributionPerPerson = dist.PerPerson
		t.TargetDistributionTotal = dist.TotalDistributed
		t.TargetDistributionStatus = constants.DistributionStatusDistributed
		t.TargetDistributedAt = &now
		t.TargetClosedBy = closedBy

		closed = append(closed, closedTarget{target: t, dist: dist})
		log.Printf("[CLOSE-BATCH] tutup %s: per_orang=%d total=%d kelebihan=%d",
			t.PeriodLabel(), dist.PerPerson, dist.TotalDistributed, dist.Excess)
	}

	// Stamp dijaga status lama (active/closing_soon). 0 baris berarti
	// invocation lain (sweep vs admin) sudah menutup target itu — lepas
	// dari batch supaya cascade tidak mentransfer kelebihannya dua kali.
	stamped := make([]bool, len(closed))
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range closed {
			t := &closed[i].target
			res := tx.Model(&model.GraduationTarget{}).
				Where("target_id = ? AND target_status IN ?", t.TargetID,
					[]string{constants.TargetStatusActive, constants.TargetStatusClosingSoon}).
				Updates(map[string]interface{}{
					"target_status":                  constants.TargetStatusClosed,
					"target_closed_date":             now,
					"target_distribution_per_person": t.TargetDistributionPerPerson,
					"target_distribution_total":      t.TargetDistributionTotal,
					"target_distribution_status":     constants.DistributionStatusDistributed,
					"target_distributed_at":          now,
					"target_closed_by":               closedBy,
					"updated_at":                     now,
				})
			if res.Error != nil {
				return res.Error
			}
			stamped[i] = res.RowsAffected > 0
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	kept := make([]closedTarget, 0, len(closed))
	for i := range closed {
		if !stamped[i] {
			log.Printf("[CLOSE-BATCH] %s sudah ditutup invocation lain — lepas dari batch",
				closed[i].target.PeriodLabel())
			continue
		}
		kept = append(kept, closed[i])
	}
	return kept, nil
}

// runPostClosureCascade jalankan konsekuensi penutupan di luar batch:
// transfer kelebihan per target, lalu auto-open SEKALI setelah target
// terakhir. Tiap langkah domain retry sendiri-sendiri; crash di tengah
// meninggalkan target tetap closed dan langkah sisanya bisa diulang
// operator tanpa double-credit.
func runPostClosureCascade(db *gorm.DB, closed []closedTarget,
	settings settingsService.SystemSettings) error {

	for i := range closed {
		ct := &closed[i]
		if ct.dist.Excess > 0 {
			err := retry.ExecuteWithRetry("transfer-excess",
				func() error {
					return fundService.TransferExcessToGeneralFund(db, &ct.target, ct.dist.Excess)
				},
				retry.DefaultMaxRetries, retry.DefaultBaseDelay)
			if err != nil {
				return fmt.Errorf("transfer kelebihan target %s: %w", ct.target.PeriodLabel(), err)
			}
		}

		if settings.AutoOpenNextTarget && i == len(closed)-1 {
			err := retry.ExecuteWithRetry("auto-open",
				func() error { return fundService.AutoOpenNextTarget(db) },
				retry.DefaultMaxRetries, retry.DefaultBaseDelay)
			if err != nil {
				return fmt.Errorf("auto-open target berikutnya: %w", err)
			}
		}
	}
	return nil
}

/* =======================================================================
   Hook pasca-tutup: analytics + arsip
======================================================================= */

// LastGraduateDate cari tanggal wisuda paling akhir. ok=false kalau tidak
// ada tanggal yang valid.
func LastGraduateDate(grads []model.Graduate) (time.Time, bool) {
	var last time.Time
	found := false
	for _, g := range grads {
		if g.Date.IsZero() {
			continue
		}
		if !found || g.Date.After(last) {
			last = g.Date
			found = true
		}
	}
	return last, found
}

// ShouldArchive: target closed boleh diarsip kalau SEMUA tanggal wisuda
// sudah lewat.
func ShouldArchive(grads []model.Graduate, now time.Time) bool {
	last, ok := LastGraduateDate(grads)
	if !ok {
		return false
	}
	return now.After(last)
}

// CanArchiveNow re-verifikasi precondition arsip untuk satu target:
// graduates bisa didecode dan semua tanggal wisudanya sudah lewat.
func CanArchiveNow(t *model.GraduationTarget, now time.Time) bool {
	grads, err := t.Graduates()
	if err != nil {
		return false
	}
	return ShouldArchive(grads, now)
}

// runClosedHooks jalankan aksi reaktif setelah target masuk status closed:
// catat analytics (dengan retry) lalu cek arsip. Dua-duanya best-effort.
func runClosedHooks(db *gorm.DB, t *model.GraduationTarget) ClosedHookResult {
	var res ClosedHookResult

	res.AnalyticsErr = retry.ExecuteWithRetry("log-analytics",
		func() error { return analyticsService.RecordTargetAnalytics(db, t) },
		retry.DefaultMaxRetries, retry.DefaultBaseDelay)

	grads, err := t.Graduates()
	if err != nil {
		res.ArchiveErr = err
		return res
	}
	if !ShouldArchive(grads, time.Now()) {
		log.Printf("[TARGET-CLOSED] %s: masih ada wisuda mendatang, tetap closed", t.PeriodLabel())
		return res
	}

	log.Printf("[TARGET-CLOSED] %s: semua wisuda sudah lewat — arsipkan", t.PeriodLabel())
	if err := db.Model(&model.GraduationTarget{}).
		Where("target_id = ? AND target_status = ?", t.TargetID, constants.TargetStatusClosed).
		Updates(map[string]interface{}{
			"target_status": constants.TargetStatusArchived,
			"updated_at":    time.Now(),
		}).Error; err != nil {
		res.ArchiveErr = err
		return res
	}
	t.TargetStatus = constants.TargetStatusArchived
	res.Archived = true
	return res
}

/* =======================================================================
   Refresh closing_soon
======================================================================= */

// ClosingSoonThreshold batas deadline untuk ditandai closing_soon.
// Deadline TEPAT di batas ikut ditandai (inklusif).
func ClosingSoonThreshold(now time.Time, offsetDays int) time.Time {
	return now.Add(time.Duration(offsetDays) * 24 * time.Hour)
}

// UpdateClosingSoonStatus tandai target active yang deadline-nya sudah
// dekat. Error diangkat ke scheduler.
func UpdateClosingSoonStatus(db *gorm.DB) error {
	log.Printf("[CLOSING-SOON] === mulai refresh closing_soon ===")
	now := time.Now()

	settings := settingsService.GetSystemSettings(db)
	threshold := ClosingSoonThreshold(now, settings.DeadlineOffsetDays)
	log.Printf("[CLOSING-SOON] offset %d hari (deadline <= %s)",
		settings.DeadlineOffsetDays, threshold.Format(time.RFC3339))

	res := db.Model(&model.GraduationTarget{}).
		Where("target_status = ? AND target_deadline <= ?", constants.TargetStatusActive, threshold).
		Updates(map[string]interface{}{
			"target_status": constants.TargetStatusClosingSoon,
			"updated_at":    now,
		})
	if res.Error != nil {
		return fmt.Errorf("update closing_soon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		log.Printf("[CLOSING-SOON] tidak ada target mendekati deadline")
	} else {
		log.Printf("[CLOSING-SOON] ✓ %d target ditandai closing_soon", res.RowsAffected)
	}
	return nil
}

/* =======================================================================
   Penutupan manual oleh admin
======================================================================= */

// CloseTargetManually tutup satu target atas perintah admin. Jalur dan
// konsekuensinya sama dengan sweep (batch satu target + cascade), hanya
// closed_by yang beda.
func CloseTargetManually(db *gorm.DB, t *model.GraduationTarget, closedBy string) error {
	if !CanTransition(t.TargetStatus, constants.TargetStatusClosed) {
		return fmt.Errorf("target %s berstatus %s, tidak bisa ditutup", t.PeriodLabel(), t.TargetStatus)
	}

	settings := settingsService.GetSystemSettings(db)
	closed, err := closeTargetsBatch(db, []model.GraduationTarget{*t}, settings, time.Now(), closedBy)
	if err != nil {
		return err
	}
	if len(closed) == 0 {
		// status di DB sudah bukan active/closing_soon — biasanya sweep
		// keburu menutup duluan, jadi jangan jalankan cascade lagi
		return fmt.Errorf("target %s sudah ditutup invocation lain", t.PeriodLabel())
	}
	*t = closed[0].target

	res := runClosedHooks(db, t)
	if res.AnalyticsErr != nil || res.ArchiveErr != nil {
		log.Printf("[CLOSE-MANUAL] ⚠ hook best-effort gagal untuk %s (analytics=%v, archive=%v)",
			t.PeriodLabel(), res.AnalyticsErr, res.ArchiveErr)
	}

	return runPostClosureCascade(db, closed, settings)
}
