package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/service"
)

// StartLifecycleScheduler menjalankan dua job harian:
//   - 00:00 WIB: tandai target yang mendekat deadline jadi closing_soon
//   - 01:00 WIB: sweep deadline, tutup target yang lewat + kaskade
//
// Job yang masih berjalan tidak akan ditimpa run berikutnya.
func StartLifecycleScheduler(db *gorm.DB) *cron.Cron {
	loc, err := time.LoadLocation(constants.TimeZone)
	if err != nil {
		log.Printf("[SCHEDULER] ⚠ gagal load timezone %s, pakai lokal: %v", constants.TimeZone, err)
		loc = time.Local
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	if _, err := c.AddFunc(constants.ScheduleUpdateClosingSoon, func() {
		log.Println("[SCHEDULER] Menjalankan update closing_soon...")
		if err := service.UpdateClosingSoonStatus(db); err != nil {
			log.Printf("[SCHEDULER] ❌ update closing_soon gagal: %v", err)
		}
	}); err != nil {
		log.Printf("[SCHEDULER] ❌ gagal daftarkan job closing_soon: %v", err)
	}

	if _, err := c.AddFunc(constants.ScheduleCheckDeadlines, func() {
		log.Println("[SCHEDULER] Menjalankan sweep deadline target...")
		if err := service.CheckDeadlines(db); err != nil {
			log.Printf("[SCHEDULER] ❌ sweep deadline gagal: %v", err)
		}
	}); err != nil {
		log.Printf("[SCHEDULER] ❌ gagal daftarkan job sweep deadline: %v", err)
	}

	c.Start()
	log.Println("[SCHEDULER] Lifecycle scheduler aktif (Asia/Jakarta)")
	return c
}
