package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/submissions/service"
	ossHelper "github.com/AlphaJr1/AlumniFund/internals/helpers/oss"
)

// StartCleanupScheduler menjalankan sweep mingguan (Minggu 02:00 WIB)
// untuk submission rejected yang sudah melewati masa retensi.
func StartCleanupScheduler(db *gorm.DB, oss *ossHelper.OSSService) *cron.Cron {
	var blobs service.BlobDeleter
	if oss != nil {
		blobs = oss
	}

	loc, err := time.LoadLocation(constants.TimeZone)
	if err != nil {
		log.Printf("[SCHEDULER] ⚠ gagal load timezone %s, pakai lokal: %v", constants.TimeZone, err)
		loc = time.Local
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	if _, err := c.AddFunc(constants.ScheduleCleanupSubmissions, func() {
		log.Println("[SCHEDULER] Menjalankan cleanup submission rejected...")
		if _, err := service.CleanupOldSubmissions(db, blobs, time.Now(),
			constants.RetentionRejectedSubmissionDays); err != nil {
			log.Printf("[SCHEDULER] ❌ cleanup submission gagal: %v", err)
		}
	}); err != nil {
		log.Printf("[SCHEDULER] ❌ gagal daftarkan job cleanup: %v", err)
	}

	c.Start()
	log.Println("[SCHEDULER] Cleanup scheduler aktif (Asia/Jakarta)")
	return c
}
