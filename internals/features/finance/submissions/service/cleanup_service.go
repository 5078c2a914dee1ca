package service

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/submissions/model"
)

// BlobDeleter menghapus objek storage berdasarkan URL publiknya.
// Diimplementasikan oleh helper OSS; di test cukup pakai fake.
type BlobDeleter interface {
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// RetentionCutoff menghitung batas waktu review untuk submission rejected
// yang boleh dihapus. Review SEBELUM cutoff (strict <) berarti kadaluarsa.
func RetentionCutoff(now time.Time, retentionDays int) time.Time {
	return now.AddDate(0, 0, -retentionDays)
}

type CleanupResult struct {
	Deleted      int
	BlobsDeleted int
	BlobsFailed  int
}

// CleanupOldSubmissions menghapus submission rejected yang sudah melewati
// masa retensi. Bukti transfer di storage dihapus best-effort: kegagalan
// hapus blob dicatat tapi barisnya tetap dihapus supaya tidak menumpuk.
func CleanupOldSubmissions(db *gorm.DB, blobs BlobDeleter, now time.Time, retentionDays int) (CleanupResult, error) {
	var result CleanupResult
	cutoff := RetentionCutoff(now, retentionDays)

	var expired []model.PendingSubmission
	if err := db.
		Where("submission_status = ? AND submission_reviewed_at < ?",
			constants.SubmissionStatusRejected, cutoff).
		Find(&expired).Error; err != nil {
		return result, err
	}

	if len(expired) == 0 {
		log.Println("[CLEANUP] Tidak ada submission rejected yang kadaluarsa")
		return result, nil
	}

	ctx := context.Background()
	ids := make([]string, 0, len(expired))
	for _, s := range expired {
		ids = append(ids, s.SubmissionID.String())
		if s.SubmissionProofURL == nil || *s.SubmissionProofURL == "" || blobs == nil {
			continue
		}
		if err := blobs.DeleteByPublicURL(ctx, *s.SubmissionProofURL); err != nil {
			result.BlobsFailed++
			log.Printf("[CLEANUP] ⚠ gagal hapus bukti %s: %v", *s.SubmissionProofURL, err)
		} else {
			result.BlobsDeleted++
		}
	}

	if err := db.
		Where("submission_id IN ?", ids).
		Delete(&model.PendingSubmission{}).Error; err != nil {
		return result, err
	}

	result.Deleted = len(ids)
	log.Printf("[CLEANUP] %d submission dihapus (%d bukti dihapus, %d gagal)",
		result.Deleted, result.BlobsDeleted, result.BlobsFailed)
	return result, nil
}
