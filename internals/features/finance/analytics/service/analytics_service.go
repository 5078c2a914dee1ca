package service

import (
	"log"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/analytics/model"
	targetModel "github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/model"
)

// BuildTargetAnalytics hitung snapshot metrik dari target yang sudah ditutup.
func BuildTargetAnalytics(t *targetModel.GraduationTarget) model.TargetAnalytics {
	percentage := 0
	if t.TargetAmount > 0 {
		percentage = int(math.Round(float64(t.TargetCurrentAmount) / float64(t.TargetAmount) * 100))
	}

	var durationDays *int
	if t.TargetOpenDate != nil && t.TargetClosedDate != nil {
		d := int(math.Ceil(t.TargetClosedDate.Sub(*t.TargetOpenDate).Hours() / 24))
		durationDays = &d
	}

	fundingStatus := "partially_funded"
	var excess int64
	if t.TargetCurrentAmount >= t.TargetAmount {
		fundingStatus = "fully_funded"
		excess = t.TargetCurrentAmount - t.TargetAmount
	}

	grads, err := t.Graduates()
	if err != nil {
		log.Printf("[ANALYTICS] ⚠ graduates target %s tidak bisa didecode: %v", t.PeriodLabel(), err)
	}

	deadline := t.TargetDeadline
	return model.TargetAnalytics{
		AnalyticsTargetID:        t.TargetID,
		AnalyticsMonth:           t.TargetMonth,
		AnalyticsYear:            t.TargetYear,
		AnalyticsTargetAmount:    t.TargetAmount,
		AnalyticsCollectedAmount: t.TargetCurrentAmount,
		AnalyticsPercentage:      percentage,
		AnalyticsGraduatesCount:  len(grads),
		AnalyticsFundingStatus:   fundingStatus,
		AnalyticsExcessAmount:    excess,
		AnalyticsAutoClosed:      t.TargetClosedBy == constants.SystemUser,
		AnalyticsOpenedAt:        t.TargetOpenDate,
		AnalyticsClosedAt:        t.TargetClosedDate,
		AnalyticsDeadline:        &deadline,
		AnalyticsDurationDays:    durationDays,
	}
}

// RecordTargetAnalytics tulis snapshot, keyed by target_id — re-invocation
// menimpa baris yang sama, jadi aman di bawah retry.
func RecordTargetAnalytics(db *gorm.DB, t *targetModel.GraduationTarget) error {
	snap := BuildTargetAnalytics(t)

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "analytics_target_id"}},
		UpdateAll: true,
	}).Create(&snap).Error; err != nil {
		return err
	}

	log.Printf("[ANALYTICS] ✓ target %s: %d%% terkumpul, status %s",
		t.PeriodLabel(), snap.AnalyticsPercentage, snap.AnalyticsFundingStatus)
	return nil
}
