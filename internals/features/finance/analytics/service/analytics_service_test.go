package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	targetModel "github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/model"
)

func testTarget(t *testing.T, goal, current int64) *targetModel.GraduationTarget {
	t.Helper()
	target := &targetModel.GraduationTarget{
		TargetID:            uuid.New(),
		TargetMonth:         "Juli",
		TargetYear:          2025,
		TargetAmount:        goal,
		TargetCurrentAmount: current,
		TargetDeadline:      time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
	}
	if err := target.SetGraduates([]targetModel.Graduate{
		{Name: "Andi", Date: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC), Location: "Jakarta"},
		{Name: "Budi", Date: time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC), Location: "Bandung"},
	}); err != nil {
		t.Fatalf("set graduates: %v", err)
	}
	return target
}

func TestBuildTargetAnalyticsFullyFunded(t *testing.T) {
	target := testTarget(t, 1000000, 1500000)
	open := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	closed := time.Date(2025, 7, 31, 12, 0, 0, 0, time.UTC)
	target.TargetOpenDate = &open
	target.TargetClosedDate = &closed
	target.TargetClosedBy = constants.SystemUser

	snap := BuildTargetAnalytics(target)

	if snap.AnalyticsPercentage != 150 {
		t.Fatalf("percentage = %d, want 150", snap.AnalyticsPercentage)
	}
	if snap.AnalyticsFundingStatus != "fully_funded" {
		t.Fatalf("funding_status = %s", snap.AnalyticsFundingStatus)
	}
	if snap.AnalyticsExcessAmount != 500000 {
		t.Fatalf("excess = %d, want 500000", snap.AnalyticsExcessAmount)
	}
	if !snap.AnalyticsAutoClosed {
		t.Fatal("auto_closed harus true untuk penutupan oleh system")
	}
	if snap.AnalyticsGraduatesCount != 2 {
		t.Fatalf("graduates_count = %d", snap.AnalyticsGraduatesCount)
	}
	// 30.5 hari → ceil = 31
	if snap.AnalyticsDurationDays == nil || *snap.AnalyticsDurationDays != 31 {
		t.Fatalf("duration_days = %v, want 31", snap.AnalyticsDurationDays)
	}
}

func TestBuildTargetAnalyticsPartial(t *testing.T) {
	target := testTarget(t, 1000000, 600000)
	target.TargetClosedBy = "admin_keu"

	snap := BuildTargetAnalytics(target)

	if snap.AnalyticsPercentage != 60 {
		t.Fatalf("percentage = %d, want 60", snap.AnalyticsPercentage)
	}
	if snap.AnalyticsFundingStatus != "partially_funded" {
		t.Fatalf("funding_status = %s", snap.AnalyticsFundingStatus)
	}
	if snap.AnalyticsExcessAmount != 0 {
		t.Fatalf("excess = %d, want 0", snap.AnalyticsExcessAmount)
	}
	if snap.AnalyticsAutoClosed {
		t.Fatal("auto_closed harus false untuk penutupan manual")
	}
	// open/closed belum ada → duration null
	if snap.AnalyticsDurationDays != nil {
		t.Fatalf("duration_days = %v, want nil", snap.AnalyticsDurationDays)
	}
}

func TestBuildTargetAnalyticsZeroGoal(t *testing.T) {
	target := testTarget(t, 0, 500000)
	snap := BuildTargetAnalytics(target)
	if snap.AnalyticsPercentage != 0 {
		t.Fatalf("percentage untuk target_amount=0 harus 0, got %d", snap.AnalyticsPercentage)
	}
	// current >= target → tetap fully_funded dengan excess penuh
	if snap.AnalyticsFundingStatus != "fully_funded" || snap.AnalyticsExcessAmount != 500000 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
