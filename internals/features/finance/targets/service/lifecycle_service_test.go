package service

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/targets/model"
)

func TestComputeDistributionFullyFunded(t *testing.T) {
	// target 1 juta, terkumpul 1,5 juta, 4 wisudawan, alokasi Rp 250rb
	d := ComputeDistribution(1000000, 1500000, 4, 250000)

	if !d.FullyFunded {
		t.Fatal("harus fully funded")
	}
	if d.PerPerson != 250000 {
		t.Fatalf("per_person = %d, want 250000", d.PerPerson)
	}
	if d.TotalDistributed != 1000000 {
		t.Fatalf("total_distributed = %d, want 1000000", d.TotalDistributed)
	}
	if d.Excess != 500000 {
		t.Fatalf("excess = %d, want 500000", d.Excess)
	}
}

func TestComputeDistributionPartiallyFunded(t *testing.T) {
	// terkumpul 600rb dari target 1 juta, 4 wisudawan
	d := ComputeDistribution(1000000, 600000, 4, 250000)

	if d.FullyFunded {
		t.Fatal("harus partially funded")
	}
	if d.PerPerson != 150000 {
		t.Fatalf("per_person = %d, want floor(600000/4)=150000", d.PerPerson)
	}
	if d.TotalDistributed != 600000 {
		t.Fatalf("total_distributed = %d, want 600000", d.TotalDistributed)
	}
	if d.Excess != 0 {
		t.Fatalf("excess = %d, want 0", d.Excess)
	}
}

func TestComputeDistributionExactlyFunded(t *testing.T) {
	d := ComputeDistribution(1000000, 1000000, 4, 250000)
	if !d.FullyFunded || d.Excess != 0 || d.TotalDistributed != 1000000 {
		t.Fatalf("batas current == target harus fully funded tanpa kelebihan: %+v", d)
	}
}

func TestComputeDistributionFloorRounding(t *testing.T) {
	d := ComputeDistribution(1000000, 100001, 3, 250000)
	if d.PerPerson != 33333 {
		t.Fatalf("per_person = %d, want floor(100001/3)=33333", d.PerPerson)
	}
}

func TestComputeDistributionNoGraduates(t *testing.T) {
	d := ComputeDistribution(1000000, 600000, 0, 250000)
	if d.PerPerson != 0 || d.TotalDistributed != 600000 {
		t.Fatalf("tanpa wisudawan per_person harus 0: %+v", d)
	}
}

func TestCanTransitionForwardOnly(t *testing.T) {
	allowed := []transition{
		{constants.TargetStatusUpcoming, constants.TargetStatusActive},
		{constants.TargetStatusActive, constants.TargetStatusClosingSoon},
		{constants.TargetStatusActive, constants.TargetStatusClosed},
		{constants.TargetStatusClosingSoon, constants.TargetStatusClosed},
		{constants.TargetStatusClosed, constants.TargetStatusArchived},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.From, tr.To) {
			t.Errorf("transisi %s→%s harus diizinkan", tr.From, tr.To)
		}
	}

	statuses := []string{
		constants.TargetStatusUpcoming,
		constants.TargetStatusActive,
		constants.TargetStatusClosingSoon,
		constants.TargetStatusClosed,
		constants.TargetStatusArchived,
	}
	// tidak ada transisi mundur, tidak ada self-transition
	order := map[string]int{}
	for i, s := range statuses {
		order[s] = i
	}
	for _, from := range statuses {
		for _, to := range statuses {
			if CanTransition(from, to) && order[to] <= order[from] {
				t.Errorf("transisi mundur %s→%s tidak boleh diizinkan", from, to)
			}
		}
	}
	// archived terminal
	for _, to := range statuses {
		if CanTransition(constants.TargetStatusArchived, to) {
			t.Errorf("archived harus terminal, tapi %s diizinkan", to)
		}
	}
}

func TestClosingSoonThresholdBoundary(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	threshold := ClosingSoonThreshold(now, 3)

	exactlyAtOffset := now.Add(3 * 24 * time.Hour)
	oneDayFurther := now.Add(4 * 24 * time.Hour)

	// deadline tepat di offset ikut ditandai (query pakai <=)
	if exactlyAtOffset.After(threshold) {
		t.Fatal("deadline tepat di offset harus masuk himpunan closing_soon")
	}
	if !oneDayFurther.After(threshold) {
		t.Fatal("deadline satu hari lebih jauh harus di luar himpunan")
	}
}

func TestShouldArchive(t *testing.T) {
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	past := []model.Graduate{
		{Name: "Andi", Date: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)},
		{Name: "Budi", Date: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)},
	}
	if !ShouldArchive(past, now) {
		t.Fatal("semua wisuda sudah lewat → harus diarsip")
	}

	mixed := []model.Graduate{
		{Name: "Andi", Date: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)},
		{Name: "Citra", Date: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)},
	}
	if ShouldArchive(mixed, now) {
		t.Fatal("masih ada wisuda mendatang → tetap closed")
	}

	if ShouldArchive(nil, now) {
		t.Fatal("tanpa wisudawan tidak boleh diarsip")
	}

	zeroOnly := []model.Graduate{{Name: "X"}}
	if ShouldArchive(zeroOnly, now) {
		t.Fatal("tanggal kosong tidak dihitung")
	}
}

func TestLastGraduateDate(t *testing.T) {
	grads := []model.Graduate{
		{Name: "A", Date: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)},
		{Name: "B", Date: time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)},
		{Name: "C"}, // tanggal kosong, diabaikan
	}
	last, ok := LastGraduateDate(grads)
	if !ok || !last.Equal(time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("last = %v ok = %v", last, ok)
	}

	if _, ok := LastGraduateDate(nil); ok {
		t.Fatal("tanpa wisudawan ok harus false")
	}
}

func TestCanArchiveNow(t *testing.T) {
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	past := &model.GraduationTarget{TargetStatus: "closed"}
	if err := past.SetGraduates([]model.Graduate{
		{Name: "Andi", Date: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)},
	}); err != nil {
		t.Fatalf("set graduates: %v", err)
	}
	if !CanArchiveNow(past, now) {
		t.Fatal("semua wisuda sudah lewat → boleh diarsip")
	}

	future := &model.GraduationTarget{TargetStatus: "closed"}
	if err := future.SetGraduates([]model.Graduate{
		{Name: "Andi", Date: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)},
		{Name: "Citra", Date: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)},
	}); err != nil {
		t.Fatalf("set graduates: %v", err)
	}
	if CanArchiveNow(future, now) {
		t.Fatal("masih ada wisuda mendatang → belum boleh diarsip")
	}

	empty := &model.GraduationTarget{TargetStatus: "closed"}
	if CanArchiveNow(empty, now) {
		t.Fatal("tanpa wisudawan tidak boleh diarsip")
	}

	corrupt := &model.GraduationTarget{
		TargetStatus:    "closed",
		TargetGraduates: datatypes.JSON([]byte(`{bukan json valid`)),
	}
	if CanArchiveNow(corrupt, now) {
		t.Fatal("graduates rusak tidak boleh diarsip")
	}
}
