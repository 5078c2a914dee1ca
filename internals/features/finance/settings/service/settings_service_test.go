package service

import (
	"testing"

	"gorm.io/datatypes"
)

func TestParseSystemConfigFull(t *testing.T) {
	raw := datatypes.JSON(`{"per_person_allocation":300000,"deadline_offset_days":7,"minimum_contribution":20000,"auto_open_next_target":false}`)
	got := ParseSystemConfig(raw)

	if got.PerPersonAllocation != 300000 {
		t.Fatalf("per_person_allocation = %d", got.PerPersonAllocation)
	}
	if got.DeadlineOffsetDays != 7 {
		t.Fatalf("deadline_offset_days = %d", got.DeadlineOffsetDays)
	}
	if got.MinimumContribution != 20000 {
		t.Fatalf("minimum_contribution = %d", got.MinimumContribution)
	}
	if got.AutoOpenNextTarget {
		t.Fatal("auto_open_next_target harus false kalau eksplisit false")
	}
}

func TestParseSystemConfigPartial(t *testing.T) {
	raw := datatypes.JSON(`{"per_person_allocation":100000}`)
	got := ParseSystemConfig(raw)

	if got.PerPersonAllocation != 100000 {
		t.Fatalf("per_person_allocation = %d", got.PerPersonAllocation)
	}
	def := DefaultSettings()
	if got.DeadlineOffsetDays != def.DeadlineOffsetDays ||
		got.MinimumContribution != def.MinimumContribution ||
		!got.AutoOpenNextTarget {
		t.Fatalf("field yang hilang harus jatuh ke default: %+v", got)
	}
}

func TestParseSystemConfigCorrupt(t *testing.T) {
	got := ParseSystemConfig(datatypes.JSON(`{not json`))
	if got != DefaultSettings() {
		t.Fatalf("payload rusak harus pakai default, got %+v", got)
	}
}

func TestParseSystemConfigEmpty(t *testing.T) {
	got := ParseSystemConfig(nil)
	want := DefaultSettings()
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if want.PerPersonAllocation != 250000 || want.DeadlineOffsetDays != 3 ||
		want.MinimumContribution != 10000 || !want.AutoOpenNextTarget {
		t.Fatalf("default set tidak sesuai: %+v", want)
	}
}
