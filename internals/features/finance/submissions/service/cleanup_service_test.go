package service

import (
	"testing"
	"time"
)

func TestRetentionCutoff(t *testing.T) {
	now := time.Date(2025, time.August, 31, 2, 0, 0, 0, time.UTC)
	cutoff := RetentionCutoff(now, 30)

	want := time.Date(2025, time.August, 1, 2, 0, 0, 0, time.UTC)
	if !cutoff.Equal(want) {
		t.Fatalf("cutoff = %v, want %v", cutoff, want)
	}
}

func TestRetentionCutoffBoundary(t *testing.T) {
	now := time.Date(2025, time.August, 31, 2, 0, 0, 0, time.UTC)
	cutoff := RetentionCutoff(now, 30)

	// Direview tepat di cutoff: BELUM kadaluarsa (sweep pakai strict <).
	reviewedAtCutoff := cutoff
	if reviewedAtCutoff.Before(cutoff) {
		t.Fatal("review tepat di cutoff tidak boleh dianggap kadaluarsa")
	}

	// Satu detik sebelum cutoff: kadaluarsa.
	reviewedBefore := cutoff.Add(-time.Second)
	if !reviewedBefore.Before(cutoff) {
		t.Fatal("review sebelum cutoff harus kadaluarsa")
	}
}
