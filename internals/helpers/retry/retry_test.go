package retry

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestExecuteWithRetryExhaustion(t *testing.T) {
	var delays []time.Duration
	sleep = func(d time.Duration) { delays = append(delays, d) }
	defer func() { sleep = time.Sleep }()

	attempts := 0
	errBoom := errors.New("boom")
	err := ExecuteWithRetry("test", func() error {
		attempts++
		return fmt.Errorf("attempt %d: %w", attempts, errBoom)
	}, 3, time.Second)

	if attempts != 3 {
		t.Fatalf("expected 3 attempts got %d", attempts)
	}
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected last error returned, got %v", err)
	}
	if err.Error() != "attempt 3: boom" {
		t.Fatalf("expected final failure re-raised, got %q", err.Error())
	}
	// backoff murni eksponensial: 1s lalu 2s, tidak ada sleep setelah percobaan terakhir
	if len(delays) != 2 || delays[0] != time.Second || delays[1] != 2*time.Second {
		t.Fatalf("unexpected delays %v", delays)
	}
	for i := 1; i < len(delays); i++ {
		if delays[i] <= delays[i-1] {
			t.Fatalf("delays not strictly increasing: %v", delays)
		}
	}
}

func TestExecuteWithRetryEventualSuccess(t *testing.T) {
	var delays []time.Duration
	sleep = func(d time.Duration) { delays = append(delays, d) }
	defer func() { sleep = time.Sleep }()

	attempts := 0
	err := ExecuteWithRetry("test", func() error {
		attempts++
		if attempts < 2 {
			return errors.New("transient")
		}
		return nil
	}, 3, 100*time.Millisecond)

	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts got %d", attempts)
	}
	if len(delays) != 1 || delays[0] != 100*time.Millisecond {
		t.Fatalf("unexpected delays %v", delays)
	}
}

func TestExecuteWithRetryFirstTry(t *testing.T) {
	sleep = func(d time.Duration) { t.Fatalf("should not sleep on first-try success") }
	defer func() { sleep = time.Sleep }()

	if err := ExecuteWithRetry("test", func() error { return nil }, 3, time.Second); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
