package retry

import (
	"log"
	"time"
)

// hook supaya test bisa merekam delay tanpa benar-benar tidur
var sleep = time.Sleep

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 1 * time.Second
)

// ExecuteWithRetry menjalankan fn sampai berhasil, maksimal maxRetries kali.
// Antar percobaan menunggu baseDelay * 2^attempt (exponential backoff,
// attempt mulai dari 0). Kalau semua percobaan gagal, error terakhir
// dikembalikan ke caller.
//
// Hanya dipakai untuk operasi yang aman diulang penuh (transfer ledger,
// tulis analytics) — jangan bungkus transisi utama yang sudah commit.
func ExecuteWithRetry(tag string, fn func() error, maxRetries int, baseDelay time.Duration) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := fn(); err != nil {
			lastErr = err
			log.Printf("[RETRY] %s percobaan %d/%d gagal: %v", tag, attempt+1, maxRetries, err)

			if attempt == maxRetries-1 {
				log.Printf("[RETRY] %s semua percobaan habis", tag)
				break
			}

			delay := baseDelay * time.Duration(1<<uint(attempt))
			sleep(delay)
			continue
		}
		return nil
	}
	return lastErr
}
