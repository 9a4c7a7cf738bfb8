// Package deviceid derives the anonymous session identifier sent with price
// requests.
package deviceid

import (
	"crypto/md5"
	"os"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Derive returns the first byte of the MD5 digest of fingerprint as lower-case
// hex with no zero padding ("ff", "3", ...). The backend only needs a coarse
// bucket, not a stable device id.
func Derive(fingerprint string) string {
	sum := md5.Sum([]byte(fingerprint))
	return strconv.FormatUint(uint64(sum[0]), 16)
}

var (
	fallbackOnce sync.Once
	fallback     string
)

// Fingerprint picks the configured fingerprint, then the host name, then a
// random id that stays fixed for the life of the process.
func Fingerprint(configured string) string {
	if configured != "" {
		return configured
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	fallbackOnce.Do(func() {
		fallback = uuid.NewString()
	})
	return fallback
}
