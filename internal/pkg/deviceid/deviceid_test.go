//go:build unit

package deviceid_test

import (
	"crypto/md5"
	"strconv"
	"testing"

	"apprien-go-sdk/internal/pkg/deviceid"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	t.Run("first digest byte as hex", func(t *testing.T) {
		sum := md5.Sum([]byte("device-123"))
		assert.Equal(t, strconv.FormatUint(uint64(sum[0]), 16), deviceid.Derive("device-123"))
	})

	t.Run("stable for the same input", func(t *testing.T) {
		assert.Equal(t, deviceid.Derive("abc"), deviceid.Derive("abc"))
	})

	t.Run("at most two characters", func(t *testing.T) {
		for _, in := range []string{"", "a", "device", "another-device"} {
			got := deviceid.Derive(in)
			assert.NotEmpty(t, got)
			assert.LessOrEqual(t, len(got), 2)
		}
	})
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "configured", deviceid.Fingerprint("configured"))
	assert.NotEmpty(t, deviceid.Fingerprint(""))
	assert.Equal(t, deviceid.Fingerprint(""), deviceid.Fingerprint(""))
}
