//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"apprien-go-sdk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

func TestErrs(t *testing.T) {
	t.Run("Wrap keeps nil as nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
		assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
	})

	t.Run("Wrap prefixes the message", func(t *testing.T) {
		err := errs.Wrap(errSentinel, "fetch prices")
		require.Error(t, err)
		assert.Equal(t, "fetch prices: sentinel", err.Error())
		assert.True(t, errors.Is(err, errSentinel))
	})

	t.Run("Mark makes the marker matchable", func(t *testing.T) {
		base := errs.New("dial tcp: refused")
		marked := errs.Mark(base, errSentinel)
		assert.True(t, errs.Is(marked, errSentinel))
		assert.Equal(t, "dial tcp: refused", marked.Error())
	})

	t.Run("Mark on nil returns the marker", func(t *testing.T) {
		assert.Equal(t, errSentinel, errs.Mark(nil, errSentinel))
	})

	t.Run("ExtractStackLines truncates", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.New("boom"), 2)
		assert.Len(t, lines, 2)
		assert.Nil(t, errs.ExtractStackLines(nil, 2))
	})
}
