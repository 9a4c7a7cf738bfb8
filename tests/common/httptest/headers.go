//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertHeaderListContains checks a comma separated header such as
// Access-Control-Allow-Headers. Names compare case-insensitively.
func AssertHeaderListContains(t *testing.T, w *httptest.ResponseRecorder, key string, names ...string) {
	t.Helper()
	var got []string
	for _, item := range strings.Split(w.Header().Get(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			got = append(got, strings.ToLower(item))
		}
	}
	for _, name := range names {
		assert.Contains(t, got, strings.ToLower(name), "header %s lacks %s", key, name)
	}
}
