//go:build unit

package transport_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apprien-go-sdk/internal/pricing/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HTTPTransportTestSuite struct {
	suite.Suite
	server    *httptest.Server
	transport *transport.HTTPTransport
	lastReq   *http.Request
	lastBody  string
}

func (s *HTTPTransportTestSuite) SetupTest() {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.lastReq = r
		s.lastBody = string(body)
		_, _ = w.Write([]byte("z_gold.apprien_99_abcd"))
	})
	mux.HandleFunc("/forbidden", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("bad token"))
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})
	s.server = httptest.NewServer(mux)
	s.transport = transport.NewHTTPTransport(5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *HTTPTransportTestSuite) TearDownTest() {
	s.server.Close()
}

func TestHTTPTransportSuite(t *testing.T) {
	suite.Run(t, new(HTTPTransportTestSuite))
}

func wait(t *testing.T, call transport.Call) {
	t.Helper()
	select {
	case <-call.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("call did not complete")
	}
}

func (s *HTTPTransportTestSuite) TestSend() {
	s.Run("success carries status and body", func() {
		req := transport.NewRequest(http.MethodPost, s.server.URL+"/ok")
		req.Header.Set("Authorization", "Bearer token-1")
		req.Body = []byte("payload")

		call := s.transport.Send(context.Background(), req)
		wait(s.T(), call)

		s.True(call.IsDone())
		s.Equal(transport.Success, call.Outcome())
		s.Equal(http.StatusOK, call.StatusCode())
		s.Equal("z_gold.apprien_99_abcd", call.Body())
		s.NoError(call.Err())
		s.Require().NotNil(s.lastReq)
		s.Equal("Bearer token-1", s.lastReq.Header.Get("Authorization"))
		s.Equal("payload", s.lastBody)
	})

	s.Run("error status is a protocol error", func() {
		call := s.transport.Send(context.Background(), transport.NewRequest(http.MethodGet, s.server.URL+"/forbidden"))
		wait(s.T(), call)

		s.Equal(transport.ProtocolError, call.Outcome())
		s.Equal(http.StatusForbidden, call.StatusCode())
		s.Equal("bad token", call.Body())
	})

	s.Run("unreachable host is a connection error", func() {
		closed := httptest.NewServer(http.NotFoundHandler())
		url := closed.URL
		closed.Close()

		call := s.transport.Send(context.Background(), transport.NewRequest(http.MethodGet, url))
		wait(s.T(), call)

		s.Equal(transport.ConnectionError, call.Outcome())
		s.Error(call.Err())
	})

	s.Run("malformed url fails immediately", func() {
		call := s.transport.Send(context.Background(), transport.NewRequest(http.MethodGet, "://bad"))
		s.True(call.IsDone())
		s.Equal(transport.ConnectionError, call.Outcome())
	})

	s.Run("Send returns before the response arrives", func() {
		call := s.transport.Send(context.Background(), transport.NewRequest(http.MethodGet, s.server.URL+"/slow"))
		s.False(call.IsDone())
		s.Equal(transport.InProgress, call.Outcome())
		wait(s.T(), call)
		s.Equal(transport.Success, call.Outcome())
	})
}

func TestStaticCall(t *testing.T) {
	call := transport.NewPendingCall()
	assert.False(t, call.IsDone())
	assert.Equal(t, transport.InProgress, call.Outcome())

	call.Complete(transport.Success, http.StatusOK, "first", nil)
	call.Complete(transport.ProtocolError, http.StatusInternalServerError, "second", nil)

	require.True(t, call.IsDone())
	assert.Equal(t, transport.Success, call.Outcome())
	assert.Equal(t, "first", call.Body())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "success", transport.Success.String())
	assert.Equal(t, "protocol_error", transport.ProtocolError.String())
	assert.Equal(t, "connection_error", transport.ConnectionError.String())
	assert.Equal(t, "in_progress", transport.InProgress.String())
}
