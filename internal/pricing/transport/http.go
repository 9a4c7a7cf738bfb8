package transport

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"apprien-go-sdk/internal/pkg/errs"
)

// maxBodyBytes caps how much of a response is kept in memory.
const maxBodyBytes = 1 << 20

// HTTPTransport runs each request on its own goroutine over net/http.
type HTTPTransport struct {
	client *http.Client
	logger *slog.Logger
}

func NewHTTPTransport(timeout time.Duration, logger *slog.Logger) *HTTPTransport {
	return &HTTPTransport{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func NewHTTPTransportWithClient(client *http.Client, logger *slog.Logger) *HTTPTransport {
	return &HTTPTransport{client: client, logger: logger}
}

func (t *HTTPTransport) Send(ctx context.Context, req *Request) Call {
	call := NewPendingCall()

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		call.Complete(ConnectionError, 0, "", errs.Wrap(err, "build request"))
		return call
	}
	httpReq.Header = req.Header.Clone()
	if httpReq.Header == nil {
		httpReq.Header = make(http.Header)
	}

	go t.do(httpReq, call)
	return call
}

func (t *HTTPTransport) do(req *http.Request, call *StaticCall) {
	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Debug("pricing request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		call.Complete(ConnectionError, 0, "", errs.Wrap(err, "http request"))
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		call.Complete(ConnectionError, resp.StatusCode, "", errs.Wrap(err, "read response body"))
		return
	}

	outcome := Success
	if resp.StatusCode >= http.StatusBadRequest {
		outcome = ProtocolError
	}

	t.logger.Debug("pricing request completed",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status_code", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)
	call.Complete(outcome, resp.StatusCode, string(data), nil)
}
