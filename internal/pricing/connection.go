package pricing

//go:generate mockgen -source=connection.go -destination=../../tests/mock/pricing/backend.go -package=pricingmock

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"sync"
	"time"

	"apprien-go-sdk/internal/pkg/clock"
	"apprien-go-sdk/internal/pkg/errs"
	"apprien-go-sdk/internal/pkg/jwt"
	"apprien-go-sdk/internal/pricing/transport"

	"github.com/google/uuid"
)

const (
	defaultPollInterval = 16 * time.Millisecond
	bodySnippetLen      = 200

	receiptField = "deal=receipt"
)

// Backend is the pricing service as seen by the resolver.
type Backend interface {
	FetchPrices(ctx context.Context) FetchPricesResult
	FetchPrice(ctx context.Context, canonicalID string) FetchPriceResult
	PostReceipt(ctx context.Context, receiptJSON string, handler ReceiptHandler) PostReceiptResult
	NotifyProductsShown(ctx context.Context, variantIDs []string)
	CheckServiceStatus(ctx context.Context) bool
	CheckTokenValidity(ctx context.Context) bool
}

// Connection performs one round trip per call against the pricing backend.
//
// Requests are bounded by a logical timeout: once it elapses the Connection
// stops waiting and reports failure, but the request itself is left to finish
// (or be cut off by the transport) in the background. Cancelling ctx does
// cancel the underlying request.
type Connection struct {
	transport    transport.Transport
	clock        clock.Clock
	logger       *slog.Logger
	reporter     *ErrorReporter
	metrics      *Metrics
	endpoints    endpoints
	settings     Settings
	pollInterval time.Duration

	mu             sync.RWMutex
	token          string
	requestTimeout time.Duration

	background sync.WaitGroup
}

var _ Backend = (*Connection)(nil)

type Option func(*Connection)

// WithMetrics records request and report counts on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Connection) {
		c.metrics = m
		c.reporter.metrics = m
	}
}

func NewConnection(settings Settings, t transport.Transport, c clock.Clock, logger *slog.Logger, opts ...Option) *Connection {
	if settings.RequestTimeout <= 0 {
		settings.RequestTimeout = DefaultRequestTimeout
	}
	poll := settings.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}
	conn := &Connection{
		transport:      t,
		clock:          c,
		logger:         logger.With(slog.String("store", settings.StoreIdentifier()), slog.String("package", settings.PackageName)),
		reporter:       NewErrorReporter(t, settings, logger),
		endpoints:      newEndpoints(settings.BaseURL, settings.StoreIdentifier(), settings.PackageName),
		settings:       settings,
		pollInterval:   poll,
		token:          settings.Token,
		requestTimeout: settings.RequestTimeout,
	}
	for _, opt := range opts {
		opt(conn)
	}
	conn.warnIfExpired(settings.Token)
	return conn
}

// Settings returns the construction-time settings with the current token and
// timeout filled in.
func (c *Connection) Settings() Settings {
	s := c.settings
	s.Token = c.Token()
	s.RequestTimeout = c.RequestTimeout()
	return s
}

// SetToken affects requests issued after the call; in-flight requests keep
// the token they were sent with.
func (c *Connection) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	c.warnIfExpired(token)
}

func (c *Connection) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Connection) SetRequestTimeout(d time.Duration) {
	c.mu.Lock()
	c.requestTimeout = d
	c.mu.Unlock()
}

func (c *Connection) RequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.requestTimeout
}

// Wait blocks until fire-and-forget calls started by this Connection have
// finished, diagnostic reports included.
func (c *Connection) Wait() {
	c.background.Wait()
	c.reporter.Wait()
}

func (c *Connection) FetchPrices(ctx context.Context) FetchPricesResult {
	const op = "fetch prices"

	req := c.authorized(http.MethodGet, c.endpoints.allPrices(), true)
	call, err := c.send(ctx, op, req, c.RequestTimeout())
	if err != nil {
		return FetchPricesResult{ErrorMessage: err.Error(), Err: err}
	}
	if err := c.expectOK(ctx, op, call); err != nil {
		return FetchPricesResult{ErrorMessage: err.Error(), Err: err}
	}
	return FetchPricesResult{Success: true, RawJSON: call.Body()}
}

func (c *Connection) FetchPrice(ctx context.Context, canonicalID string) FetchPriceResult {
	const op = "fetch price"

	req := c.authorized(http.MethodGet, c.endpoints.price(canonicalID), true)
	call, err := c.send(ctx, op, req, c.RequestTimeout())
	if err != nil {
		return FetchPriceResult{ErrorMessage: err.Error(), Err: err}
	}
	if err := c.expectOK(ctx, op, call); err != nil {
		return FetchPriceResult{ErrorMessage: err.Error(), Err: err}
	}
	return FetchPriceResult{Success: true, VariantID: call.Body()}
}

// PostReceipt waits for the response however long it takes. handler may be
// nil. Only a 200 counts as success, for the handler and the result alike.
func (c *Connection) PostReceipt(ctx context.Context, receiptJSON string, handler ReceiptHandler) PostReceiptResult {
	const op = "post receipt"
	if handler == nil {
		handler = ReceiptHandlerFuncs{}
	}

	req := c.authorized(http.MethodPost, c.endpoints.receipts(), false)
	if err := setMultipartBody(req, [][2]string{{receiptField, receiptJSON}}); err != nil {
		err = errs.Wrap(err, op)
		handler.OnPostReceiptFailed(err.Error())
		return newPostReceiptResult(0, "", err.Error(), err)
	}

	call, err := c.send(ctx, op, req, 0)
	if err != nil {
		handler.OnPostReceiptFailed(err.Error())
		return newPostReceiptResult(0, "", err.Error(), err)
	}
	if err := c.expectOK(ctx, op, call); err != nil {
		handler.OnPostReceiptFailed(fmt.Sprintf("%d: %s", call.StatusCode(), err.Error()))
		return newPostReceiptResult(call.StatusCode(), call.Body(), err.Error(), err)
	}

	handler.OnPostReceiptSuccess(call.Body())
	return newPostReceiptResult(call.StatusCode(), call.Body(), "", nil)
}

// NotifyProductsShown tells the backend which variants were displayed. It
// returns immediately; failures are only logged and reported.
func (c *Connection) NotifyProductsShown(ctx context.Context, variantIDs []string) {
	const op = "post products shown"

	fields := make([][2]string, 0, len(variantIDs))
	for i, id := range variantIDs {
		fields = append(fields, [2]string{"iap_ids[" + strconv.Itoa(i) + "]", id})
	}
	req := c.authorized(http.MethodPost, c.endpoints.productsShown(), false)
	if err := setMultipartBody(req, fields); err != nil {
		c.logger.Error("failed to encode products shown", slog.String("error", err.Error()))
		return
	}

	ctx = context.WithoutCancel(ctx)
	c.background.Add(1)
	go func() {
		defer c.background.Done()
		call, err := c.send(ctx, op, req, 0)
		if err != nil {
			return
		}
		_ = c.classify(ctx, op, call)
	}()
}

func (c *Connection) CheckServiceStatus(ctx context.Context) bool {
	const op = "check service status"

	req := transport.NewRequest(http.MethodGet, c.endpoints.status())
	return c.check(ctx, op, req)
}

func (c *Connection) CheckTokenValidity(ctx context.Context) bool {
	const op = "check token validity"

	req := c.authorized(http.MethodGet, c.endpoints.auth(), false)
	return c.check(ctx, op, req)
}

// check collapses every failure to false and does not report it.
func (c *Connection) check(ctx context.Context, op string, req *transport.Request) bool {
	call, err := c.send(ctx, op, req, c.RequestTimeout())
	if err != nil {
		return false
	}
	if call.Outcome() != transport.Success {
		c.logger.Debug(op+" failed",
			slog.String("outcome", call.Outcome().String()),
			slog.Int("status_code", call.StatusCode()),
		)
		return false
	}
	return true
}

// authorized snapshots the current token into the request headers.
func (c *Connection) authorized(method, url string, withSession bool) *transport.Request {
	req := transport.NewRequest(method, url)
	req.Header.Set("Authorization", "Bearer "+c.Token())
	if withSession {
		req.Header.Set("Session-Id", c.settings.DeviceID)
	}
	return req
}

// send issues req and waits for it. A timeout of zero waits until the call
// completes or ctx ends.
func (c *Connection) send(ctx context.Context, op string, req *transport.Request, timeout time.Duration) (transport.Call, error) {
	requestID := uuid.NewString()
	sentAt := c.clock.Now()
	c.logger.Debug("request started",
		slog.String("request_id", requestID),
		slog.String("op", op),
		slog.String("method", req.Method),
		slog.String("url", req.URL),
	)

	call := c.transport.Send(ctx, req)
	if err := c.await(ctx, call, sentAt, timeout); err != nil {
		c.metrics.observeRequest(op, "timeout", clock.Since(c.clock, sentAt))
		c.logger.Warn("request abandoned",
			slog.String("request_id", requestID),
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.metrics.observeRequest(op, call.Outcome().String(), clock.Since(c.clock, sentAt))
	c.logger.Debug("request completed",
		slog.String("request_id", requestID),
		slog.String("op", op),
		slog.String("outcome", call.Outcome().String()),
		slog.Int("status_code", call.StatusCode()),
		slog.Duration("duration", clock.Since(c.clock, sentAt)),
	)
	return call, nil
}

// await polls call until it is done, the deadline measured on c.clock has
// passed, or ctx ends. The deadline is checked before every wait, so a clock
// that has already moved past it times out without waiting.
func (c *Connection) await(ctx context.Context, call transport.Call, sentAt time.Time, timeout time.Duration) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for !call.IsDone() {
		if timeout > 0 {
			if elapsed := clock.Since(c.clock, sentAt); elapsed > timeout {
				return errs.Mark(errs.Newf("timeout after %s", timeout), ErrTimeout)
			}
		}
		select {
		case <-call.Done():
		case <-ticker.C:
		case <-ctx.Done():
			return errs.Mark(errs.Wrap(ctx.Err(), "request cancelled"), ErrTimeout)
		}
	}
	return nil
}

// classify turns a finished call into nil or a marked error, reporting
// protocol and connection failures to the diagnostic endpoint.
func (c *Connection) classify(ctx context.Context, op string, call transport.Call) error {
	var err error
	switch call.Outcome() {
	case transport.Success:
		return nil
	case transport.ProtocolError:
		err = errs.Mark(errs.Newf("%s: HTTP error %d: %s", op, call.StatusCode(), snippet(call.Body())), ErrProtocol)
	default:
		cause := "no response"
		if call.Err() != nil {
			cause = call.Err().Error()
		}
		err = errs.Mark(errs.Newf("%s: network error: %s", op, cause), ErrConnection)
	}

	c.logger.Error("pricing request failed",
		slog.String("op", op),
		slog.Int("status_code", call.StatusCode()),
		slog.String("error", err.Error()),
	)
	c.reporter.Report(ctx, call.StatusCode(), err.Error())
	return err
}

// expectOK is classify plus the rule that only 200 counts as success.
func (c *Connection) expectOK(ctx context.Context, op string, call transport.Call) error {
	if err := c.classify(ctx, op, call); err != nil {
		return err
	}
	if call.StatusCode() != http.StatusOK {
		err := errs.Mark(errs.Newf("%s: unexpected status %d: %s", op, call.StatusCode(), snippet(call.Body())), ErrProtocol)
		c.logger.Warn("pricing request returned non-200", slog.String("op", op), slog.Int("status_code", call.StatusCode()))
		c.reporter.Report(ctx, call.StatusCode(), err.Error())
		return err
	}
	return nil
}

func (c *Connection) warnIfExpired(token string) {
	exp, ok := jwt.ExpiresAt(token)
	if ok && !exp.After(c.clock.Now()) {
		c.logger.Warn("pricing token is expired", slog.Time("expired_at", exp))
	}
}

func setMultipartBody(req *transport.Request, fields [][2]string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	req.Body = buf.Bytes()
	req.Header.Set("Content-Type", w.FormDataContentType())
	return nil
}

func snippet(body string) string {
	if len(body) <= bodySnippetLen {
		return body
	}
	return body[:bodySnippetLen] + "..."
}
