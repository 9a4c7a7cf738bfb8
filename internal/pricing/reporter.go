package pricing

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"apprien-go-sdk/internal/pricing/transport"

	"golang.org/x/time/rate"
)

// ErrorReporter posts SDK failures to the backend's diagnostic endpoint.
// Reports are fire-and-forget: the outcome of the POST is never inspected.
type ErrorReporter struct {
	transport transport.Transport
	endpoints endpoints
	pkg       string
	store     string
	limiter   *rate.Limiter
	metrics   *Metrics
	logger    *slog.Logger

	inflight sync.WaitGroup
}

// NewErrorReporter allows perSecond reports with the given burst. A
// non-positive rate disables limiting. The burst is at least 1, otherwise a
// positive rate would never let a report through.
func NewErrorReporter(t transport.Transport, settings Settings, logger *slog.Logger) *ErrorReporter {
	limit := rate.Inf
	if settings.ErrorReportRate > 0 {
		limit = rate.Limit(settings.ErrorReportRate)
	}
	return &ErrorReporter{
		transport: t,
		endpoints: newEndpoints(settings.BaseURL, settings.StoreIdentifier(), settings.PackageName),
		pkg:       settings.PackageName,
		store:     settings.StoreIdentifier(),
		limiter:   rate.NewLimiter(limit, max(settings.ErrorReportBurst, 1)),
		logger:    logger,
	}
}

func (r *ErrorReporter) Report(ctx context.Context, responseCode int, message string) {
	if !r.limiter.Allow() {
		r.metrics.observeReport("dropped")
		r.logger.Debug("error report dropped by rate limit",
			slog.Int("response_code", responseCode),
			slog.String("message", message),
		)
		return
	}
	r.metrics.observeReport("sent")
	req := transport.NewRequest(http.MethodPost, r.endpoints.errorReport(message, responseCode, r.pkg, r.store))
	call := r.transport.Send(context.WithoutCancel(ctx), req)
	if call.IsDone() {
		return
	}
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		<-call.Done()
	}()
}

// Wait blocks until every report sent so far has completed.
func (r *ErrorReporter) Wait() {
	r.inflight.Wait()
}
