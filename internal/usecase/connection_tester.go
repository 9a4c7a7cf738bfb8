package usecase

import (
	"context"
	"log/slog"

	"apprien-go-sdk/internal/pricing"

	"golang.org/x/sync/errgroup"
)

// ConnectionReport is the outcome of checking the backend and the token.
type ConnectionReport struct {
	ServiceOnline bool
	TokenValid    bool
}

// OK is true when the service answered and accepted the token.
func (r ConnectionReport) OK() bool {
	return r.ServiceOnline && r.TokenValid
}

type ConnectionTester interface {
	Test(ctx context.Context) ConnectionReport
}

type connectionTesterImpl struct {
	backend pricing.Backend
	logger  *slog.Logger
}

func NewConnectionTester(backend pricing.Backend, logger *slog.Logger) ConnectionTester {
	return &connectionTesterImpl{backend: backend, logger: logger}
}

func (t *connectionTesterImpl) Test(ctx context.Context) ConnectionReport {
	var report ConnectionReport
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.ServiceOnline = t.backend.CheckServiceStatus(gctx)
		return nil
	})
	g.Go(func() error {
		report.TokenValid = t.backend.CheckTokenValidity(gctx)
		return nil
	})
	_ = g.Wait()

	t.logger.Info("connection test finished",
		slog.Bool("service_online", report.ServiceOnline),
		slog.Bool("token_valid", report.TokenValid),
	)
	return report
}
