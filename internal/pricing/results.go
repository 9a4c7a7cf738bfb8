package pricing

import (
	"net/http"

	"apprien-go-sdk/internal/pkg/errs"
)

var (
	ErrTimeout    = errs.ErrTimeout
	ErrProtocol   = errs.ErrProtocol
	ErrConnection = errs.ErrConnection
)

// FetchPricesResult is the outcome of the bulk price request. RawJSON is the
// unparsed body; parsing belongs to the resolver.
type FetchPricesResult struct {
	Success      bool
	RawJSON      string
	ErrorMessage string
	Err          error
}

type FetchPriceResult struct {
	Success      bool
	VariantID    string
	ErrorMessage string
	Err          error
}

// PostReceiptResult carries the literal status and body for the caller to
// branch on. HTTPStatus is 0 when no response was received.
type PostReceiptResult struct {
	HTTPStatus   int
	Success      bool
	Body         string
	ErrorMessage string
	Err          error
}

func newPostReceiptResult(status int, body, message string, err error) PostReceiptResult {
	return PostReceiptResult{
		HTTPStatus:   status,
		Success:      status == http.StatusOK,
		Body:         body,
		ErrorMessage: message,
		Err:          err,
	}
}

// ReceiptHandler receives the outcome of PostReceipt.
type ReceiptHandler interface {
	OnPostReceiptSuccess(body string)
	OnPostReceiptFailed(message string)
}

// ReceiptHandlerFuncs adapts plain functions to ReceiptHandler. Nil fields are
// skipped.
type ReceiptHandlerFuncs struct {
	Success func(body string)
	Failed  func(message string)
}

func (f ReceiptHandlerFuncs) OnPostReceiptSuccess(body string) {
	if f.Success != nil {
		f.Success(body)
	}
}

func (f ReceiptHandlerFuncs) OnPostReceiptFailed(message string) {
	if f.Failed != nil {
		f.Failed(message)
	}
}
