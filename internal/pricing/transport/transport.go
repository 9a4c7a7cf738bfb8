// Package transport is the seam between the pricing client and the network.
// A Transport starts a request and hands back a Call that can be polled; it
// never blocks the caller until completion.
package transport

//go:generate mockgen -source=transport.go -destination=../../../tests/mock/transport/transport.go -package=transportmock

import (
	"context"
	"net/http"
)

// Outcome classifies a finished (or unfinished) call.
type Outcome int

const (
	InProgress Outcome = iota
	Success
	// ProtocolError: the server answered with an error status.
	ProtocolError
	// ConnectionError: no response was obtained.
	ConnectionError
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Success:
		return "success"
	case ProtocolError:
		return "protocol_error"
	case ConnectionError:
		return "connection_error"
	}
	return "unknown"
}

type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

func NewRequest(method, url string) *Request {
	return &Request{Method: method, URL: url, Header: make(http.Header)}
}

type Call interface {
	IsDone() bool
	// Done is closed once the call has an outcome.
	Done() <-chan struct{}
	Outcome() Outcome
	StatusCode() int
	Body() string
	Err() error
}

type Transport interface {
	Send(ctx context.Context, req *Request) Call
}
