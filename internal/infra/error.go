package infra

import (
	"errors"
	"log/slog"

	"apprien-go-sdk/internal/pkg/errs"
)

type ErrorKind string

// Error is returned by the adapters in infra. Kind lets callers branch
// without knowing which adapter failed.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Infra error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound ErrorKind = "NOT_FOUND"
	KindInvalid  ErrorKind = "INVALID"
	KindIO       ErrorKind = "IO_FAILURE"
)
