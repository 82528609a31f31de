package vesting

import (
	"errors"

	"github.com/AlexZinkM/vesting-panel/internal/model"
)

var (
	// ErrNotDetected means no wallet is configured or the key file is missing.
	ErrNotDetected = errors.New("wallet not detected")
	// ErrWrongNetwork means the node serves a different chain than configured.
	ErrWrongNetwork = errors.New("wrong network")
	// ErrNotConnected is returned by write actions invoked before Connect.
	ErrNotConnected = errors.New("wallet not connected: connect first")
	// ErrInFlight is returned when the same action is already running.
	ErrInFlight = errors.New("action already in progress")
)

// ActionError carries the kind of a failed panel action.
type ActionError struct {
	Kind model.ErrorKind
	Op   string
	Err  error
}

func (e *ActionError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

func actionErr(kind model.ErrorKind, op string, err error) error {
	return &ActionError{Kind: kind, Op: op, Err: err}
}

// KindOf classifies err. Errors that are not ActionErrors count as call failures.
func KindOf(err error) model.ErrorKind {
	if err == nil {
		return model.KindNone
	}
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return model.KindCallFailed
}
