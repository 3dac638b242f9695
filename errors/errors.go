package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	// ErrNotConnected marks an operation referencing a connection id that is
	// absent from the registry.
	ErrNotConnected = fmt.Errorf("not connected")

	// ErrAlreadyInSession marks a claim against a patient whose session slot
	// is already taken, or a repeated doctor request while one is pending.
	ErrAlreadyInSession = fmt.Errorf("already in session")

	// ErrUnknownSession marks an operation against a session id absent from
	// the directory.
	ErrUnknownSession = fmt.Errorf("unknown session")

	// ErrPersistence marks a failure of the alert storage collaborator.
	// It is logged and swallowed; the fanout has already happened.
	ErrPersistence = fmt.Errorf("persistence failure")

	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")
	ErrSinkClosed  = fmt.Errorf("sink closed")
	ErrSinkFull    = fmt.Errorf("sink buffer full")
)

// Reason converts an error into the wire-level reason code carried by the
// outbound "error" event. Unknown errors collapse into "Internal" so that
// nothing leaks implementation detail to clients.
func Reason(err error) string {
	switch {
	case stderrors.Is(err, ErrNotConnected):
		return "NotConnected"
	case stderrors.Is(err, ErrAlreadyInSession):
		return "AlreadyInSession"
	case stderrors.Is(err, ErrUnknownSession):
		return "UnknownSession"
	case stderrors.Is(err, ErrPersistence):
		return "PersistenceFailure"
	default:
		return "Internal"
	}
}
