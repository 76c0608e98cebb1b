package scheduler

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a scheduling error so the transport boundary can map
// it to a response without parsing messages.
type ErrorKind int

const (
	KindEmptyInput ErrorKind = iota
	KindInvalidProcess
	KindDuplicateProcessID
	KindInvalidQuantum
	KindUnsupportedAlgorithm
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindInvalidProcess:
		return "invalid_process"
	case KindDuplicateProcessID:
		return "duplicate_process_id"
	case KindInvalidQuantum:
		return "invalid_quantum"
	case KindUnsupportedAlgorithm:
		return "unsupported_algorithm"
	default:
		return "unknown"
	}
}

// SchedError is the error type for all request rejections. Every malformed
// input is detected before the simulation starts; the core never fails
// mid-run.
type SchedError struct {
	Kind    ErrorKind
	Message string
}

func (e SchedError) Error() string {
	return fmt.Sprintf("scheduling error: %s", e.Message)
}

// ErrEmptyInput creates an error for an empty process list
func ErrEmptyInput() error {
	return SchedError{Kind: KindEmptyInput, Message: "no processes supplied"}
}

// ErrInvalidProcess creates an error for an invalid process definition
func ErrInvalidProcess(msg string) error {
	return SchedError{Kind: KindInvalidProcess, Message: fmt.Sprintf("invalid process: %s", msg)}
}

// ErrDuplicateProcessID creates an error for a repeated process identifier
func ErrDuplicateProcessID(pid int) error {
	return SchedError{Kind: KindDuplicateProcessID, Message: fmt.Sprintf("duplicate process id: %d", pid)}
}

// ErrInvalidQuantum creates an error for a non-positive Round Robin quantum
func ErrInvalidQuantum(quantum int) error {
	return SchedError{Kind: KindInvalidQuantum, Message: fmt.Sprintf("invalid quantum: %d (must be > 0)", quantum)}
}

// ErrUnsupportedAlgorithm creates an error for an unrecognized algorithm selector
func ErrUnsupportedAlgorithm(name string) error {
	return SchedError{Kind: KindUnsupportedAlgorithm, Message: fmt.Sprintf("unsupported algorithm: %q", name)}
}

// IsKind reports whether err is a SchedError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se SchedError
	return errors.As(err, &se) && se.Kind == kind
}
