package der

import (
	"errors"
	"strconv"
)

// The three error kinds distinguished by spec: ErrBadMessage for structural
// DER violations, ErrRangeExceeded for inputs beyond what this
// implementation supports, and ErrAllocationFailed for [Arena] exhaustion
// in the subparser driver. Every error returned by this package satisfies
// errors.Is against exactly one of these.
var (
	ErrBadMessage       = errors.New("der: bad message")
	ErrRangeExceeded    = errors.New("der: range exceeded")
	ErrAllocationFailed = errors.New("der: allocation failed")
)

// Error wraps one of the sentinel errors above with the operation that
// failed and, where known, a byte offset at which the failure was
// detected. The offset counts from the start of the element or cursor the
// failing primitive was decoding, not from the start of the top-level
// input.
type Error struct {
	Op  string // "header", "enter", "walk", "unpack", "subparse", or a scalar accessor such as "int32"
	Tag byte   // the instruction or wire tag byte involved; this package's own errors leave it 0
	Off int    // byte offset within the element or cursor being decoded, -1 if unknown
	Err error  // one of ErrBadMessage, ErrRangeExceeded, ErrAllocationFailed
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Error() string {
	s := "der: " + e.Op + ": " + e.Err.Error()
	if e.Off >= 0 {
		s += " at offset " + strconv.Itoa(e.Off)
	}
	return s
}

func badMessage(op string, off int) error {
	return &Error{Op: op, Off: off, Err: ErrBadMessage}
}

func rangeExceeded(op string, off int) error {
	return &Error{Op: op, Off: off, Err: ErrRangeExceeded}
}

func allocationFailed(op string) error {
	return &Error{Op: op, Off: -1, Err: ErrAllocationFailed}
}
