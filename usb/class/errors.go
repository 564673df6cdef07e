package class

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a decoding failure.
type ErrorKind uint8

const (
	// UnknownProtocol means the subclass was valid but the protocol byte is
	// not in the family's table.
	UnknownProtocol ErrorKind = iota
	// UnknownSubClass means the subclass byte is not in the family's table.
	// The protocol byte was not looked at.
	UnknownSubClass
	// UnknownClass means the base class byte is not assigned by the USB-IF.
	UnknownClass
	// Unimplemented means the base class is assigned but its sub-tables are
	// not modelled by this package.
	Unimplemented

	numKinds
)

// Sentinels matched by errors.Is against an [*Error] of the same kind.
var (
	ErrUnknownProtocol = errors.New("unknown protocol code")
	ErrUnknownSubClass = errors.New("unknown subclass code")
	ErrUnknownClass    = errors.New("unknown class code")
	ErrUnimplemented   = errors.New("class not implemented")
)

var sentinels = [numKinds]error{
	UnknownProtocol: ErrUnknownProtocol,
	UnknownSubClass: ErrUnknownSubClass,
	UnknownClass:    ErrUnknownClass,
	Unimplemented:   ErrUnimplemented,
}

func (k ErrorKind) String() string {
	switch k {
	case UnknownProtocol:
		return "UnknownProtocol"
	case UnknownSubClass:
		return "UnknownSubClass"
	case UnknownClass:
		return "UnknownClass"
	case Unimplemented:
		return "Unimplemented"
	default:
		return "ErrorKind(" + fmt.Sprint(uint8(k)) + ")"
	}
}

// Error is returned for every classification failure. Code is the byte that
// failed to decode.
//
// Errors are preallocated and shared: treat them as read-only.
type Error struct {
	Kind ErrorKind
	Code uint8
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: 0x%02x", sentinels[e.Kind].Error(), e.Code)
}

func (e *Error) Unwrap() error {
	return sentinels[e.Kind]
}

var preallocated [numKinds][256]Error

func init() {
	for k := range preallocated {
		for b := range preallocated[k] {
			preallocated[k][b] = Error{Kind: ErrorKind(k), Code: uint8(b)}
		}
	}
}

func newError(k ErrorKind, b uint8) *Error {
	return &preallocated[k][b]
}

// KindOf returns the kind and offending byte of a classification error. ok is
// false when err does not wrap an [*Error].
func KindOf(err error) (kind ErrorKind, code uint8, ok bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, 0, false
	}
	return e.Kind, e.Code, true
}
