// Package errs defines the sentinel errors returned by mathfn packages.
//
// Errors are wrapped at the call site with additional context, so callers should
// compare with errors.Is rather than ==:
//
//	if _, err := f.Evaluate(0); errors.Is(err, errs.ErrDivisionByZero) {
//	    // handle undefined point
//	}
package errs

import "errors"

// Function errors.
var (
	// ErrDivisionByZero is returned when a function is evaluated at a point where it divides by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownKind is returned when a function kind name is not recognized.
	ErrUnknownKind = errors.New("unknown function kind")
	// ErrInvalidCoefficients is returned when the coefficient count does not match the function kind.
	ErrInvalidCoefficients = errors.New("invalid number of coefficients")
)

// Configuration errors.
var (
	// ErrInvalidOption is returned when a functional option receives an invalid value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrInvalidGrid is returned when a sampling grid cannot be constructed.
	ErrInvalidGrid = errors.New("invalid sampling grid")
	// ErrEmptyTable is returned when encoding a table without samples.
	ErrEmptyTable = errors.New("table has no samples")
)

// Table format errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrHashMismatch       = errors.New("formula hash mismatch")
	ErrPayloadSize        = errors.New("payload size does not match sample count")
)
