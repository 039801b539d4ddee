// Package errs defines the sentinel errors shared by the cbor and cose
// packages.
//
// Call sites wrap a sentinel with fmt.Errorf("detail %d: %w", detail, errs.ErrX) so
// callers can branch with errors.Is while still getting a specific message.
package errs

import "errors"

// Byte codec failures.
var (
	ErrTruncatedBuffer       = errors.New("truncated buffer")
	ErrInvalidAdditionalInfo = errors.New("invalid additional info")
	ErrInvalidUTF8           = errors.New("invalid UTF-8 in text item")
	ErrInvalidMapKeyType     = errors.New("invalid map key type")
	ErrResourceLimit         = errors.New("resource limit exceeded")
	ErrUnsupportedMajorType  = errors.New("unsupported major type")
	ErrIntegerOutOfRange     = errors.New("integer out of safe-integer range")
	ErrNotAMap               = errors.New("expected a map item")
)

// Envelope codec failures.
var (
	ErrTagMismatch          = errors.New("tag mismatch")
	ErrHeaderValidation     = errors.New("protected header validation failed")
	ErrExpectedBytes        = errors.New("expected a bytes item")
	ErrExpectedBytesOrNull  = errors.New("expected a bytes item or null")
	ErrInvalidArity         = errors.New("invalid envelope array arity")
	ErrMissingAlg           = errors.New("Protected header must contain 'alg' parameter")
	ErrUnsupportedAlgorithm = errors.New("Invalid or unsupported algorithm in protected header")
)

// Key codec failures.
var (
	ErrUnsupportedKeyType = errors.New("unsupported key type")
	ErrMissingKeyParam    = errors.New("missing required key parameter")
	ErrUnknownKeyParam    = errors.New("unknown key parameter")
	ErrInvalidKeyParam    = errors.New("invalid key parameter value")
)
