package cose

import (
	"fmt"

	"github.com/halborn/structcodec/cbor"
	"github.com/halborn/structcodec/errs"
)

// Header parameter labels (integer map keys used in protected and
// unprotected header maps).
const (
	HeaderLabelAlg               = 1
	HeaderLabelCrit              = 2
	HeaderLabelContentType       = 3
	HeaderLabelKeyID             = 4
	HeaderLabelIV                = 5
	HeaderLabelPartialIV         = 6
	HeaderLabelCounterSignature  = 7
	HeaderLabelSalt              = 8
	HeaderLabelCounterSignature0 = 9
	HeaderLabelX5Chain           = 33
	HeaderLabelX5T               = 34
)

var headerLabelNames = map[int64]string{
	HeaderLabelAlg:               "alg",
	HeaderLabelCrit:              "crit",
	HeaderLabelContentType:       "ctyp",
	HeaderLabelKeyID:             "kid",
	HeaderLabelIV:                "iv",
	HeaderLabelPartialIV:         "partial_iv",
	HeaderLabelCounterSignature:  "counter_signature",
	HeaderLabelSalt:              "salt",
	HeaderLabelCounterSignature0: "counter_signature0",
	HeaderLabelX5Chain:           "x5chain",
	HeaderLabelX5T:               "x5t",
}

// HeaderLabelName looks up the registered name of a header parameter label.
func HeaderLabelName(label int64) (string, bool) {
	name, ok := headerLabelNames[label]
	return name, ok
}

// Header is a header map: either a protected header (validated, then
// serialized as bytes) or an unprotected header (carried as-is). The codec
// stores whatever value each parameter holds; only alg on a protected header
// is type- and range-checked.
type Header = cbor.Item

// NewHeader builds a header map from key/value entries.
func NewHeader(entries ...cbor.MapEntry) Header {
	return cbor.Map(entries...)
}

// EmptyHeader returns a header map with no entries.
func EmptyHeader() Header {
	return cbor.Map()
}

// lookupHeaderParam finds the value stored under an integer label in a
// header map, returning ok=false if the header is not a map or the label is
// absent.
func lookupHeaderParam(h Header, label int64) (cbor.Item, bool) {
	if h.Kind != cbor.KindMap {
		return cbor.Item{}, false
	}
	for _, e := range h.Map {
		if !e.Key.IsText && e.Key.Int == label {
			return e.Value, true
		}
	}
	return cbor.Item{}, false
}

// validateProtected enforces the one required parameter on a protected
// header: alg (label 1) must be present and hold a value from the algorithm
// registry. Unprotected headers are never passed to this function.
func validateProtected(h Header) error {
	if h.Kind != cbor.KindMap {
		return fmt.Errorf("protected header is kind %s, not a map: %w", h.Kind, errs.ErrHeaderValidation)
	}

	algItem, ok := lookupHeaderParam(h, HeaderLabelAlg)
	if !ok {
		return errs.ErrMissingAlg
	}

	if algItem.Kind != cbor.KindUint && algItem.Kind != cbor.KindNInt {
		return errs.ErrUnsupportedAlgorithm
	}
	if !ValidAlgorithm(algItem.Int) {
		return errs.ErrUnsupportedAlgorithm
	}

	return nil
}
