package cbor

import (
	"fmt"
	"strconv"

	"github.com/halborn/structcodec/errs"
)

// TypedMapping is the result of DecodeMapAs: an iteration-order-insensitive
// view of a decoded Map, keyed by MapKey after decimal-text keys have been
// coerced to integer keys.
type TypedMapping map[MapKey]Item

// Int looks up an integer-keyed entry.
func (m TypedMapping) Int(key int64) (Item, bool) {
	v, ok := m[IntKey(key)]
	return v, ok
}

// Text looks up a text-keyed entry.
func (m TypedMapping) Text(key string) (Item, bool) {
	v, ok := m[TextKey(key)]
	return v, ok
}

// DecodeMapAs decodes exactly one item at start and requires it to be a Map.
// Any entry whose key's text form is a valid decimal integer is coerced to
// an integer key. keyPred and valPred, when non-nil, are applied to every
// entry; the first rejection fails the whole decode.
func DecodeMapAs(buf []byte, start int, keyPred func(MapKey) bool, valPred func(Item) bool) (TypedMapping, int, error) {
	item, consumed, err := DecodeAt(buf, start)
	if err != nil {
		return nil, 0, err
	}
	if item.Kind != KindMap {
		return nil, 0, fmt.Errorf("item at offset %d has kind %s: %w", start, item.Kind, errs.ErrNotAMap)
	}

	out := make(TypedMapping, len(item.Map))
	for _, e := range item.Map {
		key := coerceDecimalKey(e.Key)

		if keyPred != nil && !keyPred(key) {
			return nil, 0, fmt.Errorf("map key %s rejected: %w", key.decimalForm(), errs.ErrInvalidMapKeyType)
		}
		if valPred != nil && !valPred(e.Value) {
			return nil, 0, fmt.Errorf("map value for key %s rejected: %w", key.decimalForm(), errs.ErrInvalidMapKeyType)
		}

		out[key] = e.Value
	}

	return out, consumed, nil
}

// coerceDecimalKey converts a text key whose content is a valid base-10
// integer (optionally signed) into an integer key, leaving every other key
// untouched.
func coerceDecimalKey(key MapKey) MapKey {
	if !key.IsText {
		return key
	}
	if n, err := strconv.ParseInt(key.Text, 10, 64); err == nil {
		return IntKey(n)
	}

	return key
}
