package cose

import (
	"fmt"

	"github.com/halborn/structcodec/cbor"
	"github.com/halborn/structcodec/errs"
)

// Element is one entry of a signatures or recipients list: its own
// protected/unprotected header pair plus a terminal byte field (signature,
// tag, or encrypted_key).
type Element struct {
	Protected   Header
	Unprotected Header
	Terminal    []byte
}

// encodeOuterHeader validates protected and returns its standalone
// deterministic encoding, the byte string every envelope places at array
// position 0.
func encodeOuterHeader(protected Header) ([]byte, error) {
	if err := validateProtected(protected); err != nil {
		return nil, err
	}
	return cbor.Encode(protected)
}

// decodeOuterHeader byte-codec-decodes a bytes item into a header map and
// validates it.
func decodeOuterHeader(field cbor.Item) (Header, error) {
	if field.Kind != cbor.KindBytes {
		return Header{}, fmt.Errorf("protected header field has kind %s: %w", field.Kind, errs.ErrExpectedBytes)
	}

	h, err := cbor.Decode(field.Bytes)
	if err != nil {
		return Header{}, fmt.Errorf("protected header bytes: %w", err)
	}
	if err := validateProtected(h); err != nil {
		return Header{}, err
	}

	return h, nil
}

// encodeElement builds the 3-element array [protected-bytes, unprotected,
// terminal] used by every signatures/recipients entry.
func encodeElement(el Element) (cbor.Item, error) {
	p, err := encodeOuterHeader(el.Protected)
	if err != nil {
		return cbor.Item{}, err
	}
	return cbor.Array(cbor.Bytes(p), el.Unprotected, cbor.Bytes(el.Terminal)), nil
}

// decodeElement parses one signatures/recipients entry array.
func decodeElement(item cbor.Item) (Element, error) {
	if item.Kind != cbor.KindArray || len(item.Array) != 3 {
		return Element{}, fmt.Errorf("element has kind %s, arity %d: %w", item.Kind, len(item.Array), errs.ErrInvalidArity)
	}

	protected, err := decodeOuterHeader(item.Array[0])
	if err != nil {
		return Element{}, err
	}

	unprotected := item.Array[1]

	terminal, err := decodeBytes(item.Array[2])
	if err != nil {
		return Element{}, err
	}

	return Element{Protected: protected, Unprotected: unprotected, Terminal: terminal}, nil
}

// encodeElementList encodes a signatures or recipients list.
func encodeElementList(elements []Element) (cbor.Item, error) {
	items := make([]cbor.Item, len(elements))
	for i, el := range elements {
		item, err := encodeElement(el)
		if err != nil {
			return cbor.Item{}, fmt.Errorf("element %d: %w", i, err)
		}
		items[i] = item
	}
	return cbor.Array(items...), nil
}

// decodeElementList decodes a signatures or recipients list field.
func decodeElementList(field cbor.Item) ([]Element, error) {
	if field.Kind != cbor.KindArray {
		return nil, fmt.Errorf("element list field has kind %s: %w", field.Kind, errs.ErrInvalidArity)
	}

	out := make([]Element, len(field.Array))
	for i, item := range field.Array {
		el, err := decodeElement(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = el
	}

	return out, nil
}

// decodeBytesOrNull requires item to be either a bytes value or null and
// returns the bytes (nil for null).
func decodeBytesOrNull(item cbor.Item) ([]byte, error) {
	switch item.Kind {
	case cbor.KindNull:
		return nil, nil
	case cbor.KindBytes:
		return item.Bytes, nil
	default:
		return nil, fmt.Errorf("field has kind %s: %w", item.Kind, errs.ErrExpectedBytesOrNull)
	}
}

// payloadItem builds the payload field: null if payload is nil, otherwise
// the bytes value.
func payloadItem(payload []byte) cbor.Item {
	if payload == nil {
		return cbor.Null()
	}
	return cbor.Bytes(payload)
}

// decodeBytes requires item to be a bytes value.
func decodeBytes(item cbor.Item) ([]byte, error) {
	if item.Kind != cbor.KindBytes {
		return nil, fmt.Errorf("field has kind %s: %w", item.Kind, errs.ErrExpectedBytes)
	}
	return item.Bytes, nil
}

// decodeOuterArray decodes buf, requires it to be Tagged with wantTag and
// its inner value to be an array of exactly wantArity items, and returns
// that array.
func decodeOuterArray(buf []byte, wantTag uint64, wantArity int) ([]cbor.Item, error) {
	item, err := cbor.Decode(buf)
	if err != nil {
		return nil, err
	}

	if item.Kind != cbor.KindTag {
		return nil, fmt.Errorf("top-level value has kind %s, want tag %d: %w", item.Kind, wantTag, errs.ErrTagMismatch)
	}
	if item.Tag.Number != wantTag {
		return nil, fmt.Errorf("tag %d, want %d: %w", item.Tag.Number, wantTag, errs.ErrTagMismatch)
	}

	inner := item.Tag.Inner
	if inner.Kind != cbor.KindArray || len(inner.Array) != wantArity {
		return nil, fmt.Errorf("inner value has kind %s, arity %d, want arity %d: %w", inner.Kind, len(inner.Array), wantArity, errs.ErrInvalidArity)
	}

	return inner.Array, nil
}
