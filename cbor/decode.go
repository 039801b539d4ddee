package cbor

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/halborn/structcodec/endian"
	"github.com/halborn/structcodec/errs"
)

var bigEndian = endian.GetBigEndianEngine()

// Decode decodes the entire buffer as exactly one item. It fails if the
// buffer exceeds MaxInputBytes or if any bytes remain after the item.
func Decode(buf []byte) (Item, error) {
	if len(buf) > MaxInputBytes {
		return Item{}, fmt.Errorf("input of %d bytes exceeds %d byte limit: %w", len(buf), MaxInputBytes, errs.ErrResourceLimit)
	}
	if len(buf) == 0 {
		return Item{}, fmt.Errorf("empty buffer: %w", errs.ErrTruncatedBuffer)
	}

	it, next, err := decodeItem(buf, 0)
	if err != nil {
		return Item{}, err
	}
	if next != len(buf) {
		return Item{}, fmt.Errorf("%d trailing byte(s) after item: %w", len(buf)-next, errs.ErrTruncatedBuffer)
	}

	return it, nil
}

// DecodeAt decodes exactly one item starting at offset start and returns the
// number of bytes consumed, enabling a caller to parse concatenated items
// one at a time.
func DecodeAt(buf []byte, start int) (Item, int, error) {
	if len(buf) > MaxInputBytes {
		return Item{}, 0, fmt.Errorf("input of %d bytes exceeds %d byte limit: %w", len(buf), MaxInputBytes, errs.ErrResourceLimit)
	}
	if start < 0 || start >= len(buf) {
		return Item{}, 0, fmt.Errorf("offset %d out of range for %d byte buffer: %w", start, len(buf), errs.ErrTruncatedBuffer)
	}

	it, next, err := decodeItem(buf, start)
	if err != nil {
		return Item{}, 0, err
	}

	return it, next - start, nil
}

// decodeItem decodes one item at offset and returns the offset just past it.
func decodeItem(buf []byte, offset int) (Item, int, error) {
	if offset >= len(buf) {
		return Item{}, offset, fmt.Errorf("no bytes remaining at offset %d: %w", offset, errs.ErrTruncatedBuffer)
	}

	initial := buf[offset]
	major := initial >> 5
	ai := initial & 0x1F
	pos := offset + 1

	switch major {
	case 0: // UInt
		arg, next, err := readLength(buf, pos, ai)
		if err != nil {
			return Item{}, 0, err
		}
		return UInt(safeIntegerValue(arg, ai)), next, nil

	case 1: // NInt
		arg, next, err := readLength(buf, pos, ai)
		if err != nil {
			return Item{}, 0, err
		}
		v := safeIntegerValue(arg, ai)
		return NInt(-1 - int64(v)), next, nil

	case 2: // Bytes
		n, next, err := readLength(buf, pos, ai)
		if err != nil {
			return Item{}, 0, err
		}
		data, next, err := readRaw(buf, next, n)
		if err != nil {
			return Item{}, 0, err
		}
		owned := make([]byte, len(data))
		copy(owned, data)
		return Bytes(owned), next, nil

	case 3: // Text
		n, next, err := readLength(buf, pos, ai)
		if err != nil {
			return Item{}, 0, err
		}
		data, next, err := readRaw(buf, next, n)
		if err != nil {
			return Item{}, 0, err
		}
		if !utf8.Valid(data) {
			return Item{}, 0, fmt.Errorf("text item at offset %d: %w", offset, errs.ErrInvalidUTF8)
		}
		return Text(string(data)), next, nil

	case 4: // Array
		n, next, err := readLength(buf, pos, ai)
		if err != nil {
			return Item{}, 0, err
		}
		if n > MaxContainerElements {
			return Item{}, 0, fmt.Errorf("array of %d elements exceeds %d element limit: %w", n, MaxContainerElements, errs.ErrResourceLimit)
		}

		items := make([]Item, 0, n)
		for i := uint64(0); i < n; i++ {
			var it Item
			it, next, err = decodeItem(buf, next)
			if err != nil {
				return Item{}, 0, fmt.Errorf("array element %d: %w", i, err)
			}
			items = append(items, it)
		}

		return Array(items...), next, nil

	case 5: // Map
		n, next, err := readLength(buf, pos, ai)
		if err != nil {
			return Item{}, 0, err
		}
		if n > MaxContainerElements {
			return Item{}, 0, fmt.Errorf("map of %d pairs exceeds %d pair limit: %w", n, MaxContainerElements, errs.ErrResourceLimit)
		}

		entries := make([]MapEntry, 0, n)
		index := make(map[MapKey]int, n)
		for i := uint64(0); i < n; i++ {
			var keyItem Item
			keyItem, next, err = decodeItem(buf, next)
			if err != nil {
				return Item{}, 0, fmt.Errorf("map key %d: %w", i, err)
			}

			var key MapKey
			switch keyItem.Kind {
			case KindUint, KindNInt:
				key = IntKey(keyItem.Int)
			case KindText:
				key = TextKey(keyItem.Text)
			default:
				return Item{}, 0, fmt.Errorf("map key %d has non-scalar kind %s: %w", i, keyItem.Kind, errs.ErrInvalidMapKeyType)
			}

			var val Item
			val, next, err = decodeItem(buf, next)
			if err != nil {
				return Item{}, 0, fmt.Errorf("map value %d: %w", i, err)
			}

			if idx, ok := index[key]; ok {
				entries[idx].Value = val
			} else {
				index[key] = len(entries)
				entries = append(entries, MapEntry{Key: key, Value: val})
			}
		}

		return Map(entries...), next, nil

	case 6: // Tag
		number, next, err := readLength(buf, pos, ai)
		if err != nil {
			return Item{}, 0, err
		}
		inner, next, err := decodeItem(buf, next)
		if err != nil {
			return Item{}, 0, fmt.Errorf("tag %d inner item: %w", number, err)
		}
		return Tagged(number, inner), next, nil

	case 7: // simple values and floats
		return decodeSimple(buf, offset, pos, ai)

	default:
		return Item{}, 0, fmt.Errorf("major type %d: %w", major, errs.ErrUnsupportedMajorType)
	}
}

func decodeSimple(buf []byte, offset, pos int, ai byte) (Item, int, error) {
	switch ai {
	case 20:
		return BoolItem(false), pos, nil
	case 21:
		return BoolItem(true), pos, nil
	case 22:
		return Null(), pos, nil
	case 23:
		return Undefined(), pos, nil
	case 25:
		// Documented as 16-bit half-precision but this codec follows the
		// reference behavior of reading 4 bytes as a 32-bit float (see
		// DESIGN.md open issue).
		bits, next, err := readRaw(buf, pos, 4)
		if err != nil {
			return Item{}, 0, err
		}
		v := math.Float32frombits(bigEndian.Uint32(bits))
		return Float(float64(v)), next, nil
	case 26:
		bits, next, err := readRaw(buf, pos, 4)
		if err != nil {
			return Item{}, 0, err
		}
		v := math.Float32frombits(bigEndian.Uint32(bits))
		return Float(float64(v)), next, nil
	case 27:
		bits, next, err := readRaw(buf, pos, 8)
		if err != nil {
			return Item{}, 0, err
		}
		v := math.Float64frombits(bigEndian.Uint64(bits))
		return Float(v), next, nil
	default:
		return Item{}, 0, fmt.Errorf("major type 7 additional info %d at offset %d: %w", ai, offset, errs.ErrInvalidAdditionalInfo)
	}
}

// readLength reads the argument that follows an initial byte whose
// additional-info field is ai: 0-23 is the argument itself, 24/25/26/27
// select a following 1/2/4/8-byte big-endian argument.
func readLength(buf []byte, pos int, ai byte) (uint64, int, error) {
	switch {
	case ai <= 23:
		return uint64(ai), pos, nil
	case ai == 24:
		b, next, err := readRaw(buf, pos, 1)
		if err != nil {
			return 0, 0, err
		}
		return uint64(b[0]), next, nil
	case ai == 25:
		b, next, err := readRaw(buf, pos, 2)
		if err != nil {
			return 0, 0, err
		}
		return uint64(bigEndian.Uint16(b)), next, nil
	case ai == 26:
		b, next, err := readRaw(buf, pos, 4)
		if err != nil {
			return 0, 0, err
		}
		return uint64(bigEndian.Uint32(b)), next, nil
	case ai == 27:
		b, next, err := readRaw(buf, pos, 8)
		if err != nil {
			return 0, 0, err
		}
		return bigEndian.Uint64(b), next, nil
	default:
		return 0, 0, fmt.Errorf("additional info %d at offset %d: %w", ai, pos-1, errs.ErrInvalidAdditionalInfo)
	}
}

// readRaw returns the n bytes at pos and the offset just past them, failing
// cleanly if the buffer is too short.
func readRaw(buf []byte, pos int, n uint64) ([]byte, int, error) {
	if pos > len(buf) || n > uint64(len(buf)-pos) {
		return nil, 0, fmt.Errorf("need %d byte(s) at offset %d, have %d: %w", n, pos, len(buf)-pos, errs.ErrTruncatedBuffer)
	}
	end := pos + int(n)
	return buf[pos:end], end, nil
}

// safeIntegerValue applies the "loaded as 64-bit unsigned then converted to
// the double-precision numeric model" rule for 8-byte arguments, the only
// width wide enough to exceed the safe-integer ceiling.
func safeIntegerValue(arg uint64, ai byte) uint64 {
	if ai != 27 {
		return arg
	}
	return uint64(float64(arg))
}
