package cbor

import (
	"fmt"
	"math"
	"sort"

	"github.com/halborn/structcodec/errs"
	"github.com/halborn/structcodec/internal/pool"
)

// Encode serializes an item to its deterministic byte representation. It
// fails if an integer is out of the safe-integer range, if an array or map
// exceeds MaxContainerElements, or if the encoded output would exceed
// MaxInputBytes.
func Encode(it Item) ([]byte, error) {
	buf := pool.Get()
	defer pool.Put(buf)

	if err := encodeItem(buf, it); err != nil {
		return nil, err
	}
	if buf.Len() > MaxInputBytes {
		return nil, fmt.Errorf("encoded output of %d bytes exceeds %d byte limit: %w", buf.Len(), MaxInputBytes, errs.ErrResourceLimit)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func encodeItem(buf *pool.ByteBuffer, it Item) error {
	switch it.Kind {
	case KindUint:
		v := uint64(it.Int)
		if v > MaxSafeInteger {
			return fmt.Errorf("uint %d exceeds safe-integer range: %w", v, errs.ErrIntegerOutOfRange)
		}
		writeHeaderAndArg(buf, 0, v)

	case KindNInt:
		if it.Int >= 0 {
			return fmt.Errorf("nint item carries non-negative value %d: %w", it.Int, errs.ErrIntegerOutOfRange)
		}
		mag := uint64(-1 - it.Int)
		if mag > MaxSafeInteger {
			return fmt.Errorf("nint magnitude %d exceeds safe-integer range: %w", mag, errs.ErrIntegerOutOfRange)
		}
		writeHeaderAndArg(buf, 1, mag)

	case KindBytes:
		writeHeaderAndArg(buf, 2, uint64(len(it.Bytes)))
		_, _ = buf.Write(it.Bytes)

	case KindText:
		text := []byte(it.Text)
		writeHeaderAndArg(buf, 3, uint64(len(text)))
		_, _ = buf.Write(text)

	case KindArray:
		if len(it.Array) > MaxContainerElements {
			return fmt.Errorf("array of %d elements exceeds %d element limit: %w", len(it.Array), MaxContainerElements, errs.ErrResourceLimit)
		}
		writeHeaderAndArg(buf, 4, uint64(len(it.Array)))
		for i, elem := range it.Array {
			if err := encodeItem(buf, elem); err != nil {
				return fmt.Errorf("array element %d: %w", i, err)
			}
		}

	case KindMap:
		if len(it.Map) > MaxContainerElements {
			return fmt.Errorf("map of %d pairs exceeds %d pair limit: %w", len(it.Map), MaxContainerElements, errs.ErrResourceLimit)
		}
		entries := sortedMapEntries(it.Map)
		writeHeaderAndArg(buf, 5, uint64(len(entries)))
		for _, e := range entries {
			var keyItem Item
			if e.Key.IsText {
				keyItem = Text(e.Key.Text)
			} else {
				keyItem = Int(e.Key.Int)
			}
			if err := encodeItem(buf, keyItem); err != nil {
				return fmt.Errorf("map key %s: %w", e.Key.decimalForm(), err)
			}
			if err := encodeItem(buf, e.Value); err != nil {
				return fmt.Errorf("map value for key %s: %w", e.Key.decimalForm(), err)
			}
		}

	case KindTag:
		if it.Tag == nil {
			return fmt.Errorf("tag item has nil payload: %w", errs.ErrUnsupportedMajorType)
		}
		writeHeaderAndArg(buf, 6, it.Tag.Number)
		if err := encodeItem(buf, it.Tag.Inner); err != nil {
			return fmt.Errorf("tag %d inner item: %w", it.Tag.Number, err)
		}

	case KindFloat:
		writeFloat64(buf, it.Float)

	case KindBool:
		if it.Bool {
			_ = buf.WriteByte(0xF5)
		} else {
			_ = buf.WriteByte(0xF4)
		}

	case KindNull:
		_ = buf.WriteByte(0xF6)

	case KindUndefined:
		_ = buf.WriteByte(0xF7)

	default:
		return fmt.Errorf("unknown item kind %d: %w", it.Kind, errs.ErrUnsupportedMajorType)
	}

	return nil
}

// writeHeaderAndArg emits the initial byte plus the shortest valid argument
// encoding for major/arg.
func writeHeaderAndArg(buf *pool.ByteBuffer, major byte, arg uint64) {
	switch {
	case arg <= 23:
		_ = buf.WriteByte(major<<5 | byte(arg))
	case arg <= 0xFF:
		_ = buf.WriteByte(major<<5 | 24)
		_ = buf.WriteByte(byte(arg))
	case arg <= 0xFFFF:
		_ = buf.WriteByte(major<<5 | 25)
		buf.Grow(2)
		buf.B = bigEndian.AppendUint16(buf.B, uint16(arg))
	case arg <= 0xFFFFFFFF:
		_ = buf.WriteByte(major<<5 | 26)
		buf.Grow(4)
		buf.B = bigEndian.AppendUint32(buf.B, uint32(arg))
	default:
		_ = buf.WriteByte(major<<5 | 27)
		buf.Grow(8)
		buf.B = bigEndian.AppendUint64(buf.B, arg)
	}
}

// writeFloat64 always emits the full 8-byte double form; this codec never
// downsizes a non-integer number to a 32- or 16-bit float on output.
func writeFloat64(buf *pool.ByteBuffer, v float64) {
	_ = buf.WriteByte(7<<5 | 27)
	buf.Grow(8)
	buf.B = bigEndian.AppendUint64(buf.B, math.Float64bits(v))
}

// sortedMapEntries returns entries sorted by the decimal-string form of
// their key, a deliberate deviation from RFC 8949's canonical byte-wise key
// order. Sorting is stable so construction order only matters among keys
// with identical decimal forms.
func sortedMapEntries(entries []MapEntry) []MapEntry {
	sorted := make([]MapEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key.decimalForm() < sorted[j].Key.decimalForm()
	})

	return sorted
}
