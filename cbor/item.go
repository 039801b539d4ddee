package cbor

import "fmt"

// Kind discriminates the case of an Item.
type Kind uint8

const (
	KindUint Kind = iota
	KindNInt
	KindBytes
	KindText
	KindArray
	KindMap
	KindTag
	KindFloat
	KindBool
	KindNull
	KindUndefined
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindNInt:
		return "nint"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindTag:
		return "tag"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	default:
		return "unknown"
	}
}

// MapKey is a data-format map key, which is either an integer or text.
type MapKey struct {
	IsText bool
	Int    int64
	Text   string
}

// IntKey builds an integer-valued map key.
func IntKey(v int64) MapKey { return MapKey{Int: v} }

// TextKey builds a text-valued map key.
func TextKey(v string) MapKey { return MapKey{IsText: true, Text: v} }

// decimalForm returns the textual representation this codec sorts map keys
// by: integer keys are compared on their decimal string form, not on
// encoded-byte order.
func (k MapKey) decimalForm() string {
	if k.IsText {
		return k.Text
	}
	return fmt.Sprintf("%d", k.Int)
}

// Equal reports whether two map keys denote the same key.
func (k MapKey) Equal(other MapKey) bool {
	return k.IsText == other.IsText && k.Int == other.Int && k.Text == other.Text
}

// MapEntry is one key/value pair of a data-format Map.
type MapEntry struct {
	Key   MapKey
	Value Item
}

// TagValue is the payload of a Tagged item: a non-negative tag number and
// one inner item.
type TagValue struct {
	Number uint64
	Inner  Item
}

// Item is the recursive data-format value. Exactly one payload field is
// meaningful for a given Kind; the rest are zero.
type Item struct {
	Kind Kind

	Int   int64      // KindUint (>=0), KindNInt (<0)
	Bytes []byte     // KindBytes
	Text  string     // KindText
	Array []Item     // KindArray
	Map   []MapEntry // KindMap
	Tag   *TagValue  // KindTag
	Float float64    // KindFloat
	Bool  bool       // KindBool
}

// UInt builds a non-negative integer item.
func UInt(v uint64) Item { return Item{Kind: KindUint, Int: int64(v)} }

// NInt builds a negative integer item. v must be < 0.
func NInt(v int64) Item { return Item{Kind: KindNInt, Int: v} }

// Int builds a UInt or NInt item depending on the sign of v.
func Int(v int64) Item {
	if v < 0 {
		return NInt(v)
	}
	return UInt(uint64(v))
}

// Bytes builds a byte-string item. The slice is not copied; callers must not
// mutate it afterwards.
func Bytes(v []byte) Item { return Item{Kind: KindBytes, Bytes: v} }

// Text builds a UTF-8 text item.
func Text(v string) Item { return Item{Kind: KindText, Text: v} }

// Array builds an array item from its elements.
func Array(items ...Item) Item { return Item{Kind: KindArray, Array: items} }

// Map builds a map item from its entries, preserving the given order.
// Encode re-sorts entries deterministically; Decode preserves wire order.
func Map(entries ...MapEntry) Item { return Item{Kind: KindMap, Map: entries} }

// Tagged builds a tagged item.
func Tagged(number uint64, inner Item) Item {
	return Item{Kind: KindTag, Tag: &TagValue{Number: number, Inner: inner}}
}

// Float builds a double-precision float item.
func Float(v float64) Item { return Item{Kind: KindFloat, Float: v} }

// BoolItem builds a boolean item.
func BoolItem(v bool) Item { return Item{Kind: KindBool, Bool: v} }

// Null builds the null item.
func Null() Item { return Item{Kind: KindNull} }

// Undefined builds the undefined item.
func Undefined() Item { return Item{Kind: KindUndefined} }

// IsNull reports whether the item is the null literal.
func (it Item) IsNull() bool { return it.Kind == KindNull }

// Equal reports whether two items are structurally equal: byte-content
// equality for Bytes, exact float64 equality, order-sensitive Array
// comparison, and order-insensitive Map comparison by key/value pairs.
func Equal(a, b Item) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindUint, KindNInt:
		return a.Int == b.Int
	case KindBytes:
		return bytesEqual(a.Bytes, b.Bytes)
	case KindText:
		return a.Text == b.Text
	case KindArray:
		if len(a.Array) != len(b.Array) {
			return false
		}
		for i := range a.Array {
			if !Equal(a.Array[i], b.Array[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return mapEqual(a.Map, b.Map)
	case KindTag:
		if a.Tag == nil || b.Tag == nil {
			return a.Tag == b.Tag
		}
		return a.Tag.Number == b.Tag.Number && Equal(a.Tag.Inner, b.Tag.Inner)
	case KindFloat:
		return a.Float == b.Float
	case KindBool:
		return a.Bool == b.Bool
	case KindNull, KindUndefined:
		return true
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mapEqual(a, b []MapEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for _, ea := range a {
		found := false
		for _, eb := range b {
			if ea.Key.Equal(eb.Key) && Equal(ea.Value, eb.Value) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Diagnostic renders an Item as a short human-readable string, used in test
// failure messages. It is not a wire format.
func Diagnostic(it Item) string {
	switch it.Kind {
	case KindUint, KindNInt:
		return fmt.Sprintf("%d", it.Int)
	case KindBytes:
		return fmt.Sprintf("h'%x'", it.Bytes)
	case KindText:
		return fmt.Sprintf("%q", it.Text)
	case KindArray:
		s := "["
		for i, e := range it.Array {
			if i > 0 {
				s += ", "
			}
			s += Diagnostic(e)
		}
		return s + "]"
	case KindMap:
		s := "{"
		for i, e := range it.Map {
			if i > 0 {
				s += ", "
			}
			if e.Key.IsText {
				s += fmt.Sprintf("%q: %s", e.Key.Text, Diagnostic(e.Value))
			} else {
				s += fmt.Sprintf("%d: %s", e.Key.Int, Diagnostic(e.Value))
			}
		}
		return s + "}"
	case KindTag:
		return fmt.Sprintf("%d(%s)", it.Tag.Number, Diagnostic(it.Tag.Inner))
	case KindFloat:
		return fmt.Sprintf("%g", it.Float)
	case KindBool:
		return fmt.Sprintf("%t", it.Bool)
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	default:
		return "?"
	}
}
