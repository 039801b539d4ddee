package cbor_test

import (
	"errors"
	"math"
	"testing"

	"github.com/halborn/structcodec/cbor"
	"github.com/halborn/structcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestDecodeConcreteScenarios(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		v, err := cbor.Decode([]byte{0x00})
		require.NoError(t, err)
		require.True(t, cbor.Equal(cbor.UInt(0), v))

		wire, err := cbor.Encode(cbor.UInt(0))
		require.NoError(t, err)
		require.Equal(t, []byte{0x00}, wire)
	})

	t.Run("minus one", func(t *testing.T) {
		v, err := cbor.Decode([]byte{0x20})
		require.NoError(t, err)
		require.True(t, cbor.Equal(cbor.NInt(-1), v))

		wire, err := cbor.Encode(cbor.NInt(-1))
		require.NoError(t, err)
		require.Equal(t, []byte{0x20}, wire)
	})

	t.Run("empty and single-char text", func(t *testing.T) {
		wireEmpty, err := cbor.Encode(cbor.Text(""))
		require.NoError(t, err)
		require.Equal(t, []byte{0x60}, wireEmpty)

		wireA, err := cbor.Encode(cbor.Text("a"))
		require.NoError(t, err)
		require.Equal(t, []byte{0x61, 0x61}, wireA)
	})
}

func TestDecodeTruncatedBuffer(t *testing.T) {
	_, err := cbor.Decode([]byte{0x18}) // ai=24 needs one more byte
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
}

func TestDecodeInvalidAdditionalInfo(t *testing.T) {
	_, err := cbor.Decode([]byte{0x1C}) // major 0, ai=28, reserved
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidAdditionalInfo)
}

func TestDecodeInvalidUTF8(t *testing.T) {
	// major 3 (text), length 1, invalid UTF-8 continuation byte
	_, err := cbor.Decode([]byte{0x61, 0x80})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestDecodeNonScalarMapKeyRejected(t *testing.T) {
	// map with 1 pair whose key is an empty array (major 4, len 0)
	_, err := cbor.Decode([]byte{0xA1, 0x80, 0x01})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidMapKeyType)
}

func TestDecodeArrayOverLimitRejected(t *testing.T) {
	buf := []byte{0x9A, 0x00, 0x00, 0x27, 0x11} // array, 4-byte length = 10001
	_, err := cbor.Decode(buf)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceLimit)
}

func TestDecodeMajor7UnsupportedAdditionalInfo(t *testing.T) {
	_, err := cbor.Decode([]byte{0xF8, 0x00}) // major 7, ai=24, not produced or accepted
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidAdditionalInfo)
}

func TestDecodeAdditionalInfo25ReadsFourBytesAsFloat32(t *testing.T) {
	// This reproduces the documented open issue: ai=25 is nominally
	// half-precision but this codec reads 4 bytes as a 32-bit float.
	bits := math.Float32bits(1.5)
	wire := []byte{
		0xF9,
		byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits),
	}

	v, err := cbor.Decode(wire)
	require.NoError(t, err)
	require.Equal(t, cbor.KindFloat, v.Kind)
	require.InDelta(t, 1.5, v.Float, 0.0001)
}

func TestDecodeMapAsCoercesDecimalTextKeys(t *testing.T) {
	m := cbor.Map(
		cbor.MapEntry{Key: cbor.TextKey("1"), Value: cbor.Int(-7)},
		cbor.MapEntry{Key: cbor.TextKey("kid"), Value: cbor.Bytes([]byte{1})},
	)
	wire, err := cbor.Encode(m)
	require.NoError(t, err)

	typed, n, err := cbor.DecodeMapAs(wire, 0, nil, nil)
	require.NoError(t, err)
	require.Equal(t, len(wire), n)

	v, ok := typed.Int(1)
	require.True(t, ok)
	require.True(t, cbor.Equal(cbor.Int(-7), v))

	_, ok = typed.Text("kid")
	require.True(t, ok)
}

func TestDecodeMapAsRejectsNonMap(t *testing.T) {
	wire, err := cbor.Encode(cbor.Int(5))
	require.NoError(t, err)

	_, _, err = cbor.DecodeMapAs(wire, 0, nil, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrNotAMap))
}

func TestDecodeAtParsesConcatenatedItems(t *testing.T) {
	a, err := cbor.Encode(cbor.Int(1))
	require.NoError(t, err)
	b, err := cbor.Encode(cbor.Text("x"))
	require.NoError(t, err)

	concat := append(append([]byte{}, a...), b...)

	first, n1, err := cbor.DecodeAt(concat, 0)
	require.NoError(t, err)
	require.True(t, cbor.Equal(cbor.Int(1), first))

	second, n2, err := cbor.DecodeAt(concat, n1)
	require.NoError(t, err)
	require.True(t, cbor.Equal(cbor.Text("x"), second))
	require.Equal(t, len(concat), n1+n2)
}
