package cbor_test

import (
	"testing"

	"github.com/halborn/structcodec/cbor"
	"github.com/halborn/structcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestEncodeIntegerBucketSelection(t *testing.T) {
	cases := []struct {
		value cbor.Item
		wire  []byte
	}{
		{cbor.UInt(0), []byte{0x00}},
		{cbor.UInt(23), []byte{0x17}},
		{cbor.UInt(24), []byte{0x18, 0x18}},
		{cbor.UInt(255), []byte{0x18, 0xFF}},
		{cbor.UInt(256), []byte{0x19, 0x01, 0x00}},
		{cbor.UInt(65535), []byte{0x19, 0xFF, 0xFF}},
		{cbor.UInt(65536), []byte{0x1A, 0x00, 0x01, 0x00, 0x00}},
		{cbor.NInt(-1), []byte{0x20}},
		{cbor.NInt(-24), []byte{0x37}},
		{cbor.NInt(-25), []byte{0x38, 0x18}},
	}

	for _, c := range cases {
		wire, err := cbor.Encode(c.value)
		require.NoError(t, err)
		require.Equal(t, c.wire, wire)
	}
}

func TestEncodeRejectsIntegerOutOfRange(t *testing.T) {
	_, err := cbor.Encode(cbor.UInt(cbor.MaxSafeInteger + 1))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIntegerOutOfRange)
}

func TestEncodeRejectsOversizedArray(t *testing.T) {
	items := make([]cbor.Item, cbor.MaxContainerElements+1)
	for i := range items {
		items[i] = cbor.Int(0)
	}
	_, err := cbor.Encode(cbor.Array(items...))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceLimit)
}

func TestEncodeRejectsOversizedMap(t *testing.T) {
	entries := make([]cbor.MapEntry, cbor.MaxContainerElements+1)
	for i := range entries {
		entries[i] = cbor.MapEntry{Key: cbor.IntKey(int64(i)), Value: cbor.Int(0)}
	}
	_, err := cbor.Encode(cbor.Map(entries...))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceLimit)
}

func TestEncodeFloatAlwaysUsesDouble(t *testing.T) {
	wire, err := cbor.Encode(cbor.Float(2.0))
	require.NoError(t, err)
	require.Len(t, wire, 9)
	require.Equal(t, byte(7<<5|27), wire[0])
}

func TestEncodeBoolNullUndefinedConstants(t *testing.T) {
	wire, err := cbor.Encode(cbor.BoolItem(false))
	require.NoError(t, err)
	require.Equal(t, []byte{0xF4}, wire)

	wire, err = cbor.Encode(cbor.BoolItem(true))
	require.NoError(t, err)
	require.Equal(t, []byte{0xF5}, wire)

	wire, err = cbor.Encode(cbor.Null())
	require.NoError(t, err)
	require.Equal(t, []byte{0xF6}, wire)

	wire, err = cbor.Encode(cbor.Undefined())
	require.NoError(t, err)
	require.Equal(t, []byte{0xF7}, wire)
}

func TestEncodeMapSortsKeysByDecimalForm(t *testing.T) {
	m := cbor.Map(
		cbor.MapEntry{Key: cbor.IntKey(10), Value: cbor.Null()},
		cbor.MapEntry{Key: cbor.IntKey(2), Value: cbor.Null()},
	)
	wire, err := cbor.Encode(m)
	require.NoError(t, err)

	// "10" < "2" lexicographically, so key 10 must be encoded first even
	// though 2 < 10 numerically.
	require.Equal(t, byte(0xA2), wire[0])            // map, 2 pairs
	require.Equal(t, byte(0x0A), wire[1])            // key 10
	require.Equal(t, byte(0xF6), wire[2])            // null
	require.Equal(t, byte(0x02), wire[3])            // key 2
	require.Equal(t, byte(0xF6), wire[4])            // null
}
