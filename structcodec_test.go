package structcodec_test

import (
	"testing"

	structcodec "github.com/halborn/structcodec"
	"github.com/halborn/structcodec/cbor"
	"github.com/halborn/structcodec/cose"
	"github.com/stretchr/testify/require"
)

func TestFacadeEncodeDecodeRoundTrips(t *testing.T) {
	item := structcodec.Map(
		structcodec.MapEntry{Key: structcodec.IntKey(1), Value: structcodec.Int(-7)},
	)

	wire, err := structcodec.Encode(item)
	require.NoError(t, err)

	decoded, err := structcodec.Decode(wire)
	require.NoError(t, err)
	require.True(t, structcodec.Equal(item, decoded))
}

func TestFacadeSign1RoundTrips(t *testing.T) {
	env := structcodec.Sign1{
		Protected:   cose.NewHeader(cbor.MapEntry{Key: cbor.IntKey(cose.HeaderLabelAlg), Value: cbor.Int(cose.AlgES256)}),
		Unprotected: cose.EmptyHeader(),
		Signature:   []byte{1, 2, 3},
	}

	wire, err := env.Encode()
	require.NoError(t, err)

	decoded, err := structcodec.DecodeSign1(wire)
	require.NoError(t, err)
	require.Equal(t, env.Signature, decoded.Signature)
}

func TestFacadeKeyRoundTrips(t *testing.T) {
	k := structcodec.Key{Kty: 3, Alg: cose.AlgRS256, N: []byte{1}, E: []byte{1}}

	wire, err := structcodec.EncodeKey(k)
	require.NoError(t, err)

	decoded, err := structcodec.DecodeKey(wire)
	require.NoError(t, err)
	require.Equal(t, k, decoded)
}
