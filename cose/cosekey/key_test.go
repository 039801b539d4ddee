package cosekey_test

import (
	"testing"

	"github.com/halborn/structcodec/cbor"
	"github.com/halborn/structcodec/cose"
	"github.com/halborn/structcodec/cose/cosekey"
	"github.com/halborn/structcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestECKeyRoundTrips(t *testing.T) {
	k := cosekey.Key{
		Kty:   cosekey.KeyTypeEC,
		Alg:   cose.AlgES256,
		Curve: cosekey.ECCurveP256,
		X:     []byte{1, 2, 3},
		Y:     []byte{4, 5, 6},
	}

	wire, err := cosekey.Encode(k)
	require.NoError(t, err)

	decoded, err := cosekey.Decode(wire)
	require.NoError(t, err)
	require.Equal(t, k, decoded)
}

func TestRSAKeyRoundTrips(t *testing.T) {
	k := cosekey.Key{
		Kty: cosekey.KeyTypeRSA,
		Alg: cose.AlgRS256,
		N:   []byte{0x01, 0x02},
		E:   []byte{0x01, 0x00, 0x01},
	}

	wire, err := cosekey.Encode(k)
	require.NoError(t, err)

	decoded, err := cosekey.Decode(wire)
	require.NoError(t, err)
	require.Equal(t, k, decoded)
}

func TestEncodeRejectsECKeyWithWrongCurve(t *testing.T) {
	k := cosekey.Key{Kty: cosekey.KeyTypeEC, Alg: cose.AlgES256, Curve: 2, X: []byte{1}, Y: []byte{1}}
	_, err := cosekey.Encode(k)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidKeyParam)
}

func TestEncodeRejectsUnsupportedKeyType(t *testing.T) {
	k := cosekey.Key{Kty: 4, Alg: cose.AlgES256}
	_, err := cosekey.Encode(k)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnsupportedKeyType)
}

func TestEncodeRejectsAlgorithmNotInRegistry(t *testing.T) {
	k := cosekey.Key{Kty: cosekey.KeyTypeRSA, Alg: 123456, N: []byte{1}, E: []byte{1}}
	_, err := cosekey.Encode(k)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnsupportedKeyType)
}

func TestDecodeRejectsMissingRequiredParam(t *testing.T) {
	m := cbor.Map(
		cbor.MapEntry{Key: cbor.IntKey(cosekey.ParamKty), Value: cbor.Int(cosekey.KeyTypeRSA)},
		cbor.MapEntry{Key: cbor.IntKey(cosekey.ParamAlg), Value: cbor.Int(cose.AlgRS256)},
		cbor.MapEntry{Key: cbor.IntKey(-1), Value: cbor.Bytes([]byte{1})},
		// missing -2 (e)
	)
	wire, err := cbor.Encode(m)
	require.NoError(t, err)

	_, err = cosekey.Decode(wire)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrMissingKeyParam)
}

func TestDecodeRejectsUnknownParam(t *testing.T) {
	m := cbor.Map(
		cbor.MapEntry{Key: cbor.IntKey(cosekey.ParamKty), Value: cbor.Int(cosekey.KeyTypeEC)},
		cbor.MapEntry{Key: cbor.IntKey(cosekey.ParamAlg), Value: cbor.Int(cose.AlgES256)},
		cbor.MapEntry{Key: cbor.IntKey(-1), Value: cbor.Int(cosekey.ECCurveP256)},
		cbor.MapEntry{Key: cbor.IntKey(-2), Value: cbor.Bytes([]byte{1})},
		cbor.MapEntry{Key: cbor.IntKey(-3), Value: cbor.Bytes([]byte{2})},
		cbor.MapEntry{Key: cbor.IntKey(-4), Value: cbor.Bytes([]byte{9})}, // unexpected label
	)
	wire, err := cbor.Encode(m)
	require.NoError(t, err)

	_, err = cosekey.Decode(wire)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnknownKeyParam)
}

func TestDecodeRejectsNonMap(t *testing.T) {
	wire, err := cbor.Encode(cbor.Int(5))
	require.NoError(t, err)

	_, err = cosekey.Decode(wire)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAMap)
}
