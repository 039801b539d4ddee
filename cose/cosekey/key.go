package cosekey

import (
	"fmt"

	"github.com/halborn/structcodec/cbor"
	"github.com/halborn/structcodec/cose"
	"github.com/halborn/structcodec/errs"
)

// Key type registry values (the kty parameter, label 1).
const (
	KeyTypeEC  = 2
	KeyTypeRSA = 3
)

// Key parameter labels. The negative labels are reused with different
// meaning depending on kty, exactly as the registry defines them: -1/-2/-3
// are curve/x/y for an EC key, -1/-2 are n/e for an RSA key.
const (
	ParamKty = 1
	ParamAlg = 3
)

// ECCurveP256 is the only curve identifier this codec accepts in an EC key's
// curve parameter.
const ECCurveP256 = 1

// Key is a key descriptor: a key-type, an algorithm, and type-specific
// parameters. Only the fields relevant to Kty are meaningful.
type Key struct {
	Kty   int64
	Alg   int64
	Curve int64  // EC only
	X, Y  []byte // EC only
	N, E  []byte // RSA only
}

// Encode validates k's shape against its kty and serializes it as an
// untagged map.
func Encode(k Key) ([]byte, error) {
	if err := validate(k); err != nil {
		return nil, err
	}

	entries := []cbor.MapEntry{
		{Key: cbor.IntKey(ParamKty), Value: cbor.Int(k.Kty)},
		{Key: cbor.IntKey(ParamAlg), Value: cbor.Int(k.Alg)},
	}

	switch k.Kty {
	case KeyTypeEC:
		entries = append(entries,
			cbor.MapEntry{Key: cbor.IntKey(-1), Value: cbor.Int(k.Curve)},
			cbor.MapEntry{Key: cbor.IntKey(-2), Value: cbor.Bytes(k.X)},
			cbor.MapEntry{Key: cbor.IntKey(-3), Value: cbor.Bytes(k.Y)},
		)
	case KeyTypeRSA:
		entries = append(entries,
			cbor.MapEntry{Key: cbor.IntKey(-1), Value: cbor.Bytes(k.N)},
			cbor.MapEntry{Key: cbor.IntKey(-2), Value: cbor.Bytes(k.E)},
		)
	}

	return cbor.Encode(cbor.Map(entries...))
}

// Decode byte-codec-decodes buf as a map and converts it into a validated
// Key.
func Decode(buf []byte) (Key, error) {
	typed, consumed, err := cbor.DecodeMapAs(buf, 0, nil, nil)
	if err != nil {
		return Key{}, err
	}
	if consumed != len(buf) {
		return Key{}, fmt.Errorf("%d trailing byte(s) after key map: %w", len(buf)-consumed, errs.ErrTruncatedBuffer)
	}

	ktyItem, ok := typed.Int(ParamKty)
	if !ok {
		return Key{}, fmt.Errorf("key map missing kty (label %d): %w", ParamKty, errs.ErrMissingKeyParam)
	}
	algItem, ok := typed.Int(ParamAlg)
	if !ok {
		return Key{}, fmt.Errorf("key map missing alg (label %d): %w", ParamAlg, errs.ErrMissingKeyParam)
	}

	if err := rejectUnknownParams(typed, ktyItem.Int); err != nil {
		return Key{}, err
	}

	k := Key{Kty: ktyItem.Int, Alg: algItem.Int}

	switch k.Kty {
	case KeyTypeEC:
		curve, ok := typed.Int(-1)
		if !ok {
			return Key{}, fmt.Errorf("EC key missing curve (label -1): %w", errs.ErrMissingKeyParam)
		}
		x, ok := typed.Int(-2)
		if !ok {
			return Key{}, fmt.Errorf("EC key missing x (label -2): %w", errs.ErrMissingKeyParam)
		}
		y, ok := typed.Int(-3)
		if !ok {
			return Key{}, fmt.Errorf("EC key missing y (label -3): %w", errs.ErrMissingKeyParam)
		}
		k.Curve = curve.Int
		k.X = x.Bytes
		k.Y = y.Bytes

	case KeyTypeRSA:
		n, ok := typed.Int(-1)
		if !ok {
			return Key{}, fmt.Errorf("RSA key missing n (label -1): %w", errs.ErrMissingKeyParam)
		}
		e, ok := typed.Int(-2)
		if !ok {
			return Key{}, fmt.Errorf("RSA key missing e (label -2): %w", errs.ErrMissingKeyParam)
		}
		k.N = n.Bytes
		k.E = e.Bytes

	default:
		return Key{}, fmt.Errorf("key type %d: %w", k.Kty, errs.ErrUnsupportedKeyType)
	}

	if err := validate(k); err != nil {
		return Key{}, err
	}

	return k, nil
}

// validate enforces the per-kty required-parameter table and the algorithm
// registry membership of alg.
func validate(k Key) error {
	if !cose.ValidAlgorithm(k.Alg) {
		return fmt.Errorf("key alg %d not in algorithm registry: %w", k.Alg, errs.ErrUnsupportedKeyType)
	}

	switch k.Kty {
	case KeyTypeEC:
		if k.Curve != ECCurveP256 {
			return fmt.Errorf("EC key curve %d, only %d accepted: %w", k.Curve, ECCurveP256, errs.ErrInvalidKeyParam)
		}
		if k.X == nil || k.Y == nil {
			return fmt.Errorf("EC key missing x or y: %w", errs.ErrMissingKeyParam)
		}
	case KeyTypeRSA:
		if k.N == nil || k.E == nil {
			return fmt.Errorf("RSA key missing n or e: %w", errs.ErrMissingKeyParam)
		}
	default:
		return fmt.Errorf("key type %d: %w", k.Kty, errs.ErrUnsupportedKeyType)
	}

	return nil
}

// rejectUnknownParams enforces "other keys are rejected by the validator":
// a key map may only carry kty, alg, and the parameters its kty defines.
func rejectUnknownParams(typed cbor.TypedMapping, kty int64) error {
	allowed := map[int64]bool{ParamKty: true, ParamAlg: true}
	switch kty {
	case KeyTypeEC:
		allowed[-1], allowed[-2], allowed[-3] = true, true, true
	case KeyTypeRSA:
		allowed[-1], allowed[-2] = true, true
	}

	for key := range typed {
		if key.IsText {
			return fmt.Errorf("key map contains text key %q: %w", key.Text, errs.ErrUnknownKeyParam)
		}
		if !allowed[key.Int] {
			return fmt.Errorf("key map contains unexpected label %d: %w", key.Int, errs.ErrUnknownKeyParam)
		}
	}

	return nil
}
