// Package structcodec provides a structural codec for a binary
// data-interchange format and a signing/encryption envelope layered on top
// of it: a complete encoder/decoder for the data format's eight major
// types, and six tagged envelope structures (Sign1, Sign, Mac0, Mac,
// Encrypt0, Encrypt) plus a key descriptor, built on that codec.
//
// The codec validates envelope structure and the mandatory protected "alg"
// header parameter; it performs no cryptographic computation. Callers
// supply already-computed signature/tag/ciphertext/encrypted-key bytes to
// an envelope's Encode method, and receive them back unverified from the
// matching Decode function.
//
// # Package structure
//
// This package provides convenient top-level wrappers around the cbor and
// cose packages and the key codec in cose/cosekey, covering the most common
// operations. For map-key predicates or diagnostic rendering, use the cbor
// package directly.
//
// # Basic usage
//
//	item := structcodec.Map(
//	    structcodec.MapEntry{Key: structcodec.IntKey(1), Value: structcodec.Int(-7)},
//	)
//	wire, err := structcodec.Encode(item)
//	decoded, err := structcodec.Decode(wire)
//
//	env := structcodec.Sign1{
//	    Protected:   cose.NewHeader(cbor.MapEntry{Key: cbor.IntKey(cose.HeaderLabelAlg), Value: cbor.Int(cose.AlgES256)}),
//	    Unprotected: cose.EmptyHeader(),
//	    Signature:   signatureBytes,
//	}
//	wire, err = env.Encode()
//	decodedEnv, err := structcodec.DecodeSign1(wire)
package structcodec

import (
	"github.com/halborn/structcodec/cbor"
	"github.com/halborn/structcodec/cose"
	"github.com/halborn/structcodec/cose/cosekey"
)

// Item is the data-format value type. See package cbor.
type Item = cbor.Item

// MapEntry and MapKey mirror the cbor package's map-building types.
type (
	MapEntry = cbor.MapEntry
	MapKey   = cbor.MapKey
)

// IntKey and TextKey build map keys. See package cbor.
var (
	IntKey  = cbor.IntKey
	TextKey = cbor.TextKey
)

// Int, UInt, Bytes, Text, Array, Map, Tagged, Float, BoolItem, Null, and
// Undefined build data-format values. See package cbor.
var (
	Int       = cbor.Int
	UInt      = cbor.UInt
	Bytes     = cbor.Bytes
	Text      = cbor.Text
	Array     = cbor.Array
	Map       = cbor.Map
	Tagged    = cbor.Tagged
	Float     = cbor.Float
	BoolItem  = cbor.BoolItem
	Null      = cbor.Null
	Undefined = cbor.Undefined
)

// Encode serializes a data-format value to its deterministic byte
// representation. See cbor.Encode.
func Encode(it Item) ([]byte, error) { return cbor.Encode(it) }

// Decode decodes the entire buffer as exactly one data-format value. See
// cbor.Decode.
func Decode(buf []byte) (Item, error) { return cbor.Decode(buf) }

// Equal reports whether two data-format values are structurally equal. See
// cbor.Equal.
func Equal(a, b Item) bool { return cbor.Equal(a, b) }

// Envelope types. See package cose.
type (
	Sign1    = cose.Sign1
	Sign     = cose.Sign
	Mac0     = cose.Mac0
	Mac      = cose.Mac
	Encrypt0 = cose.Encrypt0
	Encrypt  = cose.Encrypt
	Header   = cose.Header
	Element  = cose.Element
)

// DecodeSign1, DecodeSign, DecodeMac0, DecodeMac, DecodeEncrypt0, and
// DecodeEncrypt parse the matching tagged envelope. See package cose.
var (
	DecodeSign1    = cose.DecodeSign1
	DecodeSign     = cose.DecodeSign
	DecodeMac0     = cose.DecodeMac0
	DecodeMac      = cose.DecodeMac
	DecodeEncrypt0 = cose.DecodeEncrypt0
	DecodeEncrypt  = cose.DecodeEncrypt
)

// Key is the key descriptor type. See package cose/cosekey.
type Key = cosekey.Key

// EncodeKey and DecodeKey encode and decode a key descriptor. See package
// cose/cosekey.
func EncodeKey(k Key) ([]byte, error)   { return cosekey.Encode(k) }
func DecodeKey(buf []byte) (Key, error) { return cosekey.Decode(buf) }
