package cose

import "github.com/halborn/structcodec/cbor"

// TagSign1 is the envelope tag number for a single-signer signature.
const TagSign1 = 18

// Sign1 is a single-signer signature envelope: one protected header, one
// unprotected header, an optional payload, and one signature.
type Sign1 struct {
	Protected   Header
	Unprotected Header
	Payload     []byte // nil encodes as CBOR null
	Signature   []byte
}

// Encode validates the protected header and serializes s as a tagged-18
// array [protected-bytes, unprotected, payload-or-null, signature].
func (s Sign1) Encode() ([]byte, error) {
	p, err := encodeOuterHeader(s.Protected)
	if err != nil {
		return nil, err
	}

	arr := cbor.Array(cbor.Bytes(p), s.Unprotected, payloadItem(s.Payload), cbor.Bytes(s.Signature))
	return cbor.Encode(cbor.Tagged(TagSign1, arr))
}

// DecodeSign1 parses a tagged-18 Sign1 envelope, validating its protected
// header along the way.
func DecodeSign1(buf []byte) (Sign1, error) {
	fields, err := decodeOuterArray(buf, TagSign1, 4)
	if err != nil {
		return Sign1{}, err
	}

	protected, err := decodeOuterHeader(fields[0])
	if err != nil {
		return Sign1{}, err
	}

	payload, err := decodeBytesOrNull(fields[2])
	if err != nil {
		return Sign1{}, err
	}

	signature, err := decodeBytes(fields[3])
	if err != nil {
		return Sign1{}, err
	}

	return Sign1{
		Protected:   protected,
		Unprotected: fields[1],
		Payload:     payload,
		Signature:   signature,
	}, nil
}
