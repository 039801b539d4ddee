package cose

import "github.com/halborn/structcodec/cbor"

// TagEncrypt0 is the envelope tag number for a single-recipient encryption.
const TagEncrypt0 = 16

// Encrypt0 is a single-recipient encryption envelope: a protected/
// unprotected header pair and the ciphertext. Unlike Sign1/Mac0, there is no
// separate payload field — the ciphertext is mandatory bytes, never null.
type Encrypt0 struct {
	Protected   Header
	Unprotected Header
	Ciphertext  []byte
}

// Encode validates the protected header and serializes e as a tagged-16
// array [protected-bytes, unprotected, ciphertext].
func (e Encrypt0) Encode() ([]byte, error) {
	p, err := encodeOuterHeader(e.Protected)
	if err != nil {
		return nil, err
	}

	arr := cbor.Array(cbor.Bytes(p), e.Unprotected, cbor.Bytes(e.Ciphertext))
	return cbor.Encode(cbor.Tagged(TagEncrypt0, arr))
}

// DecodeEncrypt0 parses a tagged-16 Encrypt0 envelope.
func DecodeEncrypt0(buf []byte) (Encrypt0, error) {
	fields, err := decodeOuterArray(buf, TagEncrypt0, 3)
	if err != nil {
		return Encrypt0{}, err
	}

	protected, err := decodeOuterHeader(fields[0])
	if err != nil {
		return Encrypt0{}, err
	}

	ciphertext, err := decodeBytes(fields[2])
	if err != nil {
		return Encrypt0{}, err
	}

	return Encrypt0{
		Protected:   protected,
		Unprotected: fields[1],
		Ciphertext:  ciphertext,
	}, nil
}
