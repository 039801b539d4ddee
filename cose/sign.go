package cose

import "github.com/halborn/structcodec/cbor"

// TagSign is the envelope tag number for a multi-signer signature.
const TagSign = 98

// Sign is a multi-signer signature envelope: a body protected/unprotected
// header pair, an optional payload, and one signature per signer.
type Sign struct {
	Protected   Header
	Unprotected Header
	Payload     []byte
	Signatures  []Element
}

// Encode validates the body protected header and every signature's
// protected header, then serializes s as a tagged-98 array.
func (s Sign) Encode() ([]byte, error) {
	p, err := encodeOuterHeader(s.Protected)
	if err != nil {
		return nil, err
	}

	sigs, err := encodeElementList(s.Signatures)
	if err != nil {
		return nil, err
	}

	arr := cbor.Array(cbor.Bytes(p), s.Unprotected, payloadItem(s.Payload), sigs)
	return cbor.Encode(cbor.Tagged(TagSign, arr))
}

// DecodeSign parses a tagged-98 Sign envelope, re-validating the body
// protected header and every signature's protected header.
func DecodeSign(buf []byte) (Sign, error) {
	fields, err := decodeOuterArray(buf, TagSign, 4)
	if err != nil {
		return Sign{}, err
	}

	protected, err := decodeOuterHeader(fields[0])
	if err != nil {
		return Sign{}, err
	}

	payload, err := decodeBytesOrNull(fields[2])
	if err != nil {
		return Sign{}, err
	}

	sigs, err := decodeElementList(fields[3])
	if err != nil {
		return Sign{}, err
	}

	return Sign{
		Protected:   protected,
		Unprotected: fields[1],
		Payload:     payload,
		Signatures:  sigs,
	}, nil
}
