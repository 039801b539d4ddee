package cose

import "github.com/halborn/structcodec/cbor"

// TagMac0 is the envelope tag number for a single-recipient MAC.
const TagMac0 = 17

// Mac0 is a single-recipient MAC envelope: a protected/unprotected header
// pair, an optional payload, and a MAC tag.
type Mac0 struct {
	Protected   Header
	Unprotected Header
	Payload     []byte
	Tag         []byte
}

// Encode validates the protected header and serializes m as a tagged-17
// array [protected-bytes, unprotected, payload-or-null, tag].
func (m Mac0) Encode() ([]byte, error) {
	p, err := encodeOuterHeader(m.Protected)
	if err != nil {
		return nil, err
	}

	arr := cbor.Array(cbor.Bytes(p), m.Unprotected, payloadItem(m.Payload), cbor.Bytes(m.Tag))
	return cbor.Encode(cbor.Tagged(TagMac0, arr))
}

// DecodeMac0 parses a tagged-17 Mac0 envelope.
func DecodeMac0(buf []byte) (Mac0, error) {
	fields, err := decodeOuterArray(buf, TagMac0, 4)
	if err != nil {
		return Mac0{}, err
	}

	protected, err := decodeOuterHeader(fields[0])
	if err != nil {
		return Mac0{}, err
	}

	payload, err := decodeBytesOrNull(fields[2])
	if err != nil {
		return Mac0{}, err
	}

	tag, err := decodeBytes(fields[3])
	if err != nil {
		return Mac0{}, err
	}

	return Mac0{
		Protected:   protected,
		Unprotected: fields[1],
		Payload:     payload,
		Tag:         tag,
	}, nil
}
