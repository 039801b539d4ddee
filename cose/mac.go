package cose

import "github.com/halborn/structcodec/cbor"

// TagMac is the envelope tag number for a multi-recipient MAC.
const TagMac = 97

// Mac is a multi-recipient MAC envelope: a body protected/unprotected
// header pair, an optional payload, and one recipient entry per recipient,
// each carrying its own MAC tag.
type Mac struct {
	Protected   Header
	Unprotected Header
	Payload     []byte
	Recipients  []Element
}

// Encode validates the body protected header and every recipient's
// protected header, then serializes m as a tagged-97 array.
func (m Mac) Encode() ([]byte, error) {
	p, err := encodeOuterHeader(m.Protected)
	if err != nil {
		return nil, err
	}

	recipients, err := encodeElementList(m.Recipients)
	if err != nil {
		return nil, err
	}

	arr := cbor.Array(cbor.Bytes(p), m.Unprotected, payloadItem(m.Payload), recipients)
	return cbor.Encode(cbor.Tagged(TagMac, arr))
}

// DecodeMac parses a tagged-97 Mac envelope, re-validating the body
// protected header and every recipient's protected header.
func DecodeMac(buf []byte) (Mac, error) {
	fields, err := decodeOuterArray(buf, TagMac, 4)
	if err != nil {
		return Mac{}, err
	}

	protected, err := decodeOuterHeader(fields[0])
	if err != nil {
		return Mac{}, err
	}

	payload, err := decodeBytesOrNull(fields[2])
	if err != nil {
		return Mac{}, err
	}

	recipients, err := decodeElementList(fields[3])
	if err != nil {
		return Mac{}, err
	}

	return Mac{
		Protected:   protected,
		Unprotected: fields[1],
		Payload:     payload,
		Recipients:  recipients,
	}, nil
}
