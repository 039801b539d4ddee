package cose

import "github.com/halborn/structcodec/cbor"

// TagEncrypt is the envelope tag number for a multi-recipient encryption.
const TagEncrypt = 96

// Encrypt is a multi-recipient encryption envelope: a body protected/
// unprotected header pair, the ciphertext, and one recipient entry per
// recipient, each carrying its own encrypted_key.
type Encrypt struct {
	Protected   Header
	Unprotected Header
	Ciphertext  []byte
	Recipients  []Element
}

// Encode validates the body protected header and every recipient's
// protected header, then serializes e as a tagged-96 array.
func (e Encrypt) Encode() ([]byte, error) {
	p, err := encodeOuterHeader(e.Protected)
	if err != nil {
		return nil, err
	}

	recipients, err := encodeElementList(e.Recipients)
	if err != nil {
		return nil, err
	}

	arr := cbor.Array(cbor.Bytes(p), e.Unprotected, cbor.Bytes(e.Ciphertext), recipients)
	return cbor.Encode(cbor.Tagged(TagEncrypt, arr))
}

// DecodeEncrypt parses a tagged-96 Encrypt envelope, re-validating the body
// protected header and every recipient's protected header.
func DecodeEncrypt(buf []byte) (Encrypt, error) {
	fields, err := decodeOuterArray(buf, TagEncrypt, 4)
	if err != nil {
		return Encrypt{}, err
	}

	protected, err := decodeOuterHeader(fields[0])
	if err != nil {
		return Encrypt{}, err
	}

	ciphertext, err := decodeBytes(fields[2])
	if err != nil {
		return Encrypt{}, err
	}

	recipients, err := decodeElementList(fields[3])
	if err != nil {
		return Encrypt{}, err
	}

	return Encrypt{
		Protected:   protected,
		Unprotected: fields[1],
		Ciphertext:  ciphertext,
		Recipients:  recipients,
	}, nil
}
