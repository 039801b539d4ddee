// Package cose implements the envelope layer of a cryptographic message
// syntax (CBOR Object Signing and Encryption, RFC 8152) layered on the cbor
// package: six tagged composite structures — Sign1, Sign, Mac0, Mac,
// Encrypt0, Encrypt — plus the header and algorithm parameter registries
// their protected headers are validated against.
//
// The package validates envelope shape and the mandatory protected "alg"
// header parameter; it performs no cryptographic computation. Callers
// supply already-computed signature/tag/ciphertext bytes to encode, and
// receive them back unverified from decode.
//
// # Shared scaffold
//
// The six envelopes share one skeleton: a protected header serialized as a
// CBOR byte string, an unprotected header map, and a payload-specific
// trailing sequence, all wrapped in a CBOR tag. encodeOuterHeader,
// decodeOuterHeader, encodeElement, decodeElement, and decodeOuterArray
// implement header validation, the nested element shape, and the tag and
// arity check once; each envelope's Encode/Decode function sequences them
// and wraps its own array in its tag.
package cose
