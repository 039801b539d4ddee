// Package cbor implements a structural codec for a subset of the Concise
// Binary Object Representation (CBOR, RFC 8949): the eight major types,
// deterministic encoding, and hardened decoding with explicit bounds and
// size caps.
//
// # Scope
//
// The package materializes values fully in memory; it does not stream and
// does not produce or accept indefinite-length items. Integers are carried
// through a double-precision numeric model and capped at the IEEE-754 safe
// integer ceiling, ±(2^53-1) — MaxSafeInteger. Two resource ceilings apply
// to every encode and decode: MaxInputBytes on the input or output buffer,
// and MaxContainerElements on every array's length and every map's pair
// count, checked at every nesting level.
//
// # Deterministic encoding
//
// Encode always emits the shortest valid argument form for an integer or
// length, and sorts map keys by the decimal-string form of their key
// rather than by RFC 8949's canonical byte-wise key order — this is a
// deliberate, documented deviation, not a bug; see DESIGN.md.
//
// # Usage
//
//	item := cbor.Map(
//	    cbor.MapEntry{Key: cbor.IntKey(1), Value: cbor.Int(-7)},
//	)
//	wire, err := cbor.Encode(item)
//	decoded, err := cbor.Decode(wire)
//	cbor.Equal(item, decoded) // true
package cbor
