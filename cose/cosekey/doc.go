// Package cosekey implements the key codec: encoding and decoding of a
// small structured key descriptor as a map, with shape validation
// dispatched on key type. It performs no cryptographic operation — it does
// not generate, import, or use key material, only validates and carries the
// wire representation of one.
package cosekey
