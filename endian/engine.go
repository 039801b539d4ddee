// Package endian provides the byte-order engine used to pack and unpack the
// fixed-width integer arguments and IEEE-754 float payloads of the binary
// codec.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder interfaces into
// a single EndianEngine, the same abstraction used throughout this codebase
// for appending multi-byte fields without an intermediate allocation.
//
// The wire format mandates big-endian for every multi-byte argument and
// float payload, so GetBigEndianEngine is the only engine the codec itself
// ever selects; the interface is kept separate from inline encoding/binary
// calls so every packing call site reads uniformly. GetLittleEndianEngine is
// called only by this package's own tests.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte-order operations.
//
// binary.BigEndian and binary.LittleEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine mandated by the wire format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine, used only in tests.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
