package cbor

// Resource ceilings enforced on every entry point. Either limit is a hard
// failure, not a truncation.
const (
	// MaxInputBytes is the maximum size of any input buffer or encoded
	// output.
	MaxInputBytes = 16 * 1024 * 1024

	// MaxContainerElements is the maximum number of elements in an Array
	// and the maximum number of pairs in a Map, checked recursively at
	// every level during both encode and decode.
	MaxContainerElements = 10000

	// MaxSafeInteger is the largest magnitude integer this codec will
	// encode or decode without loss: IEEE-754 double precision's
	// safe-integer ceiling, 2^53-1.
	MaxSafeInteger = (1 << 53) - 1
)
