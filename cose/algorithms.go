package cose

// Algorithm registry values accepted in a protected header's alg parameter
// or a key descriptor's alg parameter.
const (
	AlgES256 = -7
	AlgES384 = -35
	AlgES512 = -36
	AlgEdDSA = -8

	AlgRS256 = -257
	AlgRS384 = -258
	AlgRS512 = -259
	AlgPS256 = -37
	AlgPS384 = -38
	AlgPS512 = -39

	AlgHMAC25664  = 4
	AlgHMAC256256 = 5
	AlgHMAC384384 = 6
	AlgHMAC512512 = 7

	AlgAESGCM128        = 1
	AlgAESGCM192        = 2
	AlgAESGCM256        = 3
	AlgChaCha20Poly1305 = 24

	// The registry's CCM values are 10, 12, 13, 14, 30, 31, 32, 33 — note
	// the gap at 11 and the entry at 14, which is not the IANA COSE CCM
	// numbering (IANA has 11 in place of 14). This codec's registry
	// follows the numbers as given, not IANA's.
	AlgAESCCM16_64_128  = 10
	AlgAESCCM64_64_128  = 12
	AlgAESCCM64_64_256  = 13
	AlgAESCCM16_64_256  = 14
	AlgAESCCM16_128_128 = 30
	AlgAESCCM16_128_256 = 31
	AlgAESCCM64_128_128 = 32
	AlgAESCCM64_128_256 = 33

	AlgDirect = -6
)

var algorithmNames = map[int64]string{
	AlgES256: "ES256",
	AlgES384: "ES384",
	AlgES512: "ES512",
	AlgEdDSA: "EdDSA",

	AlgRS256: "RS256",
	AlgRS384: "RS384",
	AlgRS512: "RS512",
	AlgPS256: "PS256",
	AlgPS384: "PS384",
	AlgPS512: "PS512",

	AlgHMAC25664:  "HMAC_256_64",
	AlgHMAC256256: "HMAC_256_256",
	AlgHMAC384384: "HMAC_384_384",
	AlgHMAC512512: "HMAC_512_512",

	AlgAESGCM128:        "A128GCM",
	AlgAESGCM192:        "A192GCM",
	AlgAESGCM256:        "A256GCM",
	AlgChaCha20Poly1305: "ChaCha20/Poly1305",

	AlgAESCCM16_64_128:  "AES-CCM-16-64-128",
	AlgAESCCM64_64_128:  "AES-CCM-64-64-128",
	AlgAESCCM64_64_256:  "AES-CCM-64-64-256",
	AlgAESCCM16_64_256:  "AES-CCM-16-64-256",
	AlgAESCCM16_128_128: "AES-CCM-16-128-128",
	AlgAESCCM16_128_256: "AES-CCM-16-128-256",
	AlgAESCCM64_128_128: "AES-CCM-64-128-128",
	AlgAESCCM64_128_256: "AES-CCM-64-128-256",

	AlgDirect: "direct",
}

// ValidAlgorithm reports whether v is one of the integers in the algorithm
// registry.
func ValidAlgorithm(v int64) bool {
	_, ok := algorithmNames[v]
	return ok
}

// AlgorithmName looks up the registered name of an algorithm value.
func AlgorithmName(v int64) (string, bool) {
	name, ok := algorithmNames[v]
	return name, ok
}
