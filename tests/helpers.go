package tests

import (
	"math/rand"

	"github.com/mr-tron/base58"
)

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

// randomCID returns random CIDv0 string: base58 encoded SHA256 multihash.
func randomCID() string {
	return base58.Encode(append([]byte{0x12, 0x20}, randomBytes(32)...))
}
