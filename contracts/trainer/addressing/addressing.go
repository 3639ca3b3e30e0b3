/*
Package addressing implements the deterministic part of Trainer record
address derivation.

A record address is the Hash160 (RIPEMD160 over SHA256) of a preimage built
from an ordered list of seeds, a bump byte, the owning contract hash and a
fixed marker. Bumps are tried from MaxBump down to zero and the first
candidate outside of the reserved subset is accepted. Hashing itself is done
by the caller: by native contracts on chain and by the crypto library off
chain, so both sides share this package.
*/
package addressing

const (
	// SeedSegmentLength is the maximum length of a single seed segment.
	SeedSegmentLength = 32

	// MaxBump is the first bump tried during derivation.
	MaxBump = 255

	// Marker is appended to every preimage.
	Marker = "TrainerDerivedAddress"
)

// TextSeed returns a seed segment of the given text. If leftover is false, it
// returns the first SeedSegmentLength bytes (or the whole text if it's
// shorter). Otherwise it returns the bytes following the first segment,
// limited by SeedSegmentLength, which is empty for short texts.
func TextSeed(text string, leftover bool) []byte {
	b := []byte(text)
	ln := len(b)
	if ln <= SeedSegmentLength {
		if leftover {
			return []byte{}
		}
		return b
	}
	if !leftover {
		return b[:SeedSegmentLength]
	}
	if ln > 2*SeedSegmentLength {
		return b[SeedSegmentLength : 2*SeedSegmentLength]
	}
	return b[SeedSegmentLength:]
}

// Preimage builds the byte string hashed into a candidate address. Every seed
// is prefixed with its length, so seed boundaries can't be shifted.
func Preimage(seeds [][]byte, bump int, owner []byte) []byte {
	var res []byte
	for i := range seeds {
		res = append(res, byte(len(seeds[i])))
		res = append(res, seeds[i]...)
	}
	res = append(res, byte(bump))
	res = append(res, owner...)
	return append(res, []byte(Marker)...)
}

// IsReserved checks whether the candidate address belongs to the reserved
// part of the address space and therefore can't be used for records.
func IsReserved(candidate []byte) bool {
	return candidate[0]&0x80 != 0
}
