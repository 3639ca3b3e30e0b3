package trainer

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/addressing"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/trainerconst"
)

func traderSeeds(user interop.Hash160, name string) [][]byte {
	return [][]byte{
		[]byte(trainerconst.TraderSeed),
		addressing.TextSeed(name, false),
		addressing.TextSeed(name, true),
		user,
	}
}

func exerciseSeeds(authority interop.Hash160, cid string) [][]byte {
	return [][]byte{
		[]byte(trainerconst.ExerciseSeed),
		authority,
		addressing.TextSeed(cid, false),
		addressing.TextSeed(cid, true),
	}
}

// deriveAddress searches for the first bump that gives an address outside of
// the reserved subset.
func deriveAddress(seeds [][]byte) (interop.Hash160, int) {
	owner := runtime.GetExecutingScriptHash()
	for bump := addressing.MaxBump; bump >= 0; bump-- {
		candidate := candidateAddress(seeds, bump, owner)
		if !addressing.IsReserved(candidate) {
			return candidate, bump
		}
	}
	panic(trainerconst.ErrAddressCollisionExhausted)
}

// checkBump panics if the stored bump doesn't derive the record address.
func checkBump(seeds [][]byte, bump int, address interop.Hash160) {
	candidate := candidateAddress(seeds, bump, runtime.GetExecutingScriptHash())
	if addressing.IsReserved(candidate) || !candidate.Equals(address) {
		panic(trainerconst.ErrBumpNotFound)
	}
}

func candidateAddress(seeds [][]byte, bump int, owner interop.Hash160) interop.Hash160 {
	preimage := addressing.Preimage(seeds, bump, owner)
	return crypto.Ripemd160([]byte(crypto.Sha256(preimage)))
}
