package trainer

import (
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/addressing"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/trainerconst"
)

// TraderAddress calculates the address of the trader of the user with the
// given name in the contract with the given hash. It returns the address
// along with its bump.
func TraderAddress(contract, user util.Uint160, name string) (util.Uint160, uint8, error) {
	return deriveAddress(contract, traderSeeds(user, name))
}

// ExerciseAddress calculates the address of the exercise of the authority
// with the given content identifier in the contract with the given hash. It
// returns the address along with its bump.
func ExerciseAddress(contract, authority util.Uint160, cid string) (util.Uint160, uint8, error) {
	return deriveAddress(contract, exerciseSeeds(authority, cid))
}

// CheckTraderBump checks that the stored bump of the trader derives the given
// address. It returns ErrBumpNotFound otherwise, the contract refuses to load
// such a record.
func CheckTraderBump(contract, address util.Uint160, t *Trader) error {
	return checkBump(contract, traderSeeds(t.User, t.Name), t.Bump, address)
}

// CheckExerciseBump is the same as CheckTraderBump for exercises.
func CheckExerciseBump(contract, address util.Uint160, e *Exercise) error {
	return checkBump(contract, exerciseSeeds(e.Authority, e.Cid), e.Bump, address)
}

func traderSeeds(user util.Uint160, name string) [][]byte {
	return [][]byte{
		[]byte(trainerconst.TraderSeed),
		addressing.TextSeed(name, false),
		addressing.TextSeed(name, true),
		user.BytesBE(),
	}
}

func exerciseSeeds(authority util.Uint160, cid string) [][]byte {
	return [][]byte{
		[]byte(trainerconst.ExerciseSeed),
		authority.BytesBE(),
		addressing.TextSeed(cid, false),
		addressing.TextSeed(cid, true),
	}
}

func checkBump(contract util.Uint160, seeds [][]byte, bump *big.Int, address util.Uint160) error {
	if bump == nil || !bump.IsInt64() || bump.Int64() < 0 || bump.Int64() > addressing.MaxBump {
		return ErrBumpNotFound
	}

	candidate := hash.Hash160(addressing.Preimage(seeds, int(bump.Int64()), contract.BytesBE()))
	if addressing.IsReserved(candidate.BytesBE()) || !candidate.Equals(address) {
		return ErrBumpNotFound
	}

	return nil
}

func deriveAddress(contract util.Uint160, seeds [][]byte) (util.Uint160, uint8, error) {
	owner := contract.BytesBE()
	for bump := addressing.MaxBump; bump >= 0; bump-- {
		candidate := hash.Hash160(addressing.Preimage(seeds, bump, owner))
		if !addressing.IsReserved(candidate.BytesBE()) {
			return candidate, uint8(bump), nil
		}
	}
	return util.Uint160{}, 0, ErrAddressCollisionExhausted
}
