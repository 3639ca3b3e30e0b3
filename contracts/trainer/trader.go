package trainer

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/tradetrainer/trainer-contract/common"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/trainerconst"
)

// Trader is a registered participant submitting validations.
type Trader struct {
	User        interop.Hash160
	Name        string
	Performance int
	Ranking     int
	League      int
	Bump        int
}

// CreateTrader method registers a new trader of the user with the given name
// and returns its address. The transaction must be witnessed by the user.
//
// Produces NewTrader notification.
func CreateTrader(user interop.Hash160, name string) interop.Hash160 {
	ctx := storage.GetContext()

	if len(user) != interop.Hash160Len {
		panic(trainerconst.ErrWrongUser)
	}
	common.CheckWitness(user, trainerconst.ErrWrongUser)

	if len(name) == 0 || len(name) > trainerconst.MaxNameLength {
		panic(trainerconst.ErrInvalidName)
	}

	address, bump := deriveAddress(traderSeeds(user, name))
	key := traderKey(address)
	if storage.Get(ctx, key) != nil {
		panic(trainerconst.ErrTraderExists)
	}

	common.SetSerialized(ctx, key, Trader{
		User: user,
		Name: name,
		Bump: bump,
	})

	runtime.Notify("NewTrader", address, user, name, runtime.GetTime())

	return address
}

// GetTrader method returns the trader stored by the address. It panics if
// there is no such trader.
func GetTrader(trader interop.Hash160) Trader {
	ctx := storage.GetReadOnlyContext()
	return getTrader(ctx, trader)
}

// TraderAddress method returns the address of the trader of the user with
// the given name. The trader may not exist.
func TraderAddress(user interop.Hash160, name string) interop.Hash160 {
	address, _ := deriveAddress(traderSeeds(user, name))
	return address
}

// Traders method returns an iterator over all traders. Each item is a pair of
// the trader address and the Trader structure.
func Traders() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{traderPrefix}, storage.RemovePrefix|storage.DeserializeValues)
}

// SetRanking method changes ranking and league of the trader. It must be
// witnessed by the governance authority.
func SetRanking(trader interop.Hash160, ranking, league int) {
	ctx := storage.GetContext()
	checkAuthority(ctx)

	if ranking < 0 || league < 0 || league > trainerconst.MaxLeague {
		panic(trainerconst.ErrInvalidRanking)
	}

	t := getTrader(ctx, trader)
	t.Ranking = ranking
	t.League = league
	common.SetSerialized(ctx, traderKey(trader), t)

	runtime.Log("trader ranking changed")
}

func getTrader(ctx storage.Context, trader interop.Hash160) Trader {
	data := common.GetSerialized(ctx, traderKey(trader))
	if data == nil {
		panic(trainerconst.ErrTraderNotFound)
	}

	t := data.(Trader)
	checkBump(traderSeeds(t.User, t.Name), t.Bump, trader)

	return t
}

func traderKey(trader interop.Hash160) []byte {
	return append([]byte{traderPrefix}, trader...)
}
