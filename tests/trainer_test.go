package tests

import (
	"math/big"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/tradetrainer/trainer-contract/common"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/grading"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/trainerconst"
	rpctrainer "github.com/tradetrainer/trainer-contract/rpc/trainer"
)

const farTimeout = int64(24 * time.Hour / time.Millisecond)

type trainerEnv struct {
	e    *neotest.Executor
	hash util.Uint160

	// invokes methods on behalf of the governance authority (committee)
	gov *neotest.ContractInvoker

	trainer    neotest.Signer
	trainerInv *neotest.ContractInvoker
}

func newTrainerEnv(t *testing.T, minValidations int64) *trainerEnv {
	e := newExecutor(t)
	h := deployTrainerContract(t, e, []any{nil, minValidations})
	gov := e.CommitteeInvoker(h)

	acc := e.NewAccount(t)
	gov.Invoke(t, stackitem.Null{}, "registerTrainer", acc.ScriptHash())

	return &trainerEnv{
		e:          e,
		hash:       h,
		gov:        gov,
		trainer:    acc,
		trainerInv: gov.WithSigners(acc),
	}
}

func hashItem(h util.Uint160) stackitem.Item {
	return stackitem.NewByteArray(h.BytesBE())
}

func (env *trainerEnv) now(t *testing.T) int64 {
	return int64(env.e.TopBlock(t).Timestamp)
}

func (env *trainerEnv) newTrader(t *testing.T, name string) (neotest.Signer, util.Uint160) {
	user := env.e.NewAccount(t)
	return user, env.newTraderOf(t, user, name)
}

func (env *trainerEnv) newTraderOf(t *testing.T, user neotest.Signer, name string) util.Uint160 {
	addr, _, err := rpctrainer.TraderAddress(env.hash, user.ScriptHash(), name)
	require.NoError(t, err)

	env.gov.WithSigners(user).Invoke(t, hashItem(addr), "createTrader", user.ScriptHash(), name)
	return addr
}

func (env *trainerEnv) newExercise(t *testing.T, capacity int64) util.Uint160 {
	return env.newExerciseWithTimeout(t, capacity, env.now(t)+farTimeout)
}

func (env *trainerEnv) newExerciseWithTimeout(t *testing.T, capacity, timeout int64) util.Uint160 {
	cid := randomCID()
	addr, _, err := rpctrainer.ExerciseAddress(env.hash, env.trainer.ScriptHash(), cid)
	require.NoError(t, err)

	env.trainerInv.Invoke(t, hashItem(addr), "createExercise", env.trainer.ScriptHash(), cid, capacity, timeout)
	return addr
}

func (env *trainerEnv) addValidation(t *testing.T, user neotest.Signer, exercise, trader util.Uint160, value int64) util.Uint256 {
	return env.gov.WithSigners(user).Invoke(t, true, "addValidation", exercise, trader, user.ScriptHash(), value)
}

func (env *trainerEnv) getExercise(t *testing.T, exercise util.Uint160) *rpctrainer.Exercise {
	s, err := env.gov.TestInvoke(t, "getExercise", exercise)
	require.NoError(t, err)

	var ex rpctrainer.Exercise
	require.NoError(t, ex.FromStackItem(s.Pop().Item()))
	return &ex
}

func (env *trainerEnv) getTrader(t *testing.T, trader util.Uint160) *rpctrainer.Trader {
	s, err := env.gov.TestInvoke(t, "getTrader", trader)
	require.NoError(t, err)

	var tr rpctrainer.Trader
	require.NoError(t, tr.FromStackItem(s.Pop().Item()))
	return &tr
}

func (env *trainerEnv) history(t *testing.T, trader util.Uint160) []*rpctrainer.HistoryEntry {
	s, err := env.gov.TestInvoke(t, "history", trader)
	require.NoError(t, err)

	items := s.Pop().Array()
	res := make([]*rpctrainer.HistoryEntry, len(items))
	for i := range items {
		res[i] = new(rpctrainer.HistoryEntry)
		require.NoError(t, res[i].FromStackItem(items[i]))
	}
	return res
}

func TestTrainer_Deploy(t *testing.T) {
	e := newExecutor(t)
	c := neotest.CompileFile(t, e.CommitteeHash, trainerPath, path.Join(trainerPath, "config.yml"))

	t.Run("min validations too low", func(t *testing.T) {
		e.DeployContractCheckFAULT(t, c, []any{nil, int64(0)}, trainerconst.ErrMinValidationsTooLow)
	})

	e.DeployContract(t, c, nil)
	gov := e.CommitteeInvoker(c.Hash)

	gov.Invoke(t, hashItem(e.CommitteeHash), "authority")
	gov.Invoke(t, trainerconst.DefaultMinValidations, "minValidations")
	gov.Invoke(t, common.Version, "version")

	s, err := gov.TestInvoke(t, "params")
	require.NoError(t, err)

	var params rpctrainer.Governance
	require.NoError(t, params.FromStackItem(s.Pop().Item()))
	require.Equal(t, e.CommitteeHash, params.Authority)
	require.EqualValues(t, trainerconst.DefaultMinValidations, params.MinValidations.Int64())
}

func TestTrainer_DeployAuthority(t *testing.T) {
	e := newExecutor(t)
	authority := e.NewAccount(t)

	h := deployTrainerContract(t, e, []any{authority.ScriptHash(), int64(2)})
	inv := e.NewInvoker(h, authority)

	inv.Invoke(t, hashItem(authority.ScriptHash()), "authority")
	inv.Invoke(t, 2, "minValidations")

	s, err := inv.TestInvoke(t, "params")
	require.NoError(t, err)

	fields := s.Pop().Array()
	require.Len(t, fields, 2)
	require.Equal(t, stackitem.ByteArrayT, fields[0].Type())
	require.Equal(t, authority.ScriptHash().BytesBE(), fields[0].Value())

	inv.Invoke(t, stackitem.Null{}, "setMinValidations", int64(3))
	inv.Invoke(t, hashItem(authority.ScriptHash()), "authority")
	inv.Invoke(t, 3, "minValidations")
}

func TestTrainer_Governance(t *testing.T) {
	env := newTrainerEnv(t, 3)
	stranger := env.gov.WithSigners(env.e.NewAccount(t))

	t.Run("min validations", func(t *testing.T) {
		stranger.InvokeFail(t, trainerconst.ErrWrongAuthority, "setMinValidations", int64(2))
		env.gov.InvokeFail(t, trainerconst.ErrMinValidationsTooLow, "setMinValidations", int64(0))

		env.gov.Invoke(t, stackitem.Null{}, "setMinValidations", int64(2))
		env.gov.Invoke(t, 2, "minValidations")
	})

	t.Run("trainers", func(t *testing.T) {
		acc := env.e.NewAccount(t)

		stranger.InvokeFail(t, trainerconst.ErrWrongAuthority, "registerTrainer", acc.ScriptHash())
		env.gov.Invoke(t, false, "isTrainer", acc.ScriptHash())
		env.gov.InvokeFail(t, trainerconst.ErrUnregisteredTrainer, "unregisterTrainer", acc.ScriptHash())

		env.gov.Invoke(t, stackitem.Null{}, "registerTrainer", acc.ScriptHash())
		env.gov.Invoke(t, true, "isTrainer", acc.ScriptHash())

		stranger.InvokeFail(t, trainerconst.ErrWrongAuthority, "unregisterTrainer", acc.ScriptHash())
		env.gov.Invoke(t, stackitem.Null{}, "unregisterTrainer", acc.ScriptHash())
		env.gov.Invoke(t, false, "isTrainer", acc.ScriptHash())

		env.gov.WithSigners(acc).InvokeFail(t, trainerconst.ErrUnregisteredTrainer, "createExercise",
			acc.ScriptHash(), randomCID(), int64(3), env.now(t)+farTimeout)
	})

	t.Run("authority", func(t *testing.T) {
		newAuthority := env.e.NewAccount(t)

		stranger.InvokeFail(t, trainerconst.ErrWrongAuthority, "setAuthority", newAuthority.ScriptHash())
		env.gov.InvokeFail(t, trainerconst.ErrWrongAuthority, "setAuthority", []byte{1, 2, 3})

		env.gov.Invoke(t, stackitem.Null{}, "setAuthority", newAuthority.ScriptHash())
		env.gov.Invoke(t, hashItem(newAuthority.ScriptHash()), "authority")

		env.gov.InvokeFail(t, trainerconst.ErrWrongAuthority, "setMinValidations", int64(4))
		env.gov.WithSigners(newAuthority).Invoke(t, stackitem.Null{}, "setMinValidations", int64(4))
	})
}

func TestTrainer_CreateTrader(t *testing.T) {
	env := newTrainerEnv(t, 1)
	user := env.e.NewAccount(t)
	userInv := env.gov.WithSigners(user)

	const name = "alice"

	addr, bump, err := rpctrainer.TraderAddress(env.hash, user.ScriptHash(), name)
	require.NoError(t, err)

	env.gov.Invoke(t, hashItem(addr), "traderAddress", user.ScriptHash(), name)

	t.Run("without witness", func(t *testing.T) {
		env.gov.InvokeFail(t, trainerconst.ErrWrongUser, "createTrader", user.ScriptHash(), name)
	})

	t.Run("invalid name", func(t *testing.T) {
		userInv.InvokeFail(t, trainerconst.ErrInvalidName, "createTrader", user.ScriptHash(), "")
		userInv.InvokeFail(t, trainerconst.ErrInvalidName, "createTrader", user.ScriptHash(),
			strings.Repeat("a", trainerconst.MaxNameLength+1))
	})

	h := userInv.Invoke(t, hashItem(addr), "createTrader", user.ScriptHash(), name)
	env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: env.hash,
		Name:       "NewTrader",
		Item: stackitem.NewArray([]stackitem.Item{
			hashItem(addr),
			hashItem(user.ScriptHash()),
			stackitem.Make(name),
			stackitem.Make(env.now(t)),
		}),
	})

	tr := env.getTrader(t, addr)
	require.Equal(t, user.ScriptHash(), tr.User)
	require.Equal(t, name, tr.Name)
	require.Zero(t, tr.Performance.Sign())
	require.Zero(t, tr.Ranking.Sign())
	require.Zero(t, tr.League.Sign())
	require.EqualValues(t, bump, tr.Bump.Int64())

	userInv.InvokeFail(t, trainerconst.ErrTraderExists, "createTrader", user.ScriptHash(), name)

	t.Run("longest name", func(t *testing.T) {
		long := strings.Repeat("b", trainerconst.MaxNameLength)
		other := env.newTraderOf(t, user, long)
		require.NotEqual(t, addr, other)
		require.Equal(t, long, env.getTrader(t, other).Name)
	})

	t.Run("ranking", func(t *testing.T) {
		userInv.InvokeFail(t, trainerconst.ErrWrongAuthority, "setRanking", addr, int64(1), int64(1))
		env.gov.InvokeFail(t, trainerconst.ErrInvalidRanking, "setRanking", addr, int64(-1), int64(1))
		env.gov.InvokeFail(t, trainerconst.ErrInvalidRanking, "setRanking", addr, int64(1), int64(trainerconst.MaxLeague+1))
		env.gov.InvokeFail(t, trainerconst.ErrTraderNotFound, "setRanking", util.Uint160{1}, int64(1), int64(1))

		env.gov.Invoke(t, stackitem.Null{}, "setRanking", addr, int64(12), int64(3))

		tr := env.getTrader(t, addr)
		require.EqualValues(t, 12, tr.Ranking.Int64())
		require.EqualValues(t, 3, tr.League.Int64())
	})

	t.Run("list", func(t *testing.T) {
		s, err := env.gov.TestInvoke(t, "traders")
		require.NoError(t, err)

		items := iteratorToArray(s.Pop().Interop().Value().(*storage.Iterator))
		records, err := rpctrainer.TraderRecordsFromItems(items)
		require.NoError(t, err)
		require.Len(t, records, 2)
	})

	env.gov.InvokeFail(t, trainerconst.ErrTraderNotFound, "getTrader", util.Uint160{1})
}

func TestTrainer_CreateExercise(t *testing.T) {
	env := newTrainerEnv(t, 3)
	authority := env.trainer.ScriptHash()
	timeout := env.now(t) + farTimeout

	t.Run("without witness", func(t *testing.T) {
		env.gov.InvokeFail(t, trainerconst.ErrWrongExerciseCreator, "createExercise",
			authority, randomCID(), int64(3), timeout)
	})

	t.Run("invalid cid", func(t *testing.T) {
		env.trainerInv.InvokeFail(t, trainerconst.ErrInvalidCID, "createExercise",
			authority, "", int64(3), timeout)
		env.trainerInv.InvokeFail(t, trainerconst.ErrInvalidCID, "createExercise",
			authority, strings.Repeat("Q", trainerconst.MaxCIDLength+1), int64(3), timeout)
	})

	t.Run("capacity", func(t *testing.T) {
		env.trainerInv.InvokeFail(t, trainerconst.ErrValidationsCapacityTooSmall, "createExercise",
			authority, randomCID(), int64(2), timeout)
		env.trainerInv.InvokeFail(t, trainerconst.ErrValidationsCapacityTooBig, "createExercise",
			authority, randomCID(), int64(trainerconst.MaxValidationsCapacity+1), timeout)
		env.trainerInv.InvokeFail(t, trainerconst.ErrRecordSizeExceeded, "createExercise",
			authority, randomCID(), int64(250), timeout)
	})

	t.Run("expired timeout", func(t *testing.T) {
		env.trainerInv.InvokeFail(t, trainerconst.ErrExpiredTimeout, "createExercise",
			authority, randomCID(), int64(3), env.now(t))
	})

	cid := randomCID()
	addr, bump, err := rpctrainer.ExerciseAddress(env.hash, authority, cid)
	require.NoError(t, err)

	env.gov.Invoke(t, hashItem(addr), "exerciseAddress", authority, cid)

	h := env.trainerInv.Invoke(t, hashItem(addr), "createExercise", authority, cid, int64(3), timeout)
	env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: env.hash,
		Name:       "NewExercise",
		Item: stackitem.NewArray([]stackitem.Item{
			hashItem(addr),
			stackitem.Make(cid),
			stackitem.Make(timeout),
			stackitem.Make(env.now(t)),
		}),
	})

	ex := env.getExercise(t, addr)
	require.False(t, ex.Sealed)
	require.Equal(t, cid, ex.Cid)
	require.Equal(t, authority, ex.Authority)
	require.EqualValues(t, timeout, ex.Timeout.Int64())
	require.False(t, ex.Revealed)
	require.Empty(t, ex.SolutionCid)
	require.EqualValues(t, 3, ex.ValidationsCapacity.Int64())
	require.Empty(t, ex.Validations)
	require.EqualValues(t, bump, ex.Bump.Int64())

	env.trainerInv.InvokeFail(t, trainerconst.ErrExerciseExists, "createExercise", authority, cid, int64(3), timeout)

	t.Run("min validations change", func(t *testing.T) {
		env.gov.Invoke(t, stackitem.Null{}, "setMinValidations", int64(10))
		require.EqualValues(t, 3, env.getExercise(t, addr).ValidationsCapacity.Int64())

		env.trainerInv.InvokeFail(t, trainerconst.ErrValidationsCapacityTooSmall, "createExercise",
			authority, randomCID(), int64(3), timeout)
	})

	env.gov.InvokeFail(t, trainerconst.ErrExerciseNotFound, "getExercise", util.Uint160{1})
}

func TestTrainer_AddValidation(t *testing.T) {
	env := newTrainerEnv(t, 1)
	exercise := env.newExercise(t, 3)

	user1, trader1 := env.newTrader(t, "first")
	user2, trader2 := env.newTrader(t, "second")
	user3, trader3 := env.newTrader(t, "third")
	user4, trader4 := env.newTrader(t, "fourth")

	t.Run("lookups", func(t *testing.T) {
		env.gov.WithSigners(user1).InvokeFail(t, trainerconst.ErrExerciseNotFound, "addValidation",
			util.Uint160{1}, trader1, user1.ScriptHash(), int64(1))
		env.gov.WithSigners(user1).InvokeFail(t, trainerconst.ErrTraderNotFound, "addValidation",
			exercise, util.Uint160{1}, user1.ScriptHash(), int64(1))
	})

	t.Run("wrong user", func(t *testing.T) {
		// user2 signs for the trader of user1
		env.gov.WithSigners(user2).InvokeFail(t, trainerconst.ErrWrongUser, "addValidation",
			exercise, trader1, user2.ScriptHash(), int64(1))
		// user1 is not a witness
		env.gov.WithSigners(user2).InvokeFail(t, trainerconst.ErrWrongUser, "addValidation",
			exercise, trader1, user1.ScriptHash(), int64(1))
	})

	t.Run("value out of range", func(t *testing.T) {
		tooBig := new(big.Int).Lsh(big.NewInt(1), 63)
		env.gov.WithSigners(user1).InvokeFail(t, trainerconst.ErrValueOutOfRange, "addValidation",
			exercise, trader1, user1.ScriptHash(), tooBig)
	})

	h := env.addValidation(t, user1, exercise, trader1, -10)
	env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: env.hash,
		Name:       "NewValidation",
		Item: stackitem.NewArray([]stackitem.Item{
			hashItem(exercise),
			hashItem(user1.ScriptHash()),
			stackitem.Make(0),
			stackitem.Make(-10),
			stackitem.Make(env.now(t)),
		}),
	})

	t.Run("duplicate", func(t *testing.T) {
		env.gov.WithSigners(user1).InvokeFail(t, trainerconst.ErrDuplicatedValidation, "addValidation",
			exercise, trader1, user1.ScriptHash(), int64(2))

		// another trader of the same user
		other := env.newTraderOf(t, user1, "first-other")
		env.gov.WithSigners(user1).InvokeFail(t, trainerconst.ErrDuplicatedValidation, "addValidation",
			exercise, other, user1.ScriptHash(), int64(2))
	})

	env.addValidation(t, user2, exercise, trader2, 20)
	require.False(t, env.getExercise(t, exercise).Sealed)

	h = env.addValidation(t, user3, exercise, trader3, 30)
	env.e.CheckTxNotificationEvent(t, h, 1, state.NotificationEvent{
		ScriptHash: env.hash,
		Name:       "ExerciseSealed",
		Item: stackitem.NewArray([]stackitem.Item{
			hashItem(exercise),
			stackitem.Make(env.now(t)),
		}),
	})

	ex := env.getExercise(t, exercise)
	require.True(t, ex.Sealed)
	require.Len(t, ex.Validations, 3)
	for i, tr := range []util.Uint160{trader1, trader2, trader3} {
		require.Equal(t, tr, ex.Validations[i].Trader)
	}
	require.EqualValues(t, -10, ex.Validations[0].Value.Int64())
	require.Equal(t, user3.ScriptHash(), ex.Validations[2].User)

	env.gov.WithSigners(user4).InvokeFail(t, trainerconst.ErrExerciseSealed, "addValidation",
		exercise, trader4, user4.ScriptHash(), int64(40))
}

func TestTrainer_Timeout(t *testing.T) {
	env := newTrainerEnv(t, 1)
	user, trader := env.newTrader(t, "late")

	env.e.AddNewBlock(t)
	prev := env.now(t)
	env.e.AddNewBlock(t)
	delta := env.now(t) - prev
	require.Positive(t, delta)

	timeout := env.now(t) + 5*delta
	exercise := env.newExerciseWithTimeout(t, 3, timeout)

	for i := 0; env.now(t) <= timeout; i++ {
		require.Less(t, i, 100, "block time doesn't grow")
		env.e.AddNewBlock(t)
	}

	h := env.gov.WithSigners(user).Invoke(t, false, "addValidation", exercise, trader, user.ScriptHash(), int64(1))
	env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: env.hash,
		Name:       "ExerciseSealed",
		Item: stackitem.NewArray([]stackitem.Item{
			hashItem(exercise),
			stackitem.Make(env.now(t)),
		}),
	})
	require.ErrorIs(t, rpctrainer.AddValidationResult(applicationLog(t, env.e, h)), rpctrainer.ErrExerciseTimeout)

	ex := env.getExercise(t, exercise)
	require.True(t, ex.Sealed)
	require.Empty(t, ex.Validations)

	env.gov.WithSigners(user).InvokeFail(t, trainerconst.ErrExerciseSealed, "addValidation",
		exercise, trader, user.ScriptHash(), int64(1))
}

func TestTrainer_CheckValidation(t *testing.T) {
	env := newTrainerEnv(t, trainerconst.DefaultMinValidations)
	exercise := env.newExercise(t, 5)

	values := []int64{-10, 0, 10, 50, 100}
	expected := []int64{30, 35, 40, 40, 15}
	const outcome = 30

	traders := make([]util.Uint160, len(values))
	for i := range values {
		user, tr := env.newTrader(t, "trader"+string(rune('a'+i)))
		traders[i] = tr
		env.addValidation(t, user, exercise, tr, values[i])
	}
	require.True(t, env.getExercise(t, exercise).Sealed)

	env.trainerInv.InvokeFail(t, trainerconst.ErrOutcomeNotRevealed, "checkValidation", exercise, traders[4], int64(4))

	t.Run("outcome", func(t *testing.T) {
		env.gov.InvokeFail(t, trainerconst.ErrWrongExerciseCreator, "addOutcome", exercise, int64(outcome), "")
		env.trainerInv.InvokeFail(t, trainerconst.ErrInvalidCID, "addOutcome", exercise, int64(outcome),
			strings.Repeat("Q", trainerconst.MaxCIDLength+1))

		// correction is allowed
		env.trainerInv.Invoke(t, stackitem.Null{}, "addOutcome", exercise, int64(outcome+1), "")
		solution := randomCID()
		env.trainerInv.Invoke(t, stackitem.Null{}, "addOutcome", exercise, int64(outcome), solution)

		ex := env.getExercise(t, exercise)
		require.True(t, ex.Revealed)
		require.EqualValues(t, outcome, ex.Outcome.Int64())
		require.Equal(t, solution, ex.SolutionCid)
	})

	env.gov.InvokeFail(t, trainerconst.ErrWrongExerciseCreator, "checkValidation", exercise, traders[4], int64(4))
	env.trainerInv.InvokeFail(t, trainerconst.ErrInvalidValidationIndex, "checkValidation", exercise, traders[4], int64(5))
	env.trainerInv.InvokeFail(t, trainerconst.ErrInvalidValidationIndex, "checkValidation", exercise, traders[4], int64(-1))
	env.trainerInv.InvokeFail(t, trainerconst.ErrWrongValidationIndex, "checkValidation", exercise, traders[3], int64(4))

	for i := len(values) - 1; i >= 0; i-- {
		h := env.trainerInv.Invoke(t, stackitem.Null{}, "checkValidation", exercise, traders[i], int64(i))
		env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
			ScriptHash: env.hash,
			Name:       "ValidationChecked",
			Item: stackitem.NewArray([]stackitem.Item{
				hashItem(exercise),
				hashItem(traders[i]),
				stackitem.Make(i),
				stackitem.Make(expected[i]),
			}),
		})

		if i == 0 {
			env.e.CheckTxNotificationEvent(t, h, 1, state.NotificationEvent{
				ScriptHash: env.hash,
				Name:       "ExerciseValidated",
				Item: stackitem.NewArray([]stackitem.Item{
					hashItem(exercise),
					stackitem.Make(env.now(t)),
				}),
			})
		} else {
			require.Len(t, env.getExercise(t, exercise).Validations, i)
		}
	}

	for i := range traders {
		require.EqualValues(t, expected[i], env.getTrader(t, traders[i]).Performance.Int64())

		hist := env.history(t, traders[i])
		require.Len(t, hist, 1)
		require.Equal(t, exercise, hist[0].Exercise)
		require.EqualValues(t, values[i], hist[0].Value.Int64())
		require.EqualValues(t, outcome, hist[0].Outcome.Int64())
		require.EqualValues(t, grading.Rate(int(values[i]), outcome), hist[0].Rate.Int64())
		require.EqualValues(t, expected[i], hist[0].Performance.Int64())
	}

	env.gov.InvokeFail(t, trainerconst.ErrExerciseNotFound, "getExercise", exercise)
}

func TestTrainer_CheckValidationShift(t *testing.T) {
	env := newTrainerEnv(t, 1)
	exercise := env.newExercise(t, 3)

	traders := make([]util.Uint160, 3)
	for i := range traders {
		user, tr := env.newTrader(t, "shift"+string(rune('a'+i)))
		traders[i] = tr
		env.addValidation(t, user, exercise, tr, int64(i))
	}
	env.trainerInv.Invoke(t, stackitem.Null{}, "addOutcome", exercise, int64(0), "")

	env.trainerInv.Invoke(t, stackitem.Null{}, "checkValidation", exercise, traders[0], int64(0))

	// the second validation has moved to the first position
	env.trainerInv.InvokeFail(t, trainerconst.ErrInvalidValidationIndex, "checkValidation", exercise, traders[2], int64(2))
	env.trainerInv.InvokeFail(t, trainerconst.ErrWrongValidationIndex, "checkValidation", exercise, traders[1], int64(1))
	env.trainerInv.Invoke(t, stackitem.Null{}, "checkValidation", exercise, traders[1], int64(0))

	t.Run("by trader", func(t *testing.T) {
		env.trainerInv.InvokeFail(t, trainerconst.ErrWrongValidationIndex, "checkValidationOf", exercise, traders[0])
		env.gov.InvokeFail(t, trainerconst.ErrWrongExerciseCreator, "checkValidationOf", exercise, traders[2])

		h := env.trainerInv.Invoke(t, stackitem.Null{}, "checkValidationOf", exercise, traders[2])
		env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
			ScriptHash: env.hash,
			Name:       "ValidationChecked",
			Item: stackitem.NewArray([]stackitem.Item{
				hashItem(exercise),
				hashItem(traders[2]),
				stackitem.Make(0),
				stackitem.Make(grading.Grade(0, 2, 0)),
			}),
		})
	})

	env.gov.InvokeFail(t, trainerconst.ErrExerciseNotFound, "getExercise", exercise)
}

func TestTrainer_CloseExercise(t *testing.T) {
	env := newTrainerEnv(t, 1)
	exercise := env.newExercise(t, 2)

	user, trader := env.newTrader(t, "closer")
	env.addValidation(t, user, exercise, trader, 7)

	env.gov.WithSigners(user).InvokeFail(t, trainerconst.ErrWrongExerciseCreator, "closeExercise", exercise)

	h := env.trainerInv.Invoke(t, stackitem.Null{}, "closeExercise", exercise)
	env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: env.hash,
		Name:       "ExerciseClosed",
		Item: stackitem.NewArray([]stackitem.Item{
			hashItem(exercise),
			stackitem.Make(env.now(t)),
		}),
	})

	env.gov.InvokeFail(t, trainerconst.ErrExerciseNotFound, "getExercise", exercise)
	env.trainerInv.InvokeFail(t, trainerconst.ErrExerciseNotFound, "closeExercise", exercise)

	// unchecked validation doesn't affect the trader
	require.Zero(t, env.getTrader(t, trader).Performance.Sign())
	require.Empty(t, env.history(t, trader))
}

func TestTrainer_History(t *testing.T) {
	env := newTrainerEnv(t, 1)
	user, trader := env.newTrader(t, "regular")

	const rounds = trainerconst.HistoryCapacity + 2

	performance := 0
	exercises := make([]util.Uint160, rounds)
	for i := 0; i < rounds; i++ {
		exercises[i] = env.newExercise(t, 1)
		env.addValidation(t, user, exercises[i], trader, int64(i))
		env.trainerInv.Invoke(t, stackitem.Null{}, "addOutcome", exercises[i], int64(i), "")
		env.trainerInv.Invoke(t, stackitem.Null{}, "checkValidation", exercises[i], trader, int64(0))
		performance = grading.Grade(performance, i, i)
	}

	hist := env.history(t, trader)
	require.Len(t, hist, trainerconst.HistoryCapacity)

	for i := range hist {
		round := i + rounds - trainerconst.HistoryCapacity
		require.Equal(t, exercises[round], hist[i].Exercise)
		require.EqualValues(t, round, hist[i].Value.Int64())
		require.EqualValues(t, grading.MaxRate, hist[i].Rate.Int64())
		if i > 0 {
			require.Less(t, hist[i-1].Timestamp.Int64(), hist[i].Timestamp.Int64())
		}
	}

	require.EqualValues(t, performance, hist[len(hist)-1].Performance.Int64())
	require.EqualValues(t, performance, env.getTrader(t, trader).Performance.Int64())
}

func TestTrainer_Exercises(t *testing.T) {
	env := newTrainerEnv(t, 1)
	user, trader := env.newTrader(t, "lister")

	open := env.newExercise(t, 2)
	sealed := env.newExercise(t, 1)
	env.addValidation(t, user, sealed, trader, 1)

	s, err := env.gov.TestInvoke(t, "exercises")
	require.NoError(t, err)

	items := iteratorToArray(s.Pop().Interop().Value().(*storage.Iterator))
	records, err := rpctrainer.ExerciseRecordsFromItems(items)
	require.NoError(t, err)
	require.Len(t, records, 2)

	isSealed := true
	res := rpctrainer.FilterExercises(records, rpctrainer.ExerciseFilter{Sealed: &isSealed})
	require.Len(t, res, 1)
	require.Equal(t, sealed, res[0].Address)

	isSealed = false
	res = rpctrainer.FilterExercises(records, rpctrainer.ExerciseFilter{Sealed: &isSealed})
	require.Len(t, res, 1)
	require.Equal(t, open, res[0].Address)
	require.Equal(t, env.getExercise(t, open).Cid, res[0].Exercise.Cid)
}
