package trainer

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/tradetrainer/trainer-contract/common"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/grading"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/layout"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/trainerconst"
)

// Exercise is a challenge published by a trainer. Validations are accepted
// until the exercise is sealed, either by reaching the capacity or by
// timeout.
type Exercise struct {
	Sealed              bool
	Cid                 string
	Authority           interop.Hash160
	Timeout             int
	Outcome             int
	Revealed            bool
	SolutionCid         string
	ValidationsCapacity int
	Validations         []Validation
	Bump                int
}

// CreateExercise method publishes a new exercise and returns its address.
// The authority must be a registered trainer and witness the transaction.
// Timeout is a block timestamp in milliseconds after which no validations
// are accepted.
//
// Produces NewExercise notification.
func CreateExercise(authority interop.Hash160, cid string, validationsCapacity int, timeout int) interop.Hash160 {
	ctx := storage.GetContext()

	if len(authority) != interop.Hash160Len {
		panic(trainerconst.ErrWrongExerciseCreator)
	}
	common.CheckWitness(authority, trainerconst.ErrWrongExerciseCreator)

	if !isTrainer(ctx, authority) {
		panic(trainerconst.ErrUnregisteredTrainer)
	}

	return createExercise(ctx, getParams(ctx), authority, cid, validationsCapacity, timeout)
}

func createExercise(ctx storage.Context, params Governance, authority interop.Hash160,
	cid string, capacity int, timeout int) interop.Hash160 {
	if len(cid) == 0 || len(cid) > trainerconst.MaxCIDLength {
		panic(trainerconst.ErrInvalidCID)
	}

	if capacity < params.MinValidations {
		panic(trainerconst.ErrValidationsCapacityTooSmall)
	}
	if capacity > trainerconst.MaxValidationsCapacity {
		panic(trainerconst.ErrValidationsCapacityTooBig)
	}
	if !layout.FitsRecord(layout.ExerciseSpace(cid, capacity)) {
		panic(trainerconst.ErrRecordSizeExceeded)
	}

	now := runtime.GetTime()
	if timeout <= now {
		panic(trainerconst.ErrExpiredTimeout)
	}

	address, bump := deriveAddress(exerciseSeeds(authority, cid))
	key := exerciseKey(address)
	if storage.Get(ctx, key) != nil {
		panic(trainerconst.ErrExerciseExists)
	}

	common.SetSerialized(ctx, key, Exercise{
		Cid:                 cid,
		Authority:           authority,
		Timeout:             timeout,
		ValidationsCapacity: capacity,
		Validations:         []Validation{},
		Bump:                bump,
	})

	runtime.Notify("NewExercise", address, cid, timeout, now)

	return address
}

// AddValidation method submits the value predicted by the trader. The
// transaction must be witnessed by the trader's user. The exercise is sealed
// when its capacity is reached.
//
// If the exercise timeout has passed, the exercise is sealed, ExerciseSealed
// notification is produced and false is returned. Otherwise it returns true.
//
// Produces NewValidation notification.
func AddValidation(exercise, trader, user interop.Hash160, value int) bool {
	ctx := storage.GetContext()

	ex := getExercise(ctx, exercise)
	t := getTrader(ctx, trader)

	common.CheckWitness(user, trainerconst.ErrWrongUser)
	if !t.User.Equals(user) {
		panic(trainerconst.ErrWrongUser)
	}

	if value > trainerconst.MaxInt64 || value < trainerconst.MinInt64 {
		panic(trainerconst.ErrValueOutOfRange)
	}

	if ex.Sealed {
		panic(trainerconst.ErrExerciseSealed)
	}

	now := runtime.GetTime()
	if ex.Timeout < now {
		ex.Sealed = true
		common.SetSerialized(ctx, exerciseKey(exercise), ex)
		runtime.Notify("ExerciseSealed", exercise, now)
		runtime.Log(trainerconst.ErrExerciseTimeout)
		return false
	}

	if hasValidation(ex.Validations, trader, user) {
		panic(trainerconst.ErrDuplicatedValidation)
	}

	index := len(ex.Validations)
	ex.Validations = append(ex.Validations, Validation{
		Value:  value,
		Trader: trader,
		User:   user,
	})
	if len(ex.Validations) >= ex.ValidationsCapacity {
		ex.Sealed = true
	}

	common.SetSerialized(ctx, exerciseKey(exercise), ex)

	runtime.Notify("NewValidation", exercise, user, index, value, now)
	if ex.Sealed {
		runtime.Notify("ExerciseSealed", exercise, now)
	}

	return true
}

// AddOutcome method reveals the exercise outcome and the identifier of its
// solution. Repeated calls overwrite previously revealed values. It must be
// witnessed by the exercise authority.
func AddOutcome(exercise interop.Hash160, outcome int, solutionCid string) {
	ctx := storage.GetContext()

	ex := getExercise(ctx, exercise)
	common.CheckWitness(ex.Authority, trainerconst.ErrWrongExerciseCreator)

	if outcome > trainerconst.MaxInt64 || outcome < trainerconst.MinInt64 {
		panic(trainerconst.ErrValueOutOfRange)
	}
	if len(solutionCid) > trainerconst.MaxCIDLength {
		panic(trainerconst.ErrInvalidCID)
	}

	ex.Outcome = outcome
	ex.Revealed = true
	ex.SolutionCid = solutionCid
	common.SetSerialized(ctx, exerciseKey(exercise), ex)

	runtime.Log("exercise outcome revealed")
}

// CheckValidation method grades the validation at index against the revealed
// outcome, updates the trader performance and removes the validation.
// Validations after index are shifted down by one, so the whole list is best
// checked from the highest index down. The exercise is deleted after its last
// validation is checked. It must be witnessed by the exercise authority.
//
// Produces ValidationChecked notification and ExerciseValidated notification
// for the last validation.
func CheckValidation(exercise, trader interop.Hash160, index int) {
	ctx := storage.GetContext()

	ex := getExercise(ctx, exercise)
	common.CheckWitness(ex.Authority, trainerconst.ErrWrongExerciseCreator)

	checkValidation(ctx, exercise, ex, trader, index)
}

// CheckValidationOf method is the same as CheckValidation but looks up the
// validation by the trader.
func CheckValidationOf(exercise, trader interop.Hash160) {
	ctx := storage.GetContext()

	ex := getExercise(ctx, exercise)
	common.CheckWitness(ex.Authority, trainerconst.ErrWrongExerciseCreator)

	index := indexOfValidation(ex.Validations, trader)
	if index < 0 {
		panic(trainerconst.ErrWrongValidationIndex)
	}

	checkValidation(ctx, exercise, ex, trader, index)
}

func checkValidation(ctx storage.Context, exercise interop.Hash160, ex Exercise, trader interop.Hash160, index int) {
	if index < 0 || index >= len(ex.Validations) {
		panic(trainerconst.ErrInvalidValidationIndex)
	}

	v := ex.Validations[index]
	if !v.Trader.Equals(trader) {
		panic(trainerconst.ErrWrongValidationIndex)
	}

	if !ex.Revealed {
		panic(trainerconst.ErrOutcomeNotRevealed)
	}

	t := getTrader(ctx, trader)
	t.Performance = grading.Grade(t.Performance, v.Value, ex.Outcome)
	common.SetSerialized(ctx, traderKey(trader), t)

	now := runtime.GetTime()
	appendHistory(ctx, trader, HistoryEntry{
		Exercise:    exercise,
		Value:       v.Value,
		Outcome:     ex.Outcome,
		Rate:        grading.Rate(v.Value, ex.Outcome),
		Performance: t.Performance,
		Timestamp:   now,
	})

	ex.Validations = removeValidation(ex.Validations, index)

	runtime.Notify("ValidationChecked", exercise, trader, index, t.Performance)

	if len(ex.Validations) == 0 {
		storage.Delete(ctx, exerciseKey(exercise))
		runtime.Notify("ExerciseValidated", exercise, now)
		return
	}

	common.SetSerialized(ctx, exerciseKey(exercise), ex)
}

// CloseExercise method deletes the exercise with all unchecked validations.
// It must be witnessed by the exercise authority.
//
// Produces ExerciseClosed notification.
func CloseExercise(exercise interop.Hash160) {
	ctx := storage.GetContext()

	ex := getExercise(ctx, exercise)
	common.CheckWitness(ex.Authority, trainerconst.ErrWrongExerciseCreator)

	storage.Delete(ctx, exerciseKey(exercise))

	runtime.Notify("ExerciseClosed", exercise, runtime.GetTime())
}

// GetExercise method returns the exercise stored by the address. It panics if
// there is no such exercise.
func GetExercise(exercise interop.Hash160) Exercise {
	ctx := storage.GetReadOnlyContext()
	return getExercise(ctx, exercise)
}

// ExerciseAddress method returns the address of the exercise of the authority
// with the given content identifier. The exercise may not exist.
func ExerciseAddress(authority interop.Hash160, cid string) interop.Hash160 {
	address, _ := deriveAddress(exerciseSeeds(authority, cid))
	return address
}

// Exercises method returns an iterator over all stored exercises. Each item is
// a pair of the exercise address and the Exercise structure.
func Exercises() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{exercisePrefix}, storage.RemovePrefix|storage.DeserializeValues)
}

func getExercise(ctx storage.Context, exercise interop.Hash160) Exercise {
	data := common.GetSerialized(ctx, exerciseKey(exercise))
	if data == nil {
		panic(trainerconst.ErrExerciseNotFound)
	}

	ex := data.(Exercise)
	checkBump(exerciseSeeds(ex.Authority, ex.Cid), ex.Bump, exercise)

	return ex
}

func exerciseKey(exercise interop.Hash160) []byte {
	return append([]byte{exercisePrefix}, exercise...)
}
