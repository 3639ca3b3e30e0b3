package trainer

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/tradetrainer/trainer-contract/common"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/trainerconst"
)

// Governance is a set of global contract parameters.
type Governance struct {
	Authority      interop.Hash160
	MinValidations int
}

func initializeParams(ctx storage.Context, authority interop.Hash160, minValidations int) {
	if len(authority) != interop.Hash160Len {
		panic(trainerconst.ErrWrongAuthority)
	}
	if minValidations < 1 {
		panic(trainerconst.ErrMinValidationsTooLow)
	}

	putParams(ctx, Governance{
		Authority:      authority,
		MinValidations: minValidations,
	})
}

// Authority must be read back as ByteString, raw storage values are never
// asserted to interop.Hash160.
func getParams(ctx storage.Context) Governance {
	return common.GetSerialized(ctx, paramsKey).(Governance)
}

func putParams(ctx storage.Context, params Governance) {
	common.SetSerialized(ctx, paramsKey, params)
}

func checkAuthority(ctx storage.Context) Governance {
	params := getParams(ctx)
	common.CheckWitness(params.Authority, trainerconst.ErrWrongAuthority)
	return params
}

// Authority method returns the governance authority address.
func Authority() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getParams(ctx).Authority
}

// MinValidations method returns the minimal validations capacity of new
// exercises.
func MinValidations() int {
	ctx := storage.GetReadOnlyContext()
	return getParams(ctx).MinValidations
}

// Params method returns all governance parameters.
func Params() Governance {
	ctx := storage.GetReadOnlyContext()
	return getParams(ctx)
}

// SetAuthority method transfers governance to the new authority. It must be
// witnessed by the current authority.
func SetAuthority(newAuthority interop.Hash160) {
	ctx := storage.GetContext()
	params := checkAuthority(ctx)

	if len(newAuthority) != interop.Hash160Len {
		panic(trainerconst.ErrWrongAuthority)
	}

	params.Authority = newAuthority
	putParams(ctx, params)
	runtime.Log("authority changed")
}

// SetMinValidations method changes the minimal validations capacity. Already
// created exercises keep their capacity.
func SetMinValidations(count int) {
	ctx := storage.GetContext()
	params := checkAuthority(ctx)

	if count < 1 {
		panic(trainerconst.ErrMinValidationsTooLow)
	}

	params.MinValidations = count
	putParams(ctx, params)
	runtime.Log("min validations changed")
}

// RegisterTrainer method allows the trainer to create exercises.
func RegisterTrainer(trainer interop.Hash160) {
	ctx := storage.GetContext()
	checkAuthority(ctx)

	if len(trainer) != interop.Hash160Len {
		panic(trainerconst.ErrUnregisteredTrainer)
	}

	storage.Put(ctx, trainerKey(trainer), []byte{1})
	runtime.Log("trainer registered")
}

// UnregisterTrainer method revokes exercise creation rights of the trainer.
// Existing exercises of the trainer stay untouched.
func UnregisterTrainer(trainer interop.Hash160) {
	ctx := storage.GetContext()
	checkAuthority(ctx)

	if !isTrainer(ctx, trainer) {
		panic(trainerconst.ErrUnregisteredTrainer)
	}

	storage.Delete(ctx, trainerKey(trainer))
	runtime.Log("trainer unregistered")
}

// IsTrainer method checks whether the address is a registered trainer.
func IsTrainer(trainer interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return isTrainer(ctx, trainer)
}

func isTrainer(ctx storage.Context, trainer interop.Hash160) bool {
	return storage.Get(ctx, trainerKey(trainer)) != nil
}

func trainerKey(trainer interop.Hash160) []byte {
	return append([]byte{trainerPrefix}, trainer...)
}
