package trainer

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/tradetrainer/trainer-contract/common"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/trainerconst"
)

const (
	paramsKey = "g"

	trainerPrefix  = 'n'
	traderPrefix   = 't'
	exercisePrefix = 'e'
	cursorPrefix   = 'c'
	historyPrefix  = 'h'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	var (
		authority      interop.Hash160
		minValidations = trainerconst.DefaultMinValidations
	)

	if data != nil {
		args := data.(struct {
			authority      interop.Hash160
			minValidations any
		})
		if args.authority != nil {
			authority = args.authority
		}
		if args.minValidations != nil {
			minValidations = args.minValidations.(int)
		}
	}

	if len(authority) == 0 {
		authority = common.CommitteeAddress()
	}

	initializeParams(ctx, authority, minValidations)

	runtime.Log("trainer contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("trainer contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
