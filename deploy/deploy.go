/*
Package deploy synchronizes Trainer contract with the Neo blockchain.

Deploy is idempotent: it deploys the contract if it is missing, updates it if
the on-chain executable differs from the local one and does nothing
otherwise.
*/
package deploy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/tradetrainer/trainer-contract/rpc/trainer"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for contract synchronization.
type Blockchain interface {
	// GetContractStateByHash returns network state of the smart contract by
	// its address. It returns error with 'Unknown contract' substring if
	// requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Actor sends transactions and waits for their execution. It is implemented
// by [actor.Actor].
type Actor interface {
	Sender() util.Uint160
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// Prm groups parameters of the Trainer contract synchronization.
type Prm struct {
	// Writes progress into the log. Logging is disabled if not set.
	Logger *zap.Logger

	// Particular Neo blockchain instance.
	Blockchain Blockchain

	// Sends deployment transaction. Contract address is derived from its
	// sender.
	Actor Actor

	// Sends update transaction, it must be witnessed by the Neo committee.
	// Actor is used if not set.
	CommitteeActor Actor

	NEF      nef.File
	Manifest manifest.Manifest

	// Governance authority set on deployment. Neo committee is used if not
	// set.
	Authority *util.Uint160

	// Minimal validations capacity set on deployment. Contract default is
	// used if zero.
	MinValidations int64
}

// Deploy synchronizes Trainer contract from Prm with the blockchain and
// returns its address.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	contractHash := state.CreateContractHash(prm.Actor.Sender(), prm.NEF.Checksum, prm.Manifest.Name)
	log := prm.Logger
	if log == nil {
		log = zap.NewNop()
	}
	l := log.With(zap.Stringer("contract", contractHash))

	bNEF, err := prm.NEF.Bytes()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("encode NEF: %w", err)
	}

	bManifest, err := json.Marshal(prm.Manifest)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("encode manifest: %w", err)
	}

	onChain, err := prm.Blockchain.GetContractStateByHash(contractHash)
	if err != nil {
		if !isErrContractNotFound(err) {
			return util.Uint160{}, fmt.Errorf("get contract state: %w", err)
		}

		if err = ctx.Err(); err != nil {
			return util.Uint160{}, err
		}

		l.Info("contract is missing on the chain, deploying...")

		_, err = waitHalt(prm.Actor.Wait(prm.Actor.SendCall(management.Hash, "deploy",
			bNEF, bManifest, deployData(prm))))
		if err != nil {
			return util.Uint160{}, fmt.Errorf("deploy contract: %w", err)
		}

		l.Info("contract successfully deployed")

		return contractHash, nil
	}

	if onChain.NEF.Checksum == prm.NEF.Checksum {
		l.Info("contract is already up to date")
		return contractHash, nil
	}

	if err = ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	l.Info("contract executable differs from the local one, updating...",
		zap.Uint32("on-chain checksum", onChain.NEF.Checksum),
		zap.Uint32("local checksum", prm.NEF.Checksum))

	committeeActor := prm.CommitteeActor
	if committeeActor == nil {
		committeeActor = prm.Actor
	}

	_, err = waitHalt(committeeActor.Wait(committeeActor.SendCall(contractHash, "update",
		bNEF, bManifest, nil)))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("update contract: %w", err)
	}

	l.Info("contract successfully updated")

	return contractHash, nil
}

func deployData(prm Prm) []any {
	data := []any{nil, nil}
	if prm.Authority != nil {
		data[0] = *prm.Authority
	}
	if prm.MinValidations != 0 {
		data[1] = prm.MinValidations
	}
	return data
}

func waitHalt(res *state.AppExecResult, err error) (*state.AppExecResult, error) {
	if err != nil {
		return nil, err
	}
	if res.VMState != vmstate.Halt {
		return nil, trainer.ParseFault(fmt.Errorf("execution failed with %s state: %s", res.VMState, res.FaultException))
	}
	return res, nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}
