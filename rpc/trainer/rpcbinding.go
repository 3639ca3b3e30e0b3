// Package trainer contains RPC wrappers for Trainer contract.
package trainer

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Governance is a contract-specific trainer.Governance type used by its methods.
type Governance struct {
	Authority      util.Uint160
	MinValidations *big.Int
}

// Trader is a contract-specific trainer.Trader type used by its methods.
type Trader struct {
	User        util.Uint160
	Name        string
	Performance *big.Int
	Ranking     *big.Int
	League      *big.Int
	Bump        *big.Int
}

// Validation is a contract-specific trainer.Validation type used by its methods.
type Validation struct {
	Value  *big.Int
	Trader util.Uint160
	User   util.Uint160
}

// Exercise is a contract-specific trainer.Exercise type used by its methods.
type Exercise struct {
	Sealed              bool
	Cid                 string
	Authority           util.Uint160
	Timeout             *big.Int
	Outcome             *big.Int
	Revealed            bool
	SolutionCid         string
	ValidationsCapacity *big.Int
	Validations         []*Validation
	Bump                *big.Int
}

// HistoryEntry is a contract-specific trainer.HistoryEntry type used by its methods.
type HistoryEntry struct {
	Exercise    util.Uint160
	Value       *big.Int
	Outcome     *big.Int
	Rate        *big.Int
	Performance *big.Int
	Timestamp   *big.Int
}

// NewTraderEvent represents "NewTrader" event emitted by the contract.
type NewTraderEvent struct {
	Trader    util.Uint160
	User      util.Uint160
	Name      string
	Timestamp *big.Int
}

// NewExerciseEvent represents "NewExercise" event emitted by the contract.
type NewExerciseEvent struct {
	Exercise  util.Uint160
	Cid       string
	Timeout   *big.Int
	Timestamp *big.Int
}

// NewValidationEvent represents "NewValidation" event emitted by the contract.
type NewValidationEvent struct {
	Exercise  util.Uint160
	User      util.Uint160
	Index     *big.Int
	Value     *big.Int
	Timestamp *big.Int
}

// ExerciseSealedEvent represents "ExerciseSealed" event emitted by the contract.
type ExerciseSealedEvent struct {
	Exercise  util.Uint160
	Timestamp *big.Int
}

// ValidationCheckedEvent represents "ValidationChecked" event emitted by the contract.
type ValidationCheckedEvent struct {
	Exercise    util.Uint160
	Trader      util.Uint160
	Index       *big.Int
	Performance *big.Int
}

// ExerciseValidatedEvent represents "ExerciseValidated" event emitted by the contract.
type ExerciseValidatedEvent struct {
	Exercise  util.Uint160
	Timestamp *big.Int
}

// ExerciseClosedEvent represents "ExerciseClosed" event emitted by the contract.
type ExerciseClosedEvent struct {
	Exercise  util.Uint160
	Timestamp *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Hash returns the hash of the contract.
func (c *ContractReader) Hash() util.Uint160 {
	return c.hash
}

// Authority invokes `authority` method of contract.
func (c *ContractReader) Authority() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "authority"))
}

// MinValidations invokes `minValidations` method of contract.
func (c *ContractReader) MinValidations() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "minValidations"))
}

// Params invokes `params` method of contract.
func (c *ContractReader) Params() (*Governance, error) {
	return itemToGovernance(unwrap.Item(c.invoker.Call(c.hash, "params")))
}

// IsTrainer invokes `isTrainer` method of contract.
func (c *ContractReader) IsTrainer(trainer util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isTrainer", trainer))
}

// GetTrader invokes `getTrader` method of contract.
func (c *ContractReader) GetTrader(trader util.Uint160) (*Trader, error) {
	return itemToTrader(unwrap.Item(c.invoker.Call(c.hash, "getTrader", trader)))
}

// TraderAddress invokes `traderAddress` method of contract.
func (c *ContractReader) TraderAddress(user util.Uint160, name string) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "traderAddress", user, name))
}

// Traders invokes `traders` method of contract.
func (c *ContractReader) Traders() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "traders"))
}

// TradersExpanded is similar to Traders (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) TradersExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "traders", _numOfIteratorItems))
}

// History invokes `history` method of contract.
func (c *ContractReader) History(trader util.Uint160) ([]*HistoryEntry, error) {
	items, err := unwrap.Array(c.invoker.Call(c.hash, "history", trader))
	if err != nil {
		return nil, err
	}
	res := make([]*HistoryEntry, len(items))
	for i := range items {
		res[i], err = itemToHistoryEntry(items[i], nil)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// GetExercise invokes `getExercise` method of contract.
func (c *ContractReader) GetExercise(exercise util.Uint160) (*Exercise, error) {
	return itemToExercise(unwrap.Item(c.invoker.Call(c.hash, "getExercise", exercise)))
}

// ExerciseAddress invokes `exerciseAddress` method of contract.
func (c *ContractReader) ExerciseAddress(authority util.Uint160, cid string) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "exerciseAddress", authority, cid))
}

// Exercises invokes `exercises` method of contract.
func (c *ContractReader) Exercises() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "exercises"))
}

// ExercisesExpanded is similar to Exercises (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ExercisesExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "exercises", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CreateTrader creates a transaction invoking `createTrader` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateTrader(user util.Uint160, name string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createTrader", user, name)
}

// CreateTraderTransaction creates a transaction invoking `createTrader` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateTraderTransaction(user util.Uint160, name string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createTrader", user, name)
}

// CreateTraderUnsigned creates a transaction invoking `createTrader` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateTraderUnsigned(user util.Uint160, name string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createTrader", nil, user, name)
}

// SetRanking creates a transaction invoking `setRanking` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetRanking(trader util.Uint160, ranking *big.Int, league *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setRanking", trader, ranking, league)
}

// SetRankingTransaction creates a transaction invoking `setRanking` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetRankingTransaction(trader util.Uint160, ranking *big.Int, league *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setRanking", trader, ranking, league)
}

// SetRankingUnsigned creates a transaction invoking `setRanking` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetRankingUnsigned(trader util.Uint160, ranking *big.Int, league *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setRanking", nil, trader, ranking, league)
}

// CreateExercise creates a transaction invoking `createExercise` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateExercise(authority util.Uint160, cid string, validationsCapacity *big.Int, timeout *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createExercise", authority, cid, validationsCapacity, timeout)
}

// CreateExerciseTransaction creates a transaction invoking `createExercise` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateExerciseTransaction(authority util.Uint160, cid string, validationsCapacity *big.Int, timeout *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createExercise", authority, cid, validationsCapacity, timeout)
}

// CreateExerciseUnsigned creates a transaction invoking `createExercise` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateExerciseUnsigned(authority util.Uint160, cid string, validationsCapacity *big.Int, timeout *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createExercise", nil, authority, cid, validationsCapacity, timeout)
}

// AddValidation creates a transaction invoking `addValidation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddValidation(exercise util.Uint160, trader util.Uint160, user util.Uint160, value *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addValidation", exercise, trader, user, value)
}

// AddValidationTransaction creates a transaction invoking `addValidation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddValidationTransaction(exercise util.Uint160, trader util.Uint160, user util.Uint160, value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addValidation", exercise, trader, user, value)
}

// AddValidationUnsigned creates a transaction invoking `addValidation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddValidationUnsigned(exercise util.Uint160, trader util.Uint160, user util.Uint160, value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addValidation", nil, exercise, trader, user, value)
}

// AddOutcome creates a transaction invoking `addOutcome` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddOutcome(exercise util.Uint160, outcome *big.Int, solutionCid string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addOutcome", exercise, outcome, solutionCid)
}

// AddOutcomeTransaction creates a transaction invoking `addOutcome` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddOutcomeTransaction(exercise util.Uint160, outcome *big.Int, solutionCid string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addOutcome", exercise, outcome, solutionCid)
}

// AddOutcomeUnsigned creates a transaction invoking `addOutcome` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddOutcomeUnsigned(exercise util.Uint160, outcome *big.Int, solutionCid string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addOutcome", nil, exercise, outcome, solutionCid)
}

// CheckValidation creates a transaction invoking `checkValidation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CheckValidation(exercise util.Uint160, trader util.Uint160, index *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "checkValidation", exercise, trader, index)
}

// CheckValidationTransaction creates a transaction invoking `checkValidation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CheckValidationTransaction(exercise util.Uint160, trader util.Uint160, index *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "checkValidation", exercise, trader, index)
}

// CheckValidationUnsigned creates a transaction invoking `checkValidation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CheckValidationUnsigned(exercise util.Uint160, trader util.Uint160, index *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "checkValidation", nil, exercise, trader, index)
}

// CheckValidationOf creates a transaction invoking `checkValidationOf` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CheckValidationOf(exercise util.Uint160, trader util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "checkValidationOf", exercise, trader)
}

// CheckValidationOfTransaction creates a transaction invoking `checkValidationOf` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CheckValidationOfTransaction(exercise util.Uint160, trader util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "checkValidationOf", exercise, trader)
}

// CheckValidationOfUnsigned creates a transaction invoking `checkValidationOf` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CheckValidationOfUnsigned(exercise util.Uint160, trader util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "checkValidationOf", nil, exercise, trader)
}

// CloseExercise creates a transaction invoking `closeExercise` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CloseExercise(exercise util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "closeExercise", exercise)
}

// CloseExerciseTransaction creates a transaction invoking `closeExercise` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CloseExerciseTransaction(exercise util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "closeExercise", exercise)
}

// CloseExerciseUnsigned creates a transaction invoking `closeExercise` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CloseExerciseUnsigned(exercise util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "closeExercise", nil, exercise)
}

// SetAuthority creates a transaction invoking `setAuthority` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAuthority(newAuthority util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAuthority", newAuthority)
}

// SetAuthorityTransaction creates a transaction invoking `setAuthority` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAuthorityTransaction(newAuthority util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAuthority", newAuthority)
}

// SetAuthorityUnsigned creates a transaction invoking `setAuthority` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAuthorityUnsigned(newAuthority util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAuthority", nil, newAuthority)
}

// SetMinValidations creates a transaction invoking `setMinValidations` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMinValidations(count *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMinValidations", count)
}

// SetMinValidationsTransaction creates a transaction invoking `setMinValidations` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMinValidationsTransaction(count *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMinValidations", count)
}

// SetMinValidationsUnsigned creates a transaction invoking `setMinValidations` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMinValidationsUnsigned(count *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMinValidations", nil, count)
}

// RegisterTrainer creates a transaction invoking `registerTrainer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterTrainer(trainer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerTrainer", trainer)
}

// RegisterTrainerTransaction creates a transaction invoking `registerTrainer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterTrainerTransaction(trainer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerTrainer", trainer)
}

// RegisterTrainerUnsigned creates a transaction invoking `registerTrainer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterTrainerUnsigned(trainer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerTrainer", nil, trainer)
}

// UnregisterTrainer creates a transaction invoking `unregisterTrainer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UnregisterTrainer(trainer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unregisterTrainer", trainer)
}

// UnregisterTrainerTransaction creates a transaction invoking `unregisterTrainer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnregisterTrainerTransaction(trainer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unregisterTrainer", trainer)
}

// UnregisterTrainerUnsigned creates a transaction invoking `unregisterTrainer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnregisterTrainerUnsigned(trainer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unregisterTrainer", nil, trainer)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToGovernance converts stack item into *Governance.
func itemToGovernance(item stackitem.Item, err error) (*Governance, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Governance)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Governance from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Governance) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Authority, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	res.MinValidations, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinValidations: %w", err)
	}

	return nil
}

// itemToTrader converts stack item into *Trader.
func itemToTrader(item stackitem.Item, err error) (*Trader, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Trader)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Trader from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Trader) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.User, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	res.Name, err = itemToUTF8String(arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Performance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Performance: %w", err)
	}

	index++
	res.Ranking, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Ranking: %w", err)
	}

	index++
	res.League, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field League: %w", err)
	}

	index++
	res.Bump, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bump: %w", err)
	}

	return nil
}

// itemToValidation converts stack item into *Validation.
func itemToValidation(item stackitem.Item, err error) (*Validation, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Validation)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Validation from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Validation) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	index++
	res.Trader, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Trader: %w", err)
	}

	index++
	res.User, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	return nil
}

// itemToExercise converts stack item into *Exercise.
func itemToExercise(item stackitem.Item, err error) (*Exercise, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Exercise)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Exercise from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Exercise) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 10 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Sealed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Sealed: %w", err)
	}

	index++
	res.Cid, err = itemToUTF8String(arr[index])
	if err != nil {
		return fmt.Errorf("field Cid: %w", err)
	}

	index++
	res.Authority, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	res.Timeout, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timeout: %w", err)
	}

	index++
	res.Outcome, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Outcome: %w", err)
	}

	index++
	res.Revealed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Revealed: %w", err)
	}

	index++
	res.SolutionCid, err = itemToUTF8String(arr[index])
	if err != nil {
		return fmt.Errorf("field SolutionCid: %w", err)
	}

	index++
	res.ValidationsCapacity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ValidationsCapacity: %w", err)
	}

	index++
	res.Validations, err = itemToValidations(arr[index])
	if err != nil {
		return fmt.Errorf("field Validations: %w", err)
	}

	index++
	res.Bump, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bump: %w", err)
	}

	return nil
}

// itemToHistoryEntry converts stack item into *HistoryEntry.
func itemToHistoryEntry(item stackitem.Item, err error) (*HistoryEntry, error) {
	if err != nil {
		return nil, err
	}
	var res = new(HistoryEntry)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of HistoryEntry from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *HistoryEntry) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Exercise, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Exercise: %w", err)
	}

	index++
	res.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	index++
	res.Outcome, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Outcome: %w", err)
	}

	index++
	res.Rate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Rate: %w", err)
	}

	index++
	res.Performance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Performance: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

// NewTraderEventsFromApplicationLog retrieves a set of all emitted events
// with "NewTrader" name from the provided [result.ApplicationLog].
func NewTraderEventsFromApplicationLog(log *result.ApplicationLog) ([]*NewTraderEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NewTraderEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NewTrader" {
				continue
			}
			event := new(NewTraderEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NewTraderEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NewTraderEvent or
// returns an error if it's not possible to do to so.
func (e *NewTraderEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Trader, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Trader: %w", err)
	}

	index++
	e.User, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.Name, err = itemToUTF8String(arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

// NewExerciseEventsFromApplicationLog retrieves a set of all emitted events
// with "NewExercise" name from the provided [result.ApplicationLog].
func NewExerciseEventsFromApplicationLog(log *result.ApplicationLog) ([]*NewExerciseEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NewExerciseEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NewExercise" {
				continue
			}
			event := new(NewExerciseEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NewExerciseEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NewExerciseEvent or
// returns an error if it's not possible to do to so.
func (e *NewExerciseEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Exercise, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Exercise: %w", err)
	}

	index++
	e.Cid, err = itemToUTF8String(arr[index])
	if err != nil {
		return fmt.Errorf("field Cid: %w", err)
	}

	index++
	e.Timeout, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timeout: %w", err)
	}

	index++
	e.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

// NewValidationEventsFromApplicationLog retrieves a set of all emitted events
// with "NewValidation" name from the provided [result.ApplicationLog].
func NewValidationEventsFromApplicationLog(log *result.ApplicationLog) ([]*NewValidationEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NewValidationEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NewValidation" {
				continue
			}
			event := new(NewValidationEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NewValidationEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NewValidationEvent or
// returns an error if it's not possible to do to so.
func (e *NewValidationEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Exercise, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Exercise: %w", err)
	}

	index++
	e.User, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field User: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	e.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	index++
	e.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

// ExerciseSealedEventsFromApplicationLog retrieves a set of all emitted events
// with "ExerciseSealed" name from the provided [result.ApplicationLog].
func ExerciseSealedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ExerciseSealedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ExerciseSealedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ExerciseSealed" {
				continue
			}
			event := new(ExerciseSealedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ExerciseSealedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ExerciseSealedEvent or
// returns an error if it's not possible to do to so.
func (e *ExerciseSealedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Exercise, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Exercise: %w", err)
	}

	index++
	e.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

// ValidationCheckedEventsFromApplicationLog retrieves a set of all emitted events
// with "ValidationChecked" name from the provided [result.ApplicationLog].
func ValidationCheckedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ValidationCheckedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ValidationCheckedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ValidationChecked" {
				continue
			}
			event := new(ValidationCheckedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ValidationCheckedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ValidationCheckedEvent or
// returns an error if it's not possible to do to so.
func (e *ValidationCheckedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Exercise, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Exercise: %w", err)
	}

	index++
	e.Trader, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Trader: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	e.Performance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Performance: %w", err)
	}

	return nil
}

// ExerciseValidatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ExerciseValidated" name from the provided [result.ApplicationLog].
func ExerciseValidatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ExerciseValidatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ExerciseValidatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ExerciseValidated" {
				continue
			}
			event := new(ExerciseValidatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ExerciseValidatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ExerciseValidatedEvent or
// returns an error if it's not possible to do to so.
func (e *ExerciseValidatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Exercise, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Exercise: %w", err)
	}

	index++
	e.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

// ExerciseClosedEventsFromApplicationLog retrieves a set of all emitted events
// with "ExerciseClosed" name from the provided [result.ApplicationLog].
func ExerciseClosedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ExerciseClosedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ExerciseClosedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ExerciseClosed" {
				continue
			}
			event := new(ExerciseClosedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ExerciseClosedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ExerciseClosedEvent or
// returns an error if it's not possible to do to so.
func (e *ExerciseClosedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Exercise, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Exercise: %w", err)
	}

	index++
	e.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}

func itemToUTF8String(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}

func itemToValidations(item stackitem.Item) ([]*Validation, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	res := make([]*Validation, len(arr))
	for i := range res {
		var err error
		res[i], err = itemToValidation(arr[i], nil)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}
