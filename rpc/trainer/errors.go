package trainer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/trainerconst"
)

// Errors returned by the contract. Use ParseFault to match an invocation
// error against them.
var (
	ErrWrongAuthority              = errors.New(trainerconst.ErrWrongAuthority)
	ErrValidationsCapacityTooSmall = errors.New(trainerconst.ErrValidationsCapacityTooSmall)
	ErrValidationsCapacityTooBig   = errors.New(trainerconst.ErrValidationsCapacityTooBig)
	ErrExpiredTimeout              = errors.New(trainerconst.ErrExpiredTimeout)
	ErrWrongExerciseCreator        = errors.New(trainerconst.ErrWrongExerciseCreator)
	ErrWrongUser                   = errors.New(trainerconst.ErrWrongUser)
	ErrWrongValidationIndex        = errors.New(trainerconst.ErrWrongValidationIndex)
	ErrDuplicatedValidation        = errors.New(trainerconst.ErrDuplicatedValidation)
	ErrInvalidValidationIndex      = errors.New(trainerconst.ErrInvalidValidationIndex)
	ErrBumpNotFound                = errors.New(trainerconst.ErrBumpNotFound)
	ErrExerciseTimeout             = errors.New(trainerconst.ErrExerciseTimeout)
	ErrExerciseSealed              = errors.New(trainerconst.ErrExerciseSealed)
	ErrMinValidationsTooLow        = errors.New(trainerconst.ErrMinValidationsTooLow)
	ErrAddressCollisionExhausted   = errors.New(trainerconst.ErrAddressCollisionExhausted)
	ErrTraderNotFound              = errors.New(trainerconst.ErrTraderNotFound)
	ErrTraderExists                = errors.New(trainerconst.ErrTraderExists)
	ErrExerciseNotFound            = errors.New(trainerconst.ErrExerciseNotFound)
	ErrExerciseExists              = errors.New(trainerconst.ErrExerciseExists)
	ErrInvalidName                 = errors.New(trainerconst.ErrInvalidName)
	ErrInvalidCID                  = errors.New(trainerconst.ErrInvalidCID)
	ErrUnregisteredTrainer         = errors.New(trainerconst.ErrUnregisteredTrainer)
	ErrOutcomeNotRevealed          = errors.New(trainerconst.ErrOutcomeNotRevealed)
	ErrValueOutOfRange             = errors.New(trainerconst.ErrValueOutOfRange)
	ErrInvalidRanking              = errors.New(trainerconst.ErrInvalidRanking)
	ErrRecordSizeExceeded          = errors.New(trainerconst.ErrRecordSizeExceeded)
)

var contractErrors = []error{
	ErrWrongAuthority,
	ErrValidationsCapacityTooSmall,
	ErrValidationsCapacityTooBig,
	ErrExpiredTimeout,
	ErrWrongExerciseCreator,
	ErrWrongUser,
	ErrWrongValidationIndex,
	ErrDuplicatedValidation,
	ErrInvalidValidationIndex,
	ErrBumpNotFound,
	ErrExerciseTimeout,
	ErrExerciseSealed,
	ErrMinValidationsTooLow,
	ErrAddressCollisionExhausted,
	ErrTraderNotFound,
	ErrTraderExists,
	ErrExerciseNotFound,
	ErrExerciseExists,
	ErrInvalidName,
	ErrInvalidCID,
	ErrUnregisteredTrainer,
	ErrOutcomeNotRevealed,
	ErrValueOutOfRange,
	ErrInvalidRanking,
	ErrRecordSizeExceeded,
}

// ParseFault wraps the invocation error with the contract error it carries,
// so it can be checked with errors.Is. Errors not produced by the contract
// are returned as is.
func ParseFault(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	for _, e := range contractErrors {
		if strings.Contains(msg, e.Error()) {
			return fmt.Errorf("%w: %w", e, err)
		}
	}
	return err
}

// AddValidationResult checks the execution result of the addValidation
// transaction. It returns ErrExerciseTimeout if the exercise has been sealed
// by timeout instead of accepting the validation.
func AddValidationResult(log *result.ApplicationLog) error {
	if log == nil || len(log.Executions) == 0 {
		return errors.New("no executions in application log")
	}
	ex := log.Executions[0]
	if ex.VMState != vmstate.Halt {
		return ParseFault(fmt.Errorf("execution failed: %s", ex.FaultException))
	}
	if len(ex.Stack) == 0 {
		return errors.New("empty result stack")
	}
	ok, err := ex.Stack[len(ex.Stack)-1].TryBool()
	if err != nil {
		return fmt.Errorf("invalid result: %w", err)
	}
	if !ok {
		return ErrExerciseTimeout
	}
	return nil
}
