/*
Package grader checks all validations of Trainer exercises.

Checking a validation removes it from the exercise and shifts the following
ones down, so validations are checked from the highest index to the lowest.
This way indices of the pending validations stay valid while several checks
are packed into a single transaction.
*/
package grader

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/tradetrainer/trainer-contract/rpc/trainer"
	"go.uber.org/zap"
)

// ErrNoValidations is returned by CheckAll for an exercise without
// validations. Such an exercise is removed by closeExercise contract method.
var ErrNoValidations = errors.New("exercise has no validations")

// DefaultBatchSize is the number of validations checked by a single
// transaction if Prm.BatchSize is not set.
const DefaultBatchSize = 16

// ExerciseReader provides the current exercise state.
type ExerciseReader interface {
	GetExercise(exercise util.Uint160) (*trainer.Exercise, error)
}

// Actor sends transactions witnessed by the exercise authority and waits for
// their execution. It is implemented by [actor.Actor].
type Actor interface {
	SendRun(script []byte) (util.Uint256, uint32, error)
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// Prm groups Grader parameters.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Trainer contract address.
	Contract util.Uint160

	Reader ExerciseReader
	Actor  Actor

	// Number of validations checked by a single transaction.
	BatchSize int
}

// Grader checks validations of exercises on behalf of their authority.
type Grader struct {
	log       *zap.Logger
	contract  util.Uint160
	reader    ExerciseReader
	actor     Actor
	batchSize int
}

// New creates Grader from the given parameters.
func New(prm Prm) *Grader {
	batch := prm.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	log := prm.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Grader{
		log:       log,
		contract:  prm.Contract,
		reader:    prm.Reader,
		actor:     prm.Actor,
		batchSize: batch,
	}
}

// CheckAll checks every validation of the exercise against its revealed
// outcome and returns emitted ValidationChecked events in the order of
// checks. The exercise is deleted by the contract after the last check.
func (g *Grader) CheckAll(ctx context.Context, exercise util.Uint160) ([]*trainer.ValidationCheckedEvent, error) {
	ex, err := g.reader.GetExercise(exercise)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", trainer.ParseFault(err))
	}

	if !ex.Revealed {
		return nil, trainer.ErrOutcomeNotRevealed
	}

	if len(ex.Validations) == 0 {
		return nil, ErrNoValidations
	}

	l := g.log.With(zap.Stringer("exercise", exercise))
	l.Info("checking validations", zap.Int("count", len(ex.Validations)))

	var res []*trainer.ValidationCheckedEvent

	for hi := len(ex.Validations) - 1; hi >= 0; hi -= g.batchSize {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		lo := hi - g.batchSize + 1
		if lo < 0 {
			lo = 0
		}

		script, err := CheckScript(g.contract, exercise, ex.Validations, lo, hi)
		if err != nil {
			return res, fmt.Errorf("build script for validations %d..%d: %w", lo, hi, err)
		}

		events, err := g.send(script)
		if err != nil {
			return res, fmt.Errorf("check validations %d..%d: %w", lo, hi, err)
		}

		res = append(res, events...)

		l.Debug("validations checked", zap.Int("from", hi), zap.Int("to", lo))
	}

	l.Info("all validations checked")

	return res, nil
}

// CheckScript returns a script checking validations from hi down to lo.
func CheckScript(contract, exercise util.Uint160, validations []*trainer.Validation, lo, hi int) ([]byte, error) {
	b := smartcontract.NewBuilder()
	for i := hi; i >= lo; i-- {
		b.InvokeMethod(contract, "checkValidation", exercise, validations[i].Trader, i)
	}
	return b.Script()
}

func (g *Grader) send(script []byte) ([]*trainer.ValidationCheckedEvent, error) {
	res, err := g.actor.Wait(g.actor.SendRun(script))
	if err != nil {
		return nil, trainer.ParseFault(err)
	}

	if res.VMState != vmstate.Halt {
		return nil, trainer.ParseFault(errors.New(res.FaultException))
	}

	return trainer.ValidationCheckedEventsFromApplicationLog(&result.ApplicationLog{
		Container:  res.Container,
		Executions: []state.Execution{res.Execution},
	})
}
