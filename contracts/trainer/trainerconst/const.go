/*
Package trainerconst contains constants shared by the Trainer contract and its
off-chain clients.

Error values are the exact exception messages the contract panics with, so
clients can match fault exceptions against them.
*/
package trainerconst

const (
	// DefaultMinValidations is the minimum validations capacity of new
	// exercises if it's not specified on contract deployment.
	DefaultMinValidations = 5

	// MaxValidationsCapacity is the biggest validations capacity an
	// exercise can be created with.
	MaxValidationsCapacity = 255

	// MaxNameLength is the maximum length of the trader name in bytes.
	MaxNameLength = 64
	// MaxCIDLength is the maximum length of the exercise (and solution)
	// content identifier in bytes.
	MaxCIDLength = 64

	// MaxLeague is the biggest league value a trader can be assigned to.
	MaxLeague = 255

	// HistoryCapacity is the number of graded results retained per trader.
	HistoryCapacity = 16

	// MaxInt64 and MinInt64 bound numeric predictions and outcomes.
	MaxInt64 = 1<<63 - 1
	MinInt64 = -1 << 63
)

// Address derivation seeds.
const (
	TraderSeed   = "trader"
	ExerciseSeed = "exercise"
)

// Contract exception messages.
const (
	ErrWrongAuthority              = "wrong authority"
	ErrValidationsCapacityTooSmall = "validations capacity too small"
	ErrValidationsCapacityTooBig   = "validations capacity too big"
	ErrExpiredTimeout              = "expired timeout"
	ErrWrongExerciseCreator        = "specified exercise creator does not match the exercise authority"
	ErrWrongUser                   = "specified user does not match the trader user"
	ErrWrongValidationIndex        = "specified validation index does not match the trader"
	ErrDuplicatedValidation        = "trader has already added a validation"
	ErrInvalidValidationIndex      = "invalid validation index"
	ErrBumpNotFound                = "bump not found"
	ErrExerciseTimeout             = "exercise timeout"
	ErrExerciseSealed              = "exercise is sealed"
	ErrMinValidationsTooLow        = "min validations too low"
	ErrAddressCollisionExhausted   = "address collision exhausted"

	ErrTraderNotFound      = "trader not found"
	ErrTraderExists        = "trader already exists"
	ErrExerciseNotFound    = "exercise not found"
	ErrExerciseExists      = "exercise already exists"
	ErrInvalidName         = "invalid trader name"
	ErrInvalidCID          = "invalid content identifier"
	ErrUnregisteredTrainer = "trainer is not registered"
	ErrOutcomeNotRevealed  = "outcome is not revealed"
	ErrValueOutOfRange     = "value out of range"
	ErrInvalidRanking      = "invalid ranking"
	ErrRecordSizeExceeded  = "record size exceeded"
)
