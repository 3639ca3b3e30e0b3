/*
Package layout describes the persisted byte layout of Trainer records.

Record size is the discriminator plus the sum of field sizes. Variable-length
strings and vectors are prefixed with a 4-byte length. Exercise validations
are allocated once for the full capacity at creation and never grow.
*/
package layout

import "github.com/tradetrainer/trainer-contract/contracts/trainer/trainerconst"

// Field sizes in bytes.
const (
	DiscriminatorSize = 8
	LengthPrefixSize  = 4
	HashSize          = 20
	IntSize           = 8
	BoolSize          = 1
	SmallIntSize      = 1

	// ValidationSize is the size of a single validation: value, trader
	// and user.
	ValidationSize = IntSize + 2*HashSize
)

// MaxRecordSize is the allocation limit of a single record.
const MaxRecordSize = 10 * 1024

// TraderSpace returns the size of a trader record with the given name.
func TraderSpace(name string) int {
	return DiscriminatorSize +
		HashSize + // user
		LengthPrefixSize + len(name) +
		IntSize + // performance
		IntSize + // ranking
		SmallIntSize + // league
		SmallIntSize // bump
}

// ExerciseSpace returns the size of an exercise record with the given content
// identifier and validations capacity. Solution identifier space is reserved
// for the longest possible one.
func ExerciseSpace(cid string, capacity int) int {
	return DiscriminatorSize +
		BoolSize + // sealed
		LengthPrefixSize + len(cid) +
		HashSize + // authority
		IntSize + // timeout
		IntSize + // outcome
		BoolSize + // revealed
		LengthPrefixSize + trainerconst.MaxCIDLength + // solution
		SmallIntSize + // capacity
		LengthPrefixSize + capacity*ValidationSize +
		SmallIntSize // bump
}

// FitsRecord checks whether the record of the given size can be allocated.
func FitsRecord(size int) bool {
	return size <= MaxRecordSize
}
