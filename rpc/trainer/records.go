package trainer

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ExerciseRecord is an exercise along with its address, as returned by the
// `exercises` iterator.
type ExerciseRecord struct {
	Address  util.Uint160
	Exercise *Exercise
}

// TraderRecord is a trader along with its address, as returned by the
// `traders` iterator.
type TraderRecord struct {
	Address util.Uint160
	Trader  *Trader
}

// ExerciseFilter selects exercises. Zero value matches everything.
type ExerciseFilter struct {
	// Sealed, if set, matches exercises with the same sealed flag.
	Sealed *bool
	// Cid, if not empty, matches exercises with the same content identifier.
	Cid string
	// Authority, if set, matches exercises of the given trainer.
	Authority *util.Uint160
}

// Match checks whether the exercise satisfies the filter.
func (f ExerciseFilter) Match(e *Exercise) bool {
	if f.Sealed != nil && e.Sealed != *f.Sealed {
		return false
	}
	if f.Cid != "" && e.Cid != f.Cid {
		return false
	}
	if f.Authority != nil && !e.Authority.Equals(*f.Authority) {
		return false
	}
	return true
}

// FilterExercises returns records matching the filter in the original order.
func FilterExercises(records []ExerciseRecord, f ExerciseFilter) []ExerciseRecord {
	var res []ExerciseRecord
	for i := range records {
		if f.Match(records[i].Exercise) {
			res = append(res, records[i])
		}
	}
	return res
}

// ExerciseRecordsFromItems decodes items of the `exercises` iterator.
func ExerciseRecordsFromItems(items []stackitem.Item) ([]ExerciseRecord, error) {
	res := make([]ExerciseRecord, len(items))
	for i := range items {
		address, value, err := keyValue(items[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		ex, err := itemToExercise(value, nil)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		res[i] = ExerciseRecord{Address: address, Exercise: ex}
	}
	return res, nil
}

// TraderRecordsFromItems decodes items of the `traders` iterator.
func TraderRecordsFromItems(items []stackitem.Item) ([]TraderRecord, error) {
	res := make([]TraderRecord, len(items))
	for i := range items {
		address, value, err := keyValue(items[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		t, err := itemToTrader(value, nil)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		res[i] = TraderRecord{Address: address, Trader: t}
	}
	return res, nil
}

// ListExercises returns at most maxItems exercises matching the filter. It
// expands the iterator in the VM, so it works with servers without session
// support.
func (c *ContractReader) ListExercises(f ExerciseFilter, maxItems int) ([]ExerciseRecord, error) {
	items, err := c.ExercisesExpanded(maxItems)
	if err != nil {
		return nil, fmt.Errorf("expand exercises: %w", err)
	}
	records, err := ExerciseRecordsFromItems(items)
	if err != nil {
		return nil, err
	}
	return FilterExercises(records, f), nil
}

// ListTraders returns at most maxItems traders.
func (c *ContractReader) ListTraders(maxItems int) ([]TraderRecord, error) {
	items, err := c.TradersExpanded(maxItems)
	if err != nil {
		return nil, fmt.Errorf("expand traders: %w", err)
	}
	return TraderRecordsFromItems(items)
}

func keyValue(item stackitem.Item) (util.Uint160, stackitem.Item, error) {
	kv, ok := item.Value().([]stackitem.Item)
	if !ok {
		return util.Uint160{}, nil, errors.New("not a key-value pair")
	}
	if len(kv) != 2 {
		return util.Uint160{}, nil, errors.New("wrong number of pair elements")
	}
	address, err := itemToUint160(kv[0])
	if err != nil {
		return util.Uint160{}, nil, fmt.Errorf("key: %w", err)
	}
	return address, kv[1], nil
}
