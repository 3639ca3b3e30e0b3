package trainer

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/tradetrainer/trainer-contract/common"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/ring"
	"github.com/tradetrainer/trainer-contract/contracts/trainer/trainerconst"
)

// HistoryEntry is a single graded validation of the trader.
type HistoryEntry struct {
	Exercise    interop.Hash160
	Value       int
	Outcome     int
	Rate        int
	Performance int
	Timestamp   int
}

// History method returns the retained graded validations of the trader from
// the oldest to the newest. Only the last trainerconst.HistoryCapacity
// entries are kept.
func History(trader interop.Hash160) []HistoryEntry {
	ctx := storage.GetReadOnlyContext()

	cursor := getCursor(ctx, trader)
	slots := ring.Slots(cursor, trainerconst.HistoryCapacity)

	res := []HistoryEntry{}
	for i := range slots {
		entry := common.GetSerialized(ctx, historyKey(trader, slots[i]))
		res = append(res, entry.(HistoryEntry))
	}

	return res
}

func appendHistory(ctx storage.Context, trader interop.Hash160, entry HistoryEntry) {
	cursor, slot := ring.Push(getCursor(ctx, trader), trainerconst.HistoryCapacity)

	common.SetSerialized(ctx, historyKey(trader, slot), entry)
	common.SetSerialized(ctx, cursorKey(trader), cursor)
}

func getCursor(ctx storage.Context, trader interop.Hash160) ring.Cursor {
	data := common.GetSerialized(ctx, cursorKey(trader))
	if data == nil {
		return ring.Cursor{}
	}
	return data.(ring.Cursor)
}

func cursorKey(trader interop.Hash160) []byte {
	return append([]byte{cursorPrefix}, trader...)
}

func historyKey(trader interop.Hash160, slot int) []byte {
	key := append([]byte{historyPrefix}, trader...)
	return append(key, byte(slot))
}
