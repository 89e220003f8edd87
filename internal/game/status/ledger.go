package status

import "log/slog"

// Ledger holds the status effects of one holder.
// Invariant: at most one entry per Type.
//
// Ledger methods never modify the receiver; mutating operations return a new
// Ledger so combat snapshots can share ledgers safely.
type Ledger []Effect

// TurnStart reports side effects of turn-start processing that the holder
// must apply to itself.
type TurnStart struct {
	// Heal is the HP the holder regains from regen.
	Heal int
}

// Clone returns an independent copy of the ledger.
func (l Ledger) Clone() Ledger {
	if l == nil {
		return nil
	}
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}

// Find returns the entry for t.
func (l Ledger) Find(t Type) (Effect, bool) {
	for _, e := range l {
		if e.Type == t {
			return e, true
		}
	}
	return Effect{}, false
}

// Has reports whether an entry for t exists.
func (l Ledger) Has(t Type) bool {
	_, ok := l.Find(t)
	return ok
}

// Stacks returns the stack count for t, or 0 if absent.
func (l Ledger) Stacks(t Type) int {
	e, _ := l.Find(t)
	return e.Stacks
}

// Apply adds stacks of t. An existing entry accumulates the stacks and keeps
// its existing StackType; otherwise a new entry with stackType is appended.
func (l Ledger) Apply(t Type, stacks int, stackType StackType) Ledger {
	out := l.Clone()
	for i := range out {
		if out[i].Type == t {
			out[i].Stacks += stacks
			slog.Debug("status stacked", "type", t, "added", stacks, "stacks", out[i].Stacks)
			return out
		}
	}

	slog.Debug("status applied", "type", t, "stacks", stacks, "stackType", stackType)
	return append(out, Effect{Type: t, Stacks: stacks, StackType: stackType})
}

// Remove deletes the entry for t if present.
func (l Ledger) Remove(t Type) Ledger {
	out := make(Ledger, 0, len(l))
	for _, e := range l {
		if e.Type != t {
			out = append(out, e)
		}
	}
	return out
}

// TickTurnStart runs turn-start processing over the whole ledger:
//   - regen heals by its stack count as read before this tick's decrement;
//   - every duration entry with stacks > 0 loses one stack;
//   - duration entries at 0 or below are removed.
//
// Intensity and none entries are never decremented or removed here.
func (l Ledger) TickTurnStart() (Ledger, TurnStart) {
	var ts TurnStart
	if regen, ok := l.Find(Regen); ok && regen.Stacks > 0 {
		ts.Heal = regen.Stacks
	}

	out := make(Ledger, 0, len(l))
	for _, e := range l {
		if e.StackType == Duration {
			if e.Stacks > 0 {
				e.Stacks--
			}
			if e.Stacks <= 0 {
				slog.Debug("status expired", "type", e.Type)
				continue
			}
		}
		out = append(out, e)
	}

	return out, ts
}
