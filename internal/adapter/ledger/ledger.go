package ledger

import (
	"sync"

	"github.com/ibrahimkeyboad/atmsim/internal/core/domain"
)

// Ledger is an append-only in-memory record of every withdrawal outcome in a
// run. It implements the actor Reporter interface, so it sits next to the
// log reporter and sees the exact same stream.
//
// Outcomes arrive from many actor goroutines at once, so appends are guarded
// by their own mutex (separate from the account's lock — the ledger is an
// observer, not part of the withdrawal critical section).
type Ledger struct {
	mu       sync.Mutex
	outcomes []domain.Outcome
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Report appends one outcome in arrival order.
func (l *Ledger) Report(o domain.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outcomes = append(l.outcomes, o)
}

// Outcomes returns a copy of the recorded outcomes so callers can't mutate
// the ledger's own slice.
func (l *Ledger) Outcomes() []domain.Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Outcome, len(l.outcomes))
	copy(out, l.outcomes)
	return out
}

// Totals summarizes a run: how many attempts, how they split, and how much
// money actually left the account.
type Totals struct {
	Attempts  int
	Succeeded int
	Declined  int
	Withdrawn int64 // Minor units, sum of succeeded amounts only
}

func (l *Ledger) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()

	var t Totals
	t.Attempts = len(l.outcomes)
	for _, o := range l.outcomes {
		if o.Succeeded() {
			t.Succeeded++
			t.Withdrawn += o.Amount
		} else {
			t.Declined++
		}
	}
	return t
}

// Replay reconstructs the final balance from the recorded outcomes by pure
// arithmetic: opening minus every succeeded amount. Whatever order the
// attempts interleaved in, this must equal the balance the account itself
// reports at the end of the run.
func (l *Ledger) Replay(openingBalance int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance := openingBalance
	for _, o := range l.outcomes {
		if o.Succeeded() {
			balance -= o.Amount
		}
	}
	return balance
}
