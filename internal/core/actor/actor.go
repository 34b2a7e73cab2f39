package actor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ibrahimkeyboad/atmsim/internal/core/domain"
)

// Reporter receives every outcome an actor produces. The ledger, the log
// reporter and the webhook sink all implement this.
type Reporter interface {
	Report(domain.Outcome)
}

// Actor is one "person" (or kiosk) hitting the shared account: a fixed
// withdrawal amount, repeated a fixed number of times, strictly one attempt
// at a time. Actors share nothing with each other — the account is the only
// common ground.
type Actor struct {
	name    string
	amount  int64 // Minor units per attempt
	count   int
	pause   time.Duration
	account *domain.Account
	rep     Reporter
}

// New validates the actor up front so Run never has to deal with bad input.
// pause is the cosmetic delay between attempts; zero is fine and changes
// nothing about correctness.
func New(name string, amount int64, count int, account *domain.Account, rep Reporter, pause time.Duration) (*Actor, error) {
	if name == "" {
		return nil, errors.New("actor needs a name")
	}
	if amount <= 0 {
		return nil, domain.ErrBadAmount
	}
	if count < 0 {
		return nil, errors.New("attempt count cannot be negative")
	}
	if account == nil {
		return nil, errors.New("actor needs an account")
	}
	if rep == nil {
		return nil, errors.New("actor needs a reporter")
	}
	return &Actor{
		name:    name,
		amount:  amount,
		count:   count,
		pause:   pause,
		account: account,
		rep:     rep,
	}, nil
}

func (a *Actor) Name() string {
	return a.name
}

// Run issues exactly a.count withdrawal attempts in order and reports each
// outcome, success or decline. Cancelling ctx only cuts the pause between
// attempts short — it never aborts the loop, so every attempt still gets
// issued and reported.
func (a *Actor) Run(ctx context.Context) {
	for i := 0; i < a.count; i++ {
		out, err := a.account.Withdraw(a.amount, a.name)
		if err != nil {
			// New() already rejected bad amounts, so this only fires on a
			// programming error. Log it; the remaining attempts still run.
			slog.Error("withdrawal attempt rejected", "who", a.name, "error", err)
			continue
		}
		a.rep.Report(out)

		if i < a.count-1 {
			a.pauseBetween(ctx)
		}
	}
}

// pauseBetween sleeps for the configured pause, or returns immediately if
// ctx is cancelled first. The cancellation is absorbed here on purpose: the
// pause carries no synchronization meaning, so cutting it short is always
// safe.
func (a *Actor) pauseBetween(ctx context.Context) {
	if a.pause <= 0 {
		return
	}
	t := time.NewTimer(a.pause)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// RunAll starts every actor in its own goroutine and blocks until all of
// them have finished. The caller can only read a meaningful final balance
// after this returns.
func RunAll(ctx context.Context, actors []*Actor) {
	var wg sync.WaitGroup
	for _, a := range actors {
		wg.Add(1)
		go func(a *Actor) {
			defer wg.Done()
			a.Run(ctx)
		}(a)
	}
	wg.Wait()
}
