package sim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ibrahimkeyboad/atmsim/internal/adapter/ledger"
	"github.com/ibrahimkeyboad/atmsim/internal/adapter/report"
	"github.com/ibrahimkeyboad/atmsim/internal/core/actor"
	"github.com/ibrahimkeyboad/atmsim/internal/core/config"
	"github.com/ibrahimkeyboad/atmsim/internal/core/domain"
)

// Summary is what a finished run looks like from the outside.
type Summary struct {
	RunID          uuid.UUID
	OpeningBalance int64
	FinalBalance   int64
	Totals         ledger.Totals
	Elapsed        time.Duration
}

// Run wires up one account, one ledger and the configured actors, lets every
// actor run to completion, and returns the summary. It only returns after
// ALL actors have finished — the final balance is read strictly after the
// join barrier.
//
// Cancelling ctx does not abort the run; it only shortens the cosmetic
// pauses between attempts, so every configured attempt is still issued and
// reported.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Summary, error) {
	// 1. The shared account everyone fights over
	account, err := domain.NewAccount(cfg.OpeningBalance, domain.Currency(cfg.Currency))
	if err != nil {
		return nil, err
	}

	// 2. Observers: structured log line per outcome, plus the in-memory
	// ledger we use to cross-check the final balance. The webhook sink is
	// only wired in when an observer URL is configured.
	led := ledger.NewLedger()
	reps := []report.Reporter{report.NewLogReporter(log, account.Currency), led}
	if cfg.WebhookURL != "" {
		reps = append(reps, report.NewWebhookSink(cfg.WebhookURL, log))
	}
	rep := report.NewMulti(reps...)

	// 3. Build the actors
	actors := make([]*actor.Actor, 0, len(cfg.Actors))
	for _, spec := range cfg.Actors {
		a, err := actor.New(spec.Name, spec.Amount, spec.Count, account, rep, cfg.Pause)
		if err != nil {
			return nil, fmt.Errorf("actor %q: %w", spec.Name, err)
		}
		actors = append(actors, a)
	}

	// 4. Run everyone and wait for the join barrier
	start := time.Now()
	actor.RunAll(ctx, actors)
	elapsed := time.Since(start)

	// 5. Cross-check: replaying the recorded outcomes against the opening
	// balance must land exactly on the balance the account reports. If it
	// doesn't, the withdrawal critical section is broken.
	final := account.Balance()
	if replayed := led.Replay(cfg.OpeningBalance); replayed != final {
		return nil, fmt.Errorf("ledger replay disagrees with account: replayed %d, account says %d", replayed, final)
	}
	if final < 0 {
		return nil, fmt.Errorf("final balance went negative: %d", final)
	}

	return &Summary{
		RunID:          account.ID,
		OpeningBalance: cfg.OpeningBalance,
		FinalBalance:   final,
		Totals:         led.Totals(),
		Elapsed:        elapsed,
	}, nil
}
