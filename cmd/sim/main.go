package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal" // To listen for Ctrl+C
	"syscall"   // System calls

	"github.com/ibrahimkeyboad/atmsim/internal/core/config"
	"github.com/ibrahimkeyboad/atmsim/internal/core/domain"
	"github.com/ibrahimkeyboad/atmsim/internal/core/sim"
)

func main() {
	// 1. Setup Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 2. Load Config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("❌ Bad configuration", "error", err)
		os.Exit(1)
	}

	// 3. Ctrl+C doesn't kill the run — actors absorb the cancellation and
	// just stop pausing between attempts, so every attempt still reports.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	currency := domain.Currency(cfg.Currency)
	slog.Info("🚀 Starting transactions",
		"opening_balance", domain.NewMoney(cfg.OpeningBalance, currency).String(),
		"actors", len(cfg.Actors),
		"env", cfg.Env,
	)

	summary, err := sim.Run(ctx, cfg, logger)
	if err != nil {
		slog.Error("❌ Simulation failed", "error", err)
		os.Exit(1)
	}

	// 4. Final report
	slog.Info("🏁 All transactions finished",
		"run_id", summary.RunID,
		"final_balance", domain.NewMoney(summary.FinalBalance, currency).String(),
		"withdrawn", domain.NewMoney(summary.Totals.Withdrawn, currency).String(),
		"attempts", summary.Totals.Attempts,
		"succeeded", summary.Totals.Succeeded,
		"declined", summary.Totals.Declined,
		"elapsed_ms", summary.Elapsed.Milliseconds(),
	)
}
