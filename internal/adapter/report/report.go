package report

import (
	"log/slog"

	"github.com/ibrahimkeyboad/atmsim/internal/core/domain"
)

// Reporter mirrors the actor package's interface so adapters here satisfy it
// implicitly.
type Reporter interface {
	Report(domain.Outcome)
}

// LogReporter writes one structured log line per outcome. This is the
// "external observer" of the simulation — outcomes go out, nothing comes
// back in.
type LogReporter struct {
	log      *slog.Logger
	currency domain.Currency
}

func NewLogReporter(log *slog.Logger, currency domain.Currency) *LogReporter {
	return &LogReporter{log: log, currency: currency}
}

func (r *LogReporter) Report(o domain.Outcome) {
	if o.Succeeded() {
		r.log.Info("withdrawal succeeded",
			"who", o.Who,
			"amount", domain.NewMoney(o.Amount, r.currency).String(),
			"balance_before", o.BalanceBefore,
			"balance_after", o.BalanceAfter,
		)
		return
	}
	r.log.Info("withdrawal declined",
		"who", o.Who,
		"amount", domain.NewMoney(o.Amount, r.currency).String(),
		"balance", o.BalanceBefore,
		"reason", "insufficient funds",
	)
}

// Multi fans one outcome out to several reporters, in order.
type Multi []Reporter

func NewMulti(reps ...Reporter) Multi {
	return Multi(reps)
}

func (m Multi) Report(o domain.Outcome) {
	for _, r := range m {
		r.Report(o)
	}
}
