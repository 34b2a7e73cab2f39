package domain

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusSucceeded Status = "SUCCEEDED"
	StatusDeclined  Status = "DECLINED"
)

// Outcome records the result of a single withdrawal attempt.
// Every attempt produces exactly one Outcome; a decline is a normal,
// fully-computed result, not an error.
type Outcome struct {
	ID            uuid.UUID `json:"id"`
	Who           string    `json:"who"`
	Amount        int64     `json:"amount"` // Minor units (cents)
	Status        Status    `json:"status"`
	BalanceBefore int64     `json:"balance_before"`
	BalanceAfter  int64     `json:"balance_after"` // Equals BalanceBefore on a decline
	At            time.Time `json:"at"`
}

// Succeeded reports whether this attempt actually moved money.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSucceeded
}

func newOutcome(who string, amount int64, status Status, before, after int64) Outcome {
	return Outcome{
		ID:            uuid.New(),
		Who:           who,
		Amount:        amount,
		Status:        status,
		BalanceBefore: before,
		BalanceAfter:  after,
		At:            time.Now(),
	}
}
