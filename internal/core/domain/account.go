package domain

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Account is the one shared mutable resource in a run: a single balance
// hammered by many concurrent withdrawers. All access goes through Withdraw
// and Balance; the balance field is never exposed.
type Account struct {
	ID       uuid.UUID
	Currency Currency

	// mu guards balance. The insufficient-funds check and the debit must
	// happen under the same lock, otherwise two withdrawers can both pass
	// the check and drive the balance below zero.
	mu      sync.Mutex
	balance int64
}

// NewAccount opens an account with the given balance in minor units.
// A negative opening balance is rejected before any state exists.
func NewAccount(openingBalance int64, currency Currency) (*Account, error) {
	if openingBalance < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeOpening, openingBalance)
	}
	return &Account{
		ID:       uuid.New(),
		Currency: currency,
		balance:  openingBalance,
	}, nil
}

// Withdraw attempts to debit amount on behalf of who and always returns
// exactly one Outcome. The check and the debit run as one critical section,
// so no interleaving of concurrent calls can overdraw the account.
//
// Insufficient funds is NOT an error: the attempt completes normally with a
// Declined outcome and the balance untouched. The only error is the contract
// violation amount <= 0.
func (a *Account) Withdraw(amount int64, who string) (Outcome, error) {
	if amount <= 0 {
		return Outcome{}, fmt.Errorf("%w: got %d", ErrBadAmount, amount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	before := a.balance
	if before < amount {
		return newOutcome(who, amount, StatusDeclined, before, before), nil
	}

	a.balance = before - amount
	return newOutcome(who, amount, StatusSucceeded, before, a.balance), nil
}

// Balance returns a snapshot of the current balance. Under concurrent access
// the value can be stale the instant it is returned, so callers must treat it
// as informational only and never use it to decide whether a withdrawal will
// succeed.
func (a *Account) Balance() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}
