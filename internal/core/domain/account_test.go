package domain

import (
	"errors"
	"sync"
	"testing"
)

func newTestAccount(t *testing.T, opening int64) *Account {
	t.Helper()
	a, err := NewAccount(opening, USD)
	if err != nil {
		t.Fatalf("NewAccount(%d) err=%v", opening, err)
	}
	return a
}

func TestNewAccount(t *testing.T) {
	a := newTestAccount(t, 1000)
	if a.Balance() != 1000 {
		t.Fatalf("balance=%d want=1000", a.Balance())
	}
	if a.ID.String() == "" {
		t.Fatal("account should get an ID")
	}

	if _, err := NewAccount(-1, USD); !errors.Is(err, ErrNegativeOpening) {
		t.Fatalf("want ErrNegativeOpening, got %v", err)
	}

	// Zero is a valid (if sad) opening balance
	if _, err := NewAccount(0, USD); err != nil {
		t.Fatalf("opening balance 0 should be allowed, got %v", err)
	}
}

func TestWithdrawBadAmount(t *testing.T) {
	a := newTestAccount(t, 100)

	for _, amt := range []int64{0, -5} {
		if _, err := a.Withdraw(amt, "Alice"); !errors.Is(err, ErrBadAmount) {
			t.Fatalf("amount=%d want ErrBadAmount, got %v", amt, err)
		}
	}
	// Rejected attempts must not touch the balance
	if got := a.Balance(); got != 100 {
		t.Fatalf("balance=%d want=100", got)
	}
}

func TestWithdrawSucceeded(t *testing.T) {
	a := newTestAccount(t, 100)

	out, err := a.Withdraw(30, "Alice")
	if err != nil {
		t.Fatal(err)
	}
	if !out.Succeeded() || out.Status != StatusSucceeded {
		t.Fatalf("want succeeded outcome, got %+v", out)
	}
	if out.Who != "Alice" || out.Amount != 30 {
		t.Fatalf("outcome fields wrong: %+v", out)
	}
	if out.BalanceBefore != 100 || out.BalanceAfter != 70 {
		t.Fatalf("balance before/after = %d/%d want 100/70", out.BalanceBefore, out.BalanceAfter)
	}
	if out.At.IsZero() {
		t.Fatal("outcome timestamp should be set")
	}
	if a.Balance() != 70 {
		t.Fatalf("balance=%d want=70", a.Balance())
	}
}

func TestWithdrawDeclined(t *testing.T) {
	a := newTestAccount(t, 40)

	out, err := a.Withdraw(50, "Bob")
	if err != nil {
		t.Fatal(err)
	}
	if out.Succeeded() || out.Status != StatusDeclined {
		t.Fatalf("want declined outcome, got %+v", out)
	}
	// A decline leaves both reported balances equal and the account untouched
	if out.BalanceBefore != 40 || out.BalanceAfter != 40 {
		t.Fatalf("balance before/after = %d/%d want 40/40", out.BalanceBefore, out.BalanceAfter)
	}
	if a.Balance() != 40 {
		t.Fatalf("balance=%d want=40", a.Balance())
	}
}

// Hammering an oversized withdrawal must decline every time and never move
// the balance.
func TestRepeatedDeclinesNeverMutate(t *testing.T) {
	a := newTestAccount(t, 40)

	for i := 0; i < 10; i++ {
		out, err := a.Withdraw(50, "Bob")
		if err != nil {
			t.Fatal(err)
		}
		if out.Succeeded() {
			t.Fatalf("attempt %d: want declined, got %+v", i, out)
		}
	}
	if a.Balance() != 40 {
		t.Fatalf("balance=%d want=40", a.Balance())
	}
}

// Many goroutines whose total demand far exceeds the balance. Whatever the
// interleaving, the succeeded amounts can never overdraw the account and the
// final balance must equal opening minus exactly what succeeded.
func TestConcurrentWithdrawalsAtomicity(t *testing.T) {
	const (
		opening  = 1000
		workers  = 8
		attempts = 50
		amount   = 7 // workers*attempts*amount = 2800 > opening
	)

	a := newTestAccount(t, opening)

	var mu sync.Mutex
	var outcomes []Outcome

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < attempts; i++ {
				out, err := a.Withdraw(amount, "worker")
				if err != nil {
					t.Errorf("withdraw err: %v", err)
					return
				}
				mu.Lock()
				outcomes = append(outcomes, out)
				mu.Unlock()

				// Balance must never be observably negative mid-run
				if bal := a.Balance(); bal < 0 {
					t.Errorf("negative balance observed: %d", bal)
					return
				}
			}
		}()
	}
	wg.Wait()

	if len(outcomes) != workers*attempts {
		t.Fatalf("outcomes=%d want=%d", len(outcomes), workers*attempts)
	}

	var withdrawn int64
	declines := 0
	for _, out := range outcomes {
		if out.Succeeded() {
			withdrawn += out.Amount
		} else {
			declines++
		}
	}

	if withdrawn > opening {
		t.Fatalf("withdrew %d from an account holding %d", withdrawn, opening)
	}
	if declines == 0 {
		t.Fatal("demand exceeded supply but nobody got declined")
	}
	if final := a.Balance(); final != opening-withdrawn {
		t.Fatalf("final=%d want=%d (opening %d - withdrawn %d)", final, opening-withdrawn, opening, withdrawn)
	}
	if final := a.Balance(); final < 0 {
		t.Fatalf("final balance negative: %d", final)
	}
}
