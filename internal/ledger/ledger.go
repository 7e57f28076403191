package ledger

import (
	"escrow-engine/internal/escrowerrors"
	model "escrow-engine/internal/models"
	"fmt"
	"math"
	"sync"

	"github.com/shopspring/decimal"
)

// EscrowAccount is the reserved account holding funds for items in escrow
const EscrowAccount model.Address = "escrow"

// MaxFeeBasisPoints caps the platform fee at 10%
const MaxFeeBasisPoints int64 = 1000

var basisPointsDenominator = decimal.NewFromInt(10000)

// Transfer moves Amount from one account to another
type Transfer struct {
	From   model.Address
	To     model.Address
	Amount int64
}

// Acceptor is consulted for every credit to a non-escrow account before a payout is applied.
// It runs under the ledger lock and must not call back into the ledger.
type Acceptor interface {
	AcceptCredit(account model.Address, amount int64) error
}

// AcceptorFunc adapts a function to Acceptor
type AcceptorFunc func(account model.Address, amount int64) error

func (f AcceptorFunc) AcceptCredit(account model.Address, amount int64) error {
	return f(account, amount)
}

// Option configures a Ledger
type Option func(*Ledger)

// WithAcceptor installs a recipient policy
func WithAcceptor(a Acceptor) Option {
	return func(l *Ledger) {
		l.acceptor = a
	}
}

// Ledger holds account balances in the smallest currency unit
type Ledger struct {
	mu       sync.RWMutex
	balances map[model.Address]int64
	acceptor Acceptor
}

// New creates an empty ledger
func New(opts ...Option) *Ledger {
	l := &Ledger{balances: make(map[model.Address]int64)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ComputeSplit returns fee = floor(price*feeBasisPoints/10000) and the seller's remainder.
// The product is computed in decimal so large prices do not overflow.
func ComputeSplit(price, feeBasisPoints int64) (fee, sellerAmount int64) {
	q, _ := decimal.NewFromInt(price).
		Mul(decimal.NewFromInt(feeBasisPoints)).
		QuoRem(basisPointsDenominator, 0)
	fee = q.IntPart()
	return fee, price - fee
}

// FormatAmount renders an amount of smallest units as a decimal string with the given precision
func FormatAmount(amount int64, decimals int32) string {
	return decimal.New(amount, -decimals).String()
}

// FormatBasisPoints renders basis points as a percentage string (250 -> "2.5")
func FormatBasisPoints(bps int64) string {
	return decimal.New(bps, -2).String()
}

// Balance returns the balance of an account, zero if it was never credited
func (l *Ledger) Balance(account model.Address) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[account]
}

// Total returns the sum of every balance, escrow included
func (l *Ledger) Total() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total int64
	for _, b := range l.balances {
		total += b
	}
	return total
}

// Deposit credits externally sourced funds to an account
func (l *Ledger) Deposit(account model.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit to %s: %w", account, escrowerrors.ErrNonPositiveAmount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.balances[account]
	if current > math.MaxInt64-amount {
		return fmt.Errorf("deposit to %s: %w", account, escrowerrors.ErrBalanceOverflow)
	}
	l.balances[account] = current + amount
	return nil
}

// Payout applies every transfer as one atomic unit. Transfers are validated in order against
// staged balances; if any fails nothing is applied. Zero-amount transfers are skipped.
func (l *Ledger) Payout(transfers ...Transfer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	staged := make(map[model.Address]int64, len(transfers)*2)
	balance := func(a model.Address) int64 {
		if b, ok := staged[a]; ok {
			return b
		}
		return l.balances[a]
	}

	for i, tr := range transfers {
		if tr.Amount == 0 {
			continue
		}
		if tr.Amount < 0 {
			return fmt.Errorf("payout leg %d: %w", i, escrowerrors.ErrNonPositiveAmount)
		}

		from := balance(tr.From)
		if from < tr.Amount {
			return fmt.Errorf("payout leg %d from %s: %w", i, tr.From, escrowerrors.ErrInsufficientBalance)
		}
		if tr.To != EscrowAccount && l.acceptor != nil {
			if err := l.acceptor.AcceptCredit(tr.To, tr.Amount); err != nil {
				return fmt.Errorf("payout leg %d to %s: %w: %v", i, tr.To, escrowerrors.ErrTransferRejected, err)
			}
		}
		staged[tr.From] = from - tr.Amount

		to := balance(tr.To)
		if to > math.MaxInt64-tr.Amount {
			return fmt.Errorf("payout leg %d to %s: %w", i, tr.To, escrowerrors.ErrBalanceOverflow)
		}
		staged[tr.To] = to + tr.Amount
	}

	for account, b := range staged {
		l.balances[account] = b
	}
	return nil
}
