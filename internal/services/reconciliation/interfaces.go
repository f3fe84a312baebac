package reconciliation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Record signs
const (
	SignIncome  = 1
	SignExpense = -1
)

// Record is one externally tracked expense or income entry tagged to a
// wallet. Amount is positive; Sign tells which way it moves the balance.
type Record struct {
	Amount decimal.Decimal
	Sign   int
	Date   time.Time
}

// Signed returns the record's contribution to the wallet balance.
func (r Record) Signed() decimal.Decimal {
	if r.Sign < 0 {
		return r.Amount.Neg()
	}
	return r.Amount
}

// RecordStore is the read-only collaborator holding externally tracked
// expense and income records. The engine never writes to it and assumes
// nothing about its schema beyond signed amounts tagged with a wallet.
type RecordStore interface {
	ListByWallet(ctx context.Context, walletID uint) ([]Record, error)
}
