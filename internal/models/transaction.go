package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionTypeDeposit     = "deposit"
	TransactionTypeWithdraw    = "withdraw"
	TransactionTypeTransferOut = "transfer_out"
	TransactionTypeTransferIn  = "transfer_in"
	TransactionTypeAdjustment  = "adjustment"
)

// Transaction is an immutable ledger entry. Amount is positive and its
// direction is implied by Type, except for adjustments which carry their own
// sign because a correction may go either way.
//
// WalletID is a pointer so that detaching a wallet can clear the reference
// while keeping the row.
type Transaction struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	WalletID        *uint           `gorm:"index:idx_transactions_wallet_date" json:"wallet_id"`
	Type            string          `gorm:"not null" json:"type"`
	Amount          decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"amount"`
	Concept         string          `gorm:"not null" json:"concept"`
	Date            time.Time       `gorm:"index:idx_transactions_wallet_date;not null" json:"date"`
	RelatedWalletID *uint           `json:"related_wallet_id,omitempty"`
	CorrelationID   *string         `gorm:"index" json:"correlation_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PositiveTransactionTypes lists the types whose stored amount already carries
// its balance sign. SQL aggregations must negate every other type, so this is
// the single place that decides the sign of each type.
func PositiveTransactionTypes() []string {
	return []string{TransactionTypeDeposit, TransactionTypeTransferIn, TransactionTypeAdjustment}
}

// SignedAmount returns the amount with the sign its type implies, the value
// each entry contributes to the wallet balance.
func (t *Transaction) SignedAmount() decimal.Decimal {
	for _, typ := range PositiveTransactionTypes() {
		if t.Type == typ {
			// Adjustments are stored signed, the rest are positive.
			return t.Amount
		}
	}
	return t.Amount.Neg()
}
