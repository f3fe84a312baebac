package ledger

import (
	"time"

	"carteras/internal/models"

	"github.com/shopspring/decimal"
)

// Each mutating operation has its own request type with exactly the fields it
// validates; there is no shared loosely-typed request.

// DepositRequest credits a wallet.
type DepositRequest struct {
	WalletID uint
	Amount   decimal.Decimal
	Concept  string
	Date     time.Time
}

// WithdrawRequest debits a wallet, never below zero.
type WithdrawRequest struct {
	WalletID uint
	Amount   decimal.Decimal
	Concept  string
	Date     time.Time
}

// TransferRequest moves value between two wallets atomically.
type TransferRequest struct {
	SourceID uint
	DestID   uint
	Amount   decimal.Decimal
	Concept  string
	Date     time.Time
}

// AdjustmentRequest applies a signed correction. Used by the reconciliation
// engine; Delta may be negative.
type AdjustmentRequest struct {
	WalletID uint
	Delta    decimal.Decimal
	Concept  string
	Date     time.Time
}

// CreateWalletRequest opens a wallet for an owner.
type CreateWalletRequest struct {
	OwnerID        uint
	Name           string
	Description    string
	Currency       string
	Icon           string
	Color          string
	InitialBalance decimal.Decimal
}

// UpdateWalletRequest changes display fields only; balances are mutated
// exclusively through ledger operations.
type UpdateWalletRequest struct {
	WalletID    uint
	Name        string
	Description string
	Icon        string
	Color       string
}

// DeleteMode selects what happens to a wallet's dependent rows on deletion.
// There is no default: callers must choose explicitly.
type DeleteMode string

const (
	// DeleteDetach clears the wallet reference on dependent rows but keeps them.
	DeleteDetach DeleteMode = "detach"
	// DeleteCascade removes dependent rows along with the wallet.
	DeleteCascade DeleteMode = "cascade"
)

// ListOptions pages transaction history.
type ListOptions struct {
	Offset int
	Limit  int
}

// OperationResult is the authoritative state returned by a single-wallet
// mutation.
type OperationResult struct {
	Wallet      *models.Wallet      `json:"wallet"`
	Transaction *models.Transaction `json:"transaction"`
}

// TransferResult carries both sides of a completed transfer.
type TransferResult struct {
	Source        *models.Wallet      `json:"source"`
	Dest          *models.Wallet      `json:"dest"`
	Outgoing      *models.Transaction `json:"outgoing"`
	Incoming      *models.Transaction `json:"incoming"`
	CorrelationID string              `json:"correlation_id"`
}

// Config holds configuration for the ledger service.
type Config struct {
	DefaultCurrency string
	// LockWait bounds how long a mutation waits for its wallet locks before
	// failing with a conflict.
	LockWait            time.Duration
	DefaultHistoryLimit int
	MaxHistoryLimit     int
}
