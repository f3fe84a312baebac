package repositories

import (
	"context"

	"carteras/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionRepository is the append-only transaction log. Entries are never
// updated or deleted individually; DetachWallet and DeleteByWallet exist only
// as bulk structural operations for wallet deletion.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	// List returns a wallet's entries in chronological order.
	List(ctx context.Context, walletID uint, limit, offset int) ([]models.Transaction, error)
	// GetByCorrelationID returns both halves of a transfer.
	GetByCorrelationID(ctx context.Context, correlationID string) ([]models.Transaction, error)
	// SignedSum totals the wallet's entries with the sign each type implies.
	SignedSum(ctx context.Context, walletID uint) (decimal.Decimal, error)
	CountByWallet(ctx context.Context, walletID uint) (int64, error)

	// DetachWallet clears the wallet reference on all of a wallet's entries.
	DetachWallet(ctx context.Context, walletID uint) error
	// DeleteByWallet removes all of a wallet's entries.
	DeleteByWallet(ctx context.Context, walletID uint) error
}
