package ledger

import (
	"context"

	"carteras/internal/models"

	"github.com/shopspring/decimal"
)

// Service defines the ledger service interface.
type Service interface {
	// Wallet lifecycle
	CreateWallet(ctx context.Context, req CreateWalletRequest) (*models.Wallet, error)
	GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error)
	ListWallets(ctx context.Context, ownerID uint, includeArchived bool) ([]*models.Wallet, error)
	UpdateWallet(ctx context.Context, req UpdateWalletRequest) (*models.Wallet, error)
	ArchiveWallet(ctx context.Context, walletID uint) (*models.Wallet, error)
	UnarchiveWallet(ctx context.Context, walletID uint) (*models.Wallet, error)
	DeleteWallet(ctx context.Context, walletID uint, mode DeleteMode) error

	// Ledger operations
	Deposit(ctx context.Context, req DepositRequest) (*OperationResult, error)
	Withdraw(ctx context.Context, req WithdrawRequest) (*OperationResult, error)
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
	Adjust(ctx context.Context, req AdjustmentRequest) (*OperationResult, error)

	// History
	History(ctx context.Context, walletID uint, opts ListOptions) ([]models.Transaction, error)
	TransferByCorrelation(ctx context.Context, correlationID string) ([]models.Transaction, error)

	// BookBalance recomputes the balance implied by the transaction log.
	BookBalance(ctx context.Context, walletID uint) (decimal.Decimal, error)
}

// Cache is the wallet read cache the service invalidates on every mutation.
type Cache interface {
	GetWallet(ctx context.Context, id uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, ids ...uint) error
}
