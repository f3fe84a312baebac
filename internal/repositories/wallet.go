package repositories

import (
	"context"

	"carteras/internal/models"
)

// WalletRepository defines the interface for wallet persistence.
type WalletRepository interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByID(ctx context.Context, id uint) (*models.Wallet, error)
	// GetByIDForUpdate reads the wallet under a row lock. Only meaningful
	// inside ExecuteInTransaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Wallet, error)
	ListByOwner(ctx context.Context, ownerID uint, includeArchived bool) ([]*models.Wallet, error)
	Update(ctx context.Context, wallet *models.Wallet) error
	Delete(ctx context.Context, id uint) error

	// ExecuteInTransaction runs fn against transactional views of both
	// repositories. Everything fn does commits as a unit or not at all.
	ExecuteInTransaction(ctx context.Context, fn func(WalletRepository, TransactionRepository) error) error
}
