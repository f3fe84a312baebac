package repositories

import (
	"context"
	"errors"
	"fmt"

	apperrors "carteras/internal/errors"
	"carteras/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a wallet repository backed by gorm.
func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	if err := r.db.WithContext(ctx).Create(wallet).Error; err != nil {
		return fmt.Errorf("%w: create wallet: %v", apperrors.ErrConnection, err)
	}
	return nil
}

func (r *walletRepository) GetByID(ctx context.Context, id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.WithContext(ctx).First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWalletNotFound
		}
		return nil, fmt.Errorf("%w: get wallet: %v", apperrors.ErrConnection, err)
	}
	return &wallet, nil
}

func (r *walletRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&wallet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWalletNotFound
		}
		return nil, fmt.Errorf("%w: get wallet for update: %v", apperrors.ErrConnection, err)
	}
	return &wallet, nil
}

func (r *walletRepository) ListByOwner(ctx context.Context, ownerID uint, includeArchived bool) ([]*models.Wallet, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if !includeArchived {
		q = q.Where("active = ?", true)
	}
	var wallets []*models.Wallet
	if err := q.Order("id ASC").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("%w: list wallets: %v", apperrors.ErrConnection, err)
	}
	return wallets, nil
}

func (r *walletRepository) Update(ctx context.Context, wallet *models.Wallet) error {
	if err := r.db.WithContext(ctx).Save(wallet).Error; err != nil {
		return fmt.Errorf("%w: update wallet: %v", apperrors.ErrConnection, err)
	}
	return nil
}

func (r *walletRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Wallet{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: delete wallet: %v", apperrors.ErrConnection, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrWalletNotFound
	}
	return nil
}

func (r *walletRepository) ExecuteInTransaction(ctx context.Context, fn func(WalletRepository, TransactionRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&walletRepository{db: tx}, &transactionRepository{db: tx})
	})
}
