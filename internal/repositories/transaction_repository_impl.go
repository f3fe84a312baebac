package repositories

import (
	"context"
	"errors"
	"fmt"

	apperrors "carteras/internal/errors"
	"carteras/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction log repository backed by gorm.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("%w: create transaction: %v", apperrors.ErrConnection, err)
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.WithContext(ctx).First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transaction %d not found", id)
		}
		return nil, fmt.Errorf("%w: get transaction: %v", apperrors.ErrConnection, err)
	}
	return &txn, nil
}

func (r *transactionRepository) List(ctx context.Context, walletID uint, limit, offset int) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("date ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list transactions: %v", apperrors.ErrConnection, err)
	}
	return txns, nil
}

func (r *transactionRepository) GetByCorrelationID(ctx context.Context, correlationID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.WithContext(ctx).
		Where("correlation_id = ?", correlationID).
		Order("id ASC").
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("%w: get transactions by correlation: %v", apperrors.ErrConnection, err)
	}
	return txns, nil
}

func (r *transactionRepository) SignedSum(ctx context.Context, walletID uint) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("wallet_id = ?", walletID).
		Select("COALESCE(SUM(CASE WHEN type IN ? THEN amount ELSE -amount END), 0)",
			models.PositiveTransactionTypes()).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: sum transactions: %v", apperrors.ErrConnection, err)
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *transactionRepository) CountByWallet(ctx context.Context, walletID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("wallet_id = ?", walletID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: count transactions: %v", apperrors.ErrConnection, err)
	}
	return count, nil
}

func (r *transactionRepository) DetachWallet(ctx context.Context, walletID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("wallet_id = ?", walletID).
		Update("wallet_id", nil).Error
	if err != nil {
		return fmt.Errorf("%w: detach transactions: %v", apperrors.ErrConnection, err)
	}
	return nil
}

func (r *transactionRepository) DeleteByWallet(ctx context.Context, walletID uint) error {
	err := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Delete(&models.Transaction{}).Error
	if err != nil {
		return fmt.Errorf("%w: delete transactions: %v", apperrors.ErrConnection, err)
	}
	return nil
}
