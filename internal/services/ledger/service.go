package ledger

import (
	"context"
	"errors"
	"time"

	apperrors "carteras/internal/errors"
	"carteras/internal/models"
	"carteras/internal/repositories"
	"carteras/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type service struct {
	repo    repositories.WalletRepository
	txRepo  repositories.TransactionRepository
	cache   Cache
	guard   *Guard
	config  Config
	metrics MetricsCollector
}

// NewService creates a new ledger service.
func NewService(
	repo repositories.WalletRepository,
	txRepo repositories.TransactionRepository,
	cache Cache,
	config Config,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("wallet repository is required")
	}
	if txRepo == nil {
		panic("transaction repository is required")
	}

	if config.DefaultCurrency == "" {
		config.DefaultCurrency = DefaultCurrency
	}
	if config.LockWait <= 0 {
		config.LockWait = DefaultLockWait
	}
	if config.DefaultHistoryLimit <= 0 {
		config.DefaultHistoryLimit = DefaultHistoryLimit
	}
	if config.MaxHistoryLimit <= 0 {
		config.MaxHistoryLimit = MaxHistoryLimit
	}

	// Cache and metrics are optional.
	if cache == nil {
		cache = &noopCache{}
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:    repo,
		txRepo:  txRepo,
		cache:   cache,
		guard:   NewGuard(config.LockWait),
		config:  config,
		metrics: metrics,
	}
}

func (s *service) CreateWallet(ctx context.Context, req CreateWalletRequest) (*models.Wallet, error) {
	if err := validation.ValidateWalletName(req.Name); err != nil {
		return nil, err
	}
	currency := req.Currency
	if currency == "" {
		currency = s.config.DefaultCurrency
	}
	if err := validation.ValidateCurrency(currency); err != nil {
		return nil, err
	}

	wallet := &models.Wallet{
		OwnerID:        req.OwnerID,
		Name:           req.Name,
		Description:    req.Description,
		Currency:       currency,
		Icon:           req.Icon,
		Color:          req.Color,
		InitialBalance: req.InitialBalance,
		Active:         true,
	}
	if err := s.repo.Create(ctx, wallet); err != nil {
		return nil, err
	}

	s.cache.SetWallet(ctx, wallet)
	logrus.WithFields(logrus.Fields{
		"wallet_id": wallet.ID,
		"owner_id":  wallet.OwnerID,
		"currency":  wallet.Currency,
	}).Info("wallet created")
	return wallet, nil
}

func (s *service) GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error) {
	if wallet, err := s.cache.GetWallet(ctx, walletID); err == nil {
		return wallet, nil
	}

	wallet, err := s.repo.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}

	s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) ListWallets(ctx context.Context, ownerID uint, includeArchived bool) ([]*models.Wallet, error) {
	return s.repo.ListByOwner(ctx, ownerID, includeArchived)
}

func (s *service) UpdateWallet(ctx context.Context, req UpdateWalletRequest) (*models.Wallet, error) {
	if err := validation.ValidateWalletName(req.Name); err != nil {
		return nil, err
	}

	var updated *models.Wallet
	err := s.withWallets(ctx, "update_wallet", []uint{req.WalletID}, func(wr repositories.WalletRepository, _ repositories.TransactionRepository) error {
		wallet, err := wr.GetByIDForUpdate(ctx, req.WalletID)
		if err != nil {
			return err
		}
		wallet.Name = req.Name
		wallet.Description = req.Description
		wallet.Icon = req.Icon
		wallet.Color = req.Color
		if err := wr.Update(ctx, wallet); err != nil {
			return err
		}
		updated = wallet
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) ArchiveWallet(ctx context.Context, walletID uint) (*models.Wallet, error) {
	return s.setActive(ctx, walletID, false)
}

func (s *service) UnarchiveWallet(ctx context.Context, walletID uint) (*models.Wallet, error) {
	return s.setActive(ctx, walletID, true)
}

func (s *service) setActive(ctx context.Context, walletID uint, active bool) (*models.Wallet, error) {
	var updated *models.Wallet
	err := s.withWallets(ctx, "set_active", []uint{walletID}, func(wr repositories.WalletRepository, _ repositories.TransactionRepository) error {
		wallet, err := wr.GetByIDForUpdate(ctx, walletID)
		if err != nil {
			return err
		}
		wallet.Active = active
		if err := wr.Update(ctx, wallet); err != nil {
			return err
		}
		updated = wallet
		return nil
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"wallet_id": walletID, "active": active}).Info("wallet status changed")
	return updated, nil
}

func (s *service) DeleteWallet(ctx context.Context, walletID uint, mode DeleteMode) error {
	if mode != DeleteDetach && mode != DeleteCascade {
		return apperrors.ErrInvalidDeleteMode
	}

	err := s.withWallets(ctx, "delete_wallet", []uint{walletID}, func(wr repositories.WalletRepository, tr repositories.TransactionRepository) error {
		if _, err := wr.GetByIDForUpdate(ctx, walletID); err != nil {
			return err
		}
		switch mode {
		case DeleteDetach:
			if err := tr.DetachWallet(ctx, walletID); err != nil {
				return err
			}
		case DeleteCascade:
			if err := tr.DeleteByWallet(ctx, walletID); err != nil {
				return err
			}
		}
		return wr.Delete(ctx, walletID)
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"wallet_id": walletID, "mode": mode}).Info("wallet deleted")
	return nil
}

func (s *service) Deposit(ctx context.Context, req DepositRequest) (*OperationResult, error) {
	if err := validation.ValidateOperation(req.Amount, req.Concept, req.Date); err != nil {
		s.recordError("deposit", err)
		return nil, err
	}

	var res OperationResult
	err := s.withWallets(ctx, "deposit", []uint{req.WalletID}, func(wr repositories.WalletRepository, tr repositories.TransactionRepository) error {
		wallet, err := s.activeWalletForUpdate(ctx, wr, req.WalletID)
		if err != nil {
			return err
		}

		wallet.Balance = wallet.Balance.Add(req.Amount)
		if err := wr.Update(ctx, wallet); err != nil {
			return err
		}

		txn := newTransaction(req.WalletID, models.TransactionTypeDeposit, req.Amount, req.Concept, req.Date)
		if err := tr.Create(ctx, txn); err != nil {
			return err
		}

		res = OperationResult{Wallet: wallet, Transaction: txn}
		return nil
	})
	if err != nil {
		s.recordError("deposit", err)
		return nil, err
	}

	s.metrics.RecordTransaction(models.TransactionTypeDeposit, req.Amount)
	return &res, nil
}

func (s *service) Withdraw(ctx context.Context, req WithdrawRequest) (*OperationResult, error) {
	if err := validation.ValidateOperation(req.Amount, req.Concept, req.Date); err != nil {
		s.recordError("withdraw", err)
		return nil, err
	}

	var res OperationResult
	err := s.withWallets(ctx, "withdraw", []uint{req.WalletID}, func(wr repositories.WalletRepository, tr repositories.TransactionRepository) error {
		wallet, err := s.activeWalletForUpdate(ctx, wr, req.WalletID)
		if err != nil {
			return err
		}

		// Affordability is decided against the row-locked balance, never a
		// stale read.
		if wallet.Balance.LessThan(req.Amount) {
			return apperrors.ErrInsufficientBalance
		}

		wallet.Balance = wallet.Balance.Sub(req.Amount)
		if err := wr.Update(ctx, wallet); err != nil {
			return err
		}

		txn := newTransaction(req.WalletID, models.TransactionTypeWithdraw, req.Amount, req.Concept, req.Date)
		if err := tr.Create(ctx, txn); err != nil {
			return err
		}

		res = OperationResult{Wallet: wallet, Transaction: txn}
		return nil
	})
	if err != nil {
		s.recordError("withdraw", err)
		return nil, err
	}

	s.metrics.RecordTransaction(models.TransactionTypeWithdraw, req.Amount)
	return &res, nil
}

func (s *service) Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	if req.SourceID == req.DestID {
		s.recordError("transfer", apperrors.ErrSameWalletTransfer)
		return nil, apperrors.ErrSameWalletTransfer
	}
	if err := validation.ValidateOperation(req.Amount, req.Concept, req.Date); err != nil {
		s.recordError("transfer", err)
		return nil, err
	}

	var res TransferResult
	err := s.withWallets(ctx, "transfer", []uint{req.SourceID, req.DestID}, func(wr repositories.WalletRepository, tr repositories.TransactionRepository) error {
		// Row locks follow the same canonical order as the guard.
		wallets := make(map[uint]*models.Wallet, 2)
		first, second := req.SourceID, req.DestID
		if second < first {
			first, second = second, first
		}
		for _, id := range []uint{first, second} {
			w, err := s.activeWalletForUpdate(ctx, wr, id)
			if err != nil {
				return err
			}
			wallets[id] = w
		}

		source, dest := wallets[req.SourceID], wallets[req.DestID]
		if source.Balance.LessThan(req.Amount) {
			return apperrors.ErrInsufficientBalance
		}

		source.Balance = source.Balance.Sub(req.Amount)
		dest.Balance = dest.Balance.Add(req.Amount)
		if err := wr.Update(ctx, source); err != nil {
			return err
		}
		if err := wr.Update(ctx, dest); err != nil {
			return err
		}

		correlationID := uuid.NewString()
		outgoing := newTransaction(req.SourceID, models.TransactionTypeTransferOut, req.Amount, req.Concept, req.Date)
		outgoing.RelatedWalletID = &dest.ID
		outgoing.CorrelationID = &correlationID
		incoming := newTransaction(req.DestID, models.TransactionTypeTransferIn, req.Amount, req.Concept, req.Date)
		incoming.RelatedWalletID = &source.ID
		incoming.CorrelationID = &correlationID

		if err := tr.Create(ctx, outgoing); err != nil {
			return err
		}
		if err := tr.Create(ctx, incoming); err != nil {
			return err
		}

		res = TransferResult{
			Source:        source,
			Dest:          dest,
			Outgoing:      outgoing,
			Incoming:      incoming,
			CorrelationID: correlationID,
		}
		return nil
	})
	if err != nil {
		s.recordError("transfer", err)
		return nil, err
	}

	s.metrics.RecordTransaction(models.TransactionTypeTransferOut, req.Amount)
	return &res, nil
}

func (s *service) Adjust(ctx context.Context, req AdjustmentRequest) (*OperationResult, error) {
	if req.Delta.IsZero() {
		s.recordError("adjustment", apperrors.ErrInvalidAmount)
		return nil, apperrors.ErrInvalidAmount
	}
	if err := validation.ValidateConcept(req.Concept); err != nil {
		s.recordError("adjustment", err)
		return nil, err
	}
	if err := validation.ValidateDate(req.Date, time.Now()); err != nil {
		s.recordError("adjustment", err)
		return nil, err
	}

	var res OperationResult
	err := s.withWallets(ctx, "adjustment", []uint{req.WalletID}, func(wr repositories.WalletRepository, tr repositories.TransactionRepository) error {
		wallet, err := s.activeWalletForUpdate(ctx, wr, req.WalletID)
		if err != nil {
			return err
		}

		wallet.Balance = wallet.Balance.Add(req.Delta)
		if err := wr.Update(ctx, wallet); err != nil {
			return err
		}

		// Adjustment entries keep the delta's own sign.
		txn := newTransaction(req.WalletID, models.TransactionTypeAdjustment, req.Delta, req.Concept, req.Date)
		if err := tr.Create(ctx, txn); err != nil {
			return err
		}

		res = OperationResult{Wallet: wallet, Transaction: txn}
		return nil
	})
	if err != nil {
		s.recordError("adjustment", err)
		return nil, err
	}

	s.metrics.RecordTransaction(models.TransactionTypeAdjustment, req.Delta.Abs())
	return &res, nil
}

func (s *service) History(ctx context.Context, walletID uint, opts ListOptions) ([]models.Transaction, error) {
	// Archived wallets still serve reads; a missing wallet does not.
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.config.DefaultHistoryLimit
	}
	if limit > s.config.MaxHistoryLimit {
		limit = s.config.MaxHistoryLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	return s.txRepo.List(ctx, walletID, limit, offset)
}

func (s *service) TransferByCorrelation(ctx context.Context, correlationID string) ([]models.Transaction, error) {
	return s.txRepo.GetByCorrelationID(ctx, correlationID)
}

func (s *service) BookBalance(ctx context.Context, walletID uint) (decimal.Decimal, error) {
	wallet, err := s.repo.GetByID(ctx, walletID)
	if err != nil {
		return decimal.Zero, err
	}
	sum, err := s.txRepo.SignedSum(ctx, walletID)
	if err != nil {
		return decimal.Zero, err
	}
	return wallet.InitialBalance.Add(sum), nil
}

// withWallets acquires the guard for the given wallets, runs fn inside a
// database transaction and invalidates the touched cache entries afterwards.
func (s *service) withWallets(ctx context.Context, operation string, ids []uint, fn func(repositories.WalletRepository, repositories.TransactionRepository) error) error {
	start := time.Now()
	release, err := s.guard.Lock(ctx, ids...)
	if err != nil {
		return err
	}
	defer release()

	if err := s.repo.ExecuteInTransaction(ctx, fn); err != nil {
		return err
	}

	if err := s.cache.InvalidateWallet(ctx, ids...); err != nil {
		logrus.WithError(err).WithField("wallets", ids).Warn("cache invalidation failed")
	}
	s.metrics.RecordOperationDuration(operation, time.Since(start))
	return nil
}

func (s *service) activeWalletForUpdate(ctx context.Context, wr repositories.WalletRepository, id uint) (*models.Wallet, error) {
	wallet, err := wr.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if !wallet.Active {
		return nil, apperrors.ErrWalletInactive
	}
	return wallet, nil
}

func (s *service) recordError(operation string, err error) {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		s.metrics.RecordError(operation, domainErr.Code)
		return
	}
	s.metrics.RecordError(operation, "internal")
}

func newTransaction(walletID uint, txType string, amount decimal.Decimal, concept string, date time.Time) *models.Transaction {
	id := walletID
	return &models.Transaction{
		WalletID: &id,
		Type:     txType,
		Amount:   amount,
		Concept:  concept,
		Date:     date,
	}
}

type noopCache struct{}

func (n *noopCache) GetWallet(context.Context, uint) (*models.Wallet, error) {
	return nil, errors.New("cache disabled")
}
func (n *noopCache) SetWallet(context.Context, *models.Wallet) error { return nil }
func (n *noopCache) InvalidateWallet(context.Context, ...uint) error { return nil }
