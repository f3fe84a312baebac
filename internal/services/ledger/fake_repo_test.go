package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"

	apperrors "carteras/internal/errors"
	"carteras/internal/models"
	"carteras/internal/repositories"

	"github.com/shopspring/decimal"
)

// fakeStore is an in-memory stand-in for the postgres repositories. It
// mimics the transactional contract: everything done inside
// ExecuteInTransaction commits together or rolls back together.
type fakeStore struct {
	mu           sync.Mutex
	wallets      map[uint]*models.Wallet
	txns         map[uint]*models.Transaction
	nextWalletID uint
	nextTxnID    uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		wallets: make(map[uint]*models.Wallet),
		txns:    make(map[uint]*models.Transaction),
	}
}

// lock is a no-op inside a transaction, which already holds the mutex.
func (s *fakeStore) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *fakeStore) snapshot() (map[uint]*models.Wallet, map[uint]*models.Transaction) {
	wallets := make(map[uint]*models.Wallet, len(s.wallets))
	for id, w := range s.wallets {
		cp := *w
		wallets[id] = &cp
	}
	txns := make(map[uint]*models.Transaction, len(s.txns))
	for id, t := range s.txns {
		cp := *t
		txns[id] = &cp
	}
	return wallets, txns
}

func (s *fakeStore) getWallet(id uint) (*models.Wallet, error) {
	w, ok := s.wallets[id]
	if !ok {
		return nil, apperrors.ErrWalletNotFound
	}
	cp := *w
	return &cp, nil
}

type fakeWalletRepo struct {
	store *fakeStore
	inTx  bool
}

type fakeTxRepo struct {
	store *fakeStore
	inTx  bool
}

// newFakeRepos returns both repositories bound to one fresh store.
func newFakeRepos() (*fakeWalletRepo, *fakeTxRepo) {
	store := newFakeStore()
	return &fakeWalletRepo{store: store}, &fakeTxRepo{store: store}
}

func (r *fakeWalletRepo) Create(_ context.Context, wallet *models.Wallet) error {
	defer r.store.lock(r.inTx)()
	r.store.nextWalletID++
	wallet.ID = r.store.nextWalletID
	wallet.Balance = wallet.InitialBalance
	cp := *wallet
	r.store.wallets[wallet.ID] = &cp
	return nil
}

func (r *fakeWalletRepo) GetByID(_ context.Context, id uint) (*models.Wallet, error) {
	defer r.store.lock(r.inTx)()
	return r.store.getWallet(id)
}

func (r *fakeWalletRepo) GetByIDForUpdate(_ context.Context, id uint) (*models.Wallet, error) {
	defer r.store.lock(r.inTx)()
	return r.store.getWallet(id)
}

func (r *fakeWalletRepo) ListByOwner(_ context.Context, ownerID uint, includeArchived bool) ([]*models.Wallet, error) {
	defer r.store.lock(r.inTx)()
	var out []*models.Wallet
	for _, w := range r.store.wallets {
		if w.OwnerID != ownerID {
			continue
		}
		if !includeArchived && !w.Active {
			continue
		}
		cp := *w
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeWalletRepo) Update(_ context.Context, wallet *models.Wallet) error {
	defer r.store.lock(r.inTx)()
	if _, ok := r.store.wallets[wallet.ID]; !ok {
		return apperrors.ErrWalletNotFound
	}
	cp := *wallet
	r.store.wallets[wallet.ID] = &cp
	return nil
}

func (r *fakeWalletRepo) Delete(_ context.Context, id uint) error {
	defer r.store.lock(r.inTx)()
	if _, ok := r.store.wallets[id]; !ok {
		return apperrors.ErrWalletNotFound
	}
	delete(r.store.wallets, id)
	return nil
}

func (r *fakeWalletRepo) ExecuteInTransaction(_ context.Context, fn func(repositories.WalletRepository, repositories.TransactionRepository) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	wallets, txns := r.store.snapshot()
	wr := &fakeWalletRepo{store: r.store, inTx: true}
	tr := &fakeTxRepo{store: r.store, inTx: true}
	if err := fn(wr, tr); err != nil {
		r.store.wallets = wallets
		r.store.txns = txns
		return err
	}
	return nil
}

func (r *fakeTxRepo) Create(_ context.Context, txn *models.Transaction) error {
	defer r.store.lock(r.inTx)()
	r.store.nextTxnID++
	txn.ID = r.store.nextTxnID
	cp := *txn
	r.store.txns[txn.ID] = &cp
	return nil
}

func (r *fakeTxRepo) GetByID(_ context.Context, id uint) (*models.Transaction, error) {
	defer r.store.lock(r.inTx)()
	t, ok := r.store.txns[id]
	if !ok {
		return nil, fmt.Errorf("transaction %d not found", id)
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTxRepo) List(_ context.Context, walletID uint, limit, offset int) ([]models.Transaction, error) {
	defer r.store.lock(r.inTx)()
	var out []models.Transaction
	for _, t := range r.store.txns {
		if t.WalletID != nil && *t.WalletID == walletID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTxRepo) GetByCorrelationID(_ context.Context, correlationID string) ([]models.Transaction, error) {
	defer r.store.lock(r.inTx)()
	var out []models.Transaction
	for _, t := range r.store.txns {
		if t.CorrelationID != nil && *t.CorrelationID == correlationID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTxRepo) SignedSum(_ context.Context, walletID uint) (decimal.Decimal, error) {
	defer r.store.lock(r.inTx)()
	sum := decimal.Zero
	for _, t := range r.store.txns {
		if t.WalletID != nil && *t.WalletID == walletID {
			sum = sum.Add(t.SignedAmount())
		}
	}
	return sum, nil
}

func (r *fakeTxRepo) CountByWallet(_ context.Context, walletID uint) (int64, error) {
	defer r.store.lock(r.inTx)()
	var count int64
	for _, t := range r.store.txns {
		if t.WalletID != nil && *t.WalletID == walletID {
			count++
		}
	}
	return count, nil
}

func (r *fakeTxRepo) DetachWallet(_ context.Context, walletID uint) error {
	defer r.store.lock(r.inTx)()
	for _, t := range r.store.txns {
		if t.WalletID != nil && *t.WalletID == walletID {
			t.WalletID = nil
		}
	}
	return nil
}

func (r *fakeTxRepo) DeleteByWallet(_ context.Context, walletID uint) error {
	defer r.store.lock(r.inTx)()
	for id, t := range r.store.txns {
		if t.WalletID != nil && *t.WalletID == walletID {
			delete(r.store.txns, id)
		}
	}
	return nil
}
