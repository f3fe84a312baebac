// Package reconciliation synchronizes wallet balances against externally
// tracked expense and income records, correcting drift through auditable
// adjustment transactions.
package reconciliation

import (
	"context"
	"time"

	"carteras/internal/models"
	"carteras/internal/services/ledger"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// SyncConcept is the concept written on corrective adjustments.
const SyncConcept = "Sincronización automática"

// DefaultTolerance is half of one minor currency unit; differences at or
// below it are rounding noise, not drift.
var DefaultTolerance = decimal.NewFromFloat(0.005)

// Result reports what a sync run found and what, if anything, it corrected.
type Result struct {
	WalletID        uint                `json:"wallet_id"`
	ExpectedBalance decimal.Decimal     `json:"expected_balance"`
	CurrentBalance  decimal.Decimal     `json:"current_balance"`
	Difference      decimal.Decimal     `json:"difference"`
	Adjustment      *models.Transaction `json:"adjustment,omitempty"`
}

// Engine recomputes a wallet's expected balance from external records and
// posts corrections through the ledger service, so corrections obey the same
// invariants as every other mutation.
type Engine struct {
	ledger    ledger.Service
	records   RecordStore
	tolerance decimal.Decimal
}

// NewEngine creates a reconciliation engine. A zero tolerance falls back to
// DefaultTolerance.
func NewEngine(ledgerSvc ledger.Service, records RecordStore, tolerance decimal.Decimal) *Engine {
	if ledgerSvc == nil {
		panic("ledger service is required")
	}
	if records == nil {
		panic("record store is required")
	}
	if tolerance.Sign() <= 0 {
		tolerance = DefaultTolerance
	}
	return &Engine{
		ledger:    ledgerSvc,
		records:   records,
		tolerance: tolerance,
	}
}

// Sync reconciles one wallet. The read of external records and the ledger
// write are not one transaction; any drift from interleaved writes is picked
// up by the next run.
func (e *Engine) Sync(ctx context.Context, walletID uint) (*Result, error) {
	wallet, err := e.ledger.GetWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}

	records, err := e.records.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}

	externalSum := decimal.Zero
	for _, r := range records {
		externalSum = externalSum.Add(r.Signed())
	}

	expected := wallet.InitialBalance.Add(externalSum)
	diff := expected.Sub(wallet.Balance)

	result := &Result{
		WalletID:        walletID,
		ExpectedBalance: expected,
		CurrentBalance:  wallet.Balance,
		Difference:      diff,
	}

	if diff.Abs().LessThanOrEqual(e.tolerance) {
		logrus.WithField("wallet_id", walletID).Debug("wallet in sync, nothing to correct")
		return result, nil
	}

	adj, err := e.ledger.Adjust(ctx, ledger.AdjustmentRequest{
		WalletID: walletID,
		Delta:    diff,
		Concept:  SyncConcept,
		Date:     time.Now(),
	})
	if err != nil {
		return nil, err
	}

	result.Adjustment = adj.Transaction
	logrus.WithFields(logrus.Fields{
		"wallet_id":  walletID,
		"difference": diff.String(),
	}).Info("posted corrective adjustment")
	return result, nil
}
