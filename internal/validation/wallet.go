// Package validation holds the input checks shared by ledger operations.
package validation

import (
	"strings"
	"time"

	apperrors "carteras/internal/errors"

	"github.com/shopspring/decimal"
)

// ValidateAmount rejects zero and negative amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return apperrors.ErrInvalidAmount
	}
	return nil
}

// ValidateConcept rejects empty or whitespace-only concepts.
func ValidateConcept(concept string) error {
	if strings.TrimSpace(concept) == "" {
		return apperrors.ErrMissingConcept
	}
	return nil
}

// ValidateDate rejects future-dated transactions.
func ValidateDate(date time.Time, now time.Time) error {
	if date.After(now) {
		return apperrors.ErrFutureDate
	}
	return nil
}

// ValidateOperation runs the checks common to all ledger mutations.
func ValidateOperation(amount decimal.Decimal, concept string, date time.Time) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if err := ValidateConcept(concept); err != nil {
		return err
	}
	return ValidateDate(date, time.Now())
}

// ValidateCurrency accepts 3-letter uppercase ISO codes.
func ValidateCurrency(currency string) error {
	if len(currency) != 3 {
		return apperrors.ErrInvalidCurrency
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return apperrors.ErrInvalidCurrency
		}
	}
	return nil
}

// ValidateWalletName rejects empty or whitespace-only names.
func ValidateWalletName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.ErrMissingName
	}
	return nil
}
