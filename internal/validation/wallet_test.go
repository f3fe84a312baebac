package validation

import (
	"testing"
	"time"

	apperrors "carteras/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(decimal.NewFromFloat(0.01)))
	assert.ErrorIs(t, ValidateAmount(decimal.Zero), apperrors.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(decimal.NewFromInt(-1)), apperrors.ErrInvalidAmount)
}

func TestValidateConcept(t *testing.T) {
	assert.NoError(t, ValidateConcept("Salario"))
	assert.ErrorIs(t, ValidateConcept(""), apperrors.ErrMissingConcept)
	assert.ErrorIs(t, ValidateConcept("   "), apperrors.ErrMissingConcept)
}

func TestValidateDate(t *testing.T) {
	now := time.Now()
	assert.NoError(t, ValidateDate(now, now))
	assert.NoError(t, ValidateDate(now.Add(-24*time.Hour), now))
	assert.ErrorIs(t, ValidateDate(now.Add(time.Second), now), apperrors.ErrFutureDate)
}

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		currency string
		wantErr  bool
	}{
		{currency: "EUR"},
		{currency: "USD"},
		{currency: "eur", wantErr: true},
		{currency: "EU", wantErr: true},
		{currency: "EURO", wantErr: true},
		{currency: "E1R", wantErr: true},
		{currency: "", wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateCurrency(tt.currency)
		if tt.wantErr {
			assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency, "currency %q", tt.currency)
		} else {
			assert.NoError(t, err, "currency %q", tt.currency)
		}
	}
}

func TestValidateWalletName(t *testing.T) {
	assert.NoError(t, ValidateWalletName("Ahorros"))
	assert.ErrorIs(t, ValidateWalletName(" "), apperrors.ErrMissingName)
}
