package errors

var (
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "amount must be positive",
	}
	ErrMissingConcept = &DomainError{
		Code:    "MISSING_CONCEPT",
		Message: "concept must not be empty",
	}
	ErrFutureDate = &DomainError{
		Code:    "FUTURE_DATE",
		Message: "transaction date must not be in the future",
	}
	ErrSameWalletTransfer = &DomainError{
		Code:    "SAME_WALLET_TRANSFER",
		Message: "source and destination wallets must differ",
	}
	ErrInvalidCurrency = &DomainError{
		Code:    "INVALID_CURRENCY",
		Message: "currency must be a 3-letter ISO code",
	}
	ErrMissingName = &DomainError{
		Code:    "MISSING_NAME",
		Message: "wallet name must not be empty",
	}
	ErrInvalidDeleteMode = &DomainError{
		Code:    "INVALID_DELETE_MODE",
		Message: "wallet deletion requires an explicit detach or cascade mode",
	}
	ErrWalletNotFound = &DomainError{
		Code:    "WALLET_NOT_FOUND",
		Message: "wallet not found",
	}
	ErrWalletInactive = &DomainError{
		Code:    "WALLET_INACTIVE",
		Message: "wallet is archived and does not accept mutations",
	}
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient wallet balance",
	}
	ErrConflict = &DomainError{
		Code:    "CONFLICT",
		Message: "operation lost a concurrent race, safe to retry",
	}
	ErrConnection = &DomainError{
		Code:    "CONNECTION",
		Message: "persistence layer unreachable",
	}
)
