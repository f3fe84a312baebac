package ledger

import "time"

// Default configuration values
const (
	DefaultCurrency     = "EUR"
	DefaultLockWait     = 3 * time.Second
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 100
)
