package ledger

import (
	"time"

	"carteras/internal/config"
	"carteras/internal/repositories"
	"carteras/internal/repositories/cache"

	"gorm.io/gorm"
)

// NewServiceFromEnv is the composition root for the ledger: it wires the
// postgres repositories and the redis wallet cache, both configured from the
// environment, into a ready service.
func NewServiceFromEnv(db *gorm.DB, metrics MetricsCollector) Service {
	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	walletCache := cache.NewWalletCache(redisClient, config.GetDurationEnv("WALLET_CACHE_TTL", 5*time.Minute))

	return NewService(
		repositories.NewWalletRepository(db),
		repositories.NewTransactionRepository(db),
		walletCache,
		Config{
			DefaultCurrency: config.GetEnv("LEDGER_DEFAULT_CURRENCY", DefaultCurrency),
			LockWait:        config.GetDurationEnv("LEDGER_LOCK_WAIT", DefaultLockWait),
		},
		metrics,
	)
}
