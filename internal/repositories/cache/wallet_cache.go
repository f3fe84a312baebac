// Package cache provides the redis-backed read cache for wallets.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carteras/internal/models"

	"github.com/redis/go-redis/v9"
)

// WalletCache caches wallets by ID. It is a read-side optimization: misses
// and redis failures both fall through to the database.
type WalletCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWalletCache(client *redis.Client, ttl time.Duration) *WalletCache {
	return &WalletCache{client: client, ttl: ttl}
}

func walletKey(id uint) string {
	return fmt.Sprintf("wallet:%d", id)
}

// GetWallet returns the cached wallet or redis.Nil on a miss.
func (c *WalletCache) GetWallet(ctx context.Context, id uint) (*models.Wallet, error) {
	val, err := c.client.Get(ctx, walletKey(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var wallet models.Wallet
	if err := json.Unmarshal(val, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (c *WalletCache) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, walletKey(wallet.ID), data, c.ttl).Err()
}

// InvalidateWallet drops the cached entries for the given wallets.
func (c *WalletCache) InvalidateWallet(ctx context.Context, ids ...uint) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, walletKey(id))
	}
	return c.client.Del(ctx, keys...).Err()
}

// HealthCheck pings redis.
func (c *WalletCache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *WalletCache) Close() error {
	return c.client.Close()
}
