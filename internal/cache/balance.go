package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/domain"
)

const balanceTTL = 24 * time.Hour

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddress,
	})
}

// BalanceCache keeps the derived reward balance per user. Every ledger
// write invalidates the entry; reads recompute from the log on a miss.
type BalanceCache struct {
	client *redis.Client
}

func NewBalanceCache(client *redis.Client) *BalanceCache {
	return &BalanceCache{client: client}
}

func (c *BalanceCache) Get(ctx context.Context, userID string) (*domain.RewardBalance, error) {
	val, err := c.client.Get(ctx, balanceKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var balance domain.RewardBalance
	if err := json.Unmarshal(val, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (c *BalanceCache) Set(ctx context.Context, userID string, balance *domain.RewardBalance) error {
	data, err := json.Marshal(balance)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, balanceKey(userID), data, balanceTTL).Err()
}

func (c *BalanceCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, balanceKey(userID)).Err()
}

func balanceKey(userID string) string {
	return "rewards:balance:" + userID
}
