package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"resto-go-pos/config"

	"github.com/redis/go-redis/v9"
)

// New creates a redis client and verifies the connection.
func New(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	log.Printf("connected to Redis at %s, DB: %d", cfg.Addr, cfg.DB)
	return rdb, nil
}

// TokenStore keeps issued tokens and a logout blacklist in redis.
type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

// Store records the active token for a user.
func (s *TokenStore) Store(ctx context.Context, userID int, token string, expiration time.Duration) error {
	key := fmt.Sprintf("token:%d", userID)
	if err := s.rdb.Set(ctx, key, token, expiration).Err(); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// Revoke blacklists a token until its natural expiry.
func (s *TokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := "token_blacklist:" + token
	if err := s.rdb.Set(ctx, key, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token has been blacklisted. Redis errors are
// treated as not-revoked so an outage does not lock everyone out.
func (s *TokenStore) IsRevoked(ctx context.Context, token string) bool {
	key := "token_blacklist:" + token
	n, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		log.Printf("token blacklist check failed: %v", err)
		return false
	}
	return n > 0
}
