package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"product-describer/internal/shared/telemetry"
)

// ErrNoAddr is returned by Connect when no Redis address is configured.
var ErrNoAddr = errors.New("REDIS_ADDR is empty")

// Options configures the Redis client.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Connect builds a Redis client and verifies it with PING.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	if strings.TrimSpace(opts.Addr) == "" {
		return nil, ErrNoAddr
	}
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	telemetry.Info("redis.connected", map[string]any{"addr": opts.Addr, "db": opts.DB})
	return client, nil
}
