package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"product-describer/internal/shared/util"
)

const redisKeyPrefix = "draft:"

// RedisRepo stores each draft as a JSON string that expires after TTL of
// inactivity. A zero TTL keeps drafts forever.
type RedisRepo struct {
	Client *redis.Client
	TTL    time.Duration
}

// RedisKey returns the key a draft for ownerID is stored under. Owner IDs are
// hashed so arbitrary guest headers never end up in key names.
func RedisKey(ownerID string) string {
	return redisKeyPrefix + util.HashUserKey(ownerID)
}

func (r *RedisRepo) Save(ctx context.Context, draft Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := r.Client.Set(ctx, RedisKey(draft.OwnerID), payload, r.TTL).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (r *RedisRepo) Get(ctx context.Context, ownerID string) (Draft, error) {
	raw, err := r.Client.Get(ctx, RedisKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Draft{}, ErrNotFound
		}
		return Draft{}, fmt.Errorf("load draft: %w", err)
	}
	var draft Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	draft.OwnerID = ownerID
	if draft.Fields == nil {
		draft.Fields = map[string]string{}
	}
	return draft, nil
}

func (r *RedisRepo) Delete(ctx context.Context, ownerID string) error {
	if err := r.Client.Del(ctx, RedisKey(ownerID)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
