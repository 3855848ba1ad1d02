// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/scrolls/internal/platform/apperr"
)

// releaseScript deletes the lock only if it is still held by the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Lock is a held run lock.
type Lock struct {
	client *redis.Client
	key    string
	token  string
}

// AcquireLock takes key for token (the run ID) with the given TTL.
//
// It returns an [apperr.CodeRunLocked] error carrying the current holder when
// another run owns the key.
func AcquireLock(context stdctx.Context, client *redis.Client, key, token string, ttl time.Duration) (*Lock, error) {
	acquired, err := client.SetNX(context, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: acquire %s: %w", key, err)
	}

	if !acquired {
		holder, err := client.Get(context, key).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("redis: read lock holder: %w", err)
		}
		return nil, apperr.RunLocked(holder)
	}

	return &Lock{client: client, key: key, token: token}, nil
}

// Release frees the lock if this run still holds it.
func (lock *Lock) Release(context stdctx.Context) error {
	if err := releaseScript.Run(context, lock.client, []string{lock.key}, lock.token).Err(); err != nil {
		return fmt.Errorf("redis: release %s: %w", lock.key, err)
	}
	return nil
}
