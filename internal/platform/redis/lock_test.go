// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrolls/internal/platform/apperr"
	redisstore "github.com/taibuivan/scrolls/internal/platform/redis"
)

const (
	lockKey = "scrolls:import:lock"
	lockTTL = time.Minute
)

func newClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := redisstore.NewClient(context.Background(), "redis://"+server.Addr(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return server, client
}

/*
TestAcquireLock verifies that a free key is taken with the run id and a TTL.
*/
func TestAcquireLock(t *testing.T) {
	server, client := newClient(t)

	lock, err := redisstore.AcquireLock(context.Background(), client, lockKey, "run-a", lockTTL)
	require.NoError(t, err)
	require.NotNil(t, lock)

	holder, err := server.Get(lockKey)
	require.NoError(t, err)
	assert.Equal(t, "run-a", holder)
	assert.Equal(t, lockTTL, server.TTL(lockKey))
}

/*
TestAcquireLock_Held verifies that a second run is refused and told who holds the lock.
*/
func TestAcquireLock_Held(t *testing.T) {
	server, client := newClient(t)
	ctx := context.Background()

	_, err := redisstore.AcquireLock(ctx, client, lockKey, "run-a", lockTTL)
	require.NoError(t, err)

	lock, err := redisstore.AcquireLock(ctx, client, lockKey, "run-b", lockTTL)
	require.Error(t, err)
	assert.Nil(t, lock)
	assert.True(t, apperr.HasCode(err, apperr.CodeRunLocked))
	assert.ErrorContains(t, err, "run-a")

	holder, err := server.Get(lockKey)
	require.NoError(t, err)
	assert.Equal(t, "run-a", holder, "the refused run must not overwrite the holder")
}

/*
TestLock_Release covers releasing an owned lock and a lock that expired
and was taken by another run.
*/
func TestLock_Release(t *testing.T) {
	t.Run("Owner", func(t *testing.T) {
		server, client := newClient(t)
		ctx := context.Background()

		lock, err := redisstore.AcquireLock(ctx, client, lockKey, "run-a", lockTTL)
		require.NoError(t, err)

		require.NoError(t, lock.Release(ctx))
		assert.False(t, server.Exists(lockKey))

		_, err = redisstore.AcquireLock(ctx, client, lockKey, "run-b", lockTTL)
		assert.NoError(t, err, "a released lock can be taken again")
	})

	t.Run("Taken over after expiry", func(t *testing.T) {
		server, client := newClient(t)
		ctx := context.Background()

		stale, err := redisstore.AcquireLock(ctx, client, lockKey, "run-a", lockTTL)
		require.NoError(t, err)

		server.FastForward(lockTTL + time.Second)
		require.False(t, server.Exists(lockKey))

		_, err = redisstore.AcquireLock(ctx, client, lockKey, "run-b", lockTTL)
		require.NoError(t, err)

		require.NoError(t, stale.Release(ctx))

		holder, err := server.Get(lockKey)
		require.NoError(t, err)
		assert.Equal(t, "run-b", holder, "releasing with a stale token leaves the new holder")
	})
}

/*
TestNewClient verifies URL parsing and the startup ping.
*/
func TestNewClient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Invalid URL", func(t *testing.T) {
		client, err := redisstore.NewClient(context.Background(), "http://localhost:6379", logger)
		require.Error(t, err)
		assert.Nil(t, client)
		assert.ErrorContains(t, err, "invalid URL")
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := miniredis.RunT(t)
		addr := server.Addr()
		server.Close()

		client, err := redisstore.NewClient(context.Background(), "redis://"+addr, logger)
		require.Error(t, err)
		assert.Nil(t, client)
		assert.ErrorContains(t, err, "ping failed")
	})

	t.Run("Ping", func(t *testing.T) {
		_, client := newClient(t)
		assert.NoError(t, redisstore.Ping(context.Background(), client))
	})
}
