package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/redis"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("secret")

	client, err := redis.NewClient(mr.Addr(), &redis.Options{Password: "secret", DB: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	require.NoError(t, redis.Ping(ctx, client))
	require.NoError(t, client.Set(ctx, "talent:1", "{}", 0).Err())

	mr.Select(2)
	assert.True(t, mr.Exists("talent:1"))
}

func TestNewClientRejectsBadOptions(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = redis.NewClient("localhost:6379", &redis.Options{DB: -1})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPingUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), &redis.Options{MaxRetries: -1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	mr.Close()

	err = redis.Ping(context.Background(), client)
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}
