package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the client the stores depend on. Any go-redis client, or a
// miniredis-backed one in tests, satisfies it.
type Client interface {
	redis.UniversalClient
}
