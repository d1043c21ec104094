package session

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/talent-api/internal/redis"
)

// Key pattern: session:{name}
const sessionKeyPrefix = "session:"

// RedisConfig holds the configuration for the Redis session store
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock

	// Name selects the session slot; defaults to DefaultName
	Name string

	// TTL expires the session; zero keeps it until cleared
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisStore struct {
	client redisclient.Client
	clock  clock.Clock
	key    string
	ttl    time.Duration
}

// NewRedis creates a Redis-backed session store
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}

	return &redisStore{
		client: cfg.Client,
		clock:  c,
		key:    sessionKeyPrefix + name,
		ttl:    cfg.TTL,
	}, nil
}

var _ Store = (*redisStore)(nil)

func (r *redisStore) Load(ctx context.Context) (*Session, error) {
	data, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errNoSession)
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var s Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}
	return &s, nil
}

func (r *redisStore) Save(ctx context.Context, session *Session) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.Token == "" {
		return errors.InvalidArgument(errTokenEmpty)
	}

	saved := *session
	saved.SavedAt = r.clock.Now()

	data, err := json.Marshal(&saved)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal session")
	}
	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to store session in Redis")
	}

	session.SavedAt = saved.SavedAt
	return nil
}

func (r *redisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete session from Redis")
	}
	return nil
}
