package talent

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
	redisclient "github.com/KirkDiggler/talent-api/internal/redis"
)

const (
	talentKeyPrefix = "talent:"
	talentIndexKey  = "talent:index"
)

// RedisConfig contains configuration for the Redis talent repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a new Redis-backed talent repository. Each talent is a
// JSON document under talent:{id}; talent:index lists IDs in creation order.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Talent == nil {
		return nil, errors.InvalidArgument(errTalentNil)
	}
	if input.Talent.ID == "" {
		return nil, errors.InvalidArgument(errTalentIDEmpty)
	}

	key := talentKeyPrefix + input.Talent.ID

	data, err := json.Marshal(input.Talent)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal talent")
	}

	// SETNX claims the ID; only the winner appends to the index
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create talent")
	}
	if !created {
		return nil, errors.AlreadyExistsf("talent with ID %s already exists", input.Talent.ID)
	}

	if err := r.client.RPush(ctx, talentIndexKey, input.Talent.ID).Err(); err != nil {
		if delErr := r.client.Del(ctx, key).Err(); delErr != nil {
			slog.ErrorContext(ctx, "failed to remove unindexed talent",
				"talent_id", input.Talent.ID,
				"error", delErr.Error())
		}
		return nil, errors.Wrapf(err, "failed to index talent")
	}

	return &CreateOutput{Talent: input.Talent.Clone()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTalentIDEmpty)
	}

	result, err := r.client.Get(ctx, talentKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("talent with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get talent")
	}

	t := &talents.Talent{}
	if err := json.Unmarshal([]byte(result), t); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal talent")
	}

	return &GetOutput{Talent: t}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.LRange(ctx, talentIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read talent index")
	}
	if len(ids) == 0 {
		return &ListOutput{Talents: []*talents.Talent{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = talentKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get talents")
	}

	out := make([]*talents.Talent, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a document
			slog.WarnContext(ctx, "talent index references missing talent", "talent_id", ids[i])
			continue
		}

		t := &talents.Talent{}
		if err := json.Unmarshal([]byte(raw), t); err != nil {
			slog.ErrorContext(ctx, "failed to unmarshal stored talent",
				"talent_id", ids[i],
				"error", err.Error())
			continue
		}
		if matchesTag(t, input.Tag) {
			out = append(out, t)
		}
	}

	return &ListOutput{Talents: out}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Talent == nil {
		return nil, errors.InvalidArgument(errTalentNil)
	}
	if input.Talent.ID == "" {
		return nil, errors.InvalidArgument(errTalentIDEmpty)
	}

	data, err := json.Marshal(input.Talent)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal talent")
	}

	updated, err := r.client.SetXX(ctx, talentKeyPrefix+input.Talent.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update talent")
	}
	if !updated {
		return nil, errors.NotFoundf("talent with ID %s not found", input.Talent.ID)
	}

	return &UpdateOutput{Talent: input.Talent.Clone()}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTalentIDEmpty)
	}

	key := talentKeyPrefix + input.ID

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, key)
	pipe.LRem(ctx, talentIndexKey, 0, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete talent")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("talent with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
