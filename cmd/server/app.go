package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/talent-api/internal/clients/rarityapi"
	"github.com/KirkDiggler/talent-api/internal/config"
	"github.com/KirkDiggler/talent-api/internal/orchestrators/rarity"
	"github.com/KirkDiggler/talent-api/internal/orchestrators/report"
	"github.com/KirkDiggler/talent-api/internal/orchestrators/talent"
	"github.com/KirkDiggler/talent-api/internal/pkg/clock"
	"github.com/KirkDiggler/talent-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/talent-api/internal/redis"
	reportrepo "github.com/KirkDiggler/talent-api/internal/repositories/report"
	"github.com/KirkDiggler/talent-api/internal/repositories/session"
	talentrepo "github.com/KirkDiggler/talent-api/internal/repositories/talent"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

// app holds the wired services for one process
type app struct {
	talents  talent.Service
	rarities rarity.Service
	reports  report.Service
	sessions session.Store

	redis redisclient.Client
}

// Close releases the Redis connection, if any
func (a *app) Close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}

// newStores opens the talent and session stores: Redis when enabled,
// memory otherwise
func newStores(ctx context.Context, c *config.Config) (talentrepo.Repository, session.Store, redisclient.Client, error) {
	clk := clock.New()

	if !c.Redis.Enabled {
		return talentrepo.NewInMemory(), session.NewInMemory(clk), nil, nil
	}

	client, err := redisclient.NewClient(c.Redis.Address, &redisclient.Options{
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	if err := redisclient.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, nil, nil, err
	}

	talents, err := talentrepo.NewRedis(&talentrepo.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, err
	}

	sessions, err := session.NewRedis(&session.RedisConfig{
		Client: client,
		Clock:  clk,
		Name:   c.Session.Name,
		TTL:    c.Session.TTL,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, err
	}

	return talents, sessions, client, nil
}

func newApp(ctx context.Context, c *config.Config, log *zap.Logger) (*app, error) {
	sch, err := schema.New(c.SchemaOptions())
	if err != nil {
		return nil, fmt.Errorf("invalid schema options: %w", err)
	}

	talentStore, sessions, client, err := newStores(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to open stores: %w", err)
	}
	a := &app{sessions: sessions, redis: client}

	a.talents, err = talent.NewOrchestrator(&talent.Config{
		TalentRepo:  talentStore,
		IDGenerator: idgen.NewUUID("tal"),
		Schema:      sch,
	})
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to create talent service: %w", err)
	}

	var remote rarityapi.Client
	if c.Rarity.BaseURL != "" {
		remote, err = rarityapi.New(&rarityapi.Config{
			BaseURL:  c.Rarity.BaseURL,
			Timeout:  c.Rarity.Timeout,
			Sessions: sessions,
		})
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("failed to create rarity client: %w", err)
		}
	}

	a.rarities, err = rarity.NewOrchestrator(&rarity.Config{
		IDGenerator: idgen.NewSequential("tmp"),
		Remote:      remote,
		Schema:      sch,
	})
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to create rarity service: %w", err)
	}

	a.reports, err = report.NewOrchestrator(&report.Config{
		Repository:  reportrepo.NewInMemory(),
		IDGenerator: idgen.NewPrefixed("rep"),
		Clock:       clock.New(),
		Schema:      sch,
	})
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}

	log.Info("services ready",
		zap.Bool("redis", c.Redis.Enabled),
		zap.Bool("remote_rarities", remote != nil),
		zap.Strings("tiers", sch.Tiers()),
		zap.String("report_mode", string(c.Schema.ReportMode)),
		zap.Bool("strict", c.Schema.Strict))

	return a, nil
}
