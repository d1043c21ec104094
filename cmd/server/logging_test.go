package main

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedSlog(level zapcore.Level) (*slog.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return slog.New(newSlogHandler(zap.New(core))), logs
}

func TestSlogHandlerHonorsLevel(t *testing.T) {
	testCases := []struct {
		name  string
		level zapcore.Level
		want  []string
	}{
		{name: "verbose", level: zapcore.DebugLevel, want: []string{"previewed", "created", "orphaned", "failed"}},
		{name: "production", level: zapcore.InfoLevel, want: []string{"created", "orphaned", "failed"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, logs := newObservedSlog(tc.level)
			ctx := context.Background()

			log.DebugContext(ctx, "previewed")
			log.InfoContext(ctx, "created")
			log.WarnContext(ctx, "orphaned")
			log.ErrorContext(ctx, "failed")

			var got []string
			for _, e := range logs.All() {
				got = append(got, e.Message)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSlogHandlerFields(t *testing.T) {
	log, logs := newObservedSlog(zapcore.DebugLevel)

	log.With("service", "talent").
		WithGroup("talent").
		Info("talent created",
			"talent_id", "tal_1",
			"rank", 2,
			"key", true,
			"timeout", time.Second,
			slog.Group("rarity", "tier", "rare"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, map[string]any{
		"service":            "talent",
		"talent.talent_id":   "tal_1",
		"talent.rank":        int64(2),
		"talent.key":         true,
		"talent.timeout":     time.Second,
		"talent.rarity.tier": "rare",
	}, entries[0].ContextMap())
}
