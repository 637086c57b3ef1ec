package log

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Zap(zap.New(core))

	l.Log(with(context.Background(), QUIET, "cqlpager"), "skipped")
	l.Log(with(context.Background(), WARN, "cqlpager", "cursor", "fetch"), "failed",
		String("id", "1"),
		Int("available", 3),
		Int64("total", 4),
		Bool("fully_fetched", true),
		Duration("latency", time.Second),
		Error(errors.New("test")),
		Any("any", 5),
	)

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, "cqlpager.cursor.fetch", entries[0].LoggerName)
	require.Equal(t, "failed", entries[0].Message)
	require.Equal(t, map[string]interface{}{
		"id":            "1",
		"available":     int64(3),
		"total":         int64(4),
		"fully_fetched": true,
		"latency":       time.Second,
		"error":         "test",
		"any":           int64(5),
	}, entries[0].ContextMap())
}
