package memgo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/memgo"
)

func TestNewLogger_NilHandler(t *testing.T) {
	log := memgo.NewLogger(nil)
	require.NotNil(t, log)

	ctx := context.Background()
	assert.True(t, log.Enabled(ctx, slog.LevelInfo))
	assert.False(t, log.Enabled(ctx, slog.LevelDebug))
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := memgo.NewLogger(slog.NewJSONHandler(&buf, nil))

	log.WithPool("frames").WithBlockSize(4096).Info("arena mapped", "bytes", 65536)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "arena mapped", rec["msg"])
	assert.Equal(t, "frames", rec["pool"])
	assert.EqualValues(t, 4096, rec["block_size"])
	assert.EqualValues(t, 65536, rec["bytes"])
}

func TestLogger_WithCache(t *testing.T) {
	var buf bytes.Buffer
	log := memgo.NewLogger(slog.NewTextHandler(&buf, nil)).WithCache("sessions").WithCapacity(128)

	log.Info("cache ready")

	out := buf.String()
	assert.Contains(t, out, "cache=sessions")
	assert.Contains(t, out, "capacity=128")
}

func TestNoopLogger(t *testing.T) {
	log := memgo.NoopLogger()
	require.NotNil(t, log)

	ctx := context.Background()
	assert.False(t, log.Enabled(ctx, slog.LevelError))

	// Must be callable without any output sink.
	log.Error("dropped")
}
