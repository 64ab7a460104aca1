package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrollfeed/scrollfeed/internal/logging"
)

func TestNew_DefaultLevel(t *testing.T) {
	logger := logging.New(logging.Config{})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNew_ParsesLevel(t *testing.T) {
	logger := logging.New(logging.Config{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := logging.New(logging.Config{Level: "shouting"})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewWithCloser_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrollfeed.log")

	logger, closer := logging.NewWithCloser(logging.Config{
		Level:  "info",
		Format: logging.FormatJSON,
		File:   path,
	})
	require.NotNil(t, closer)

	logger.Info().Str("event", "test").Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &record))
	assert.Equal(t, "hello", record["message"])
	assert.Equal(t, "test", record["event"])
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	componentLogger := logging.ComponentLogger(base, "cli")
	componentLogger.Info().Msg("ready")

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, "cli", record["component"])
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := logging.WithContext(context.Background(), logger)
	ctxLogger := logging.FromContext(ctx)
	ctxLogger.Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}

func TestFromContext_MissingLoggerIsDisabled(t *testing.T) {
	logger := logging.FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
