package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEventLogger_CarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	events := NewLedgerEventLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	accountID := uuid.New()
	ctx := WithTraceID(context.Background(), "trace-123")

	events.LogStaleBalance(ctx, accountID, "649.51", "connection reset")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "stale_balance", entry["event_type"])
	assert.Equal(t, accountID.String(), entry["account_id"])
	assert.Equal(t, "649.51", entry["computed_balance"])
	assert.Equal(t, "trace-123", entry["trace_id"])
}

func TestLedgerEventLogger_ModeTransition(t *testing.T) {
	var buf bytes.Buffer
	events := NewLedgerEventLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	events.LogModeTransition(context.Background(), "persisted", "demonstration")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "mode_transition", entry["event_type"])
	assert.Equal(t, "persisted", entry["from"])
	assert.Equal(t, "demonstration", entry["to"])
	assert.Equal(t, "", entry["trace_id"])
}
