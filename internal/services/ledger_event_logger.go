package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type LedgerEventLogger struct {
	logger *slog.Logger
}

func NewLedgerEventLogger(logger *slog.Logger) LedgerEventLoggerInterface {
	return &LedgerEventLogger{
		logger: logger,
	}
}

func (l *LedgerEventLogger) LogReconciliationStarted(ctx context.Context, accountID uuid.UUID) {
	l.logger.DebugContext(ctx, "reconciliation started",
		slog.String("event_type", "reconciliation_started"),
		slog.String("account_id", accountID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (l *LedgerEventLogger) LogReconciliationCompleted(ctx context.Context, accountID uuid.UUID, balance string, transactionCount int, durationMs int64) {
	l.logger.InfoContext(ctx, "reconciliation completed",
		slog.String("event_type", "reconciliation_completed"),
		slog.String("account_id", accountID.String()),
		slog.String("balance", balance),
		slog.Int("transaction_count", transactionCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (l *LedgerEventLogger) LogReconciliationFailed(ctx context.Context, accountID uuid.UUID, stage string, errorMsg string) {
	l.logger.WarnContext(ctx, "reconciliation failed",
		slog.String("event_type", "reconciliation_failed"),
		slog.String("account_id", accountID.String()),
		slog.String("stage", stage),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (l *LedgerEventLogger) LogStaleBalance(ctx context.Context, accountID uuid.UUID, computedBalance string, errorMsg string) {
	l.logger.ErrorContext(ctx, "account balance is stale",
		slog.String("event_type", "stale_balance"),
		slog.String("account_id", accountID.String()),
		slog.String("computed_balance", computedBalance),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (l *LedgerEventLogger) LogDemoWriteRejected(ctx context.Context, operation string) {
	l.logger.InfoContext(ctx, "demonstration write rejected",
		slog.String("event_type", "demo_write_rejected"),
		slog.String("operation", operation),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (l *LedgerEventLogger) LogModeTransition(ctx context.Context, from, to string) {
	l.logger.InfoContext(ctx, "mode transition",
		slog.String("event_type", "mode_transition"),
		slog.String("from", from),
		slog.String("to", to),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (l *LedgerEventLogger) LogProgressUnavailable(ctx context.Context, entityType string, entityID uuid.UUID, errorMsg string) {
	l.logger.WarnContext(ctx, "progress unavailable",
		slog.String("event_type", "progress_unavailable"),
		slog.String("entity_type", entityType),
		slog.String("entity_id", entityID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}
