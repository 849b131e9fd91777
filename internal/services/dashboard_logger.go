package services

import (
	"context"
	"log/slog"
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
)

type DashboardLogger struct {
	logger *slog.Logger
}

func NewDashboardLogger(logger *slog.Logger) DashboardLoggerInterface {
	return &DashboardLogger{
		logger: logger,
	}
}

func (dl *DashboardLogger) LogLoadStarted(ctx context.Context, ownerID uuid.UUID, generation uint64) {
	dl.logger.InfoContext(ctx, "dashboard load started",
		slog.String("event_type", "dashboard_load_started"),
		slog.String("owner_id", ownerID.String()),
		slog.Uint64("generation", generation),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (dl *DashboardLogger) LogLoadCompleted(ctx context.Context, ownerID uuid.UUID, mode Mode, counts map[models.Collection]int, durationMs int64) {
	dl.logger.InfoContext(ctx, "dashboard load completed",
		slog.String("event_type", "dashboard_load_completed"),
		slog.String("owner_id", ownerID.String()),
		slog.String("mode", string(mode)),
		slog.Int("accounts", counts[models.CollectionAccounts]),
		slog.Int("transactions", counts[models.CollectionTransactions]),
		slog.Int("goals", counts[models.CollectionGoals]),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogFallbackApplied records why sample data replaced the owner's records
func (dl *DashboardLogger) LogFallbackApplied(ctx context.Context, ownerID uuid.UUID, reason string, cause error) {
	attrs := []any{
		slog.String("event_type", "dashboard_fallback_applied"),
		slog.String("owner_id", ownerID.String()),
		slog.String("fallback_reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	}

	if cause != nil {
		dl.logger.WarnContext(ctx, "dashboard fallback applied", append(attrs, slog.String("error", cause.Error()))...)
		return
	}
	dl.logger.InfoContext(ctx, "dashboard fallback applied", attrs...)
}

func (dl *DashboardLogger) LogStaleLoadDiscarded(ctx context.Context, ownerID uuid.UUID, generation, latest uint64) {
	dl.logger.InfoContext(ctx, "stale dashboard load discarded",
		slog.String("event_type", "dashboard_stale_load_discarded"),
		slog.String("owner_id", ownerID.String()),
		slog.Uint64("generation", generation),
		slog.Uint64("latest_generation", latest),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (dl *DashboardLogger) LogMutationSucceeded(ctx context.Context, ownerID uuid.UUID, op string, collection models.Collection, entityID uuid.UUID) {
	dl.logger.InfoContext(ctx, "dashboard mutation succeeded",
		slog.String("event_type", "dashboard_mutation_succeeded"),
		slog.String("owner_id", ownerID.String()),
		slog.String("operation", op),
		slog.String("collection", string(collection)),
		slog.String("entity_id", entityID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (dl *DashboardLogger) LogMutationFailed(ctx context.Context, ownerID uuid.UUID, op string, collection models.Collection, entityID uuid.UUID, errorMsg string) {
	dl.logger.WarnContext(ctx, "dashboard mutation failed",
		slog.String("event_type", "dashboard_mutation_failed"),
		slog.String("owner_id", ownerID.String()),
		slog.String("operation", op),
		slog.String("collection", string(collection)),
		slog.String("entity_id", entityID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (dl *DashboardLogger) LogModePromoted(ctx context.Context, ownerID uuid.UUID, from, to Mode) {
	dl.logger.InfoContext(ctx, "dashboard mode promoted",
		slog.String("event_type", "dashboard_mode_promoted"),
		slog.String("owner_id", ownerID.String()),
		slog.String("old_mode", string(from)),
		slog.String("new_mode", string(to)),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (dl *DashboardLogger) LogStoreBreakerStateChange(ctx context.Context, oldState, newState BreakerState) {
	dl.logger.WarnContext(ctx, "remote store breaker state change",
		slog.String("event_type", "store_breaker_state_change"),
		slog.String("old_state", oldState.String()),
		slog.String("new_state", newState.String()),
		slog.Time("timestamp", time.Now()),
	)
}

func (dl *DashboardLogger) LogDemoDataSeeded(ctx context.Context, ownerID uuid.UUID, accounts, transactions, goals int) {
	dl.logger.InfoContext(ctx, "demo data seeded",
		slog.String("event_type", "demo_data_seeded"),
		slog.String("owner_id", ownerID.String()),
		slog.Int("accounts", accounts),
		slog.Int("transactions", transactions),
		slog.Int("goals", goals),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}
