package services

import (
	"context"
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
)

// DashboardServiceInterface exposes one data aggregator per owner
type DashboardServiceInterface interface {
	// GetSnapshot returns the owner's view, loading it on first access
	GetSnapshot(ctx context.Context, ownerID uuid.UUID) (AggregateView, error)
	Reload(ctx context.Context, ownerID uuid.UUID) (AggregateView, error)
	AddEntity(ctx context.Context, ownerID uuid.UUID, collection models.Collection, record models.Entity) MutationResult
	UpdateEntity(ctx context.Context, ownerID uuid.UUID, collection models.Collection, id uuid.UUID, patch map[string]interface{}) MutationResult
	DeleteEntity(ctx context.Context, ownerID uuid.UUID, collection models.Collection, id uuid.UUID) MutationResult
	MarkRealDataPresent(ctx context.Context, ownerID uuid.UUID) (AggregateView, error)
	GetCollectionView(ctx context.Context, ownerID uuid.UUID, collection models.Collection) (CollectionView, error)
	SweepIdleSessions() int
	// RunSessionSweeper evicts idle owners until ctx is done
	RunSessionSweeper(ctx context.Context)
}

// DemoSeederInterface fills an empty owner with generated demo records
type DemoSeederInterface interface {
	SeedOwner(ctx context.Context, ownerID uuid.UUID, opts SeedOptions) (*SeedResult, error)
}

// TokenVerifierInterface checks identity provider tokens and, in development, mints them
type TokenVerifierInterface interface {
	ExtractTokenFromHeader(authHeader string) (string, error)
	VerifyAccessToken(tokenString string) (*IdentityClaims, error)
	MintToken(ownerID uuid.UUID, email string, ttl time.Duration) (string, time.Time, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type StoreBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() BreakerState
	Reset()
	GetFailureCount() int
}

type DashboardLoggerInterface interface {
	LogLoadStarted(ctx context.Context, ownerID uuid.UUID, generation uint64)
	LogLoadCompleted(ctx context.Context, ownerID uuid.UUID, mode Mode, counts map[models.Collection]int, durationMs int64)
	LogFallbackApplied(ctx context.Context, ownerID uuid.UUID, reason string, cause error)
	LogStaleLoadDiscarded(ctx context.Context, ownerID uuid.UUID, generation, latest uint64)
	LogMutationSucceeded(ctx context.Context, ownerID uuid.UUID, op string, collection models.Collection, entityID uuid.UUID)
	LogMutationFailed(ctx context.Context, ownerID uuid.UUID, op string, collection models.Collection, entityID uuid.UUID, errorMsg string)
	LogModePromoted(ctx context.Context, ownerID uuid.UUID, from, to Mode)
	LogStoreBreakerStateChange(ctx context.Context, oldState, newState BreakerState)
	LogDemoDataSeeded(ctx context.Context, ownerID uuid.UUID, accounts, transactions, goals int)
}
