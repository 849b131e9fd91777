package services

import (
	"context"
	"sync"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/google/uuid"
)

const (
	// DefaultSessionIdleTTL is how long an owner's aggregator survives without requests
	DefaultSessionIdleTTL = 30 * time.Minute
	sessionSweepPeriod    = time.Minute
)

type session struct {
	aggregator *DataAggregator
	lastSeen   time.Time
}

type dashboardService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	idleTTL  time.Duration
	now      func() time.Time

	profileRepo     repositories.ProfileRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	goalRepo        repositories.GoalRepositoryInterface
	breaker         StoreBreakerInterface
	logger          DashboardLoggerInterface
	metrics         MetricsRecorderInterface
	config          *config.DashboardConfig
}

// NewDashboardService creates the registry that holds one DataAggregator per owner.
// All aggregators share the repositories and the remote store breaker.
func NewDashboardService(
	profileRepo repositories.ProfileRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	goalRepo repositories.GoalRepositoryInterface,
	breaker StoreBreakerInterface,
	logger DashboardLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg *config.DashboardConfig,
) DashboardServiceInterface {
	idleTTL := DefaultSessionIdleTTL
	if cfg != nil && cfg.SessionIdleTTL > 0 {
		idleTTL = cfg.SessionIdleTTL
	}

	return &dashboardService{
		sessions:        make(map[uuid.UUID]*session),
		idleTTL:         idleTTL,
		now:             time.Now,
		profileRepo:     profileRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		breaker:         breaker,
		logger:          logger,
		metrics:         metrics,
		config:          cfg,
	}
}

func (s *dashboardService) newAggregator() *DataAggregator {
	return NewDataAggregator(s.profileRepo, s.accountRepo, s.transactionRepo, s.goalRepo, s.breaker, s.logger, s.metrics)
}

// session returns the owner's aggregator, creating it on first use
func (s *dashboardService) session(ownerID uuid.UUID) *DataAggregator {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.sessions[ownerID]; ok {
		existing.lastSeen = now
		return existing.aggregator
	}

	aggregator := s.newAggregator()
	s.sessions[ownerID] = &session{aggregator: aggregator, lastSeen: now}
	s.metrics.RecordGauge(MetricActiveSessions, float64(len(s.sessions)), nil)
	return aggregator
}

// SweepIdleSessions drops aggregators that saw no request within the idle TTL. The
// owner's next request loads a fresh one from the store.
func (s *dashboardService) SweepIdleSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	dropped := 0
	for ownerID, existing := range s.sessions {
		if now.Sub(existing.lastSeen) > s.idleTTL {
			delete(s.sessions, ownerID)
			dropped++
		}
	}
	if dropped > 0 {
		s.metrics.RecordGauge(MetricActiveSessions, float64(len(s.sessions)), nil)
	}
	return dropped
}

// RunSessionSweeper calls SweepIdleSessions every minute until ctx is done
func (s *dashboardService) RunSessionSweeper(ctx context.Context) {
	ticker := time.NewTicker(sessionSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepIdleSessions()
		}
	}
}

// loaded returns the owner's aggregator after its first load has run
func (s *dashboardService) loaded(ctx context.Context, ownerID uuid.UUID) (*DataAggregator, error) {
	if ownerID == uuid.Nil {
		return nil, &MissingOwnerError{}
	}

	aggregator := s.session(ownerID)
	if aggregator.State() == StateUninitialized {
		if err := aggregator.Load(ctx, ownerID); err != nil {
			return nil, err
		}
	}
	return aggregator, nil
}

// missingOwnerView returns the sample view a load without owner degrades to.
// The throwaway aggregator is never registered.
func (s *dashboardService) missingOwnerView(ctx context.Context) (AggregateView, error) {
	aggregator := s.newAggregator()
	err := aggregator.Load(ctx, uuid.Nil)
	return aggregator.Snapshot(), err
}

func (s *dashboardService) GetSnapshot(ctx context.Context, ownerID uuid.UUID) (AggregateView, error) {
	if ownerID == uuid.Nil {
		return s.missingOwnerView(ctx)
	}

	aggregator, err := s.loaded(ctx, ownerID)
	if err != nil {
		return AggregateView{}, err
	}
	return aggregator.Snapshot(), nil
}

func (s *dashboardService) Reload(ctx context.Context, ownerID uuid.UUID) (AggregateView, error) {
	if ownerID == uuid.Nil {
		return s.missingOwnerView(ctx)
	}

	aggregator := s.session(ownerID)
	if err := aggregator.Load(ctx, ownerID); err != nil {
		return aggregator.Snapshot(), err
	}
	return aggregator.Snapshot(), nil
}

func (s *dashboardService) AddEntity(ctx context.Context, ownerID uuid.UUID, collection models.Collection, record models.Entity) MutationResult {
	aggregator, err := s.loaded(ctx, ownerID)
	if err != nil {
		return MutationResult{Error: &MutationError{Op: OpAdd, Collection: collection, Err: err}}
	}
	return aggregator.AddEntity(ctx, collection, record)
}

func (s *dashboardService) UpdateEntity(ctx context.Context, ownerID uuid.UUID, collection models.Collection, id uuid.UUID, patch map[string]interface{}) MutationResult {
	aggregator, err := s.loaded(ctx, ownerID)
	if err != nil {
		return MutationResult{Error: &MutationError{Op: OpUpdate, Collection: collection, ID: id, Err: err}}
	}
	return aggregator.UpdateEntity(ctx, collection, id, patch)
}

func (s *dashboardService) DeleteEntity(ctx context.Context, ownerID uuid.UUID, collection models.Collection, id uuid.UUID) MutationResult {
	aggregator, err := s.loaded(ctx, ownerID)
	if err != nil {
		return MutationResult{Error: &MutationError{Op: OpDelete, Collection: collection, ID: id, Err: err}}
	}
	return aggregator.DeleteEntity(ctx, collection, id)
}

// MarkRealDataPresent promotes a sample view to real mode. A view that is already real
// is returned unchanged.
func (s *dashboardService) MarkRealDataPresent(ctx context.Context, ownerID uuid.UUID) (AggregateView, error) {
	aggregator, err := s.loaded(ctx, ownerID)
	if err != nil {
		return AggregateView{}, err
	}
	aggregator.MarkRealDataPresent(ctx)
	return aggregator.Snapshot(), nil
}

// GetCollectionView applies the collection's configured page-level fallback scope
func (s *dashboardService) GetCollectionView(ctx context.Context, ownerID uuid.UUID, collection models.Collection) (CollectionView, error) {
	if _, err := models.ParseCollection(string(collection)); err != nil {
		return CollectionView{}, err
	}

	aggregator, err := s.loaded(ctx, ownerID)
	if err != nil {
		return CollectionView{}, err
	}

	scope := FallbackScopeGlobal
	if s.config != nil {
		scope = ParseFallbackScope(s.config.ViewScope(string(collection)))
	}
	return aggregator.CollectionView(collection, scope)
}
