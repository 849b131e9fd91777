package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/sampledata"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// State is the lifecycle state of an owner's dashboard
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReal          State = "real"
	StateSample        State = "sample"
)

// Mode tells whether the view shows the owner's records or the sample data set
type Mode string

const (
	ModeReal   Mode = "real"
	ModeSample Mode = "sample"
)

// Mutation operations
const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
)

// DefaultLoadTimeout bounds the store fetches of a single load
const DefaultLoadTimeout = 15 * time.Second

var (
	ErrNotLoaded          = errors.New("dashboard has no owner loaded")
	ErrCollectionMismatch = errors.New("record type does not match collection")
)

// MissingOwnerError is returned by Load when no owner id is given
type MissingOwnerError struct{}

func (e *MissingOwnerError) Error() string {
	return "dashboard load requires an owner id"
}

func (e *MissingOwnerError) Unwrap() error {
	return models.ErrOwnerRequired
}

// RemoteQueryError records the fetch that made a load fall back to sample data
type RemoteQueryError struct {
	Collection string
	Err        error
}

func (e *RemoteQueryError) Error() string {
	return fmt.Sprintf("remote query for %s failed: %v", e.Collection, e.Err)
}

func (e *RemoteQueryError) Unwrap() error {
	return e.Err
}

// MutationError is returned when the remote store rejects a mutation
type MutationError struct {
	Op         string
	Collection models.Collection
	ID         uuid.UUID
	Err        error
}

func (e *MutationError) Error() string {
	if e.ID == uuid.Nil {
		return fmt.Sprintf("%s %s failed: %v", e.Op, e.Collection, e.Err)
	}
	return fmt.Sprintf("%s %s %s failed: %v", e.Op, e.Collection, e.ID, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// MutationResult is the outcome of AddEntity, UpdateEntity or DeleteEntity
type MutationResult struct {
	Success bool
	Error   error
}

// ViewFlags are the derived flags shown next to the collections
type ViewFlags struct {
	IsSampleData      bool                `json:"is_sample_data"`
	HasRealData       bool                `json:"has_real_data"`
	FallbackReason    string              `json:"fallback_reason,omitempty"`
	SampleCollections []models.Collection `json:"sample_collections"`
}

// AggregateView is the combined snapshot of an owner's dashboard
type AggregateView struct {
	User              models.Profile        `json:"user"`
	Accounts          []models.Account      `json:"accounts"`
	Transactions      []models.Transaction  `json:"transactions"`
	Goals             []models.Goal         `json:"goals"`
	Notifications     []models.Notification `json:"notifications"`
	Mode              Mode                  `json:"mode,omitempty"`
	State             State                 `json:"state"`
	Flags             ViewFlags             `json:"flags"`
	Summary           Summary               `json:"summary"`
	Error             string                `json:"error,omitempty"`
	SampleDataVersion string                `json:"sample_data_version,omitempty"`
	LoadedAt          *time.Time            `json:"loaded_at,omitempty"`
}

// CollectionView is one collection as a page-level view shows it
type CollectionView struct {
	Collection models.Collection `json:"collection"`
	Items      interface{}       `json:"items"`
	Count      int               `json:"count"`
	SampleData bool              `json:"sample_data"`
	Mode       Mode              `json:"mode"`
	State      State             `json:"state"`
}

// DataAggregator owns one owner's AggregateView. It is the only writer of that view;
// readers get deep copies through Snapshot.
type DataAggregator struct {
	mu         sync.RWMutex
	ownerID    uuid.UUID
	view       AggregateView
	state      State
	lastErr    error
	generation uint64

	profileRepo     repositories.ProfileRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	goalRepo        repositories.GoalRepositoryInterface
	breaker         StoreBreakerInterface
	logger          DashboardLoggerInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
	loadTimeout     time.Duration
}

// NewDataAggregator creates an uninitialized aggregator. breaker may be nil.
func NewDataAggregator(
	profileRepo repositories.ProfileRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	goalRepo repositories.GoalRepositoryInterface,
	breaker StoreBreakerInterface,
	logger DashboardLoggerInterface,
	metrics MetricsRecorderInterface,
) *DataAggregator {
	return &DataAggregator{
		view:            emptyView(),
		state:           StateUninitialized,
		profileRepo:     profileRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		breaker:         breaker,
		logger:          logger,
		metrics:         metrics,
		now:             time.Now,
		loadTimeout:     DefaultLoadTimeout,
	}
}

type loadResult struct {
	profile  models.Profile
	decision FallbackDecision
	err      error
}

// Load fetches the owner's collections and decides between real and sample data.
// Fetch failures never surface: the view falls back to sample data and the error is
// kept for Err. Only a missing owner is returned, after the view has fallen back.
func (a *DataAggregator) Load(ctx context.Context, ownerID uuid.UUID) error {
	start := a.now()

	a.mu.Lock()
	a.generation++
	generation := a.generation
	a.ownerID = ownerID
	a.state = StateLoading
	a.mu.Unlock()

	if ownerID == uuid.Nil {
		err := &MissingOwnerError{}
		a.apply(ctx, generation, ownerID, loadResult{
			profile:  models.DefaultProfile(ownerID),
			decision: sampleDecision(ReasonMissingOwner),
			err:      err,
		}, start)
		return err
	}

	a.logger.LogLoadStarted(ctx, ownerID, generation)

	if a.storeOpen() {
		a.apply(ctx, generation, ownerID, loadResult{
			profile:  models.DefaultProfile(ownerID),
			decision: sampleDecision(ReasonStoreUnavailable),
			err:      &RemoteQueryError{Collection: "store", Err: ErrStoreBreakerOpen},
		}, start)
		return nil
	}

	// detached from the caller: the view outlives any single request
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.loadTimeout)
	profile, fetched, err := a.fetch(fetchCtx, ownerID)
	cancel()
	a.recordStoreOutcome(err)
	if err != nil {
		a.apply(ctx, generation, ownerID, loadResult{
			profile:  models.DefaultProfile(ownerID),
			decision: sampleDecision(ReasonRemoteQueryFailed),
			err:      err,
		}, start)
		return nil
	}

	a.apply(ctx, generation, ownerID, loadResult{
		profile:  profile,
		decision: ApplyFallbackPolicy(FallbackScopeGlobal, fetched, SampleCollectionSet()),
	}, start)
	return nil
}

func (a *DataAggregator) fetch(ctx context.Context, ownerID uuid.UUID) (models.Profile, CollectionSet, error) {
	var (
		profile models.Profile
		fetched CollectionSet
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := a.profileRepo.GetByID(gctx, ownerID)
		if errors.Is(err, repositories.ErrProfileNotFound) {
			profile = models.DefaultProfile(ownerID)
			return nil
		}
		if err != nil {
			return &RemoteQueryError{Collection: "profile", Err: err}
		}
		profile = *p
		return nil
	})

	g.Go(func() error {
		accounts, err := a.accountRepo.ListByOwner(gctx, ownerID)
		if err != nil {
			return &RemoteQueryError{Collection: string(models.CollectionAccounts), Err: err}
		}
		fetched.Accounts = accounts
		return nil
	})

	g.Go(func() error {
		transactions, err := a.transactionRepo.ListByOwner(gctx, ownerID)
		if err != nil {
			return &RemoteQueryError{Collection: string(models.CollectionTransactions), Err: err}
		}
		fetched.Transactions = transactions
		return nil
	})

	g.Go(func() error {
		goals, err := a.goalRepo.ListByOwner(gctx, ownerID)
		if err != nil {
			return &RemoteQueryError{Collection: string(models.CollectionGoals), Err: err}
		}
		fetched.Goals = goals
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.Profile{}, CollectionSet{}, err
	}

	if profile.BaseCurrency == "" {
		profile.BaseCurrency = models.DefaultCurrency
	}
	return profile, fetched, nil
}

// apply installs a load result unless a newer load has started since
func (a *DataAggregator) apply(ctx context.Context, generation uint64, ownerID uuid.UUID, result loadResult, start time.Time) {
	now := a.now()
	view := buildView(result.profile, result.decision, now)
	if result.err != nil {
		view.Error = result.err.Error()
	}

	a.mu.Lock()
	if generation != a.generation {
		latest := a.generation
		a.mu.Unlock()

		a.logger.LogStaleLoadDiscarded(ctx, ownerID, generation, latest)
		a.metrics.IncrementCounter(MetricStaleLoadDiscarded, nil)
		return
	}
	a.view = view
	a.lastErr = result.err
	if result.decision.Mode == ModeReal {
		a.state = StateReal
	} else {
		a.state = StateSample
	}
	a.mu.Unlock()

	if result.decision.Mode == ModeSample {
		a.logger.LogFallbackApplied(ctx, ownerID, result.decision.Reason, result.err)
	}
	duration := now.Sub(start)
	a.logger.LogLoadCompleted(ctx, ownerID, result.decision.Mode, result.decision.Collections.Counts(), duration.Milliseconds())
	a.metrics.IncrementCounter(MetricDashboardLoad, map[string]string{
		"mode":   string(result.decision.Mode),
		"reason": result.decision.Reason,
	})
	a.metrics.RecordProcessingTime(MetricDashboardLoadLatency, duration)
}

func sampleDecision(reason string) FallbackDecision {
	return FallbackDecision{
		Collections:       SampleCollectionSet(),
		Mode:              ModeSample,
		SampleCollections: models.AllCollections(),
		Reason:            reason,
	}
}

func emptyView() AggregateView {
	return AggregateView{
		Accounts:      []models.Account{},
		Transactions:  []models.Transaction{},
		Goals:         []models.Goal{},
		Notifications: []models.Notification{},
		Flags:         ViewFlags{SampleCollections: []models.Collection{}},
	}
}

func buildView(profile models.Profile, decision FallbackDecision, loadedAt time.Time) AggregateView {
	collections := decision.Collections.nonNil()

	view := AggregateView{
		User:          profile,
		Accounts:      collections.Accounts,
		Transactions:  collections.Transactions,
		Goals:         collections.Goals,
		Notifications: []models.Notification{},
		Mode:          decision.Mode,
		Flags: ViewFlags{
			IsSampleData:      decision.Mode == ModeSample,
			HasRealData:       decision.HasRealData,
			FallbackReason:    decision.Reason,
			SampleCollections: decision.SampleCollections,
		},
		LoadedAt: &loadedAt,
	}
	if view.Flags.SampleCollections == nil {
		view.Flags.SampleCollections = []models.Collection{}
	}
	if decision.Mode == ModeSample {
		view.Notifications = sampledata.Notifications()
		view.SampleDataVersion = sampledata.Version
	}
	view.Summary = ComputeSummary(baseCurrency(profile), view.Accounts, view.Transactions, view.Goals)
	return view
}

func baseCurrency(profile models.Profile) string {
	if profile.BaseCurrency == "" {
		return models.DefaultCurrency
	}
	return profile.BaseCurrency
}

// AddEntity inserts record for the loaded owner and appends it to the local collection.
// The owner on the record is always overwritten.
func (a *DataAggregator) AddEntity(ctx context.Context, collection models.Collection, record models.Entity) MutationResult {
	ownerID := a.currentOwner()
	if ownerID == uuid.Nil {
		return a.fail(ctx, ownerID, OpAdd, collection, uuid.Nil, ErrNotLoaded)
	}
	if a.storeOpen() {
		return a.fail(ctx, ownerID, OpAdd, collection, uuid.Nil, ErrStoreBreakerOpen)
	}
	if record == nil {
		return a.fail(ctx, ownerID, OpAdd, collection, uuid.Nil, ErrCollectionMismatch)
	}
	record.SetOwner(ownerID)

	var err error
	switch collection {
	case models.CollectionAccounts:
		account, ok := record.(*models.Account)
		if !ok {
			return a.fail(ctx, ownerID, OpAdd, collection, record.EntityID(), ErrCollectionMismatch)
		}
		if err = a.recordStoreOutcome(a.accountRepo.Create(ctx, account)); err == nil {
			a.mutate(func(v *AggregateView) { v.Accounts = upsert(v.Accounts, *account) })
		}
	case models.CollectionTransactions:
		transaction, ok := record.(*models.Transaction)
		if !ok {
			return a.fail(ctx, ownerID, OpAdd, collection, record.EntityID(), ErrCollectionMismatch)
		}
		if err = a.recordStoreOutcome(a.transactionRepo.Create(ctx, transaction)); err == nil {
			a.mutate(func(v *AggregateView) { v.Transactions = upsert(v.Transactions, *transaction) })
		}
	case models.CollectionGoals:
		goal, ok := record.(*models.Goal)
		if !ok {
			return a.fail(ctx, ownerID, OpAdd, collection, record.EntityID(), ErrCollectionMismatch)
		}
		if err = a.recordStoreOutcome(a.goalRepo.Create(ctx, goal)); err == nil {
			a.mutate(func(v *AggregateView) { v.Goals = upsert(v.Goals, *goal) })
		}
	default:
		err = models.ErrUnknownCollection
	}

	if err != nil {
		return a.fail(ctx, ownerID, OpAdd, collection, record.EntityID(), err)
	}
	return a.succeed(ctx, ownerID, OpAdd, collection, record.EntityID())
}

// UpdateEntity forwards patch and merges it into the local record. Only the patched
// fields change locally.
func (a *DataAggregator) UpdateEntity(ctx context.Context, collection models.Collection, id uuid.UUID, patch map[string]interface{}) MutationResult {
	ownerID := a.currentOwner()
	if ownerID == uuid.Nil {
		return a.fail(ctx, ownerID, OpUpdate, collection, id, ErrNotLoaded)
	}
	if a.storeOpen() {
		return a.fail(ctx, ownerID, OpUpdate, collection, id, ErrStoreBreakerOpen)
	}

	target, err := entityFor(collection)
	if err != nil {
		return a.fail(ctx, ownerID, OpUpdate, collection, id, err)
	}

	normalized, err := models.NormalizePatch(target, patch)
	if err != nil {
		return a.fail(ctx, ownerID, OpUpdate, collection, id, err)
	}

	// validate the merged record before it reaches the store
	if current, found := a.findLocal(collection, id); found {
		if err := models.ApplyPatch(current, normalized); err != nil {
			return a.fail(ctx, ownerID, OpUpdate, collection, id, err)
		}
		if err := current.Validate(); err != nil {
			return a.fail(ctx, ownerID, OpUpdate, collection, id, err)
		}
	}

	switch collection {
	case models.CollectionAccounts:
		err = a.recordStoreOutcome(a.accountRepo.Update(ctx, ownerID, id, normalized))
	case models.CollectionTransactions:
		err = a.recordStoreOutcome(a.transactionRepo.Update(ctx, ownerID, id, normalized))
	case models.CollectionGoals:
		err = a.recordStoreOutcome(a.goalRepo.Update(ctx, ownerID, id, normalized))
	}
	if err != nil {
		return a.fail(ctx, ownerID, OpUpdate, collection, id, err)
	}

	var patchErr error
	a.mutate(func(v *AggregateView) {
		switch collection {
		case models.CollectionAccounts:
			patchErr = patchByID(v.Accounts, id, normalized)
		case models.CollectionTransactions:
			patchErr = patchByID(v.Transactions, id, normalized)
		case models.CollectionGoals:
			patchErr = patchByID(v.Goals, id, normalized)
		}
	})
	if patchErr != nil {
		return a.fail(ctx, ownerID, OpUpdate, collection, id, patchErr)
	}
	return a.succeed(ctx, ownerID, OpUpdate, collection, id)
}

// DeleteEntity deletes the record remotely and filters it out of the local collection
func (a *DataAggregator) DeleteEntity(ctx context.Context, collection models.Collection, id uuid.UUID) MutationResult {
	ownerID := a.currentOwner()
	if ownerID == uuid.Nil {
		return a.fail(ctx, ownerID, OpDelete, collection, id, ErrNotLoaded)
	}
	if a.storeOpen() {
		return a.fail(ctx, ownerID, OpDelete, collection, id, ErrStoreBreakerOpen)
	}

	var err error
	switch collection {
	case models.CollectionAccounts:
		err = a.recordStoreOutcome(a.accountRepo.Delete(ctx, ownerID, id))
	case models.CollectionTransactions:
		err = a.recordStoreOutcome(a.transactionRepo.Delete(ctx, ownerID, id))
	case models.CollectionGoals:
		err = a.recordStoreOutcome(a.goalRepo.Delete(ctx, ownerID, id))
	default:
		err = models.ErrUnknownCollection
	}
	if err != nil {
		return a.fail(ctx, ownerID, OpDelete, collection, id, err)
	}

	a.mutate(func(v *AggregateView) {
		switch collection {
		case models.CollectionAccounts:
			v.Accounts = removeByID(v.Accounts, id)
		case models.CollectionTransactions:
			v.Transactions = removeByID(v.Transactions, id)
		case models.CollectionGoals:
			v.Goals = removeByID(v.Goals, id)
		}
	})
	return a.succeed(ctx, ownerID, OpDelete, collection, id)
}

// MarkRealDataPresent flips a sample view to real mode without touching its collections.
// It reports whether the mode changed.
func (a *DataAggregator) MarkRealDataPresent(ctx context.Context) bool {
	a.mu.Lock()
	if a.state != StateSample {
		a.mu.Unlock()
		return false
	}
	a.state = StateReal
	a.view.Mode = ModeReal
	a.view.Flags = ViewFlags{HasRealData: true, SampleCollections: []models.Collection{}}
	a.view.SampleDataVersion = ""
	ownerID := a.ownerID
	a.mu.Unlock()

	a.logger.LogModePromoted(ctx, ownerID, ModeSample, ModeReal)
	a.metrics.IncrementCounter(MetricModePromoted, nil)
	return true
}

// Snapshot returns a deep copy of the current view
func (a *DataAggregator) Snapshot() AggregateView {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snapshot := a.view.clone()
	snapshot.State = a.state
	return snapshot
}

func (a *DataAggregator) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// Err returns the error that triggered the last settled load's fallback, if any
func (a *DataAggregator) Err() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastErr
}

// OwnerID returns the owner of the latest load
func (a *DataAggregator) OwnerID() uuid.UUID {
	return a.currentOwner()
}

// CollectionView returns one collection the way a page-level view shows it. A real view
// is passed through the fallback policy again with scope, so an empty collection can
// still show samples on its own page.
func (a *DataAggregator) CollectionView(collection models.Collection, scope FallbackScope) (CollectionView, error) {
	if _, err := models.ParseCollection(string(collection)); err != nil {
		return CollectionView{}, err
	}

	snapshot := a.Snapshot()
	if snapshot.State == StateUninitialized {
		return CollectionView{}, ErrNotLoaded
	}

	current := CollectionSet{
		Accounts:     snapshot.Accounts,
		Transactions: snapshot.Transactions,
		Goals:        snapshot.Goals,
	}
	sampleData := snapshot.Flags.IsSampleData
	if !sampleData {
		decision := ApplyFallbackPolicy(scope, current, SampleCollectionSet())
		current = decision.Collections
		sampleData = containsCollection(decision.SampleCollections, collection)
	}

	view := CollectionView{
		Collection: collection,
		Count:      current.Len(collection),
		SampleData: sampleData,
		Mode:       ModeReal,
		State:      snapshot.State,
	}
	if sampleData {
		view.Mode = ModeSample
	}

	switch collection {
	case models.CollectionAccounts:
		view.Items = current.Accounts
	case models.CollectionTransactions:
		view.Items = current.Transactions
	case models.CollectionGoals:
		view.Items = current.Goals
	}
	return view, nil
}

// recordStoreOutcome feeds the result of a store call to the breaker and returns err
func (a *DataAggregator) recordStoreOutcome(err error) error {
	if a.breaker == nil {
		return err
	}
	switch {
	case err == nil:
		a.breaker.RecordSuccess()
	case IsStoreFailure(err):
		a.breaker.RecordFailure()
	}
	return err
}

// storeOpen reports whether the breaker is refusing store calls
func (a *DataAggregator) storeOpen() bool {
	return a.breaker != nil && a.breaker.IsOpen()
}

func (a *DataAggregator) currentOwner() uuid.UUID {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ownerID
}

// mutate applies fn to the view and refreshes the summary
func (a *DataAggregator) mutate(fn func(v *AggregateView)) {
	a.mu.Lock()
	defer a.mu.Unlock()

	fn(&a.view)
	a.view.Summary = ComputeSummary(baseCurrency(a.view.User), a.view.Accounts, a.view.Transactions, a.view.Goals)
}

// findLocal returns a copy of the local record with id
func (a *DataAggregator) findLocal(collection models.Collection, id uuid.UUID) (models.Entity, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	switch collection {
	case models.CollectionAccounts:
		for _, account := range a.view.Accounts {
			if account.ID == id {
				return &account, true
			}
		}
	case models.CollectionTransactions:
		for _, transaction := range a.view.Transactions {
			if transaction.ID == id {
				return &transaction, true
			}
		}
	case models.CollectionGoals:
		for _, goal := range a.view.Goals {
			if goal.ID == id {
				return &goal, true
			}
		}
	}
	return nil, false
}

func (a *DataAggregator) succeed(ctx context.Context, ownerID uuid.UUID, op string, collection models.Collection, id uuid.UUID) MutationResult {
	a.logger.LogMutationSucceeded(ctx, ownerID, op, collection, id)
	a.metrics.IncrementCounter(MetricDashboardMutation, map[string]string{
		"collection": string(collection),
		"operation":  op,
		"status":     "success",
	})
	return MutationResult{Success: true}
}

func (a *DataAggregator) fail(ctx context.Context, ownerID uuid.UUID, op string, collection models.Collection, id uuid.UUID, err error) MutationResult {
	mutationErr := &MutationError{Op: op, Collection: collection, ID: id, Err: err}

	a.logger.LogMutationFailed(ctx, ownerID, op, collection, id, err.Error())
	a.metrics.IncrementCounter(MetricDashboardMutation, map[string]string{
		"collection": string(collection),
		"operation":  op,
		"status":     "failed",
	})
	return MutationResult{Success: false, Error: mutationErr}
}

func entityFor(collection models.Collection) (models.Entity, error) {
	switch collection {
	case models.CollectionAccounts:
		return &models.Account{}, nil
	case models.CollectionTransactions:
		return &models.Transaction{}, nil
	case models.CollectionGoals:
		return &models.Goal{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownCollection, collection)
	}
}

type entityPtr[T any] interface {
	*T
	models.Entity
}

// upsert replaces the item with the same id, or appends it
func upsert[T any, P entityPtr[T]](items []T, item T) []T {
	id := P(&item).EntityID()
	for i := range items {
		if P(&items[i]).EntityID() == id {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func removeByID[T any, P entityPtr[T]](items []T, id uuid.UUID) []T {
	kept := make([]T, 0, len(items))
	for i := range items {
		if P(&items[i]).EntityID() != id {
			kept = append(kept, items[i])
		}
	}
	return kept
}

func patchByID[T any, P entityPtr[T]](items []T, id uuid.UUID, patch map[string]interface{}) error {
	for i := range items {
		if P(&items[i]).EntityID() == id {
			return models.ApplyPatch(P(&items[i]), patch)
		}
	}
	return nil
}

func containsCollection(collections []models.Collection, collection models.Collection) bool {
	for _, c := range collections {
		if c == collection {
			return true
		}
	}
	return false
}

func (v AggregateView) clone() AggregateView {
	out := v

	out.Accounts = make([]models.Account, len(v.Accounts))
	for i, account := range v.Accounts {
		if account.CreditLimit != nil {
			limit := *account.CreditLimit
			account.CreditLimit = &limit
		}
		out.Accounts[i] = account
	}

	out.Transactions = append(make([]models.Transaction, 0, len(v.Transactions)), v.Transactions...)

	out.Goals = make([]models.Goal, len(v.Goals))
	for i, goal := range v.Goals {
		if goal.CompletedDate != nil {
			completed := *goal.CompletedDate
			goal.CompletedDate = &completed
		}
		if goal.ArchivedDate != nil {
			archived := *goal.ArchivedDate
			goal.ArchivedDate = &archived
		}
		out.Goals[i] = goal
	}

	out.Notifications = append(make([]models.Notification, 0, len(v.Notifications)), v.Notifications...)
	out.Flags.SampleCollections = append(make([]models.Collection, 0, len(v.Flags.SampleCollections)), v.Flags.SampleCollections...)

	if v.LoadedAt != nil {
		loadedAt := *v.LoadedAt
		out.LoadedAt = &loadedAt
	}
	return out
}
