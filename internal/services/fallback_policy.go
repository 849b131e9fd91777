package services

import (
	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/sampledata"
)

// FallbackScope decides how empty collections are replaced by sample data
type FallbackScope string

const (
	// FallbackScopeGlobal replaces every collection only when all of them are empty
	FallbackScopeGlobal FallbackScope = config.FallbackScopeGlobal
	// FallbackScopePerCollection replaces each empty collection on its own
	FallbackScopePerCollection FallbackScope = config.FallbackScopePerCollection
)

// Fallback reasons reported on the view and in logs
const (
	ReasonEmptyStore        = "empty store"
	ReasonRemoteQueryFailed = "remote query failed"
	ReasonMissingOwner      = "missing owner"
	ReasonStoreUnavailable  = "remote store unavailable"
)

// ParseFallbackScope maps a configured scope name to a FallbackScope, defaulting to global
func ParseFallbackScope(name string) FallbackScope {
	if FallbackScope(name) == FallbackScopePerCollection {
		return FallbackScopePerCollection
	}
	return FallbackScopeGlobal
}

// CollectionSet holds the three owner collections
type CollectionSet struct {
	Accounts     []models.Account
	Transactions []models.Transaction
	Goals        []models.Goal
}

func (s CollectionSet) IsEmpty() bool {
	return len(s.Accounts) == 0 && len(s.Transactions) == 0 && len(s.Goals) == 0
}

// Len returns the size of one collection
func (s CollectionSet) Len(collection models.Collection) int {
	switch collection {
	case models.CollectionAccounts:
		return len(s.Accounts)
	case models.CollectionTransactions:
		return len(s.Transactions)
	case models.CollectionGoals:
		return len(s.Goals)
	default:
		return 0
	}
}

// Counts returns the size of every collection keyed by name
func (s CollectionSet) Counts() map[models.Collection]int {
	counts := make(map[models.Collection]int, 3)
	for _, collection := range models.AllCollections() {
		counts[collection] = s.Len(collection)
	}
	return counts
}

// nonNil replaces nil slices with empty ones
func (s CollectionSet) nonNil() CollectionSet {
	if s.Accounts == nil {
		s.Accounts = []models.Account{}
	}
	if s.Transactions == nil {
		s.Transactions = []models.Transaction{}
	}
	if s.Goals == nil {
		s.Goals = []models.Goal{}
	}
	return s
}

// SampleCollectionSet returns fresh copies of the sample accounts, transactions and goals
func SampleCollectionSet() CollectionSet {
	return CollectionSet{
		Accounts:     sampledata.Accounts(),
		Transactions: sampledata.Transactions(),
		Goals:        sampledata.Goals(),
	}
}

// FallbackDecision is the outcome of ApplyFallbackPolicy
type FallbackDecision struct {
	Collections       CollectionSet
	Mode              Mode
	HasRealData       bool
	SampleCollections []models.Collection
	Reason            string
}

// ApplyFallbackPolicy chooses between fetched rows and samples.
// With global scope any fetched row keeps all fetched collections verbatim.
// With per-collection scope each empty collection is swapped for its samples and listed
// in SampleCollections; the mode is Sample only when every collection was swapped.
func ApplyFallbackPolicy(scope FallbackScope, fetched, samples CollectionSet) FallbackDecision {
	hasRealData := !fetched.IsEmpty()

	if scope == FallbackScopePerCollection {
		decision := FallbackDecision{
			Collections:       fetched,
			Mode:              ModeReal,
			HasRealData:       hasRealData,
			SampleCollections: []models.Collection{},
		}
		if len(fetched.Accounts) == 0 {
			decision.Collections.Accounts = samples.Accounts
			decision.SampleCollections = append(decision.SampleCollections, models.CollectionAccounts)
		}
		if len(fetched.Transactions) == 0 {
			decision.Collections.Transactions = samples.Transactions
			decision.SampleCollections = append(decision.SampleCollections, models.CollectionTransactions)
		}
		if len(fetched.Goals) == 0 {
			decision.Collections.Goals = samples.Goals
			decision.SampleCollections = append(decision.SampleCollections, models.CollectionGoals)
		}
		if len(decision.SampleCollections) > 0 {
			decision.Reason = ReasonEmptyStore
		}
		if !hasRealData {
			decision.Mode = ModeSample
		}
		decision.Collections = decision.Collections.nonNil()
		return decision
	}

	if hasRealData {
		return FallbackDecision{
			Collections:       fetched.nonNil(),
			Mode:              ModeReal,
			HasRealData:       true,
			SampleCollections: []models.Collection{},
		}
	}

	return FallbackDecision{
		Collections:       samples.nonNil(),
		Mode:              ModeSample,
		HasRealData:       false,
		SampleCollections: models.AllCollections(),
		Reason:            ReasonEmptyStore,
	}
}
