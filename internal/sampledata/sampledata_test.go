package sampledata

import (
	"sort"
	"testing"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccounts_ThreeAccountTypes(t *testing.T) {
	accounts := Accounts()
	require.Len(t, accounts, 3)

	types := []string{accounts[0].Type, accounts[1].Type, accounts[2].Type}
	assert.ElementsMatch(t, []string{
		models.AccountTypeChecking,
		models.AccountTypeSavings,
		models.AccountTypeCredit,
	}, types)

	for _, account := range accounts {
		a := account
		assert.NoError(t, a.Validate(), a.Name)
		assert.Equal(t, OwnerID, a.OwnerID)
	}
}

func TestTransactions_ReferenceSampleAccounts(t *testing.T) {
	accountIDs := map[uuid.UUID]bool{}
	for _, a := range Accounts() {
		accountIDs[a.ID] = true
	}

	transactions := Transactions()
	require.NotEmpty(t, transactions)

	recurring := 0
	for _, tx := range transactions {
		txCopy := tx
		assert.NoError(t, txCopy.Validate(), tx.Description)
		assert.True(t, accountIDs[tx.AccountID], "transaction %s references unknown account", tx.ID)
		if tx.Recurring {
			recurring++
		}
	}
	assert.Greater(t, recurring, 0)

	assert.True(t, sort.SliceIsSorted(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	}))
}

func TestGoals_CoverEveryStatus(t *testing.T) {
	statuses := map[string]int{}
	for _, g := range Goals() {
		goal := g
		assert.NoError(t, goal.Validate(), goal.Name)
		statuses[g.Status]++

		switch g.Status {
		case models.GoalStatusCompleted:
			assert.NotNil(t, g.CompletedDate)
		case models.GoalStatusArchived:
			assert.NotNil(t, g.ArchivedDate)
			assert.NotEmpty(t, g.ArchiveReason)
		}
	}

	assert.Contains(t, statuses, models.GoalStatusActive)
	assert.Contains(t, statuses, models.GoalStatusCompleted)
	assert.Contains(t, statuses, models.GoalStatusArchived)
}

func TestUniqueIDs(t *testing.T) {
	seen := map[uuid.UUID]bool{}
	add := func(id uuid.UUID) {
		assert.False(t, seen[id], "duplicate sample id %s", id)
		seen[id] = true
	}

	for _, a := range Accounts() {
		add(a.ID)
	}
	for _, tx := range Transactions() {
		add(tx.ID)
	}
	for _, g := range Goals() {
		add(g.ID)
	}
	for _, n := range Notifications() {
		add(n.ID)
	}
}

func TestAccessorsReturnFreshCopies(t *testing.T) {
	accounts := Accounts()
	accounts[0].Name = "mutated"
	*accounts[2].CreditLimit = decimal.Zero

	again := Accounts()
	assert.Equal(t, "Everyday Checking", again[0].Name)
	assert.True(t, again[2].CreditLimit.Equal(decimal.NewFromInt(8000)))

	goals := Goals()
	goals[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Goals()[0].Name)
}

func TestCounts(t *testing.T) {
	counts := Counts()
	assert.Equal(t, 3, counts[models.CollectionAccounts])
	assert.Equal(t, len(Transactions()), counts[models.CollectionTransactions])
	assert.Equal(t, len(Goals()), counts[models.CollectionGoals])
	assert.NotEmpty(t, Version)
}
