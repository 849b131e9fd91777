package services

import (
	"testing"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/sampledata"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func TestComputeSummary_SampleData(t *testing.T) {
	summary := ComputeSummary(models.DefaultCurrency, sampledata.Accounts(), sampledata.Transactions(), sampledata.Goals())

	assert.Equal(t, "USD", summary.Currency)
	assertDecimal(t, "20050.75", summary.TotalAssets, "assets")
	assertDecimal(t, "1320.40", summary.TotalLiabilities, "liabilities")
	assertDecimal(t, "18730.35", summary.NetWorth, "net worth")

	// the pending June 28 deposit is not the latest completed transaction
	assert.Equal(t, "2024-06", summary.Period)
	assertDecimal(t, "4350.00", summary.MonthlyIncome, "income")
	assertDecimal(t, "1990.15", summary.MonthlyExpenses, "expenses")
	assertDecimal(t, "2359.85", summary.MonthlyNet, "net")
	assert.Equal(t, 3, summary.RecurringCount)
	assertDecimal(t, "1735.48", summary.RecurringTotal, "recurring")

	assert.Equal(t, 2, summary.ActiveGoals)
	assertDecimal(t, "18500.00", summary.GoalsTarget, "goals target")
	assertDecimal(t, "11300.00", summary.GoalsSaved, "goals saved")
	assertDecimal(t, "0.6108", summary.GoalsProgress, "goals progress")

	assert.Equal(t, 3, summary.AccountCount)
	assert.Equal(t, len(sampledata.Transactions()), summary.TransactionCount)
	assert.Equal(t, 4, summary.GoalCount)
}

func TestComputeSummary_Empty(t *testing.T) {
	summary := ComputeSummary("EUR", nil, nil, nil)

	assert.Equal(t, "EUR", summary.Currency)
	assert.Empty(t, summary.Period)
	assert.True(t, summary.NetWorth.IsZero())
	assert.True(t, summary.MonthlyNet.IsZero())
	assert.True(t, summary.GoalsProgress.IsZero())
	assert.Zero(t, summary.AccountCount)
}

func TestComputeSummary_IgnoresOtherCurrenciesAndInactiveAccounts(t *testing.T) {
	ownerID := uuid.New()
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	accounts := []models.Account{
		{ID: uuid.New(), OwnerID: ownerID, Type: models.AccountTypeChecking, Balance: decimal.NewFromInt(1000), Currency: "USD", IsActive: true},
		{ID: uuid.New(), OwnerID: ownerID, Type: models.AccountTypeSavings, Balance: decimal.NewFromInt(5000), Currency: "EUR", IsActive: true},
		{ID: uuid.New(), OwnerID: ownerID, Type: models.AccountTypeSavings, Balance: decimal.NewFromInt(700), Currency: "USD", IsActive: false},
	}
	transactions := []models.Transaction{
		{ID: uuid.New(), Type: models.TransactionTypeDebit, Amount: decimal.NewFromInt(40), Currency: "USD", Date: date, Status: models.TransactionStatusCompleted},
		{ID: uuid.New(), Type: models.TransactionTypeDebit, Amount: decimal.NewFromInt(900), Currency: "EUR", Date: date.AddDate(0, 1, 0), Status: models.TransactionStatusCompleted},
	}

	summary := ComputeSummary("USD", accounts, transactions, nil)

	assertDecimal(t, "1000", summary.TotalAssets, "assets")
	assert.Equal(t, "2024-03", summary.Period)
	assertDecimal(t, "40", summary.MonthlyExpenses, "expenses")
	assert.Equal(t, 3, summary.AccountCount)
}

func TestComputeSummary_GoalProgressCappedAtOne(t *testing.T) {
	goals := []models.Goal{
		{ID: uuid.New(), TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(250), Status: models.GoalStatusActive},
	}

	summary := ComputeSummary("USD", nil, nil, goals)

	assertDecimal(t, "1", summary.GoalsProgress, "goals progress")
}
