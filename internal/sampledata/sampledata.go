// Package sampledata holds the fixed demo records shown when an owner has no persisted data.
// Every accessor returns a fresh copy, so callers may mutate the result.
package sampledata

import (
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Version is bumped whenever the fixture contents change
const Version = "2024.06.1"

// OwnerID is stamped on every sample record. It never matches a real identity.
var OwnerID = uuid.MustParse("00000000-0000-4000-8000-000000000000")

var (
	checkingID = uuid.MustParse("5a1c0b2e-0001-4c7e-9a01-000000000001")
	savingsID  = uuid.MustParse("5a1c0b2e-0001-4c7e-9a01-000000000002")
	creditID   = uuid.MustParse("5a1c0b2e-0001-4c7e-9a01-000000000003")
)

// fixtures are dated relative to this instant so the demo never drifts
var asOf = time.Date(2024, time.June, 28, 12, 0, 0, 0, time.UTC)

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func sampleID(group, n int) uuid.UUID {
	id := uuid.MustParse("5a1c0b2e-0000-4c7e-9a01-000000000000")
	id[6] = byte(0x40 | group)
	id[15] = byte(n)
	return id
}

// Accounts returns the three sample accounts: checking, savings and credit
func Accounts() []models.Account {
	limit := amount("8000.00")
	return []models.Account{
		{
			ID:        checkingID,
			OwnerID:   OwnerID,
			Name:      "Everyday Checking",
			Type:      models.AccountTypeChecking,
			Balance:   amount("4250.75"),
			Currency:  models.DefaultCurrency,
			BankName:  "Harbor National Bank",
			IsActive:  true,
			CreatedAt: day(time.January, 2),
			UpdatedAt: asOf,
		},
		{
			ID:        savingsID,
			OwnerID:   OwnerID,
			Name:      "High-Yield Savings",
			Type:      models.AccountTypeSavings,
			Balance:   amount("15800.00"),
			Currency:  models.DefaultCurrency,
			BankName:  "Harbor National Bank",
			IsActive:  true,
			CreatedAt: day(time.January, 2),
			UpdatedAt: asOf,
		},
		{
			ID:          creditID,
			OwnerID:     OwnerID,
			Name:        "Travel Rewards Card",
			Type:        models.AccountTypeCredit,
			Balance:     amount("-1320.40"),
			Currency:    models.DefaultCurrency,
			BankName:    "Summit Card Services",
			IsActive:    true,
			CreditLimit: &limit,
			CreatedAt:   day(time.February, 14),
			UpdatedAt:   asOf,
		},
	}
}

type txFixture struct {
	account     uuid.UUID
	txType      string
	category    string
	subcategory string
	amount      string
	date        time.Time
	description string
	merchant    string
	recurring   bool
	status      string
}

var transactionFixtures = []txFixture{
	{checkingID, models.TransactionTypeCredit, models.CategoryIncome, "Salary", "3850.00", day(time.June, 28), "Payroll deposit", "Acme Corp", true, models.TransactionStatusPending},
	{creditID, models.TransactionTypeDebit, models.CategoryDining, "Restaurants", "64.20", day(time.June, 26), "Dinner with friends", "Bistro 22", false, models.TransactionStatusCompleted},
	{checkingID, models.TransactionTypeDebit, models.CategoryGroceries, "Supermarket", "142.37", day(time.June, 22), "Weekly groceries", "Fresh Market", false, models.TransactionStatusCompleted},
	{checkingID, models.TransactionTypeDebit, models.CategoryUtilities, "Internet", "69.99", day(time.June, 18), "Home internet", "FiberNet", true, models.TransactionStatusCompleted},
	{creditID, models.TransactionTypeDebit, models.CategoryEntertainment, "Streaming", "15.49", day(time.June, 15), "Streaming subscription", "StreamFlix", true, models.TransactionStatusCompleted},
	{checkingID, models.TransactionTypeCredit, models.CategoryIncome, "Salary", "3850.00", day(time.June, 14), "Payroll deposit", "Acme Corp", true, models.TransactionStatusCompleted},
	{creditID, models.TransactionTypeDebit, models.CategoryTransport, "Fuel", "48.10", day(time.June, 11), "Gas station", "Shell", false, models.TransactionStatusCompleted},
	{savingsID, models.TransactionTypeCredit, models.CategorySavings, "Transfer", "500.00", day(time.June, 3), "Monthly savings transfer", "", true, models.TransactionStatusCompleted},
	{checkingID, models.TransactionTypeDebit, models.CategoryHousing, "Rent", "1650.00", day(time.June, 1), "June rent", "Parkview Apartments", true, models.TransactionStatusCompleted},
	{checkingID, models.TransactionTypeCredit, models.CategoryIncome, "Salary", "3850.00", day(time.May, 31), "Payroll deposit", "Acme Corp", true, models.TransactionStatusCompleted},
	{creditID, models.TransactionTypeDebit, models.CategoryShopping, "Electronics", "229.99", day(time.May, 29), "Headphones", "Tech Depot", false, models.TransactionStatusCancelled},
	{checkingID, models.TransactionTypeDebit, models.CategoryHealthcare, "Pharmacy", "23.75", day(time.May, 20), "Prescription", "CarePlus Pharmacy", false, models.TransactionStatusCompleted},
}

// Transactions returns the sample transactions, newest first
func Transactions() []models.Transaction {
	transactions := make([]models.Transaction, 0, len(transactionFixtures))
	for i, f := range transactionFixtures {
		transactions = append(transactions, models.Transaction{
			ID:          sampleID(1, i+1),
			OwnerID:     OwnerID,
			AccountID:   f.account,
			Type:        f.txType,
			Category:    f.category,
			Subcategory: f.subcategory,
			Amount:      amount(f.amount),
			Currency:    models.DefaultCurrency,
			Date:        f.date,
			Description: f.description,
			Merchant:    f.merchant,
			Recurring:   f.recurring,
			Status:      f.status,
			CreatedAt:   f.date,
			UpdatedAt:   f.date,
		})
	}
	return transactions
}

// Goals returns sample goals covering every goal status, ordered by target date
func Goals() []models.Goal {
	completed := day(time.April, 30)
	archived := day(time.March, 10)

	return []models.Goal{
		{
			ID:            sampleID(2, 1),
			OwnerID:       OwnerID,
			Name:          "New Laptop",
			TargetAmount:  amount("1800.00"),
			CurrentAmount: amount("1800.00"),
			TargetDate:    day(time.May, 1),
			Category:      models.GoalCategoryEducation,
			Priority:      models.GoalPriorityMedium,
			Status:        models.GoalStatusCompleted,
			CreatedDate:   day(time.January, 5),
			CompletedDate: &completed,
			UpdatedAt:     completed,
		},
		{
			ID:            sampleID(2, 2),
			OwnerID:       OwnerID,
			Name:          "Summer Trip to Lisbon",
			TargetAmount:  amount("3500.00"),
			CurrentAmount: amount("2100.00"),
			TargetDate:    day(time.August, 15),
			Category:      models.GoalCategoryTravel,
			Priority:      models.GoalPriorityMedium,
			Status:        models.GoalStatusActive,
			CreatedDate:   day(time.February, 1),
			UpdatedAt:     asOf,
		},
		{
			ID:            sampleID(2, 3),
			OwnerID:       OwnerID,
			Name:          "Emergency Fund",
			TargetAmount:  amount("15000.00"),
			CurrentAmount: amount("9200.00"),
			TargetDate:    day(time.December, 31),
			Category:      models.GoalCategoryEmergencyFund,
			Priority:      models.GoalPriorityHigh,
			Status:        models.GoalStatusActive,
			CreatedDate:   day(time.January, 2),
			UpdatedAt:     asOf,
		},
		{
			ID:            sampleID(2, 4),
			OwnerID:       OwnerID,
			Name:          "Home Down Payment",
			TargetAmount:  amount("60000.00"),
			CurrentAmount: amount("4500.00"),
			TargetDate:    time.Date(2027, time.June, 30, 0, 0, 0, 0, time.UTC),
			Category:      models.GoalCategoryHome,
			Priority:      models.GoalPriorityLow,
			Status:        models.GoalStatusArchived,
			CreatedDate:   day(time.January, 2),
			ArchivedDate:  &archived,
			ArchiveReason: "Postponed until after relocation",
			UpdatedAt:     archived,
		},
	}
}

// Notifications returns the sample notifications, newest first
func Notifications() []models.Notification {
	return []models.Notification{
		{
			ID:        sampleID(3, 1),
			Title:     "Payroll deposit pending",
			Message:   "A deposit of $3,850.00 to Everyday Checking is pending.",
			Type:      models.NotificationTypeInfo,
			CreatedAt: day(time.June, 28),
		},
		{
			ID:        sampleID(3, 2),
			Title:     "Dining budget almost reached",
			Message:   "You have used 90% of this month's dining budget.",
			Type:      models.NotificationTypeWarning,
			CreatedAt: day(time.June, 26),
		},
		{
			ID:        sampleID(3, 3),
			Title:     "Goal completed",
			Message:   "You reached your New Laptop goal.",
			Type:      models.NotificationTypeSuccess,
			Read:      true,
			CreatedAt: day(time.April, 30),
		},
	}
}

// Counts reports how many records each sample collection holds
func Counts() map[models.Collection]int {
	return map[models.Collection]int{
		models.CollectionAccounts:     len(Accounts()),
		models.CollectionTransactions: len(transactionFixtures),
		models.CollectionGoals:        len(Goals()),
	}
}
