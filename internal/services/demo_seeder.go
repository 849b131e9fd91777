package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOwnerHasData = errors.New("owner already has records")
)

const (
	defaultSeedTransactions = 40
	maxSeedTransactions     = 500
	seedHistoryDays         = 90
	salaryDayOfMonth        = 1
	rentDayOfMonth          = 3
)

// SeedOptions controls the demo seeder. A zero Seed picks a random one.
type SeedOptions struct {
	Transactions int
	Seed         uint64
}

type SeedResult struct {
	Profile      models.Profile `json:"profile"`
	Accounts     int            `json:"accounts"`
	Transactions int            `json:"transactions"`
	Goals        int            `json:"goals"`
}

type merchant struct {
	name     string
	category string
	min, max float64
}

// merchantPool is the set of merchants demo purchases are drawn from
var merchantPool = []merchant{
	{"Whole Foods Market", models.CategoryGroceries, 25, 180},
	{"Trader Joe's", models.CategoryGroceries, 20, 120},
	{"Kroger", models.CategoryGroceries, 15, 150},
	{"Costco Wholesale", models.CategoryGroceries, 60, 320},
	{"Starbucks", models.CategoryDining, 4, 15},
	{"Chipotle Mexican Grill", models.CategoryDining, 10, 30},
	{"Olive Garden", models.CategoryDining, 30, 90},
	{"Panera Bread", models.CategoryDining, 9, 25},
	{"Uber", models.CategoryTransport, 8, 45},
	{"Shell", models.CategoryTransport, 30, 75},
	{"Metro Transit", models.CategoryTransport, 2.5, 5},
	{"Amazon.com", models.CategoryShopping, 12, 250},
	{"Target", models.CategoryShopping, 15, 160},
	{"Best Buy", models.CategoryShopping, 40, 600},
	{"IKEA", models.CategoryShopping, 25, 400},
	{"AMC Theaters", models.CategoryEntertainment, 12, 40},
	{"Steam", models.CategoryEntertainment, 5, 60},
	{"CVS Pharmacy", models.CategoryHealthcare, 8, 70},
	{"Walgreens", models.CategoryHealthcare, 6, 55},
	{"Delta Air Lines", models.CategoryTravel, 120, 650},
	{"Marriott Hotels", models.CategoryTravel, 140, 480},
}

type recurringBill struct {
	name        string
	category    string
	subcategory string
	amount      float64
	day         int
}

var recurringBills = []recurringBill{
	{"Netflix", models.CategoryEntertainment, "Streaming", 15.49, 7},
	{"Spotify", models.CategoryEntertainment, "Streaming", 10.99, 12},
	{"Comcast Xfinity", models.CategoryUtilities, "Internet", 79.99, 15},
	{"PG&E", models.CategoryUtilities, "Electricity", 96.40, 18},
	{"Verizon Wireless", models.CategoryUtilities, "Phone", 65.00, 21},
}

type demoSeeder struct {
	profileRepo     repositories.ProfileRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	goalRepo        repositories.GoalRepositoryInterface
	logger          DashboardLoggerInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewDemoSeeder creates a seeder that writes generated records through the repositories
func NewDemoSeeder(
	profileRepo repositories.ProfileRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	goalRepo repositories.GoalRepositoryInterface,
	logger DashboardLoggerInterface,
	metrics MetricsRecorderInterface,
) DemoSeederInterface {
	return &demoSeeder{
		profileRepo:     profileRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		logger:          logger,
		metrics:         metrics,
		now:             time.Now,
	}
}

// SeedOwner fills an owner without accounts with a profile, three accounts, a few months
// of transactions and some goals. Owners that already have accounts are left alone.
func (s *demoSeeder) SeedOwner(ctx context.Context, ownerID uuid.UUID, opts SeedOptions) (*SeedResult, error) {
	if ownerID == uuid.Nil {
		return nil, models.ErrOwnerRequired
	}

	count, err := s.accountRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		return nil, ErrOwnerHasData
	}

	transactionCount := opts.Transactions
	if transactionCount <= 0 {
		transactionCount = defaultSeedTransactions
	}
	if transactionCount > maxSeedTransactions {
		transactionCount = maxSeedTransactions
	}

	faker := gofakeit.New(opts.Seed)
	now := s.now().UTC()

	profile := &models.Profile{
		ID:           ownerID,
		Email:        faker.Email(),
		FullName:     faker.FirstName() + " " + faker.LastName(),
		BaseCurrency: models.DefaultCurrency,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	accounts := generateAccounts(faker, ownerID)
	for i := range accounts {
		if err := s.accountRepo.Create(ctx, &accounts[i]); err != nil {
			return nil, fmt.Errorf("failed to create account %s: %w", accounts[i].Name, err)
		}
	}

	transactions := generateTransactions(faker, ownerID, accounts, transactionCount, now)
	if err := s.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to create transactions: %w", err)
	}

	goals := generateGoals(faker, ownerID, now)
	if err := s.goalRepo.CreateBatch(ctx, goals); err != nil {
		return nil, fmt.Errorf("failed to create goals: %w", err)
	}

	s.logger.LogDemoDataSeeded(ctx, ownerID, len(accounts), len(transactions), len(goals))
	s.metrics.IncrementCounter(MetricDemoDataSeeded, nil)

	return &SeedResult{
		Profile:      *profile,
		Accounts:     len(accounts),
		Transactions: len(transactions),
		Goals:        len(goals),
	}, nil
}

func generateAccounts(faker *gofakeit.Faker, ownerID uuid.UUID) []models.Account {
	bank := faker.Company() + " Bank"
	creditLimit := decimal.NewFromInt(int64(faker.Number(20, 120)) * 100)

	return []models.Account{
		{
			ID:       uuid.New(),
			OwnerID:  ownerID,
			Name:     "Primary Checking",
			Type:     models.AccountTypeChecking,
			Balance:  randomAmount(faker, 1500, 6500),
			Currency: models.DefaultCurrency,
			BankName: bank,
			IsActive: true,
		},
		{
			ID:       uuid.New(),
			OwnerID:  ownerID,
			Name:     "Savings",
			Type:     models.AccountTypeSavings,
			Balance:  randomAmount(faker, 5000, 30000),
			Currency: models.DefaultCurrency,
			BankName: bank,
			IsActive: true,
		},
		{
			ID:          uuid.New(),
			OwnerID:     ownerID,
			Name:        "Rewards Credit Card",
			Type:        models.AccountTypeCredit,
			Balance:     randomAmount(faker, 200, 2500).Neg(),
			Currency:    models.DefaultCurrency,
			BankName:    faker.Company() + " Card Services",
			IsActive:    true,
			CreditLimit: &creditLimit,
		},
	}
}

// generateTransactions produces monthly salary, rent and bills on checking plus random
// purchases spread over checking and credit. The result is ordered by date descending.
func generateTransactions(faker *gofakeit.Faker, ownerID uuid.UUID, accounts []models.Account, count int, now time.Time) []models.Transaction {
	checking, credit := accounts[0].ID, accounts[2].ID
	start := now.AddDate(0, 0, -seedHistoryDays)
	salary := randomAmount(faker, 3800, 7200)
	rent := randomAmount(faker, 1200, 2600)

	transactions := make([]models.Transaction, 0, count)
	add := func(accountID uuid.UUID, txnType, category, subcategory, merchantName, description string, amount decimal.Decimal, date time.Time, recurring bool) {
		if len(transactions) >= count {
			return
		}
		status := models.TransactionStatusCompleted
		if now.Sub(date) < 48*time.Hour {
			status = models.TransactionStatusPending
		}
		transactions = append(transactions, models.Transaction{
			ID:          uuid.New(),
			OwnerID:     ownerID,
			AccountID:   accountID,
			Type:        txnType,
			Category:    category,
			Subcategory: subcategory,
			Amount:      amount,
			Currency:    models.DefaultCurrency,
			Date:        date,
			Description: description,
			Merchant:    merchantName,
			Recurring:   recurring,
			Status:      status,
		})
	}

	for month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(now); month = month.AddDate(0, 1, 0) {
		if date := month.AddDate(0, 0, salaryDayOfMonth-1).Add(9 * time.Hour); inWindow(date, start, now) {
			add(checking, models.TransactionTypeCredit, models.CategoryIncome, "Salary", "Payroll", "Monthly salary", salary, date, true)
		}
		if date := month.AddDate(0, 0, rentDayOfMonth-1).Add(14 * time.Hour); inWindow(date, start, now) {
			add(checking, models.TransactionTypeDebit, models.CategoryHousing, "Rent", "Property Management", "Monthly rent", rent, date, true)
		}
		for _, bill := range recurringBills {
			if date := month.AddDate(0, 0, bill.day-1).Add(14 * time.Hour); inWindow(date, start, now) {
				add(checking, models.TransactionTypeDebit, bill.category, bill.subcategory, bill.name, bill.name+" bill", decimal.NewFromFloat(bill.amount), date, true)
			}
		}
	}

	for len(transactions) < count {
		m := merchantPool[faker.Number(0, len(merchantPool)-1)]
		accountID := checking
		if faker.Bool() {
			accountID = credit
		}
		date := faker.DateRange(start, now)
		add(accountID, models.TransactionTypeDebit, m.category, "", m.name, "Purchase at "+m.name, randomAmount(faker, m.min, m.max), date, false)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions
}

func generateGoals(faker *gofakeit.Faker, ownerID uuid.UUID, now time.Time) []models.Goal {
	completedAt := now.AddDate(0, -1, 0)

	emergencyTarget := decimal.NewFromInt(int64(faker.Number(8, 20)) * 1000)
	travelTarget := decimal.NewFromInt(int64(faker.Number(2, 6)) * 1000)
	laptopTarget := decimal.NewFromInt(int64(faker.Number(12, 30)) * 100)

	return []models.Goal{
		{
			ID:            uuid.New(),
			OwnerID:       ownerID,
			Name:          "Emergency Fund",
			TargetAmount:  emergencyTarget,
			CurrentAmount: emergencyTarget.Mul(decimal.NewFromFloat(faker.Float64Range(0.2, 0.8))).Round(2),
			TargetDate:    now.AddDate(1, 0, 0),
			Category:      models.GoalCategoryEmergencyFund,
			Priority:      models.GoalPriorityHigh,
			Status:        models.GoalStatusActive,
			CreatedDate:   now.AddDate(0, -6, 0),
		},
		{
			ID:            uuid.New(),
			OwnerID:       ownerID,
			Name:          "Trip to " + faker.Country(),
			TargetAmount:  travelTarget,
			CurrentAmount: travelTarget.Mul(decimal.NewFromFloat(faker.Float64Range(0.05, 0.6))).Round(2),
			TargetDate:    now.AddDate(0, faker.Number(4, 10), 0),
			Category:      models.GoalCategoryTravel,
			Priority:      models.GoalPriorityMedium,
			Status:        models.GoalStatusActive,
			CreatedDate:   now.AddDate(0, -2, 0),
		},
		{
			ID:            uuid.New(),
			OwnerID:       ownerID,
			Name:          "New Laptop",
			TargetAmount:  laptopTarget,
			CurrentAmount: laptopTarget,
			TargetDate:    completedAt,
			Category:      models.GoalCategoryEducation,
			Priority:      models.GoalPriorityLow,
			Status:        models.GoalStatusCompleted,
			CreatedDate:   now.AddDate(0, -8, 0),
			CompletedDate: &completedAt,
		},
	}
}

func randomAmount(faker *gofakeit.Faker, min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(faker.Float64Range(min, max)).Round(2)
}

func inWindow(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}
