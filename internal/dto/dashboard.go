package dto

import (
	"fmt"
	"strings"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the body of POST /dashboard/accounts
type CreateAccountRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Type        string  `json:"type" validate:"required,oneof=checking savings credit investment"`
	Balance     string  `json:"balance" validate:"required,money"`
	Currency    string  `json:"currency" validate:"omitempty,currency_code"`
	BankName    string  `json:"bank_name" validate:"max=100"`
	IsActive    *bool   `json:"is_active"`
	CreditLimit *string `json:"credit_limit" validate:"omitempty,money"`
}

// ToModel converts the request into an unsaved account
func (r *CreateAccountRequest) ToModel() (*models.Account, error) {
	balance, err := decimal.NewFromString(r.Balance)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}

	account := &models.Account{
		Name:     strings.TrimSpace(r.Name),
		Type:     r.Type,
		Balance:  balance,
		Currency: strings.ToUpper(r.Currency),
		BankName: r.BankName,
		IsActive: true,
	}
	if account.Currency == "" {
		account.Currency = models.DefaultCurrency
	}
	if r.IsActive != nil {
		account.IsActive = *r.IsActive
	}
	if r.CreditLimit != nil {
		limit, err := decimal.NewFromString(*r.CreditLimit)
		if err != nil {
			return nil, fmt.Errorf("credit_limit: %w", err)
		}
		account.CreditLimit = &limit
	}

	return account, nil
}

// CreateTransactionRequest is the body of POST /dashboard/transactions
type CreateTransactionRequest struct {
	AccountID   string `json:"account_id" validate:"required,uuid"`
	Type        string `json:"type" validate:"required,oneof=credit debit"`
	Category    string `json:"category" validate:"max=50"`
	Subcategory string `json:"subcategory" validate:"max=50"`
	Amount      string `json:"amount" validate:"required,money"`
	Currency    string `json:"currency" validate:"omitempty,currency_code"`
	Date        string `json:"date" validate:"required,date"`
	Description string `json:"description" validate:"required,max=500"`
	Merchant    string `json:"merchant" validate:"max=255"`
	Recurring   bool   `json:"recurring"`
	Status      string `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}

// ToModel converts the request into an unsaved transaction
func (r *CreateTransactionRequest) ToModel() (*models.Transaction, error) {
	accountID, err := uuid.Parse(r.AccountID)
	if err != nil {
		return nil, fmt.Errorf("account_id: %w", err)
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	txn := &models.Transaction{
		AccountID:   accountID,
		Type:        r.Type,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Amount:      amount,
		Currency:    strings.ToUpper(r.Currency),
		Date:        date,
		Description: strings.TrimSpace(r.Description),
		Merchant:    r.Merchant,
		Recurring:   r.Recurring,
		Status:      r.Status,
	}
	if txn.Currency == "" {
		txn.Currency = models.DefaultCurrency
	}
	if txn.Status == "" {
		txn.Status = models.TransactionStatusCompleted
	}

	return txn, nil
}

// CreateGoalRequest is the body of POST /dashboard/goals
type CreateGoalRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	TargetAmount  string `json:"target_amount" validate:"required,money"`
	CurrentAmount string `json:"current_amount" validate:"omitempty,money"`
	TargetDate    string `json:"target_date" validate:"required,date"`
	Category      string `json:"category" validate:"max=50"`
	Priority      string `json:"priority" validate:"omitempty,oneof=High Medium Low"`
	Status        string `json:"status" validate:"omitempty,oneof=active completed archived"`
}

// ToModel converts the request into an unsaved goal
func (r *CreateGoalRequest) ToModel(now time.Time) (*models.Goal, error) {
	target, err := decimal.NewFromString(r.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("target_amount: %w", err)
	}
	current := decimal.Zero
	if r.CurrentAmount != "" {
		current, err = decimal.NewFromString(r.CurrentAmount)
		if err != nil {
			return nil, fmt.Errorf("current_amount: %w", err)
		}
	}
	targetDate, err := ParseDate(r.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("target_date: %w", err)
	}

	goal := &models.Goal{
		Name:          strings.TrimSpace(r.Name),
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    targetDate,
		Category:      r.Category,
		Priority:      r.Priority,
		Status:        r.Status,
		CreatedDate:   now,
	}
	if goal.Priority == "" {
		goal.Priority = models.GoalPriorityMedium
	}
	if goal.Status == "" {
		goal.Status = models.GoalStatusActive
	}
	if goal.Status == models.GoalStatusCompleted {
		goal.CompletedDate = &now
	}
	if goal.Status == models.GoalStatusArchived {
		goal.ArchivedDate = &now
	}

	return goal, nil
}

// ParseDate accepts either a calendar date or an RFC 3339 timestamp
func ParseDate(value string) (time.Time, error) {
	return validation.ParseDate(value)
}

// MutationResponse reports a successful add, update or delete
type MutationResponse struct {
	Success    bool        `json:"success"`
	Collection string      `json:"collection"`
	ID         uuid.UUID   `json:"id"`
	Message    string      `json:"message"`
	Entity     interface{} `json:"entity,omitempty"`
}

// SeedRequest is the body of POST /dev/seed
type SeedRequest struct {
	Transactions int    `json:"transactions" validate:"omitempty,min=1,max=500"`
	Seed         uint64 `json:"seed"`
}

// SeedResponse summarizes the rows written by the demo seeder
type SeedResponse struct {
	Message      string    `json:"message"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Accounts     int       `json:"accounts"`
	Transactions int       `json:"transactions"`
	Goals        int       `json:"goals"`
}

// DevTokenRequest is the body of POST /dev/token
type DevTokenRequest struct {
	OwnerID string `json:"owner_id" validate:"omitempty,uuid"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// DevTokenResponse carries a locally signed access token
type DevTokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	OwnerID     uuid.UUID `json:"owner_id"`
}
