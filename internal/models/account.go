package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking   = "checking"
	AccountTypeSavings    = "savings"
	AccountTypeCredit     = "credit"
	AccountTypeInvestment = "investment"

	DefaultCurrency = "USD"
)

var (
	ErrInvalidAccountType    = errors.New("invalid account type")
	ErrAccountNameRequired   = errors.New("account name is required")
	ErrOwnerRequired         = errors.New("owner ID is required")
	ErrInvalidCurrency       = errors.New("currency must be a 3-letter ISO-4217 code")
	ErrCreditLimitNotAllowed = errors.New("credit limit is only allowed on credit accounts")
	ErrInvalidCreditLimit    = errors.New("credit limit cannot be negative")
)

// Account is a financial account owned by exactly one owner
type Account struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string           `gorm:"type:varchar(100);not null" json:"name"`
	Type        string           `gorm:"type:varchar(20);not null" json:"type"`
	Balance     decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Currency    string           `gorm:"type:varchar(3);not null" json:"currency"`
	BankName    string           `gorm:"type:varchar(100)" json:"bank_name"`
	IsActive    bool             `gorm:"not null" json:"is_active"`
	CreditLimit *decimal.Decimal `gorm:"type:decimal(15,2)" json:"credit_limit,omitempty"`
	CreatedAt   time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.OwnerID == uuid.Nil {
		return ErrOwnerRequired
	}

	if strings.TrimSpace(a.Name) == "" {
		return ErrAccountNameRequired
	}

	if !IsValidAccountType(a.Type) {
		return ErrInvalidAccountType
	}

	if !IsValidCurrency(a.Currency) {
		return ErrInvalidCurrency
	}

	if a.CreditLimit != nil {
		if a.Type != AccountTypeCredit {
			return ErrCreditLimitNotAllowed
		}
		if a.CreditLimit.IsNegative() {
			return ErrInvalidCreditLimit
		}
	}

	return nil
}

// IsLiability reports whether the balance is money owed rather than held
func (a *Account) IsLiability() bool {
	return a.Type == AccountTypeCredit
}

// AvailableCredit returns the unused part of the credit limit, zero for non-credit accounts
func (a *Account) AvailableCredit() decimal.Decimal {
	if a.CreditLimit == nil || !a.IsLiability() {
		return decimal.Zero
	}
	available := a.CreditLimit.Sub(a.Balance.Abs())
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit, AccountTypeInvestment:
		return true
	default:
		return false
	}
}

// IsValidCurrency checks for a 3-letter upper-case currency code
func IsValidCurrency(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
