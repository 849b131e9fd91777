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
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidAmount            = errors.New("transaction amount must be positive")
	ErrAccountRefRequired       = errors.New("account reference is required")
	ErrDescriptionRequired      = errors.New("transaction description is required")
	ErrTransactionDateRequired  = errors.New("transaction date is required")
)

// Transaction is a single debit or credit against an account.
// AccountID is a logical reference only; nothing enforces that the account exists.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Type        string          `gorm:"type:varchar(10);not null" json:"type"`
	Category    string          `gorm:"type:varchar(50)" json:"category"`
	Subcategory string          `gorm:"type:varchar(50)" json:"subcategory"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency    string          `gorm:"type:varchar(3);not null" json:"currency"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `gorm:"type:text" json:"description"`
	Merchant    string          `gorm:"type:varchar(255)" json:"merchant"`
	Recurring   bool            `gorm:"not null" json:"recurring"`
	Status      string          `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Status == "" {
		t.Status = TransactionStatusCompleted
	}

	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.OwnerID == uuid.Nil {
		return ErrOwnerRequired
	}

	if t.AccountID == uuid.Nil {
		return ErrAccountRefRequired
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if !IsValidCurrency(t.Currency) {
		return ErrInvalidCurrency
	}

	if t.Date.IsZero() {
		return ErrTransactionDateRequired
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionRequired
	}

	return nil
}

// IsCompleted returns true if the transaction is completed
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// SignedAmount returns the amount as seen by the account balance: negative for debits
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeCredit, TransactionTypeDebit:
		return true
	default:
		return false
	}
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusCancelled:
		return true
	default:
		return false
	}
}
