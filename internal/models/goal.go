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
	GoalPriorityHigh   = "High"
	GoalPriorityMedium = "Medium"
	GoalPriorityLow    = "Low"

	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusArchived  = "archived"
)

var (
	ErrGoalNameRequired      = errors.New("goal name is required")
	ErrInvalidTargetAmount   = errors.New("target amount must be positive")
	ErrInvalidCurrentAmount  = errors.New("current amount cannot be negative")
	ErrInvalidGoalPriority   = errors.New("invalid goal priority")
	ErrInvalidGoalStatus     = errors.New("invalid goal status")
	ErrGoalTargetDateMissing = errors.New("goal target date is required")
)

// Goal is a savings goal. Status is a partition set by the user, never evaluated automatically.
type Goal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	TargetDate    time.Time       `gorm:"not null;index" json:"target_date"`
	Category      string          `gorm:"type:varchar(50)" json:"category"`
	Priority      string          `gorm:"type:varchar(10);not null" json:"priority"`
	Status        string          `gorm:"type:varchar(20);not null" json:"status"`
	CreatedDate   time.Time       `gorm:"not null" json:"created_date"`

	// completed goals
	CompletedDate *time.Time `json:"completed_date,omitempty"`

	// archived goals
	ArchivedDate  *time.Time `json:"archived_date,omitempty"`
	ArchiveReason string     `gorm:"type:varchar(255)" json:"archive_reason,omitempty"`

	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Goal
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	if g.Status == "" {
		g.Status = GoalStatusActive
	}

	if g.Priority == "" {
		g.Priority = GoalPriorityMedium
	}

	now := time.Now()
	if g.CreatedDate.IsZero() {
		g.CreatedDate = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

// Validate validates the goal fields
func (g *Goal) Validate() error {
	if g.OwnerID == uuid.Nil {
		return ErrOwnerRequired
	}

	if strings.TrimSpace(g.Name) == "" {
		return ErrGoalNameRequired
	}

	if !g.TargetAmount.IsPositive() {
		return ErrInvalidTargetAmount
	}

	if g.CurrentAmount.IsNegative() {
		return ErrInvalidCurrentAmount
	}

	if g.TargetDate.IsZero() {
		return ErrGoalTargetDateMissing
	}

	if !IsValidGoalPriority(g.Priority) {
		return ErrInvalidGoalPriority
	}

	if !IsValidGoalStatus(g.Status) {
		return ErrInvalidGoalStatus
	}

	return nil
}

// Progress returns current/target as a ratio capped at 1
func (g *Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	ratio := g.CurrentAmount.Div(g.TargetAmount)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return ratio.Round(4)
}

// Remaining returns how much is still missing to reach the target
func (g *Goal) Remaining() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// TableName returns the table name for Goal
func (g *Goal) TableName() string {
	return "goals"
}

// IsValidGoalPriority checks if the goal priority is valid
func IsValidGoalPriority(priority string) bool {
	switch priority {
	case GoalPriorityHigh, GoalPriorityMedium, GoalPriorityLow:
		return true
	default:
		return false
	}
}

// IsValidGoalStatus checks if the goal status is valid
func IsValidGoalStatus(status string) bool {
	switch status {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusArchived:
		return true
	default:
		return false
	}
}
