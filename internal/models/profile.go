package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ErrInvalidEmail = errors.New("invalid email format")
)

// Profile is the owner's profile row. Its ID is the subject issued by the identity provider.
type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	FullName     string    `gorm:"type:varchar(200)" json:"full_name,omitempty"`
	BaseCurrency string    `gorm:"type:varchar(3);not null" json:"base_currency"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// DefaultProfile is used when an owner has no profile row yet
func DefaultProfile(ownerID uuid.UUID) Profile {
	return Profile{
		ID:           ownerID,
		BaseCurrency: DefaultCurrency,
	}
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.BaseCurrency == "" {
		p.BaseCurrency = DefaultCurrency
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Profile) Validate() error {
	if p.ID == uuid.Nil {
		return ErrOwnerRequired
	}

	if p.Email != "" && !emailRegex.MatchString(p.Email) {
		return ErrInvalidEmail
	}

	if !IsValidCurrency(p.BaseCurrency) {
		return ErrInvalidCurrency
	}

	return nil
}

func (p *Profile) TableName() string {
	return "profiles"
}
