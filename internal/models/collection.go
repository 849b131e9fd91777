package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Collection names one of the owner-scoped domain collections
type Collection string

const (
	CollectionAccounts     Collection = "accounts"
	CollectionTransactions Collection = "transactions"
	CollectionGoals        Collection = "goals"
)

var ErrUnknownCollection = errors.New("unknown collection")

// AllCollections returns every collection in load order
func AllCollections() []Collection {
	return []Collection{CollectionAccounts, CollectionTransactions, CollectionGoals}
}

// ParseCollection converts a path parameter into a Collection
func ParseCollection(name string) (Collection, error) {
	switch Collection(name) {
	case CollectionAccounts, CollectionTransactions, CollectionGoals:
		return Collection(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
}

// Entity is implemented by every record that lives in a collection
type Entity interface {
	EntityID() uuid.UUID
	SetOwner(ownerID uuid.UUID)
	Validate() error
}

func (a *Account) EntityID() uuid.UUID        { return a.ID }
func (a *Account) SetOwner(ownerID uuid.UUID) { a.OwnerID = ownerID }

func (t *Transaction) EntityID() uuid.UUID        { return t.ID }
func (t *Transaction) SetOwner(ownerID uuid.UUID) { t.OwnerID = ownerID }

func (g *Goal) EntityID() uuid.UUID        { return g.ID }
func (g *Goal) SetOwner(ownerID uuid.UUID) { g.OwnerID = ownerID }
