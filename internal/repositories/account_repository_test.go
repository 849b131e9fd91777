package repositories

import (
	"context"
	"testing"

	"finance-dashboard/internal/database"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    AccountRepositoryInterface
	ctx     context.Context
	ownerID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.ctx = context.Background()
	s.ownerID = database.CreateTestProfile(s.T(), s.db, "owner@example.com").ID
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) newAccount(ownerID uuid.UUID, name, accountType string) *models.Account {
	return &models.Account{
		OwnerID:  ownerID,
		Name:     name,
		Type:     accountType,
		Balance:  decimal.NewFromFloat(1000.00),
		Currency: "USD",
		IsActive: true,
	}
}

func (s *AccountRepositorySuite) TestCreate() {
	account := s.newAccount(s.ownerID, "Everyday Checking", models.AccountTypeChecking)

	err := s.repo.Create(s.ctx, account)
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.NotZero(account.CreatedAt)
	s.NotZero(account.UpdatedAt)
}

func (s *AccountRepositorySuite) TestCreate_ValidationFailure() {
	account := s.newAccount(s.ownerID, "", models.AccountTypeChecking)

	err := s.repo.Create(s.ctx, account)
	s.ErrorIs(err, models.ErrAccountNameRequired)
}

func (s *AccountRepositorySuite) TestListByOwner_OrderedByNameAndScoped() {
	otherOwner := uuid.New()

	s.Require().NoError(s.repo.Create(s.ctx, s.newAccount(s.ownerID, "Savings", models.AccountTypeSavings)))
	s.Require().NoError(s.repo.Create(s.ctx, s.newAccount(s.ownerID, "Checking", models.AccountTypeChecking)))
	s.Require().NoError(s.repo.Create(s.ctx, s.newAccount(otherOwner, "Another Owner", models.AccountTypeChecking)))

	accounts, err := s.repo.ListByOwner(s.ctx, s.ownerID)
	s.NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal("Checking", accounts[0].Name)
	s.Equal("Savings", accounts[1].Name)
	for _, a := range accounts {
		s.Equal(s.ownerID, a.OwnerID)
	}
}

func (s *AccountRepositorySuite) TestListByOwner_EmptyIsNotNil() {
	accounts, err := s.repo.ListByOwner(s.ctx, uuid.New())
	s.NoError(err)
	s.NotNil(accounts)
	s.Empty(accounts)
}

func (s *AccountRepositorySuite) TestUpdate() {
	account := s.newAccount(s.ownerID, "Checking", models.AccountTypeChecking)
	s.Require().NoError(s.repo.Create(s.ctx, account))

	patch, err := models.NormalizePatch(&models.Account{}, map[string]interface{}{
		"name":    "Bills Checking",
		"balance": "250.40",
	})
	s.Require().NoError(err)

	s.NoError(s.repo.Update(s.ctx, s.ownerID, account.ID, patch))

	accounts, err := s.repo.ListByOwner(s.ctx, s.ownerID)
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal("Bills Checking", accounts[0].Name)
	s.True(accounts[0].Balance.Equal(decimal.NewFromFloat(250.40)))
	s.Equal(models.AccountTypeChecking, accounts[0].Type)
	s.True(accounts[0].IsActive)
}

func (s *AccountRepositorySuite) TestUpdate_OtherOwnerIsNotFound() {
	account := s.newAccount(s.ownerID, "Checking", models.AccountTypeChecking)
	s.Require().NoError(s.repo.Create(s.ctx, account))

	err := s.repo.Update(s.ctx, uuid.New(), account.ID, map[string]interface{}{"name": "Stolen"})
	s.ErrorIs(err, ErrAccountNotFound)

	err = s.repo.Update(s.ctx, s.ownerID, uuid.New(), map[string]interface{}{"name": "Missing"})
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestDelete() {
	account := s.newAccount(s.ownerID, "Checking", models.AccountTypeChecking)
	s.Require().NoError(s.repo.Create(s.ctx, account))

	s.ErrorIs(s.repo.Delete(s.ctx, uuid.New(), account.ID), ErrAccountNotFound)
	s.NoError(s.repo.Delete(s.ctx, s.ownerID, account.ID))
	s.ErrorIs(s.repo.Delete(s.ctx, s.ownerID, account.ID), ErrAccountNotFound)

	count, err := s.repo.CountByOwner(s.ctx, s.ownerID)
	s.NoError(err)
	s.Zero(count)
}

func (s *AccountRepositorySuite) TestCountByOwner() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newAccount(s.ownerID, "Checking", models.AccountTypeChecking)))
	s.Require().NoError(s.repo.Create(s.ctx, s.newAccount(s.ownerID, "Savings", models.AccountTypeSavings)))

	count, err := s.repo.CountByOwner(s.ctx, s.ownerID)
	s.NoError(err)
	s.Equal(int64(2), count)
}
