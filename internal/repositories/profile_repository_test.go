package repositories

import (
	"context"
	"testing"

	"finance-dashboard/internal/database"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ProfileRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ProfileRepositoryInterface
	ctx  context.Context
}

func (s *ProfileRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewProfileRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *ProfileRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestProfileRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositorySuite))
}

func (s *ProfileRepositorySuite) TestGetByID() {
	created := database.CreateTestProfile(s.T(), s.db, "owner@example.com")

	profile, err := s.repo.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Equal("owner@example.com", profile.Email)
	s.Equal(models.DefaultCurrency, profile.BaseCurrency)

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrProfileNotFound)
}

func (s *ProfileRepositorySuite) TestUpsert_InsertsThenUpdates() {
	id := uuid.New()

	s.NoError(s.repo.Upsert(s.ctx, &models.Profile{ID: id, Email: "first@example.com", BaseCurrency: "USD"}))
	s.NoError(s.repo.Upsert(s.ctx, &models.Profile{ID: id, Email: "second@example.com", FullName: "Second", BaseCurrency: "EUR"}))

	profile, err := s.repo.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("second@example.com", profile.Email)
	s.Equal("Second", profile.FullName)
	s.Equal("EUR", profile.BaseCurrency)
}

func (s *ProfileRepositorySuite) TestUpsert_RejectsInvalidEmail() {
	err := s.repo.Upsert(s.ctx, &models.Profile{ID: uuid.New(), Email: "not-an-email"})
	s.ErrorIs(err, models.ErrInvalidEmail)
}
