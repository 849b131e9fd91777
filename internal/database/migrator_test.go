package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"finance-dashboard/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 50 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func seedRunner(t *testing.T, seeds string) (*MigrationRunner, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      seeds,
		seedEnabled:    true,
	}, mock
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
	assert.False(t, runner.seedEnabled)
}

func TestNewMigrationRunnerFromConfig(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunnerFromConfig(db, &config.DatabaseConfig{
		MigrationsPath: "custom/migrations",
		SeedDatabase:   true,
	})

	assert.Equal(t, "custom/migrations", runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
	assert.True(t, runner.seedEnabled)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	fastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	fastRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestWaitForDatabase_ContextCancelled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	fastRetries(t, 5)
	retryInterval = time.Hour

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		migrationsPath: "/nonexistent/path/to/migrations",
		seedsPath:      seedsPath,
	}

	assert.NoError(t, runner.RunMigrations())
}

func TestLoadSeeds_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)
	assert.NoError(t, runner.LoadSeeds())
}

func TestLoadSeeds_DirectoryNotFound(t *testing.T) {
	runner, _ := seedRunner(t, "/nonexistent/seeds/path")
	assert.NoError(t, runner.LoadSeeds())
}

func TestLoadSeeds_NoSeedFiles(t *testing.T) {
	runner, _ := seedRunner(t, t.TempDir())
	assert.NoError(t, runner.LoadSeeds())
}

func TestLoadSeeds_SuccessfulExecution(t *testing.T) {
	dir := t.TempDir()
	seedContent := `
INSERT INTO profiles (id, email, full_name, base_currency, created_at, updated_at)
VALUES ('a0000000-0000-4000-8000-000000000001', 'demo@example.com', 'Demo Owner', 'USD', NOW(), NOW())
ON CONFLICT (id) DO NOTHING;
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_demo_profile.sql"), []byte(seedContent), 0644))

	runner, mock := seedRunner(t, dir)
	mock.ExpectExec("INSERT INTO profiles").WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ExecutionFailureIsContinued(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_bad.sql"), []byte("INSERT INTO nonexistent_table VALUES (1);"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002_good.sql"), []byte("INSERT INTO goals VALUES ('test');"), 0644))

	runner, mock := seedRunner(t, dir)
	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO goals").WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "001_invalid.sql"), 0755))

	runner, _ := seedRunner(t, dir)
	err := runner.LoadSeeds()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = RunMigrationsIfEnabled(context.Background(), db, &config.DatabaseConfig{AutoMigrate: false})
	assert.NoError(t, err)
}

func TestRunMigrationsIfEnabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	fastRetries(t, 2)
	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = RunMigrationsIfEnabled(context.Background(), db, &config.DatabaseConfig{AutoMigrate: true})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		migrationsPath: "/nonexistent/migrations",
		seedsPath:      seedsPath,
	}

	_, _, err = runner.GetMigrationStatus()

	assert.ErrorIs(t, err, ErrMigrationsDirNotFound)
}
