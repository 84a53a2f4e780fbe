package database

import (
	"errors"
	"testing"
	"time"

	"finance-tracker/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortenRetries(t *testing.T, retries int) {
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

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, "")
	assert.Equal(t, db, runner.db)
	assert.Equal(t, defaultMigrationsPath, runner.migrationsPath)

	custom := NewMigrationRunner(db, "/srv/migrations")
	assert.Equal(t, "/srv/migrations", custom.migrationsPath)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	err = NewMigrationRunner(db, "").WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	shortenRetries(t, 3)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	err = NewMigrationRunner(db, "").WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	shortenRetries(t, 2)
	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = NewMigrationRunner(db, "").WaitForDatabase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = NewMigrationRunner(db, "/nonexistent/path/to/migrations").RunMigrations()

	assert.NoError(t, err)
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, _, err = NewMigrationRunner(db, "/nonexistent/migrations").GetMigrationStatus()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	err = RunMigrationsIfEnabled(db, &config.DatabaseConfig{AutoMigrate: false})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "no ping is issued when disabled")
}

func TestRunMigrationsIfEnabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	shortenRetries(t, 2)
	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = RunMigrationsIfEnabled(db, &config.DatabaseConfig{AutoMigrate: true, MigrationsPath: "/nonexistent"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestRunMigrationsIfEnabled_MissingDirectoryIsSkipped(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	err = RunMigrationsIfEnabled(db, &config.DatabaseConfig{AutoMigrate: true, MigrationsPath: t.TempDir() + "/missing"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
