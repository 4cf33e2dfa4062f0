package database

import (
	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_SQLiteMigratesUsers(t *testing.T) {
	db, err := InitDB(&config.DatabaseConfig{
		Driver:   "sqlite",
		URL:      "file:initdb_test?mode=memory&cache=shared",
		LogLevel: "silent",
	}, true)
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&model.User{}))
	assert.True(t, db.Migrator().HasColumn(&model.User{}, "createdAt"))
}

func TestOpen_RequiresURL(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "postgres"})
	require.Error(t, err)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle", URL: "x"})
	require.Error(t, err)
}
