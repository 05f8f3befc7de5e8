package db

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOptions_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListOptions
		want ListOptions
	}{
		{"defaults", ListOptions{}, ListOptions{Limit: DefaultListLimit}},
		{"clamped", ListOptions{Limit: 1000, Offset: -5}, ListOptions{Limit: MaxListLimit}},
		{"kept", ListOptions{Limit: 5, Offset: 10, Role: "devops engineer"}, ListOptions{Limit: 5, Offset: 10, Role: "devops engineer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.normalize())
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "000001_create_analyses.up.sql")
	assert.Contains(t, names, "000001_create_analyses.down.sql")

	up, err := fs.ReadFile(migrationFiles, "migrations/000001_create_analyses.up.sql")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(up), "CREATE TABLE IF NOT EXISTS analyses"))
}

func TestRequiresDatabaseURL(t *testing.T) {
	_, err := Connect(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoDatabaseURL)

	_, err = NewMigrator("")
	assert.ErrorIs(t, err, ErrNoDatabaseURL)
}
