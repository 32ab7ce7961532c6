package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"0002_create_journal_entries.sql",
		"0001_create_health_profiles.sql",
		"0001_create_health_profiles_rollback.sql",
		"README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "9999_dir.sql"), 0o755))

	files, err := migrationFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_create_health_profiles.sql", "0002_create_journal_entries.sql"}, files)
}

func TestMigrationFilesMatchRepository(t *testing.T) {
	files, err := migrationFiles(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		rollback := filepath.Join("..", "..", "migrations", f[:len(f)-len(".sql")]+"_rollback.sql")
		_, err := os.Stat(rollback)
		assert.NoError(t, err, "missing rollback for %s", f)
	}
}
