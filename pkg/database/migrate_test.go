package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilesArePaired(t *testing.T) {
	names, err := MigrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, n := range names {
		switch {
		case strings.HasSuffix(n, ".up.sql"):
			ups[strings.TrimSuffix(n, ".up.sql")] = true
		case strings.HasSuffix(n, ".down.sql"):
			downs[strings.TrimSuffix(n, ".down.sql")] = true
		default:
			t.Errorf("unexpected file in migrations: %s", n)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestMigrationsCreateCoreTables(t *testing.T) {
	var all strings.Builder
	names, err := MigrationFiles()
	require.NoError(t, err)
	for _, n := range names {
		if !strings.HasSuffix(n, ".up.sql") {
			continue
		}
		b, err := migrationsFS.ReadFile("migrations/" + n)
		require.NoError(t, err)
		all.Write(b)
	}

	for _, table := range []string{"users", "companies", "recruiters", "job_seekers", "listings", "applications", "recipes"} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.Contains(t, all.String(), "UNIQUE (listing_id, job_seeker_id)")
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, int32(25), orDefault(int32(0), 25))
	assert.Equal(t, int32(3), orDefault(int32(3), 25))
}
