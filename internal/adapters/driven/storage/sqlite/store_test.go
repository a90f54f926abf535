package sqlite

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "aidoc.db"), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStore_RecordsMigrations(t *testing.T) {
	store := setupTestStore(t)

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()
	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_RollsBackFailedScript(t *testing.T) {
	store := setupTestStore(t)
	broken := fstest.MapFS{
		"002_broken.up.sql": {Data: []byte("CREATE TABLE broken (; nonsense")},
	}

	err := store.migrate(broken)

	require.Error(t, err)
	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
}

// ==================== Session Store Tests ====================

func TestSessionStore_Empty(t *testing.T) {
	sessions := setupTestStore(t).SessionStore()

	_, err := sessions.LoadToken()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_SaveReplaceDelete(t *testing.T) {
	sessions := setupTestStore(t).SessionStore()

	require.NoError(t, sessions.SaveToken("first"))
	require.NoError(t, sessions.SaveToken("second"))

	token, err := sessions.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, sessions.DeleteToken())
	_, err = sessions.LoadToken()
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, sessions.DeleteToken())
}

func TestSessionStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SessionStore().SaveToken("durable"))
	require.NoError(t, store.SessionStore().Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.SessionStore().LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "durable", token)
}
