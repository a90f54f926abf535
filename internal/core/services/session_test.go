package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

func TestNewSessionService_RestoresStoredToken(t *testing.T) {
	service := NewSessionService(memory.NewSessionStoreWithToken("tok-1"))

	token, ok := service.Current()
	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)
	assert.True(t, service.IsAuthenticated())
}

func TestNewSessionService_NoStoredToken(t *testing.T) {
	service := NewSessionService(memory.NewSessionStore())

	token, ok := service.Current()
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestSessionService_SetAndClear(t *testing.T) {
	store := memory.NewSessionStore()
	service := NewSessionService(store)

	require.NoError(t, service.Set("tok-2"))
	assert.True(t, service.IsAuthenticated())
	stored, err := store.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", stored)

	require.NoError(t, service.Clear())
	assert.False(t, service.IsAuthenticated())
	_, err = store.LoadToken()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionService_SurvivesRestart(t *testing.T) {
	store := memory.NewSessionStore()
	require.NoError(t, NewSessionService(store).Set("durable"))

	restarted := NewSessionService(store)

	token, ok := restarted.Current()
	assert.True(t, ok)
	assert.Equal(t, "durable", token)
}

func TestSessionService_Set_Blank(t *testing.T) {
	service := NewSessionService(memory.NewSessionStore())

	assert.ErrorIs(t, service.Set("  "), domain.ErrInvalidInput)
	assert.False(t, service.IsAuthenticated())
}

func TestSessionService_Set_StoreFailureKeepsPreviousToken(t *testing.T) {
	service := NewSessionService(&failingSessionStore{token: "old"})

	err := service.Set("new")

	assert.ErrorIs(t, err, errDiskFull)
	token, _ := service.Current()
	assert.Equal(t, "old", token)
}

func TestSessionService_Clear_StoreFailureStillLogsOut(t *testing.T) {
	service := NewSessionService(&failingSessionStore{token: "old"})

	err := service.Clear()

	assert.ErrorIs(t, err, errDiskFull)
	assert.False(t, service.IsAuthenticated())
}

func TestSessionService_NilStore(t *testing.T) {
	service := NewSessionService(nil)

	assert.False(t, service.IsAuthenticated())
	assert.ErrorIs(t, service.Set("tok"), domain.ErrNotImplemented)
	assert.NoError(t, service.Clear())
}
