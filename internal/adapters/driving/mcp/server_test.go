package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil project service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingProjectService)
	})

	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		assert.ErrorIs(t, err, ErrMissingProjectService)
		assert.Nil(t, server)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Projects: &mockProjectService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("projects only is valid", func(t *testing.T) {
		ports := &Ports{Projects: &mockProjectService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Session:  &mockSession{token: "t"},
			Projects: &mockProjectService{},
			Sections: newMockSectionService(),
			Export:   &mockExportService{},
			Refiner:  &mockRefiner{},
		}
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_authorised(t *testing.T) {
	t.Run("no session service skips the check", func(t *testing.T) {
		server, err := NewServer(&Ports{Projects: &mockProjectService{}})
		require.NoError(t, err)
		assert.NoError(t, server.authorised())
	})

	t.Run("empty session is rejected", func(t *testing.T) {
		server, err := NewServer(&Ports{Session: &mockSession{}, Projects: &mockProjectService{}})
		require.NoError(t, err)
		assert.ErrorIs(t, server.authorised(), ErrNotLoggedIn)
	})

	t.Run("stored session passes", func(t *testing.T) {
		server, err := NewServer(&Ports{Session: &mockSession{token: "t"}, Projects: &mockProjectService{}})
		require.NoError(t, err)
		assert.NoError(t, server.authorised())
	})
}
