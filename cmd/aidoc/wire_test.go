package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

func TestBootstrap_FileBackend(t *testing.T) {
	dir := t.TempDir()
	app := &application{}
	t.Cleanup(app.close)

	svc, err := app.bootstrap(cli.Options{ConfigDir: dir})

	require.NoError(t, err)
	require.NotNil(t, svc.Session)
	assert.False(t, svc.Session.IsAuthenticated())
	assert.NotNil(t, svc.Auth)
	assert.NotNil(t, svc.Projects)
	assert.NotNil(t, svc.Sections)
	assert.NotNil(t, svc.Export)
	assert.NotNil(t, svc.Refiner)

	require.NoError(t, svc.Session.Set("tok"))
	assert.Len(t, app.closers, 1)
}

func TestBootstrap_SessionSurvivesRestart(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()

			first := &application{}
			svc, err := first.bootstrap(cli.Options{ConfigDir: dir})
			require.NoError(t, err)
			require.NoError(t, svc.Settings.Set("session.backend", backend))
			first.close()

			second := &application{}
			svc, err = second.bootstrap(cli.Options{ConfigDir: dir})
			require.NoError(t, err)
			require.NoError(t, svc.Session.Set("tok"))
			second.close()

			third := &application{}
			t.Cleanup(third.close)
			svc, err = third.bootstrap(cli.Options{ConfigDir: dir})
			require.NoError(t, err)
			token, ok := svc.Session.Current()
			assert.True(t, ok)
			assert.Equal(t, "tok", token)
		})
	}
}

func TestBootstrap_ServerOverrideIsNotSaved(t *testing.T) {
	dir := t.TempDir()
	app := &application{}
	t.Cleanup(app.close)

	svc, err := app.bootstrap(cli.Options{ConfigDir: dir, ServerURL: "http://10.0.0.2:9000"})

	require.NoError(t, err)
	value, err := svc.Settings.Value("server.url")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServerURL, value)
}

func TestBootstrap_RejectsBadServer(t *testing.T) {
	app := &application{}
	t.Cleanup(app.close)

	_, err := app.bootstrap(cli.Options{ConfigDir: t.TempDir(), ServerURL: "not a url"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBootstrap_InteractiveLogsToFile(t *testing.T) {
	dir := t.TempDir()
	app := &application{}

	_, err := app.bootstrap(cli.Options{ConfigDir: dir, Interactive: true})
	require.NoError(t, err)
	logger.Error("probe")
	app.close()

	data, err := os.ReadFile(filepath.Join(dir, "aidoc.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe")
}
