package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driven/gateway"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driven/ooxml"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aidoc-cli/internal/core/services"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// application owns the resources opened by bootstrap.
type application struct {
	closers []io.Closer
}

// bootstrap wires the adapters and services for one invocation.
func (a *application) bootstrap(opts cli.Options) (*cli.Services, error) {
	dir := opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = file.DefaultDir(); err != nil {
			return nil, err
		}
	}

	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if opts.ServerURL != "" {
		settings.Server.URL = opts.ServerURL
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if opts.Interactive {
		logPath := settings.Log.File
		if logPath == "" {
			logPath = filepath.Join(dir, "aidoc.log")
		}
		closer, err := logger.UseFile(logPath)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		a.closers = append(a.closers, closer)
	}

	store, err := a.sessionStore(dir, settings.Session.Backend)
	if err != nil {
		return nil, err
	}
	sessionService := services.NewSessionService(store)

	gw, err := gateway.New(gateway.Config{
		BaseURL:             settings.Server.URL,
		Timeout:             settings.Server.Timeout(),
		RateLimit:           settings.Server.RateLimit,
		Burst:               settings.Server.Burst,
		ClearOnUnauthorized: settings.Session.ClearOnUnauthorized,
		UserAgent:           "aidoc/" + version,
	}, sessionService)
	if err != nil {
		return nil, err
	}

	sink, err := file.NewDownloadSink(settings.Export.Dir)
	if err != nil {
		return nil, fmt.Errorf("preparing export directory: %w", err)
	}

	logger.Debug("Using backend %s (session: %s)", gw.BaseURL(), settings.Session.Backend)

	return &cli.Services{
		Session:  sessionService,
		Auth:     services.NewAuthService(gw, sessionService),
		Projects: services.NewProjectService(gw),
		Sections: services.NewSectionService(gw),
		Export:   services.NewExportService(gw, sink).WithInspector(ooxml.New()),
		Refiner:  services.NewRefineService(gw),
		Settings: settingsService,
	}, nil
}

// sessionStore opens the configured session backend.
func (a *application) sessionStore(dir string, backend domain.SessionBackend) (driven.SessionStore, error) {
	if backend == domain.SessionBackendSQLite {
		db, err := sqlite.NewStore(filepath.Join(dir, "data"))
		if err != nil {
			return nil, fmt.Errorf("opening session database: %w", err)
		}
		a.closers = append(a.closers, db)
		return db.SessionStore(), nil
	}

	store, err := file.NewSessionStore(dir)
	if err != nil {
		return nil, fmt.Errorf("opening session file: %w", err)
	}
	a.closers = append(a.closers, store)
	return store, nil
}

// close releases resources in reverse order of opening.
func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			logger.Warn("close: %v", err)
		}
	}
	a.closers = nil
}
