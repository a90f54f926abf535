// Package mcp provides an MCP (Model Context Protocol) server adapter for aidoc.
// It lets AI assistants list projects, refine sections and export documents
// through the same services as the terminal client.
package mcp

import "errors"

// ErrMissingProjectService is returned when the project service is not provided.
var ErrMissingProjectService = errors.New("mcp: project service is required")

// ErrNotLoggedIn is returned by every tool and resource while no session is stored.
var ErrNotLoggedIn = errors.New("not logged in (run 'aidoc login')")
