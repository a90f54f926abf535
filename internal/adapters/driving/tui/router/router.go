// Package router maps route paths to TUI views and applies the session guard.
package router

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/messages"
)

// Route paths.
const (
	PathRoot     = "/"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathProjects = "/projects"
	PathRefine   = "/refine"
	PathSettings = "/settings"
)

// Route is a resolved route.
type Route struct {
	Path      string
	View      messages.ViewType
	ProjectID int64 // set for ViewProjectDetail only
}

// Protected reports whether the route needs a session. Settings stay
// reachable signed out so the server address can be fixed before login.
func (r Route) Protected() bool {
	switch r.View {
	case messages.ViewLogin, messages.ViewRegister, messages.ViewSettings:
		return false
	}
	return true
}

// ProjectPath returns the detail route path for a project.
func ProjectPath(id int64) string {
	return fmt.Sprintf("%s/%d", PathProjects, id)
}

// Parse maps a path to its route. The root path and unknown paths
// do not parse; Resolve handles them.
func Parse(path string) (Route, bool) {
	path = normalise(path)
	switch path {
	case PathLogin:
		return Route{Path: path, View: messages.ViewLogin}, true
	case PathRegister:
		return Route{Path: path, View: messages.ViewRegister}, true
	case PathProjects:
		return Route{Path: path, View: messages.ViewProjects}, true
	case PathRefine:
		return Route{Path: path, View: messages.ViewRefine}, true
	case PathSettings:
		return Route{Path: path, View: messages.ViewSettings}, true
	}

	rest, ok := strings.CutPrefix(path, PathProjects+"/")
	if !ok || strings.Contains(rest, "/") {
		return Route{}, false
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return Route{}, false
	}
	return Route{Path: ProjectPath(id), View: messages.ViewProjectDetail, ProjectID: id}, true
}

// Resolve returns the route to display for path given session presence.
// The root redirects to the project list or login; protected routes
// redirect to login without a session; unknown paths behave like the root.
func Resolve(path string, authenticated bool) Route {
	route, ok := Parse(path)
	if !ok {
		return home(authenticated)
	}
	if route.Protected() && !authenticated {
		return home(false)
	}
	return route
}

func home(authenticated bool) Route {
	if authenticated {
		return Route{Path: PathProjects, View: messages.ViewProjects}
	}
	return Route{Path: PathLogin, View: messages.ViewLogin}
}

func normalise(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return PathRoot
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = PathRoot
		}
	}
	return path
}
