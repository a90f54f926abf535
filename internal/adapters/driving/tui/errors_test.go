package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingSessionService,
		ErrMissingAuthService,
		ErrMissingProjectService,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingSessionService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingSessionService.Error(), "session service")
}

func TestErrMissingAuthService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingAuthService.Error(), "auth service")
}

func TestErrMissingProjectService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingProjectService.Error(), "project service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
