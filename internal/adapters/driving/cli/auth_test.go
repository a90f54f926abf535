package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

func TestLoginCmd(t *testing.T) {
	t.Run("stores the session", func(t *testing.T) {
		ts := setupTestServices(t, "")

		out, err := execute(t, "secret\n", "login", "ada@example.com")

		require.NoError(t, err)
		assert.Contains(t, out, "Logged in as ada@example.com")
		assert.Equal(t, "secret", ts.auth.password)
		assert.True(t, ts.session.IsAuthenticated())
	})

	t.Run("prompts for the email", func(t *testing.T) {
		ts := setupTestServices(t, "")

		out, err := execute(t, "ada@example.com\nsecret\n", "login")

		require.NoError(t, err)
		assert.Contains(t, out, "Email: ")
		assert.Equal(t, "ada@example.com", ts.auth.email)
	})

	t.Run("blank password is rejected before any request", func(t *testing.T) {
		ts := setupTestServices(t, "")

		_, err := execute(t, "\n", "login", "ada@example.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email and password are required")
		assert.Empty(t, ts.auth.email)
	})

	t.Run("missing token is reported", func(t *testing.T) {
		ts := setupTestServices(t, "")
		ts.auth.loginErr = fmt.Errorf("login: %w", domain.ErrMissingToken)

		_, err := execute(t, "secret\n", "login", "ada@example.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid token received")
		assert.False(t, ts.session.IsAuthenticated())
	})

	t.Run("rejected credentials", func(t *testing.T) {
		ts := setupTestServices(t, "")
		ts.auth.loginErr = errors.New("401")

		_, err := execute(t, "wrong\n", "login", "ada@example.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "login failed")
	})
}

func TestRegisterCmd(t *testing.T) {
	t.Run("does not sign in", func(t *testing.T) {
		ts := setupTestServices(t, "")

		out, err := execute(t, "secret\n", "register", "ada@example.com")

		require.NoError(t, err)
		assert.Contains(t, out, "Account created. Run 'aidoc login' to sign in.")
		assert.False(t, ts.session.IsAuthenticated())
	})

	t.Run("failure", func(t *testing.T) {
		ts := setupTestServices(t, "")
		ts.auth.registerErr = errors.New("400")

		_, err := execute(t, "secret\n", "register", "ada@example.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "registration failed")
	})
}

func TestLogoutCmd(t *testing.T) {
	ts := setupTestServices(t, "tok")

	out, err := execute(t, "", "logout")

	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")
	assert.False(t, ts.session.IsAuthenticated())
}

func TestStatusCmd(t *testing.T) {
	t.Run("signed in", func(t *testing.T) {
		setupTestServices(t, "tok")

		out, err := execute(t, "", "status")

		require.NoError(t, err)
		assert.Contains(t, out, "Server:  "+domain.DefaultServerURL)
		assert.Contains(t, out, "Session: logged in")
	})

	t.Run("signed out", func(t *testing.T) {
		setupTestServices(t, "")

		out, err := execute(t, "", "status")

		require.NoError(t, err)
		assert.Contains(t, out, "Session: not logged in")
	})
}
