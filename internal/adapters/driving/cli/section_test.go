package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionRefineCmd(t *testing.T) {
	t.Run("refines without re-fetch", func(t *testing.T) {
		ts := setupTestServices(t, "tok")

		out, err := execute(t, "", "section", "refine", "71", "--prompt", "expand")

		require.NoError(t, err)
		assert.Equal(t, "expand", ts.sections.refined[71])
		assert.Contains(t, out, "Section 71 refined.")
		assert.NotContains(t, out, "[71]")
	})

	t.Run("prints the refreshed section", func(t *testing.T) {
		setupTestServices(t, "tok")

		out, err := execute(t, "", "section", "refine", "72", "--prompt", "shorter", "--project", "7")

		require.NoError(t, err)
		assert.Contains(t, out, "[72] Conclusion")
	})

	t.Run("failure", func(t *testing.T) {
		ts := setupTestServices(t, "tok")
		ts.sections.err = errors.New("502")

		_, err := execute(t, "", "section", "refine", "72", "--prompt", "shorter", "--project", "7")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to refine section 72")
	})

	t.Run("re-fetch failure keeps success", func(t *testing.T) {
		ts := setupTestServices(t, "tok")
		ts.projects.getErr = errors.New("timeout")

		out, err := execute(t, "", "section", "refine", "72", "--prompt", "shorter", "--project", "7")

		require.NoError(t, err)
		assert.Contains(t, out, "Could not reload project 7")
	})
}

func TestSectionFeedbackCmd(t *testing.T) {
	t.Run("like", func(t *testing.T) {
		ts := setupTestServices(t, "tok")

		out, err := execute(t, "", "section", "feedback", "70", "--like")

		require.NoError(t, err)
		assert.Contains(t, out, "Feedback recorded.")
		assert.True(t, ts.sections.feedback[70])
	})

	t.Run("dislike", func(t *testing.T) {
		ts := setupTestServices(t, "tok")

		_, err := execute(t, "", "section", "feedback", "70", "--dislike")

		require.NoError(t, err)
		liked, ok := ts.sections.feedback[70]
		assert.True(t, ok)
		assert.False(t, liked)
	})

	t.Run("requires a choice", func(t *testing.T) {
		ts := setupTestServices(t, "tok")

		_, err := execute(t, "", "section", "feedback", "70")

		require.Error(t, err)
		assert.Empty(t, ts.sections.feedback)
	})
}

func TestSectionCommentCmd(t *testing.T) {
	ts := setupTestServices(t, "tok")

	out, err := execute(t, "", "section", "comment", "70", "needs", "a", "source")

	require.NoError(t, err)
	assert.Contains(t, out, "Comment added.")
	assert.Equal(t, "needs a source", ts.sections.comments[70])
}
