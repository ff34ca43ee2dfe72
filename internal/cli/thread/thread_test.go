package thread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	climain "github.com/thenoetrevino/campfire/internal/cli"
	"github.com/thenoetrevino/campfire/internal/models"
	"github.com/thenoetrevino/campfire/internal/testutil"
	"github.com/thenoetrevino/campfire/internal/testutil/cli"
)

func TestListCmd(t *testing.T) {
	app, _ := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n3\n", output)

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "[2] Launch date")
	assert.Contains(t, output, "Alex Johnson · 0 replies")
}

func TestShowCmd(t *testing.T) {
	app, _ := cli.SetupCLITest(t)

	t.Run("renders messages", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"2"})
		require.NoError(t, err)
		assert.Contains(t, output, "Launch date")
		assert.Contains(t, output, "Alex Johnson")
		assert.Contains(t, output, "buffer week")
	})

	t.Run("json", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"1", "--json"})
		require.NoError(t, err)

		payload := testutil.ParseJSON(t, output)["thread"].(map[string]interface{})
		msgs := payload["messages"].([]interface{})
		require.Len(t, msgs, 1)
		assert.Equal(t, true, msgs[0].(map[string]interface{})["is_initial"])
	})

	t.Run("unknown thread", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"40"})
		assert.Equal(t, climain.ExitNotFound, climain.ExitCodeFor(err))
	})
}

func TestNewCmd(t *testing.T) {
	app, _ := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, NewCmd(), []string{"Retro", "-m", "What went well?", "--json"})
	require.NoError(t, err)

	thread := testutil.ParseJSON(t, output)["thread"].(map[string]interface{})
	assert.Equal(t, float64(4), thread["id"])
	assert.Equal(t, models.DefaultAuthor, thread["author"])
	assert.Equal(t, float64(0), thread["reply_count"])

	_, err = cli.ExecuteCLICommand(t, app, NewCmd(), []string{"Empty"})
	assert.Equal(t, climain.ExitValidation, climain.ExitCodeFor(err))
}

func TestReplyCmd(t *testing.T) {
	app, _ := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, ReplyCmd(), []string{"3", "Thanks", "for", "the", "notes"})
	require.NoError(t, err)

	thread, err := app.MessageService.GetThread(t.Context(), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, thread.ReplyCount)
	assert.True(t, thread.LastActivity.Equal(testutil.FixedNow))

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "3\n2\n1\n", output)

	_, err = cli.ExecuteCLICommand(t, app, ReplyCmd(), []string{"3", "  "})
	assert.Equal(t, climain.ExitValidation, climain.ExitCodeFor(err))

	_, err = cli.ExecuteCLICommand(t, app, ReplyCmd(), []string{"9", "hello"})
	assert.Equal(t, climain.ExitNotFound, climain.ExitCodeFor(err))
}
