package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/campfire/internal/models"
	messageservice "github.com/thenoetrevino/campfire/internal/services/message"
	"github.com/thenoetrevino/campfire/internal/testutil"
)

func threadIDs(threads []*models.MessageThread) []int {
	ids := make([]int, 0, len(threads))
	for _, t := range threads {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestMessages_LoadSortsByLastActivity(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	c := NewMessages(a)
	require.NoError(t, c.Load(context.Background()))

	v := c.View()
	require.True(t, v.Loaded)
	assert.Equal(t, []int{2, 1, 3}, threadIDs(v.Threads))
	assert.Nil(t, v.Current)
	assert.Empty(t, v.Messages)
}

func TestMessages_OpenThread(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	c := NewMessages(a)
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	msgs, err := c.OpenThread(ctx, 1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].IsInitial)

	v := c.View()
	require.NotNil(t, v.Current)
	assert.Equal(t, 1, v.Current.ID)
	assert.Len(t, v.Messages, 1)
}

func TestMessages_OpenUnknownThread(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	rec := &Recorder{}
	c := NewMessages(a, WithNotifier(rec))
	require.NoError(t, c.Load(context.Background()))

	_, err := c.OpenThread(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotLoaded)
	assert.Equal(t, "Failed to load messages", lastNotice(t, rec).Message)
}

func TestMessages_ReplyMergesLocally(t *testing.T) {
	t.Parallel()

	a, fake := testutil.NewApp(t)
	rec := &Recorder{}
	c := NewMessages(a, WithNotifier(rec))
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))
	_, err := c.OpenThread(ctx, 3)
	require.NoError(t, err)

	_, err = c.Reply(ctx, 3, "First")
	require.NoError(t, err)
	fake.Advance(time.Minute)
	second, err := c.Reply(ctx, 3, "Second")
	require.NoError(t, err)
	assert.Equal(t, "Reply posted!", lastNotice(t, rec).Message)

	v := c.View()
	assert.Equal(t, []int{3, 2, 1}, threadIDs(v.Threads))
	assert.Equal(t, 2, v.Current.ReplyCount)
	assert.True(t, v.Current.LastActivity.Equal(second.Timestamp))
	require.Len(t, v.Messages, 3)
	assert.Equal(t, "Second", v.Messages[2].Content)
	assert.Equal(t, models.DefaultAuthor, v.Messages[2].Author)

	stored, err := a.MessageService.GetThread(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, v.Current.ReplyCount, stored.ReplyCount)
}

func TestMessages_ReplyToOtherThreadKeepsOpenMessages(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	c := NewMessages(a)
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))
	_, err := c.OpenThread(ctx, 1)
	require.NoError(t, err)

	_, err = c.Reply(ctx, 2, "Elsewhere")
	require.NoError(t, err)

	assert.Len(t, c.View().Messages, 1)
}

func TestMessages_BlankReplyLeavesState(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	rec := &Recorder{}
	c := NewMessages(a, WithNotifier(rec))
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	_, err := c.Reply(ctx, 1, "   ")
	require.ErrorIs(t, err, messageservice.ErrEmptyReply)
	assert.Equal(t, "Failed to post reply", lastNotice(t, rec).Message)
	assert.Equal(t, []int{2, 1, 3}, threadIDs(c.View().Threads))
}

func TestMessages_CreateThread(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	rec := &Recorder{}
	c := NewMessages(a, WithNotifier(rec))
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	thread, err := c.CreateThread(ctx, "Retro", "What went well?")
	require.NoError(t, err)
	assert.Equal(t, 0, thread.ReplyCount)
	assert.Equal(t, "Thread created!", lastNotice(t, rec).Message)

	v := c.View()
	assert.Equal(t, thread.ID, v.Threads[0].ID)

	msgs, err := c.OpenThread(ctx, thread.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "What went well?", msgs[0].Content)
}

func TestMessages_CreateThreadBlankTitle(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	c := NewMessages(a)
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	_, err := c.CreateThread(ctx, " ", "body")
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Len(t, c.View().Threads, 3)

	all, err := a.MessageService.GetAllThreads(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
