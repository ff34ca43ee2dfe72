package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/campfire/internal/models"
	"github.com/thenoetrevino/campfire/internal/testutil"
)

func TestPeople_Load(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	c := NewPeople(a, 2)
	require.NoError(t, c.Load(context.Background()))

	v := c.View()
	require.True(t, v.Loaded)
	assert.Equal(t, "Mobile App Launch", v.Project.Name)
	require.Len(t, v.Members, 8)
	assert.Equal(t, "Alex Johnson", v.Members[0].Name)
}

func TestPeople_UnknownProject(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	c := NewPeople(a, 99)

	require.ErrorIs(t, c.Load(context.Background()), models.ErrNotFound)
	v := c.View()
	assert.False(t, v.Loaded)
	assert.Nil(t, v.Members)
}
