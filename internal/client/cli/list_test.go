package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_RequiresSession(t *testing.T) {
	env := newTestEnv(t, false)

	err := env.app.List(context.Background(), nil)
	require.ErrorIs(t, err, errLoginRequired)
	assert.Contains(t, env.out.String(), "Login required")
	assert.Empty(t, env.app.nav.view)
}

func TestList_RendersOverlaidRecords(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	require.NoError(t, env.overlay.Write(ctx, 2, models.UserPatch{FirstName: models.Str("Janet")}))

	require.NoError(t, env.app.List(ctx, nil))

	out := env.out.String()
	assert.Contains(t, out, "Janet Weaver")
	assert.NotContains(t, out, "Jane Weaver")
	assert.Contains(t, out, "janet.weaver@reqres.in")
	assert.Contains(t, out, "[1] 2 »")
	assert.Equal(t, viewList, env.app.nav.view)
	assert.Equal(t, "(page 1/2)", env.app.status())
}

func TestList_ExplicitPageAndBadArgument(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	require.NoError(t, env.app.List(ctx, []string{"2"}))
	assert.Equal(t, []int{7, 8, 9}, idsOf(env.app.list.users))

	require.ErrorIs(t, env.app.List(ctx, []string{"zero"}), errUsage)
	assert.Equal(t, 2, env.app.list.page, "bad argument keeps the page")
}

func TestNextPrev_Clamp(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	require.NoError(t, env.app.Next(ctx))
	assert.Equal(t, 1, env.app.list.page, "first next opens page 1")

	require.NoError(t, env.app.Next(ctx))
	assert.Equal(t, 2, env.app.list.page)

	require.NoError(t, env.app.Next(ctx))
	assert.Equal(t, 2, env.app.list.page)
	assert.Contains(t, env.out.String(), "last page")

	require.NoError(t, env.app.Prev(ctx))
	require.NoError(t, env.app.Prev(ctx))
	assert.Equal(t, 1, env.app.list.page)
	assert.Contains(t, env.out.String(), "first page")
}

func TestPage_OutOfRange(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	require.NoError(t, env.app.List(ctx, nil))

	require.ErrorIs(t, env.app.Page(ctx, []string{"3"}), errUsage)
	require.ErrorIs(t, env.app.Page(ctx, nil), errUsage)
	require.NoError(t, env.app.Page(ctx, []string{"2"}))
	assert.Equal(t, 2, env.app.list.page)
}

func TestDelete_RemovesFromDisplayedPageAndKeepsOverlay(t *testing.T) {
	env := newTestEnv(t, true, "y")
	ctx := context.Background()

	require.NoError(t, env.overlay.Write(ctx, 9, models.UserPatch{FirstName: models.Str("Tobi")}))
	require.NoError(t, env.app.List(ctx, []string{"2"}))

	require.NoError(t, env.app.Delete(ctx, []string{"9"}))

	assert.Equal(t, []int{9}, env.dir.deletes)
	assert.Equal(t, []int{7, 8}, idsOf(env.app.list.users))
	assert.Contains(t, env.out.String(), "User #9 deleted")

	_, ok := env.overlay.Read(ctx, 9)
	assert.True(t, ok)
}

func TestDelete_Cancelled(t *testing.T) {
	env := newTestEnv(t, true, "n")
	ctx := context.Background()

	require.NoError(t, env.app.List(ctx, []string{"2"}))
	require.NoError(t, env.app.Delete(ctx, []string{"9"}))

	assert.Empty(t, env.dir.deletes)
	assert.Equal(t, []int{7, 8, 9}, idsOf(env.app.list.users))
}

func TestDelete_RemoteFailureKeepsRow(t *testing.T) {
	env := newTestEnv(t, true, "yes")
	env.dir.deleteErr = errors.Join(client.ErrNetwork, errors.New("connection refused"))
	ctx := context.Background()

	require.NoError(t, env.app.List(ctx, []string{"2"}))
	require.ErrorIs(t, env.app.Delete(ctx, []string{"9"}), client.ErrNetwork)

	assert.Equal(t, []int{7, 8, 9}, idsOf(env.app.list.users))
	assert.Contains(t, env.out.String(), "directory unreachable")
}

func TestListView_LoadIgnoresResultAfterCancel(t *testing.T) {
	env := newTestEnv(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var v listView
	err := v.load(ctx, env.app.users, 1)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, v.loaded)
	assert.Nil(t, v.users)
}

func TestList_HugePageCountFromDirectory(t *testing.T) {
	env := newTestEnv(t, true)
	env.dir.totalPages = math.MaxInt
	ctx := context.Background()

	require.NotPanics(t, func() {
		require.NoError(t, env.app.List(ctx, nil))
	})
	assert.Equal(t, math.MaxInt, env.app.list.totalPages)
	assert.Contains(t, env.out.String(), fmt.Sprintf("[1] 2 3 … %d »", math.MaxInt))

	require.NoError(t, env.app.Next(ctx))
	assert.Equal(t, 2, env.app.list.page)
}
