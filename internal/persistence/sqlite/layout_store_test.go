package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/dock"
	"github.com/bnema/dockyard/internal/geometry"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/persistence/sqlite"
)

func testCtx() context.Context {
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "console", TimeFormat: "15:04:05"})
	return logging.WithContext(context.Background(), logger)
}

func testStore(t *testing.T) (context.Context, *sqlite.LayoutStore) {
	t.Helper()
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "dockyard.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	return ctx, sqlite.NewLayoutStore(db)
}

func sampleState(name string) *dock.WindowState {
	return &dock.WindowState{
		Name:     name,
		Geometry: geometry.Rect{X: 10, Y: 20, Width: 1280, Height: 720},
		Visible:  true,
		SideBars: map[string][]string{
			"west":  {"files", "outline"},
			"south": {"console"},
		},
	}
}

func TestLayoutStore_CRUD(t *testing.T) {
	ctx, store := testStore(t)

	state := sampleState("main")
	require.NoError(t, store.Save(ctx, "default", state))

	got, err := store.Get(ctx, "default")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state.Name, got.Name)
	assert.Equal(t, state.Geometry, got.Geometry)
	assert.Equal(t, state.SideBars, got.SideBars)

	layouts, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, layouts, 1)
	assert.Equal(t, "default", layouts[0].Name)
	assert.False(t, layouts[0].UpdatedAt.IsZero())

	// Saving under the same name overwrites.
	state.Geometry.Width = 1920
	require.NoError(t, store.Save(ctx, "default", state))

	got, err = store.Get(ctx, "default")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1920, got.Geometry.Width)

	layouts, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, layouts, 1)

	require.NoError(t, store.Delete(ctx, "default"))
	got, err = store.Get(ctx, "default")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLayoutStore_GetAbsent(t *testing.T) {
	ctx, store := testStore(t)

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLayoutStore_DeleteAbsent(t *testing.T) {
	ctx, store := testStore(t)
	assert.NoError(t, store.Delete(ctx, "missing"))
}

func TestLayoutStore_RejectsBadInput(t *testing.T) {
	ctx, store := testStore(t)

	assert.Error(t, store.Save(ctx, "", sampleState("main")))
	assert.Error(t, store.Save(ctx, "default", nil))
}

func TestLayoutStore_ListOrder(t *testing.T) {
	ctx, store := testStore(t)

	require.NoError(t, store.Save(ctx, "alpha", sampleState("main")))
	require.NoError(t, store.Save(ctx, "beta", sampleState("main")))

	layouts, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, layouts, 2)

	names := []string{layouts[0].Name, layouts[1].Name}
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)
}
