package remote_test

import (
	"context"
	"net"
	"testing"
	"time"

	"grail-tracker/core/api"
	"grail-tracker/core/database"
	"grail-tracker/feature/progress"
	"grail-tracker/feature/progress/remote"
	"grail-tracker/feature/useritems"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startServer(t *testing.T) string {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	require.NoError(t, useritems.NewFeature(db, zap.NewNop()).Load(app))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestClient_AgainstServer(t *testing.T) {
	base := startServer(t)
	ctx := context.Background()
	client := remote.NewClient(api.NewClient(api.Config{BaseURL: base, UserID: "u1", TimeoutSeconds: 5}))

	require.NoError(t, client.SetFound(ctx, "Windforce", true))
	require.NoError(t, client.SetFound(ctx, "Shaftstop", true))
	require.NoError(t, client.SetFound(ctx, "Shaftstop", false))

	at := time.Date(2022, 2, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, client.SetBulk(ctx, []progress.BulkItem{{ItemKey: "Ber", FoundAt: &at}}))

	items, err := client.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	byKey := map[string]progress.RemoteItem{}
	for _, it := range items {
		byKey[it.ItemKey] = it
		assert.Equal(t, "u1", it.UserID)
	}
	assert.False(t, byKey["Shaftstop"].Found)
	assert.True(t, at.Equal(*byKey["Ber"].FoundAt))

	require.NoError(t, client.Clear(ctx))
	items, err = client.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClient_MissingUser(t *testing.T) {
	base := startServer(t)
	client := remote.NewClient(api.NewClient(api.Config{BaseURL: base, TimeoutSeconds: 5}))

	_, err := client.ListItems(context.Background())
	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, fiber.StatusBadRequest, statusErr.Code)
}

func TestCoordinator_OverHTTP(t *testing.T) {
	base := startServer(t)
	ctx := context.Background()
	client := remote.NewClient(api.NewClient(api.Config{BaseURL: base, UserID: "u1", TimeoutSeconds: 5}))

	c := progress.NewCoordinator(client, progress.Config{Debounce: time.Hour}, zap.NewNop())
	c.SetFound("Windforce", true)
	c.SetFound("Annihilus", true)
	c.SetFound("Annihilus", false)
	require.NoError(t, c.Close())

	fresh := progress.NewCoordinator(client, progress.Config{Debounce: time.Hour}, zap.NewNop())
	require.NoError(t, fresh.Hydrate(ctx))
	assert.Equal(t, []string{"Windforce"}, fresh.Snapshot().Keys(), "found:false rows collapse on load")
	require.NoError(t, fresh.Close())
}
