package api_test

import (
	"context"
	"net"
	"net/url"
	"testing"

	"grail-tracker/core/api"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestClient_Do(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/echo", func(c *fiber.Ctx) error {
		var in map[string]any
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		return c.JSON(fiber.Map{
			"body":  in,
			"user":  c.Get(api.HeaderUserID),
			"key":   c.Get(api.HeaderAPIKey),
			"types": c.Query("types"),
		})
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTeapot).SendString("nope")
	})
	base := startServer(t, app)

	client := api.NewClient(api.Config{BaseURL: base + "/", UserID: "u1", ApiKey: "k1", TimeoutSeconds: 5})
	assert.Equal(t, "u1", client.UserID())

	t.Run("Round Trip", func(t *testing.T) {
		var out struct {
			Body  map[string]any `json:"body"`
			User  string         `json:"user"`
			Key   string         `json:"key"`
			Types string         `json:"types"`
		}
		err := client.Do(context.Background(), fiber.MethodPost, "/echo", url.Values{"types": {"runes"}}, map[string]any{"a": 1}, &out)
		require.NoError(t, err)
		assert.Equal(t, "u1", out.User)
		assert.Equal(t, "k1", out.Key)
		assert.Equal(t, "runes", out.Types)
		assert.Equal(t, float64(1), out.Body["a"])
	})

	t.Run("Status Error", func(t *testing.T) {
		err := client.Do(context.Background(), fiber.MethodGet, "/fail", nil, nil, nil)
		var statusErr *api.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, fiber.StatusTeapot, statusErr.Code)
		assert.Equal(t, "nope", statusErr.Body)
	})

	t.Run("Canceled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := client.Do(ctx, fiber.MethodGet, "/fail", nil, nil, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
