package useritems

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"grail-tracker/core/api"
	"grail-tracker/feature/progress/remote"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, _ := setupService(t)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, user string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(api.HeaderUserID, user)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

func TestHandler_RoundTrip(t *testing.T) {
	app := newTestApp(t)

	code, _ := doJSON(t, app, "POST", "/user-items/set", "u1", remote.SetRequest{ItemKey: "Windforce", Found: true})
	require.Equal(t, fiber.StatusOK, code)

	code, _ = doJSON(t, app, "POST", "/user-items/set-bulk", "u1", map[string]any{
		"items": []map[string]any{{"itemKey": "Ber", "foundAt": "2023-01-01T00:00:00Z"}, {"itemKey": "Jah"}},
	})
	require.Equal(t, fiber.StatusOK, code)

	code, body := doJSON(t, app, "GET", "/user-items", "u1", nil)
	require.Equal(t, fiber.StatusOK, code)
	var list remote.ListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Ber", list.Items[0].ItemKey)
	assert.Equal(t, 2023, list.Items[0].FoundAt.Year())

	code, body = doJSON(t, app, "DELETE", "/user-items/clear", "u1", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `{"deleted": 3}`, string(body))
}

func TestHandler_Errors(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, "GET", "/user-items", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, string(body), ErrMissingUser.Error())

	code, _ = doJSON(t, app, "POST", "/user-items/set", "u1", remote.SetRequest{Found: true})
	assert.Equal(t, fiber.StatusBadRequest, code)

	req := httptest.NewRequest("POST", "/user-items/set-bulk", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(api.HeaderUserID, "u1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Schema(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, "GET", "/integrity/user-items", "", nil)
	require.Equal(t, fiber.StatusOK, code, "no user header needed")

	var report SchemaReport
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, "user_items", report.Table)
	assert.Equal(t, "ok", report.Status)
	assert.Empty(t, report.MissingColumns)
}
