package useritems

import (
	"errors"

	"grail-tracker/core/api"
	"grail-tracker/core/logger"
	"grail-tracker/feature/progress"
	"grail-tracker/feature/progress/remote"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const userLocalsKey = "user_id"

// Handler handles HTTP requests for user progress.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the user-items routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/user-items", requireUser)
	group.Get("/", h.HandleList)
	group.Post("/set", h.HandleSet)
	group.Post("/set-bulk", h.HandleSetBulk)
	group.Delete("/clear", h.HandleClear)

	app.Get("/integrity/user-items", h.HandleSchema)
}

// SchemaReport is the result of comparing the user_items table with the model.
type SchemaReport struct {
	Table          string   `json:"table"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// HandleSchema reports columns missing from the user_items table.
// @Summary Check User Items Schema
// @Description Compares the user_items table with the columns the service writes.
// @Tags integrity
// @Produce json
// @Success 200 {object} SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/user-items [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	missing, err := h.service.CheckSchema()
	if err != nil {
		return h.fail(c, "Schema check failed", err)
	}
	if missing == nil {
		missing = []string{}
	}
	report := SchemaReport{Table: UserItem{}.TableName(), MissingColumns: missing, Status: "ok"}
	if len(missing) > 0 {
		report.Status = "error"
	}
	return c.JSON(report)
}

func requireUser(c *fiber.Ctx) error {
	userID := c.Get(api.HeaderUserID)
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrMissingUser.Error()})
	}
	c.Locals(userLocalsKey, userID)
	return c.Next()
}

func userOf(c *fiber.Ctx) string {
	userID, _ := c.Locals(userLocalsKey).(string)
	return userID
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, ErrMissingUser) || errors.Is(err, ErrMissingItemKey) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.String("user_id", userOf(c)), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleList returns every progress row of the user.
// @Summary List User Items
// @Description Lists the stored progress of the user named by X-User-ID. Rows with found false may be present.
// @Tags user-items
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} remote.ListResponse "Items"
// @Failure 400 {object} map[string]string "Missing user"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /user-items [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	rows, err := h.service.List(c.Context(), userOf(c))
	if err != nil {
		return h.fail(c, "Listing user items failed", err)
	}

	items := make([]progress.RemoteItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Remote())
	}
	return c.JSON(remote.ListResponse{Items: items})
}

// HandleSet marks one item found or not found.
// @Summary Set User Item
// @Description Sets the found flag of one item.
// @Tags user-items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body remote.SetRequest true "Item"
// @Success 200 {object} progress.RemoteItem "Stored item"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /user-items/set [post]
func (h *Handler) HandleSet(c *fiber.Ctx) error {
	var req remote.SetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	item, err := h.service.Set(c.Context(), userOf(c), req.ItemKey, req.Found)
	if err != nil {
		return h.fail(c, "Setting user item failed", err)
	}
	return c.JSON(item.Remote())
}

// HandleSetBulk upserts many items in one transaction.
// @Summary Bulk Set User Items
// @Description Upserts every item in one transaction. Found defaults to true; foundAt is kept when given.
// @Tags user-items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body remote.BulkRequest true "Items"
// @Success 200 {object} map[string]int "Updated count"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /user-items/set-bulk [post]
func (h *Handler) HandleSetBulk(c *fiber.Ctx) error {
	var req remote.BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	n, err := h.service.SetBulk(c.Context(), userOf(c), req.Items)
	if err != nil {
		return h.fail(c, "Bulk set failed", err)
	}
	return c.JSON(fiber.Map{"updated": n})
}

// HandleClear deletes every progress row of the user.
// @Summary Clear User Items
// @Description Deletes all stored progress of the user.
// @Tags user-items
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} map[string]int "Deleted count"
// @Failure 400 {object} map[string]string "Missing user"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /user-items/clear [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	n, err := h.service.Clear(c.Context(), userOf(c))
	if err != nil {
		return h.fail(c, "Clearing user items failed", err)
	}
	return c.JSON(fiber.Map{"deleted": n})
}
