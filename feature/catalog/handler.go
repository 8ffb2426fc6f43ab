package catalog

import (
	"grail-tracker/core/logger"
	"grail-tracker/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Get("/", h.HandleGetItems)
	group.Get("/check", h.HandleCheck)
}

// HandleGetItems returns the requested catalog sections.
// @Summary Get Catalog Items
// @Description Returns catalog sections keyed by type. Repeat the types parameter to select several sections; omit it for all.
// @Tags catalog
// @Produce json
// @Param types query []string false "Sections (uniques, sets, runes, runewords, bases)" collectionFormat(multi)
// @Success 200 {object} ItemsResponse "Catalog"
// @Failure 400 {object} map[string]string "Unknown type"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items [get]
func (h *Handler) HandleGetItems(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var names []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("types") {
		names = append(names, string(raw))
	}
	types, err := models.ParseTypes(names)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cat, err := h.service.Load(c.Context(), types...)
	if err != nil {
		l.Error("Catalog load failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(ItemsResponse{Items: cat})
}

// HandleCheck lists catalog objects missing from storage.
// @Summary Check Catalog Objects
// @Description Lists the catalog section objects that are missing from the bucket.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string][]string "Missing objects"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.Check(c.Context())
	if err != nil {
		l.Error("Catalog check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"missing": missing})
}
