package layouts

import (
	"layout-catalog/core/logger"
	"layout-catalog/feature/layouts/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for layouts.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the layout routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/layouts")
	group.Post("/sync", h.HandleSync)
	group.Get("/categories", h.HandleListCategories)
	group.Get("/", h.HandleListLayouts)
}

// SyncRequest is the body of a sync request. A token or site id makes the
// request use the authenticated per-site catalog.
type SyncRequest struct {
	SiteID int64   `json:"site_id"`
	Token  string  `json:"token"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Account returns the account the request describes.
func (r SyncRequest) Account() Account {
	return Account{
		Remote: r.Token != "" || r.SiteID != 0,
		SiteID: r.SiteID,
		Token:  r.Token,
	}
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  Kind   `json:"kind,omitempty"`
}

// LayoutView is a persisted layout with its category slugs.
type LayoutView struct {
	*models.Layout
	Categories []string `json:"categories"`
}

// HandleSync fetches the remote catalog and replaces the local one with it.
// @Summary Sync Layouts
// @Description Fetch the layout catalog from the remote service and reconcile it into the local store.
// @Tags layouts
// @Accept json
// @Produce json
// @Param request body SyncRequest true "Account and thumbnail size"
// @Success 200 {object} Result "Sync result"
// @Failure 400 {object} ErrorResponse "Invalid request or account"
// @Failure 422 {object} ErrorResponse "Unparseable remote response"
// @Failure 500 {object} ErrorResponse "Persistence failure"
// @Failure 502 {object} ErrorResponse "Remote service failure"
// @Router /layouts/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req SyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if req.Width <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "width must be positive"})
	}

	res, err := h.service.FetchLayouts(c.UserContext(), req.Account(), Size{Width: req.Width, Height: req.Height})
	if err != nil {
		kind := KindOf(err)
		l.Error("Layout sync failed", zap.String("kind", string(kind)), zap.Error(err))
		return c.Status(statusFor(kind)).JSON(ErrorResponse{Error: err.Error(), Kind: kind})
	}

	return c.JSON(res)
}

// HandleListCategories returns the persisted categories.
// @Summary List Categories
// @Description List persisted layout categories sorted by title.
// @Tags layouts
// @Produce json
// @Success 200 {array} models.Category "Categories"
// @Router /layouts/categories [get]
func (h *Handler) HandleListCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories(c.UserContext()))
}

// HandleListLayouts returns the persisted layouts.
// @Summary List Layouts
// @Description List persisted layouts with their category slugs.
// @Tags layouts
// @Produce json
// @Param category query string false "Category slug filter"
// @Success 200 {array} LayoutView "Layouts"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /layouts [get]
func (h *Handler) HandleListLayouts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	layouts, err := h.service.Layouts(c.UserContext(), c.Query("category"))
	if err != nil {
		l.Error("Layout listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}

	views := make([]LayoutView, 0, len(layouts))
	for i := range layouts {
		views = append(views, LayoutView{Layout: &layouts[i], Categories: layouts[i].CategorySlugs()})
	}
	return c.JSON(views)
}

func statusFor(kind Kind) int {
	switch kind {
	case KindConfiguration:
		return fiber.StatusBadRequest
	case KindParse:
		return fiber.StatusUnprocessableEntity
	case KindPersistence:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadGateway
	}
}
