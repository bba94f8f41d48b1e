package controllers

import (
	"log/slog"
	"net/http"

	"communityevents/internal/delivery/http/helpers"
	"communityevents/internal/domain"
)

// CategoryController serves the category listing used by the search filter.
type CategoryController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCategoryController(logger *slog.Logger, svc domain.CatalogService) *CategoryController {
	return &CategoryController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List categories
// @Description Returns all categories ordered by name.
// @Tags categories
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 500 {object} helpers.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Service.Categories(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, categories)
}
