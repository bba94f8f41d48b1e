package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"communityevents/internal/delivery/http/helpers"
	"communityevents/internal/domain"
)

// dateLayout is the wire format of the search start/end query parameters.
const dateLayout = "2006-01-02"

// EventController serves the public read side: listings, search, and detail.
type EventController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewEventController(logger *slog.Logger, svc domain.CatalogService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Home godoc
// @Summary List upcoming events
// @Description Returns active events that have not yet ended, soonest start first.
// @Tags events
// @Produce json
// @Success 200 {array} domain.EventListItem
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/home [get]
func (c *EventController) Home(w http.ResponseWriter, r *http.Request) {
	items, err := c.Service.HomeListing(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, items)
}

// Past godoc
// @Summary List past events
// @Description Returns active events that have already ended, latest end first.
// @Tags events
// @Produce json
// @Success 200 {array} domain.EventListItem
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/past [get]
func (c *EventController) Past(w http.ResponseWriter, r *http.Request) {
	items, err := c.Service.PastListing(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch past events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, items)
}

// Highlights godoc
// @Summary List highlighted events
// @Description Returns the three soonest-starting upcoming active events.
// @Tags events
// @Produce json
// @Success 200 {array} domain.EventHighlight
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/highlights [get]
func (c *EventController) Highlights(w http.ResponseWriter, r *http.Request) {
	highlights, err := c.Service.Highlights(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to load highlights")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, highlights)
}

// Search godoc
// @Summary Search events
// @Description Searches active events. All filters are optional and combined with AND. The end date is inclusive: events ending up to 23:59:59 on that day match.
// @Tags events
// @Produce json
// @Param start query string false "Earliest start date (YYYY-MM-DD)"
// @Param end query string false "Latest end date (YYYY-MM-DD, inclusive)"
// @Param city query string false "City substring, case-insensitive"
// @Param category query string false "Category slug"
// @Success 200 {object} domain.SearchResult
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/search [get]
func (c *EventController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filter domain.SearchFilter

	if s := q.Get("start"); s != "" {
		day, err := time.Parse(dateLayout, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid start date")
			return
		}
		filter.StartFrom = &day
	}
	if s := q.Get("end"); s != "" {
		day, err := time.Parse(dateLayout, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid end date")
			return
		}
		// Inclusive upper bound: end of that day.
		until := day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		filter.EndUntil = &until
	}
	if s := q.Get("city"); s != "" {
		filter.City = &s
	}
	if s := q.Get("category"); s != "" {
		filter.CategorySlug = &s
	}

	result, err := c.Service.Search(r.Context(), filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get event details
// @Description Returns the full event with its category, organisation, and registrations (latest first).
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.EventDetail
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [get]
func (c *EventController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	detail, err := c.Service.EventDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch event details")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, detail)
}

// parseID parses a path id as a well-formed positive integer.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
