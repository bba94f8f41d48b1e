package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"communityevents/internal/delivery/http/helpers"
	"communityevents/internal/domain"
)

// EventRequest is the allow-listed field set for POST /events and
// PUT /events/{id}. Every field is optional; omitted fields are stored as
// NULL. Fields outside this set are ignored.
// swagger:model EventRequest
type EventRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	ImageURL          *string    `json:"image_url"`
	LocationCity      *string    `json:"location_city"`
	LocationVenue     *string    `json:"location_venue"`
	StartDatetime     *time.Time `json:"start_datetime"`
	EndDatetime       *time.Time `json:"end_datetime"`
	IsFree            *bool      `json:"is_free"`
	PriceCents        *int64     `json:"price_cents"`
	GoalAmountCents   *int64     `json:"goal_amount_cents"`
	RaisedAmountCents *int64     `json:"raised_amount_cents"`
	Status            *string    `json:"status"`
	OrgID             *int64     `json:"org_id"`
	CategoryID        *int64     `json:"category_id"`
}

func (req *EventRequest) toEvent() *domain.Event {
	return &domain.Event{
		Title:             req.Title,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		LocationCity:      req.LocationCity,
		LocationVenue:     req.LocationVenue,
		StartDatetime:     req.StartDatetime,
		EndDatetime:       req.EndDatetime,
		IsFree:            req.IsFree,
		PriceCents:        req.PriceCents,
		GoalAmountCents:   req.GoalAmountCents,
		RaisedAmountCents: req.RaisedAmountCents,
		Status:            req.Status,
		OrgID:             req.OrgID,
		CategoryID:        req.CategoryID,
	}
}

// CreateEventResponse is the response body for POST /events.
// swagger:model CreateEventResponse
type CreateEventResponse struct {
	ID int64 `json:"id"`
}

// AdminController serves event create, update, and delete.
type AdminController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event from the allow-listed field set; omitted fields are stored as NULL.
// @Tags admin
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event fields"
// @Success 201 {object} CreateEventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *AdminController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateEvent(r.Context(), req.toEvent())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Create failed")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, CreateEventResponse{ID: id})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Overwrites all fields of the event: this is a full replace, and fields absent from the body are written as NULL.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body EventRequest true "Event fields"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [put]
func (c *AdminController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateEvent(r.Context(), id, req.toEvent()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Update failed")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Message: "Updated"})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event unless registrations reference it.
// @Tags admin
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [delete]
func (c *AdminController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrDeleteBlocked) {
			helpers.WriteJSONError(w, http.StatusConflict, "Cannot delete: registrations exist for this event")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Delete failed")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Message: "Deleted"})
}
