package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communityevents/internal/delivery/http/helpers"
	"communityevents/internal/domain"
)

// CreateRegistrationRequest is the request body for
// POST /events/{id}/registrations.
// swagger:model CreateRegistrationRequest
type CreateRegistrationRequest struct {
	PurchaserName string  `json:"purchaser_name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone"`
	Tickets       int     `json:"tickets"`
}

// Validate implements helpers.Validator.
func (r *CreateRegistrationRequest) Validate() []string {
	if r.PurchaserName == "" || r.Email == "" || r.Tickets == 0 {
		return []string{"purchaser_name, email, tickets are required"}
	}
	if r.Tickets < 0 {
		return []string{"tickets must be a positive integer"}
	}
	return nil
}

// RegistrationController serves registration creation.
type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Register for an event
// @Description Registers a purchaser for the event. At most one registration per email per event.
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param registration body CreateRegistrationRequest true "Registration fields"
// @Success 201 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id}/registrations [post]
func (c *RegistrationController) Create(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parseID(r.PathValue("id"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	var req CreateRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg := &domain.Registration{
		EventID:       eventID,
		PurchaserName: req.PurchaserName,
		Email:         req.Email,
		Phone:         req.Phone,
		Tickets:       req.Tickets,
	}
	if err := c.Service.Register(r.Context(), reg); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			helpers.WriteJSONError(w, http.StatusConflict, "You are already registered for this event")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, helpers.MessageResponse{Message: "Registered successfully"})
}
