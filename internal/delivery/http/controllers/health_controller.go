package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"communityevents/internal/delivery/http/helpers"
)

// Pinger reports storage connectivity. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of GET /health.
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

// HealthController reports service and database health.
type HealthController struct {
	Logger *slog.Logger
	DB     Pinger
}

func NewHealthController(logger *slog.Logger, db Pinger) *HealthController {
	return &HealthController{
		Logger: logger,
		DB:     db,
	}
}

// Check godoc
// @Summary Health check
// @Description Reports whether the service and its database are reachable.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 500 {object} HealthResponse
// @Router /health [get]
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	if err := c.DB.PingContext(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "health check failed", "err", err)
		helpers.WriteJSON(w, http.StatusInternalServerError, HealthResponse{Status: "error", DB: "down"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", DB: "up"})
}
