package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"communityevents/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes. The
// literal /events/* patterns take precedence over /events/{id}.
func NewRouter(
	events *controllers.EventController,
	admin *controllers.AdminController,
	registrations *controllers.RegistrationController,
	categories *controllers.CategoryController,
	health *controllers.HealthController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Public reads
	mux.HandleFunc("GET /categories", categories.List)
	mux.HandleFunc("GET /events/home", events.Home)
	mux.HandleFunc("GET /events/past", events.Past)
	mux.HandleFunc("GET /events/highlights", events.Highlights)
	mux.HandleFunc("GET /events/search", events.Search)
	mux.HandleFunc("GET /events/{id}", events.GetByID)

	// Registrations
	mux.HandleFunc("POST /events/{id}/registrations", registrations.Create)

	// Admin
	mux.HandleFunc("POST /events", admin.CreateEvent)
	mux.HandleFunc("PUT /events/{id}", admin.UpdateEvent)
	mux.HandleFunc("DELETE /events/{id}", admin.DeleteEvent)

	// Health
	mux.HandleFunc("GET /health", health.Check)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
