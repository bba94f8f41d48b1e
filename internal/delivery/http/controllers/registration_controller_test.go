package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"communityevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	err  error
	last *domain.Registration
}

func (f *fakeRegistrationService) Register(ctx context.Context, reg *domain.Registration) error {
	f.last = reg
	return f.err
}

func TestRegistrationController_Create(t *testing.T) {
	validBody := `{"purchaser_name":"Jo Smith","email":"jo@example.com","phone":"0400000000","tickets":2}`

	t.Run("registered successfully", func(t *testing.T) {
		svc := &fakeRegistrationService{}
		c := NewRegistrationController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/events/5/registrations", strings.NewReader(validBody))
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()
		c.Create(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"message":"Registered successfully"}`, rr.Body.String())

		require.NotNil(t, svc.last)
		assert.Equal(t, int64(5), svc.last.EventID)
		assert.Equal(t, "Jo Smith", svc.last.PurchaserName)
		assert.Equal(t, "jo@example.com", svc.last.Email)
		require.NotNil(t, svc.last.Phone)
		assert.Equal(t, "0400000000", *svc.last.Phone)
		assert.Equal(t, 2, svc.last.Tickets)
	})

	t.Run("missing required fields", func(t *testing.T) {
		c := NewRegistrationController(testLogger, &fakeRegistrationService{})

		req := httptest.NewRequest(http.MethodPost, "/events/5/registrations", strings.NewReader(`{"email":"jo@example.com"}`))
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()
		c.Create(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, errorBody(t, rr), "purchaser_name, email, tickets are required")
	})

	t.Run("negative tickets", func(t *testing.T) {
		c := NewRegistrationController(testLogger, &fakeRegistrationService{})

		body := `{"purchaser_name":"Jo","email":"jo@example.com","tickets":-1}`
		req := httptest.NewRequest(http.MethodPost, "/events/5/registrations", strings.NewReader(body))
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()
		c.Create(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, errorBody(t, rr), "tickets must be a positive integer")
	})

	t.Run("malformed event id", func(t *testing.T) {
		c := NewRegistrationController(testLogger, &fakeRegistrationService{})

		req := httptest.NewRequest(http.MethodPost, "/events/abc/registrations", strings.NewReader(validBody))
		req.SetPathValue("id", "abc")
		rr := httptest.NewRecorder()
		c.Create(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid event id", errorBody(t, rr))
	})

	t.Run("event not found", func(t *testing.T) {
		c := NewRegistrationController(testLogger, &fakeRegistrationService{err: domain.ErrNotFound})

		req := httptest.NewRequest(http.MethodPost, "/events/99/registrations", strings.NewReader(validBody))
		req.SetPathValue("id", "99")
		rr := httptest.NewRecorder()
		c.Create(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Event not found", errorBody(t, rr))
	})

	t.Run("duplicate registration", func(t *testing.T) {
		c := NewRegistrationController(testLogger, &fakeRegistrationService{err: domain.ErrDuplicateRegistration})

		req := httptest.NewRequest(http.MethodPost, "/events/5/registrations", strings.NewReader(validBody))
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()
		c.Create(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "You are already registered for this event", errorBody(t, rr))
	})

	t.Run("service-level invalid input", func(t *testing.T) {
		err := fmt.Errorf("%w: tickets must be a positive integer", domain.ErrInvalidInput)
		c := NewRegistrationController(testLogger, &fakeRegistrationService{err: err})

		req := httptest.NewRequest(http.MethodPost, "/events/5/registrations", strings.NewReader(validBody))
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()
		c.Create(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		c := NewRegistrationController(testLogger, &fakeRegistrationService{err: errors.New("boom")})

		req := httptest.NewRequest(http.MethodPost, "/events/5/registrations", strings.NewReader(validBody))
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()
		c.Create(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Registration failed", errorBody(t, rr))
	})
}
