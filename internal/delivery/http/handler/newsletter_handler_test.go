package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/middleware"
	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"
	"github.com/Dweirii/Learnify-Landing-Page/internal/usecase"
	"github.com/Dweirii/Learnify-Landing-Page/internal/validation"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type mockNewsletterUC struct {
	result usecase.SubscribeResult
	err    error

	lastInput validation.NewsletterInput
	lastEmail string
	unsubErr  error
}

func (m *mockNewsletterUC) Subscribe(_ context.Context, in validation.NewsletterInput) (usecase.SubscribeResult, error) {
	m.lastInput = in
	return m.result, m.err
}

func (m *mockNewsletterUC) Unsubscribe(_ context.Context, email string) error {
	m.lastEmail = email
	return m.unsubErr
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func newTestApp(uc usecase.NewsletterUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewNewsletterHandler(uc).RegisterPublicRoutes(app.Group("/api"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp, env
}

func TestNewsletterHandler_Subscribe_Created(t *testing.T) {
	uc := &mockNewsletterUC{result: usecase.SubscribeResult{
		Subscription: repository.Subscription{ID: uuid.New(), Email: "new@example.com", IsActive: true},
	}}
	app := newTestApp(uc)

	resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter", `{"email":"new@example.com"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
	if env.Message != "Successfully subscribed to newsletter" {
		t.Fatalf("unexpected message: %s", env.Message)
	}
}

func TestNewsletterHandler_Subscribe_Reactivated(t *testing.T) {
	uc := &mockNewsletterUC{result: usecase.SubscribeResult{
		Subscription: repository.Subscription{ID: uuid.New(), Email: "back@example.com", IsActive: true},
		Reactivated:  true,
	}}
	app := newTestApp(uc)

	resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter", `{"email":"back@example.com"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if env.Message != "Subscription reactivated successfully" {
		t.Fatalf("unexpected message: %s", env.Message)
	}
}

func TestNewsletterHandler_Subscribe_Conflict(t *testing.T) {
	uc := &mockNewsletterUC{err: usecase.ErrAlreadySubscribed}
	app := newTestApp(uc)

	resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter", `{"email":"taken@example.com"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if env.Success {
		t.Fatalf("expected failure envelope")
	}
	if env.Error != "Email is already subscribed" {
		t.Fatalf("unexpected error: %s", env.Error)
	}
}

func TestNewsletterHandler_Join_DefaultsSource(t *testing.T) {
	uc := &mockNewsletterUC{result: usecase.SubscribeResult{
		Subscription: repository.Subscription{ID: uuid.New(), Email: "cta@example.com", IsActive: true},
	}}
	app := newTestApp(uc)

	resp, env := doJSON(t, app, http.MethodPost, "/api/joins", `{"email":"cta@example.com"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if env.Message != "Successfully joined Learnify!" {
		t.Fatalf("unexpected message: %s", env.Message)
	}
	if uc.lastInput.Source == nil || *uc.lastInput.Source != "Home Page CTA" {
		t.Fatalf("expected default source, got %v", uc.lastInput.Source)
	}
}

func TestNewsletterHandler_Unsubscribe_RequiresEmail(t *testing.T) {
	app := newTestApp(&mockNewsletterUC{})

	resp, env := doJSON(t, app, http.MethodDelete, "/api/newsletter", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if env.Error != "Email is required" {
		t.Fatalf("unexpected error: %s", env.Error)
	}
}

func TestNewsletterHandler_Unsubscribe_NotFound(t *testing.T) {
	uc := &mockNewsletterUC{unsubErr: usecase.ErrSubscriptionNotFound}
	app := newTestApp(uc)

	resp, env := doJSON(t, app, http.MethodDelete, "/api/newsletter?email=missing%40example.com", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if env.Error != "Email not found in subscriptions" {
		t.Fatalf("unexpected error: %s", env.Error)
	}
}
