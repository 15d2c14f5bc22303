package newsletter

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/placidasia/catalog-backend/internal/mailer"
)

type recordingMailer struct {
	sent []mailer.Message
}

func (m *recordingMailer) Send(msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func newTestApp() (*fiber.App, *recordingMailer) {
	mail := &recordingMailer{}
	h := NewHandler(NewService(NewInMemoryRepository(), mail))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, mail
}

func TestSubscribe_RejectsBadEmail(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/newsletter", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}
}

func TestSubscribe_DedupeAndWelcome(t *testing.T) {
	app, mail := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/newsletter", strings.NewReader(`{"email":"Somsak@Example.com","name":"Somsak"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	if len(mail.sent) != 1 || mail.sent[0].To != "somsak@example.com" {
		t.Fatalf("expected lowercase welcome email, got %+v", mail.sent)
	}

	// same address again, different casing, is a conflict
	req = httptest.NewRequest("POST", "/api/v1/newsletter", strings.NewReader(`{"email":"somsak@example.COM"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 409 {
		t.Fatalf("expected 409 for duplicate, got %d", res.StatusCode)
	}
}

func TestSubscribe_ReactivatesInactive(t *testing.T) {
	mail := &recordingMailer{}
	repo := NewInMemoryRepository()
	svc := NewService(repo, mail)
	h := NewHandler(svc)
	app := fiber.New()
	h.RegisterPublicRoutes(app)

	name := "Old Name"
	repo.Create(Subscriber{Email: "back@example.com", Name: &name, Active: false, SubscribedAt: "2025-01-01T00:00:00Z"})

	req := httptest.NewRequest("POST", "/api/v1/newsletter", strings.NewReader(`{"email":"back@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "reactivated") {
		t.Fatalf("expected reactivation message, got %s", string(body))
	}

	stored, err := repo.GetByEmail("back@example.com")
	if err != nil || !stored.Active {
		t.Fatalf("subscription not reactivated: %+v %v", stored, err)
	}
	// no second welcome email on reactivation
	if len(mail.sent) != 0 {
		t.Fatalf("expected no welcome email on reactivation, got %d", len(mail.sent))
	}
}

func TestListSubscribers_ActiveFilter(t *testing.T) {
	mail := &recordingMailer{}
	repo := NewInMemoryRepository()
	h := NewHandler(NewService(repo, mail))
	app := fiber.New()
	h.RegisterProtectedRoutes(app)

	repo.Create(Subscriber{Email: "a@example.com", Active: true, SubscribedAt: "2025-01-01T00:00:00Z"})
	repo.Create(Subscriber{Email: "b@example.com", Active: false, SubscribedAt: "2025-01-02T00:00:00Z"})

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/newsletter?active=true", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	var resp struct {
		Count       int          `json:"count"`
		Subscribers []Subscriber `json:"subscribers"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Count != 1 || resp.Subscribers[0].Email != "a@example.com" {
		t.Fatalf("active filter broken: %s", string(body))
	}
}
