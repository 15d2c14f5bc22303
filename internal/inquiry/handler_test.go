package inquiry

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/placidasia/catalog-backend/internal/mailer"
	"github.com/placidasia/catalog-backend/internal/product"
)

type recordingMailer struct {
	sent []mailer.Message
}

func (m *recordingMailer) Send(msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func newTestApp(catalogSeed []product.Product) (*fiber.App, *Service, *recordingMailer) {
	mail := &recordingMailer{}
	catalog := product.NewService(product.NewInMemoryRepository(catalogSeed))
	svc := NewService(NewInMemoryRepository(), catalog, mail, "sales@example.com")
	h := NewHandler(svc)
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, svc, mail
}

func TestSubmitContact_RequiredFields(t *testing.T) {
	app, _, _ := newTestApp(nil)

	req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(`{"name":"A","email":"a@b.com"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 for missing subject/message, got %d", res.StatusCode)
	}
}

func TestSubmitContact_StoresAndNotifies(t *testing.T) {
	app, svc, mail := newTestApp(nil)

	payload := `{"name":"Somsak","email":"somsak@example.com","subject":"Nor145 price","message":"Need a quote for two units","product_sku":"nor145"}`
	req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 201 {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	body, _ := io.ReadAll(res.Body)
	var resp struct {
		InquiryID string `json:"inquiry_id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.InquiryID == "" {
		t.Fatalf("expected inquiry_id in response")
	}

	stored, err := svc.Get(resp.InquiryID)
	if err != nil {
		t.Fatalf("inquiry not stored: %v", err)
	}
	if stored.Status != StatusNew {
		t.Fatalf("expected status new, got %q", stored.Status)
	}
	if stored.Language != "en" {
		t.Fatalf("expected language to default to en, got %q", stored.Language)
	}

	// one notification to the sales inbox, one confirmation to the customer
	if len(mail.sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(mail.sent))
	}
	if mail.sent[0].To != "sales@example.com" {
		t.Fatalf("notification went to %s", mail.sent[0].To)
	}
	if mail.sent[1].To != "somsak@example.com" {
		t.Fatalf("confirmation went to %s", mail.sent[1].To)
	}
	if !strings.Contains(mail.sent[0].Body, "nor145") {
		t.Fatalf("notification should mention the product sku: %q", mail.sent[0].Body)
	}
}

func TestSubmitQuote_RequiresItems(t *testing.T) {
	app, _, _ := newTestApp(nil)

	payload := `{"name":"Somsak","email":"somsak@example.com","items":[]}`
	req := httptest.NewRequest("POST", "/api/v1/quote-requests", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 for empty items, got %d", res.StatusCode)
	}
}

func TestSubmitQuote_NotificationListsProducts(t *testing.T) {
	app, _, mail := newTestApp(nil)

	payload := `{"name":"Somsak","email":"somsak@example.com","items":[{"product_sku":"nor145","title_en":"Nor145 Sound Analyser","quantity":2}]}`
	req := httptest.NewRequest("POST", "/api/v1/quote-requests", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 201 {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(mail.sent))
	}
	if !strings.Contains(mail.sent[0].Body, "Nor145 Sound Analyser") || !strings.Contains(mail.sent[0].Body, "x 2") {
		t.Fatalf("quote notification missing product line: %q", mail.sent[0].Body)
	}
}

func TestSubmitQuote_ReplacesTitlesWithCatalogTitles(t *testing.T) {
	app, svc, mail := newTestApp([]product.Product{
		{SKU: "nor145", TitleEN: "Nor145 Sound Analyser", Active: true},
	})

	// client sends a stale title and an unknown SKU
	payload := `{"name":"Somsak","email":"somsak@example.com","items":[
		{"product_sku":"NOR145","title_en":"Old Nor140 Analyser","quantity":1},
		{"product_sku":"ghost-1","title_en":"Discontinued Meter","quantity":3}]}`
	req := httptest.NewRequest("POST", "/api/v1/quote-requests", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 201 {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	inquiries, err := svc.List()
	if err != nil || len(inquiries) != 1 {
		t.Fatalf("expected 1 stored inquiry, got %d (%v)", len(inquiries), err)
	}
	items := inquiries[0].Items
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].TitleEN != "Nor145 Sound Analyser" {
		t.Fatalf("known SKU should carry the catalog title, got %q", items[0].TitleEN)
	}
	if items[1].TitleEN != "Discontinued Meter" {
		t.Fatalf("unknown SKU should keep the submitted title, got %q", items[1].TitleEN)
	}
	if len(mail.sent) != 1 || !strings.Contains(mail.sent[0].Body, "Nor145 Sound Analyser") {
		t.Fatalf("notification should list the catalog title, got %+v", mail.sent)
	}
}

func TestUpdateInquiry_StatusAndReply(t *testing.T) {
	app, svc, mail := newTestApp(nil)

	created, err := svc.SubmitContact(Inquiry{Name: "Somsak", Email: "somsak@example.com", Subject: "Hi", Message: "Hello"})
	if err != nil {
		t.Fatalf("seed inquiry failed: %v", err)
	}
	mail.sent = nil

	// invalid status rejected
	req := httptest.NewRequest("PUT", "/api/v1/inquiries/"+created.ID, strings.NewReader(`{"status":"spam"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 for invalid status, got %d", res.StatusCode)
	}

	// reply sends mail to customer and flips status
	req = httptest.NewRequest("PUT", "/api/v1/inquiries/"+created.ID, strings.NewReader(`{"status":"replied","reply_message":"Quote attached."}`))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	var updated Inquiry
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if updated.Status != StatusReplied {
		t.Fatalf("expected replied, got %q", updated.Status)
	}
	if len(mail.sent) != 1 || mail.sent[0].To != "somsak@example.com" {
		t.Fatalf("expected reply email to customer, got %+v", mail.sent)
	}

	// unknown id is 404
	req = httptest.NewRequest("PUT", "/api/v1/inquiries/not-a-real-id", strings.NewReader(`{"status":"closed"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 404 {
		t.Fatalf("expected 404 got %d", res.StatusCode)
	}
}

func TestListInquiries_NewestFirst(t *testing.T) {
	app, svc, _ := newTestApp(nil)

	first, _ := svc.SubmitContact(Inquiry{Name: "A", Email: "a@example.com", Subject: "first", Message: "m"})
	second, _ := svc.SubmitContact(Inquiry{Name: "B", Email: "b@example.com", Subject: "second", Message: "m"})

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/inquiries", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	var inquiries []Inquiry
	if err := json.Unmarshal(body, &inquiries); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(inquiries) != 2 {
		t.Fatalf("expected 2 inquiries, got %d", len(inquiries))
	}
	if inquiries[0].ID != second.ID || inquiries[1].ID != first.ID {
		t.Fatalf("expected newest first")
	}
}
