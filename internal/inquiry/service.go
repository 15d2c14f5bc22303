package inquiry

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/placidasia/catalog-backend/internal/mailer"
	"github.com/placidasia/catalog-backend/internal/product"
)

var ErrInvalidStatus = errors.New("invalid status")

// Catalog resolves quote item SKUs to their current catalog entries.
type Catalog interface {
	ListBySKUs(skus []string) ([]product.Product, error)
}

type Service struct {
	repo       Repository
	catalog    Catalog
	mail       mailer.Mailer
	notifyAddr string
}

// NewService wires the inquiry store with the catalog and the
// notification mailer. catalog and mail may be nil: without a catalog
// quote items keep their submitted titles, without a mailer submissions
// are stored without any email being sent.
func NewService(repo Repository, catalog Catalog, mail mailer.Mailer, notifyAddr string) *Service {
	return &Service{repo: repo, catalog: catalog, mail: mail, notifyAddr: notifyAddr}
}

// SubmitContact stores a contact inquiry and notifies the sales inbox.
// Email failures are logged, never returned: the inquiry is already
// persisted and the admin console will show it either way.
func (s *Service) SubmitContact(inq Inquiry) (Inquiry, error) {
	created, err := s.submit(inq)
	if err != nil {
		return Inquiry{}, err
	}

	s.send(mailer.Message{
		To:      s.notifyAddr,
		Subject: fmt.Sprintf("New inquiry: %s", created.Subject),
		Body:    contactNotificationBody(created),
	})
	s.send(mailer.Message{
		To:      created.Email,
		Subject: fmt.Sprintf("We received your inquiry - %s", created.Subject),
		Body: fmt.Sprintf("Dear %s,\n\nThank you for contacting us. We have received your message and will respond within one business day.\n\nYour message:\n%s\n",
			created.Name, created.Message),
	})
	return created, nil
}

// SubmitQuote stores a quote request and notifies the sales inbox with
// the requested product lines.
func (s *Service) SubmitQuote(inq Inquiry) (Inquiry, error) {
	if inq.Subject == "" {
		inq.Subject = "Quote request"
	}
	inq.Items = s.enrichItems(inq.Items)
	created, err := s.submit(inq)
	if err != nil {
		return Inquiry{}, err
	}

	var lines strings.Builder
	for _, item := range created.Items {
		fmt.Fprintf(&lines, "- %s (SKU: %s) x %d\n", item.TitleEN, item.ProductSKU, item.Quantity)
	}
	s.send(mailer.Message{
		To:      s.notifyAddr,
		Subject: fmt.Sprintf("New quote request from %s", created.Name),
		Body:    contactNotificationBody(created) + "\nRequested products:\n" + lines.String(),
	})
	return created, nil
}

// enrichItems replaces submitted titles with the catalog's current
// ones. Client-supplied titles can be stale; the sales inbox should see
// what the SKU actually is. Unknown SKUs keep their submitted title.
func (s *Service) enrichItems(items []QuoteItem) []QuoteItem {
	if s.catalog == nil || len(items) == 0 {
		return items
	}

	skus := make([]string, 0, len(items))
	for _, item := range items {
		skus = append(skus, item.ProductSKU)
	}
	products, err := s.catalog.ListBySKUs(skus)
	if err != nil {
		log.Printf("inquiry: could not resolve quote items: %v", err)
		return items
	}

	titles := make(map[string]string, len(products))
	for _, p := range products {
		titles[strings.ToLower(p.SKU)] = p.TitleEN
	}
	for i, item := range items {
		if title, ok := titles[strings.ToLower(item.ProductSKU)]; ok {
			items[i].TitleEN = title
		}
	}
	return items
}

func (s *Service) submit(inq Inquiry) (Inquiry, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	inq.ID = uuid.New().String()
	inq.Status = StatusNew
	inq.CreatedAt = now
	inq.UpdatedAt = now
	if inq.Language == "" {
		inq.Language = "en"
	}
	return s.repo.Create(inq)
}

func (s *Service) List() ([]Inquiry, error) {
	return s.repo.List()
}

func (s *Service) Get(id string) (Inquiry, error) {
	return s.repo.GetByID(id)
}

// UpdateStatus moves an inquiry through new -> replied -> closed. When
// replyMessage is non-empty the reply is emailed to the customer.
func (s *Service) UpdateStatus(id, status, replyMessage string) (Inquiry, error) {
	if !ValidStatus(status) {
		return Inquiry{}, ErrInvalidStatus
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Inquiry{}, err
	}

	updated, err := s.repo.UpdateStatus(id, status, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return Inquiry{}, err
	}

	if strings.TrimSpace(replyMessage) != "" {
		s.send(mailer.Message{
			To:      existing.Email,
			Subject: fmt.Sprintf("Re: %s", existing.Subject),
			Body: fmt.Sprintf("Dear %s,\n\n%s\n\nYour original message:\n%s\n",
				existing.Name, replyMessage, existing.Message),
		})
	}
	return updated, nil
}

func (s *Service) send(m mailer.Message) {
	if s.mail == nil {
		return
	}
	if err := s.mail.Send(m); err != nil {
		log.Printf("inquiry: could not send notification to %s: %v", m.To, err)
	}
}

func contactNotificationBody(inq Inquiry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\n", inq.Name, inq.Email)
	if inq.Phone != nil {
		fmt.Fprintf(&b, "Phone: %s\n", *inq.Phone)
	}
	if inq.Company != nil {
		fmt.Fprintf(&b, "Company: %s\n", *inq.Company)
	}
	if inq.ProductSKU != nil {
		fmt.Fprintf(&b, "Product: %s\n", *inq.ProductSKU)
	}
	fmt.Fprintf(&b, "Language: %s\nReference: %s\n\n%s\n", inq.Language, inq.ID, inq.Message)
	return b.String()
}
