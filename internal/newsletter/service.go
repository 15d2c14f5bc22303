package newsletter

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/placidasia/catalog-backend/internal/mailer"
)

var ErrAlreadySubscribed = errors.New("email is already subscribed")

type Service struct {
	repo Repository
	mail mailer.Mailer
}

func NewService(repo Repository, mail mailer.Mailer) *Service {
	return &Service{repo: repo, mail: mail}
}

// Subscribe adds an email to the newsletter list. Addresses are stored
// lowercased; re-subscribing an unsubscribed address reactivates the
// existing row, and an already active address is an error.
func (s *Service) Subscribe(email string, name *string) (Subscriber, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.repo.GetByEmail(email)
	if err == nil {
		if existing.Active {
			return Subscriber{}, false, ErrAlreadySubscribed
		}
		existing.Active = true
		if name != nil {
			existing.Name = name
		}
		updated, err := s.repo.Update(existing.ID, existing)
		if err != nil {
			return Subscriber{}, false, err
		}
		return updated, true, nil
	}
	if err != ErrNotFound {
		return Subscriber{}, false, err
	}

	created, err := s.repo.Create(Subscriber{
		Email:        email,
		Name:         name,
		Active:       true,
		SubscribedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return Subscriber{}, false, err
	}

	s.sendWelcome(created)
	return created, false, nil
}

func (s *Service) List(active *bool) ([]Subscriber, error) {
	return s.repo.List(active)
}

func (s *Service) sendWelcome(sub Subscriber) {
	if s.mail == nil {
		return
	}
	greeting := "Hello"
	if sub.Name != nil && *sub.Name != "" {
		greeting = "Hello " + *sub.Name
	}
	err := s.mail.Send(mailer.Message{
		To:      sub.Email,
		Subject: "Welcome to our newsletter",
		Body:    fmt.Sprintf("%s,\n\nThank you for subscribing. You will receive updates on new acoustic measurement equipment and application notes.\n", greeting),
	})
	if err != nil {
		log.Printf("newsletter: could not send welcome email to %s: %v", sub.Email, err)
	}
}
