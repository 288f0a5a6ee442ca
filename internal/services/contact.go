package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/devfolio/apiserver/types"
)

// ContactChannel is the broker channel contact-message events are
// published to.
const ContactChannel = "contact.created"

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	List(ctx context.Context) ([]types.ContactMessage, error)
	Create(ctx context.Context, message types.ContactMessage) (types.ContactMessage, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// Notifier publishes events to a message broker. Implemented by mq.MQ.
type Notifier interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
}

// ContactService encapsulates contact-form use-cases.
type ContactService struct {
	repo     ContactRepository
	notifier Notifier
}

// NewContactService constructs a ContactService. notifier may be nil,
// in which case no events are published.
func NewContactService(repo ContactRepository, notifier Notifier) *ContactService {
	return &ContactService{repo: repo, notifier: notifier}
}

func (s *ContactService) List(ctx context.Context) ([]types.ContactMessage, error) {
	return s.repo.List(ctx)
}

// Create persists the message and publishes a notification event.
// Publish failures are logged and never fail the request.
func (s *ContactService) Create(ctx context.Context, message types.ContactMessage) (types.ContactMessage, error) {
	created, err := s.repo.Create(ctx, message)
	if err != nil {
		return types.ContactMessage{}, err
	}

	if s.notifier != nil {
		data, err := json.Marshal(created)
		if err == nil {
			_, err = s.notifier.Publish(ctx, ContactChannel, data, map[string]string{
				"email": created.Email,
			})
		}
		if err != nil {
			log.Printf("contact notification publish failed: %v", err)
		}
	}

	return created, nil
}

func (s *ContactService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *ContactService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
