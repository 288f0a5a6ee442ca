package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/devfolio/apiserver/internal/store"
	"github.com/devfolio/apiserver/types"
)

type memContactRepo struct {
	messages []types.ContactMessage
}

func (r *memContactRepo) List(_ context.Context) ([]types.ContactMessage, error) {
	return r.messages, nil
}

func (r *memContactRepo) Create(_ context.Context, message types.ContactMessage) (types.ContactMessage, error) {
	message.ID = len(r.messages) + 1
	r.messages = append(r.messages, message)
	return message, nil
}

func (r *memContactRepo) Delete(_ context.Context, id int) error {
	for i, m := range r.messages {
		if m.ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *memContactRepo) Count(_ context.Context) (int, error) {
	return len(r.messages), nil
}

type memNotifier struct {
	channels []string
	payloads [][]byte
	err      error
}

func (n *memNotifier) Publish(_ context.Context, channel string, data []byte, _ map[string]string) (string, error) {
	if n.err != nil {
		return "", n.err
	}
	n.channels = append(n.channels, channel)
	n.payloads = append(n.payloads, data)
	return "id-1", nil
}

func TestContactCreatePublishesEvent(t *testing.T) {
	repo := &memContactRepo{}
	notifier := &memNotifier{}
	svc := NewContactService(repo, notifier)

	created, err := svc.Create(context.Background(), types.ContactMessage{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	if len(notifier.channels) != 1 || notifier.channels[0] != ContactChannel {
		t.Fatalf("channels = %v", notifier.channels)
	}

	var payload types.ContactMessage
	if err := json.Unmarshal(notifier.payloads[0], &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.ID != created.ID || payload.Email != created.Email {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestContactCreateSurvivesPublishFailure(t *testing.T) {
	repo := &memContactRepo{}
	notifier := &memNotifier{err: errors.New("broker down")}
	svc := NewContactService(repo, notifier)

	created, err := svc.Create(context.Background(), types.ContactMessage{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("create failed on publish error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("message not persisted")
	}
	if len(repo.messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(repo.messages))
	}
}

func TestContactCreateWithoutNotifier(t *testing.T) {
	repo := &memContactRepo{}
	svc := NewContactService(repo, nil)

	if _, err := svc.Create(context.Background(), types.ContactMessage{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Hello",
	}); err != nil {
		t.Fatalf("create without notifier: %v", err)
	}
}
