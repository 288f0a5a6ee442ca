package notify

import "context"

// Event is a broker-agnostic payload delivered to subscribers.
type Event struct {
	ID         string
	Data       []byte
	Attributes map[string]string
}

// Handler processes an event. Return an error to signal a retry/nack.
type Handler func(ctx context.Context, event Event) error

// Backend defines the broker-agnostic operations used by the app.
type Backend interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
	Subscribe(ctx context.Context, channel string, handler Handler) error
	Close() error
}

// Notifier wraps a backend with a stable API.
type Notifier struct {
	backend Backend
}

// New constructs a Notifier for the provided backend.
func New(backend Backend) *Notifier {
	return &Notifier{backend: backend}
}

// Publish sends an event to the named channel.
func (n *Notifier) Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error) {
	return n.backend.Publish(ctx, channel, data, attrs)
}

// Subscribe consumes events from the named channel.
func (n *Notifier) Subscribe(ctx context.Context, channel string, handler Handler) error {
	return n.backend.Subscribe(ctx, channel, handler)
}

// Close closes the underlying backend.
func (n *Notifier) Close() error {
	return n.backend.Close()
}
