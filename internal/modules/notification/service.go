// README: Notification service: persists in-app notifications and fans them
// out to the message broker. Delivery is best-effort; callers never block on
// broker failures.
package notification

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"gari/internal/types"
)

var ErrForbidden = errors.New("caller may not access these notifications")

// EventPublisher is satisfied by infra.Publisher. A nil publisher disables
// fan-out without disabling persistence.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type Service struct {
	store     *Store
	publisher EventPublisher
}

func NewService(store *Store, publisher EventPublisher) *Service {
	return &Service{store: store, publisher: publisher}
}

type event struct {
	NotificationID types.ID  `json:"notification_id"`
	Recipient      types.ID  `json:"recipient"`
	Subject        string    `json:"subject"`
	Message        string    `json:"message"`
	SentAt         time.Time `json:"sent_at"`
}

// Notify records a notification for recipient and publishes it with routing
// key "notification.created". Errors are logged, not returned: a failed
// notification must never fail the booking operation that triggered it.
func (s *Service) Notify(ctx context.Context, recipient types.ID, subject, message string) {
	n := &Notification{
		ID:        types.ID(uuid.NewString()),
		Recipient: recipient,
		Subject:   subject,
		Message:   message,
		SentAt:    time.Now(),
	}
	if err := s.store.Create(ctx, n); err != nil {
		log.Printf("notification: persist for %s failed: %v", recipient, err)
		return
	}
	if s.publisher == nil {
		return
	}
	ev := event{
		NotificationID: n.ID,
		Recipient:      n.Recipient,
		Subject:        n.Subject,
		Message:        n.Message,
		SentAt:         n.SentAt,
	}
	if err := s.publisher.PublishJSON(ctx, "notification.created", ev); err != nil {
		log.Printf("notification: publish for %s failed: %v", recipient, err)
	}
}

func (s *Service) List(ctx context.Context, caller types.Caller, recipient types.ID) ([]Notification, error) {
	if !caller.Privileged && caller.UserID != recipient {
		return nil, ErrForbidden
	}
	return s.store.ListByRecipient(ctx, recipient)
}

func (s *Service) MarkRead(ctx context.Context, caller types.Caller, id types.ID) error {
	return s.store.MarkRead(ctx, caller.UserID, id)
}
