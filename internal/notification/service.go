package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"malaeb/internal/domain"
)

// publishTimeout bounds the best-effort push so a slow gateway can never
// stall the business action that created the notification.
const publishTimeout = 5 * time.Second

// Publisher pushes an event to a user's private real-time channel.
type Publisher interface {
	Publish(ctx context.Context, userID int64, event string, payload any) error
}

// Store is the repository surface the service needs.
type Store interface {
	Create(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, id, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
}

type Service struct {
	repo      Store
	publisher Publisher
}

func NewService(repo Store, publisher Publisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// CreateInput carries everything needed to persist one notification. All six
// localized strings must be supplied together; callers compose them upstream.
type CreateInput struct {
	UserID int64
	// RecipientLocale localizes the push convenience pair. Zero value falls
	// back to English; the stored record always carries all three languages.
	RecipientLocale domain.Locale
	ActorUserID     *int64
	Type            Type
	Model           Model
	ReferenceID     int64
	TitleEn         string
	TitleFr         string
	TitleAr         string
	MessageEn       string
	MessageFr       string
	MessageAr       string
	Link            *string
	Metadata        map[string]any
}

// Create persists the notification, then pushes it to the recipient's private
// channel. Persistence failures propagate; push failures never do, since a
// client that missed the push reconciles on its next fetch.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Notification, error) {
	var raw json.RawMessage
	if in.Metadata != nil {
		b, err := json.Marshal(in.Metadata)
		if err != nil {
			return nil, fmt.Errorf("encode metadata: %w", err)
		}
		raw = b
	}

	n := &Notification{
		UserID:      in.UserID,
		ActorUserID: in.ActorUserID,
		Type:        in.Type,
		Model:       in.Model,
		ReferenceID: in.ReferenceID,
		TitleEn:     in.TitleEn,
		TitleFr:     in.TitleFr,
		TitleAr:     in.TitleAr,
		MessageEn:   in.MessageEn,
		MessageFr:   in.MessageFr,
		MessageAr:   in.MessageAr,
		Link:        in.Link,
		Metadata:    raw,
		IsRead:      false,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.publishBestEffort(n, in.RecipientLocale)

	return n, nil
}

// publishBestEffort delivers the push event without ever failing the caller:
// errors, timeouts and panics from the gateway are logged and discarded.
func (s *Service) publishBestEffort(n *Notification, locale domain.Locale) {
	if s.publisher == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("notification publish panicked", "user_id", n.UserID, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	payload := PushPayload(n, locale)
	if err := s.publisher.Publish(ctx, n.UserID, "notification", payload); err != nil {
		slog.Warn("notification publish failed",
			"user_id", n.UserID,
			"notification_id", n.ID,
			"error", err,
		)
	}
}

// List returns the most recent page of the user's notifications, localized to
// the given locale, together with the unread badge count.
func (s *Service) List(ctx context.Context, userID int64, locale domain.Locale, limit int) ([]*Response, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*Response, len(rows))
	for i := range rows {
		items[i] = Localize(&rows[i], locale)
	}
	return items, unread, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
