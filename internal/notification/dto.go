package notification

import (
	"encoding/json"
	"time"

	"malaeb/internal/domain"
)

// Response is the single-locale shape a client receives. It is built by
// allow-listing fields: the two other locale pairs are never copied in, so
// untranslated content cannot leak into a response.
type Response struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Model       string          `json:"model"`
	ReferenceID int64           `json:"reference_id"`
	Title       string          `json:"title"`
	Message     string          `json:"message"`
	Link        *string         `json:"link,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	IsRead      bool            `json:"is_read"`
	ActorUserID *int64          `json:"actor_user_id,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

// Localize projects a stored notification onto the locale a client should
// see. Unrecognized locales fall back to English.
func Localize(n *Notification, locale domain.Locale) *Response {
	title, message := localizedPair(n, locale)

	return &Response{
		ID:          n.ID,
		Type:        string(n.Type),
		Model:       string(n.Model),
		ReferenceID: n.ReferenceID,
		Title:       title,
		Message:     message,
		Link:        n.Link,
		Metadata:    n.Metadata,
		IsRead:      n.IsRead,
		ActorUserID: n.ActorUserID,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
	}
}

func localizedPair(n *Notification, locale domain.Locale) (string, string) {
	switch locale {
	case domain.LocaleFR:
		return n.TitleFr, n.MessageFr
	case domain.LocaleAR:
		return n.TitleAr, n.MessageAr
	default:
		return n.TitleEn, n.MessageEn
	}
}

// pushEvent is the wire payload for real-time delivery: the full record plus
// a convenience pair pre-localized to the recipient's preferred language.
type pushEvent struct {
	*Notification
	LocalizedTitle   string `json:"localized_title"`
	LocalizedMessage string `json:"localized_message"`
}

// PushPayload builds the event body published on the recipient's private
// channel, localized to that recipient's preferred language.
func PushPayload(n *Notification, locale domain.Locale) any {
	title, message := localizedPair(n, locale)
	return pushEvent{
		Notification:     n,
		LocalizedTitle:   title,
		LocalizedMessage: message,
	}
}

// ListResponse is the GET /notifications body.
type ListResponse struct {
	Notifications []*Response `json:"notifications"`
	UnreadCount   int64       `json:"unread_count"`
}
