package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventUserUpdated     EventType = "user_updated"
	EventUserDeleted     EventType = "user_deleted"
	EventFavoriteAdded   EventType = "favorite_added"
	EventFavoriteRemoved EventType = "favorite_removed"
)

// Event represents a domain event emitted by services after a successful
// mutation.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserAccountPayload accompanies account lifecycle events.
type UserAccountPayload struct {
	Username string `json:"username"`
}

// FavoritePayload accompanies favorite add/remove events.
type FavoritePayload struct {
	Username   string `json:"username"`
	MovieID    string `json:"movie_id"`
	MovieTitle string `json:"movie_title,omitempty"`
}
