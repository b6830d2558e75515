package types

import "time"

// Notification is an in-app notification for the current navigator.
// IsRead transitions only from false to true, individually or in bulk.
type Notification struct {
	ID        string     `json:"_id,omitempty"`
	Title     string     `json:"title"`
	Message   string     `json:"message,omitempty"`
	ActionURL string     `json:"actionUrl,omitempty"`
	IsRead    bool       `json:"isRead"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}
