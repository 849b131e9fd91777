package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTypeInfo    = "info"
	NotificationTypeWarning = "warning"
	NotificationTypeSuccess = "success"
)

// Notification is a dashboard notice. Only the sample data set carries notifications;
// they are not persisted.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
