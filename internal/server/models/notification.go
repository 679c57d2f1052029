package models

import "time"

// NotificationStatus is the read state of a notification.
type NotificationStatus string

const (
	NotificationUnread   NotificationStatus = "Unread"
	NotificationRead     NotificationStatus = "Read"
	NotificationArchived NotificationStatus = "Archived"
)

type Notification struct {
	ID          string
	RecipientID string
	Title       string
	Message     string
	Category    string
	Status      NotificationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
