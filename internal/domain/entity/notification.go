package entity

// NotificationType ties a notification to the event that produced it.
type NotificationType string

const (
	NotificationCourse      NotificationType = "course"
	NotificationInternship  NotificationType = "internship"
	NotificationCertificate NotificationType = "certificate"
	NotificationMessage     NotificationType = "message"
	NotificationLike        NotificationType = "like"
	NotificationComment     NotificationType = "comment"
)

// Notification is a read/unread message with an optional link target.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt string           `json:"createdAt"`
	Link      string           `json:"link,omitempty"`
}
