package domain

import "time"

type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeverityWarning NotificationSeverity = "warning"
	SeverityError   NotificationSeverity = "error"
	SeveritySuccess NotificationSeverity = "success"
)

type Notification struct {
	ID        int64                `json:"id"`
	UserID    int64                `json:"userID"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Severity  NotificationSeverity `json:"severity"`
	Read      bool                 `json:"read"`
	CreatedAt time.Time            `json:"createdAt"`
}
