package domain

import (
	"encoding/json"
	"time"
)

// AuditLog 是合规用的追加式审计记录，记录谁改了什么
type AuditLog struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"userID"`
	Action       string          `json:"action"`
	ResourceType string          `json:"resourceType"`
	ResourceID   int64           `json:"resourceID"`
	Changes      json.RawMessage `json:"changes"`
	CreatedAt    time.Time       `json:"createdAt"`
}
