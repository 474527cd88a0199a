package domain

import (
	"encoding/json"
	"time"
)

// AssetActivity 是资产变更的追加式记录，作为资产操作的副作用写入
type AssetActivity struct {
	ID        int64           `json:"id"`
	AssetID   *int64          `json:"assetID"`
	UserID    int64           `json:"userID"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`

	// 查询最近动态时会联表带出对应的资产
	Asset *Asset `json:"asset,omitempty"`
}
