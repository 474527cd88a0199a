package domain

import (
	"strings"
	"time"
)

type LifecycleStage string

const (
	LifecycleNew         LifecycleStage = "new"
	LifecycleInUse       LifecycleStage = "in-use"
	LifecycleMaintenance LifecycleStage = "maintenance"
	LifecycleRetired     LifecycleStage = "retired"
)

// 资产表单中固定的选项集，创建时必须从中选择
var (
	AssetCategories = []string{"IT Equipment", "Office Furniture", "Vehicles", "Tools", "Software"}
	AssetStatuses   = []string{"Active", "Maintenance", "Retired"}
	AssetLocations  = []string{"HQ Office", "Branch A", "Branch B", "Remote"}
)

const (
	AssetStatusActive      = "Active"
	AssetStatusMaintenance = "Maintenance"
	AssetStatusRetired     = "Retired"
)

type Asset struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Status          string          `json:"status"`
	Location        string          `json:"location"`
	Value           float64         `json:"value"`
	UserID          int64           `json:"userID"`
	AssignedTo      *int64          `json:"assignedTo"`
	EmployeeName    string          `json:"employeeName"`
	EmployeeID      string          `json:"employeeID"`
	LifecycleStage  *LifecycleStage `json:"lifecycleStage"`
	NextMaintenance *time.Time      `json:"nextMaintenance"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Version         int32           `json:"-"`
}

// MatchesSearch 对资产的名称、类别、位置、员工姓名和员工编号做大小写不敏感的子串匹配
func (a *Asset) MatchesSearch(search string) bool {
	if search == "" {
		return true
	}

	search = strings.ToLower(search)
	fields := []string{a.Name, a.Category, a.Location, a.EmployeeName, a.EmployeeID}

	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}

	return false
}

// FilterAssets 在内存中过滤资产列表：搜索词做子串匹配，状态做精确匹配
// statusFilter 为 "all" 或空时不按状态过滤，其余取值（如 "maintenance"）与资产状态做大小写不敏感的精确匹配
func FilterAssets(assets []*Asset, search string, statusFilter string) []*Asset {
	filtered := make([]*Asset, 0, len(assets))

	for _, asset := range assets {
		if !asset.MatchesSearch(search) {
			continue
		}
		if statusFilter != "" && statusFilter != "all" && !strings.EqualFold(asset.Status, statusFilter) {
			continue
		}
		filtered = append(filtered, asset)
	}

	return filtered
}
