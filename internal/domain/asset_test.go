package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAssets() []*Asset {
	return []*Asset{
		{ID: 1, Name: "ThinkPad-001", Category: "IT Equipment", Status: "Active", Location: "HQ Office", EmployeeName: "王伟", EmployeeID: "EMP0001"},
		{ID: 2, Name: "办公桌-002", Category: "Office Furniture", Status: "Maintenance", Location: "Branch A", EmployeeName: "李强", EmployeeID: "EMP0002"},
		{ID: 3, Name: "公务车-003", Category: "Vehicles", Status: "Retired", Location: "Branch B", EmployeeName: "张芳", EmployeeID: "EMP0003"},
	}
}

func TestFilterAssets_SearchByEmployeeID(t *testing.T) {
	filtered := FilterAssets(testAssets(), "emp0002", "all")

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID)
}

func TestFilterAssets_SearchCaseInsensitive(t *testing.T) {
	filtered := FilterAssets(testAssets(), "thinkpad", "")

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)
}

func TestFilterAssets_StatusFilter(t *testing.T) {
	filtered := FilterAssets(testAssets(), "", "maintenance")

	assert.Len(t, filtered, 1)
	assert.Equal(t, "Maintenance", filtered[0].Status)
}

func TestFilterAssets_SearchAndStatusCombined(t *testing.T) {
	// 搜索词匹配多个资产时，状态过滤进一步收窄结果
	assets := testAssets()
	filtered := FilterAssets(assets, "emp", "retired")

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(3), filtered[0].ID)
}

func TestFilterAssets_NoFilter(t *testing.T) {
	assets := testAssets()

	assert.Len(t, FilterAssets(assets, "", ""), 3)
	assert.Len(t, FilterAssets(assets, "", "all"), 3)
}

func TestFilterAssets_NoMatch(t *testing.T) {
	filtered := FilterAssets(testAssets(), "不存在的资产", "all")

	assert.Empty(t, filtered)
}

func TestMatchesSearch_Fields(t *testing.T) {
	asset := &Asset{Name: "MacBook-042", Category: "IT Equipment", Location: "Remote", EmployeeName: "陈敏", EmployeeID: "EMP0042"}

	assert.True(t, asset.MatchesSearch("macbook"))
	assert.True(t, asset.MatchesSearch("it equip"))
	assert.True(t, asset.MatchesSearch("remote"))
	assert.True(t, asset.MatchesSearch("陈敏"))
	assert.True(t, asset.MatchesSearch("0042"))
	assert.False(t, asset.MatchesSearch("vehicle"))
}
