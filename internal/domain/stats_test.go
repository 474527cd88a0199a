package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeDashboardStats_Empty(t *testing.T) {
	stats := ComputeDashboardStats(nil, nil)

	assert.Equal(t, 0, stats.TotalAssets)
	assert.Equal(t, 0, stats.ActiveUsers)
	assert.Equal(t, 0, stats.Alerts)
	assert.Equal(t, float64(0), stats.TotalValue)
	assert.Empty(t, stats.Categories)
}

func TestComputeDashboardStats_Aggregates(t *testing.T) {
	assets := []*Asset{
		{Category: "Tools", Value: 100, UserID: 1},
		{Category: "Tools", Value: 50, UserID: 2},
	}

	stats := ComputeDashboardStats(assets, nil)

	assert.Equal(t, 2, stats.TotalAssets)
	assert.Equal(t, 2, stats.ActiveUsers)
	assert.Equal(t, float64(150), stats.TotalValue)
	assert.Equal(t, []CategoryCount{{Category: "Tools", Count: 2}}, stats.Categories)
}

func TestComputeDashboardStats_DistinctUsers(t *testing.T) {
	assets := []*Asset{
		{Category: "Vehicles", Value: 10, UserID: 1},
		{Category: "Vehicles", Value: 20, UserID: 1},
		{Category: "Software", Value: 30, UserID: 2},
	}

	stats := ComputeDashboardStats(assets, nil)

	assert.Equal(t, 3, stats.TotalAssets)
	assert.Equal(t, 2, stats.ActiveUsers)
	assert.Equal(t, []CategoryCount{
		{Category: "Vehicles", Count: 2},
		{Category: "Software", Count: 1},
	}, stats.Categories)
}

func TestComputeDashboardStats_Alerts(t *testing.T) {
	activities := []*AssetActivity{
		{Action: "maintenance alert: overdue"},
		{Action: "Added new asset: ThinkPad-001"},
		{Action: "alert"},
	}

	stats := ComputeDashboardStats(nil, activities)

	assert.Equal(t, 2, stats.Alerts)
}

func TestComputeReportData(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assets := []*Asset{
		{Category: "Tools", Location: "HQ Office", Value: 100, CreatedAt: now.AddDate(0, -1, 0)},
		{Category: "Tools", Location: "Branch A", Value: 50, CreatedAt: now},
		{Category: "Vehicles", Location: "HQ Office", Value: 200, CreatedAt: now.AddDate(0, -7, 0)}, // 超出趋势窗口
	}

	report := ComputeReportData(assets, now)

	assert.Equal(t, []CategoryCount{
		{Category: "Tools", Count: 2},
		{Category: "Vehicles", Count: 1},
	}, report.Categories)

	assert.Equal(t, []LocationValue{
		{Location: "HQ Office", Value: 300},
		{Location: "Branch A", Value: 50},
	}, report.ValueByLocation)

	// 趋势覆盖最近六个月，没有资产的月份价值为 0
	assert.Len(t, report.ValueTrend, 6)
	assert.Equal(t, MonthValue{Month: "2025-01", Value: 0}, report.ValueTrend[0])
	assert.Equal(t, MonthValue{Month: "2025-05", Value: 100}, report.ValueTrend[4])
	assert.Equal(t, MonthValue{Month: "2025-06", Value: 50}, report.ValueTrend[5])
}
