package domain

import (
	"strings"
	"time"
)

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DashboardStats 是仪表盘的聚合数据，每次加载时由完整的资产和动态集合重新计算，不落库
type DashboardStats struct {
	TotalAssets int             `json:"totalAssets"`
	ActiveUsers int             `json:"activeUsers"`
	Alerts      int             `json:"alerts"`
	TotalValue  float64         `json:"totalValue"`
	Categories  []CategoryCount `json:"categories"`
}

// ComputeDashboardStats 由资产集合和最近的动态计算仪表盘聚合数据
// 类别按照在资产集合中首次出现的顺序排列，保证结果稳定
func ComputeDashboardStats(assets []*Asset, activities []*AssetActivity) *DashboardStats {
	stats := &DashboardStats{
		TotalAssets: len(assets),
		Categories:  make([]CategoryCount, 0),
	}

	users := make(map[int64]struct{})
	categoryIndex := make(map[string]int)

	for _, asset := range assets {
		users[asset.UserID] = struct{}{}
		stats.TotalValue += asset.Value

		if idx, exists := categoryIndex[asset.Category]; exists {
			stats.Categories[idx].Count++
		} else {
			categoryIndex[asset.Category] = len(stats.Categories)
			stats.Categories = append(stats.Categories, CategoryCount{Category: asset.Category, Count: 1})
		}
	}

	stats.ActiveUsers = len(users)

	for _, activity := range activities {
		if strings.Contains(activity.Action, "alert") {
			stats.Alerts++
		}
	}

	return stats
}

type LocationValue struct {
	Location string  `json:"location"`
	Value    float64 `json:"value"`
}

type MonthValue struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// ReportData 是报表页面的图表数据集
type ReportData struct {
	Categories      []CategoryCount `json:"categories"`
	ValueByLocation []LocationValue `json:"valueByLocation"`
	ValueTrend      []MonthValue    `json:"valueTrend"`
}

// ComputeReportData 由完整的资产集合计算报表数据
// 价值趋势按资产创建月份统计最近六个月（含当月）的新增资产价值
func ComputeReportData(assets []*Asset, now time.Time) *ReportData {
	report := &ReportData{
		ValueByLocation: make([]LocationValue, 0),
		ValueTrend:      make([]MonthValue, 0, 6),
	}

	locationIndex := make(map[string]int)
	monthIndex := make(map[string]int)

	// 先生成最近六个月的月份序列，保证没有资产的月份也会出现在趋势中
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)
	for i := 0; i < 6; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		monthIndex[month] = i
		report.ValueTrend = append(report.ValueTrend, MonthValue{Month: month})
	}

	stats := ComputeDashboardStats(assets, nil)
	report.Categories = stats.Categories

	for _, asset := range assets {
		if idx, exists := locationIndex[asset.Location]; exists {
			report.ValueByLocation[idx].Value += asset.Value
		} else {
			locationIndex[asset.Location] = len(report.ValueByLocation)
			report.ValueByLocation = append(report.ValueByLocation, LocationValue{Location: asset.Location, Value: asset.Value})
		}

		if idx, exists := monthIndex[asset.CreatedAt.Format("2006-01")]; exists {
			report.ValueTrend[idx].Value += asset.Value
		}
	}

	return report
}
