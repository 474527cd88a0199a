package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/domain"
)

// 仪表盘聚合最近 10 条动态中的告警，最近动态一栏只展示 3 条
const (
	dashboardActivityLimit = 10
	recentActivityLimit    = 3
)

// GetDashboardStats 拉取全部资产和最近 10 条动态，在内存中计算聚合数据
// 没有分页，开销随资产总数线性增长
func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	assets, err := h.repository.GetAllAssets()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	activities, err := h.repository.GetRecentActivities(dashboardActivityLimit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stats := domain.ComputeDashboardStats(assets, activities)

	h.successResponse(w, r, "获取仪表盘数据成功", stats)
}

func (h *Handler) GetRecentActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.repository.GetRecentActivities(recentActivityLimit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取最近动态成功", activities)
}
