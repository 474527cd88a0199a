package handler

import (
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/domain"
)

// GetReports 返回报表页面的图表数据：类别分布、按位置统计的价值和最近六个月的价值趋势
func (h *Handler) GetReports(w http.ResponseWriter, r *http.Request) {
	assets, err := h.repository.GetAllAssets()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	report := domain.ComputeReportData(assets, time.Now())

	h.successResponse(w, r, "获取报表数据成功", report)
}
