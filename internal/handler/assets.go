package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/domain"
)

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Name         string   `json:"name" validate:"required"`
		Category     string   `json:"category" validate:"required,oneof='IT Equipment' 'Office Furniture' Vehicles Tools Software"`
		Status       string   `json:"status" validate:"required,oneof=Active Maintenance Retired"`
		Location     string   `json:"location" validate:"required,oneof='HQ Office' 'Branch A' 'Branch B' Remote"`
		Value        *float64 `json:"value" validate:"required,gte=0"`
		EmployeeName string   `json:"employeeName" validate:"required"`
		EmployeeID   string   `json:"employeeID" validate:"required"`
		Notes        string   `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	asset := &domain.Asset{
		Name:         req.Name,
		Category:     req.Category,
		Status:       req.Status,
		Location:     req.Location,
		Value:        *req.Value,
		UserID:       myInfo.ID,
		EmployeeName: req.EmployeeName,
		EmployeeID:   req.EmployeeID,
		Notes:        req.Notes,
	}

	// 先插入资产，再插入动态记录；动态插入失败时资产不会回滚
	if err := h.repository.CreateAssetWithActivity(asset); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建资产成功", asset)
}

func (h *Handler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.repository.GetAllAssets()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 搜索和状态过滤在内存中进行，不下推到数据库
	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")
	filtered := domain.FilterAssets(assets, search, status)

	h.successResponse(w, r, "获取资产列表成功", filtered)
}

func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset := r.Context().Value(AssetCtx).(*domain.Asset)
	h.successResponse(w, r, "获取资产成功", asset)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	asset := r.Context().Value(AssetCtx).(*domain.Asset)

	var req struct {
		Name            *string    `json:"name,omitempty"`
		Category        *string    `json:"category,omitempty" validate:"omitempty,oneof='IT Equipment' 'Office Furniture' Vehicles Tools Software"`
		Status          *string    `json:"status,omitempty" validate:"omitempty,oneof=Active Maintenance Retired"`
		Location        *string    `json:"location,omitempty" validate:"omitempty,oneof='HQ Office' 'Branch A' 'Branch B' Remote"`
		Value           *float64   `json:"value,omitempty" validate:"omitempty,gte=0"`
		EmployeeName    *string    `json:"employeeName,omitempty"`
		EmployeeID      *string    `json:"employeeID,omitempty"`
		LifecycleStage  *string    `json:"lifecycleStage,omitempty" validate:"omitempty,oneof=new in-use maintenance retired"`
		NextMaintenance *time.Time `json:"nextMaintenance,omitempty"`
		Notes           *string    `json:"notes,omitempty"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Category != nil {
		asset.Category = *req.Category
	}
	if req.Status != nil {
		asset.Status = *req.Status
	}
	if req.Location != nil {
		asset.Location = *req.Location
	}
	if req.Value != nil {
		asset.Value = *req.Value
	}
	if req.EmployeeName != nil {
		asset.EmployeeName = *req.EmployeeName
	}
	if req.EmployeeID != nil {
		asset.EmployeeID = *req.EmployeeID
	}
	if req.LifecycleStage != nil {
		stage := domain.LifecycleStage(*req.LifecycleStage)
		asset.LifecycleStage = &stage
	}
	if req.NextMaintenance != nil {
		asset.NextMaintenance = req.NextMaintenance
	}
	if req.Notes != nil {
		asset.Notes = *req.Notes
	}

	// 审计记录中只保留这次请求实际提交的字段
	changes, err := json.Marshal(req)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	log := &domain.AuditLog{
		UserID:       myInfo.ID,
		Action:       "update",
		ResourceType: "asset",
		ResourceID:   asset.ID,
		Changes:      changes,
	}

	// 资产更新和审计写入并发执行，不保证原子性
	if err := h.repository.UpdateAssetWithAudit(asset, log); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新资产失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新资产成功", asset)
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	asset := r.Context().Value(AssetCtx).(*domain.Asset)

	if err := h.repository.DeleteAsset(asset.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除资产成功", nil)
}

func (h *Handler) ScheduleMaintenance(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	asset := r.Context().Value(AssetCtx).(*domain.Asset)

	var req struct {
		Date  *time.Time `json:"date" validate:"required"`
		Notes string     `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	asset.Status = domain.AssetStatusMaintenance
	asset.NextMaintenance = req.Date

	changes, err := json.Marshal(map[string]any{
		"type":  "maintenance_scheduled",
		"date":  req.Date,
		"notes": req.Notes,
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	log := &domain.AuditLog{
		UserID:       myInfo.ID,
		Action:       "update",
		ResourceType: "asset",
		ResourceID:   asset.ID,
		Changes:      changes,
	}

	notification := &domain.Notification{
		UserID:   myInfo.ID,
		Title:    "Maintenance Scheduled",
		Message:  fmt.Sprintf("Maintenance scheduled for asset on %s", req.Date.Format("2006-01-02")),
		Severity: domain.SeverityInfo,
	}

	// 资产更新（带审计）和通知插入并发执行，部分失败不做补偿
	if err := h.repository.ScheduleMaintenance(asset, log, notification); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "安排维护失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.publishMailMessage(domain.MailMessage{
		Type: "maintenance_scheduled",
		To:   myInfo.Email,
		Data: domain.MaintenanceScheduledMailData{
			AssetName: asset.Name,
			Date:      req.Date.Format("2006-01-02 15:04"),
			Notes:     req.Notes,
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "安排维护成功", asset)
}

func (h *Handler) AssignAsset(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	asset := r.Context().Value(AssetCtx).(*domain.Asset)

	var req struct {
		UserID *int64 `json:"userID" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 确认被分配人存在，同时拿到邮箱用于发送通知邮件
	assignee, err := h.repository.GetUserByID(*req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "被分配的用户不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	stage := domain.LifecycleInUse
	asset.AssignedTo = &assignee.ID
	asset.LifecycleStage = &stage

	changes, err := json.Marshal(map[string]any{
		"type":        "asset_assigned",
		"assigned_to": assignee.ID,
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	log := &domain.AuditLog{
		UserID:       myInfo.ID,
		Action:       "update",
		ResourceType: "asset",
		ResourceID:   asset.ID,
		Changes:      changes,
	}

	notification := &domain.Notification{
		UserID:   assignee.ID,
		Title:    "Asset Assigned",
		Message:  "A new asset has been assigned to you",
		Severity: domain.SeverityInfo,
	}

	// 资产更新（带审计）和通知插入并发执行，部分失败不做补偿
	if err := h.repository.AssignAsset(asset, log, notification); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "分配资产失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.publishMailMessage(domain.MailMessage{
		Type: "asset_assigned",
		To:   assignee.Email,
		Data: domain.AssetAssignedMailData{
			AssetName: asset.Name,
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "分配资产成功", asset)
}
