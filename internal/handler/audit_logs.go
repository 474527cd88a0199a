package handler

import (
	"net/http"
)

func (h *Handler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.repository.GetAllAuditLogs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取审计日志成功", logs)
}
