package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/asset-tracker/backend/internal/domain"
)

func (h *Handler) GetMyNotifications(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	notifications, err := h.repository.GetNotificationsByUserID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取通知列表成功", notifications)
}

func (h *Handler) MarkNotificationAsRead(w http.ResponseWriter, r *http.Request) {
	notification := r.Context().Value(NotificationCtx).(*domain.Notification)

	if err := h.repository.MarkNotificationAsRead(notification.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	notification.Read = true

	h.successResponse(w, r, "标记通知已读成功", notification)
}
