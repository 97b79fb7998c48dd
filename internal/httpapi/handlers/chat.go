package handlers

import (
	"net/http"

	"github.com/fidelisagboli/tropicinfusions/internal/conversation"
	"github.com/gin-gonic/gin"
)

type chatReq struct {
	Message string `json:"message"`
}

func (h *Handler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "message_required")
		return
	}
	if err := conversation.ValidateMessage(req.Message); err != nil {
		fail(c, http.StatusBadRequest, "message_required")
		return
	}

	sid, ok := h.resolveSession(c)
	if !ok {
		return
	}

	reply, err := h.Svc.Chat(c.Request.Context(), sid, req.Message)
	if err != nil {
		h.Log.Error("chat turn failed", "sessionId", sid, "error", err)
		failErr(c, http.StatusInternalServerError, "chat_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sid,
		"reply":     reply,
	})
}
