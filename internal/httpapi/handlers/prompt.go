package handlers

import (
	"errors"
	"net/http"

	"github.com/fidelisagboli/tropicinfusions/internal/conversation"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetPrompt(c *gin.Context) {
	p, err := h.Svc.Prompt(c.Request.Context())
	if err != nil {
		h.Log.Error("prompt read failed", "error", err)
		failErr(c, http.StatusInternalServerError, "prompt_read_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompt": p})
}

type updatePromptReq struct {
	Prompt string `json:"prompt"`
}

func (h *Handler) UpdatePrompt(c *gin.Context) {
	var req updatePromptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "prompt_required")
		return
	}

	// Validate before resolving: a rejected update must not mint a cookie
	// or touch the store.
	if err := conversation.ValidatePrompt(req.Prompt); err != nil {
		if errors.Is(err, conversation.ErrPromptTooLong) {
			fail(c, http.StatusBadRequest, "prompt_too_long")
			return
		}
		fail(c, http.StatusBadRequest, "prompt_required")
		return
	}

	sid, ok := h.resolveSession(c)
	if !ok {
		return
	}

	if err := h.Svc.UpdatePrompt(c.Request.Context(), sid, req.Prompt); err != nil {
		h.Log.Error("prompt update failed", "sessionId", sid, "error", err)
		failErr(c, http.StatusInternalServerError, "prompt_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
