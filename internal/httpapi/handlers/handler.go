package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fidelisagboli/tropicinfusions/internal/conversation"
	"github.com/fidelisagboli/tropicinfusions/internal/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Svc      *conversation.Service
	Resolver session.Resolver
	Log      *slog.Logger
}

func NewHandler(svc *conversation.Service, resolver session.Resolver, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Svc: svc, Resolver: resolver, Log: logger}
}

func fail(c *gin.Context, status int, code string) {
	c.JSON(status, gin.H{"error": code})
}

func failErr(c *gin.Context, status int, code string, err error) {
	c.JSON(status, gin.H{"error": code, "details": err.Error()})
}

// resolveSession binds the abstract resolver to this request, minting a
// session cookie when absent.
func (h *Handler) resolveSession(c *gin.Context) (string, bool) {
	sid, isNew, err := h.Resolver.Resolve(c.Writer, c.Request)
	if err != nil {
		h.Log.Error("session resolve failed", "error", err)
		fail(c, http.StatusInternalServerError, "server_error")
		return "", false
	}
	if isNew {
		h.Log.Info("minted new session", "sessionId", sid)
	}
	return sid, true
}
