package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusflow/campus-assistant-go/internal/ctxutil"
	"github.com/campusflow/campus-assistant-go/internal/genai"
	"github.com/campusflow/campus-assistant-go/internal/storage"
)

// chatRequest is the chat widget message payload. History carries the
// widget's recent turns so the AI fallback can stay conversational.
type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	History   []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"history"`
}

func (h *Handler) handleChat(c *gin.Context) {
	var req chatRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history := make([]genai.Turn, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, genai.Turn{Role: turn.Role, Content: turn.Content})
	}

	ctx := ctxutil.WithSessionID(c.Request.Context(), sessionID)
	rep, err := h.processor.ProcessChat(ctx, sessionID, req.Message, history)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"reply":      rep,
	})
}

func (h *Handler) handleChatLogin(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	token, err := h.auth.ChatLogin(c.Request.Context(), req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) handleChatHint(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hint": h.auth.AdminHint(c.Request.Context())})
}

func (h *Handler) handleFeedback(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	if err := h.store.AppendFeedback(c.Request.Context(), req.Text); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}

func (h *Handler) handleListChats(c *gin.Context) {
	summaries, err := h.store.ListChats(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": summaries})
}

func (h *Handler) handleLoadChat(c *gin.Context) {
	chat, err := h.store.LoadChat(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

// saveChatRequest persists a widget conversation for later recall.
type saveChatRequest struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Messages []storage.ChatMessage `json:"messages"`
}

func (h *Handler) handleSaveChat(c *gin.Context) {
	var req saveChatRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	chat := storage.Chat{
		ID:       req.ID,
		Name:     req.Name,
		Messages: req.Messages,
	}
	if chat.ID == "" {
		chat.ID = uuid.NewString()
		chat.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	} else if existing, err := h.store.LoadChat(c.Request.Context(), chat.ID); err == nil {
		chat.CreatedAt = existing.CreatedAt
	}

	if err := h.store.SaveChat(c.Request.Context(), chat); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": chat.ID})
}

func (h *Handler) handleRenameChat(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if err := h.store.RenameChat(c.Request.Context(), c.Param("id"), req.Name); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "renamed"})
}

func (h *Handler) handleDeleteChat(c *gin.Context) {
	if err := h.store.DeleteChat(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
