package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"visacrony-gateway/internal/channel"
	"visacrony-gateway/internal/models"
)

// Ledger is the read side of the store used by the back office.
type Ledger interface {
	RecentSubmissions(ctx context.Context, form string, limit int) ([]models.Submission, error)
	GetSubmission(ctx context.Context, reference string) (*models.Submission, error)
	RecentMessages(ctx context.Context, limit int) ([]models.Message, error)
	Conversation(ctx context.Context, sender string, limit int) ([]models.Message, error)
}

type DashboardHandler struct {
	Store  Ledger
	Client channel.TextSender
}

func NewDashboardHandler(store Ledger, client channel.TextSender) *DashboardHandler {
	return &DashboardHandler{Store: store, Client: client}
}

func queryLimit(c *gin.Context) int {
	n, _ := strconv.Atoi(c.Query("limit"))
	return n
}

func (h *DashboardHandler) GetMessages(c *gin.Context) {
	var (
		messages []models.Message
		err      error
	)
	if sender := c.Query("sender"); sender != "" {
		messages, err = h.Store.Conversation(c.Request.Context(), sender, queryLimit(c))
	} else {
		messages, err = h.Store.RecentMessages(c.Request.Context(), queryLimit(c))
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Return empty array instead of null
	if messages == nil {
		messages = []models.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

func (h *DashboardHandler) GetSubmissions(c *gin.Context) {
	subs, err := h.Store.RecentSubmissions(c.Request.Context(), c.Query("form"), queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	c.JSON(http.StatusOK, subs)
}

func (h *DashboardHandler) GetSubmission(c *gin.Context) {
	sub, err := h.Store.GetSubmission(c.Request.Context(), c.Param("reference"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

type SendRequest struct {
	To      string `json:"to"`
	Content string `json:"content"`
}

// SendMessage lets staff answer a visitor who wrote in over WhatsApp.
func (h *DashboardHandler) SendMessage(c *gin.Context) {
	if h.Client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WhatsApp Cloud API is not configured"})
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.To) == "" || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to and content are required"})
		return
	}

	if err := h.Client.SendMessage(c.Request.Context(), req.To, req.Content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Message sent"})
}
