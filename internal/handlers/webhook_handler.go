// Package handlers contains the Gin HTTP handlers: the messaging webhook,
// health endpoints, and the report download endpoint.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WynstelleID/finance-bot/internal/bot"
	"github.com/WynstelleID/finance-bot/internal/logger"
)

// WebhookHandler handles inbound messages from the messaging transport.
type WebhookHandler struct {
	dispatcher *bot.Dispatcher
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(dispatcher *bot.Dispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

// webhookRequest is the form-encoded payload Twilio posts for each message.
type webhookRequest struct {
	From string `form:"From" binding:"required"`
	Body string `form:"Body" binding:"required"`
}

// Receive processes one inbound message and replies with TwiML.
// Missing parameters yield a 400 with a TwiML error body; a failure before
// dispatch could even start degrades to a generic unavailable reply.
func (h *WebhookHandler) Receive(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Errorw("panic in webhook", "panic", r, "path", c.Request.URL.Path)
			respondTwiML(c, http.StatusInternalServerError, "Service temporarily unavailable. Please try again later.")
		}
	}()

	var req webhookRequest
	if err := c.ShouldBind(&req); err != nil {
		respondTwiML(c, http.StatusBadRequest, "Error: Missing 'From' or 'Body' parameters in message.")
		return
	}

	reply := h.dispatcher.HandleMessage(req.From, req.Body)
	respondTwiML(c, http.StatusOK, reply)
}

// Status answers GET probes on the webhook path.
func (h *WebhookHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "webhook endpoint is working",
		"method": http.MethodGet,
	})
}
