package handlers

import (
	"encoding/xml"

	"github.com/gin-gonic/gin"

	"github.com/WynstelleID/finance-bot/internal/logger"
)

// messagingResponse is the TwiML envelope Twilio expects as a webhook reply.
type messagingResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// respondTwiML writes the reply text wrapped in a TwiML envelope.
func respondTwiML(c *gin.Context, status int, message string) {
	body, err := xml.Marshal(messagingResponse{Message: message})
	if err != nil {
		logger.Get().Errorw("failed to marshal TwiML response", "error", err)
		c.String(500, "internal error")
		return
	}
	c.Data(status, "text/xml; charset=utf-8", append([]byte(xml.Header), body...))
}
