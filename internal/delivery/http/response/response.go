package response

import (
	"encoding/json"
	"net/http"

	"kamenpro-backend/pkg/schemaorg"

	"github.com/gin-gonic/gin"
)

// Response is the body of a successful form submission
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, messageID string) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		MessageID: messageID,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// JSONLD sends a schema.org document with the JSON-LD media type
func JSONLD(c *gin.Context, doc interface{}) {
	data, err := json.Marshal(doc)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Data(http.StatusOK, schemaorg.ContentType+"; charset=utf-8", data)
}
