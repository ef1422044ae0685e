package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the uniform acknowledgment/error envelope.
type Message struct {
	Message string `json:"message"`
}

// OK writes a 200 with the serialized entity or list as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Empty writes a 200 with an empty object. Used when a single-resource read
// finds nothing: absence is an empty result, not an error.
func Empty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

// Ack writes a 200 acknowledgment envelope.
func Ack(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Message{Message: message})
}

// Error writes the uniform failure envelope. Every failure - validation, FK
// violation, internal - collapses to a 500 with a descriptive message.
func Error(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Message{Message: message})
}
