package response

import "github.com/gin-gonic/gin"

// Envelope is the JSON shape every endpoint replies with.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Error     any    `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	v, _ := c.Get("RequestID")
	id, _ := v.(string)
	return id
}

// Success writes a success envelope with the given status code.
func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error writes a failure envelope with the given status code.
func Error(c *gin.Context, code int, message string, detail any) {
	c.JSON(code, Envelope{
		Success:   false,
		Message:   message,
		Error:     detail,
		RequestID: requestID(c),
	})
}
