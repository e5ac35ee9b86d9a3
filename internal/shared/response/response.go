package response

import "github.com/gin-gonic/gin"

// ErrorBody is the wire shape every failing endpoint returns.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Success writes the payload as-is. Rows and row arrays go out without an
// envelope, matching the portal's existing clients.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error writes the {error, details?} body.
func Error(c *gin.Context, status int, message string, details string) {
	c.JSON(status, ErrorBody{
		Error:   message,
		Details: details,
	})
}
