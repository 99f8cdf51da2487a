package response

import (
	"github.com/gin-gonic/gin"
)

// ApiEnvelope is the fixed external contract: `ok` is always present, the
// rest only on the relevant branch. Error carries the user-facing message,
// Detail the raw upstream payload when one exists (e.g. a provider body).
type ApiEnvelope struct {
	Ok     bool   `json:"ok"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
	})
}

func Error(c *gin.Context, status int, message string, detail string) {
	c.JSON(status, ApiEnvelope{
		Ok:     false,
		Error:  message,
		Detail: detail,
	})
}
