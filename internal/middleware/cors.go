package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS menempelkan header cross-origin yang jadi kontrak tetap dari form
// publik: semua origin boleh, method POST/OPTIONS saja. Preflight dijawab
// langsung tanpa menyentuh handler di belakangnya.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.String(http.StatusOK, "ok")
			c.Abort()
			return
		}

		c.Next()
	}
}
