package registration

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	registrations := r.Group("/registrations")
	{
		// Preflight OPTIONS dijawab oleh middleware CORS sebelum sampai sini.
		registrations.POST("", handler.Submit)
	}
}
