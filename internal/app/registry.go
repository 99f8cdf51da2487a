package app

import (
	"os"

	"github.com/canfinancialsolutions/can-registration-app/internal/mailer"
	"github.com/canfinancialsolutions/can-registration-app/internal/registration"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	m mailer.Mailer,
) error {
	// --- Repositories ---
	registrationRepo := registration.NewRepository(gormDB)

	// --- Services ---
	registrationService := registration.NewService(registrationRepo, m, registration.Options{
		FromName:         getenvDefault("FROM_NAME", "CAN Thrive Together Network"),
		LogoURL:          os.Getenv("LOGO_URL"),
		AdminNotifyEmail: os.Getenv("ADMIN_NOTIFY_EMAIL"),
	})

	// --- Handlers ---
	registrationHandler := registration.NewHandler(registrationService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		registration.RegisterRoutes(api, registrationHandler)
	}

	return nil
}
