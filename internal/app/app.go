package app

import (
	"os"

	"github.com/canfinancialsolutions/can-registration-app/internal/mailer"
	"github.com/canfinancialsolutions/can-registration-app/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

// BuildApp menyiapkan infrastruktur (database, email provider) lalu
// mendaftarkan module beserta route-nya.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	mailjet := mailer.NewMailjetClient(mailer.MailjetConfig{
		APIKey:    os.Getenv("MAILJET_API_KEY"),
		SecretKey: os.Getenv("MAILJET_SECRET_KEY"),
		FromEmail: os.Getenv("FROM_EMAIL"),
		FromName:  getenvDefault("FROM_NAME", "CAN Thrive Together Network"),
		BCCEmail:  getenvDefault("BCC_EMAIL", "canfinancialsolutions@gmail.com"),
	})

	return registerModules(router, db, mailjet)
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
