package main

import (
	"net/http"
	"os"
	"time"

	"github.com/canfinancialsolutions/can-registration-app/internal/app"
	"github.com/canfinancialsolutions/can-registration-app/internal/bootstrap"
	"github.com/canfinancialsolutions/can-registration-app/internal/middleware"
	"github.com/canfinancialsolutions/can-registration-app/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Method not allowed", "")
	})
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	// build dependency + routes
	if err := app.BuildApp(r); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	bootstrap.StartHTTPServer(r, bootstrap.ServerConfig{
		Port:         port,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
}
