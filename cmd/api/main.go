package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AnarosBeauty/salon-scheduler/internal/config"
	dbpkg "github.com/AnarosBeauty/salon-scheduler/internal/db"
	"github.com/AnarosBeauty/salon-scheduler/internal/middleware"
	"github.com/AnarosBeauty/salon-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logrus.WithFields(logrus.Fields{
		"addr":     cfg.Addr(),
		"timezone": cfg.Timezone,
		"driver":   cfg.DBDriver,
	}).Info("server running")

	if err := r.Run(cfg.Addr()); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
