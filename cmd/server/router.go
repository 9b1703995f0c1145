package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"laundrylink.backend/pkg/redis"
)

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func registerHealthRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "laundrylink-backend",
		})
	})

	// Deep health check pings the backing stores
	r.GET("/health/deep", func(c *gin.Context) {
		status := http.StatusOK
		dbStatus := "ok"
		redisStatus := "ok"

		if sqlDB, err := db.DB(); err != nil {
			dbStatus = err.Error()
			status = http.StatusServiceUnavailable
		} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			dbStatus = err.Error()
			status = http.StatusServiceUnavailable
		}

		if err := redis.Ping(c.Request.Context()); err != nil {
			redisStatus = err.Error()
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
