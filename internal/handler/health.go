package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response. The store is a hard dependency;
// redis is reported only when the report cache is configured.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		body := gin.H{
			"ok": status == http.StatusOK,
			"db": dbStatus,
		}
		if rdb != nil {
			cacheStatus := "connected"
			if rdb.Ping(ctx).Err() != nil {
				cacheStatus = "error"
			}
			body["cache"] = cacheStatus
		}

		c.JSON(status, body)
	}
}
