package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/zaidJawa/salon/internal/cache"
	"github.com/zaidJawa/salon/internal/config"
	dbpkg "github.com/zaidJawa/salon/internal/db"
	"github.com/zaidJawa/salon/internal/logging"
	"github.com/zaidJawa/salon/internal/metrics"
	"github.com/zaidJawa/salon/internal/middleware"
	"github.com/zaidJawa/salon/internal/routes"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	db := dbpkg.NewDB(cfg)

	// Redis is optional; without it salon reads skip the cache.
	var salonCache *cache.SalonCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		salonCache = cache.NewSalonCache(rdb, cache.DefaultTTL, logger)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	routes.RegisterRoutes(r, db, cfg, salonCache, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
