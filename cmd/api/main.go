package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/barberapi"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/infra/store"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(cfg)
	defer log.Sync()

	bookingStore := newStore(cfg, log)

	cache := barberapi.NewCache(cfg, log)
	directory := barberapi.NewClient(cfg, cache, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Barber Booking System API is running!",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	routes.RegisterRoutes(r, cfg, log, bookingStore, directory)

	log.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("store", cfg.StoreBackend),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func newStore(cfg *config.Config, log *zap.Logger) domain.Store {
	switch cfg.StoreBackend {
	case "memory":
		return store.NewMemoryStore()
	case "file":
		s, err := store.NewFileStore(cfg.DataDir, log)
		if err != nil {
			log.Fatal("failed to open booking store", zap.Error(err))
		}
		return s
	default:
		log.Fatal("unknown store backend", zap.String("backend", cfg.StoreBackend))
		return nil
	}
}
