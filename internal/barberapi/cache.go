package barberapi

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

const cacheKey = "barberapi:barbers"

// NewCache returns the redis client used to cache directory responses, or nil
// when caching is disabled (no REDIS_ADDR) or redis is unreachable. The
// directory works without it.
func NewCache(cfg *config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Warn("redis unreachable, barber cache disabled", zap.Error(err))
		return nil
	}

	log.Info("barber cache enabled", zap.String("addr", cfg.RedisAddr))
	return client
}
