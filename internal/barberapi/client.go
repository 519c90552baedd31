package barberapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Client fetches the barber directory from the external provider. Responses
// are cached in redis when a cache client is configured; when the provider is
// unreachable and fallback is enabled, the embedded default dataset is served
// so the booking flow stays usable.
type Client struct {
	url      string
	apiKey   string
	http     *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
	fallback bool
	log      *zap.Logger
}

func NewClient(cfg *config.Config, cache *redis.Client, log *zap.Logger) *Client {
	return &Client{
		url:    cfg.BarberAPIURL,
		apiKey: cfg.BarberAPIKey,
		http: &http.Client{
			Timeout: cfg.BarberAPITimeout,
		},
		cache:    cache,
		cacheTTL: cfg.BarberCacheTTL,
		fallback: cfg.BarberFallback,
		log:      log,
	}
}

func (c *Client) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	if barbers, ok := c.fromCache(ctx); ok {
		return barbers, nil
	}

	barbers, err := c.fetch(ctx)
	if err != nil {
		if c.fallback {
			c.log.Warn("barber provider unreachable, serving fallback dataset", zap.Error(err))
			return defaultBarbers(), nil
		}
		c.log.Error("barber provider unreachable", zap.Error(err))
		return nil, httperr.ErrBusiness(httperr.CodeProviderUnavailable)
	}

	c.toCache(ctx, barbers)
	return barbers, nil
}

func (c *Client) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	barbers, err := c.ListBarbers(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range barbers {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
}

func (c *Client) fetch(ctx context.Context) ([]models.Barber, error) {
	if c.url == "" {
		return nil, errors.New("barber api url not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("barber api returned status %d", resp.StatusCode)
	}

	var barbers []models.Barber
	if err := json.NewDecoder(resp.Body).Decode(&barbers); err != nil {
		return nil, fmt.Errorf("decode barber api response: %w", err)
	}

	return barbers, nil
}

func (c *Client) fromCache(ctx context.Context) ([]models.Barber, bool) {
	if c.cache == nil {
		return nil, false
	}

	raw, err := c.cache.Get(ctx, cacheKey).Result()
	if err != nil {
		return nil, false
	}

	var barbers []models.Barber
	if err := json.Unmarshal([]byte(raw), &barbers); err != nil {
		return nil, false
	}
	return barbers, true
}

func (c *Client) toCache(ctx context.Context, barbers []models.Barber) {
	if c.cache == nil {
		return
	}

	raw, err := json.Marshal(barbers)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKey, raw, c.cacheTTL).Err(); err != nil {
		c.log.Debug("barber cache write failed", zap.Error(err))
	}
}

// Compile-time check
var _ domain.Directory = (*Client)(nil)
