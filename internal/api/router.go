package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"travel-booking-backend/config"
	"travel-booking-backend/internal/inventory"
	"travel-booking-backend/internal/journal"
	"travel-booking-backend/internal/mw"
)

// NewRouter creates and configures a Gin router for one inventory
// instance. Availability reads are cached briefly; every successful
// mutation flushes the cache, so a stale read never outlives a booking.
func NewRouter(inv *inventory.Inventory, jp *journal.WorkerPool, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	responseCache := cache.New(ttl, 2*ttl)
	caching := mw.Cache(responseCache, ttl)
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, cfg.RequestIPHeader)

	handler := NewHandler(inv, jp, responseCache)

	r.Use(rateLimiter)

	r.GET("/dates", caching, handler.GetDates)
	r.GET("/seats/:date", caching, handler.GetSeats)
	r.POST("/book", handler.Book)
	r.POST("/cancel", handler.Cancel)

	return r
}
