package api

import (
	"github.com/patrickmn/go-cache"

	"travel-booking-backend/internal/inventory"
	"travel-booking-backend/internal/journal"
)

// Handler holds shared dependencies for API handlers. The journal pool and
// response cache are optional; handlers tolerate either being nil.
type Handler struct {
	inv     *inventory.Inventory
	journal *journal.WorkerPool
	cache   *cache.Cache
}

// NewHandler creates a new API handler for one inventory instance.
func NewHandler(inv *inventory.Inventory, jp *journal.WorkerPool, responseCache *cache.Cache) *Handler {
	return &Handler{
		inv:     inv,
		journal: jp,
		cache:   responseCache,
	}
}

// mutated flushes cached availability responses after a successful write.
func (h *Handler) mutated() {
	if h.cache != nil {
		h.cache.Flush()
	}
}
