package coupon

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"salon-admin/internal/model"

	"github.com/rs/zerolog"
)

// Book keeps the last-known list of active coupons.
// Reads are served from memory; Refresh replaces the list only when the source succeeds.
type Book struct {
	source Source
	finder Finder
	logger zerolog.Logger

	mu        sync.RWMutex
	coupons   []model.Coupon
	loadedAt  time.Time
	lastError error
}

// NewBook creates a coupon book over source. finder may be nil, in which case
// lookups are answered from the cached list only.
func NewBook(source Source, finder Finder, logger zerolog.Logger) *Book {
	return &Book{
		source: source,
		finder: finder,
		logger: logger.With().Str("component", "coupon-book").Logger(),
	}
}

// Refresh reloads the active coupons from the source.
// On failure the previous list is kept and the error returned.
func (b *Book) Refresh(ctx context.Context) error {
	coupons, err := b.source.Load(ctx)
	if err != nil {
		b.mu.Lock()
		b.lastError = err
		kept := len(b.coupons)
		b.mu.Unlock()

		b.logger.Error().
			Err(err).
			Int("kept_coupons", kept).
			Msg("failed to refresh coupons, keeping last-known list")
		return fmt.Errorf("failed to refresh coupons: %w", err)
	}

	b.mu.Lock()
	b.coupons = coupons
	b.loadedAt = time.Now()
	b.lastError = nil
	b.mu.Unlock()

	b.logger.Info().Int("coupons", len(coupons)).Msg("coupons refreshed")

	return nil
}

// Coupons returns a copy of the cached active coupons ordered by code.
func (b *Book) Coupons() []model.Coupon {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]model.Coupon, len(b.coupons))
	copy(out, b.coupons)
	return out
}

// Search filters the cached coupons by code or description.
func (b *Book) Search(query string) []model.Coupon {
	return Search(b.Coupons(), query)
}

// LoadedAt returns when the list was last refreshed successfully and the last refresh error.
func (b *Book) LoadedAt() (time.Time, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loadedAt, b.lastError
}

// GetByID returns the coupon with the given id from the cache, or from the
// finder when it is not cached. Lookup failures are logged and yield nil.
func (b *Book) GetByID(ctx context.Context, id string) *model.Coupon {
	if c := b.cached(func(c model.Coupon) bool { return c.ID == id }); c != nil {
		return c
	}
	if b.finder == nil {
		return nil
	}

	c, err := b.finder.FindByID(ctx, id)
	if err != nil {
		b.logger.Error().Err(err).Str("coupon_id", id).Msg("failed to fetch coupon by ID")
		return nil
	}
	return c
}

// ValidateCode returns the active coupon with the given code, or nil.
// The finder is consulted first so deactivated coupons are rejected before the next refresh.
func (b *Book) ValidateCode(ctx context.Context, code string) *model.Coupon {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}

	if b.finder != nil {
		c, err := b.finder.FindActiveByCode(ctx, code)
		if err == nil {
			return c
		}
		b.logger.Warn().Err(err).Str("coupon_code", code).Msg("failed to validate coupon code, using cached coupons")
	}

	return b.cached(func(c model.Coupon) bool { return c.Code == code && c.IsActive })
}

func (b *Book) cached(match func(model.Coupon) bool) *model.Coupon {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i := range b.coupons {
		if match(b.coupons[i]) {
			c := b.coupons[i]
			return &c
		}
	}
	return nil
}
