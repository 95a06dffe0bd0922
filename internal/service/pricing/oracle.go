// Package pricing resolves the silver spot price through a cached oracle
// that never fails: every cache miss resolves to a live quote or the
// configured fallback within a single fetch attempt.
package pricing

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
	"github.com/OilLobbyist/silver-tracker/pkg/clients/goldapi"
)

const (
	// DefaultTTL bounds how long a resolved quote is served before the
	// next resolution attempt.
	DefaultTTL = 300 * time.Second

	// DefaultFallbackPrice is the USD spot substitute used when no live
	// quote can be obtained.
	DefaultFallbackPrice = 69.00
)

// Source provides spot price quotes. Implemented by Oracle; consumers depend
// on this interface so tests can substitute fixed prices.
type Source interface {
	Price(ctx context.Context) models.PriceQuote
}

// Oracle memoizes the most recent quote for a TTL. Failures degrade to the
// fallback price, and that resolution is cached like any other so a flapping
// upstream is hit at most once per TTL window.
type Oracle struct {
	client   goldapi.Client
	fallback float64
	logger   *zap.Logger
	now      func() time.Time
	cache    quoteCache
}

var _ Source = (*Oracle)(nil)

// NewOracle builds an oracle over client. A nil client means no API
// credential is configured; the oracle then never touches the network.
func NewOracle(client goldapi.Client, ttl time.Duration, fallbackPrice float64, logger *zap.Logger) *Oracle {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if fallbackPrice <= 0 {
		fallbackPrice = DefaultFallbackPrice
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Oracle{
		client:   client,
		fallback: fallbackPrice,
		logger:   logger,
		now:      time.Now,
		cache:    quoteCache{ttl: ttl},
	}
}

// Price returns the current spot quote. It is total: every failure path
// resolves to the fallback, so callers always receive a positive value.
func (o *Oracle) Price(ctx context.Context) models.PriceQuote {
	now := o.now()
	if q, ok := o.cache.get(now); ok {
		return q
	}
	q := o.resolve(ctx, now)
	o.cache.set(q)
	return q
}

func (o *Oracle) resolve(ctx context.Context, now time.Time) models.PriceQuote {
	if o.client == nil {
		o.logger.Info("metals api key not configured, serving fallback spot price",
			zap.Float64("fallback", o.fallback))
		return o.fallbackQuote(now)
	}

	price, err := o.client.SpotPrice(ctx)
	if err != nil {
		o.logger.Warn("spot price fetch failed, serving fallback",
			zap.Error(err),
			zap.Float64("fallback", o.fallback))
		return o.fallbackQuote(now)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		o.logger.Warn("spot price fetch returned a non-positive value, serving fallback",
			zap.Float64("price", price),
			zap.Float64("fallback", o.fallback))
		return o.fallbackQuote(now)
	}

	o.logger.Debug("spot price refreshed", zap.Float64("price", price))
	return models.PriceQuote{Value: price, FetchedAt: now, Source: models.SourceLive}
}

func (o *Oracle) fallbackQuote(now time.Time) models.PriceQuote {
	return models.PriceQuote{Value: o.fallback, FetchedAt: now, Source: models.SourceFallback}
}
