// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
)

// defaultSweepInterval is used when the configured interval is not positive.
const defaultSweepInterval = time.Hour

// CartSweeper periodically removes carts, with their items, that were not
// updated for longer than ttl.
type CartSweeper struct {
	carts    store.CartRepository
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewCartSweeper(carts store.CartRepository, ttl, interval time.Duration, logger *logger.Logger) *CartSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &CartSweeper{
		carts:    carts,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is cancelled.
func (c *CartSweeper) Run(ctx context.Context) {
	c.logger.Info().
		Dur("ttl", c.ttl).
		Dur("interval", c.interval).
		Msg("cart sweeper started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("cart sweeper stopped")
			return
		case <-ticker.C:
			c.Sweep(ctx)
		}
	}
}

// Sweep removes the carts last updated before now minus ttl and returns how
// many were removed. Failures are logged and reported as zero.
func (c *CartSweeper) Sweep(ctx context.Context) int64 {
	before := c.now().Add(-c.ttl)

	removed, err := c.carts.DeleteStaleCarts(c.logger.WithContext(ctx), before)
	if err != nil {
		c.logger.Err(err).Time("before", before).Msg("error removing stale carts")
		return 0
	}

	if removed > 0 {
		c.logger.Info().Int64("removed", removed).Time("before", before).Msg("stale carts removed")
	}
	return removed
}
