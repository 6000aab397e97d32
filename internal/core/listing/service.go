// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/taibuivan/linkdeck/internal/platform/constants"
)

// DefaultCacheTTL bounds how stale a cached board may get if an invalidation is lost.
const DefaultCacheTTL = 5 * time.Minute

// Service assembles the public board, going through the cache when present.
type Service struct {
	store  Store
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

/*
NewService constructs a listing [Service].

Parameters:
  - store: Store
  - cache: Cache (nil disables caching)
  - ttl: time.Duration (entry lifetime)
  - logger: *slog.Logger
*/
func NewService(store Store, cache Cache, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

/*
PublicGroups returns the public board.

Description: Cache failures are logged and fall through to the database;
they never fail the request.
*/
func (service *Service) PublicGroups(context context.Context) ([]PublicGroup, error) {
	if service.cache != nil {
		raw, found, err := service.cache.Get(context, constants.RedisKeyPublicListing)
		if err != nil {
			service.logger.WarnContext(context, "listing_cache_read_failed", slog.Any("error", err))
		}
		if found {
			var groups []PublicGroup
			if err := json.Unmarshal(raw, &groups); err == nil {
				return groups, nil
			}
			service.logger.WarnContext(context, "listing_cache_corrupt")
		}
	}

	groups, err := service.store.PublicGroups(context)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		raw, err := json.Marshal(groups)
		if err == nil {
			err = service.cache.Set(context, constants.RedisKeyPublicListing, raw, service.ttl)
		}
		if err != nil {
			service.logger.WarnContext(context, "listing_cache_write_failed", slog.Any("error", err))
		}
	}

	return groups, nil
}

// Invalidate drops the cached board. It is safe to call without a cache.
func (service *Service) Invalidate(context context.Context) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Delete(context, constants.RedisKeyPublicListing); err != nil {
		service.logger.WarnContext(context, "listing_cache_invalidate_failed", slog.Any("error", err))
	}
}
