// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package store

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/collisions/collision"
	"github.com/cybrota/collisions/report"
)

const (
	// DefaultReportTTL keeps computed reports for 30 minutes
	DefaultReportTTL = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	reportCacheCleanup = 5 * time.Minute
)

// newReportCache creates the cache holding computed summaries
func newReportCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		ttl = DefaultReportTTL
	}
	return cache.New(ttl, reportCacheCleanup)
}

func reportKey(zone string, begin, end collision.Date) string {
	return zone + "|" + begin.String() + "|" + end.String()
}

func cacheReport(c *cache.Cache, key string, s report.Summary) {
	// Set rather than Add so a recomputed report replaces a stale one
	c.Set(key, s, cache.DefaultExpiration)
}

func cachedReport(c *cache.Cache, key string) (report.Summary, bool) {
	val, ok := c.Get(key)
	if !ok {
		return report.Summary{}, false
	}
	s, ok := val.(report.Summary)
	return s, ok
}
