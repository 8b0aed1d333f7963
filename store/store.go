// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package store owns the collision index and answers report queries against it.
package store

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/willf/bloom"

	"github.com/cybrota/collisions/collision"
	"github.com/cybrota/collisions/index"
	"github.com/cybrota/collisions/report"
)

const (
	DefaultZoneFilterSize   = 1 << 16
	DefaultZoneFilterHashes = 5
)

type Options struct {
	ZoneFilterSize   uint
	ZoneFilterHashes uint
	ReportTTL        time.Duration
}

func DefaultOptions() Options {
	return Options{
		ZoneFilterSize:   DefaultZoneFilterSize,
		ZoneFilterHashes: DefaultZoneFilterHashes,
		ReportTTL:        DefaultReportTTL,
	}
}

// Store is the single owner of a collision tree. A bloom filter over the zip
// codes ever added lets queries for unknown zips skip the tree, and computed
// summaries are cached until the next mutation.
//
// Store is not safe for concurrent use.
type Store struct {
	tree    *index.Tree
	zones   *bloom.BloomFilter
	reports *cache.Cache
	log     zerolog.Logger
}

func New(opts Options, log zerolog.Logger) *Store {
	if opts.ZoneFilterSize == 0 {
		opts.ZoneFilterSize = DefaultZoneFilterSize
	}
	if opts.ZoneFilterHashes == 0 {
		opts.ZoneFilterHashes = DefaultZoneFilterHashes
	}
	return &Store{
		tree:    index.New(),
		zones:   bloom.New(opts.ZoneFilterSize, opts.ZoneFilterHashes),
		reports: newReportCache(opts.ReportTTL),
		log:     log,
	}
}

// Add inserts r. It reports false when an equal record is already stored.
func (s *Store) Add(r *collision.Record) (bool, error) {
	added, err := s.tree.Insert(r)
	if err != nil {
		return false, err
	}
	if added {
		s.zones.AddString(r.Zone())
		s.reports.Flush()
	}
	return added, nil
}

// Remove deletes r and reports whether it was stored. Removed zips stay in
// the bloom filter; a stale positive only costs a tree descent.
func (s *Store) Remove(r *collision.Record) bool {
	if !s.tree.Remove(r) {
		return false
	}
	s.reports.Flush()
	return true
}

func (s *Store) Contains(r *collision.Record) bool {
	return s.tree.Contains(r)
}

func (s *Store) Len() int {
	return s.tree.Len()
}

// Collect returns the records of zone dated within [begin, end].
func (s *Store) Collect(zone string, begin, end collision.Date) ([]*collision.Record, error) {
	if !index.ValidZone(zone) {
		return nil, fmt.Errorf("%w: %q", index.ErrInvalidZone, zone)
	}
	if !s.zones.TestString(zone) {
		s.log.Debug().Str("zip", zone).Msg("zip code not indexed")
		return nil, nil
	}
	return s.tree.Collect(zone, begin, end)
}

// Report summarizes the collisions of zone between begin and end, inclusive.
func (s *Store) Report(zone string, begin, end collision.Date) (report.Summary, error) {
	key := reportKey(zone, begin, end)
	if summary, ok := cachedReport(s.reports, key); ok {
		s.log.Debug().Str("zip", zone).Msg("report served from cache")
		return summary, nil
	}

	records, err := s.Collect(zone, begin, end)
	if err != nil {
		return report.Summary{}, err
	}
	summary := report.Aggregate(zone, begin, end, records)
	cacheReport(s.reports, key, summary)
	return summary, nil
}

// Dump returns the tree's debug view.
func (s *Store) Dump() string {
	return s.tree.Dump()
}
