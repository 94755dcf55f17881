// SPDX-License-Identifier: MIT

package server

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/katalvlaran/spherelab/internal/metrics"
)

// analysisCache memoises derived analysis per session revision. Entries of
// older revisions are never read again and age out of the LRU.
type analysisCache struct {
	lru *lru.Cache
}

func newAnalysisCache(size int) (*analysisCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("server: analysis cache: %w", err)
	}

	return &analysisCache{lru: c}, nil
}

// cacheKey identifies one analysis: session, revision, kind and parameters.
func cacheKey(id string, revision uint64, kind string, params ...any) string {
	return fmt.Sprintf("%s/%d/%s/%v", id, revision, kind, params)
}

func (c *analysisCache) get(key string) (any, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		metrics.CacheHits.Inc()
	} else {
		metrics.CacheMisses.Inc()
	}

	return v, ok
}

func (c *analysisCache) add(key string, v any) {
	c.lru.Add(key, v)
}
