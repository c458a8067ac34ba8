package powermodule

import (
	"crypto/md5"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/GoCodeAlone/powermodule/cache"
)

const sortCacheKeyPrefix = "module_dependencies_"

// CachingSorter remembers the orderings computed by another sorter. The
// cache key depends only on the set of names, not their order. Cache
// failures never fail a sort: a failed read is a miss and a failed write
// still returns the computed order.
type CachingSorter struct {
	sorter ModuleDependencySorter
	cache  cache.Cache
	logger Logger
}

func NewCachingSorter(sorter ModuleDependencySorter, c cache.Cache, logger Logger) *CachingSorter {
	if logger == nil {
		logger = nopLogger{}
	}
	return &CachingSorter{sorter: sorter, cache: c, logger: logger}
}

func (s *CachingSorter) Sort(names []string) ([]string, error) {
	key := sortCacheKey(names)

	var cached []string
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.logger.Debug("Module order cache read failed", "key", key, "error", err)
	} else if found {
		s.logger.Debug("Module order served from cache", "key", key)
		return cached, nil
	}

	sorted, err := s.sorter.Sort(names)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(key, sorted, 0); err != nil {
		s.logger.Warn("Module order cache write failed", "key", key, "error", err)
	}
	return sorted, nil
}

func sortCacheKey(names []string) string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sum := md5.Sum([]byte(strings.Join(sorted, ",")))
	return sortCacheKeyPrefix + hex.EncodeToString(sum[:])
}
