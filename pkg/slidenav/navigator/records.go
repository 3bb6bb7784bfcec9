package navigator

import (
	"cmp"
	"slices"
)

// recordCache holds view records keyed by hash, bounded to maxSize entries.
// Records are evicted in the order they were last written.
type recordCache struct {
	records map[string]ViewInfo
	order   []string // tracks write order for eviction
	maxSize int
}

func newRecordCache(maxSize int) *recordCache {
	return &recordCache{
		records: make(map[string]ViewInfo),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *recordCache) Get(hash string) (ViewInfo, bool) {
	info, ok := c.records[hash]
	return info, ok
}

func (c *recordCache) Set(hash string, info ViewInfo) {
	if _, exists := c.records[hash]; exists {
		c.records[hash] = info
		c.moveToEnd(hash)
		return
	}

	if c.maxSize > 0 && len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.records[hash] = info
	c.order = append(c.order, hash)
}

func (c *recordCache) Len() int {
	return len(c.order)
}

func (c *recordCache) moveToEnd(hash string) {
	for i, k := range c.order {
		if k == hash {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, hash)
			return
		}
	}
}

func (c *recordCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.records, oldest)
}

// Snapshot returns a copy of every record.
func (c *recordCache) Snapshot() map[string]ViewInfo {
	out := make(map[string]ViewInfo, len(c.records))
	for hash, info := range c.records {
		info.Args = slices.Clone(info.Args)
		out[hash] = info
	}
	return out
}

// load replaces the cache content, oldest timestamp first.
func (c *recordCache) load(records map[string]ViewInfo) {
	c.Clear()

	hashes := make([]string, 0, len(records))
	for hash := range records {
		hashes = append(hashes, hash)
	}
	slices.SortFunc(hashes, func(a, b string) int {
		return cmp.Compare(records[a].Timestamp, records[b].Timestamp)
	})

	for _, hash := range hashes {
		c.Set(hash, records[hash])
	}
}

func (c *recordCache) Clear() {
	c.records = make(map[string]ViewInfo)
	c.order = c.order[:0]
}
