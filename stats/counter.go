package stats

import "sort"

// ============================================================================
// COUNTER - Insertion-Ordered Frequency Table
// ============================================================================
// Ranking ties are broken by first-seen order, so the table must remember
// the order keys were first inserted. A bare map would reorder on
// iteration; this pairs the map with an order slice.
// ============================================================================

// Counter counts string keys while preserving first-insertion order.
// The zero value is not usable; construct with NewCounter.
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments key by one.
func (c *Counter) Add(key string) {
	c.AddN(key, 1)
}

// AddN increments key by n. First insertion fixes the key's rank-tie
// position.
func (c *Counter) AddN(key string, n int) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// Get returns the count for key (0 if never added).
func (c *Counter) Get(key string) int {
	return c.counts[key]
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Keys returns the distinct keys in first-insertion order.
func (c *Counter) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// MostCommon returns up to n entries ordered by descending count, ties
// broken by first-insertion order. n <= 0 returns all entries.
func (c *Counter) MostCommon(n int) []NameCount {
	entries := make([]NameCount, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, NameCount{Name: key, Count: c.counts[key]})
	}

	// Stable sort keeps insertion order within equal counts.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Max returns the key with the highest count, ties broken by
// first-insertion order. Returns "" for an empty counter.
func (c *Counter) Max() string {
	if len(c.order) == 0 {
		return ""
	}
	best := c.order[0]
	for _, key := range c.order[1:] {
		if c.counts[key] > c.counts[best] {
			best = key
		}
	}
	return best
}
