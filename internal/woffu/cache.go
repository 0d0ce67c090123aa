package woffu

// cache is a process-lifetime response cache keyed by semantic request keys
// such as "users" or "monthly_diaries_<userId>_<year>_<month>". It is owned
// by a single Client and never evicts.
type cache struct {
	entries map[string]any
}

func newCache() *cache {
	return &cache{entries: make(map[string]any)}
}

func (c *cache) get(key string) (any, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *cache) put(key string, v any) {
	c.entries[key] = v
}
