package hierarchy

import (
	"strings"

	"github.com/patrickmn/go-cache"
)

// Finder looks objects up by path below an anchor. Successful lookups are
// cached until Flush is called, so callers must flush after reparenting or
// renaming objects.
type Finder struct {
	cache *cache.Cache
}

// NewFinder creates a finder with an empty, non-expiring cache.
func NewFinder() *Finder {
	return &Finder{cache: cache.New(cache.NoExpiration, 0)}
}

// Find walks path one segment at a time from anchor, matching the first child
// with the segment's name. The empty path addresses the anchor itself.
func (f *Finder) Find(anchor *Node, path string) (*Node, bool) {
	if anchor == nil {
		return nil, false
	}
	if path == "" {
		return anchor, true
	}

	cacheKey := anchor.ID() + "\x00" + path
	if cached, found := f.cache.Get(cacheKey); found {
		return cached.(*Node), true
	}

	current := anchor
	for _, segment := range strings.Split(path, "/") {
		current = childNamed(current, segment)
		if current == nil {
			return nil, false
		}
	}

	f.cache.Set(cacheKey, current, cache.NoExpiration)
	return current, true
}

// Flush drops every cached lookup.
func (f *Finder) Flush() { f.cache.Flush() }

func childNamed(parent *Node, name string) *Node {
	for _, child := range parent.Children() {
		if child.Name() == name {
			return child
		}
	}
	return nil
}
