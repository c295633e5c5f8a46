package core

import "github.com/Digital-Shane/anim-tidy/internal/clip"

// Ref is one track found while indexing, together with the position of the
// clip it came from.
type Ref struct {
	Clip  int
	Track clip.Track
}

// Entry groups every track of the batch that shares a path.
type Entry struct {
	Path string
	Refs []Ref
}

// Count returns the number of tracks at the entry's path.
func (e *Entry) Count() int { return len(e.Refs) }

// PathIndex groups the tracks of a batch by path. Paths keep the order they
// were first seen in, and tracks keep the order they were appended in. The
// index is a disposable view and must be rebuilt after the batch changes.
type PathIndex struct {
	keys    []string
	entries map[string]*Entry
}

// BuildIndex scans each clip of batch twice, curve tracks first and reference
// tracks second, and groups what it finds by path.
func BuildIndex(batch Batch) *PathIndex {
	idx := &PathIndex{entries: make(map[string]*Entry)}
	for i, store := range batch {
		tracks := store.Tracks()
		for _, t := range tracks {
			if t.Kind == clip.KindCurve {
				idx.add(i, t)
			}
		}
		for _, t := range tracks {
			if t.Kind != clip.KindCurve {
				idx.add(i, t)
			}
		}
	}
	return idx
}

func (idx *PathIndex) add(clipPos int, t clip.Track) {
	entry, ok := idx.entries[t.Path]
	if !ok {
		entry = &Entry{Path: t.Path}
		idx.entries[t.Path] = entry
		idx.keys = append(idx.keys, t.Path)
	}
	entry.Refs = append(entry.Refs, Ref{Clip: clipPos, Track: t})
}

// Paths returns every indexed path in first-seen order.
func (idx *PathIndex) Paths() []string {
	out := make([]string, len(idx.keys))
	copy(out, idx.keys)
	return out
}

// Entries returns the entries in path order.
func (idx *PathIndex) Entries() []*Entry {
	out := make([]*Entry, len(idx.keys))
	for i, k := range idx.keys {
		out[i] = idx.entries[k]
	}
	return out
}

// Entry returns the entry for path.
func (idx *PathIndex) Entry(path string) (*Entry, bool) {
	e, ok := idx.entries[path]
	return e, ok
}

// Has reports whether any track in the batch uses path.
func (idx *PathIndex) Has(path string) bool {
	_, ok := idx.entries[path]
	return ok
}

// Len returns the number of distinct paths.
func (idx *PathIndex) Len() int { return len(idx.keys) }

// stableTracks lays out the tracks of one clip in index order, passing each
// path through remap. Every track of the clip is emitted, moved or not, so the
// clip's layout depends only on the index and never on the edit.
func (idx *PathIndex) stableTracks(clipPos int, remap func(string) string) (tracks []clip.Track, changed int) {
	for _, key := range idx.keys {
		newPath := remap(key)
		for _, ref := range idx.entries[key].Refs {
			if ref.Clip != clipPos {
				continue
			}
			t := ref.Track
			if newPath != t.Path {
				t.Path = newPath
				changed++
			}
			tracks = append(tracks, t)
		}
	}
	return tracks, changed
}
