package core

import (
	"fmt"

	"github.com/Digital-Shane/anim-tidy/internal/clip"
)

// Store is the host-owned track storage of one clip. The engine never keeps
// tracks of its own; it reads them from the store and writes a complete,
// reordered replacement back.
type Store interface {
	ClipName() string
	Tracks() []clip.Track
	Rewrite(tracks []clip.Track) error
}

// Batch is the ordered set of clips edited together. All clips in a batch
// share one path space.
type Batch []Store

// BatchOf wraps in-memory clips as a batch.
func BatchOf(clips ...*clip.Collection) Batch {
	batch := make(Batch, len(clips))
	for i, c := range clips {
		batch[i] = c
	}
	return batch
}

// Scope selects which clips of a batch a mutating operation rewrites. The
// zero Scope covers the whole batch. Collision checks always consider the
// whole batch.
type Scope struct {
	limited bool
	only    int
}

// ScopeAll rewrites every clip in the batch.
var ScopeAll = Scope{}

// OnlyClip limits a rewrite to the clip at position i of the batch.
func OnlyClip(i int) Scope { return Scope{limited: true, only: i} }

// IsAll reports whether the scope covers the whole batch.
func (s Scope) IsAll() bool { return !s.limited }

func (s Scope) includes(i int) bool { return !s.limited || s.only == i }

func (s Scope) validate(batch Batch) error {
	if s.limited && (s.only < 0 || s.only >= len(batch)) {
		return fmt.Errorf("%w: clip %d of %d", ErrScopeOutOfRange, s.only, len(batch))
	}
	return nil
}

func (s Scope) String() string {
	if s.IsAll() {
		return "all clips"
	}
	return fmt.Sprintf("clip %d", s.only)
}
