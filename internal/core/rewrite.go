package core

import (
	"errors"
	"fmt"

	"github.com/Digital-Shane/anim-tidy/internal/clip"
)

// Options controls how a mutating operation applies to a batch.
type Options struct {
	// Scope selects the clips that get rewritten.
	Scope Scope
	// Transactional restores every clip already rewritten when a later clip
	// fails to store. Without it a failure leaves earlier clips changed.
	Transactional bool
}

// DefaultOptions rewrites every clip without rollback.
func DefaultOptions() Options {
	return Options{Scope: ScopeAll}
}

// RewriteResult summarizes a completed rewrite.
type RewriteResult struct {
	Clips   int // clips rewritten
	Tracks  int // tracks removed and reinserted
	Changed int // tracks whose path changed
}

// rewriteBatch stores the stable layout of every clip in scope, remapping
// paths on the way.
func rewriteBatch(batch Batch, idx *PathIndex, remap func(string) string, opts Options) (RewriteResult, error) {
	var result RewriteResult
	if err := opts.Scope.validate(batch); err != nil {
		return result, err
	}

	var snapshots map[int][]clip.Track
	if opts.Transactional {
		snapshots = make(map[int][]clip.Track, len(batch))
		for i, store := range batch {
			if opts.Scope.includes(i) {
				snapshots[i] = store.Tracks()
			}
		}
	}

	for i, store := range batch {
		if !opts.Scope.includes(i) {
			continue
		}
		tracks, changed := idx.stableTracks(i, remap)
		if err := store.Rewrite(tracks); err != nil {
			err = fmt.Errorf("rewrite clip %q: %w", store.ClipName(), err)
			if opts.Transactional {
				return RewriteResult{}, errors.Join(err, restore(batch, snapshots, i))
			}
			return result, err
		}
		result.Clips++
		result.Tracks += len(tracks)
		result.Changed += changed
	}
	return result, nil
}

// restore puts back the snapshots of clips 0..failed, including the clip
// whose store reported the failure.
func restore(batch Batch, snapshots map[int][]clip.Track, failed int) error {
	var errs []error
	for i := failed; i >= 0; i-- {
		tracks, ok := snapshots[i]
		if !ok {
			continue
		}
		if err := batch[i].Rewrite(tracks); err != nil {
			errs = append(errs, fmt.Errorf("restore clip %q: %w", batch[i].ClipName(), err))
		}
	}
	return errors.Join(errs...)
}
