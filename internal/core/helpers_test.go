package core

import (
	"errors"

	"github.com/Digital-Shane/anim-tidy/internal/clip"
)

var errStoreWrite = errors.New("store write failed")

// flakyStore fails the first failures calls to Rewrite.
type flakyStore struct {
	*clip.Collection
	failures int
	writes   int
}

func (s *flakyStore) Rewrite(tracks []clip.Track) error {
	s.writes++
	if s.failures > 0 {
		s.failures--
		return errStoreWrite
	}
	return s.Collection.Rewrite(tracks)
}

func curve(path, prop string) clip.Track {
	return clip.NewCurveTrack(path, clip.PropertyKey{Component: "Transform", Property: prop},
		clip.Keyframe{Time: 0, Value: 1}, clip.Keyframe{Time: 1, Value: 2})
}

func ref(path, prop string) clip.Track {
	return clip.NewReferenceTrack(path, clip.PropertyKey{Component: "SpriteRenderer", Property: prop},
		clip.ReferenceKeyframe{Time: 0, Ref: "sprite_a"})
}

func curvesAt(paths ...string) []clip.Track {
	tracks := make([]clip.Track, len(paths))
	for i, p := range paths {
		tracks[i] = curve(p, "m_LocalPosition.x")
	}
	return tracks
}
