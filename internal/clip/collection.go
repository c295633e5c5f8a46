package clip

// Collection is one animation clip: an ordered sequence of tracks.
type Collection struct {
	Name   string
	tracks []Track
}

// NewCollection creates a clip holding a copy of tracks in the given order.
func NewCollection(name string, tracks ...Track) *Collection {
	c := &Collection{Name: name}
	c.tracks = append(c.tracks, tracks...)
	return c
}

// ClipName returns the clip name.
func (c *Collection) ClipName() string { return c.Name }

// Tracks returns a copy of the clip's tracks in storage order.
func (c *Collection) Tracks() []Track {
	out := make([]Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// Len reports the number of tracks in the clip.
func (c *Collection) Len() int { return len(c.tracks) }

// Paths returns the path of every track in storage order.
func (c *Collection) Paths() []string {
	paths := make([]string, len(c.tracks))
	for i, t := range c.tracks {
		paths[i] = t.Path
	}
	return paths
}

// Rewrite replaces the clip's contents with tracks, in order. The in-memory
// clip never fails; other stores may.
func (c *Collection) Rewrite(tracks []Track) error {
	c.tracks = make([]Track, len(tracks))
	copy(c.tracks, tracks)
	return nil
}

// Append adds tracks at the end of the clip.
func (c *Collection) Append(tracks ...Track) {
	c.tracks = append(c.tracks, tracks...)
}
