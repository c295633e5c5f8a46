package hierarchy

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrAnchorNotConfigured is returned when a path is requested before an
	// anchor object has been chosen.
	ErrAnchorNotConfigured = errors.New("anchor not configured")
	// ErrTargetNotUnderAnchor is returned when an object's parent chain ends
	// without passing through the anchor.
	ErrTargetNotUnderAnchor = errors.New("object does not belong to anchor")
)

// ResolveError describes a failed path resolution. It unwraps to one of the
// package sentinel errors.
type ResolveError struct {
	Anchor string
	Target string
	Err    error
}

func (e *ResolveError) Error() string {
	if errors.Is(e.Err, ErrAnchorNotConfigured) {
		return fmt.Sprintf("resolve %q: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("resolve %q: %v %q", e.Target, e.Err, e.Anchor)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// ResolvePath returns the path of target relative to anchor. The anchor itself
// resolves to the empty root path; objects directly below it have no leading
// separator.
func ResolvePath(anchor, target *Node) (string, error) {
	if anchor == nil {
		return "", &ResolveError{Target: nodeName(target), Err: ErrAnchorNotConfigured}
	}

	var segments []string
	for n := target; n != anchor; n = n.Parent() {
		if n == nil {
			return "", &ResolveError{Anchor: anchor.Name(), Target: nodeName(target), Err: ErrTargetNotUnderAnchor}
		}
		segments = append(segments, n.Name())
	}
	slices.Reverse(segments)
	return strings.Join(segments, "/"), nil
}

func nodeName(n *Node) string {
	if n == nil {
		return ""
	}
	return n.Name()
}

// Resolver resolves paths against a configurable anchor.
type Resolver struct {
	anchor *Node
	finder *Finder
}

// NewResolver creates a resolver anchored at anchor, which may be nil until the
// caller picks one.
func NewResolver(anchor *Node) *Resolver {
	return &Resolver{anchor: anchor, finder: NewFinder()}
}

// Anchor returns the configured anchor, or nil.
func (r *Resolver) Anchor() *Node { return r.anchor }

// SetAnchor changes the anchor and drops cached lookups made against the old one.
func (r *Resolver) SetAnchor(anchor *Node) {
	r.anchor = anchor
	r.finder.Flush()
}

// Resolve returns the path of target relative to the configured anchor.
func (r *Resolver) Resolve(target *Node) (string, error) {
	return ResolvePath(r.anchor, target)
}

// Find returns the object addressed by path under the configured anchor.
func (r *Resolver) Find(path string) (*Node, bool) {
	return r.finder.Find(r.anchor, path)
}

// Invalidate drops cached lookups after the ownership graph changed.
func (r *Resolver) Invalidate() { r.finder.Flush() }
