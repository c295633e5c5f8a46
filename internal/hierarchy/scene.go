package hierarchy

import (
	"fmt"

	"github.com/Digital-Shane/treeview"
	"github.com/mhmtszr/concurrent-swiss-map"
)

// Scene is the authoritative ownership graph supplied by the host. Objects are
// registered by ID so other goroutines can look them up while the host edits
// clips on its own event loop.
type Scene struct {
	Name    string
	tree    *treeview.Tree[Object]
	objects *csmap.CsMap[string, *Node]
	finder  *Finder
}

// NewScene builds a scene from fully assembled root objects. Object IDs must
// be unique across the whole graph.
func NewScene(name string, roots ...*Node) (*Scene, error) {
	s := &Scene{
		Name:    name,
		tree:    treeview.NewTree(roots),
		objects: csmap.Create[string, *Node](),
		finder:  NewFinder(),
	}
	if err := s.register(roots...); err != nil {
		return nil, err
	}
	return s, nil
}

// register adds every object below the given nodes. Nothing is stored
// unless all of their IDs are new to the scene and to each other.
func (s *Scene) register(nodes ...*Node) error {
	var pending []*Node
	seen := make(map[string]bool)
	for len(nodes) > 0 {
		n := nodes[0]
		nodes = nodes[1:]

		if _, exists := s.objects.Load(n.ID()); exists || seen[n.ID()] {
			return fmt.Errorf("duplicate object id %q", n.ID())
		}
		seen[n.ID()] = true
		pending = append(pending, n)
		nodes = append(nodes, n.Children()...)
	}

	for _, n := range pending {
		s.objects.Store(n.ID(), n)
	}
	return nil
}

// Roots returns the top-level objects of the scene.
func (s *Scene) Roots() []*Node { return s.tree.Nodes() }

// Len reports how many objects are registered.
func (s *Scene) Len() int { return int(s.objects.Count()) }

// Lookup returns the object with the given ID.
func (s *Scene) Lookup(id string) (*Node, bool) {
	return s.objects.Load(id)
}

// Attach adds child, and everything below it, under parent.
func (s *Scene) Attach(parent, child *Node) error {
	if _, ok := s.objects.Load(parent.ID()); !ok {
		return fmt.Errorf("parent %q is not part of scene %q", parent.ID(), s.Name)
	}
	if err := s.register(child); err != nil {
		return err
	}
	parent.AddChild(child)
	s.finder.Flush()
	return nil
}

// Find returns the object addressed by path below anchor.
func (s *Scene) Find(anchor *Node, path string) (*Node, bool) {
	return s.finder.Find(anchor, path)
}
