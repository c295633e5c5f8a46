// Package hierarchy models the object ownership graph that animation paths
// refer to, and converts between objects and paths relative to an anchor.
package hierarchy

import "github.com/Digital-Shane/treeview"

// Object is the payload carried by each node of the ownership graph.
type Object struct {
	Components []string
}

// Node is one object in the ownership graph. Its parent is its owner and its
// Name is the path segment that addresses it.
type Node = treeview.Node[Object]

// NewObject creates a detached object node.
func NewObject(id, name string, components ...string) *Node {
	return treeview.NewNode(id, name, Object{Components: components})
}
