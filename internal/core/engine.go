package core

import (
	"github.com/Digital-Shane/anim-tidy/internal/hierarchy"
)

// Engine is the single entry point a host uses to remap clip paths. It keeps
// a PathIndex of the current batch and rebuilds it after every mutation; the
// clips themselves stay owned by the host.
//
// Engine is not safe for concurrent use. Hosts serialize calls, typically on
// their event loop.
type Engine struct {
	batch         Batch
	index         *PathIndex
	resolver      *hierarchy.Resolver
	transactional bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithResolver sets the resolver used to turn objects into paths.
func WithResolver(r *hierarchy.Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithTransactional restores already rewritten clips when a later clip of the
// batch fails to store.
func WithTransactional() Option {
	return func(e *Engine) { e.transactional = true }
}

// NewEngine creates an engine over batch and indexes it.
func NewEngine(batch Batch, opts ...Option) *Engine {
	e := &Engine{batch: batch}
	for _, opt := range opts {
		opt(e)
	}
	if e.resolver == nil {
		e.resolver = hierarchy.NewResolver(nil)
	}
	e.Refresh()
	return e
}

// Batch returns the clips the engine edits.
func (e *Engine) Batch() Batch { return e.batch }

// SetBatch replaces the edited clips, for example after the host's selection
// changed.
func (e *Engine) SetBatch(batch Batch) {
	e.batch = batch
	e.Refresh()
}

// Refresh rebuilds the index from the clips. Hosts call it after changing
// clips behind the engine's back, such as after an undo.
func (e *Engine) Refresh() {
	e.index = BuildIndex(e.batch)
}

// Index returns the current path index.
func (e *Engine) Index() *PathIndex { return e.index }

// Resolver returns the engine's object resolver.
func (e *Engine) Resolver() *hierarchy.Resolver { return e.resolver }

func (e *Engine) options(scope Scope) Options {
	return Options{Scope: scope, Transactional: e.transactional}
}

// Rename moves every track at oldPath to newPath. See Rename.
func (e *Engine) Rename(oldPath, newPath string, scope Scope) (RewriteResult, error) {
	defer e.Refresh()
	return Rename(oldPath, newPath, e.batch, e.options(scope))
}

// ReplacePrefix swaps the leading oldPrefix of paths for newPrefix. See
// ReplacePrefix.
func (e *Engine) ReplacePrefix(oldPrefix, newPrefix string, scope Scope) (RewriteResult, error) {
	defer e.Refresh()
	return ReplacePrefix(oldPrefix, newPrefix, e.batch, e.options(scope))
}

// ResolvePath returns the path of obj relative to the resolver's anchor.
func (e *Engine) ResolvePath(obj *hierarchy.Node) (string, error) {
	return e.resolver.Resolve(obj)
}

// RebindResult is a rewrite together with the path the tracks now use.
type RebindResult struct {
	RewriteResult
	Path string
}

// Rebind points the tracks at path to obj by renaming path to the path of obj
// under the anchor. The usual collision rules of Rename apply. Path is set
// whenever obj resolved, even if the rename itself failed.
func (e *Engine) Rebind(path string, obj *hierarchy.Node, scope Scope) (RebindResult, error) {
	newPath, err := e.resolver.Resolve(obj)
	if err != nil {
		return RebindResult{}, err
	}
	result, err := e.Rename(path, newPath, scope)
	return RebindResult{RewriteResult: result, Path: newPath}, err
}

// Lookup returns the object a path addresses under the anchor, if any.
func (e *Engine) Lookup(path string) (*hierarchy.Node, bool) {
	return e.resolver.Find(path)
}
