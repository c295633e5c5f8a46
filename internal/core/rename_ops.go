package core

// Rename moves every track at oldPath to newPath across the scoped clips of
// batch. A newPath already used anywhere in the batch is rejected before any
// clip is touched. Renaming a path to itself is a no-op.
//
// All tracks of every scoped clip are rewritten, not only the moved ones, so
// each clip ends up in the same stable layout whatever was renamed.
func Rename(oldPath, newPath string, batch Batch, opts Options) (RewriteResult, error) {
	if oldPath == newPath {
		return RewriteResult{}, nil
	}

	idx := BuildIndex(batch)
	if idx.Has(newPath) {
		return RewriteResult{}, &CollisionError{Path: newPath}
	}

	return rewriteBatch(batch, idx, func(path string) string {
		if path == oldPath {
			return newPath
		}
		return path
	}, opts)
}
