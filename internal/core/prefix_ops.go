package core

import "strings"

// RemapPrefix returns the path a prefix replace gives path.
//
// Paths that do not contain oldPrefix anywhere, or that already contain
// newPrefix anywhere, are left alone. Otherwise a leading oldPrefix is
// swapped for newPrefix. A path holding oldPrefix only in a non-leading
// position passes the containment check but is still returned unchanged.
func RemapPrefix(path, oldPrefix, newPrefix string) string {
	if !strings.Contains(path, oldPrefix) {
		return path
	}
	if strings.Contains(path, newPrefix) {
		return path
	}
	if !strings.HasPrefix(path, oldPrefix) {
		return path
	}
	return newPrefix + path[len(oldPrefix):]
}

// ReplacePrefix rewrites the leading oldPrefix of every path in the scoped
// clips of batch to newPrefix, following RemapPrefix. Unlike Rename it does
// not check for collisions, so distinct paths may merge.
//
// Running it twice with the same arguments changes nothing the second time,
// since every rewritten path then contains newPrefix.
func ReplacePrefix(oldPrefix, newPrefix string, batch Batch, opts Options) (RewriteResult, error) {
	idx := BuildIndex(batch)
	return rewriteBatch(batch, idx, func(path string) string {
		return RemapPrefix(path, oldPrefix, newPrefix)
	}, opts)
}
