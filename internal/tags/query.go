package tags

import (
	"iter"
	"path/filepath"
)

// Query runs term against the lookup and yields normalized entries.
// Relative file fields are joined with baseDir (the index file's
// directory) so downstream consumers can open them from anywhere. The
// order is whatever the backing index returns; it is never re-sorted.
func Query(lk Lookup, baseDir, term string, mode Match, fold bool) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for entry := range lk.Find(term, mode, fold) {
			if !filepath.IsAbs(entry.File) {
				entry.File = filepath.Join(baseDir, entry.File)
			}
			if !yield(entry) {
				return
			}
		}
	}
}
