package tags

import (
	"iter"
	"os"
	"strings"
)

// Filter reports whether an entry survives post-filtering.
type Filter func(Entry) bool

// FilterOptions configures the conjunctive filter chain. Zero-valued
// fields are no-ops; liveness always applies.
type FilterOptions struct {
	// Kinds keeps only entries whose kind character is in the set.
	Kinds map[byte]bool
	// Extensions keeps only entries whose file extension (characters
	// after the last dot) is in the set. Callers lowercase the set.
	Extensions map[string]bool
	// Substring keeps only entries whose name contains it. Only useful
	// with MatchAll, where the backing lookup cannot narrow itself.
	Substring string
	// Fold applies case folding to the substring check.
	Fold bool
}

// BuildFilter composes the chain: liveness, kind, extension, substring.
// Checks short-circuit on the first failure.
func BuildFilter(opts FilterOptions) Filter {
	substring := opts.Substring
	if opts.Fold {
		substring = strings.ToLower(substring)
	}
	return func(e Entry) bool {
		if info, err := os.Stat(e.File); err != nil || info.IsDir() {
			return false
		}
		if opts.Kinds != nil && !opts.Kinds[e.Kind] {
			return false
		}
		if opts.Extensions != nil && !opts.Extensions[strings.ToLower(extensionOf(e.File))] {
			return false
		}
		if substring != "" {
			name := e.Name
			if opts.Fold {
				name = strings.ToLower(name)
			}
			if !strings.Contains(name, substring) {
				return false
			}
		}
		return true
	}
}

// Apply filters a sequence lazily, so enumerating a huge index never
// materializes it.
func Apply(keep Filter, seq iter.Seq[Entry]) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for entry := range seq {
			if keep(entry) && !yield(entry) {
				return
			}
		}
	}
}

func extensionOf(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return ""
}
