package selector

import (
	"bufio"
	"os"
	"strings"

	"github.com/tagscout-dev/tagscout/internal/tags"
)

// Resolve returns the best display context for an entry. Whole-file tags
// have none. When source lines are disabled or the entry has no line
// number, the stored pattern is returned without touching the file.
// Otherwise the recorded source line is read and used if it still
// contains the symbol name; a shifted or vanished line falls back to the
// stored pattern. Either outcome is cached so an equal entry never
// triggers file I/O twice in one run.
func Resolve(cache map[tags.Entry]string, e tags.Entry, wantSource bool) (string, bool) {
	if e.Kind == tags.KindFile {
		return "", false
	}
	if !wantSource || e.Line == 0 {
		return e.Pattern, true
	}
	if cached, ok := cache[e]; ok {
		return cached, true
	}

	resolved := e.Pattern
	if line, ok := readLine(e.File, e.Line); ok && strings.Contains(line, e.Name) {
		resolved = strings.TrimSpace(line)
	}
	cache[e] = resolved
	return resolved, true
}

// readLine returns line n (1-indexed) of the file at path, or false if
// the file cannot be read or has fewer lines.
func readLine(path string, n int) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for i := 0; scanner.Scan(); {
		i++
		if i == n {
			return scanner.Text(), true
		}
	}
	return "", false
}
