package tags

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"
)

// Match selects how a query term is compared against tag names.
type Match int

const (
	// MatchExact requires the full tag name to equal the term.
	MatchExact Match = iota
	// MatchPrefix matches tags whose name starts with the term.
	MatchPrefix
	// MatchAll ignores the term and enumerates every tag. The format has
	// no native substring lookup, so substring queries enumerate and
	// filter downstream.
	MatchAll
)

// Lookup is the indexed-lookup capability over a tag file. Find returns
// a lazy sequence that restarts from the first match every time it is
// ranged over.
type Lookup interface {
	Find(term string, mode Match, fold bool) iter.Seq[Entry]
}

// File is a Lookup over a sorted tags file on disk. Case-sensitive
// exact and prefix queries binary-search the file by byte offset the
// way readtags does; folded queries and enumeration scan linearly,
// since byte order cannot stand in for fold order.
type File struct {
	path string
	size int64
}

// Open probes the tags file and returns a Lookup over it. A file that
// passed validation can still be unreadable here; that is fatal to the
// run, never retried.
func Open(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tags file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("tags path %s is a directory", path)
	}
	return &File{path: path, size: info.Size()}, nil
}

func (t *File) Find(term string, mode Match, fold bool) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		f, err := os.Open(t.path)
		if err != nil {
			return
		}
		defer f.Close()

		start := int64(0)
		if mode != MatchAll && !fold {
			start = t.searchStart(f, term)
		}
		if _, err := f.Seek(start, io.SeekStart); err != nil {
			return
		}

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
		if start > 0 {
			// Drop the partial line the seek landed in.
			if !scanner.Scan() {
				return
			}
		}
		for scanner.Scan() {
			entry, ok := parseLine(scanner.Text())
			if !ok {
				continue
			}
			switch mode {
			case MatchAll:
				if !yield(entry) {
					return
				}
			case MatchExact:
				if nameMatches(entry.Name, term, false, fold) {
					if !yield(entry) {
						return
					}
				} else if !fold && entry.Name > term {
					return
				}
			case MatchPrefix:
				if nameMatches(entry.Name, term, true, fold) {
					if !yield(entry) {
						return
					}
				} else if !fold && entry.Name > term {
					return
				}
			}
		}
	}
}

// searchStart binary-searches byte offsets for a position strictly
// before the first line whose name could match term. Probing an offset
// means discarding the partial line it lands in and reading the name of
// the next full line, so offset 0 is the floor and never probed.
func (t *File) searchStart(f *os.File, term string) int64 {
	lo, hi := int64(0), t.size
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		name, ok := nameAfter(f, mid)
		if !ok || name >= term {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// nameAfter reads the name field of the first complete line after
// offset off. ok is false at end of file.
func nameAfter(f *os.File, off int64) (string, bool) {
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return "", false
	}
	r := bufio.NewReader(f)
	if _, err := r.ReadString('\n'); err != nil {
		return "", false
	}
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	name, _, _ := strings.Cut(line, "\t")
	return name, true
}

func nameMatches(name, term string, prefix, fold bool) bool {
	switch {
	case prefix && fold:
		return len(name) >= len(term) && strings.EqualFold(name[:len(term)], term)
	case prefix:
		return strings.HasPrefix(name, term)
	case fold:
		return strings.EqualFold(name, term)
	default:
		return name == term
	}
}

// parseLine decodes one tags-file line:
//
//	name \t file \t exaddr[;" \t xfield...]
//
// Pseudo-tags and lines missing mandatory fields are skipped. A numeric
// ex-address carries the line number; a /^...$/ address carries the
// search pattern, stored stripped of its wrapper as a display snippet.
func parseLine(line string) (Entry, bool) {
	if strings.HasPrefix(line, "!_TAG_") {
		return Entry{}, false
	}
	name, rest, ok := strings.Cut(line, "\t")
	if !ok || name == "" {
		return Entry{}, false
	}
	file, rest, ok := strings.Cut(rest, "\t")
	if !ok || file == "" {
		return Entry{}, false
	}

	addr, xfields, hasXFields := strings.Cut(rest, ";\"")
	entry := Entry{Name: name, File: file}

	addr = strings.TrimSpace(addr)
	if n, err := strconv.Atoi(addr); err == nil && n >= 0 {
		entry.Line = n
		entry.Pattern = addr
	} else {
		entry.Pattern = trimExAddress(addr)
	}

	if hasXFields {
		for field := range strings.SplitSeq(xfields, "\t") {
			key, value, hasColon := strings.Cut(field, ":")
			switch {
			case !hasColon && len(field) == 1:
				entry.Kind = field[0]
			case key == "kind" && len(value) == 1:
				entry.Kind = value[0]
			case key == "line":
				if n, err := strconv.Atoi(value); err == nil && n >= 0 {
					entry.Line = n
				}
			case key == "file":
				entry.FileScope = true
			}
		}
	}
	return entry, true
}

func trimExAddress(addr string) string {
	s := strings.TrimPrefix(addr, "/^")
	s = strings.TrimPrefix(s, "/")
	s = strings.TrimSuffix(s, "$/")
	s = strings.TrimSuffix(s, "/")
	return strings.ReplaceAll(s, `\/`, "/")
}
