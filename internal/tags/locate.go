package tags

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the index file name searched for when no explicit
// path is given.
const DefaultFileName = "tags"

// ErrNotFound is returned by Locate when no tag index exists between the
// working directory and the filesystem root.
var ErrNotFound = errors.New("no tags file found")

// Locate returns the tag index path to use. An explicit path is returned
// verbatim (existence is the caller's problem). Otherwise the working
// directory and each of its ancestors are probed for a file named "tags",
// nearest first.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, DefaultFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Validate sanity-checks that path plausibly is a tag index before it is
// handed to the lookup machinery, which does not tolerate malformed
// input. Only the two header pseudo-tags are checked; everything after
// them is opaque here.
func Validate(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open tags file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() || !strings.Contains(scanner.Text(), "_TAG_FILE_FORMAT") {
		return false, scanner.Err()
	}
	if !scanner.Scan() || !strings.Contains(scanner.Text(), "_TAG_FILE_SORTED") {
		return false, scanner.Err()
	}
	return true, nil
}
