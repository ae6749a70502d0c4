package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tagscout-dev/tagscout/internal/tags"
)

// runRoot executes the root command with args, capturing stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	cmd := NewRootCommand("test")
	cmd.SetArgs(args)
	execErr := cmd.Execute()

	w.Close()
	os.Stdout = old
	captured, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(captured), execErr
}

// writeProject lays out a source file and a tags index referencing it.
func writeProject(t *testing.T) (dir, indexPath string) {
	t.Helper()
	dir = t.TempDir()

	source := "package main\nfunc Alpha() {}\n"
	if err := os.WriteFile(filepath.Join(dir, "src.go"), []byte(source), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	index := "!_TAG_FILE_FORMAT\t2\t/extended format/\n" +
		"!_TAG_FILE_SORTED\t1\t/sorted/\n" +
		"Alf\tgone.go\t/^func Alf() {$/;\"\tf\tline:1\n" +
		"Alpha\tsrc.go\t/^func Alpha() {$/;\"\tf\tline:2\n"
	indexPath = filepath.Join(dir, "tags")
	if err := os.WriteFile(indexPath, []byte(index), 0644); err != nil {
		t.Fatalf("failed to write tags file: %v", err)
	}
	return dir, indexPath
}

func TestSearchSingleMatchSkipsSelection(t *testing.T) {
	dir, indexPath := writeProject(t)

	out, err := runRoot(t, "Alpha", "--tag-file", indexPath, "--print", "{file}:{lineNumber}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := filepath.Join(dir, "src.go") + ":2\n"
	if out != expected {
		t.Fatalf("expected %q, got %q", expected, out)
	}
}

func TestSearchLivenessLeavesSingleSurvivor(t *testing.T) {
	// Alf's file does not exist, so the prefix query narrows to one
	// entry and selection is skipped.
	_, indexPath := writeProject(t)

	out, err := runRoot(t, "Al", "--tag-file", indexPath, "--prefix", "--print", "{name}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Alpha\n" {
		t.Fatalf("expected Alpha, got %q", out)
	}
}

func TestSearchPartialMatch(t *testing.T) {
	_, indexPath := writeProject(t)

	out, err := runRoot(t, "lph", "--tag-file", indexPath, "--partial", "--print", "{name}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Alpha\n" {
		t.Fatalf("expected substring match on Alpha, got %q", out)
	}
}

func TestSearchNoMatchesExitsCleanly(t *testing.T) {
	_, indexPath := writeProject(t)

	out, err := runRoot(t, "Missing", "--tag-file", indexPath, "--print", "{name}")
	if err != nil {
		t.Fatalf("expected no-matches to succeed, got %v", err)
	}
	if !strings.Contains(out, "no matches found") {
		t.Fatalf("expected a no-matches message, got %q", out)
	}
}

func TestSearchKindAndExtensionFilters(t *testing.T) {
	_, indexPath := writeProject(t)

	if out, err := runRoot(t, "Alpha", "--tag-file", indexPath, "--kinds", "v", "--print", "{name}"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if !strings.Contains(out, "no matches found") {
		t.Fatalf("expected kind filter to drop the function tag, got %q", out)
	}

	if out, err := runRoot(t, "Alpha", "--tag-file", indexPath, "--extensions", "py", "--print", "{name}"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if !strings.Contains(out, "no matches found") {
		t.Fatalf("expected extension filter to drop the .go tag, got %q", out)
	}
}

func TestSearchRejectsHeaderlessIndex(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "tags")
	if err := os.WriteFile(indexPath, []byte("Alpha\tsrc.go\t1\n"), 0644); err != nil {
		t.Fatalf("failed to write tags file: %v", err)
	}

	_, err := runRoot(t, "Alpha", "--tag-file", indexPath, "--print", "{name}")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Fatalf("expected the error to mention --force, got %v", err)
	}
}

func TestSearchForceSkipsValidation(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "src.go"), []byte("func Alpha() {}\n"), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	indexPath := filepath.Join(dir, "tags")
	if err := os.WriteFile(indexPath, []byte("Alpha\tsrc.go\t/^func Alpha() {$/;\"\tf\n"), 0644); err != nil {
		t.Fatalf("failed to write tags file: %v", err)
	}

	out, err := runRoot(t, "Alpha", "--tag-file", indexPath, "--force", "--print", "{name}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Alpha\n" {
		t.Fatalf("expected forced search to succeed, got %q", out)
	}
}

func TestSearchMissingIndexFails(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := runRoot(t, "Alpha", "--print", "{name}")
	if err == nil {
		t.Fatalf("expected an error when no tags file exists")
	}
}

func TestParseMatchMode(t *testing.T) {
	cmd := NewRootCommand("test")
	if err := cmd.ParseFlags([]string{"--prefix"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	mode, err := ParseMatchMode(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mode != tags.MatchPrefix {
		t.Fatalf("expected prefix mode, got %v", mode)
	}

	cmd = NewRootCommand("test")
	if err := cmd.ParseFlags([]string{"--prefix", "--partial"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	if _, err := ParseMatchMode(cmd); err == nil {
		t.Fatalf("expected mutually exclusive flags to error")
	}
}

func TestParseKindFilter(t *testing.T) {
	cmd := NewRootCommand("test")
	if err := cmd.ParseFlags([]string{"--kinds", "fc"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	filter, err := ParseKindFilter(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filter['f'] || !filter['c'] || filter['v'] {
		t.Fatalf("unexpected kind filter: %#v", filter)
	}

	cmd = NewRootCommand("test")
	if filter, err := ParseKindFilter(cmd); err != nil || filter != nil {
		t.Fatalf("expected nil filter without --kinds, got %#v (%v)", filter, err)
	}
}

func TestParseExtensionFilter(t *testing.T) {
	cmd := NewRootCommand("test")
	if err := cmd.ParseFlags([]string{"--extensions", "py,.Go"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	filter, err := ParseExtensionFilter(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filter["py"] || !filter["go"] || len(filter) != 2 {
		t.Fatalf("unexpected extension filter: %#v", filter)
	}
}
