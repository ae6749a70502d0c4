package dispatch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"github.com/kballard/go-shellquote"

	"github.com/tagscout-dev/tagscout/internal/tags"
)

// Expand substitutes entry fields into a template. Only the six known
// placeholders are recognized; anything else passes through literally,
// so a template can never reach fields that do not exist.
func Expand(e tags.Entry, template string) string {
	kind := ""
	if e.Kind != 0 {
		kind = string(e.Kind)
	}
	replacer := strings.NewReplacer(
		"{name}", e.Name,
		"{file}", e.File,
		"{pattern}", e.Pattern,
		"{lineNumber}", strconv.Itoa(e.Line),
		"{kind}", kind,
		"{fileScope}", strconv.FormatBool(e.FileScope),
	)
	return replacer.Replace(template)
}

// Print writes the expanded template to w instead of executing anything.
func Print(w io.Writer, e tags.Entry, template string) error {
	_, err := fmt.Fprintln(w, Expand(e, template))
	return err
}

// Exec expands the template, splits it with shell-word semantics, and
// replaces the current process image with the resulting command. It only
// returns on failure; no fallback command is attempted. No shell is ever
// involved, so metacharacters in tag names cannot inject anything.
func Exec(e tags.Entry, template string) error {
	argv, err := shellquote.Split(Expand(e, template))
	if err != nil {
		return fmt.Errorf("failed to parse command template: %w", err)
	}
	if len(argv) == 0 {
		return errors.New("command template expanded to nothing")
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("cannot execute %s: %w", argv[0], err)
	}
	return syscall.Exec(path, argv, os.Environ())
}

// DefaultTemplate positions the given editor at the entry's line.
func DefaultTemplate(editor string) string {
	return editor + " +{lineNumber} {file}"
}
