package selector

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tagscout-dev/tagscout/internal/tags"
)

// DefaultPageSize is the number of entries rendered per page when no
// override is configured.
const DefaultPageSize = 5

// margin between the rendered prefix and the right edge.
const pathMargin = 2

// Selector walks the user through pages of entries until one is chosen.
// It is a state machine over a page index: render, read a command,
// transition. Unrecognized input re-renders the current page.
type Selector struct {
	term       Terminal
	pageSize   int
	showSource bool
	cache      map[tags.Entry]string
}

func New(term Terminal, pageSize int, showSource bool) *Selector {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Selector{
		term:       term,
		pageSize:   pageSize,
		showSource: showSource,
		cache:      make(map[tags.Entry]string),
	}
}

// Pick runs the interactive loop and returns the chosen entry. It
// returns ErrAborted if the user cancels at the prompt. Numeric input
// selects by the absolute index shown next to each entry, so a number
// remembered from an earlier page still works.
func (s *Selector) Pick(entries []tags.Entry, out io.Writer) (tags.Entry, error) {
	page := 0
	for {
		s.renderPage(entries, page, out)
		input, err := s.term.ReadCommand(s.prompt(entries, page))
		if err != nil {
			return tags.Entry{}, err
		}
		switch {
		case input == "m" && s.hasNext(entries, page):
			page++
		case input == "p" && page > 0:
			page--
		default:
			if n, err := strconv.Atoi(input); err == nil && n >= 0 && n < len(entries) {
				return entries[n], nil
			}
		}
	}
}

func (s *Selector) renderPage(entries []tags.Entry, page int, out io.Writer) {
	width := s.term.Width()
	end := min((page+1)*s.pageSize, len(entries))
	for i := page * s.pageSize; i < end; i++ {
		entry := entries[i]
		prefix := fmt.Sprintf("%d: %s  ", i, entry.Name)
		path := TruncateMiddle(entry.File, width-len(prefix)-pathMargin)
		fmt.Fprintf(out, "%s%s\n", prefix, path)
		if context, ok := Resolve(s.cache, entry, s.showSource); ok && context != "" {
			fmt.Fprintf(out, "    %s\n", context)
		}
	}
}

func (s *Selector) prompt(entries []tags.Entry, page int) string {
	commands := []string{fmt.Sprintf("number (0-%d)", len(entries)-1)}
	if s.hasNext(entries, page) {
		commands = append(commands, "'m' for more")
	}
	if page > 0 {
		commands = append(commands, "'p' for previous")
	}
	return "Select " + strings.Join(commands, ", ") + ": "
}

func (s *Selector) hasNext(entries []tags.Entry, page int) bool {
	return (page+1)*s.pageSize < len(entries)
}
