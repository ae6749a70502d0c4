package selector

import "github.com/mattn/go-runewidth"

const ellipsis = "..."

// TruncateMiddle elides the middle of s so it renders in at most width
// terminal cells. The start and end survive, so a truncated path keeps
// both its root and its file name.
func TruncateMiddle(s string, width int) string {
	if width <= 0 {
		return ""
	}
	total := runewidth.StringWidth(s)
	if total <= width {
		return s
	}
	if width <= len(ellipsis) {
		return runewidth.Truncate(s, width, "")
	}

	budget := width - len(ellipsis)
	headWidth := (budget + 1) / 2
	tailWidth := budget - headWidth
	head := runewidth.Truncate(s, headWidth, "")
	tail := runewidth.TruncateLeft(s, total-tailWidth, "")
	return head + ellipsis + tail
}
