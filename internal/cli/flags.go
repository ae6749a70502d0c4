package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagscout-dev/tagscout/internal/tags"
)

// ParseMatchMode resolves the match-mode flags. Exact is the default;
// --prefix and --partial are mutually exclusive.
func ParseMatchMode(cmd *cobra.Command) (tags.Match, error) {
	prefix, err := cmd.Flags().GetBool("prefix")
	if err != nil {
		return 0, fmt.Errorf("failed to read --prefix flag: %w", err)
	}
	partial, err := cmd.Flags().GetBool("partial")
	if err != nil {
		return 0, fmt.Errorf("failed to read --partial flag: %w", err)
	}
	switch {
	case prefix && partial:
		return 0, fmt.Errorf("--prefix and --partial are mutually exclusive")
	case prefix:
		return tags.MatchPrefix, nil
	case partial:
		return tags.MatchAll, nil
	default:
		return tags.MatchExact, nil
	}
}

// ParseKindFilter turns the --kinds value into a set of kind characters.
// Any single-byte character is accepted; the advisory table does not
// constrain it.
func ParseKindFilter(cmd *cobra.Command) (map[byte]bool, error) {
	value, err := cmd.Flags().GetString("kinds")
	if err != nil {
		return nil, fmt.Errorf("failed to read --kinds flag: %w", err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	filter := make(map[byte]bool, len(value))
	for _, c := range value {
		if c > 0x7f {
			return nil, fmt.Errorf("invalid kind character %q (kinds are single ASCII characters)", c)
		}
		filter[byte(c)] = true
	}
	return filter, nil
}

// ParseExtensionFilter turns the comma-separated --extensions value into
// a lowercased set. A leading dot is tolerated, so "py" and ".py" mean
// the same thing.
func ParseExtensionFilter(cmd *cobra.Command) (map[string]bool, error) {
	value, err := cmd.Flags().GetString("extensions")
	if err != nil {
		return nil, fmt.Errorf("failed to read --extensions flag: %w", err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	filter := make(map[string]bool)
	for ext := range strings.SplitSeq(value, ",") {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			return nil, fmt.Errorf("empty extension in --extensions value %q", value)
		}
		filter[ext] = true
	}
	return filter, nil
}
