package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tagscout-dev/tagscout/internal/tags"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tagscout <symbol>",
		Short: "Search a ctags index and jump to the match",
		Long: `Tagscout looks up a symbol in a pre-built ctags index, lets you pick
the right match interactively, and hands the location to your editor
(or any command template you supply).

With no --tag-file flag the index is found by walking upward from the
current directory looking for a file named "tags".`,
		Args:          cobra.ExactArgs(1),
		RunE:          RunSearch,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolP("prefix", "p", false, "Match tags that begin with the symbol")
	rootCmd.Flags().BoolP("partial", "s", false, "Match tags that contain the symbol anywhere")
	rootCmd.Flags().BoolP("ignore-case", "i", false, "Case-insensitive matching")
	rootCmd.Flags().StringP("tag-file", "t", "", "Tags file to search (default: nearest 'tags' upward)")
	rootCmd.Flags().Bool("force", false, "Skip the tags file header check")
	rootCmd.Flags().StringP("kinds", "k", "", "Keep only these kind characters (e.g. 'fc')")
	rootCmd.Flags().StringP("extensions", "x", "", "Keep only these file extensions (comma-separated)")
	rootCmd.Flags().StringP("command", "c", "", "Execute template; placeholders: {name} {file} {pattern} {lineNumber} {kind} {fileScope}")
	rootCmd.Flags().String("print", "", "Print this template for the chosen entry instead of executing")
	rootCmd.Flags().IntP("page-size", "n", 0, "Entries per selection page (default 5)")
	rootCmd.Flags().Bool("no-source", false, "Show stored patterns instead of reading source lines")

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "List known tag kind characters",
		Long: `List the advisory table of common kind characters. The table only
feeds this listing; filters accept any kind character an index uses.`,
		Run: func(cmd *cobra.Command, args []string) {
			codes := make([]byte, 0, len(tags.KindDescriptions))
			for code := range tags.KindDescriptions {
				codes = append(codes, code)
			}
			sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
			for _, code := range codes {
				fmt.Printf("  %c  %s\n", code, tags.KindDescriptions[code])
			}
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tagscout %s\n", version)
		},
	}

	rootCmd.AddCommand(
		kindsCmd,
		versionCmd,
	)

	return rootCmd
}
