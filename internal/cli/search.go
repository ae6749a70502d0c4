package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tagscout-dev/tagscout/internal/config"
	"github.com/tagscout-dev/tagscout/internal/dispatch"
	"github.com/tagscout-dev/tagscout/internal/selector"
	"github.com/tagscout-dev/tagscout/internal/tags"
)

// RunSearch drives the whole pipeline: locate, validate, query, filter,
// select, dispatch.
func RunSearch(cmd *cobra.Command, args []string) error {
	term := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	mode, err := ParseMatchMode(cmd)
	if err != nil {
		return err
	}
	kinds, err := ParseKindFilter(cmd)
	if err != nil {
		return err
	}
	extensions, err := ParseExtensionFilter(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	explicit, _ := flags.GetString("tag-file")
	force, _ := flags.GetBool("force")
	ignoreCase, _ := flags.GetBool("ignore-case")
	noSource, _ := flags.GetBool("no-source")
	pageSize, _ := flags.GetInt("page-size")
	command, _ := flags.GetString("command")
	printTemplate, _ := flags.GetString("print")

	fold := ignoreCase || cfg.IgnoreCase
	showSource := !(noSource || cfg.NoSource)
	if pageSize <= 0 {
		pageSize = cfg.PageSize
	}

	path, err := tags.Locate(explicit)
	if errors.Is(err, tags.ErrNotFound) {
		return fmt.Errorf("no tags file found between here and the filesystem root (build one, or point at it with --tag-file)")
	}
	if err != nil {
		return err
	}
	if !force {
		ok, err := tags.Validate(path)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s does not look like a tags file (use --force to search it anyway)", path)
		}
	}

	lookup, err := tags.Open(path)
	if err != nil {
		return err
	}

	substring := ""
	if mode == tags.MatchAll {
		substring = term
	}
	keep := tags.BuildFilter(tags.FilterOptions{
		Kinds:      kinds,
		Extensions: extensions,
		Substring:  substring,
		Fold:       fold,
	})

	var entries []tags.Entry
	for entry := range tags.Apply(keep, tags.Query(lookup, filepath.Dir(path), term, mode, fold)) {
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		fmt.Printf("no matches found for %q\n", term)
		return nil
	}

	chosen := entries[0]
	if len(entries) > 1 {
		sel := selector.New(selector.NewTerminal(), pageSize, showSource)
		chosen, err = sel.Pick(entries, os.Stdout)
		if err != nil {
			return err
		}
	}

	if printTemplate != "" {
		return dispatch.Print(os.Stdout, chosen, printTemplate)
	}
	template, err := executeTemplate(command, cfg)
	if err != nil {
		return err
	}
	return dispatch.Exec(chosen, template)
}

// executeTemplate picks the execute template: the --command flag wins,
// then the config file, then the default editor invocation. The editor
// comes from the config file or $EDITOR; needing one without having one
// is a configuration error.
func executeTemplate(flagValue string, cfg config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.Command != "" {
		return cfg.Command, nil
	}
	editor := cfg.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return "", errors.New("no editor configured: set $EDITOR, or pass --command / --print")
	}
	return dispatch.DefaultTemplate(editor), nil
}
