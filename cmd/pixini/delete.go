package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bncastle/Pixini"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <file> <section> <key>",
		Short: "Remove a key from a section",
		Long: `The delete command removes a key and saves the file. Removing the
last key of a section removes the whole section, its header and its
comments included.

Example:
  pixini delete settings.ini Display fullscreen`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	filePath := args[0]
	section := args[1]
	key := args[2]

	printVerbose("Loading %s\n", filePath)

	p, err := pixini.LoadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	if !p.Delete(key, section) {
		return fmt.Errorf("key %q not found in section %q", key, section)
	}

	if err := p.SaveFile(filePath); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    filePath,
			"section": section,
			"key":     key,
			"success": true,
		})
	}
	printInfo("deleted %s/%s from %s\n", section, key, filePath)
	return nil
}
