package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bncastle/Pixini"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file> <section>",
		Short: "List the keys of a section",
		Long: `The keys command prints every key of a section in file order, one
per line.

Example:
  pixini keys settings.ini Display
  pixini keys settings.ini default --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	filePath := args[0]
	section := args[1]

	p, err := pixini.LoadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	if !p.HasSection(section) {
		return fmt.Errorf("section %q not found", section)
	}

	keys := p.Keys(section)
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    filePath,
			"section": section,
			"keys":    keys,
		})
	}
	for _, key := range keys {
		fmt.Println(key)
	}
	return nil
}
