package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bncastle/Pixini"
)

func init() {
	rootCmd.AddCommand(newSectionsCmd())
}

func newSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <file>",
		Short: "List the sections of a file",
		Long: `The sections command prints every section name in file order, one
per line.

Example:
  pixini sections settings.ini
  pixini sections settings.ini --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(args)
		},
	}
	return cmd
}

func runSections(args []string) error {
	filePath := args[0]

	p, err := pixini.LoadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	names := p.SectionNames()
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":     filePath,
			"sections": names,
		})
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
