package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bncastle/Pixini"
)

var fmtWrite bool

func init() {
	cmd := newFmtCmd()
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file in place instead of printing")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reformat an INI file canonically",
		Long: `The fmt command parses a file and serializes it back in canonical
form: spacing around separators is normalized, blank lines are
regenerated, arrays are joined as "a, b, c". Comments, values and
ordering are untouched.

Example:
  pixini fmt settings.ini
  pixini fmt settings.ini --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
	return cmd
}

func runFmt(args []string) error {
	filePath := args[0]

	p, err := pixini.LoadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	if fmtWrite {
		if err := p.SaveFile(filePath); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		printInfo("reformatted %s\n", filePath)
		return nil
	}

	fmt.Print(p.String())
	return nil
}
