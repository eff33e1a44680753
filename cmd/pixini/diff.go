package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/bncastle/Pixini"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare two INI files",
		Long: `The diff command canonicalizes both files and prints a colorized
line diff. Cosmetic differences (spacing, blank lines) disappear in
canonical form, so only content changes show up. Exits with status 1
when the files differ.

Example:
  pixini diff before.ini after.ini
  pixini diff before.ini after.ini --no-color`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

func runDiff(args []string) error {
	pathA := args[0]
	pathB := args[1]

	a, err := pixini.LoadFile(pathA)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", pathA, err)
	}
	b, err := pixini.LoadFile(pathB)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", pathB, err)
	}

	textA, textB := a.String(), b.String()
	if textA == textB {
		printVerbose("%s and %s are identical\n", pathA, pathB)
		return nil
	}

	dmp := diffpatch.New()
	chA, chB, lineIndex := dmp.DiffLinesToChars(textA, textB)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chA, chB, false), lineIndex)

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	del := color.New(color.FgRed).SprintFunc()
	ins := color.New(color.FgGreen).SprintFunc()

	fmt.Printf("--- %s\n+++ %s\n", pathA, pathB)
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				fmt.Println(del("-" + line))
			case diffpatch.DiffInsert:
				fmt.Println(ins("+" + line))
			case diffpatch.DiffEqual:
				fmt.Println(" " + line)
			}
		}
	}

	os.Exit(1)
	return nil
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
