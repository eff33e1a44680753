package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bncastle/Pixini"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <section> <key> <value>",
		Short: "Set a key to a value",
		Long: `The set command writes a value into a section and saves the file.
The value text is interpreted the same way as parsed input: commas
make an array, quotes keep commas literal, ";" starts an inline
comment. An existing key keeps its position, comment and casing; a
missing section is appended to the end of the file.

Example:
  pixini set settings.ini Display width 2560
  pixini set settings.ini Display modes "720p, 1080p, 4k"
  pixini set settings.ini Audio device '"USB DAC, rev 2"'`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	filePath := args[0]
	section := args[1]
	key := args[2]
	value := args[3]

	printVerbose("Loading %s\n", filePath)

	p, err := pixini.LoadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	p.Set(key, section, value)

	if err := p.SaveFile(filePath); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    filePath,
			"section": section,
			"key":     key,
			"value":   value,
			"success": true,
		})
	}
	printInfo("set %s/%s in %s\n", section, key, filePath)
	return nil
}
