package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bncastle/Pixini"
)

var getDefault string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getDefault, "default", "", "Value to print when the key is missing")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <section> <key>",
		Short: "Print the value of a key",
		Long: `The get command looks up a key in a section and prints its value.
Array values print as comma-separated text. Use the section name
"default" for keys stored before any section header.

Example:
  pixini get settings.ini default video_driver
  pixini get settings.ini Display modes
  pixini get settings.ini Audio volume --default 1.0`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	filePath := args[0]
	section := args[1]
	key := args[2]

	printVerbose("Loading %s\n", filePath)

	p, err := pixini.LoadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	if values, ok := p.GetArray(key, section); ok {
		if jsonOut {
			return printJSON(map[string]interface{}{
				"file":    filePath,
				"section": section,
				"key":     key,
				"values":  values,
			})
		}
		fmt.Println(strings.Join(values, ", "))
		return nil
	}

	value, ok := p.Get(key, section)
	if !ok {
		if getDefault == "" {
			return fmt.Errorf("key %q not found in section %q", key, section)
		}
		value = getDefault
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    filePath,
			"section": section,
			"key":     key,
			"value":   value,
		})
	}
	fmt.Println(value)
	return nil
}
