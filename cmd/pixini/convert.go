package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/bncastle/Pixini"
)

var convertTo string

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertTo, "to", "yaml", "Target format (yaml, json)")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert an INI file to YAML or JSON",
		Long: `The convert command renders a file as a nested document: one object
per section, keys mapped to their scalar or array values. YAML output
keeps the file's section and key order; JSON object order follows the
encoder.

Example:
  pixini convert settings.ini
  pixini convert settings.ini --to json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	filePath := args[0]

	p, err := pixini.LoadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	switch convertTo {
	case "yaml":
		doc := yaml.MapSlice{}
		for _, section := range p.SectionNames() {
			body := yaml.MapSlice{}
			for _, key := range p.Keys(section) {
				body = append(body, yaml.MapItem{Key: key, Value: keyValue(p, key, section)})
			}
			doc = append(doc, yaml.MapItem{Key: section, Value: body})
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		fmt.Print(string(out))
		return nil

	case "json":
		doc := make(map[string]map[string]interface{})
		for _, section := range p.SectionNames() {
			body := make(map[string]interface{})
			for _, key := range p.Keys(section) {
				body[key] = keyValue(p, key, section)
			}
			doc[section] = body
		}
		return printJSON(doc)
	}
	return fmt.Errorf("unsupported target format %q", convertTo)
}

// keyValue returns the array or scalar stored under key, whichever
// shape the record holds.
func keyValue(p *pixini.Pixini, key, section string) interface{} {
	if values, ok := p.GetArray(key, section); ok {
		return values
	}
	v, _ := p.Get(key, section)
	return v
}
