package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/open-lnk/open-lnk/internal/lnk"
	"github.com/open-lnk/open-lnk/internal/winpath"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var inspectFormat string

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "yaml", "Output format (yaml, json)")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.lnk|file://URI>",
	Short: "Print the decoded fields of a shortcut",
	Long: `Decode a shortcut and print every field it carries, the Windows target
built from them and how that target is classified.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

// inspection is the inspect output document.
type inspection struct {
	Shortcut string       `json:"shortcut" yaml:"shortcut"`
	Record   *lnk.Record  `json:"record" yaml:"record"`
	Target   string       `json:"target,omitempty" yaml:"target,omitempty"`
	Class    winpath.Path `json:"class" yaml:"class"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := currentSettings()
	if err != nil {
		return err
	}
	decoder, err := newDecoder(s)
	if err != nil {
		return err
	}

	path := shortcutPath(args[0])
	rec, err := decoder.DecodeFile(path)
	if err != nil {
		return err
	}
	doc := inspection{Shortcut: path, Record: rec}
	if target, ok := lnk.BuildTarget(rec); ok {
		doc.Target = target
		doc.Class = winpath.ClassifyWindows(target)
	}
	return writeDocument(cmd.OutOrStdout(), inspectFormat, doc)
}

// writeDocument renders v as YAML or indented JSON.
func writeDocument(w io.Writer, format string, v any) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	return fmt.Errorf("unknown format %q (want yaml or json)", format)
}
