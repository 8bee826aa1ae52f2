package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/open-lnk/open-lnk/internal/mapping"
	"github.com/spf13/cobra"
)

var mappingFormat string

func init() {
	mappingListCmd.Flags().StringVar(&mappingFormat, "format", "table", "Output format (table, yaml, json)")
	mappingCmd.AddCommand(mappingListCmd)
	mappingCmd.AddCommand(mappingAddCmd)
	mappingCmd.AddCommand(mappingPathCmd)
	rootCmd.AddCommand(mappingCmd)
}

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Manage Windows to Linux prefix rules",
	Long: `Read and append the rules that map drive letters (M:) and share roots
(//server/share) to Linux directories.`,
}

// mappingRow is one rule in list output.
type mappingRow struct {
	Kind   string `json:"kind" yaml:"kind"`
	Key    string `json:"key" yaml:"key"`
	Prefix string `json:"prefix" yaml:"prefix"`
}

var mappingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mapping rules in file order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := currentSettings()
		if err != nil {
			return err
		}
		table, err := mapping.Load(s.MappingFile)
		if err != nil {
			return err
		}
		for _, skipped := range table.Skipped {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: skipping %v\n", s.MappingFile, skipped)
		}

		rows := make([]mappingRow, 0, table.Len())
		for _, e := range table.Entries() {
			kind := "drive"
			if e.Kind == mapping.UNCRule {
				kind = "unc"
			}
			rows = append(rows, mappingRow{Kind: kind, Key: e.Key(), Prefix: e.Prefix})
		}

		if mappingFormat != "table" {
			return writeDocument(cmd.OutOrStdout(), mappingFormat, rows)
		}
		if len(rows) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No rules in %s\n", s.MappingFile)
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tKEY\tPREFIX")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Kind, r.Key, r.Prefix)
		}
		return w.Flush()
	},
}

var mappingAddCmd = &cobra.Command{
	Use:   "add <M:|//server/share> <prefix>",
	Short: "Append a mapping rule",
	Example: `  open-lnk mapping add 'M:' /mnt/media
  open-lnk mapping add '\\fileserver\projects' /mnt/projects`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := currentSettings()
		if err != nil {
			return err
		}
		e, err := mapping.ParseEntry(args[0] + "=" + args[1])
		if err != nil {
			return fmt.Errorf("invalid rule: %w", err)
		}
		if err := mapping.Append(s.MappingFile, e); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", e, s.MappingFile)
		return nil
	},
}

var mappingPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the mapping file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := currentSettings()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.MappingFile)
		return nil
	},
}
