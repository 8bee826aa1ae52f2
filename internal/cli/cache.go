package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/open-lnk/open-lnk/internal/linkcache"
	"github.com/open-lnk/open-lnk/internal/mapping"
	"github.com/spf13/cobra"
)

func init() {
	cacheCmd.AddCommand(cacheGetCmd)
	cacheCmd.AddCommand(cacheSetCmd)
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cachePathCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage remembered shortcut prefixes",
	Long: `The link cache remembers, per shortcut file, the Linux prefix its target
was found under. Entries are keyed by the absolute, symlink-resolved path
of the shortcut.`,
}

func openCache() (*linkcache.Cache, error) {
	s, err := currentSettings()
	if err != nil {
		return nil, err
	}
	return linkcache.New(s.CacheFile), nil
}

var cacheGetCmd = &cobra.Command{
	Use:   "get <file.lnk>",
	Short: "Print the cached prefix of a shortcut",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}
		key := linkcache.Key(shortcutPath(args[0]))
		prefix, ok, err := c.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no cache entry for %s", key)
		}
		fmt.Fprintln(cmd.OutOrStdout(), prefix)
		return nil
	},
}

var cacheSetCmd = &cobra.Command{
	Use:   "set <file.lnk> <prefix>",
	Short: "Remember a prefix for a shortcut",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}
		prefix := args[1]
		if err := mapping.CheckPrefix(prefix); err != nil {
			return fmt.Errorf("refusing prefix %s: %w", prefix, err)
		}
		key := linkcache.Key(shortcutPath(args[0]))
		if err := c.Set(key, prefix); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, prefix)
		return nil
	},
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached prefixes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}
		entries, err := c.Entries()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No entries in %s\n", c.Path)
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SHORTCUT\tPREFIX")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\n", e.Key, e.Prefix)
		}
		return w.Flush()
	},
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the link cache location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.Path)
		return nil
	},
}
