package cli

import (
	"fmt"

	"github.com/open-lnk/open-lnk/internal/userdata"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config and cache directories",
	Long: `Create the config and cache directories with a commented mapping file
and config file. Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Initializing user files:")
		return userdata.Init(out)
	},
}
