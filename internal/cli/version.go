package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbckr/artifact-info/internal/output"
	"github.com/tbckr/artifact-info/internal/version"
)

func newVersionCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print the artifact-info version",
		Args:    cobra.NoArgs,
		GroupID: "utility",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if output.Format(d.cfg.Output) == output.FormatJSON {
				return writeResult(cmd.OutOrStdout(), d, info)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"artifact-info version %s (commit: %s, built: %s, %s)\n",
				info.Version, info.Commit, info.Date, info.GoVersion)
			return err
		},
	}
}
