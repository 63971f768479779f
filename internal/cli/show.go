package cli

import (
	"github.com/spf13/cobra"

	"github.com/tbckr/artifact-info/internal/generator"
)

func newShowCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"props"},
		Short:   "Print the resolved properties without writing anything",
		Args:    cobra.NoArgs,
		GroupID: "build",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := d.newGenerator()
			if err != nil {
				return err
			}
			props, err := gen.Properties(cmd.Context(), d.options())
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), d, generator.PropertyPairs(props))
		},
	}
}
