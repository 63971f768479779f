package cli

import (
	"github.com/spf13/cobra"
)

func newGenerateCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate the build metadata source file",
		Long: `Generate renders the template with the project coordinates and the collected
build facts and writes it below --output-dir. The report names the generated
file and the source root to add to the consumer's build.

Projects whose packaging is neither jar nor war are skipped: nothing is
written and the command succeeds.

Values are inserted verbatim; nothing is escaped. A name or description
containing a double quote or a line break yields a source file that does not
compile with the embedded templates. Supply a template suited to such values
with --template.`,
		Example: `  artifact-info generate --group-id org.bbe --artifact-id demo --project-version 1.2.3
  artifact-info generate --lang java --output-dir target/artifact-info -o plain`,
		Args:    cobra.NoArgs,
		GroupID: "build",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := d.newGenerator()
			if err != nil {
				return err
			}
			res, err := gen.Generate(cmd.Context(), d.options())
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), d, res)
		},
	}
}
