// Package cli provides the Cobra command tree for artifact-info.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tbckr/artifact-info/internal/config"
	"github.com/tbckr/artifact-info/internal/version"
)

// NewRootCmd builds the top-level command. logger writes through a handler
// whose level is controlled by levelVar; --verbose switches it to debug.
func NewRootCmd(logger *slog.Logger, levelVar *slog.LevelVar) *cobra.Command {
	// d is populated by PersistentPreRunE before any subcommand's RunE runs.
	// Cobra only executes the innermost PersistentPreRunE, so subcommands
	// other than completion must not define their own.
	d := &deps{}

	cmd := &cobra.Command{
		Use:   "artifact-info",
		Short: "Generate a source file embedding build metadata",
		Long: `artifact-info generates a single source file that embeds the project's
coordinates together with the build user, build host and UTC build date.

The file is written to <output-dir>/<namespace as path>/<type-name>.<ext>.
Only projects packaged as jar or war get a generated source; other packaging
kinds are skipped without error.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := buildDeps(cmd, logger, levelVar)
			if err != nil {
				return err
			}
			*d = *resolved
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	config.RegisterFlagCompletions(cmd)

	cmd.Version = version.Version
	cmd.SetVersionTemplate("artifact-info version {{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: "build", Title: "Build Commands:"},
		&cobra.Group{ID: "utility", Title: "Utility Commands:"},
	)

	cmd.AddCommand(
		newGenerateCmd(d),
		newShowCmd(d),
		newConfigCmd(d),
		newAliasCmd(d),
		newVersionCmd(d),
		newCompletionCmd(),
	)

	return cmd
}

// Execute builds the root command, expands a leading alias from the config
// file and runs it. args excludes the program name.
func Execute(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
	logger *slog.Logger,
	levelVar *slog.LevelVar,
) error {
	cmd := NewRootCmd(logger, levelVar)

	cfgFile, err := configFileFromArgs(args)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	aliases, err := config.LoadAliases(cfgFile)
	if err != nil {
		return err
	}

	cmd.SetArgs(expandAlias(cmd, args, aliases))
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
