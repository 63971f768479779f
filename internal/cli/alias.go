package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbckr/artifact-info/internal/config"
	"github.com/tbckr/artifact-info/internal/output"
)

func newAliasCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage command aliases",
		Long: `Aliases name a command line stored in the config file. Running the alias
runs the stored command with any extra arguments appended:

  $ artifact-info alias set jinfo "generate --lang java -o plain"
  $ artifact-info jinfo --group-id org.bbe --artifact-id demo`,
		GroupID: "utility",
	}
	cmd.AddCommand(
		newAliasSetCmd(d),
		newAliasListCmd(d),
		newAliasDeleteCmd(d),
	)
	return cmd
}

func newAliasSetCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <expansion>",
		Short: "Create or update an alias",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, expansion := args[0], args[1]
			if err := config.ValidateAliasName(name); err != nil {
				return err
			}
			if findBuiltin(cmd.Root(), name) != nil {
				return fmt.Errorf("alias %q shadows a built-in command; choose a different name", name)
			}
			fields := strings.Fields(expansion)
			if len(fields) == 0 || findBuiltin(cmd.Root(), fields[0]) == nil {
				return fmt.Errorf("alias expansion %q must start with an artifact-info command", expansion)
			}

			return updateConfigFile(d.cfg.ConfigFile, func(raw map[string]any) {
				aliasMap, _ := raw[config.KeyAlias].(map[string]any)
				if aliasMap == nil {
					aliasMap = map[string]any{}
				}
				aliasMap[name] = expansion
				raw[config.KeyAlias] = aliasMap
			})
		},
	}
}

func newAliasListCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all aliases",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := slices.Sorted(maps.Keys(d.cfg.Aliases))
			rows := make(output.Pairs, 0, len(names))
			for _, name := range names {
				rows = append(rows, output.Pair{Key: name, Value: d.cfg.Aliases[name]})
			}
			return writeResult(cmd.OutOrStdout(), d, rows)
		},
	}
}

func newAliasDeleteCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete an alias",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return slices.Sorted(maps.Keys(d.cfg.Aliases)), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			name := args[0]
			if _, ok := d.cfg.Aliases[name]; !ok {
				return fmt.Errorf("alias %q not found", name)
			}
			return updateConfigFile(d.cfg.ConfigFile, func(raw map[string]any) {
				aliasMap, _ := raw[config.KeyAlias].(map[string]any)
				delete(aliasMap, name)
				if len(aliasMap) == 0 {
					delete(raw, config.KeyAlias)
				}
			})
		},
	}
}

// findBuiltin returns the direct subcommand of root named or aliased name.
func findBuiltin(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return c
		}
	}
	return nil
}

// expandAlias replaces a leading alias in args with its expansion. Built-in
// commands always win over aliases of the same name.
func expandAlias(root *cobra.Command, args []string, aliases map[string]string) []string {
	if len(args) == 0 || findBuiltin(root, args[0]) != nil {
		return args
	}
	expansion, ok := aliases[args[0]]
	if !ok {
		return args
	}
	return append(strings.Fields(expansion), args[1:]...)
}

// configFileFromArgs returns the --config value in args, or the default
// config path when none is given.
func configFileFromArgs(args []string) (string, error) {
	for i, a := range args {
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v, nil
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1], nil
		}
	}
	return config.DefaultConfigPath()
}
