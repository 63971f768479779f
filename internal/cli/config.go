package cli

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tbckr/artifact-info/internal/appdir"
	"github.com/tbckr/artifact-info/internal/config"
	"github.com/tbckr/artifact-info/internal/output"
)

func newConfigCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Read and write artifact-info config file values",
		GroupID: "utility",
	}
	cmd.AddCommand(
		newConfigPathCmd(d),
		newConfigShowCmd(d),
		newConfigGetCmd(d),
		newConfigSetCmd(d),
		newConfigEditCmd(d),
	)
	return cmd
}

func newConfigPathCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), d.cfg.ConfigFile)
			return err
		},
	}
}

// configRows returns every key with its effective value, sorted by key.
// Values come from the resolved config, so defaults, environment variables
// and flags are included.
func configRows(d *deps) output.Pairs {
	keys := config.ValidKeys()
	rows := make(output.Pairs, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, output.Pair{Key: k, Value: effectiveValue(d.cfg, k)})
	}
	return rows
}

// effectiveValue returns the current effective value for key.
func effectiveValue(cfg *config.Config, key string) string {
	switch key {
	case config.KeyVerbose:
		return fmt.Sprintf("%v", cfg.Verbose)
	case config.KeyOutput:
		return cfg.Output
	case config.KeyProxy:
		return cfg.Proxy
	case config.KeyGroupID:
		return cfg.GroupID
	case config.KeyArtifactID:
		return cfg.ArtifactID
	case config.KeyProjectVersion:
		return cfg.ProjectVersion
	case config.KeyName:
		return deref(cfg.Name)
	case config.KeyDescription:
		return deref(cfg.Description)
	case config.KeyPackaging:
		return cfg.Packaging
	case config.KeyOutputDir:
		return cfg.OutputDir
	case config.KeyNamespace:
		return cfg.Namespace
	case config.KeyTypeName:
		return cfg.TypeName
	case config.KeyLang:
		return cfg.Lang
	case config.KeyTemplate:
		return cfg.Template
	case config.KeyFQDN:
		return fmt.Sprintf("%v", cfg.FQDN)
	case config.KeyResolveTimeout:
		return cfg.ResolveTimeout.String()
	default:
		return ""
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func newConfigShowCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"cat"},
		Short:   "Display all effective config settings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeResult(cmd.OutOrStdout(), d, configRows(d))
		},
	}
}

func newConfigGetCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a config key",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ValidKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidateKey(args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), effectiveValue(d.cfg, config.NormalizeKey(args[0])))
			return err
		},
	}
}

func newConfigSetCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return config.ValidKeys(), cobra.ShellCompDirectiveNoFileComp
			case 1:
				return config.KeyCompletions(args[0]), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			key := config.NormalizeKey(args[0])
			if err := config.ValidateKey(key); err != nil {
				return err
			}
			value, err := config.ParseValue(key, args[1])
			if err != nil {
				return err
			}
			return setConfigValue(d.cfg.ConfigFile, key, value)
		},
	}
}

// setConfigValue rewrites path with key set to value. Only keys already
// present in the file are kept; defaults are never written out.
func setConfigValue(path, key string, value any) error {
	return updateConfigFile(path, func(raw map[string]any) {
		raw[key] = value
	})
}

// updateConfigFile creates path if needed, applies mutate to its decoded
// contents and writes the result back.
func updateConfigFile(path string, mutate func(raw map[string]any)) error {
	if err := appdir.EnsureFile(path); err != nil {
		return err
	}
	raw := map[string]any{}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
	}

	mutate(raw)

	out, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func newConfigEditCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the config file in $EDITOR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := appdir.EnsureFile(d.cfg.ConfigFile); err != nil {
				return err
			}
			editor := os.Getenv("EDITOR")
			if editor == "" {
				editor = os.Getenv("VISUAL")
			}
			if editor == "" {
				editor = "vi"
			}
			c := exec.CommandContext(cmd.Context(), editor, d.cfg.ConfigFile) //nolint:gosec // editor is sourced from the user's $EDITOR/$VISUAL
			c.Stdin = cmd.InOrStdin()
			c.Stdout = cmd.OutOrStdout()
			c.Stderr = cmd.ErrOrStderr()
			c.WaitDelay = time.Second
			return c.Run()
		},
	}
}
