package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tbckr/artifact-info/internal/buildmeta"
	"github.com/tbckr/artifact-info/internal/config"
	"github.com/tbckr/artifact-info/internal/generator"
	"github.com/tbckr/artifact-info/internal/output"
	"github.com/tbckr/artifact-info/internal/resolver"
)

// deps holds fully-resolved runtime dependencies for a subcommand.
type deps struct {
	logger *slog.Logger
	cfg    *config.Config
}

// buildDeps loads and validates the configuration and applies --verbose.
func buildDeps(cmd *cobra.Command, logger *slog.Logger, levelVar *slog.LevelVar) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.Verbose {
		levelVar.Set(slog.LevelDebug)
		logger.Debug("verbose logging enabled")
	}

	if !output.Format(cfg.Output).Valid() {
		return nil, ErrInvalidOutputFormat(cfg.Output)
	}
	if _, err := generator.ParseLang(cfg.Lang); err != nil {
		return nil, ErrInvalidLang(cfg.Lang)
	}
	if cfg.ResolveTimeout <= 0 {
		return nil, ErrInvalidResolveTimeout(cfg.ResolveTimeout)
	}

	logger.Debug("configuration validated",
		"config_file", cfg.ConfigFile,
		"output", cfg.Output,
		"lang", cfg.Lang,
		"packaging", cfg.Packaging,
		"fqdn", cfg.FQDN,
		"proxy", cfg.Proxy != "",
	)

	return &deps{cfg: cfg, logger: logger}, nil
}

// newGenerator wires a Generator whose collector canonicalises the host name
// when --fqdn is set.
func (d *deps) newGenerator() (*generator.Generator, error) {
	collector := buildmeta.NewCollector()
	if d.cfg.FQDN {
		r, err := resolver.New(d.cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("creating DNS resolver: %w", err)
		}
		collector.Resolver = r
		collector.ResolveTimeout = d.cfg.ResolveTimeout
	}
	return generator.New(collector, d.logger), nil
}

// options maps the resolved config onto generator options.
func (d *deps) options() generator.Options {
	return generator.Options{
		Identity: buildmeta.Identity{
			GroupID:     d.cfg.GroupID,
			ArtifactID:  d.cfg.ArtifactID,
			Version:     d.cfg.ProjectVersion,
			Name:        d.cfg.Name,
			Description: d.cfg.Description,
			Packaging:   d.cfg.Packaging,
		},
		OutputDir:    d.cfg.OutputDir,
		Namespace:    d.cfg.Namespace,
		TypeName:     d.cfg.TypeName,
		Lang:         generator.Lang(d.cfg.Lang),
		TemplatePath: d.cfg.Template,
	}
}

// writeResult formats and writes a result to stdout.
func writeResult(stdout io.Writer, d *deps, result any) error {
	if err := output.Write(stdout, output.Format(d.cfg.Output), result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
