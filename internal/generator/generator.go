package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/tbckr/artifact-info/internal/apperr"
	"github.com/tbckr/artifact-info/internal/buildmeta"
	"github.com/tbckr/artifact-info/internal/namespace"
	"github.com/tbckr/artifact-info/internal/render"
)

// Defaults applied by Options.withDefaults.
const (
	DefaultOutputDir = "build/artifact-info"
	DefaultTypeName  = "ArtifactInfo"
	DefaultLang      = LangGo
)

// Options is everything one run needs. Namespace defaults to the group id,
// TypeName to DefaultTypeName, OutputDir to DefaultOutputDir and Lang to
// DefaultLang. An empty TemplatePath selects the embedded template for Lang.
type Options struct {
	Identity     buildmeta.Identity
	OutputDir    string
	Namespace    string
	TypeName     string
	Lang         Lang
	TemplatePath string
}

func (o Options) withDefaults() Options {
	if o.Namespace == "" {
		o.Namespace = o.Identity.GroupID
	}
	if o.TypeName == "" {
		o.TypeName = DefaultTypeName
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Lang == "" {
		o.Lang = DefaultLang
	}
	return o
}

func (o Options) validate() error {
	if o.Identity.GroupID == "" {
		return fmt.Errorf("%w: group id is required", apperr.ErrInvalidArgument)
	}
	if o.Identity.ArtifactID == "" {
		return fmt.Errorf("%w: artifact id is required", apperr.ErrInvalidArgument)
	}
	if _, err := ParseLang(string(o.Lang)); err != nil {
		return err
	}
	return nil
}

// SupportsPackaging reports whether a project packaged as kind gets a
// generated source. Only library (jar) and web (war) archives do.
func SupportsPackaging(kind string) bool {
	return kind == "jar" || kind == "war"
}

// Generator renders and writes artifact-info sources.
type Generator struct {
	collector *buildmeta.Collector
	logger    *slog.Logger
}

// New returns a Generator collecting build facts with collector.
func New(collector *buildmeta.Collector, logger *slog.Logger) *Generator {
	return &Generator{collector: collector, logger: logger}
}

// Properties resolves the property map for opts without writing anything.
func (g *Generator) Properties(ctx context.Context, opts Options) (render.PropertyMap, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	facts := g.collector.Collect(ctx, opts.Identity)
	return Properties(opts, facts), nil
}

// Generate runs one generation. Unsupported packaging is not an error: the
// returned Result has Skipped set and nothing is written.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if !SupportsPackaging(opts.Identity.Packaging) {
		g.logger.Info("skipping artifact-info generation (project packaging is not jar|war)",
			"packaging", opts.Identity.Packaging)
		return &Result{
			Skipped:    true,
			SkipReason: fmt.Sprintf("packaging %q is not jar|war", opts.Identity.Packaging),
		}, nil
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	props := Properties(opts, g.collector.Collect(ctx, opts.Identity))
	g.logger.Debug("resolved properties", "properties", props)

	tmpl, err := LoadTemplate(opts.TemplatePath, opts.Lang)
	if err != nil {
		return nil, err
	}

	content, err := render.Render(tmpl, props)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}
	if left := render.Unresolved(content, props); len(left) > 0 {
		// A property value carried another property's token.
		g.logger.Debug("tokens left after rendering", "tokens", left)
	}

	dirPath, err := namespace.ToPath(opts.Namespace)
	if err != nil {
		return nil, err
	}
	parentDir := filepath.Join(opts.OutputDir, dirPath)
	if err := os.MkdirAll(parentDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w %s: %w", apperr.ErrOutputDirectory, absPath(parentDir), err)
	}

	file := filepath.Join(parentDir, opts.TypeName+"."+opts.Lang.Extension())
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil { //nolint:gosec // generated sources are meant to be world-readable
		return nil, fmt.Errorf("%w %s: %w", apperr.ErrOutputWrite, absPath(file), err)
	}

	sourceRoot := absPath(opts.OutputDir)
	g.logger.Debug("output directory added to project sources", "source_root", sourceRoot)

	path := absPath(file)
	g.logger.Info("artifact info successfully generated", "path", path)

	return &Result{
		Path:       path,
		SourceRoot: sourceRoot,
		Properties: props,
	}, nil
}

// absPath returns the absolute form of p, or p itself if the working
// directory cannot be determined.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// sortedNames returns the names of props, known properties first in report
// order, followed by any extra names sorted.
func sortedNames(props render.PropertyMap) []string {
	known := PropertyNames()
	names := make([]string, 0, len(props))
	for _, n := range known {
		if _, ok := props[n]; ok {
			names = append(names, n)
		}
	}
	var extra []string
	for n := range props {
		if !slices.Contains(known, n) {
			extra = append(extra, n)
		}
	}
	slices.Sort(extra)
	return append(names, extra...)
}
