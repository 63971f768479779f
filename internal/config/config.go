// Package config binds artifact-info's flags, ARTIFACT_INFO_* environment
// variables and YAML config file into a single Config with viper.
//
// Precedence, highest first: command-line flags, environment variables,
// config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tbckr/artifact-info/internal/appdir"
	"github.com/tbckr/artifact-info/internal/generator"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ARTIFACT_INFO"

// ProjectFileName is looked up in the working directory when --config is not given.
const ProjectFileName = "artifact-info.yaml"

// Config keys. Flags use the same names with '-' instead of '_'.
const (
	KeyVerbose        = "verbose"
	KeyOutput         = "output"
	KeyProxy          = "proxy"
	KeyGroupID        = "group_id"
	KeyArtifactID     = "artifact_id"
	KeyProjectVersion = "project_version"
	KeyName           = "name"
	KeyDescription    = "description"
	KeyPackaging      = "packaging"
	KeyOutputDir      = "output_dir"
	KeyNamespace      = "namespace"
	KeyTypeName       = "type_name"
	KeyLang           = "lang"
	KeyTemplate       = "template"
	KeyFQDN           = "fqdn"
	KeyResolveTimeout = "resolve_timeout"
)

// Defaults.
const (
	DefaultOutput         = "text"
	DefaultProjectVersion = "0.0.0-SNAPSHOT"
	DefaultPackaging      = "jar"
	DefaultOutputDir      = generator.DefaultOutputDir
	DefaultTypeName       = generator.DefaultTypeName
	DefaultLang           = string(generator.DefaultLang)
	DefaultResolveTimeout = 2 * time.Second
)

// Config is the fully resolved configuration of one invocation.
type Config struct {
	// ConfigFile is the file values were read from, or would be written to.
	ConfigFile string

	Verbose bool
	Output  string
	Proxy   string

	GroupID        string
	ArtifactID     string
	ProjectVersion string
	// Name and Description are nil when no source declares them.
	Name        *string
	Description *string
	Packaging   string

	OutputDir string
	Namespace string
	TypeName  string
	Lang      string
	Template  string

	FQDN           bool
	ResolveTimeout time.Duration

	// Aliases maps alias names to the command line they expand to.
	Aliases map[string]string
}

// FlagName returns the command-line flag bound to key.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// RegisterFlags adds every configuration flag to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default: ./"+ProjectFileName+" or the user config dir)")
	fs.BoolP(FlagName(KeyVerbose), "v", false, "enable verbose logging (debug level)")
	fs.StringP(FlagName(KeyOutput), "o", DefaultOutput, "report format: text, json, plain")
	fs.String(FlagName(KeyProxy), "", "proxy URL; socks5:// tunnels host name lookups")

	fs.String(FlagName(KeyGroupID), "", "project group id")
	fs.String(FlagName(KeyArtifactID), "", "project artifact id")
	fs.String(FlagName(KeyProjectVersion), DefaultProjectVersion, "project version")
	fs.String(FlagName(KeyName), "", "project display name (default: the artifact id)")
	fs.String(FlagName(KeyDescription), "", "project description")
	fs.String(FlagName(KeyPackaging), DefaultPackaging, "project packaging; only jar and war generate a source")

	fs.String(FlagName(KeyOutputDir), DefaultOutputDir, "root directory of the generated sources")
	fs.String(FlagName(KeyNamespace), "", "namespace of the generated type (default: the group id)")
	fs.String(FlagName(KeyTypeName), DefaultTypeName, "name of the generated type")
	fs.String(FlagName(KeyLang), DefaultLang, "target language: go, java")
	fs.String(FlagName(KeyTemplate), "", "custom template file (default: embedded template for --lang)")

	fs.Bool(FlagName(KeyFQDN), false, "resolve the fully qualified build host name")
	fs.Duration(FlagName(KeyResolveTimeout), DefaultResolveTimeout, "timeout of the build host name lookup")
}

// DefaultConfigPath returns ./artifact-info.yaml when it exists, and the
// user-level config file otherwise.
func DefaultConfigPath() (string, error) {
	if _, err := os.Stat(ProjectFileName); err == nil {
		return filepath.Abs(ProjectFileName)
	}
	dir, err := appdir.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load resolves the configuration from flags, environment and config file.
// A missing config file is not an error.
func Load(flags *pflag.FlagSet) (*Config, error) {
	cfgFile, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("reading --config flag: %w", err)
	}
	if cfgFile == "" {
		cfgFile, err = DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	// An empty ARTIFACT_INFO_NAME declares an empty name rather than none.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	setDefaults(v)

	for _, key := range ValidKeys() {
		if f := flags.Lookup(FlagName(key)); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", f.Name, err)
			}
		}
	}

	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}

	aliases, err := LoadAliases(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ConfigFile:     cfgFile,
		Verbose:        v.GetBool(KeyVerbose),
		Output:         v.GetString(KeyOutput),
		Proxy:          v.GetString(KeyProxy),
		GroupID:        v.GetString(KeyGroupID),
		ArtifactID:     v.GetString(KeyArtifactID),
		ProjectVersion: v.GetString(KeyProjectVersion),
		Name:           optional(v, KeyName),
		Description:    optional(v, KeyDescription),
		Packaging:      v.GetString(KeyPackaging),
		OutputDir:      v.GetString(KeyOutputDir),
		Namespace:      v.GetString(KeyNamespace),
		TypeName:       v.GetString(KeyTypeName),
		Lang:           v.GetString(KeyLang),
		Template:       v.GetString(KeyTemplate),
		FQDN:           v.GetBool(KeyFQDN),
		ResolveTimeout: v.GetDuration(KeyResolveTimeout),
		Aliases:        aliases,
	}
	return cfg, nil
}

// optional returns nil unless some source explicitly sets key, so an empty
// declared value stays distinguishable from an absent one.
func optional(v *viper.Viper, key string) *string {
	if !v.IsSet(key) {
		return nil
	}
	s := v.GetString(key)
	return &s
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyProjectVersion, DefaultProjectVersion)
	v.SetDefault(KeyPackaging, DefaultPackaging)
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyTypeName, DefaultTypeName)
	v.SetDefault(KeyLang, DefaultLang)
	v.SetDefault(KeyFQDN, false)
	v.SetDefault(KeyResolveTimeout, DefaultResolveTimeout)
}
