package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tbckr/artifact-info/internal/generator"
	"github.com/tbckr/artifact-info/internal/output"
)

// ErrUnknownKey is returned for a key that is not a configuration key.
var ErrUnknownKey = errors.New("unknown config key")

type keyKind int

const (
	kindString keyKind = iota
	kindBool
	kindDuration
	kindEnum
)

type keySpec struct {
	kind    keyKind
	choices func() []string
}

var keySpecs = map[string]keySpec{
	KeyVerbose:        {kind: kindBool},
	KeyOutput:         {kind: kindEnum, choices: output.Formats},
	KeyProxy:          {kind: kindString},
	KeyGroupID:        {kind: kindString},
	KeyArtifactID:     {kind: kindString},
	KeyProjectVersion: {kind: kindString},
	KeyName:           {kind: kindString},
	KeyDescription:    {kind: kindString},
	KeyPackaging:      {kind: kindEnum, choices: Packagings},
	KeyOutputDir:      {kind: kindString},
	KeyNamespace:      {kind: kindString},
	KeyTypeName:       {kind: kindString},
	KeyLang:           {kind: kindEnum, choices: generator.Langs},
	KeyTemplate:       {kind: kindString},
	KeyFQDN:           {kind: kindBool},
	KeyResolveTimeout: {kind: kindDuration},
}

// Packagings lists common packaging kinds. Only jar and war generate a source;
// the others are accepted and skip the run.
func Packagings() []string {
	return []string{"jar", "war", "pom", "ear", "maven-plugin"}
}

// ValidKeys returns every configuration key, sorted.
func ValidKeys() []string {
	keys := make([]string, 0, len(keySpecs))
	for k := range keySpecs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// NormalizeKey maps a flag-style key ("type-name") to its config key ("type_name").
func NormalizeKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

// ValidateKey returns ErrUnknownKey unless key, in flag or config form, is known.
func ValidateKey(key string) error {
	if _, ok := keySpecs[NormalizeKey(key)]; !ok {
		return fmt.Errorf("%w: %q (valid keys: %s)", ErrUnknownKey, key, strings.Join(ValidKeys(), ", "))
	}
	return nil
}

// ParseValue converts the string value for key into the type stored in the
// config file: bool for switches, string for everything else. Enum and
// duration values are validated.
func ParseValue(key, value string) (any, error) {
	spec, ok := keySpecs[NormalizeKey(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	switch spec.kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for %s: must be true or false", value, key)
		}
		return b, nil
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid value %q for %s: must be a positive duration such as 2s", value, key)
		}
		return value, nil
	case kindEnum:
		if !slices.Contains(spec.choices(), value) {
			return nil, fmt.Errorf("invalid value %q for %s: must be one of: %s", value, key, strings.Join(spec.choices(), ", "))
		}
		return value, nil
	default:
		return value, nil
	}
}

// KeyCompletions returns the value candidates for key, if it has a fixed set.
func KeyCompletions(key string) []string {
	spec, ok := keySpecs[NormalizeKey(key)]
	if !ok {
		return nil
	}
	switch spec.kind {
	case kindBool:
		return []string{"true", "false"}
	case kindEnum:
		return spec.choices()
	}
	return nil
}
