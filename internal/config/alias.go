package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// KeyAlias is the config file section holding command aliases.
const KeyAlias = "alias"

// LoadAliases reads the alias section of the config file at path. A missing
// file or section yields an empty map. Alias names keep their case.
func LoadAliases(path string) (map[string]string, error) {
	aliases := map[string]string{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return aliases, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file struct {
		Alias map[string]string `yaml:"alias"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing aliases in %s: %w", path, err)
	}
	for name, expansion := range file.Alias {
		aliases[name] = expansion
	}
	return aliases, nil
}

// ValidateAliasName rejects empty names, names starting with '-' and names
// containing whitespace.
func ValidateAliasName(name string) error {
	if name == "" {
		return errors.New("alias name must not be empty")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("alias name %q must not start with '-'", name)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("alias name %q must not contain whitespace", name)
	}
	return nil
}
