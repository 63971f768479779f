package render

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/tbckr/artifact-info/internal/apperr"
)

// Delimiter wraps a property name to form its token.
const Delimiter = "@"

// PropertyMap maps a property name to the value substituted for its token.
type PropertyMap map[string]string

// Token returns the placeholder for name, e.g. "@version@".
func Token(name string) string {
	return Delimiter + name + Delimiter
}

// ReplaceToken replaces every occurrence of @name@ in buffer with value.
// An empty name has no token and is rejected with apperr.ErrInvalidArgument.
func ReplaceToken(buffer, name, value string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: property name must not be empty", apperr.ErrInvalidArgument)
	}
	return strings.ReplaceAll(buffer, Token(name), value), nil
}

// Render applies ReplaceToken once for every entry of props.
//
// Callers must not put one property's token inside another property's value;
// under that condition the result does not depend on the order of entries.
// Entries are still applied in sorted key order so that a violation produces
// the same output on every run.
func Render(template string, props PropertyMap) (string, error) {
	if props == nil {
		return "", fmt.Errorf("%w: property map must not be nil", apperr.ErrInvalidArgument)
	}
	out := template
	for _, name := range slices.Sorted(maps.Keys(props)) {
		var err error
		out, err = ReplaceToken(out, name, props[name])
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// Unresolved returns the sorted names from props whose token still occurs in text.
func Unresolved(text string, props PropertyMap) []string {
	var names []string
	for name := range props {
		if name != "" && strings.Contains(text, Token(name)) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
