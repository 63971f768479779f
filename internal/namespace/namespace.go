// Package namespace translates dotted namespaces such as "com.example" into
// directory paths and package identifiers.
package namespace

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/tbckr/artifact-info/internal/apperr"
)

// Separator splits the segments of a namespace.
const Separator = '.'

// ToPath replaces every '.' in ns with the platform path separator. All other
// characters, empty segments included, are kept verbatim and in order.
func ToPath(ns string) (string, error) {
	if ns == "" {
		return "", fmt.Errorf("%w: namespace must not be empty", apperr.ErrInvalidArgument)
	}
	return strings.ReplaceAll(ns, string(Separator), string(os.PathSeparator)), nil
}

// PackageClause derives a Go package name from the last segment of ns.
// Letters are lower-cased, characters that are not letters, digits or
// underscores are dropped, and a leading digit is prefixed with an underscore.
// It returns "main" when nothing usable remains.
func PackageClause(ns string) string {
	last := ns
	if i := strings.LastIndexByte(ns, Separator); i >= 0 {
		last = ns[i+1:]
	}

	var b strings.Builder
	for _, r := range last {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" || name == "_" {
		return "main"
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	return name
}
