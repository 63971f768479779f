package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/tbckr/artifact-info/internal/generator"
	"github.com/tbckr/artifact-info/internal/output"
)

// ErrInvalidOutputFormat is returned when an unsupported report format is specified.
func ErrInvalidOutputFormat(format string) error {
	return fmt.Errorf("invalid output format %q: must be one of: %s", format, strings.Join(output.Formats(), ", "))
}

// ErrInvalidLang is returned when an unsupported target language is specified.
func ErrInvalidLang(lang string) error {
	return fmt.Errorf("invalid language %q: must be one of: %s", lang, strings.Join(generator.Langs(), ", "))
}

// ErrInvalidResolveTimeout is returned when the host lookup timeout is not positive.
func ErrInvalidResolveTimeout(d time.Duration) error {
	return fmt.Errorf("invalid resolve timeout %s: must be greater than zero", d)
}
