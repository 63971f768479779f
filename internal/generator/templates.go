package generator

import (
	"embed"
	"fmt"
	"os"

	"github.com/tbckr/artifact-info/internal/apperr"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// LoadTemplate returns the template at path, or the embedded template for
// lang when path is empty. Failures wrap apperr.ErrTemplateUnavailable.
func LoadTemplate(path string, lang Lang) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: reading %s: %w", apperr.ErrTemplateUnavailable, path, err)
		}
		return string(data), nil
	}

	name := "templates/" + string(lang) + ".tpl"
	data, err := embeddedTemplates.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("%w: embedded template %s: %w", apperr.ErrTemplateUnavailable, name, err)
	}
	return string(data), nil
}
