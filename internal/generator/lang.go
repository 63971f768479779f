package generator

import (
	"fmt"
	"slices"

	"github.com/tbckr/artifact-info/internal/apperr"
)

// Lang selects the embedded template and the extension of the generated file.
type Lang string

// Supported target languages.
const (
	LangGo   Lang = "go"
	LangJava Lang = "java"
)

// Langs lists the supported languages.
func Langs() []string {
	return []string{string(LangGo), string(LangJava)}
}

// ParseLang validates s as a Lang.
func ParseLang(s string) (Lang, error) {
	if !slices.Contains(Langs(), s) {
		return "", fmt.Errorf("%w: unsupported language %q: must be one of %v", apperr.ErrInvalidArgument, s, Langs())
	}
	return Lang(s), nil
}

// Extension returns the file extension, without the dot, for l.
func (l Lang) Extension() string {
	return string(l)
}
