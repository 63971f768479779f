// Package output renders command results as text tables, JSON or plain lines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format is the output format requested by the user.
type Format string

// Output format constants supported by the --output flag.
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// Formats lists every supported format in display order.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatPlain)}
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatPlain:
		return true
	}
	return false
}

// TextFormattable results know how to render themselves for a human reader.
type TextFormattable interface {
	WriteText(w io.Writer) error
}

// PlainFormattable results know how to render themselves as plain lines for
// piping into other tools.
type PlainFormattable interface {
	WritePlain(w io.Writer) error
}

// Write dispatches a result to the appropriate formatter.
// JSON uses json.Encoder with indentation; text and plain require the result
// to implement TextFormattable and PlainFormattable respectively.
func Write(w io.Writer, format Format, result any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatText:
		tf, ok := result.(TextFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support text output", result)
		}
		return tf.WriteText(w)
	case FormatPlain:
		pf, ok := result.(PlainFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support plain output", result)
		}
		return pf.WritePlain(w)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}
