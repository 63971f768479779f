package generator

import (
	"fmt"
	"io"

	"github.com/tbckr/artifact-info/internal/output"
	"github.com/tbckr/artifact-info/internal/render"
)

// Result reports the outcome of Generate.
type Result struct {
	Skipped    bool               `json:"skipped"`
	SkipReason string             `json:"skip_reason,omitempty"`
	Path       string             `json:"path,omitempty"`
	SourceRoot string             `json:"source_root,omitempty"`
	Properties render.PropertyMap `json:"properties,omitempty"`
}

// Pairs flattens r into report rows.
func (r *Result) Pairs() output.Pairs {
	if r.Skipped {
		return output.Pairs{{Key: "status", Value: "skipped"}, {Key: "reason", Value: r.SkipReason}}
	}
	pairs := output.Pairs{
		{Key: "status", Value: "generated"},
		{Key: "path", Value: r.Path},
		{Key: "source_root", Value: r.SourceRoot},
	}
	return append(pairs, PropertyPairs(r.Properties)...)
}

// WriteText implements output.TextFormattable.
func (r *Result) WriteText(w io.Writer) error {
	return r.Pairs().WriteText(w)
}

// WritePlain implements output.PlainFormattable. It prints the generated
// path, or nothing when the run was skipped, so the output can be consumed
// by a build script.
func (r *Result) WritePlain(w io.Writer) error {
	if r.Skipped {
		return nil
	}
	_, err := fmt.Fprintln(w, r.Path)
	return err
}

// PropertyPairs lists props as report rows, known properties first.
func PropertyPairs(props render.PropertyMap) output.Pairs {
	names := sortedNames(props)
	pairs := make(output.Pairs, 0, len(names))
	for _, n := range names {
		pairs = append(pairs, output.Pair{Key: n, Value: props[n]})
	}
	return pairs
}
