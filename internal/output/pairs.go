package output

import (
	"fmt"
	"io"
)

// Pair is one key/value row.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Pairs is an ordered list of key/value rows. It renders as a two-column
// table in text mode and as key=value lines in plain mode.
type Pairs []Pair

// WriteText implements TextFormattable.
func (p Pairs) WriteText(w io.Writer) error {
	table := NewWrappingTable(w, 20, 20)
	table.Header([]string{"KEY", "VALUE"})
	rows := make([][]string, len(p))
	for i, pair := range p {
		rows[i] = []string{pair.Key, pair.Value}
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// WritePlain implements PlainFormattable.
func (p Pairs) WritePlain(w io.Writer) error {
	for _, pair := range p {
		if _, err := fmt.Fprintf(w, "%s=%s\n", pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}
