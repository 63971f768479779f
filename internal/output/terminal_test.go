package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalWidth_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, defaultTermWidth, TerminalWidth(&buf))
}

func TestNewWrappingTable_RendersRows(t *testing.T) {
	var buf bytes.Buffer
	table := NewWrappingTable(&buf, 20, 6)
	table.Header([]string{"KEY", "VALUE"})
	assert.NoError(t, table.Bulk([][]string{{"groupId", "org.bbe"}}))
	assert.NoError(t, table.Render())
	assert.Contains(t, buf.String(), "org.bbe")
}
