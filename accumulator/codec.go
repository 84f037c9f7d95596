package accumulator

import (
	"fmt"
	"strconv"
	"strings"
)

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatBinary(prev int64, sym string, operand int64) string {
	return formatInt(prev) + " " + sym + " " + formatInt(operand)
}

func (e HistoryEntry) String() string {
	return e.Op + " = " + formatInt(e.Result)
}

// RenderHistory lists entries oldest first, one per line, numbered from 1.
func RenderHistory(entries []HistoryEntry) string {
	lines := make([]string, 0, len(entries))

	for idx, e := range entries {
		lines = append(lines, fmt.Sprintf("%3d. %s", idx+1, e))
	}

	return strings.Join(lines, "\n")
}
