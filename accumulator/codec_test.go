package accumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHistory(t *testing.T) {
	assert.EqualValues(t, "", RenderHistory(nil))

	entries := []HistoryEntry{
		{Op: "0 + 10", Result: 10},
		{Op: "10!", Result: 3628800},
	}

	assert.EqualValues(t, "  1. 0 + 10 = 10\n  2. 10! = 3628800", RenderHistory(entries))
	assert.EqualValues(t, "-3 + -4", formatBinary(-3, "+", -4))
}
