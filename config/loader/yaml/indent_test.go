package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessIndentation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "deeper line after scalar joins the block",
			input:    "a:\n  b: 1\n   c: 2\n",
			expected: "a:\n  b: 1\n  c: 2\n",
		},
		{
			name:     "dedent between levels joins the block it left",
			input:    "a:\n    b: 1\n  c: 2\n",
			expected: "a:\n    b: 1\n    c: 2\n",
		},
		{
			name:     "dedent to open level is kept",
			input:    "a:\n  b:\n    c: 1\n  d: 2\ne: 3\n",
			expected: "a:\n  b:\n    c: 1\n  d: 2\ne: 3\n",
		},
		{
			name:     "sequence items",
			input:    "list:\n  - x: 1\n    y: 2\n  - z\n",
			expected: "list:\n  - x: 1\n    y: 2\n  - z\n",
		},
		{
			name:     "sequence item content",
			input:    "list:\n  - x: 1\n     y: 2\n",
			expected: "list:\n  - x: 1\n    y: 2\n",
		},
		{
			name:     "block scalar contents are untouched",
			input:    "text: |\n  line 1\n     line 2\n\n  line 3\nnext: value\n",
			expected: "text: |\n  line 1\n     line 2\n\n  line 3\nnext: value\n",
		},
		{
			name:     "comments and blank lines are untouched",
			input:    "a:\n  b: 1\n      # comment\n\n  c: 2\n",
			expected: "a:\n  b: 1\n      # comment\n\n  c: 2\n",
		},
		{
			name:     "document marker resets levels",
			input:    "---\na: 1\n",
			expected: "---\na: 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, GuessIndentation(tt.input))
		})
	}
}
