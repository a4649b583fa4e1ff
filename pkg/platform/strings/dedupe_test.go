package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil slice", input: nil, expected: []string{}},
		{name: "blanks dropped", input: []string{" ", "", "Hindi"}, expected: []string{"Hindi"}},
		{name: "order kept", input: []string{"Marathi", " Hindi ", "Marathi"}, expected: []string{"Marathi", "Hindi"}},
		{name: "case sensitive", input: []string{"hindi", "Hindi"}, expected: []string{"hindi", "Hindi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}
