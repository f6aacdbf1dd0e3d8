package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAccountID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "prefixed id", input: "act_123456", expected: "123456"},
		{name: "bare id", input: "123456", expected: "123456"},
		{name: "surrounding whitespace", input: "  act_987  ", expected: "987"},
		{name: "prefix only once", input: "act_act_1", expected: "act_1"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAccountID(tt.input))
		})
	}
}
