package base64_test

import (
	"testing"
	"travelog/shared/base64"

	"github.com/stretchr/testify/assert"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "png data uri",
			input:    "data:image/png;base64,iVBORw0KGgo=",
			expected: "image/png",
		},
		{
			name:     "jpeg data uri",
			input:    "data:image/jpeg;base64,/9j/4AAQSkZJRg==",
			expected: "image/jpeg",
		},
		{
			name:     "missing base64 marker",
			input:    "data:image/png,rawdata",
			expected: "",
		},
		{
			name:     "plain string",
			input:    "not a data uri",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}
