package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, false},
		{1, true},
		{0, false},
		{int64(1), true},
		{"true", true},
		{"TRUE", true},
		{" yes ", true},
		{"on", true},
		{"1", true},
		{"0", false},
		{"", false},
		{"nope", false},
		{[]byte("true"), true},
		{3.5, false},
		{nil, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToBool(tt.in), "input %#v", tt.in)
	}
}

func TestFormatMarkers(t *testing.T) {
	assert.Equal(t, "None", FormatMarkers(nil))
	assert.Equal(t, "L3", FormatMarkers([]int{3}))
	assert.Equal(t, "L3, L7, L12", FormatMarkers([]int{3, 7, 12}))
}
