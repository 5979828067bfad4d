package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorMode_IsValid(t *testing.T) {
	tests := []struct {
		mode  ColorMode
		valid bool
	}{
		{ColorAuto, true},
		{ColorAlways, true},
		{ColorNever, true},
		{ColorMode("rainbow"), false},
		{ColorMode(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.mode.IsValid())
		})
	}
}

func TestParseColorMode(t *testing.T) {
	m, ok := ParseColorMode("never")
	assert.True(t, ok)
	assert.Equal(t, ColorNever, m)

	m, ok = ParseColorMode("sometimes")
	assert.False(t, ok)
	assert.Equal(t, ColorAuto, m)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, ColorAuto, s.Color)
	assert.False(t, s.Verbose)
}
