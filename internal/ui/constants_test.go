package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{200, MaxContentWidth},
		{80, 76},
		{3, 1},
		{0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContentWidth(tt.width), "width %d", tt.width)
	}
}

func TestFeatureColumns(t *testing.T) {
	assert.Equal(t, 1, FeatureColumns(40))
	assert.Equal(t, 2, FeatureColumns(60))
	assert.Equal(t, 3, FeatureColumns(96))
}
