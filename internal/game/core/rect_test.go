package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRect(t *testing.T) {
	r := NewRect(3, 4, 6, 8)
	assert.Equal(t, Rect{X1: 3, Y1: 4, X2: 9, Y2: 12}, r)
	assert.Equal(t, 6, r.Width())
	assert.Equal(t, 8, r.Height())
}

func TestRect_Intersects(t *testing.T) {
	base := NewRect(10, 10, 5, 5)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"identical", NewRect(10, 10, 5, 5), true},
		{"overlapping", NewRect(12, 12, 5, 5), true},
		{"contained", NewRect(11, 11, 2, 2), true},
		{"touching edge", NewRect(15, 10, 5, 5), true},
		{"touching corner", NewRect(5, 5, 5, 5), true},
		{"one column apart", NewRect(16, 10, 5, 5), false},
		{"far away", NewRect(40, 40, 3, 3), false},
		{"below", NewRect(10, 16, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base.Intersects(tt.other))
			assert.Equal(t, tt.expected, tt.other.Intersects(base), "intersection is symmetric")
		})
	}
}

func TestRect_Center(t *testing.T) {
	tests := []struct {
		rect     Rect
		expected Coordinate
	}{
		{NewRect(0, 0, 10, 10), Coordinate{X: 5, Y: 5}},
		{NewRect(3, 4, 6, 7), Coordinate{X: 6, Y: 7}},
		{NewRect(1, 1, 3, 3), Coordinate{X: 2, Y: 2}},
	}

	for _, tt := range tests {
		c := tt.rect.Center()
		assert.Equal(t, tt.expected, c)
		assert.True(t, tt.rect.Contains(c), "center of %v lies in its interior", tt.rect)
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(2, 2, 3, 3) // interior x,y in [3,5]

	assert.True(t, r.Contains(Coordinate{X: 3, Y: 3}))
	assert.True(t, r.Contains(Coordinate{X: 5, Y: 5}))
	assert.False(t, r.Contains(Coordinate{X: 2, Y: 3}), "X1 column is wall")
	assert.False(t, r.Contains(Coordinate{X: 6, Y: 3}))
}
