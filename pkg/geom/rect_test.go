package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"inside", NewRect(2, 2, 2, 2), true},
		{"touching edge", NewRect(10, 0, 5, 5), false},
		{"far away", NewRect(50, 50, 5, 5), false},
		{"above", NewRect(0, -11, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a))
		})
	}
}

func TestRectOverlap(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	dx, dy := a.Overlap(NewRect(8, 6, 10, 10))
	assert.InDelta(t, 2.0, dx, 1e-9)
	assert.InDelta(t, 4.0, dy, 1e-9)

	dx, dy = a.Overlap(NewRect(20, 20, 1, 1))
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestRectContainsAndCenter(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	cx, cy := r.Center()
	assert.Equal(t, 25.0, cx)
	assert.Equal(t, 40.0, cy)
	assert.True(t, r.Contains(10, 20))
	assert.False(t, r.Contains(40, 20))
	assert.Equal(t, NewRect(8, 18, 34, 44), r.Expand(2))
}
