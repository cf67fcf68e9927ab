package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsEdges(t *testing.T) {
	b := Bounds{X: 10, Y: 20, W: 30, H: 40}

	assert.Equal(t, 10, b.Left())
	assert.Equal(t, 40, b.Right())
	assert.Equal(t, 20, b.Top())
	assert.Equal(t, 60, b.Bottom())
	assert.Equal(t, 25, b.CenterX())

	b.Move(-5, 7)
	assert.Equal(t, Bounds{X: 5, Y: 27, W: 30, H: 40}, b)
}

func TestBoundsOverlaps(t *testing.T) {
	base := Bounds{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Bounds
		want  bool
	}{
		{"inside", Bounds{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Bounds{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Bounds{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Bounds{X: 0, Y: 10, W: 5, H: 5}, false},
		{"one pixel in", Bounds{X: 9, Y: 9, W: 5, H: 5}, true},
		{"far away", Bounds{X: 100, Y: 100, W: 5, H: 5}, false},
		{"empty", Bounds{X: 5, Y: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "RIGHT", DirectionRight.String())
	assert.Equal(t, "LEFT", DirectionLeft.String())
	assert.Equal(t, "NONE", DirectionNone.String())
}
