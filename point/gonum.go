package point

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ Accessor[r2.Vec, float64] = R2{}
	_ Accessor[r3.Vec, float64] = R3{}
)

// R2 is the accessor for gonum r2.Vec points.
type R2 struct{}

func (R2) Dims() int { return 2 }

func (R2) Coord(v r2.Vec, axis int) float64 {
	if axis == 0 {
		return v.X
	}
	return v.Y
}

// R3 is the accessor for gonum r3.Vec points.
type R3 struct{}

func (R3) Dims() int { return 3 }

func (R3) Coord(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
