package geom

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in the board plane.
type Point = r2.Vec

// Rotate returns p rotated by angle radians about the origin.
func Rotate(p Point, angle float64) Point {
	return r2.Rotate(p, angle, Point{})
}

// Translate returns p shifted by offset.
func Translate(p, offset Point) Point {
	return r2.Add(p, offset)
}

// Scale returns p with both coordinates multiplied by f.
func Scale(f float64, p Point) Point {
	return r2.Scale(f, p)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(a, b))
}
