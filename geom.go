package gofigure

import "math"

// Point is a position in abstract drawing units. Layout and annotation work
// entirely in this space; the canvas transform maps it to pixels at
// serialization time.
type Point struct {
	X float64
	Y float64
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// sub returns a - b as a direction vector.
func sub(a, b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

// add returns a translated by v.
func add(a, v Point) Point {
	return Point{X: a.X + v.X, Y: a.Y + v.Y}
}

// scale returns v scaled by k.
func scale(v Point, k float64) Point {
	return Point{X: v.X * k, Y: v.Y * k}
}

// norm returns the length of v.
func norm(v Point) float64 {
	return math.Hypot(v.X, v.Y)
}

// unit returns v normalized to length 1, or the zero vector if v is zero.
func unit(v Point) Point {
	n := norm(v)
	if n == 0 {
		return Point{}
	}
	return Point{X: v.X / n, Y: v.Y / n}
}

// perp returns the counter-clockwise perpendicular of v.
func perp(v Point) Point {
	return Point{X: -v.Y, Y: v.X}
}

// project returns the foot of the perpendicular from p onto the line through
// a and b, and the parameter t such that foot = a + t*(b-a). A degenerate
// base (a == b) projects onto a itself with t = 0.
func project(p, a, b Point) (Point, float64) {
	d := sub(b, a)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return a, 0
	}
	v := sub(p, a)
	t := (v.X*d.X + v.Y*d.Y) / lenSq
	return add(a, scale(d, t)), t
}

// polygonArea returns the absolute area enclosed by pts (shoelace formula).
func polygonArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	sum := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return math.Abs(sum) / 2
}

// clampFloat restricts v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
