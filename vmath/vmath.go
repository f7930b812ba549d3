package vmath

import "math"

// Vec2 is a float64 2D vector in canvas pixels; Y grows downward
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector and the original magnitude
// Zero vector returns zero with magnitude 0
func V2Normalize(v Vec2) (Vec2, float64) {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}, 0
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}, mag
}

// V2Reflect mirrors v about unit normal n: v - 2(v·n)n
func V2Reflect(v, n Vec2) Vec2 {
	d := 2 * V2Dot(v, n)
	return Vec2{v.X - d*n.X, v.Y - d*n.Y}
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
