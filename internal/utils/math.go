// internal/utils/math.go
package utils

import "math"

// Vec is a point or displacement in simulation space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Mul scales the vector by k.
func (v Vec) Mul(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// LenSq is the squared length, used by range checks to avoid a square root.
func (v Vec) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec) Len() float64 { return math.Sqrt(v.LenSq()) }

// DistSq returns the squared distance between two points.
func DistSq(a, b Vec) float64 {
	return b.Sub(a).LenSq()
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
