// Copyright 2026 The linmath Authors. All rights reserved.

// Package fmath dispatches scalar math functions to the float32 or
// float64 routine matching the type parameter, so generic code avoids
// a float64 round-trip on the float32 path.
package fmath

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the set of floating-point scalar types.
type Float interface {
	~float32 | ~float64
}

// Sin returns the sine of x (radians).
func Sin[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Sin(x))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of x (radians).
func Cos[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Cos(x))
	}
	return T(math.Cos(float64(x)))
}

// Tan returns the tangent of x (radians).
func Tan[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Tan(x))
	}
	return T(math.Tan(float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Sqrt(x))
	}
	return T(math.Sqrt(float64(x)))
}

// Acos returns the arccosine, in radians, of x.
func Acos[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Acos(x))
	}
	return T(math.Acos(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func Atan2[T Float](y, x T) T {
	if y, ok := any(y).(float32); ok {
		return T(math32.Atan2(y, float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Floor(x))
	}
	return T(math.Floor(float64(x)))
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Ceil(x))
	}
	return T(math.Ceil(float64(x)))
}

// Trunc returns the integer value of x.
func Trunc[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Trunc(x))
	}
	return T(math.Trunc(float64(x)))
}

// Round returns the nearest integer, rounding half away from zero.
func Round[T Float](x T) T {
	return T(math.Round(float64(x)))
}

// Remainder returns the IEEE 754 floating-point remainder of x/y.
func Remainder[T Float](x, y T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Remainder(x, float32(y)))
	}
	return T(math.Remainder(float64(x), float64(y)))
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Abs(x))
	}
	return T(math.Abs(float64(x)))
}
