// Copyright 2026 The linmath Authors. All rights reserved.

package linear

const (
	Pi     = 3.14159265358979323846264338327950288
	TwoPi  = 2 * Pi
	HalfPi = Pi / 2
)

// Rad converts degrees to radians.
func Rad[T Float](deg T) T { return deg * (Pi / 180) }

// Deg converts radians to degrees.
func Deg[T Float](rad T) T { return rad * (180 / Pi) }
