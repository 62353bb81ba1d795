// Copyright 2026 The linmath Authors. All rights reserved.

package linear

import "linmath/internal/fmath"

// Sgn returns -1 if x is negative, +1 if positive and 0 otherwise.
func Sgn[T Num](x T) T {
	switch {
	case x < 0:
		var one T = 1
		return -one
	case x > 0:
		return 1
	}
	return 0
}

// Abs returns the absolute value of x.
func Abs[T Num](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp[T Num](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates linearly between x and y. The result is exactly y
// when weight is 1.
func Lerp[T Float](x, y, weight T) T {
	return x*(1-weight) + y*weight
}

// Mod returns the IEEE 754 remainder of x/y.
func Mod[T Float](x, y T) T {
	return fmath.Remainder(x, y)
}

// FloorTo rounds x down to the nearest multiple of step.
func FloorTo[T Float](x, step T) T {
	r := Mod(x, step)
	x -= r
	if r < 0 {
		x -= step
	}
	return x
}

// CeilTo rounds x up to the nearest multiple of step.
func CeilTo[T Float](x, step T) T {
	r := Mod(x, step)
	x -= r
	if r > 0 {
		x += step
	}
	return x
}

// Dot2 returns the dot product of v and w.
func Dot2[T Num](v, w Vec2[T]) T {
	return v[0]*w[0] + v[1]*w[1]
}

// Dot returns the dot product of v and w.
func Dot[T Num](v, w Vec3[T]) T {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Dot4 returns the dot product of v and w.
func Dot4[T Num](v, w Vec4[T]) T {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3]
}

// Cross returns the cross product of v and w.
func Cross[T Num](v, w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Mag2 returns the squared magnitude of v.
func (v Vec2[T]) Mag2() T { return Dot2(v, v) }

// Mag2 returns the squared magnitude of v.
func (v Vec3[T]) Mag2() T { return Dot(v, v) }

// Mag2 returns the squared magnitude of v.
func (v Vec4[T]) Mag2() T { return Dot4(v, v) }

// Mag2 returns the squared magnitude of q.
func (q Quat[T]) Mag2() T {
	return q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
}

// MagV2 returns the magnitude of v.
func MagV2[T Float](v Vec2[T]) T { return fmath.Sqrt(v.Mag2()) }

// MagV3 returns the magnitude of v.
func MagV3[T Float](v Vec3[T]) T { return fmath.Sqrt(v.Mag2()) }

// MagV4 returns the magnitude of v.
func MagV4[T Float](v Vec4[T]) T { return fmath.Sqrt(v.Mag2()) }

// MagQ returns the magnitude of q.
func MagQ[T Float](q Quat[T]) T { return fmath.Sqrt(q.Mag2()) }

// NormV2 returns v normalized. v must be nonzero.
func NormV2[T Float](v Vec2[T]) Vec2[T] { return v.Div(MagV2(v)) }

// NormV3 returns v normalized. v must be nonzero.
func NormV3[T Float](v Vec3[T]) Vec3[T] { return v.Div(MagV3(v)) }

// NormV4 returns v normalized. v must be nonzero.
func NormV4[T Float](v Vec4[T]) Vec4[T] { return v.Div(MagV4(v)) }

// NormQ returns q normalized. q must be nonzero.
func NormQ[T Float](q Quat[T]) Quat[T] { return q.Div(MagQ(q)) }

// OrthonormalBasis completes i into an orthonormal basis. i must be a
// unit vector. almostJ gives the rough direction of the second axis
// and must not be collinear with i; the returned j lies in the plane
// of i and almostJ, in the half plane of almostJ. The triple is
// left-handed: Cross(i, j) equals k negated.
func OrthonormalBasis[T Float](i, almostJ Vec3[T]) (j, k Vec3[T]) {
	// i and almostJ need not be orthogonal, so k is normalized.
	k = NormV3(Cross(almostJ, i))
	// i and k are orthogonal unit vectors already.
	j = Cross(i, k)
	return
}
