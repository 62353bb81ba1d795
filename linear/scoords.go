// Copyright 2026 The linmath Authors. All rights reserved.

package linear

import "linmath/internal/fmath"

// Spherical coordinates, usable to represent an orientation.
//
// Convention:
//   - the azimuth reference is the i axis of B
//   - positive azimuthal angle goes from i to j
//   - the zenith is the k axis of B
//
// Theta is the azimuthal angle between the azimuth reference and the
// projection of the direction onto the reference plane. Phi is the
// polar angle between the zenith and the direction.

// UnitSpherical is the orientation part of spherical coordinates, a
// point on the unit sphere of frame B.
type UnitSpherical[T Float, B Frame] struct {
	Theta, Phi T
}

// Azimuthal returns Theta.
func (u UnitSpherical[T, B]) Azimuthal() T { return u.Theta }

// Polar returns Phi.
func (u UnitSpherical[T, B]) Polar() T { return u.Phi }

// Spherical locates a point by a radius and a direction.
type Spherical[T Float, B Frame] struct {
	R T
	UnitSpherical[T, B]
}

// Vec returns the unit vector pointing in the direction of u.
func (u UnitSpherical[T, B]) Vec() Vec3[T] {
	cosT := fmath.Cos(u.Theta)
	sinT := fmath.Sin(u.Theta)
	cosP := fmath.Cos(u.Phi)
	sinP := fmath.Sin(u.Phi)
	return FromBasisV3[B](Vec3[T]{cosT * sinP, sinT * sinP, cosP})
}

// Quat returns the quaternion describing the rotation taking the
// azimuth reference onto the direction of u.
func (u UnitSpherical[T, B]) Quat() Quat[T] {
	t := 0.5 * u.Theta
	cosT := fmath.Cos(t)
	sinT := fmath.Sin(t)

	// Phi is measured from the zenith but the azimuth reference lies
	// on the reference plane, and the rotation toward the zenith is
	// clockwise, hence Phi - Pi/2.
	p := 0.5 * (u.Phi - HalfPi)
	cosP := fmath.Cos(p)
	sinP := fmath.Sin(p)

	return FromBasisQ[B](Quat[T]{
		-sinT * sinP,
		cosT * sinP,
		sinT * cosP,
		cosT * cosP,
	})
}

// Vec returns the cartesian coordinates of s.
func (s Spherical[T, B]) Vec() Vec3[T] {
	return s.UnitSpherical.Vec().Scale(s.R)
}

func unitSphericalFrom[B Frame, T Float](p Vec3[T]) UnitSpherical[T, B] {
	return UnitSpherical[T, B]{
		Theta: fmath.Atan2(p[1], p[0]),
		Phi:   fmath.Acos(p[2]),
	}
}

// UnitSphericalFrom returns the spherical orientation of a point of
// the unit sphere. v must be normalized.
func UnitSphericalFrom[B Frame, T Float](v Vec3[T]) UnitSpherical[T, B] {
	return unitSphericalFrom[B](ToBasisV3[B](v))
}

// SphericalFrom returns the spherical coordinates of v.
func SphericalFrom[B Frame, T Float](v Vec3[T]) Spherical[T, B] {
	p := ToBasisV3[B](v)
	m := MagV3(p)

	// Only z is divided: atan2 of x and y gives the same angle
	// whether or not both are scaled by 1/m.
	u := unitSphericalFrom[B](Vec3[T]{p[0], p[1], p[2] / m})

	return Spherical[T, B]{R: m, UnitSpherical: u}
}
