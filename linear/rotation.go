// Copyright 2026 The linmath Authors. All rights reserved.

package linear

import "linmath/internal/fmath"

// AxisAngle represents a rotation by an ordered (axis, angle) pair.
// Axis must be a unit vector.
type AxisAngle[T Float] struct {
	Axis  Vec3[T]
	Angle T
}

// Mat returns the matrix describing the rotation, built with
// Rodrigues' rotation formula.
func (aa AxisAngle[T]) Mat() Mat4[T] {
	cos := fmath.Cos(aa.Angle)
	sin := fmath.Sin(aa.Angle)
	omc := 1 - cos

	xx := aa.Axis[0] * aa.Axis[0] * omc
	xy := aa.Axis[0] * aa.Axis[1] * omc
	yy := aa.Axis[1] * aa.Axis[1] * omc
	xz := aa.Axis[0] * aa.Axis[2] * omc
	yz := aa.Axis[1] * aa.Axis[2] * omc
	zz := aa.Axis[2] * aa.Axis[2] * omc

	xs := aa.Axis[0] * sin
	ys := aa.Axis[1] * sin
	zs := aa.Axis[2] * sin

	return Mat4[T]{
		xx + cos, xy + zs, xz - ys, 0,
		xy - zs, yy + cos, yz + xs, 0,
		xz + ys, yz - xs, zz + cos, 0,
		0, 0, 0, 1,
	}
}

// Quat returns the quaternion describing the rotation.
func (aa AxisAngle[T]) Quat() Quat[T] {
	ha := aa.Angle * 0.5
	v := aa.Axis.Scale(fmath.Sin(ha))
	return Quat[T]{v[0], v[1], v[2], fmath.Cos(ha)}
}

// Rotate rotates v using Rodrigues' rotation formula. Building a
// matrix or a quaternion is cheaper when several points rotate by the
// same amount.
func (aa AxisAngle[T]) Rotate(v Vec3[T]) Vec3[T] {
	cos := fmath.Cos(aa.Angle)
	sin := fmath.Sin(aa.Angle)
	return v.Scale(cos).
		Add(Cross(aa.Axis, v).Scale(sin)).
		Add(aa.Axis.Scale(Dot(aa.Axis, v) * (1 - cos)))
}
