// Copyright 2026 The linmath Authors. All rights reserved.

package linear

// Quat is a quaternion. The vector part occupies the first three
// components and the scalar part comes last, so a rotation of angle a
// about unit axis n is {n[0]⋅sin(a/2), n[1]⋅sin(a/2), n[2]⋅sin(a/2),
// cos(a/2)}.
type Quat[T Num] [4]T

func (q *Quat[T]) comps() []T { return q[:] }

// I makes q an identity quaternion.
func (q *Quat[T]) I() { *q = Quat[T]{0, 0, 0, 1} }

// X returns the first component of the vector part.
func (q Quat[T]) X() T { return q[0] }

// Y returns the second component of the vector part.
func (q Quat[T]) Y() T { return q[1] }

// Z returns the third component of the vector part.
func (q Quat[T]) Z() T { return q[2] }

// W returns the scalar part.
func (q Quat[T]) W() T { return q[3] }

// XYZ returns the vector part.
func (q Quat[T]) XYZ() Vec3[T] { return Vec3[T]{q[0], q[1], q[2]} }

// IsZero reports whether every component of q is zero.
func (q Quat[T]) IsZero() bool { return allZero(q[:]) }

// Less reports whether q precedes r in lexicographic component order.
func (q Quat[T]) Less(r Quat[T]) bool { return lexLess(q[:], r[:]) }

// String returns a debug representation of q.
func (q Quat[T]) String() string { return tupleString("quat", q[:]) }

// Mul returns the Hamilton product q ⋅ r.
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	v := q.XYZ().Scale(r[3]).Add(r.XYZ().Scale(q[3])).Add(Cross(q.XYZ(), r.XYZ()))
	return Quat[T]{v[0], v[1], v[2], q[3]*r[3] - Dot(q.XYZ(), r.XYZ())}
}

// Conj returns the conjugate of q.
func (q Quat[T]) Conj() Quat[T] {
	return Quat[T]{-q[0], -q[1], -q[2], q[3]}
}

// Rotate rotates v by q. q must be a unit quaternion.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	p := q.Mul(Quat[T]{v[0], v[1], v[2], 0}).Mul(q.Conj())
	return p.XYZ()
}

// Mat returns the rotation matrix equivalent to q. q must be a unit
// quaternion.
func (q Quat[T]) Mat() Mat3[T] {
	x, y, z, w := q[0], q[1], q[2], q[3]
	return Mat3[T]{
		1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w),
		2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w),
		2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y),
	}
}
