// Copyright 2026 The linmath Authors. All rights reserved.

package linear

import "linmath/internal/fmath"

// Axis identifies one of the six signed cardinal directions.
// The six implementations are XPos, YPos, ZPos, XNeg, YNeg and ZNeg.
type Axis interface {
	// Dir returns the unit direction of the axis.
	Dir() Vec3[int]
	String() string
	axis()
}

// XPos is the +x axis.
type XPos struct{}

// YPos is the +y axis.
type YPos struct{}

// ZPos is the +z axis.
type ZPos struct{}

// XNeg is the -x axis.
type XNeg struct{}

// YNeg is the -y axis.
type YNeg struct{}

// ZNeg is the -z axis.
type ZNeg struct{}

func (XPos) Dir() Vec3[int] { return Vec3[int]{1, 0, 0} }
func (YPos) Dir() Vec3[int] { return Vec3[int]{0, 1, 0} }
func (ZPos) Dir() Vec3[int] { return Vec3[int]{0, 0, 1} }
func (XNeg) Dir() Vec3[int] { return Vec3[int]{-1, 0, 0} }
func (YNeg) Dir() Vec3[int] { return Vec3[int]{0, -1, 0} }
func (ZNeg) Dir() Vec3[int] { return Vec3[int]{0, 0, -1} }

func (XPos) String() string { return "xpos" }
func (YPos) String() string { return "ypos" }
func (ZPos) String() string { return "zpos" }
func (XNeg) String() string { return "xneg" }
func (YNeg) String() string { return "yneg" }
func (ZNeg) String() string { return "zneg" }

func (XPos) axis() {}
func (YPos) axis() {}
func (ZPos) axis() {}
func (XNeg) axis() {}
func (YNeg) axis() {}
func (ZNeg) axis() {}

// Basis describes the frame formed by the (I, J, K) axis triplet.
// I, J and K must be linearly independent, which for signed cardinal
// axes means no two of them share a cartesian index (see Valid).
// A Basis relates data expressed in the frame a formula or a caller
// means to the initial frame the conversion formulas assume.
type Basis[I, J, K Axis] struct{}

// InitialBasis is the frame all conversions are defined against.
type InitialBasis = Basis[XPos, YPos, ZPos]

// IVec returns the direction of the first basis axis.
func (Basis[I, J, K]) IVec() Vec3[int] { var i I; return i.Dir() }

// JVec returns the direction of the second basis axis.
func (Basis[I, J, K]) JVec() Vec3[int] { var j J; return j.Dir() }

// KVec returns the direction of the third basis axis.
func (Basis[I, J, K]) KVec() Vec3[int] { var k K; return k.Dir() }

// RightHanded reports whether i × j = k holds for the basis.
func (b Basis[I, J, K]) RightHanded() bool {
	return Cross(b.IVec(), b.JVec()) == b.KVec()
}

// LeftHanded reports whether the basis is left-handed.
func (b Basis[I, J, K]) LeftHanded() bool { return !b.RightHanded() }

// Valid reports whether the three axes are linearly independent.
func (b Basis[I, J, K]) Valid() bool {
	ii, _ := axisIndexSign(b.IVec())
	ji, _ := axisIndexSign(b.JVec())
	ki, _ := axisIndexSign(b.KVec())
	return ii != ji && ji != ki && ki != ii
}

// String returns the basis written as its axis triplet.
func (Basis[I, J, K]) String() string {
	var i I
	var j J
	var k K
	return "basis<" + i.String() + ", " + j.String() + ", " + k.String() + ">"
}

// Frame abstracts Basis instantiations so conversion functions can
// constrain a type parameter to any basis.
type Frame interface {
	IVec() Vec3[int]
	JVec() Vec3[int]
	KVec() Vec3[int]
	RightHanded() bool
}

// axisIndexSign splits a signed cardinal direction into the cartesian
// index of its nonzero component and the sign of that component.
func axisIndexSign(a Vec3[int]) (idx, sign int) {
	for i, x := range a {
		if x != 0 {
			idx = i
		}
	}
	return idx, a[0] + a[1] + a[2]
}

// axisMap is one row of a basis change: take the source component at
// idx and multiply it by sign.
type axisMap struct {
	idx  int
	sign int
}

// toMaps gives the component remap taking initial-frame data into B.
// Row n of the result reads through basis axis n.
func toMaps[B Frame]() (a [3]axisMap) {
	var b B
	a[0].idx, a[0].sign = axisIndexSign(b.IVec())
	a[1].idx, a[1].sign = axisIndexSign(b.JVec())
	a[2].idx, a[2].sign = axisIndexSign(b.KVec())
	return
}

// fromMaps gives the inverse remap, taking data in B back to the
// initial frame. It is the transpose of toMaps: cartesian row r reads
// from whichever basis axis spans index r.
func fromMaps[B Frame]() (a [3]axisMap) {
	var b B
	i, j, k := b.IVec(), b.JVec(), b.KVec()
	for r := 0; r < 3; r++ {
		switch {
		case j[r] != 0:
			a[r].idx = 1
		case k[r] != 0:
			a[r].idx = 2
		}
		a[r].sign = i[r] + j[r] + k[r]
	}
	return
}

// ToBasisV3 expresses cartesian coordinates in B. The input must be
// expressed in the initial basis. It is the rotation whose rows are
// the axes of B, written as a component permutation with sign flips.
func ToBasisV3[B Frame, T Num](v Vec3[T]) Vec3[T] {
	a := toMaps[B]()
	return Vec3[T]{
		T(a[0].sign) * v[a[0].idx],
		T(a[1].sign) * v[a[1].idx],
		T(a[2].sign) * v[a[2].idx],
	}
}

// FromBasisV3 expresses cartesian coordinates in the initial basis.
// The input must be expressed in B. It inverts ToBasisV3.
func FromBasisV3[B Frame, T Num](v Vec3[T]) Vec3[T] {
	a := fromMaps[B]()
	return Vec3[T]{
		T(a[0].sign) * v[a[0].idx],
		T(a[1].sign) * v[a[1].idx],
		T(a[2].sign) * v[a[2].idx],
	}
}

// ToBasisM4 expresses a transformation matrix in B. The input must be
// expressed in the initial basis. With R the rotation whose rows are
// the axes of B, the result is R ⋅ m ⋅ Rᵀ, so that
//
//	ToBasisM4[B](m).MulVec(p) == ToBasisV3[B](m.MulVec(FromBasisV3[B](p)))
//
// for any point p expressed in B.
func ToBasisM4[B Frame, T Num](m Mat4[T]) Mat4[T] {
	return remapM4(toMaps[B](), m)
}

// FromBasisM4 expresses a transformation matrix in the initial basis.
// The input must be expressed in B. It inverts ToBasisM4.
func FromBasisM4[B Frame, T Num](m Mat4[T]) Mat4[T] {
	return remapM4(fromMaps[B](), m)
}

func remapM4[T Num](a [3]axisMap, m Mat4[T]) Mat4[T] {
	var p Mat4[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			p.Set(r, c, T(a[r].sign*a[c].sign)*m.At(a[r].idx, a[c].idx))
		}
		p.Set(3, c, T(a[c].sign)*m.At(3, a[c].idx))
		p.Set(c, 3, T(a[c].sign)*m.At(a[c].idx, 3))
	}
	p.Set(3, 3, m.At(3, 3))
	return p
}

// ToBasisQ expresses a rotation quaternion in B. The input must be
// expressed in the initial basis. The vector part is remapped like a
// cartesian vector; when B and the initial basis differ in handedness
// the angle sign flips as well, so the same rotation is described.
func ToBasisQ[B Frame, T Num](q Quat[T]) Quat[T] {
	return remapQ[B](toMaps[B](), q)
}

// FromBasisQ expresses a rotation quaternion in the initial basis.
// The input must be expressed in B. It inverts ToBasisQ.
func FromBasisQ[B Frame, T Num](q Quat[T]) Quat[T] {
	return remapQ[B](fromMaps[B](), q)
}

func remapQ[B Frame, T Num](a [3]axisMap, q Quat[T]) Quat[T] {
	var b B
	s := 1
	if (InitialBasis{}).RightHanded() != b.RightHanded() {
		s = -1
	}
	return Quat[T]{
		T(s*a[0].sign) * q[a[0].idx],
		T(s*a[1].sign) * q[a[1].idx],
		T(s*a[2].sign) * q[a[2].idx],
		q[3],
	}
}

// AxisMat returns the matrix describing a rotation of angle a around
// axis A.
func AxisMat[A Axis, T Float](a T) Mat4[T] {
	c := fmath.Cos(a)
	s := fmath.Sin(a)
	var ax A
	switch any(ax).(type) {
	case XPos:
		return Mat4[T]{
			1, 0, 0, 0,
			0, c, s, 0,
			0, -s, c, 0,
			0, 0, 0, 1,
		}
	case XNeg:
		return Mat4[T]{
			1, 0, 0, 0,
			0, c, -s, 0,
			0, s, c, 0,
			0, 0, 0, 1,
		}
	case YPos:
		return Mat4[T]{
			c, 0, -s, 0,
			0, 1, 0, 0,
			s, 0, c, 0,
			0, 0, 0, 1,
		}
	case YNeg:
		return Mat4[T]{
			c, 0, s, 0,
			0, 1, 0, 0,
			-s, 0, c, 0,
			0, 0, 0, 1,
		}
	case ZPos:
		return Mat4[T]{
			c, s, 0, 0,
			-s, c, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		}
	default: // ZNeg
		return Mat4[T]{
			c, -s, 0, 0,
			s, c, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		}
	}
}

// AxisQuat returns the quaternion describing a rotation of angle a
// around axis A.
func AxisQuat[A Axis, T Float](a T) Quat[T] {
	a *= 0.5
	c := fmath.Cos(a)
	s := fmath.Sin(a)
	var ax A
	switch any(ax).(type) {
	case XPos:
		return Quat[T]{s, 0, 0, c}
	case XNeg:
		return Quat[T]{-s, 0, 0, c}
	case YPos:
		return Quat[T]{0, s, 0, c}
	case YNeg:
		return Quat[T]{0, -s, 0, c}
	case ZPos:
		return Quat[T]{0, 0, s, c}
	default: // ZNeg
		return Quat[T]{0, 0, -s, c}
	}
}

// BasisVector returns the image of axis A under the rotation q, that
// is, the corresponding vector of the rotated frame. q must be a unit
// quaternion.
func BasisVector[A Axis, T Num](q Quat[T]) Vec3[T] {
	x, y, z, w := q[0], q[1], q[2], q[3]
	var ax A
	switch any(ax).(type) {
	case XPos:
		return Vec3[T]{
			1 - 2*(y*y+z*z),
			2 * (x*y + w*z),
			2 * (x*z - w*y),
		}
	case XNeg:
		return Vec3[T]{
			2*(y*y+z*z) - 1,
			-(2 * (x*y + w*z)),
			-(2 * (x*z - w*y)),
		}
	case YPos:
		return Vec3[T]{
			2 * (x*y - w*z),
			1 - 2*(x*x+z*z),
			2 * (y*z + w*x),
		}
	case YNeg:
		return Vec3[T]{
			-(2 * (x*y - w*z)),
			2*(x*x+z*z) - 1,
			-(2 * (y*z + w*x)),
		}
	case ZPos:
		return Vec3[T]{
			2 * (x*z + w*y),
			2 * (y*z - w*x),
			1 - 2*(x*x+y*y),
		}
	default: // ZNeg
		return Vec3[T]{
			-(2 * (x*z + w*y)),
			-(2 * (y*z - w*x)),
			2*(x*x+y*y) - 1,
		}
	}
}
