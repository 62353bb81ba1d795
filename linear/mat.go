// Copyright 2026 The linmath Authors. All rights reserved.

package linear

// Matrices are square, stored flat in column-major order. At and Set
// are the only row/column to storage mapping; the element at row r,
// column c of a DxD matrix is entry r + D*c.

// Mat2 is a column-major 2x2 matrix.
type Mat2[T Num] [4]T

// Mat3 is a column-major 3x3 matrix.
type Mat3[T Num] [9]T

// Mat4 is a column-major 4x4 matrix.
type Mat4[T Num] [16]T

func (m *Mat2[T]) comps() []T { return m[:] }
func (m *Mat3[T]) comps() []T { return m[:] }
func (m *Mat4[T]) comps() []T { return m[:] }

// At returns the element at row r, column c.
func (m Mat2[T]) At(r, c int) T { return m[r+2*c] }

// At returns the element at row r, column c.
func (m Mat3[T]) At(r, c int) T { return m[r+3*c] }

// At returns the element at row r, column c.
func (m Mat4[T]) At(r, c int) T { return m[r+4*c] }

// Set assigns x to the element at row r, column c.
func (m *Mat2[T]) Set(r, c int, x T) { m[r+2*c] = x }

// Set assigns x to the element at row r, column c.
func (m *Mat3[T]) Set(r, c int, x T) { m[r+3*c] = x }

// Set assigns x to the element at row r, column c.
func (m *Mat4[T]) Set(r, c int, x T) { m[r+4*c] = x }

// I makes m an identity matrix.
func (m *Mat2[T]) I() { *m = Mat2[T]{1, 0, 0, 1} }

// I makes m an identity matrix.
func (m *Mat3[T]) I() { *m = Mat3[T]{1, 0, 0, 0, 1, 0, 0, 0, 1} }

// I makes m an identity matrix.
func (m *Mat4[T]) I() {
	*m = Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// IsZero reports whether every element of m is zero.
func (m Mat2[T]) IsZero() bool { return allZero(m[:]) }

// IsZero reports whether every element of m is zero.
func (m Mat3[T]) IsZero() bool { return allZero(m[:]) }

// IsZero reports whether every element of m is zero.
func (m Mat4[T]) IsZero() bool { return allZero(m[:]) }

// Less reports whether m precedes n in lexicographic storage order.
func (m Mat2[T]) Less(n Mat2[T]) bool { return lexLess(m[:], n[:]) }

// Less reports whether m precedes n in lexicographic storage order.
func (m Mat3[T]) Less(n Mat3[T]) bool { return lexLess(m[:], n[:]) }

// Less reports whether m precedes n in lexicographic storage order.
func (m Mat4[T]) Less(n Mat4[T]) bool { return lexLess(m[:], n[:]) }

// String returns a debug representation of m in storage order.
func (m Mat2[T]) String() string { return tupleString("mat2", m[:]) }

// String returns a debug representation of m in storage order.
func (m Mat3[T]) String() string { return tupleString("mat3", m[:]) }

// String returns a debug representation of m in storage order.
func (m Mat4[T]) String() string { return tupleString("mat4", m[:]) }

// Mul returns the matrix product m ⋅ n.
func (m Mat2[T]) Mul(n Mat2[T]) Mat2[T] {
	var p Mat2[T]
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			var s T
			for k := 0; k < 2; k++ {
				s += m.At(r, k) * n.At(k, c)
			}
			p.Set(r, c, s)
		}
	}
	return p
}

// Mul returns the matrix product m ⋅ n.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	var p Mat3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			var s T
			for k := 0; k < 3; k++ {
				s += m.At(r, k) * n.At(k, c)
			}
			p.Set(r, c, s)
		}
	}
	return p
}

// Mul returns the matrix product m ⋅ n.
func (m Mat4[T]) Mul(n Mat4[T]) Mat4[T] {
	var p Mat4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var s T
			for k := 0; k < 4; k++ {
				s += m.At(r, k) * n.At(k, c)
			}
			p.Set(r, c, s)
		}
	}
	return p
}

// MulVec returns m ⋅ v.
func (m Mat2[T]) MulVec(v Vec2[T]) (u Vec2[T]) {
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			u[r] += m.At(r, c) * v[c]
		}
	}
	return
}

// MulVec returns m ⋅ v.
func (m Mat3[T]) MulVec(v Vec3[T]) (u Vec3[T]) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			u[r] += m.At(r, c) * v[c]
		}
	}
	return
}

// MulVec returns m ⋅ v.
func (m Mat4[T]) MulVec(v Vec4[T]) (u Vec4[T]) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			u[r] += m.At(r, c) * v[c]
		}
	}
	return
}

// MulPoint transforms a 3D point (w=1) by an affine 4x4 matrix.
func (m Mat4[T]) MulPoint(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m.At(0, 0)*v[0] + m.At(0, 1)*v[1] + m.At(0, 2)*v[2] + m.At(0, 3),
		m.At(1, 0)*v[0] + m.At(1, 1)*v[1] + m.At(1, 2)*v[2] + m.At(1, 3),
		m.At(2, 0)*v[0] + m.At(2, 1)*v[1] + m.At(2, 2)*v[2] + m.At(2, 3),
	}
}

// Transpose returns the transpose of m.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{m[0], m[2], m[1], m[3]}
}

// Transpose returns the transpose of m.
func (m Mat3[T]) Transpose() (p Mat3[T]) {
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			p.Set(r, c, m.At(c, r))
		}
	}
	return
}

// Transpose returns the transpose of m.
func (m Mat4[T]) Transpose() (p Mat4[T]) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			p.Set(r, c, m.At(c, r))
		}
	}
	return
}

// Trace returns the sum of the main diagonal elements.
func (m Mat2[T]) Trace() T { return m[0] + m[3] }

// Trace returns the sum of the main diagonal elements.
func (m Mat3[T]) Trace() T { return m[0] + m[4] + m[8] }

// Trace returns the sum of the main diagonal elements.
func (m Mat4[T]) Trace() T { return m[0] + m[5] + m[10] + m[15] }

// Cut4 returns m with row r and column c removed.
func Cut4[T Num](m Mat4[T], r, c int) Mat3[T] {
	var n Mat3[T]
	dc := 0
	for cc := 0; cc < 4; cc++ {
		if cc == c {
			continue
		}
		dr := 0
		for rr := 0; rr < 4; rr++ {
			if rr == r {
				continue
			}
			n.Set(dr, dc, m.At(rr, cc))
			dr++
		}
		dc++
	}
	return n
}

// Cut3 returns m with row r and column c removed.
func Cut3[T Num](m Mat3[T], r, c int) Mat2[T] {
	var n Mat2[T]
	dc := 0
	for cc := 0; cc < 3; cc++ {
		if cc == c {
			continue
		}
		dr := 0
		for rr := 0; rr < 3; rr++ {
			if rr == r {
				continue
			}
			n.Set(dr, dc, m.At(rr, cc))
			dr++
		}
		dc++
	}
	return n
}

// Det returns the determinant of m.
func (m Mat2[T]) Det() T { return m[0]*m[3] - m[2]*m[1] }

// Det returns the determinant of m, by cofactor expansion along the
// first row.
func (m Mat3[T]) Det() T {
	var d T
	sign := T(1)
	for c := 0; c < 3; c++ {
		d += sign * m.At(0, c) * Cut3(m, 0, c).Det()
		sign = -sign
	}
	return d
}

// Det returns the determinant of m, by cofactor expansion along the
// first row.
func (m Mat4[T]) Det() T {
	var d T
	sign := T(1)
	for c := 0; c < 4; c++ {
		d += sign * m.At(0, c) * Cut4(m, 0, c).Det()
		sign = -sign
	}
	return d
}

// Inv returns the inverse of m. m must be invertible.
func (m Mat2[T]) Inv() Mat2[T] {
	idet := 1 / m.Det()
	return Mat2[T]{m[3] * idet, -m[1] * idet, -m[2] * idet, m[0] * idet}
}

// Inv returns the inverse of m. m must be invertible.
func (m Mat3[T]) Inv() Mat3[T] {
	s0 := m[4]*m[8] - m[5]*m[7]
	s1 := m[3]*m[8] - m[5]*m[6]
	s2 := m[3]*m[7] - m[4]*m[6]
	idet := 1 / (m[0]*s0 - m[1]*s1 + m[2]*s2)
	var p Mat3[T]
	p[0] = s0 * idet
	p[1] = -(m[1]*m[8] - m[2]*m[7]) * idet
	p[2] = (m[1]*m[5] - m[2]*m[4]) * idet
	p[3] = -s1 * idet
	p[4] = (m[0]*m[8] - m[2]*m[6]) * idet
	p[5] = -(m[0]*m[5] - m[2]*m[3]) * idet
	p[6] = s2 * idet
	p[7] = -(m[0]*m[7] - m[1]*m[6]) * idet
	p[8] = (m[0]*m[4] - m[1]*m[3]) * idet
	return p
}

// Inv returns the inverse of m. m must be invertible.
func (m Mat4[T]) Inv() Mat4[T] {
	s0 := m[0]*m[5] - m[1]*m[4]
	s1 := m[0]*m[6] - m[2]*m[4]
	s2 := m[0]*m[7] - m[3]*m[4]
	s3 := m[1]*m[6] - m[2]*m[5]
	s4 := m[1]*m[7] - m[3]*m[5]
	s5 := m[2]*m[7] - m[3]*m[6]
	c0 := m[8]*m[13] - m[9]*m[12]
	c1 := m[8]*m[14] - m[10]*m[12]
	c2 := m[8]*m[15] - m[11]*m[12]
	c3 := m[9]*m[14] - m[10]*m[13]
	c4 := m[9]*m[15] - m[11]*m[13]
	c5 := m[10]*m[15] - m[11]*m[14]
	idet := 1 / (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)
	var p Mat4[T]
	p[0] = (c5*m[5] - c4*m[6] + c3*m[7]) * idet
	p[1] = (-c5*m[1] + c4*m[2] - c3*m[3]) * idet
	p[2] = (s5*m[13] - s4*m[14] + s3*m[15]) * idet
	p[3] = (-s5*m[9] + s4*m[10] - s3*m[11]) * idet
	p[4] = (-c5*m[4] + c2*m[6] - c1*m[7]) * idet
	p[5] = (c5*m[0] - c2*m[2] + c1*m[3]) * idet
	p[6] = (-s5*m[12] + s2*m[14] - s1*m[15]) * idet
	p[7] = (s5*m[8] - s2*m[10] + s1*m[11]) * idet
	p[8] = (c4*m[4] - c2*m[5] + c0*m[7]) * idet
	p[9] = (-c4*m[0] + c2*m[1] - c0*m[3]) * idet
	p[10] = (s4*m[12] - s2*m[13] + s0*m[15]) * idet
	p[11] = (-s4*m[8] + s2*m[9] - s0*m[11]) * idet
	p[12] = (-c3*m[4] + c1*m[5] - c0*m[6]) * idet
	p[13] = (c3*m[0] - c1*m[1] + c0*m[2]) * idet
	p[14] = (-s3*m[12] + s1*m[13] - s0*m[14]) * idet
	p[15] = (s3*m[8] - s1*m[9] + s0*m[10]) * idet
	return p
}
