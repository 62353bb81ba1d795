// Copyright 2026 The linmath Authors. All rights reserved.

package linear

import "linmath/internal/fmath"

// Projection and viewport transforms. Clip space follows the OpenGL
// convention, with z mapped to [-1, 1].

// Perspective returns a standard perspective projection.
func Perspective[T Float](fovy, aspect, near, far T) Mat4[T] {
	d := 1 / fmath.Tan(fovy*0.5)
	nmf := near - far

	return Mat4[T]{
		d / aspect, 0, 0, 0,
		0, d, 0, 0,
		0, 0, (near + far) / nmf, -1,
		0, 0, 2 * near * far / nmf, 0,
	}
}

// PerspectiveInverse returns the inverse of Perspective for the same
// arguments, cheaper than inverting the projection matrix.
func PerspectiveInverse[T Float](fovy, aspect, near, far T) Mat4[T] {
	rd := fmath.Tan(fovy * 0.5)
	nf2 := 2 * near * far

	return Mat4[T]{
		aspect * rd, 0, 0, 0,
		0, rd, 0, 0,
		0, 0, 0, (near - far) / nf2,
		0, 0, -1, (near + far) / nf2,
	}
}

// PerspectiveOblique returns a perspective projection for an
// off-center view frustum.
func PerspectiveOblique[T Float](right, left, top, bottom, near, far T) Mat4[T] {
	n2 := 2 * near
	rml := right - left
	tmb := top - bottom
	nmf := near - far

	return Mat4[T]{
		n2 / rml, 0, 0, 0,
		0, n2 / tmb, 0, 0,
		(right + left) / rml, (top + bottom) / tmb, (near + far) / nmf, -1,
		0, 0, n2 * far / nmf, 0,
	}
}

// PerspectiveInfinite returns a perspective projection whose far
// plane lies at infinity.
func PerspectiveInfinite[T Float](fovy, aspect, near T) Mat4[T] {
	d := 1 / fmath.Tan(fovy*0.5)

	return Mat4[T]{
		d / aspect, 0, 0, 0,
		0, d, 0, 0,
		0, 0, -1, -1,
		0, 0, -2 * near, 0,
	}
}

// Orthographic returns an orthographic projection for the box bounded
// by the six clip planes.
func Orthographic[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	nmf := near - far

	return Mat4[T]{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 2 / nmf, 0,
		(left + right) / (left - right), (bottom + top) / (bottom - top), (near + far) / nmf, 1,
	}
}

// OrthographicCentered returns an orthographic projection for a view
// volume centered on the z axis.
func OrthographicCentered[T Float](width, height, near, far T) Mat4[T] {
	nmf := near - far

	return Mat4[T]{
		2 / width, 0, 0, 0,
		0, 2 / height, 0, 0,
		0, 0, 2 / nmf, 0,
		0, 0, (near + far) / nmf, 1,
	}
}

// OrthographicExtent returns an orthographic projection for a view
// volume centered on the origin.
func OrthographicExtent[T Float](width, height, depth T) Mat4[T] {
	return Mat4[T]{
		2 / width, 0, 0, 0,
		0, 2 / height, 0, 0,
		0, 0, 2 / depth, 0,
		0, 0, 0, 1,
	}
}

// OrthographicInverse returns the inverse of Orthographic for the
// same arguments, cheaper than inverting the projection matrix.
func OrthographicInverse[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	return Mat4[T]{
		(right - left) * 0.5, 0, 0, 0,
		0, (top - bottom) * 0.5, 0, 0,
		0, 0, (near - far) * 0.5, 0,
		(left + right) * 0.5, (bottom + top) * 0.5, -(near + far) * 0.5, 1,
	}
}

// Viewport returns the transform taking normalized device coordinates
// to the window rectangle rooted at lowerLeft, with depth mapped to
// [near, far].
func Viewport[T Float](lowerLeft, size Vec2[T], near, far T) Mat4[T] {
	hw := size[0] * 0.5
	hh := size[1] * 0.5

	return Mat4[T]{
		hw, 0, 0, 0,
		0, hh, 0, 0,
		0, 0, (far - near) * 0.5, 0,
		lowerLeft[0] + hw, lowerLeft[1] + hh, (far + near) * 0.5, 1,
	}
}

// ViewportAtOrigin is Viewport with the lower left corner at (0, 0).
func ViewportAtOrigin[T Float](size Vec2[T], near, far T) Mat4[T] {
	hw := size[0] * 0.5
	hh := size[1] * 0.5

	return Mat4[T]{
		hw, 0, 0, 0,
		0, hh, 0, 0,
		0, 0, (far - near) * 0.5, 0,
		hw, hh, (far + near) * 0.5, 1,
	}
}

// LookAt returns the view matrix for a camera at eye looking toward
// center, with up giving the rough vertical. eye and center must
// differ and up must not be collinear with the view direction.
func LookAt[T Float](eye, center, up Vec3[T]) Mat4[T] {
	f := NormV3(center.Sub(eye))
	s := NormV3(Cross(f, up))
	u := Cross(s, f)

	return Mat4[T]{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-Dot(s, eye), -Dot(u, eye), Dot(f, eye), 1,
	}
}
