// Copyright 2026 The linmath Authors. All rights reserved.

package linear

import "linmath/internal/fmath"

// AeroBasis is the conventional aerospace frame, with i pointing up,
// j along +x and k along +y.
type AeroBasis = Basis[ZPos, XPos, YPos]

// Euler holds proper Euler angles:
//
//   - rotation of angle Alpha (α) around z
//   - rotation of angle Beta (β) around x'
//   - rotation of angle Gamma (γ) around z″
//
// The sequence is always zx′z″ intrinsic. Other intrinsic sequences
// are obtained by instantiating with another basis B, which relabels
// the axes the angles refer to.
type Euler[T Float, B Frame] struct {
	Alpha, Beta, Gamma T
}

// Phi returns Alpha under its usual symbol φ.
func (e Euler[T, B]) Phi() T { return e.Alpha }

// Theta returns Beta under its usual symbol θ.
func (e Euler[T, B]) Theta() T { return e.Beta }

// Psi returns Gamma under its usual symbol ψ.
func (e Euler[T, B]) Psi() T { return e.Gamma }

// Mat returns the matrix describing the rotation.
func (e Euler[T, B]) Mat() Mat4[T] {
	cosA := fmath.Cos(e.Alpha)
	sinA := fmath.Sin(e.Alpha)
	cosB := fmath.Cos(e.Beta)
	sinB := fmath.Sin(e.Beta)
	cosG := fmath.Cos(e.Gamma)
	sinG := fmath.Sin(e.Gamma)

	cosAcosG := cosA * cosG
	sinAsinG := sinA * sinG
	cosGsinA := cosG * sinA
	cosAsinG := cosA * sinG

	return FromBasisM4[B](Mat4[T]{
		cosAcosG - cosB*sinAsinG,
		cosGsinA + cosAsinG*cosB,
		sinB * sinG,
		0,

		-cosAsinG - cosB*cosGsinA,
		cosAcosG*cosB - sinAsinG,
		cosG * sinB,
		0,

		sinA * sinB,
		-cosA * sinB,
		cosB,
		0,

		0, 0, 0, 1,
	})
}

// Quat returns the quaternion describing the rotation.
func (e Euler[T, B]) Quat() Quat[T] {
	a := 0.5 * e.Alpha
	cosA := fmath.Cos(a)
	sinA := fmath.Sin(a)
	b := 0.5 * e.Beta
	cosB := fmath.Cos(b)
	sinB := fmath.Sin(b)
	g := 0.5 * e.Gamma
	cosG := fmath.Cos(g)
	sinG := fmath.Sin(g)

	return FromBasisQ[B](Quat[T]{
		cosA*sinB*cosG + sinA*sinB*sinG,
		sinA*sinB*cosG - cosA*sinB*sinG,
		sinA*cosB*cosG + cosA*cosB*sinG,
		cosA*cosB*cosG - sinA*cosB*sinG,
	})
}

// TaitBryan holds Tait-Bryan angles, the usual aerospace convention:
//
//   - rotation of angle Alpha (α) around z, the yaw
//   - rotation of angle Beta (β) around y', the pitch
//   - rotation of angle Gamma (γ) around x″, the roll
//
// Instantiating with another basis B relabels the axes the angles
// refer to; AeroBasis is the conventional choice.
type TaitBryan[T Float, B Frame] struct {
	Alpha, Beta, Gamma T
}

// Yaw returns Alpha.
func (tb TaitBryan[T, B]) Yaw() T { return tb.Alpha }

// Pitch returns Beta.
func (tb TaitBryan[T, B]) Pitch() T { return tb.Beta }

// Roll returns Gamma.
func (tb TaitBryan[T, B]) Roll() T { return tb.Gamma }

// Mat returns the matrix describing the rotation.
func (tb TaitBryan[T, B]) Mat() Mat4[T] {
	cosA := fmath.Cos(tb.Alpha)
	sinA := fmath.Sin(tb.Alpha)
	cosB := fmath.Cos(tb.Beta)
	sinB := fmath.Sin(tb.Beta)
	cosG := fmath.Cos(tb.Gamma)
	sinG := fmath.Sin(tb.Gamma)

	cosAcosG := cosA * cosG
	sinBsinG := sinB * sinG
	cosGsinA := cosG * sinA

	return FromBasisM4[B](Mat4[T]{
		cosA * cosB,
		cosB * sinA,
		-sinB,
		0,

		cosA*sinBsinG - cosGsinA,
		cosAcosG + sinA*sinBsinG,
		cosB * sinG,
		0,

		sinA*sinG + cosAcosG*sinB,
		cosGsinA*sinB - cosA*sinG,
		cosB * cosG,
		0,

		0, 0, 0, 1,
	})
}

// Quat returns the quaternion describing the rotation.
func (tb TaitBryan[T, B]) Quat() Quat[T] {
	a := 0.5 * tb.Alpha
	cosA := fmath.Cos(a)
	sinA := fmath.Sin(a)
	b := 0.5 * tb.Beta
	cosB := fmath.Cos(b)
	sinB := fmath.Sin(b)
	g := 0.5 * tb.Gamma
	cosG := fmath.Cos(g)
	sinG := fmath.Sin(g)

	return FromBasisQ[B](Quat[T]{
		cosA*cosB*sinG - sinA*sinB*cosG,
		cosA*sinB*cosG + sinA*cosB*sinG,
		sinA*cosB*cosG - cosA*sinB*sinG,
		cosA*cosB*cosG + sinA*sinB*sinG,
	})
}
