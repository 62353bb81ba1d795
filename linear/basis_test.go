// Copyright 2026 The linmath Authors. All rights reserved.

package linear

import (
	"math"
	"testing"
)

func TestBasisHandedness(t *testing.T) {
	for _, tc := range []struct {
		b    Frame
		want bool
	}{
		{InitialBasis{}, true},
		{AeroBasis{}, true},
		{Basis[YPos, ZPos, XPos]{}, true},
		{Basis[XPos, ZPos, YPos]{}, false},
		{Basis[YPos, XPos, ZPos]{}, false},
		{Basis[XNeg, YPos, ZPos]{}, false},
		{Basis[XNeg, YNeg, ZPos]{}, true},
		{Basis[ZNeg, XPos, YNeg]{}, true},
	} {
		if have := tc.b.RightHanded(); have != tc.want {
			t.Fatalf("%v.RightHanded\nhave %v\nwant %v", tc.b, have, tc.want)
		}
	}
}

func TestBasisValid(t *testing.T) {
	if !(AeroBasis{}).Valid() {
		t.Fatalf("%v.Valid\nhave false\nwant true", AeroBasis{})
	}
	if (Basis[XPos, XNeg, ZPos]{}).Valid() {
		t.Fatalf("%v.Valid\nhave true\nwant false", Basis[XPos, XNeg, ZPos]{})
	}
	if (Basis[YPos, ZPos, YPos]{}).Valid() {
		t.Fatalf("%v.Valid\nhave true\nwant false", Basis[YPos, ZPos, YPos]{})
	}
}

func TestBasisString(t *testing.T) {
	if s := (AeroBasis{}).String(); s != "basis<zpos, xpos, ypos>" {
		t.Fatalf("Basis.String\nhave %q", s)
	}
}

func TestToBasisV3(t *testing.T) {
	v := Vec3d{1, 2, 3}

	// A cyclic right-handed permutation: i spans z, j spans x, k
	// spans y, so the components land in slots (z, x, y).
	if u := ToBasisV3[AeroBasis](v); u != (Vec3d{3, 1, 2}) {
		t.Fatalf("ToBasisV3\nhave %v\nwant [3 1 2]", u)
	}
	if u := FromBasisV3[AeroBasis](Vec3d{3, 1, 2}); u != v {
		t.Fatalf("FromBasisV3\nhave %v\nwant %v", u, v)
	}

	if u := ToBasisV3[InitialBasis](v); u != v {
		t.Fatalf("ToBasisV3\nhave %v\nwant %v", u, v)
	}

	// Sign flips follow the axis directions.
	if u := ToBasisV3[Basis[XNeg, YPos, ZNeg]](v); u != (Vec3d{-1, 2, -3}) {
		t.Fatalf("ToBasisV3\nhave %v\nwant [-1 2 -3]", u)
	}
}

func roundTripV3[B Frame](t *testing.T, v Vec3d) {
	t.Helper()
	if u := FromBasisV3[B](ToBasisV3[B](v)); u != v {
		t.Fatalf("FromBasisV3(ToBasisV3)\nhave %v\nwant %v", u, v)
	}
	if u := ToBasisV3[B](FromBasisV3[B](v)); u != v {
		t.Fatalf("ToBasisV3(FromBasisV3)\nhave %v\nwant %v", u, v)
	}
}

func roundTripM4[B Frame](t *testing.T, m Mat4d) {
	t.Helper()
	if p := FromBasisM4[B](ToBasisM4[B](m)); p != m {
		t.Fatalf("FromBasisM4(ToBasisM4)\nhave %v\nwant %v", p, m)
	}
}

func roundTripQ[B Frame](t *testing.T, q Quatd) {
	t.Helper()
	if p := FromBasisQ[B](ToBasisQ[B](q)); p != q {
		t.Fatalf("FromBasisQ(ToBasisQ)\nhave %v\nwant %v", p, q)
	}
}

func TestBasisRoundTrip(t *testing.T) {
	v := Vec3d{1, -2, 3}
	m := Mat4d{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	q := Quatd{0.5, -0.5, 0.5, 0.5}

	roundTripV3[InitialBasis](t, v)
	roundTripV3[AeroBasis](t, v)
	roundTripV3[Basis[XPos, ZPos, YPos]](t, v)
	roundTripV3[Basis[XNeg, YNeg, ZPos]](t, v)
	roundTripV3[Basis[ZNeg, YPos, XNeg]](t, v)

	roundTripM4[InitialBasis](t, m)
	roundTripM4[AeroBasis](t, m)
	roundTripM4[Basis[XPos, ZPos, YPos]](t, m)
	roundTripM4[Basis[XNeg, YNeg, ZPos]](t, m)
	roundTripM4[Basis[ZNeg, YPos, XNeg]](t, m)

	roundTripQ[InitialBasis](t, q)
	roundTripQ[AeroBasis](t, q)
	roundTripQ[Basis[XPos, ZPos, YPos]](t, q)
	roundTripQ[Basis[XNeg, YNeg, ZPos]](t, q)
	roundTripQ[Basis[ZNeg, YPos, XNeg]](t, q)
}

// Changing the basis of a transform commutes with changing the basis
// of the points it acts on.
func TestToBasisM4Conjugation(t *testing.T) {
	m := AxisMat[YPos](0.8).Mul(Mat4d{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		2, -3, 5, 1,
	})
	p := Vec3d{0.5, -1, 2}

	have := ToBasisM4[AeroBasis](m).MulPoint(p)
	want := ToBasisV3[AeroBasis](m.MulPoint(FromBasisV3[AeroBasis](p)))
	if !eqV3(have, want) {
		t.Fatalf("ToBasisM4\nhave %v\nwant %v", have, want)
	}

	have = FromBasisM4[AeroBasis](m).MulPoint(p)
	want = FromBasisV3[AeroBasis](m.MulPoint(ToBasisV3[AeroBasis](p)))
	if !eqV3(have, want) {
		t.Fatalf("FromBasisM4\nhave %v\nwant %v", have, want)
	}
}

// A remapped quaternion must describe the same rotation: rotating a
// remapped vector by it matches remapping the rotated vector. This is
// what the angle sign flip on handedness change preserves.
func quatSameRotation[B Frame](t *testing.T, q Quatd, v Vec3d) {
	t.Helper()
	have := ToBasisQ[B](q).Rotate(ToBasisV3[B](v))
	want := ToBasisV3[B](q.Rotate(v))
	if !eqV3(have, want) {
		t.Fatalf("ToBasisQ rotation mismatch\nhave %v\nwant %v", have, want)
	}
}

func TestToBasisQ(t *testing.T) {
	q := NormQ(Quatd{1, 2, -1, 3})
	v := Vec3d{0.5, -1, 2}

	quatSameRotation[AeroBasis](t, q, v)
	quatSameRotation[Basis[XPos, ZPos, YPos]](t, q, v)
	quatSameRotation[Basis[XNeg, YNeg, ZPos]](t, q, v)
	quatSameRotation[Basis[ZNeg, YPos, XNeg]](t, q, v)
}

func checkAxisRotation[A Axis](t *testing.T, a float64) {
	t.Helper()
	v := Vec3d{0.5, -1, 2}
	have := AxisMat[A](a).MulPoint(v)
	want := AxisQuat[A](a).Rotate(v)
	if !eqV3(have, want) {
		t.Fatalf("AxisMat vs AxisQuat\nhave %v\nwant %v", have, want)
	}

	var ax A
	aa := AxisAngle[float64]{
		Axis: Vec3d{
			float64(ax.Dir()[0]),
			float64(ax.Dir()[1]),
			float64(ax.Dir()[2]),
		},
		Angle: a,
	}
	if u := aa.Rotate(v); !eqV3(u, want) {
		t.Fatalf("AxisAngle.Rotate\nhave %v\nwant %v", u, want)
	}
}

func TestAxisRotations(t *testing.T) {
	const a = 0.7
	checkAxisRotation[XPos](t, a)
	checkAxisRotation[YPos](t, a)
	checkAxisRotation[ZPos](t, a)
	checkAxisRotation[XNeg](t, a)
	checkAxisRotation[YNeg](t, a)
	checkAxisRotation[ZNeg](t, a)
}

func TestBasisVector(t *testing.T) {
	q := AxisQuat[ZPos](math.Pi / 2)

	if u := BasisVector[XPos](q); !eqV3(u, Vec3d{0, 1, 0}) {
		t.Fatalf("BasisVector\nhave %v\nwant [0 1 0]", u)
	}
	if u := BasisVector[XNeg](q); !eqV3(u, Vec3d{0, -1, 0}) {
		t.Fatalf("BasisVector\nhave %v\nwant [0 -1 0]", u)
	}
	if u := BasisVector[YPos](q); !eqV3(u, Vec3d{-1, 0, 0}) {
		t.Fatalf("BasisVector\nhave %v\nwant [-1 0 0]", u)
	}
	if u := BasisVector[ZPos](q); !eqV3(u, Vec3d{0, 0, 1}) {
		t.Fatalf("BasisVector\nhave %v\nwant [0 0 1]", u)
	}

	// Any unit quaternion: the basis vectors are the rotated frame.
	q = NormQ(Quatd{1, 2, -1, 3})
	if u := BasisVector[YPos](q); !eqV3(u, q.Rotate(Vec3d{0, 1, 0})) {
		t.Fatalf("BasisVector\nhave %v\nwant %v", u, q.Rotate(Vec3d{0, 1, 0}))
	}
	if u := BasisVector[XNeg](q); !eqV3(u, q.Rotate(Vec3d{-1, 0, 0})) {
		t.Fatalf("BasisVector\nhave %v\nwant %v", u, q.Rotate(Vec3d{-1, 0, 0}))
	}
	if u := BasisVector[YNeg](q); !eqV3(u, q.Rotate(Vec3d{0, -1, 0})) {
		t.Fatalf("BasisVector\nhave %v\nwant %v", u, q.Rotate(Vec3d{0, -1, 0}))
	}
	if u := BasisVector[ZNeg](q); !eqV3(u, q.Rotate(Vec3d{0, 0, -1})) {
		t.Fatalf("BasisVector\nhave %v\nwant %v", u, q.Rotate(Vec3d{0, 0, -1}))
	}

	// The identity leaves every tagged direction in place, for any
	// element type that can hold -1.
	qi := Quat[int]{0, 0, 0, 1}
	if u := BasisVector[XNeg](qi); u != (Vec3[int]{-1, 0, 0}) {
		t.Fatalf("BasisVector\nhave %v\nwant [-1 0 0]", u)
	}
	if u := BasisVector[ZNeg](qi); u != (Vec3[int]{0, 0, -1}) {
		t.Fatalf("BasisVector\nhave %v\nwant [0 0 -1]", u)
	}
}
