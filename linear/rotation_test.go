// Copyright 2026 The linmath Authors. All rights reserved.

package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
)

func TestAxisAngle(t *testing.T) {
	aa := AxisAngle[float64]{Axis: Vec3d{0, 0, 1}, Angle: math.Pi / 2}

	if u := aa.Rotate(Vec3d{1, 0, 0}); !eqV3(u, Vec3d{0, 1, 0}) {
		t.Fatalf("AxisAngle.Rotate\nhave %v\nwant [0 1 0]", u)
	}
	if u := aa.Mat().MulPoint(Vec3d{1, 0, 0}); !eqV3(u, Vec3d{0, 1, 0}) {
		t.Fatalf("AxisAngle.Mat\nhave %v\nwant [0 1 0]", u)
	}
	if u := aa.Quat().Rotate(Vec3d{1, 0, 0}); !eqV3(u, Vec3d{0, 1, 0}) {
		t.Fatalf("AxisAngle.Quat\nhave %v\nwant [0 1 0]", u)
	}

	// An arbitrary unit axis: the three forms agree.
	aa = AxisAngle[float64]{Axis: NormV3(Vec3d{1, 2, 3}), Angle: 0.9}
	v := Vec3d{-2, 0.5, 1}

	want := aa.Rotate(v)
	if u := aa.Mat().MulPoint(v); !eqV3(u, want) {
		t.Fatalf("AxisAngle.Mat\nhave %v\nwant %v", u, want)
	}
	if u := aa.Quat().Rotate(v); !eqV3(u, want) {
		t.Fatalf("AxisAngle.Quat\nhave %v\nwant %v", u, want)
	}
	if u := aa.Quat().Mat().MulVec(v); !eqV3(u, want) {
		t.Fatalf("Quat.Mat\nhave %v\nwant %v", u, want)
	}

	// Rotation preserves magnitude.
	if m := MagV3(want); !eqS(m, MagV3(v)) {
		t.Fatalf("AxisAngle.Rotate magnitude\nhave %v\nwant %v", m, MagV3(v))
	}
}

func TestEulerIdentity(t *testing.T) {
	var e Euler[float64, InitialBasis]
	var id Mat4d
	id.I()

	if m := e.Mat(); m != id {
		t.Fatalf("Euler.Mat\nhave %v\nwant identity", m)
	}
	if q := e.Quat(); q != (Quatd{0, 0, 0, 1}) {
		t.Fatalf("Euler.Quat\nhave %v\nwant identity", q)
	}
}

// Proper Euler angles compose as intrinsic zx'z″, which in the fixed
// initial frame is qz(alpha) ⋅ qx(beta) ⋅ qz(gamma).
func TestEulerComposition(t *testing.T) {
	e := Euler[float64, InitialBasis]{Alpha: 0.3, Beta: -1.1, Gamma: 2.0}

	want := AxisQuat[ZPos](e.Alpha).
		Mul(AxisQuat[XPos](e.Beta)).
		Mul(AxisQuat[ZPos](e.Gamma))
	if q := e.Quat(); !eqQ(q, want) {
		t.Fatalf("Euler.Quat\nhave %v\nwant %v", q, want)
	}

	v := Vec3d{1, -0.5, 2}
	if u := e.Mat().MulPoint(v); !eqV3(u, want.Rotate(v)) {
		t.Fatalf("Euler.Mat\nhave %v\nwant %v", u, want.Rotate(v))
	}
}

// Tait-Bryan angles compose as intrinsic zy'x″, which in the fixed
// initial frame is qz(alpha) ⋅ qy(beta) ⋅ qx(gamma).
func TestTaitBryanComposition(t *testing.T) {
	tb := TaitBryan[float64, InitialBasis]{Alpha: 0.4, Beta: 0.7, Gamma: -0.2}

	want := AxisQuat[ZPos](tb.Alpha).
		Mul(AxisQuat[YPos](tb.Beta)).
		Mul(AxisQuat[XPos](tb.Gamma))
	if q := tb.Quat(); !eqQ(q, want) {
		t.Fatalf("TaitBryan.Quat\nhave %v\nwant %v", q, want)
	}

	v := Vec3d{1, -0.5, 2}
	if u := tb.Mat().MulPoint(v); !eqV3(u, want.Rotate(v)) {
		t.Fatalf("TaitBryan.Mat\nhave %v\nwant %v", u, want.Rotate(v))
	}
}

// With the aerospace basis the yaw axis is the frame's first axis,
// which spans initial z, so the angles relabel accordingly: a pure
// yaw in AeroBasis is a rotation about initial y once expressed in
// the initial frame.
func TestTaitBryanAeroBasis(t *testing.T) {
	tb := TaitBryan[float64, AeroBasis]{Alpha: 0.9}

	want := AxisQuat[YPos](0.9)
	if q := tb.Quat(); !eqQ(q, want) {
		t.Fatalf("TaitBryan.Quat\nhave %v\nwant %v", q, want)
	}

	v := Vec3d{1, 2, 3}
	if u := tb.Mat().MulPoint(v); !eqV3(u, want.Rotate(v)) {
		t.Fatalf("TaitBryan.Mat\nhave %v\nwant %v", u, want.Rotate(v))
	}
}

func TestAngleAccessors(t *testing.T) {
	e := Euler[float64, InitialBasis]{Alpha: 1, Beta: 2, Gamma: 3}
	if e.Phi() != 1 || e.Theta() != 2 || e.Psi() != 3 {
		t.Fatalf("Euler accessors\nhave %v %v %v\nwant 1 2 3", e.Phi(), e.Theta(), e.Psi())
	}

	tb := TaitBryan[float64, AeroBasis]{Alpha: 4, Beta: 5, Gamma: 6}
	if tb.Yaw() != 4 || tb.Pitch() != 5 || tb.Roll() != 6 {
		t.Fatalf("TaitBryan accessors\nhave %v %v %v\nwant 4 5 6", tb.Yaw(), tb.Pitch(), tb.Roll())
	}
}

func asNumber(q Quatd) quat.Number {
	return quat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

// Cross-check the Hamilton product against gonum's quaternions.
func TestQuatMulOracle(t *testing.T) {
	pairs := [][2]Quatd{
		{{1, 0, 0, 3}, {0, 1, 0, 3}},
		{{0.5, -0.25, 1, 2}, {-1, 0.75, 0.5, -0.5}},
		{NormQ(Quatd{1, 2, 3, 4}), NormQ(Quatd{-2, 1, 0.5, 3})},
	}
	for _, p := range pairs {
		have := asNumber(p[0].Mul(p[1]))
		want := quat.Mul(asNumber(p[0]), asNumber(p[1]))
		if !eqS(have.Real, want.Real) || !eqS(have.Imag, want.Imag) ||
			!eqS(have.Jmag, want.Jmag) || !eqS(have.Kmag, want.Kmag) {
			t.Fatalf("Quat.Mul\nhave %v\nwant %v", have, want)
		}
	}
}
