// Copyright 2026 The linmath Authors. All rights reserved.

package linear

// Named component accessors. Every alias family (x/y/z/w spatial,
// r/g/b/a color, s/t/p/q texture, i/j/k/l index, w/h extent) reads the
// same storage as index access: alias d of a family is exactly v[d].

// X returns component 0.
func (v Vec1[E]) X() E { return v[0] }

// R returns component 0.
func (v Vec1[E]) R() E { return v[0] }

// S returns component 0.
func (v Vec1[E]) S() E { return v[0] }

// I returns component 0.
func (v Vec1[E]) I() E { return v[0] }

// X returns component 0.
func (v Vec2[E]) X() E { return v[0] }

// Y returns component 1.
func (v Vec2[E]) Y() E { return v[1] }

// R returns component 0.
func (v Vec2[E]) R() E { return v[0] }

// G returns component 1.
func (v Vec2[E]) G() E { return v[1] }

// S returns component 0.
func (v Vec2[E]) S() E { return v[0] }

// T returns component 1.
func (v Vec2[E]) T() E { return v[1] }

// I returns component 0.
func (v Vec2[E]) I() E { return v[0] }

// J returns component 1.
func (v Vec2[E]) J() E { return v[1] }

// W returns component 0, read as a width.
func (v Vec2[E]) W() E { return v[0] }

// H returns component 1, read as a height.
func (v Vec2[E]) H() E { return v[1] }

// X returns component 0.
func (v Vec3[E]) X() E { return v[0] }

// Y returns component 1.
func (v Vec3[E]) Y() E { return v[1] }

// Z returns component 2.
func (v Vec3[E]) Z() E { return v[2] }

// R returns component 0.
func (v Vec3[E]) R() E { return v[0] }

// G returns component 1.
func (v Vec3[E]) G() E { return v[1] }

// B returns component 2.
func (v Vec3[E]) B() E { return v[2] }

// S returns component 0.
func (v Vec3[E]) S() E { return v[0] }

// T returns component 1.
func (v Vec3[E]) T() E { return v[1] }

// P returns component 2.
func (v Vec3[E]) P() E { return v[2] }

// I returns component 0.
func (v Vec3[E]) I() E { return v[0] }

// J returns component 1.
func (v Vec3[E]) J() E { return v[1] }

// K returns component 2.
func (v Vec3[E]) K() E { return v[2] }

// XY returns components 0 and 1 as a Vec2.
func (v Vec3[E]) XY() Vec2[E] { return Vec2[E]{v[0], v[1]} }

// X returns component 0.
func (v Vec4[E]) X() E { return v[0] }

// Y returns component 1.
func (v Vec4[E]) Y() E { return v[1] }

// Z returns component 2.
func (v Vec4[E]) Z() E { return v[2] }

// W returns component 3.
func (v Vec4[E]) W() E { return v[3] }

// R returns component 0.
func (v Vec4[E]) R() E { return v[0] }

// G returns component 1.
func (v Vec4[E]) G() E { return v[1] }

// B returns component 2.
func (v Vec4[E]) B() E { return v[2] }

// A returns component 3.
func (v Vec4[E]) A() E { return v[3] }

// S returns component 0.
func (v Vec4[E]) S() E { return v[0] }

// T returns component 1.
func (v Vec4[E]) T() E { return v[1] }

// P returns component 2.
func (v Vec4[E]) P() E { return v[2] }

// Q returns component 3.
func (v Vec4[E]) Q() E { return v[3] }

// I returns component 0.
func (v Vec4[E]) I() E { return v[0] }

// J returns component 1.
func (v Vec4[E]) J() E { return v[1] }

// K returns component 2.
func (v Vec4[E]) K() E { return v[2] }

// L returns component 3.
func (v Vec4[E]) L() E { return v[3] }

// XY returns components 0 and 1 as a Vec2.
func (v Vec4[E]) XY() Vec2[E] { return Vec2[E]{v[0], v[1]} }

// ZW returns components 2 and 3 as a Vec2.
func (v Vec4[E]) ZW() Vec2[E] { return Vec2[E]{v[2], v[3]} }

// XYZ returns components 0 through 2 as a Vec3.
func (v Vec4[E]) XYZ() Vec3[E] { return Vec3[E]{v[0], v[1], v[2]} }

// RGB returns components 0 through 2 as a Vec3.
func (v Vec4[E]) RGB() Vec3[E] { return Vec3[E]{v[0], v[1], v[2]} }

// Shorthands for the common scalar instantiations.
type (
	Vec2f = Vec2[float32]
	Vec3f = Vec3[float32]
	Vec4f = Vec4[float32]
	Vec2d = Vec2[float64]
	Vec3d = Vec3[float64]
	Vec4d = Vec4[float64]

	Mat2f = Mat2[float32]
	Mat3f = Mat3[float32]
	Mat4f = Mat4[float32]
	Mat2d = Mat2[float64]
	Mat3d = Mat3[float64]
	Mat4d = Mat4[float64]

	Quatf = Quat[float32]
	Quatd = Quat[float64]
)
