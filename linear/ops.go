// Copyright 2026 The linmath Authors. All rights reserved.

package linear

// Componentwise arithmetic. Every method returns a new value and
// delegates to the Apply functions so all containers share one
// implementation of each operation.

// Add returns v + w.
func (v Vec1[T]) Add(w Vec1[T]) Vec1[T] { return Apply2(add[T], v, w) }

// Sub returns v - w.
func (v Vec1[T]) Sub(w Vec1[T]) Vec1[T] { return Apply2(sub[T], v, w) }

// Neg returns -v.
func (v Vec1[T]) Neg() Vec1[T] { return Apply(neg[T], v) }

// Scale returns v scaled by x.
func (v Vec1[T]) Scale(x T) Vec1[T] { return ApplyS(mul[T], v, x) }

// Div returns v divided by x.
func (v Vec1[T]) Div(x T) Vec1[T] { return ApplyS(div[T], v, x) }

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Apply2(add[T], v, w) }

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Apply2(sub[T], v, w) }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Apply(neg[T], v) }

// Scale returns v scaled by x.
func (v Vec2[T]) Scale(x T) Vec2[T] { return ApplyS(mul[T], v, x) }

// Div returns v divided by x.
func (v Vec2[T]) Div(x T) Vec2[T] { return ApplyS(div[T], v, x) }

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { return Apply2(add[T], v, w) }

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { return Apply2(sub[T], v, w) }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Apply(neg[T], v) }

// Scale returns v scaled by x.
func (v Vec3[T]) Scale(x T) Vec3[T] { return ApplyS(mul[T], v, x) }

// Div returns v divided by x.
func (v Vec3[T]) Div(x T) Vec3[T] { return ApplyS(div[T], v, x) }

// Add returns v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] { return Apply2(add[T], v, w) }

// Sub returns v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] { return Apply2(sub[T], v, w) }

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return Apply(neg[T], v) }

// Scale returns v scaled by x.
func (v Vec4[T]) Scale(x T) Vec4[T] { return ApplyS(mul[T], v, x) }

// Div returns v divided by x.
func (v Vec4[T]) Div(x T) Vec4[T] { return ApplyS(div[T], v, x) }

// Add returns m + n.
func (m Mat2[T]) Add(n Mat2[T]) Mat2[T] { return Apply2(add[T], m, n) }

// Sub returns m - n.
func (m Mat2[T]) Sub(n Mat2[T]) Mat2[T] { return Apply2(sub[T], m, n) }

// Neg returns -m.
func (m Mat2[T]) Neg() Mat2[T] { return Apply(neg[T], m) }

// Scale returns m scaled by x.
func (m Mat2[T]) Scale(x T) Mat2[T] { return ApplyS(mul[T], m, x) }

// Div returns m divided by x.
func (m Mat2[T]) Div(x T) Mat2[T] { return ApplyS(div[T], m, x) }

// Add returns m + n.
func (m Mat3[T]) Add(n Mat3[T]) Mat3[T] { return Apply2(add[T], m, n) }

// Sub returns m - n.
func (m Mat3[T]) Sub(n Mat3[T]) Mat3[T] { return Apply2(sub[T], m, n) }

// Neg returns -m.
func (m Mat3[T]) Neg() Mat3[T] { return Apply(neg[T], m) }

// Scale returns m scaled by x.
func (m Mat3[T]) Scale(x T) Mat3[T] { return ApplyS(mul[T], m, x) }

// Div returns m divided by x.
func (m Mat3[T]) Div(x T) Mat3[T] { return ApplyS(div[T], m, x) }

// Add returns m + n.
func (m Mat4[T]) Add(n Mat4[T]) Mat4[T] { return Apply2(add[T], m, n) }

// Sub returns m - n.
func (m Mat4[T]) Sub(n Mat4[T]) Mat4[T] { return Apply2(sub[T], m, n) }

// Neg returns -m.
func (m Mat4[T]) Neg() Mat4[T] { return Apply(neg[T], m) }

// Scale returns m scaled by x.
func (m Mat4[T]) Scale(x T) Mat4[T] { return ApplyS(mul[T], m, x) }

// Div returns m divided by x.
func (m Mat4[T]) Div(x T) Mat4[T] { return ApplyS(div[T], m, x) }

// Add returns q + r.
func (q Quat[T]) Add(r Quat[T]) Quat[T] { return Apply2(add[T], q, r) }

// Sub returns q - r.
func (q Quat[T]) Sub(r Quat[T]) Quat[T] { return Apply2(sub[T], q, r) }

// Neg returns -q.
func (q Quat[T]) Neg() Quat[T] { return Apply(neg[T], q) }

// Scale returns q scaled by x.
func (q Quat[T]) Scale(x T) Quat[T] { return ApplyS(mul[T], q, x) }

// Div returns q divided by x.
func (q Quat[T]) Div(x T) Quat[T] { return ApplyS(div[T], q, x) }
