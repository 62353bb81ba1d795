// Copyright 2026 The linmath Authors. All rights reserved.

// Package linear implements basis-aware math for 3D graphics.
//
// Containers are plain fixed-size value types: vectors of one to four
// components, square matrices up to 4x4 and quaternions, all generic
// over the scalar type. Anything trigonometric requires a floating
// point scalar; the containers themselves work with any Num.
//
// No function validates its input. Preconditions (unit axes, unit
// quaternions, invertible matrices) are stated in doc comments and
// violations produce numerically wrong results, never panics.
package linear

import (
	"fmt"
	"strings"
)

// Num is the set of scalar types the containers accept.
type Num interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the set of scalar types the trigonometric conversions
// accept.
type Float interface {
	~float32 | ~float64
}

// Vec1 is a 1-component vector.
type Vec1[T Num] [1]T

// Vec2 is a 2-component vector.
type Vec2[T Num] [2]T

// Vec3 is a 3-component vector.
type Vec3[T Num] [3]T

// Vec4 is a 4-component vector.
type Vec4[T Num] [4]T

func (v *Vec1[T]) comps() []T { return v[:] }
func (v *Vec2[T]) comps() []T { return v[:] }
func (v *Vec3[T]) comps() []T { return v[:] }
func (v *Vec4[T]) comps() []T { return v[:] }

// IsZero reports whether every component of v is zero.
func (v Vec1[T]) IsZero() bool { return allZero(v[:]) }

// IsZero reports whether every component of v is zero.
func (v Vec2[T]) IsZero() bool { return allZero(v[:]) }

// IsZero reports whether every component of v is zero.
func (v Vec3[T]) IsZero() bool { return allZero(v[:]) }

// IsZero reports whether every component of v is zero.
func (v Vec4[T]) IsZero() bool { return allZero(v[:]) }

// Less reports whether v precedes w in lexicographic component order.
func (v Vec1[T]) Less(w Vec1[T]) bool { return lexLess(v[:], w[:]) }

// Less reports whether v precedes w in lexicographic component order.
func (v Vec2[T]) Less(w Vec2[T]) bool { return lexLess(v[:], w[:]) }

// Less reports whether v precedes w in lexicographic component order.
func (v Vec3[T]) Less(w Vec3[T]) bool { return lexLess(v[:], w[:]) }

// Less reports whether v precedes w in lexicographic component order.
func (v Vec4[T]) Less(w Vec4[T]) bool { return lexLess(v[:], w[:]) }

// String returns a debug representation of v.
func (v Vec1[T]) String() string { return tupleString("vec1", v[:]) }

// String returns a debug representation of v.
func (v Vec2[T]) String() string { return tupleString("vec2", v[:]) }

// String returns a debug representation of v.
func (v Vec3[T]) String() string { return tupleString("vec3", v[:]) }

// String returns a debug representation of v.
func (v Vec4[T]) String() string { return tupleString("vec4", v[:]) }

func allZero[T Num](s []T) bool {
	for _, x := range s {
		if x != 0 {
			return false
		}
	}
	return true
}

func lexLess[T Num](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// tupleString lists the scalar type and the components in storage
// order.
func tupleString[T Num](kind string, s []T) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%T]{", kind, s[0])
	for i, x := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte('}')
	return b.String()
}
