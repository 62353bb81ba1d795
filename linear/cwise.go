// Copyright 2026 The linmath Authors. All rights reserved.

package linear

// tuple is the common storage view of vectors, matrices and
// quaternions. Every container exposes its components as a flat
// slice through a pointer receiver so the Apply functions can write
// results in place on a local copy.
type tuple[T any] interface {
	comps() []T
}

// Apply returns the container whose components are f applied to each
// component of v.
func Apply[V any, T Num, P interface {
	*V
	tuple[T]
}](f func(T) T, v V) V {
	s := P(&v).comps()
	for i := range s {
		s[i] = f(s[i])
	}
	return v
}

// Apply2 returns the container whose components are f applied to the
// corresponding components of v and w.
func Apply2[V any, T Num, P interface {
	*V
	tuple[T]
}](f func(T, T) T, v, w V) V {
	s := P(&v).comps()
	t := P(&w).comps()
	for i := range s {
		s[i] = f(s[i], t[i])
	}
	return v
}

// Apply3 returns the container whose components are f applied to the
// corresponding components of u, v and w.
func Apply3[V any, T Num, P interface {
	*V
	tuple[T]
}](f func(T, T, T) T, u, v, w V) V {
	s := P(&u).comps()
	t := P(&v).comps()
	r := P(&w).comps()
	for i := range s {
		s[i] = f(s[i], t[i], r[i])
	}
	return u
}

// ApplyS returns the container whose components are f applied to each
// component of v with x as the second argument.
func ApplyS[V any, T Num, P interface {
	*V
	tuple[T]
}](f func(T, T) T, v V, x T) V {
	s := P(&v).comps()
	for i := range s {
		s[i] = f(s[i], x)
	}
	return v
}

// ApplySL returns the container whose components are f applied to x
// as the first argument and each component of v as the second.
func ApplySL[V any, T Num, P interface {
	*V
	tuple[T]
}](f func(T, T) T, x T, v V) V {
	s := P(&v).comps()
	for i := range s {
		s[i] = f(x, s[i])
	}
	return v
}

// Fill returns the container with every component set to x.
func Fill[V any, T Num, P interface {
	*V
	tuple[T]
}](x T) V {
	var v V
	s := P(&v).comps()
	for i := range s {
		s[i] = x
	}
	return v
}

func add[T Num](x, y T) T { return x + y }
func sub[T Num](x, y T) T { return x - y }
func mul[T Num](x, y T) T { return x * y }
func div[T Num](x, y T) T { return x / y }
func neg[T Num](x T) T    { return -x }
