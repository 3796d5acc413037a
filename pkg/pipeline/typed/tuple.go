package typed

// T2 is an ordered pair carrying a two-value tuple result between stages.
type T2[A, B any] struct {
	A A
	B B
}

// T3 is an ordered triple carrying a three-value tuple result between stages.
type T3[A, B, C any] struct {
	A A
	B B
	C C
}

// Pack2 adapts a function returning two values into one returning a T2, so it
// can form a chain stage.
func Pack2[T, A, B any](f func(T) (A, B)) func(T) T2[A, B] {
	return func(in T) T2[A, B] {
		a, b := f(in)
		return T2[A, B]{A: a, B: b}
	}
}

// Pack3 adapts a function returning three values into one returning a T3.
func Pack3[T, A, B, C any](f func(T) (A, B, C)) func(T) T3[A, B, C] {
	return func(in T) T3[A, B, C] {
		a, b, c := f(in)
		return T3[A, B, C]{A: a, B: b, C: c}
	}
}

// Spread2 adapts a two-argument function to accept a T2, so a tuple-returning
// stage composes with a multi-parameter successor.
func Spread2[A, B, R any](f func(A, B) R) func(T2[A, B]) R {
	return func(t T2[A, B]) R { return f(t.A, t.B) }
}

// Spread3 adapts a three-argument function to accept a T3.
func Spread3[A, B, C, R any](f func(A, B, C) R) func(T3[A, B, C]) R {
	return func(t T3[A, B, C]) R { return f(t.A, t.B, t.C) }
}
