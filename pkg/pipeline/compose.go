package pipeline

// Compose returns a callable equivalent to g(f(in)).
func Compose[T, U, V any](f func(T) U, g func(U) V) func(T) V {
	return func(in T) V {
		return g(f(in))
	}
}

// ComposeErr composes two fallible callables, short-circuiting on the first
// error.
func ComposeErr[T, U, V any](f func(T) (U, error), g func(U) (V, error)) func(T) (V, error) {
	return func(in T) (V, error) {
		u, err := f(in)
		if err != nil {
			var zero V
			return zero, err
		}
		return g(u)
	}
}
