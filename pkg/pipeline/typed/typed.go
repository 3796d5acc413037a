package typed

// Pipe wraps a function from T to R built up by chaining with Then.
type Pipe[T, R any] struct {
	f func(T) R
}

// From starts a chain from a single function.
func From[T, R any](f func(T) R) Pipe[T, R] {
	return Pipe[T, R]{f: f}
}

// Call invokes the composed chain.
func (p Pipe[T, R]) Call(in T) R {
	return p.f(in)
}

// Fn returns the chain as a plain function.
func (p Pipe[T, R]) Fn() func(T) R {
	return p.f
}

// Then composes p with g, preserving the chain's input type.
func Then[T, M, R any](p Pipe[T, M], g func(M) R) Pipe[T, R] {
	return Pipe[T, R]{f: func(in T) R { return g(p.f(in)) }}
}

// PipeErr wraps a fallible function from T to (R, error).
type PipeErr[T, R any] struct {
	f func(T) (R, error)
}

// FromErr starts a fallible chain from a single function.
func FromErr[T, R any](f func(T) (R, error)) PipeErr[T, R] {
	return PipeErr[T, R]{f: f}
}

// Call invokes the composed chain, returning the first error encountered.
func (p PipeErr[T, R]) Call(in T) (R, error) {
	return p.f(in)
}

// Fn returns the chain as a plain function.
func (p PipeErr[T, R]) Fn() func(T) (R, error) {
	return p.f
}

// ThenTry composes p with a fallible g; a prior error short-circuits and g is
// not called.
func ThenTry[T, M, R any](p PipeErr[T, M], g func(M) (R, error)) PipeErr[T, R] {
	return PipeErr[T, R]{f: func(in T) (R, error) {
		m, err := p.f(in)
		if err != nil {
			var zero R
			return zero, err
		}
		return g(m)
	}}
}

// Lift converts an infallible chain into a fallible one for further chaining
// with ThenTry.
func Lift[T, R any](p Pipe[T, R]) PipeErr[T, R] {
	return PipeErr[T, R]{f: func(in T) (R, error) { return p.f(in), nil }}
}
