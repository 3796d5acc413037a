package pipeline

import "fmt"

// UnpackMode controls how a stage's result becomes the next stage's
// positional arguments.
type UnpackMode string

const (
	// UnpackNone passes the stage result whole, as a single argument.
	UnpackNone UnpackMode = "none"
	// UnpackTuple spreads the stage result as separate arguments. The result
	// must be an ordered sequence: either a multi-value return or a single
	// slice/array value.
	UnpackTuple UnpackMode = "tuple"
)

// Pipeline is an ordered sequence of stages invoked left to right by Call.
// The zero value is an empty pipeline. Every Then variant returns a new
// Pipeline value and never mutates the receiver, so a built pipeline can be
// shared, branched, and invoked concurrently.
type Pipeline struct {
	stages []Stage
	err    error
}

// New creates an empty pipeline. Call on it returns its input unchanged.
func New() Pipeline {
	return Pipeline{}
}

// Then appends f as a stage whose result is passed whole to the next stage.
func (p Pipeline) Then(f any) Pipeline {
	return p.ThenWith(f, UnpackNone)
}

// ThenUnpack appends f as a stage whose result is spread as positional
// arguments to the next stage.
func (p Pipeline) ThenUnpack(f any) Pipeline {
	return p.ThenWith(f, UnpackTuple)
}

// ThenWith appends f with an explicit unpack mode. A non-function f or an
// unrecognized mode is recorded and reported by the next Call.
func (p Pipeline) ThenWith(f any, mode UnpackMode) Pipeline {
	if p.err != nil {
		return p
	}

	st, err := newStage(f, mode)
	if err != nil {
		return Pipeline{stages: p.stages, err: err}
	}

	stages := make([]Stage, len(p.stages), len(p.stages)+1)
	copy(stages, p.stages)
	return Pipeline{stages: append(stages, st)}
}

func (p Pipeline) Len() int {
	return len(p.stages)
}

// Stages returns a copy of the stage sequence.
func (p Pipeline) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// Call invokes the stages in order, folding the arguments left to right.
// Each stage receives the previous stage's result shaped by that stage's
// unpack mode; the final stage's result is returned as-is, so a declared
// unpack mode on the last stage has no effect on the returned value. With
// zero stages Call is the identity: the single argument when exactly one was
// given, the argument slice when several, nil when none.
func (p Pipeline) Call(args ...any) (any, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.stages) == 0 {
		return identity(args), nil
	}

	acc := args
	var result any
	for i, st := range p.stages {
		var err error
		result, err = st.invoke(acc)
		if err != nil {
			return nil, err
		}

		if i == len(p.stages)-1 {
			break
		}

		acc, err = st.next(result)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, st.id, err)
		}
	}
	return result, nil
}

// Apply invokes Call with args spread as positional arguments.
//
// Experimental: prefer Call.
func (p Pipeline) Apply(args []any) (any, error) {
	return p.Call(args...)
}

func identity(args []any) any {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return args[0]
	default:
		return args
	}
}
