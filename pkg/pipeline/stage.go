package pipeline

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Stage is one (callable, unpack mode) unit in a pipeline's sequence.
type Stage struct {
	id        uuid.UUID
	createdAt time.Time
	fn        reflect.Value
	mode      UnpackMode
	fallible  bool
}

func newStage(f any, mode UnpackMode) (Stage, error) {
	if mode != UnpackNone && mode != UnpackTuple {
		return Stage{}, fmt.Errorf("%w: %q", ErrUnsupportedUnpack, mode)
	}

	fn := reflect.ValueOf(f)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return Stage{}, ErrNotFunc
	}

	t := fn.Type()
	return Stage{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		fn:        fn,
		mode:      mode,
		fallible:  t.NumOut() > 0 && t.Out(t.NumOut()-1) == errType,
	}, nil
}

func (s Stage) Id() uuid.UUID {
	return s.id
}

// CreatedAt time creation (UTC)
func (s Stage) CreatedAt() time.Time {
	return s.createdAt
}

func (s Stage) Mode() UnpackMode {
	return s.mode
}

// Fallible reports whether the stage function's final return value is an
// error, making a non-nil error stop the pipeline.
func (s Stage) Fallible() bool {
	return s.fallible
}

// invoke calls the stage function with the given positional arguments and
// collapses its return values into a single result. A multi-value return
// becomes a []any tuple; the trailing error of a fallible stage is stripped
// from the tuple and returned separately.
func (s Stage) invoke(args []any) (any, error) {
	t := s.fn.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			// reflect.ValueOf(nil) is invalid; pass the typed zero value
			in[i] = reflect.New(argType(t, i)).Elem()
			continue
		}
		in[i] = reflect.ValueOf(a)
	}

	out := s.fn.Call(in)

	if s.fallible {
		last := out[len(out)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		out = out[:len(out)-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		vals := make([]any, len(out))
		for i, v := range out {
			vals[i] = v.Interface()
		}
		return vals, nil
	}
}

// next shapes the stage result into the next stage's positional arguments
// according to the unpack mode.
func (s Stage) next(result any) ([]any, error) {
	if s.mode == UnpackNone {
		return []any{result}, nil
	}

	if vals, ok := result.([]any); ok {
		return vals, nil
	}

	v := reflect.ValueOf(result)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: result of type %T", ErrUnpack, result)
	}

	vals := make([]any, v.Len())
	for i := range vals {
		vals[i] = v.Index(i).Interface()
	}
	return vals, nil
}

// argType resolves the declared parameter type at position i, accounting for
// variadic functions.
func argType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}
