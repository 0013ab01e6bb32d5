package groupby

import (
	"fmt"
	"iter"
)

// Stage names the callback that failed.
type Stage string

const (
	StageKey        Stage = "key"
	StageAccumulate Stage = "accumulate"
)

// CallbackError reports a failure returned by a caller-supplied key or
// accumulate function. Index is the zero-based position of the element
// being folded.
type CallbackError struct {
	Stage Stage
	Index int
	Err   error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("groupby: %s callback failed at element %d: %v", e.Stage, e.Index, e.Err)
}

func (e *CallbackError) Unwrap() error { return e.Err }

// TryAccumulator is an Accumulator that can fail.
type TryAccumulator[V, A any] func(current A, present bool, v V) (A, error)

// TryGeneric is Generic with a fallible accumulate. The first error aborts
// the pass and is returned as a *CallbackError; the partial result is
// discarded.
func TryGeneric[K comparable, V, A any](seq iter.Seq2[K, V], accumulate TryAccumulator[V, A]) (*Groups[K, A], error) {
	out := newGroups[K, A]()
	i := 0
	for k, v := range seq {
		cur, ok := out.Get(k)
		next, err := accumulate(cur, ok, v)
		if err != nil {
			return nil, &CallbackError{Stage: StageAccumulate, Index: i, Err: err}
		}
		out.put(k, next)
		i++
	}
	return out, nil
}

// TryGenericBy is TryGeneric over elements keyed by a fallible key function.
func TryGenericBy[T any, K comparable, A any](seq iter.Seq[T], key func(T) (K, error), accumulate TryAccumulator[T, A]) (*Groups[K, A], error) {
	var keyErr error
	var keyed iter.Seq2[K, T] = func(yield func(K, T) bool) {
		i := 0
		for x := range seq {
			k, err := key(x)
			if err != nil {
				keyErr = &CallbackError{Stage: StageKey, Index: i, Err: err}
				return
			}
			if !yield(k, x) {
				return
			}
			i++
		}
	}

	out, err := TryGeneric(keyed, accumulate)
	if err != nil {
		return nil, err
	}
	if keyErr != nil {
		return nil, keyErr
	}
	return out, nil
}
