package groupby

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is a value that can be summed and divided by a count.
type Number interface {
	constraints.Integer | constraints.Float
}

// Addable is a value supporting the + operator.
type Addable interface {
	Number | constraints.Complex | ~string
}

// Accumulator folds v into the current per-key aggregate. present is false
// on the first occurrence of a key, in which case current is the zero value.
type Accumulator[V, A any] func(current A, present bool, v V) A

// Pair is a single key/value input element.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Pairs yields the elements of ps as key/value pairs.
func Pairs[K comparable, V any](ps []Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range ps {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keyed pairs every element x of seq with key(x).
func Keyed[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		for x := range seq {
			if !yield(key(x), x) {
				return
			}
		}
	}
}

func fold[K comparable, V, A any](seq iter.Seq2[K, V], step Accumulator[V, A]) *Groups[K, A] {
	out := newGroups[K, A]()
	for k, v := range seq {
		cur, ok := out.Get(k)
		out.put(k, step(cur, ok, v))
	}
	return out
}

// Generic calls accumulate once per element with the key's current
// aggregate; its return value replaces the aggregate verbatim.
func Generic[K comparable, V, A any](seq iter.Seq2[K, V], accumulate Accumulator[V, A]) *Groups[K, A] {
	return fold(seq, accumulate)
}

// GenericBy is Generic over elements keyed by key.
func GenericBy[T any, K comparable, A any](seq iter.Seq[T], key func(T) K, accumulate Accumulator[T, A]) *Groups[K, A] {
	return fold(Keyed(seq, key), accumulate)
}

// Count returns the number of elements per key.
func Count[K comparable, V any](seq iter.Seq2[K, V]) *Groups[K, int] {
	return fold(seq, func(cur int, _ bool, _ V) int { return cur + 1 })
}

// CountBy is Count over elements keyed by key.
func CountBy[T any, K comparable](seq iter.Seq[T], key func(T) K) *Groups[K, int] {
	return Count(Keyed(seq, key))
}

// Sum adds the values of each key, starting from the first value seen.
// Overflow wraps as it does for the + operator.
func Sum[K comparable, V Addable](seq iter.Seq2[K, V]) *Groups[K, V] {
	return fold(seq, func(cur V, ok bool, v V) V {
		if !ok {
			return v
		}
		return cur + v
	})
}

// SumBy is Sum over elements keyed by key.
func SumBy[T Addable, K comparable](seq iter.Seq[T], key func(T) K) *Groups[K, T] {
	return Sum(Keyed(seq, key))
}

type running[V Number] struct {
	sum V
	n   int
}

// Average returns the mean of the values of each key. Integer values use
// integer division.
func Average[K comparable, V Number](seq iter.Seq2[K, V]) *Groups[K, V] {
	totals := fold(seq, func(cur running[V], ok bool, v V) running[V] {
		if !ok {
			return running[V]{sum: v, n: 1}
		}
		cur.sum += v
		cur.n++
		return cur
	})

	out := &Groups[K, V]{
		index: totals.index,
		keys:  totals.keys,
		vals:  make([]V, len(totals.vals)),
	}
	for i, r := range totals.vals {
		out.vals[i] = mean(r.sum, r.n)
	}
	return out
}

// mean divides in a 64-bit domain so that a count too large for a narrow
// integer V neither wraps nor reaches zero.
func mean[V Number](sum V, n int) V {
	var one V = 1
	switch {
	case one/2 != 0: // floating point
		return sum / V(n)
	case V(0)-one < 0: // signed integer
		return V(int64(sum) / int64(n))
	default:
		return V(uint64(sum) / uint64(n))
	}
}

// AverageBy is Average over elements keyed by key.
func AverageBy[T Number, K comparable](seq iter.Seq[T], key func(T) K) *Groups[K, T] {
	return Average(Keyed(seq, key))
}

// List collects the values of each key in arrival order.
func List[K comparable, V any](seq iter.Seq2[K, V]) *Groups[K, []V] {
	return fold(seq, func(cur []V, _ bool, v V) []V { return append(cur, v) })
}

// ListBy is List over elements keyed by key.
func ListBy[T any, K comparable](seq iter.Seq[T], key func(T) K) *Groups[K, []T] {
	return List(Keyed(seq, key))
}

// SetOf collects the distinct values of each key.
func SetOf[K comparable, V comparable](seq iter.Seq2[K, V]) *Groups[K, Set[V]] {
	return fold(seq, func(cur Set[V], ok bool, v V) Set[V] {
		if !ok {
			cur = make(Set[V])
		}
		cur.Add(v)
		return cur
	})
}

// SetBy is SetOf over elements keyed by key.
func SetBy[T comparable, K comparable](seq iter.Seq[T], key func(T) K) *Groups[K, Set[T]] {
	return SetOf(Keyed(seq, key))
}

// Unique collects the values of each key in first-seen order, dropping
// values equal to one already collected. Each key costs O(n²) comparisons
// in the worst case.
func Unique[K comparable, V comparable](seq iter.Seq2[K, V]) *Groups[K, []V] {
	return fold(seq, func(cur []V, _ bool, v V) []V {
		if slices.Contains(cur, v) {
			return cur
		}
		return append(cur, v)
	})
}

// UniqueBy is Unique over elements keyed by key.
func UniqueBy[T comparable, K comparable](seq iter.Seq[T], key func(T) K) *Groups[K, []T] {
	return Unique(Keyed(seq, key))
}

// UniqueFunc is Unique with a caller-supplied equality, for values that are
// not comparable with ==.
func UniqueFunc[K comparable, V any](seq iter.Seq2[K, V], equal func(a, b V) bool) *Groups[K, []V] {
	return fold(seq, func(cur []V, _ bool, v V) []V {
		if slices.ContainsFunc(cur, func(e V) bool { return equal(e, v) }) {
			return cur
		}
		return append(cur, v)
	})
}

// UniqueFuncBy is UniqueFunc over elements keyed by key.
func UniqueFuncBy[T any, K comparable](seq iter.Seq[T], key func(T) K, equal func(a, b T) bool) *Groups[K, []T] {
	return UniqueFunc(Keyed(seq, key), equal)
}
