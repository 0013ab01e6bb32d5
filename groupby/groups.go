package groupby

import "iter"

// Groups maps each distinct key to its aggregate and remembers the order in
// which keys were first seen.
//
// Keys that are not equal to themselves, such as float NaN, each open a new
// group on every occurrence. Such groups are reported by All, Keys and Len
// but cannot be found with Get.
type Groups[K comparable, A any] struct {
	index map[K]int
	keys  []K
	vals  []A
}

func newGroups[K comparable, A any]() *Groups[K, A] {
	return &Groups[K, A]{index: make(map[K]int)}
}

// Get returns the aggregate for key.
func (g *Groups[K, A]) Get(key K) (A, bool) {
	i, ok := g.index[key]
	if !ok {
		var zero A
		return zero, false
	}
	return g.vals[i], true
}

// Len returns the number of distinct keys.
func (g *Groups[K, A]) Len() int {
	return len(g.keys)
}

// Keys returns the keys in first-seen order.
func (g *Groups[K, A]) Keys() []K {
	keys := make([]K, len(g.keys))
	copy(keys, g.keys)
	return keys
}

// All iterates key/aggregate pairs in first-seen order.
func (g *Groups[K, A]) All() iter.Seq2[K, A] {
	return func(yield func(K, A) bool) {
		for i, k := range g.keys {
			if !yield(k, g.vals[i]) {
				return
			}
		}
	}
}

// Map returns the aggregates as a plain map. The map is a copy; the
// aggregates themselves are shared.
func (g *Groups[K, A]) Map() map[K]A {
	out := make(map[K]A, len(g.keys))
	for i, k := range g.keys {
		out[k] = g.vals[i]
	}
	return out
}

// put stores the aggregate for key, appending key on first sight.
func (g *Groups[K, A]) put(key K, value A) {
	if i, ok := g.index[key]; ok {
		g.vals[i] = value
		return
	}
	g.index[key] = len(g.keys)
	g.keys = append(g.keys, key)
	g.vals = append(g.vals, value)
}

// Set is an unordered collection of distinct values.
type Set[V comparable] map[V]struct{}

// NewSet returns a set holding vs.
func NewSet[V comparable](vs ...V) Set[V] {
	s := make(Set[V], len(vs))
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add inserts v; adding a member twice is a no-op.
func (s Set[V]) Add(v V) { s[v] = struct{}{} }

// Has reports whether v is a member.
func (s Set[V]) Has(v V) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s Set[V]) Len() int { return len(s) }

// Values returns the members in unspecified order.
func (s Set[V]) Values() []V {
	out := make([]V, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}
