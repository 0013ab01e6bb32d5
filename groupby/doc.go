// Package groupby folds a sequence into one aggregate per distinct key.
//
// Each operation comes in two shapes. The pair form consumes an
// iter.Seq2[K, V] of key/value pairs (maps.All, Pairs, ...). The key form
// (suffix By) consumes an iter.Seq[T] and a key function, pairing every
// element x as (key(x), x). The input is pulled exactly once, front to back.
//
//	words := slices.Values([]string{"apple", "banana", "apricot"})
//	byLetter := groupby.ListBy(words, func(s string) byte { return s[0] })
//	// byLetter: {'a': [apple apricot], 'b': [banana]}
//
// Results are returned as *Groups, which preserves first-seen key order. The
// returned value belongs to the caller; nothing is retained between calls.
package groupby
