package internal

import (
	"iter"
)

// Concat concatenates multiple iterators into a single iterator sequence.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Once returns an iterator sequence yielding a single value produced on demand.
func Once[T any](value func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(value())
	}
}
