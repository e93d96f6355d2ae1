package internal

import (
	"iter"
)

// IterSeqConcat yields every value of each sequence in turn.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeq2Concat yields every pair of each sequence in turn.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// IterSeq2Map converts the values of a pair sequence, keeping the keys.
func IterSeq2Map[K any, V any, W any](seq iter.Seq2[K, V], conv func(V) W) iter.Seq2[K, W] {
	return func(yield func(K, W) bool) {
		for key, val := range seq {
			if !yield(key, conv(val)) {
				return
			}
		}
	}
}
