package list

import "iter"

// Note that the linked lists here are not thread safe.
// A list is a chain of nodes reachable from its head through
// the forward links, and the head is the only entry point.

// Chain is the forward traversal shared by the singly and doubly
// linked lists. A nil head is an empty chain.
type Chain[T any] interface {
	// All yields the values from the head to the tail.
	// It is read only and restartable.
	All() iter.Seq[T]
}

// ChainNode is the basic interface for the head of a chain.
type ChainNode[T any] interface {
	Chain[T]
	HasNext() bool
	GetValue() T
	Len() int64
}

type ListErr string

const (
	// ErrEmptyInput is returned by converting a non-nil but zero length slice.
	ErrEmptyInput ListErr = "empty input sequence"
	// ErrNullInput is returned by converting a nil slice.
	ErrNullInput ListErr = "null input sequence"
)

func (err ListErr) Error() string {
	return string(err)
}
