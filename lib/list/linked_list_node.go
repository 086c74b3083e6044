package list

import "iter"

var (
	_ ChainNode[struct{}] = (*SinglyNode[struct{}])(nil) // Type check assertion
	_ ChainNode[struct{}] = (*DoublyNode[struct{}])(nil)
)

type SinglyNode[T any] struct {
	next  *SinglyNode[T]
	Value T // It should be placed at the end of the struct to avoid taking too much padding.
}

func NewSinglyNode[T any](v T) *SinglyNode[T] {
	return &SinglyNode[T]{Value: v}
}

func (n *SinglyNode[T]) HasNext() bool {
	if n == nil {
		return false
	}
	return n.next != nil
}

func (n *SinglyNode[T]) Next() *SinglyNode[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// NextOk returns the successor and false if there is none.
func (n *SinglyNode[T]) NextOk() (*SinglyNode[T], bool) {
	if !n.HasNext() {
		return nil, false
	}
	return n.next, true
}

func (n *SinglyNode[T]) GetValue() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.Value
}

func (n *SinglyNode[T]) All() iter.Seq[T] {
	return traverse(n,
		func(it *SinglyNode[T]) T { return it.Value },
		func(it *SinglyNode[T]) *SinglyNode[T] { return it.next },
	)
}

func (n *SinglyNode[T]) Len() int64 {
	return LengthOf[T](n)
}

// DoublyNode owns its successor only. The back is a plain
// observer of the predecessor, the lifetime of the chain is
// decided by the forward links from the head.
type DoublyNode[T any] struct {
	next, back *DoublyNode[T]
	Value      T
}

func NewDoublyNode[T any](v T) *DoublyNode[T] {
	return &DoublyNode[T]{Value: v}
}

func (n *DoublyNode[T]) HasNext() bool {
	if n == nil {
		return false
	}
	return n.next != nil
}

func (n *DoublyNode[T]) HasBack() bool {
	if n == nil {
		return false
	}
	return n.back != nil
}

func (n *DoublyNode[T]) Next() *DoublyNode[T] {
	if n == nil {
		return nil
	}
	return n.next
}

func (n *DoublyNode[T]) Back() *DoublyNode[T] {
	if n == nil {
		return nil
	}
	return n.back
}

func (n *DoublyNode[T]) NextOk() (*DoublyNode[T], bool) {
	if !n.HasNext() {
		return nil, false
	}
	return n.next, true
}

func (n *DoublyNode[T]) BackOk() (*DoublyNode[T], bool) {
	if !n.HasBack() {
		return nil, false
	}
	return n.back, true
}

func (n *DoublyNode[T]) GetValue() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.Value
}

// All traverses forward only.
func (n *DoublyNode[T]) All() iter.Seq[T] {
	return traverse(n,
		func(it *DoublyNode[T]) T { return it.Value },
		func(it *DoublyNode[T]) *DoublyNode[T] { return it.next },
	)
}

func (n *DoublyNode[T]) Len() int64 {
	return LengthOf[T](n)
}
