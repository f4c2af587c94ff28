// Package worklist provides the FIFO/LIFO collaborator the subset
// construction and epsilon-closure algorithms need: a list supporting
// head insert, head take, tail take, and size. It wraps gods' doubly
// linked list instead of hand-rolling one.
package worklist

import "github.com/emirpasic/gods/lists/doublylinkedlist"

// List is a double-ended work queue of T. The zero value is not usable;
// construct with New.
type List[T any] struct {
	l *doublylinkedlist.List
}

// New creates an empty worklist.
func New[T any]() *List[T] {
	return &List[T]{l: doublylinkedlist.New()}
}

// PushFront inserts v at the head of the list.
func (w *List[T]) PushFront(v T) {
	w.l.Insert(0, v)
}

// PushBack inserts v at the tail of the list.
func (w *List[T]) PushBack(v T) {
	w.l.Add(v)
}

// PopFront removes and returns the head element. ok is false if the list
// is empty.
func (w *List[T]) PopFront() (v T, ok bool) {
	raw, found := w.l.Get(0)
	if !found {
		return v, false
	}
	w.l.Remove(0)
	return raw.(T), true
}

// PopBack removes and returns the tail element. ok is false if the list
// is empty.
func (w *List[T]) PopBack() (v T, ok bool) {
	n := w.l.Size()
	if n == 0 {
		return v, false
	}
	raw, found := w.l.Get(n - 1)
	if !found {
		return v, false
	}
	w.l.Remove(n - 1)
	return raw.(T), true
}

// Len returns the number of elements currently queued.
func (w *List[T]) Len() int {
	return w.l.Size()
}

// Empty reports whether the worklist has no pending elements.
func (w *List[T]) Empty() bool {
	return w.l.Empty()
}
