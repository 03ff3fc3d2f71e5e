// Package seq provides an immutable singly linked list. Every operation
// returns a new list and never modifies the receiver, so a list value can be
// traversed safely while other code derives new lists from it.
package seq

import "iter"

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a persistent singly linked list. The zero value is the empty list.
type List[T any] struct {
	head *node[T]
	size int
}

// Of builds a list holding values in the given order.
func Of[T any](values ...T) List[T] {
	var l List[T]
	for i := len(values) - 1; i >= 0; i-- {
		l = Cons(values[i], l)
	}
	return l
}

// Cons returns a new list with v in front of l. l is shared, not copied.
func Cons[T any](v T, l List[T]) List[T] {
	return List[T]{head: &node[T]{value: v, next: l.head}, size: l.size + 1}
}

// Map returns a list with fn applied to every element of l, preserving order.
func Map[T, U any](fn func(T) U, l List[T]) List[U] {
	out := make([]U, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, fn(n.value))
	}
	return Of(out...)
}

func (l List[T]) Len() int { return l.size }

func (l List[T]) IsEmpty() bool { return l.head == nil }

// Head returns the first element, if any.
func (l List[T]) Head() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	return l.head.value, true
}

// Each calls fn for every element, front to back.
func (l List[T]) Each(fn func(T)) {
	for n := l.head; n != nil; n = n.next {
		fn(n.value)
	}
}

// All returns an iterator over the elements, front to back.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// First returns the first element matching pred.
func (l List[T]) First(pred func(T) bool) (v T, ok bool) {
	for n := l.head; n != nil; n = n.next {
		if pred(n.value) {
			return n.value, true
		}
	}
	return v, false
}

// Without returns l minus its first element matching pred, together with the
// removed element. Nodes before the match are copied, the tail after it is
// shared. When nothing matches l itself is returned and ok is false.
func (l List[T]) Without(pred func(T) bool) (rest List[T], removed T, ok bool) {
	var prefix []T
	n := l.head
	for ; n != nil; n = n.next {
		if pred(n.value) {
			break
		}
		prefix = append(prefix, n.value)
	}
	if n == nil {
		return l, removed, false
	}

	rest = List[T]{head: n.next, size: l.size - len(prefix) - 1}
	for i := len(prefix) - 1; i >= 0; i-- {
		rest = Cons(prefix[i], rest)
	}
	return rest, n.value, true
}

// Reverse returns the elements of l in reverse order.
func (l List[T]) Reverse() List[T] {
	var out List[T]
	for n := l.head; n != nil; n = n.next {
		out = Cons(n.value, out)
	}
	return out
}

// Slice copies the elements into a new slice, front to back.
func (l List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
