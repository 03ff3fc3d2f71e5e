package pubsub

import "unsafe"

// funcKey is the comparable identity of a listener used as its own id. Go
// functions are not comparable, so the function value's underlying pointer is
// used instead: copies of one func value share it, distinct closures do not.
type funcKey struct {
	ptr unsafe.Pointer
}

func keyOf[V any](l Listener[V]) funcKey {
	return funcKey{ptr: *(*unsafe.Pointer)(unsafe.Pointer(&l))}
}

// idKey maps a user supplied id to the value ids are compared by. Listener
// values are replaced by their funcKey; anything else is used as is.
func idKey[V any](id any) any {
	switch v := id.(type) {
	case Listener[V]:
		return keyOf(v)
	case func(V):
		return keyOf(Listener[V](v))
	default:
		return id
	}
}
