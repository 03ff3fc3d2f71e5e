// Package pubsub implements a single-event publish/subscribe registry.
//
// A Registry holds the listeners of exactly one named event. Its state is an
// immutable list replaced wholesale on every On/Off, so Emit always dispatches
// against the snapshot it loaded on entry: listeners may add or remove
// listeners, including themselves, while being called.
//
// Registries compose into a multi-event hub by sharing a Registry[Change] for
// listener additions and another for removals:
//
//	added := pubsub.New[pubsub.Change]("newListener")
//	removed := pubsub.New[pubsub.Change]("removeListener")
//	ticks := pubsub.New[int]("tick",
//		pubsub.WithNewListenerSink(added),
//		pubsub.WithRemoveListenerSink(removed),
//	)
package pubsub

import (
	"sync/atomic"

	"github.com/sonirico/pubsub/seq"
)

// Listener receives the values emitted on a Registry.
type Listener[V any] func(V)

type record[V any] struct {
	listener Listener[V]
	// id is reported to sinks; key is what ids are compared against.
	id  any
	key any
}

// Registry manages the listeners of one event. It is safe for concurrent use
// and never holds a lock while calling listeners, sinks or the equality
// predicate.
type Registry[V any] struct {
	event  string
	opts   options
	logger Logger

	// records is newest first; traversal order is its reverse. Writers
	// commit with compare-and-swap and retry on conflict.
	records atomic.Pointer[seq.List[record[V]]]
}

// New creates an empty registry for event.
func New[V any](event string, opts ...Option) *Registry[V] {
	o := newOptions(opts)
	r := &Registry[V]{
		event:  event,
		opts:   o,
		logger: o.logger.WithField("event", event),
	}
	r.records.Store(&seq.List[record[V]]{})
	return r
}

// Event returns the name of the event this registry serves.
func (r *Registry[V]) Event() string { return r.event }

// On registers listener using the listener itself as its id.
//
// A listener id is the function value passed in, so Off and HasListener only
// find it when given that same value or a copy of it. Every evaluation of a
// method value such as h.Handle produces a new function value; register
// those with OnID and an explicit id instead.
func (r *Registry[V]) On(listener Listener[V]) *Registry[V] {
	return r.OnID(listener, nil)
}

// OnID registers listener under id. A nil id falls back to the listener.
// Registering the same listener or id twice creates two records.
//
// The new listener sink, if any, is notified before the listener is stored.
func (r *Registry[V]) OnID(listener Listener[V], id any) *Registry[V] {
	rec := record[V]{listener: listener, id: id, key: idKey[V](id)}
	if id == nil {
		rec.id = listener
		rec.key = keyOf(listener)
	}

	if r.opts.newListener != nil {
		r.opts.newListener.Emit(Change{Event: r.event, Listener: listener, ID: rec.id})
	}

	for {
		cur := r.records.Load()
		next := seq.Cons(rec, *cur)
		if r.records.CompareAndSwap(cur, &next) {
			break
		}
	}

	r.logger.WithField("id", rec.id).Debugln("listener added")

	return r
}

// Emit calls every listener registered at the time of the call with v, in
// registration order. Listeners added or removed while dispatching do not
// change the set being dispatched to. A panicking listener aborts the
// dispatch and the panic propagates to the caller.
func (r *Registry[V]) Emit(v V) {
	r.snapshot().Each(func(rec record[V]) {
		rec.listener(v)
	})
}

// Off removes the earliest registered listener whose id matches id. It does
// nothing when no listener matches. A listener registered without an id is
// matched by passing the listener value itself; see On for the limits of
// function identity.
//
// The equality predicate runs without any lock held and may be called again
// for the same record if another writer commits first.
func (r *Registry[V]) Off(id any) {
	match := r.matcher(id)

	var removed record[V]
	for {
		cur := r.records.Load()
		rest, rec, ok := cur.Reverse().Without(match)
		if !ok {
			return
		}
		next := rest.Reverse()
		if r.records.CompareAndSwap(cur, &next) {
			removed = rec
			break
		}
	}

	r.logger.WithField("id", removed.id).Debugln("listener removed")

	if r.opts.removeListener != nil {
		r.opts.removeListener.Emit(Change{Event: r.event, Listener: removed.listener, ID: removed.id})
	}
}

// Listeners returns the registered listeners in dispatch order. The slice is
// a copy.
func (r *Registry[V]) Listeners() []Listener[V] {
	return seq.Map(func(rec record[V]) Listener[V] { return rec.listener }, r.snapshot()).Slice()
}

// HasListener reports whether a listener with the given id is registered.
// A nil id reports whether any listener is registered.
func (r *Registry[V]) HasListener(id any) bool {
	test := func(record[V]) bool { return true }
	if id != nil {
		test = r.matcher(id)
	}
	_, found := r.records.Load().First(test)
	return found
}

// Len returns the number of registered listeners.
func (r *Registry[V]) Len() int {
	return r.records.Load().Len()
}

// snapshot returns the current records in dispatch order.
func (r *Registry[V]) snapshot() seq.List[record[V]] {
	return r.records.Load().Reverse()
}

func (r *Registry[V]) matcher(id any) func(record[V]) bool {
	key := idKey[V](id)
	return func(rec record[V]) bool {
		return r.opts.equal(rec.key, key)
	}
}
