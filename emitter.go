package pubsub

type (
	// Emitter is anything that accepts emitted values. *Registry[V] implements it.
	Emitter[V any] interface {
		Emit(V)
	}

	// Change describes a listener being added to or removed from the registry
	// serving Event.
	Change struct {
		Event    string
		Listener any
		ID       any
	}

	// Sink receives listener lifecycle notifications. A *Registry[Change] is a
	// Sink, which allows one newListener and one removeListener registry to be
	// shared by many per-event registries.
	Sink = Emitter[Change]

	// SinkFunc adapts a plain function to a Sink.
	SinkFunc func(Change)
)

func (f SinkFunc) Emit(c Change) { f(c) }

type sinkGroup []Sink

// Sinks fans a notification out to every sink, in order. Nil sinks are
// ignored.
func Sinks(sinks ...Sink) Sink {
	g := make(sinkGroup, 0, len(sinks))
	for _, s := range sinks {
		switch s := s.(type) {
		case nil:
			continue
		case sinkGroup:
			g = append(g, s...)
		default:
			g = append(g, s)
		}
	}
	return g
}

func (g sinkGroup) Emit(c Change) {
	for _, s := range g {
		s.Emit(c)
	}
}
