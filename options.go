package pubsub

type options struct {
	newListener    Sink
	removeListener Sink
	equal          Equality
	logger         Logger
}

// Option configures a Registry.
type Option func(*options)

// WithNewListenerSink notifies s every time a listener is added. Repeating
// the option adds sinks, which are notified in the order given.
func WithNewListenerSink(s Sink) Option {
	return func(o *options) { o.newListener = joinSinks(o.newListener, s) }
}

// WithRemoveListenerSink notifies s every time a listener is actually removed.
// Repeating the option adds sinks, which are notified in the order given.
func WithRemoveListenerSink(s Sink) Option {
	return func(o *options) { o.removeListener = joinSinks(o.removeListener, s) }
}

func joinSinks(cur, s Sink) Sink {
	switch {
	case s == nil:
		return cur
	case cur == nil:
		return s
	default:
		return Sinks(cur, s)
	}
}

// WithEquality sets the predicate used to match listener ids. Defaults to
// StrictEqual.
func WithEquality(eq Equality) Option { return func(o *options) { o.equal = eq } }

func WithEqualityMode(m EqualityMode) Option { return WithEquality(m.Equality()) }

func WithLogger(l Logger) Option { return func(o *options) { o.logger = l } }

func newOptions(opts []Option) options {
	o := options{
		equal:  StrictEqual,
		logger: NoopLogger,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.equal == nil {
		o.equal = StrictEqual
	}
	if o.logger == nil {
		o.logger = NoopLogger
	}
	return o
}
