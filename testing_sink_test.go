package pubsub

import (
	"github.com/stretchr/testify/mock"
)

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Emit(c Change) {
	m.Called(c)
}

// changeOf matches a Change for event carrying exactly listener and id.
func changeOf[V any](event string, listener Listener[V], id any) any {
	return mock.MatchedBy(func(c Change) bool {
		got, ok := c.Listener.(Listener[V])
		return ok &&
			c.Event == event &&
			keyOf(got) == keyOf(listener) &&
			StrictEqual(idKey[V](c.ID), idKey[V](id))
	})
}
