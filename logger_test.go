package pubsub

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf).(*writerLogger)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.WithField("b", 2).WithField("a", 1).Infoln("hello", "world")
	l.Errorf("failed %d", 3)

	assert.Equal(t,
		"[2024-01-02 03:04:05] INFO [a=1, b=2]: hello world\n"+
			"[2024-01-02 03:04:05] ERROR: failed 3\n",
		buf.String(),
	)
}

func TestWriterLoggerWithFieldDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriterLogger(&buf)

	base.WithField("k", "v")
	base.Warn("plain")

	assert.Contains(t, buf.String(), "WARN: plain")
	assert.NotContains(t, buf.String(), "k=v")
}

func TestLogrusLogger(t *testing.T) {
	var buf bytes.Buffer
	ll := logrus.New()
	ll.SetOutput(&buf)
	ll.SetLevel(logrus.DebugLevel)
	ll.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	r := New[int]("tick", WithLogger(NewLogrusLogger(ll)))
	r.OnID(func(int) {}, "adder")

	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "event=tick")
	assert.Contains(t, buf.String(), "id=adder")
	assert.Contains(t, buf.String(), "listener added")
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	r := New[int]("tick", WithLogger(l))
	r.OnID(func(int) {}, "adder")
	r.Off("adder")

	out := buf.String()
	assert.Contains(t, out, `"event":"tick"`)
	assert.Contains(t, out, `"id":"adder"`)
	assert.Contains(t, out, `"message":"listener added"`)
	assert.Contains(t, out, `"message":"listener removed"`)
}

func TestNoopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NoopLogger.WithField("k", "v").Errorf("x %d", 1)
	})
}
