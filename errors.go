package pubsub

import (
	"github.com/pkg/errors"
)

var (
	ErrUnknownEqualityMode = errors.New("unknown equality mode")
)
