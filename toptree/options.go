package toptree

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// Options configures a Forest. Options for any value and summary types are
// accepted, an option that does not apply to the target is ignored.
type Options[T any] struct {
	Log logger.Logger
	// Capacity pre-sizes the node arena for this many vertices.
	Capacity int
	// Check, when set, is used to Validate the forest after every
	// successful mutation.
	Check func(a, b T) bool
}

// Option is a generic option type. Implementations type assert to their
// Options target record and ignore the option if that fails.
type Option func(any)

type baseOptions interface {
	setLogger(log logger.Logger)
	setCapacity(n int)
}

func (o *Options[T]) setLogger(log logger.Logger) { o.Log = log }
func (o *Options[T]) setCapacity(n int)           { o.Capacity = n }

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(baseOptions); ok {
			o.setLogger(log)
		}
	}
}

func WithCapacity(n int) Option {
	return func(opts any) {
		if o, ok := opts.(baseOptions); ok {
			o.setCapacity(n)
		}
	}
}

// WithValidation makes every Link, Cut, SetValue and SetEdgeWeight run
// Validate using eq to compare summaries. It is O(n) per mutation and meant
// for tests and debugging.
func WithValidation[T any](eq func(a, b T) bool) Option {
	return func(opts any) {
		if o, ok := opts.(*Options[T]); ok {
			o.Check = eq
		}
	}
}
