// Package options implements functional options over any configuration type.
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a function.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New creates an option from a setter that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError creates an option from a setter that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return New(func(target T) error {
		fn(target)
		return nil
	})
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped, so callers can pass optional settings unconditionally.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
