package arr

import "reflect"

// Option configures an [Array] at construction time.
type Option[T any] func(*config[T])

type config[T any] struct {
	absent func(T) bool
}

// WithAbsent replaces the predicate deciding which values count as absent.
// A nil fn restores the default (nil-like values only).
//
//	arr.New(arr.WithAbsent(func(s string) bool { return s == "" }))
func WithAbsent[T any](fn func(T) bool) Option[T] {
	return func(c *config[T]) {
		if fn == nil {
			fn = isNil[T]
		}
		c.absent = fn
	}
}

func newConfig[T any](opts []Option[T]) config[T] {
	c := config[T]{absent: isNil[T]}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// isNil is the default absence predicate.
func isNil[T any](v T) bool {
	x := any(v)
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
