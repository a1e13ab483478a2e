// Package xgeneric provides small type-parameterized helpers shared across
// packages.
package xgeneric

// ZeroValue returns the zero value of type V. Useful in generic code that
// must return a value alongside a failure flag.
func ZeroValue[V any]() V {
	var zero V
	return zero
}
