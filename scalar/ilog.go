package scalar

// Ilog returns the floor of the base-base logarithm of v.
//
// It panics if v is not positive or if base is less than 2. These are
// contract violations, not runtime conditions: callers that cannot
// rule them out must validate first.
func Ilog[T Integer](v, base T) T {
	if base < 2 {
		panic("scalar: integer logarithm base must be at least 2")
	}
	if v <= 0 {
		panic("scalar: integer logarithm argument must be positive")
	}

	var n T
	for v >= base {
		v /= base
		n++
	}
	return n
}
