package scalar

// AbsEqual reports whether a and b are within eps of each other.
func AbsEqual[T Float](a, b, eps T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// RelativeEqual reports whether a and b are approximately equal. eps
// bounds the absolute difference for values near zero; otherwise the
// difference is bounded by maxRel relative to the larger magnitude of
// the two operands.
func RelativeEqual[T Float](a, b, eps, maxRel T) bool {
	if a == b {
		return true
	}

	d := a - b
	if d < 0 {
		d = -d
	}
	if d <= eps {
		return true
	}

	absA, absB := a, b
	if absA < 0 {
		absA = -absA
	}
	if absB < 0 {
		absB = -absB
	}
	return d <= Max(absA, absB)*maxRel
}
