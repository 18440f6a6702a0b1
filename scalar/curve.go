package scalar

// BezierSample evaluates the cubic Bézier curve defined by start, the
// two control points, and terminal at position t, using the standard
// Bernstein basis polynomial.
func BezierSample[T Signed](start, control1, control2, terminal, t T) T {
	omt := T(1) - t
	omt2 := omt * omt
	omt3 := omt2 * omt
	t2 := t * t
	t3 := t2 * t

	return start*omt3 + control1*omt2*t*T(3) + control2*omt*t2*T(3) + terminal*t3
}

// BezierDerivative evaluates the derivative of the cubic Bézier curve
// defined by start, the two control points, and terminal at position t.
func BezierDerivative[T Signed](start, control1, control2, terminal, t T) T {
	omt := T(1) - t
	omt2 := omt * omt
	t2 := t * t

	return (control1-start)*T(3)*omt2 + (control2-control1)*T(6)*omt*t + (terminal-control2)*T(3)*t2
}

// CubicInterpolate samples the cubic interpolation from start to
// terminal at position t, with preStart and postTerminal acting as
// handles before and after the interpolated segment.
func CubicInterpolate[T Signed](start, terminal, preStart, postTerminal, t T) T {
	// half is zero for integer instantiations.
	half := T(1) / T(2)

	return half * ((start * T(2)) +
		(-preStart+terminal)*t +
		(T(2)*preStart-T(5)*start+T(4)*terminal-postTerminal)*(t*t) +
		(-preStart+T(3)*start-T(3)*terminal+postTerminal)*(t*t*t))
}

// CubicInterpolateInTime is like [CubicInterpolate] but takes explicit
// time values for the terminal, pre-start, and post-terminal handles,
// following the Barry-Goldman method. Non-uniform spacing between the
// control values can make this smoother than [CubicInterpolate].
func CubicInterpolateInTime[T Signed](start, terminal, preStart, postTerminal, t0, terminalT, preStartT, postTerminalT T) T {
	half := T(1) / T(2)

	// Each division below substitutes a fixed fraction when its time
	// delta is zero.
	t := Lerp(T(0), terminalT, t0)

	f := T(0)
	if preStartT != 0 {
		f = (t - preStartT) / -preStartT
	}
	a1 := Lerp(preStart, start, f)

	f = half
	if terminalT != 0 {
		f = t / terminalT
	}
	a2 := Lerp(start, terminal, f)

	f = T(1)
	if postTerminalT-terminalT != 0 {
		f = (t - terminalT) / (postTerminalT - terminalT)
	}
	a3 := Lerp(terminal, postTerminal, f)

	f = T(0)
	if terminalT-preStartT != 0 {
		f = (t - preStartT) / (terminalT - preStartT)
	}
	b1 := Lerp(a1, a2, f)

	f = T(1)
	if postTerminalT != 0 {
		f = t / postTerminalT
	}
	b2 := Lerp(a2, a3, f)

	f = half
	if terminalT != 0 {
		f = t / terminalT
	}
	return Lerp(b1, b2, f)
}
