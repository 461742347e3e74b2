package willowfx

// Extrapolate selects how Interpolate treats inputs outside the breakpoint range.
type Extrapolate uint8

const (
	ExtrapolateExtend   Extrapolate = iota // continue the outermost segment
	ExtrapolateClamp                       // hold the outermost output value
	ExtrapolateIdentity                    // return the input unchanged
)

// Interpolate maps x through the piecewise-linear curve defined by the
// ascending input breakpoints and their output values. At a breakpoint the
// matching output is returned exactly.
//
// Panics if the tables differ in length or have fewer than two entries.
func Interpolate(x float64, input, output []float64, ex Extrapolate) float64 {
	if len(input) != len(output) {
		panic("willowfx: interpolate input and output lengths differ")
	}
	if len(input) < 2 {
		panic("willowfx: interpolate needs at least two breakpoints")
	}

	last := len(input) - 1
	if x < input[0] || x > input[last] {
		switch ex {
		case ExtrapolateClamp:
			if x < input[0] {
				return output[0]
			}
			return output[last]
		case ExtrapolateIdentity:
			return x
		}
	}

	// Find the segment [input[i], input[i+1]] containing x; out-of-range
	// inputs use the first or last segment.
	i := 0
	for i < last-1 && x > input[i+1] {
		i++
	}
	return lerpSegment(x, input[i], input[i+1], output[i], output[i+1])
}

// lerpSegment interpolates within one segment. The (1-t)*a + t*b form is exact
// at both t == 0 and t == 1.
func lerpSegment(x, inLo, inHi, outLo, outHi float64) float64 {
	span := inHi - inLo
	if span == 0 {
		return outHi
	}
	t := (x - inLo) / span
	return (1-t)*outLo + t*outHi
}

// lerp is the common two-point case: maps progress 0..1 onto from..to.
func lerp(p, from, to float64) float64 {
	return (1-p)*from + p*to
}
