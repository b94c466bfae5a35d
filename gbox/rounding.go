package gbox

import "math"

const f32SignBit uint32 = 1 << 31

// NextFloatDown returns the largest f32 that is <= x, treating x as an exact
// f64. Infinities and NaN pass through unchanged (as their f32 equivalents).
func NextFloatDown(x float64) float32 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return float32(x)
	}

	f := float32(x)
	if float64(f) <= x {
		return f
	}

	return math.Float32frombits(stepTowardNegInf(math.Float32bits(f)))
}

// NextFloatUp returns the smallest f32 that is >= x, treating x as an exact
// f64. Infinities and NaN pass through unchanged (as their f32 equivalents).
func NextFloatUp(x float64) float32 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return float32(x)
	}

	f := float32(x)
	if float64(f) >= x {
		return f
	}

	return math.Float32frombits(stepTowardPosInf(math.Float32bits(f)))
}

// stepTowardNegInf moves an f32 bit pattern one ULP toward negative
// infinity. Magnitude decreases for positive values (bits - 1) and
// increases for negative ones (bits + 1), since IEEE-754 magnitude bits are
// monotone with value only within a single sign.
func stepTowardNegInf(bits uint32) uint32 {
	if bits&f32SignBit == 0 {
		if bits == 0 {
			return f32SignBit | 1 // +0 steps down to -smallest subnormal
		}

		return bits - 1
	}

	return bits + 1
}

// stepTowardPosInf is the mirror image of stepTowardNegInf.
func stepTowardPosInf(bits uint32) uint32 {
	if bits&f32SignBit == 0 {
		return bits + 1
	}

	if bits == f32SignBit {
		return 1 // -0 steps up to +smallest subnormal
	}

	return bits - 1
}
