package format

import "math"

// IBM System/360 hexadecimal floating point: 1 sign bit, 7-bit excess-64
// base-16 exponent, 24-bit fraction in [1/16, 1).

// ibmToFloat converts the big-endian bit pattern of an IBM float to the
// nearest float32.
func ibmToFloat(bits uint32) float32 {
	frac := bits & 0x00ffffff
	if frac == 0 {
		return 0
	}
	sign := 1.0
	if bits&0x80000000 != 0 {
		sign = -1.0
	}
	exp := int((bits>>24)&0x7f) - 64
	return float32(sign * float64(frac) / 0x1000000 * math.Pow(16, float64(exp)))
}

// floatToIBM converts a float32 to the bit pattern of the nearest IBM
// float. Values beyond the IBM range saturate at the largest magnitude.
func floatToIBM(f float32) uint32 {
	if f == 0 || math.IsNaN(float64(f)) {
		return 0
	}
	var sign uint32
	v := float64(f)
	if v < 0 {
		sign = 0x80000000
		v = -v
	}

	// Normalise the fraction into [1/16, 1).
	exp := 64
	for v >= 1 && exp < 127 {
		v /= 16
		exp++
	}
	for v < 1.0/16 && exp > 0 {
		v *= 16
		exp--
	}
	if exp > 127 {
		return sign | 0x7fffffff
	}

	frac := uint32(math.Round(v * 0x1000000))
	if frac > 0x00ffffff {
		// Rounding carried out of the fraction.
		frac >>= 4
		exp++
		if exp > 127 {
			return sign | 0x7fffffff
		}
	}
	return sign | uint32(exp)<<24 | frac
}
