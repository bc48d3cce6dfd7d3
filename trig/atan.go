package trig

import "math"

// signum matches the sign convention the inverse-tangent approximations
// need: 1 for positive, -1 for negative, and the input itself for zero of
// either sign or NaN.
func signum(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return x
}

// atanPoly evaluates the degree-11 odd polynomial from sheet 11 of the 1955
// RAND study "Approximations for Digital Computers" at c = (n-1)/(n+1),
// which keeps c in (-1, 1) for any finite non-negative n. Adding QuarterPiD
// to the result gives atan(n) in radians for n >= 0.
func atanPoly(n float64) float64 {
	c := (n - 1) / (n + 1)
	c2 := c * c
	c3 := c * c2
	c5 := c3 * c2
	c7 := c5 * c2
	c9 := c7 * c2
	c11 := c9 * c2
	return 0.99997726*c - 0.33262347*c3 + 0.19354346*c5 - 0.11643287*c7 + 0.05265332*c9 - 0.0117212*c11
}

// atanPolyDeg is [atanPoly] refit to degrees; add 45 for atan(n) with n >= 0.
func atanPolyDeg(n float64) float64 {
	c := (n - 1) / (n + 1)
	c2 := c * c
	c3 := c * c2
	c5 := c3 * c2
	c7 := c5 * c2
	c9 := c7 * c2
	c11 := c9 * c2
	return 57.2944766070562*c - 19.05792099799635*c3 + 11.089223410359068*c5 -
		6.6711120475953765*c7 + 3.016813013351768*c9 - 0.6715752908287405*c11
}

// atanPolyTurns is [atanPoly] refit to turns; add 0.125 for atan(n) with n >= 0.
func atanPolyTurns(n float64) float64 {
	c := (n - 1) / (n + 1)
	c2 := c * c
	c3 := c * c2
	c5 := c3 * c2
	c7 := c5 * c2
	c9 := c7 * c2
	c11 := c9 * c2
	return 0.15915132390848943*c - 0.052938669438878753*c3 + 0.030803398362108523*c5 -
		0.01853086679887605*c7 + 0.008380036148199356*c9 - 0.0018654869189687236*c11
}

// atanUnchecked is the inverse tangent in radians for finite inputs only;
// the atan2 family routes every finite ratio through here. [Atan] and
// [AtanD] clip infinities before calling it.
func atanUnchecked(i float64) float64 {
	return signum(i) * (QuarterPiD + atanPoly(math.Abs(i)))
}

// atanUncheckedDeg is [atanUnchecked] returning degrees.
func atanUncheckedDeg(i float64) float64 {
	return signum(i) * (45.0 + atanPolyDeg(math.Abs(i)))
}

// atanUncheckedTurns is [atanUnchecked] returning turns.
func atanUncheckedTurns(i float64) float64 {
	return signum(i) * (0.125 + atanPolyTurns(math.Abs(i)))
}

// Atan returns an approximation of the inverse tangent of i in radians,
// between -HalfPi and HalfPi inclusive. Any float32 is accepted; infinite
// inputs are clipped to the largest finite float64 first.
func Atan(i float32) float32 {
	d := float64(i)
	n := math.Min(math.Abs(d), math.MaxFloat64)
	return float32(signum(d) * (QuarterPiD + atanPoly(n)))
}

// AtanDeg returns an approximation of the inverse tangent of i in degrees,
// between -90 and 90 inclusive. Any float32 is accepted.
func AtanDeg(i float32) float32 {
	d := float64(i)
	n := math.Min(math.Abs(d), math.MaxFloat64)
	return float32(signum(d) * (45.0 + atanPolyDeg(n)))
}

// AtanTurns returns an approximation of the inverse tangent of i in turns,
// between -0.25 and 0.25 inclusive. Any float32 is accepted.
func AtanTurns(i float32) float32 {
	d := float64(i)
	n := math.Min(math.Abs(d), math.MaxFloat64)
	return float32(signum(d) * (0.125 + atanPolyTurns(n)))
}

// AtanD is the float64 variant of [Atan].
func AtanD(i float64) float64 {
	n := math.Min(math.Abs(i), math.MaxFloat64)
	return signum(i) * (QuarterPiD + atanPoly(n))
}

// AtanDegD is the float64 variant of [AtanDeg].
func AtanDegD(i float64) float64 {
	n := math.Min(math.Abs(i), math.MaxFloat64)
	return signum(i) * (45.0 + atanPolyDeg(n))
}

// AtanTurnsD is the float64 variant of [AtanTurns].
func AtanTurnsD(i float64) float64 {
	n := math.Min(math.Abs(i), math.MaxFloat64)
	return signum(i) * (0.125 + atanPolyTurns(n))
}

// Atan2 returns the angle in radians from the origin to the point (x, y),
// between -Pi exclusive and Pi inclusive. The argument order follows the
// atan2 convention: y first. Atan2(0, 0) is 0; when both arguments are
// infinite their ratio is treated as +-1, picking a diagonal.
func Atan2(y, x float32) float32 {
	n := y / x
	if n != n {
		// Both y and x are infinite (or one is NaN).
		if y == x {
			n = 1
		} else {
			n = -1
		}
	} else if n-n != n-n {
		// n is infinite, so y is infinitely larger than x.
		x = 0
	}
	if x > 0 {
		return float32(atanUnchecked(float64(n)))
	} else if x < 0 {
		if y >= 0 {
			return float32(atanUnchecked(float64(n)) + math.Pi)
		}
		return float32(atanUnchecked(float64(n)) - math.Pi)
	} else if y > 0 {
		return x + HalfPi
	} else if y < 0 {
		return x - HalfPi
	}
	// 0 for (0, 0), NaN if y or x is NaN with the other zero.
	return x + y
}

// Atan2Deg is [Atan2] returning degrees, between -180 exclusive and 180
// inclusive.
func Atan2Deg(y, x float32) float32 {
	n := y / x
	if n != n {
		if y == x {
			n = 1
		} else {
			n = -1
		}
	} else if n-n != n-n {
		x = 0
	}
	if x > 0 {
		return float32(atanUncheckedDeg(float64(n)))
	} else if x < 0 {
		if y >= 0 {
			return float32(atanUncheckedDeg(float64(n)) + 180.0)
		}
		return float32(atanUncheckedDeg(float64(n)) - 180.0)
	} else if y > 0 {
		return x + 90
	} else if y < 0 {
		return x - 90
	}
	return x + y
}

// Atan2Deg360 is [Atan2] returning non-negative degrees, between 0 inclusive
// and 360 exclusive, which is convenient for hue-like angles.
func Atan2Deg360(y, x float32) float32 {
	n := y / x
	if n != n {
		if y == x {
			n = 1
		} else {
			n = -1
		}
	} else if n-n != n-n {
		x = 0
	}
	if x > 0 {
		if y >= 0 {
			return float32(atanUncheckedDeg(float64(n)))
		}
		return float32(atanUncheckedDeg(float64(n)) + 360.0)
	} else if x < 0 {
		return float32(atanUncheckedDeg(float64(n)) + 180.0)
	} else if y > 0 {
		return x + 90
	} else if y < 0 {
		return x + 270
	}
	return x + y
}

// Atan2Turns is [Atan2] returning non-negative turns, between 0 inclusive
// and 1 exclusive, useful when an angle must pack into a small fraction.
func Atan2Turns(y, x float32) float32 {
	n := y / x
	if n != n {
		if y == x {
			n = 1
		} else {
			n = -1
		}
	} else if n-n != n-n {
		x = 0
	}
	if x > 0 {
		if y >= 0 {
			return float32(atanUncheckedTurns(float64(n)))
		}
		return float32(atanUncheckedTurns(float64(n)) + 1.0)
	} else if x < 0 {
		return float32(atanUncheckedTurns(float64(n)) + 0.5)
	} else if y > 0 {
		return x + 0.25
	} else if y < 0 {
		return x + 0.75
	}
	return x + y
}

// Atan2D is the float64 variant of [Atan2].
func Atan2D(y, x float64) float64 {
	n := y / x
	if n != n {
		if y == x {
			n = 1
		} else {
			n = -1
		}
	} else if n-n != n-n {
		x = 0
	}
	if x > 0 {
		return atanUnchecked(n)
	} else if x < 0 {
		if y >= 0 {
			return atanUnchecked(n) + math.Pi
		}
		return atanUnchecked(n) - math.Pi
	} else if y > 0 {
		return x + HalfPiD
	} else if y < 0 {
		return x - HalfPiD
	}
	return x + y
}

// Atan2DegD is the float64 variant of [Atan2Deg].
func Atan2DegD(y, x float64) float64 {
	n := y / x
	if n != n {
		if y == x {
			n = 1
		} else {
			n = -1
		}
	} else if n-n != n-n {
		x = 0
	}
	if x > 0 {
		return atanUncheckedDeg(n)
	} else if x < 0 {
		if y >= 0 {
			return atanUncheckedDeg(n) + 180.0
		}
		return atanUncheckedDeg(n) - 180.0
	} else if y > 0 {
		return x + 90
	} else if y < 0 {
		return x - 90
	}
	return x + y
}

// Atan2Deg360D is the float64 variant of [Atan2Deg360].
func Atan2Deg360D(y, x float64) float64 {
	n := y / x
	if n != n {
		if y == x {
			n = 1
		} else {
			n = -1
		}
	} else if n-n != n-n {
		x = 0
	}
	if x > 0 {
		if y >= 0 {
			return atanUncheckedDeg(n)
		}
		return atanUncheckedDeg(n) + 360.0
	} else if x < 0 {
		return atanUncheckedDeg(n) + 180.0
	} else if y > 0 {
		return x + 90
	} else if y < 0 {
		return x + 270
	}
	return x + y
}

// Atan2TurnsD is the float64 variant of [Atan2Turns].
func Atan2TurnsD(y, x float64) float64 {
	n := y / x
	if n != n {
		if y == x {
			n = 1
		} else {
			n = -1
		}
	} else if n-n != n-n {
		x = 0
	}
	if x > 0 {
		if y >= 0 {
			return atanUncheckedTurns(n)
		}
		return atanUncheckedTurns(n) + 1.0
	} else if x < 0 {
		return atanUncheckedTurns(n) + 0.5
	} else if y > 0 {
		return x + 0.25
	} else if y < 0 {
		return x + 0.75
	}
	return x + y
}
