package trig

import "math"

// The asin and acos approximations use a degree-3 polynomial multiplied by
// a square root, with one coefficient set per angle unit. Inputs outside
// [-1, 1] drive the square root negative and return NaN, and NaN inputs
// propagate.

// Asin returns an approximation of the arcsine of a in radians, between
// -HalfPi and HalfPi when a is in [-1, 1].
func Asin(a float32) float32 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return HalfPi -
			float32(math.Sqrt(float64(1-a)))*(1.5707288-0.2121144*a+0.0742610*a2-0.0187293*a3)
	}
	return float32(math.Sqrt(float64(1+a)))*(1.5707288+0.2121144*a+0.0742610*a2+0.0187293*a3) - HalfPi
}

// AsinDeg returns an approximation of the arcsine of a in degrees, between
// -90 and 90 when a is in [-1, 1].
func AsinDeg(a float32) float32 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return 90 -
			float32(math.Sqrt(float64(1-a)))*(89.99613099964837-12.153259893949748*a+4.2548418824210055*a2-1.0731098432343729*a3)
	}
	return float32(math.Sqrt(float64(1+a)))*(89.99613099964837+12.153259893949748*a+4.2548418824210055*a2+1.0731098432343729*a3) - 90
}

// AsinTurns returns an approximation of the arcsine of a in turns, between
// -0.25 and 0.25 when a is in [-1, 1]. Unlike [Atan2Turns] this can return
// negative turns.
func AsinTurns(a float32) float32 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return float32(0.25 - math.Sqrt(1.0-float64(a))*(0.24998925277680104-0.033759055260971525*float64(a)+0.011819005228947238*float64(a2)-0.0029808606756510357*float64(a3)))
	}
	return float32(math.Sqrt(1.0+float64(a))*(0.24998925277680104+0.033759055260971525*float64(a)+0.011819005228947238*float64(a2)+0.0029808606756510357*float64(a3)) - 0.25)
}

// Acos returns an approximation of the arccosine of a in radians, between 0
// and Pi when a is in [-1, 1].
func Acos(a float32) float32 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return float32(math.Sqrt(float64(1-a))) * (1.5707288 - 0.2121144*a + 0.0742610*a2 - 0.0187293*a3)
	}
	return Pi -
		float32(math.Sqrt(float64(1+a)))*(1.5707288+0.2121144*a+0.0742610*a2+0.0187293*a3)
}

// AcosDeg returns an approximation of the arccosine of a in degrees, between
// 0 and 180 when a is in [-1, 1].
func AcosDeg(a float32) float32 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return float32(math.Sqrt(float64(1-a))) * (89.99613099964837 - 12.153259533621753*a + 4.254842010910525*a2 - 1.0731098035209208*a3)
	}
	return 180 -
		float32(math.Sqrt(float64(1+a)))*(89.99613099964837+12.153259533621753*a+4.254842010910525*a2+1.0731098035209208*a3)
}

// AcosTurns returns an approximation of the arccosine of a in turns, between
// 0 and 0.5 when a is in [-1, 1].
func AcosTurns(a float32) float32 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return float32(math.Sqrt(1.0-float64(a)) * (0.24998925277680104 - 0.033759055260971525*float64(a) + 0.011819005228947238*float64(a2) - 0.0029808606756510357*float64(a3)))
	}
	return float32(0.5 - math.Sqrt(1.0+float64(a))*(0.24998925277680104+0.033759055260971525*float64(a)+0.011819005228947238*float64(a2)+0.0029808606756510357*float64(a3)))
}

// AsinD is the float64 variant of [Asin].
func AsinD(a float64) float64 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return HalfPiD -
			math.Sqrt(1-a)*(1.5707288-0.2121144*a+0.0742610*a2-0.0187293*a3)
	}
	return math.Sqrt(1+a)*(1.5707288+0.2121144*a+0.0742610*a2+0.0187293*a3) - HalfPiD
}

// AsinDegD is the float64 variant of [AsinDeg].
func AsinDegD(a float64) float64 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return 90 -
			math.Sqrt(1-a)*(89.99613099964837-12.153259893949748*a+4.2548418824210055*a2-1.0731098432343729*a3)
	}
	return math.Sqrt(1+a)*(89.99613099964837+12.153259893949748*a+4.2548418824210055*a2+1.0731098432343729*a3) - 90
}

// AsinTurnsD is the float64 variant of [AsinTurns].
func AsinTurnsD(a float64) float64 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return 0.25 - math.Sqrt(1-a)*(0.24998925277680104-0.033759055260971525*a+0.011819005228947238*a2-0.0029808606756510357*a3)
	}
	return math.Sqrt(1+a)*(0.24998925277680104+0.033759055260971525*a+0.011819005228947238*a2+0.0029808606756510357*a3) - 0.25
}

// AcosD is the float64 variant of [Acos].
func AcosD(a float64) float64 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return math.Sqrt(1-a) * (1.5707288 - 0.2121144*a + 0.0742610*a2 - 0.0187293*a3)
	}
	return math.Pi -
		math.Sqrt(1+a)*(1.5707288+0.2121144*a+0.0742610*a2+0.0187293*a3)
}

// AcosDegD is the float64 variant of [AcosDeg].
func AcosDegD(a float64) float64 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return math.Sqrt(1-a) * (89.99613099964837 - 12.153259533621753*a + 4.254842010910525*a2 - 1.0731098035209208*a3)
	}
	return 180 -
		math.Sqrt(1+a)*(89.99613099964837+12.153259533621753*a+4.254842010910525*a2+1.0731098035209208*a3)
}

// AcosTurnsD is the float64 variant of [AcosTurns].
func AcosTurnsD(a float64) float64 {
	a2 := a * a
	a3 := a * a2
	if a >= 0 {
		return math.Sqrt(1-a) * (0.24998925277680104 - 0.033759055260971525*a + 0.011819005228947238*a2 - 0.0029808606756510357*a3)
	}
	return 0.5 - math.Sqrt(1+a)*(0.24998925277680104+0.033759055260971525*a+0.011819005228947238*a2+0.0029808606756510357*a3)
}
