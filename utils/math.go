package utils

import (
	"math"
)

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	default:
		y = x * x * x * x * POW(x, p-4)
	}
	if flipped {
		y = 1. / y
	}
	return
}

// Sign returns -1, 0 or 1; zero maps to zero, unlike math.Copysign
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func Clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}

// MinAbs returns whichever argument has the smaller magnitude, a on ties
func MinAbs(a, b float64) float64 {
	if math.Abs(a) <= math.Abs(b) {
		return a
	}
	return b
}
