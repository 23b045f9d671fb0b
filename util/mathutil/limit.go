package mathutil

func LimitFloat64(v float64, lo, hi float64) float64 {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

// Returns zero if v is in the open interval (-eps, eps).
func SnapZeroFloat64(v, eps float64) float64 {
	if v > -eps && v < eps {
		return 0
	}
	return v
}

func Biggest(a, b int) int {
	if a > b {
		return a
	}
	return b
}
