package shapes

import "math"

// validDimension rejects zero, negatives, NaN and infinities.
func validDimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func CompareAreas(a, b Shape) int {
	areaA, areaB := a.Area(), b.Area()

	switch {
	case areaA < areaB:
		return -1
	case areaA > areaB:
		return 1
	default:
		return 0
	}
}

// FindLargest returns the first shape with the largest area.
func FindLargest(shapes []Shape) (largest Shape, ok bool) {
	for _, s := range shapes {
		if !ok || CompareAreas(s, largest) > 0 {
			largest = s
			ok = true
		}
	}

	return
}

func TotalArea(shapes []Shape) (total float64) {
	for _, s := range shapes {
		total += s.Area()
	}

	return
}
