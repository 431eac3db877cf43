package geometry

// RubberBand compresses motion past the [min, max] range so that dragging
// beyond a boundary meets increasing resistance. Inside the range the value
// passes through unchanged. Outside it, the overshoot is remapped onto a
// curve that approaches, but never reaches, bandLength pixels past the
// boundary.
func RubberBand(value, min, max, bandLength float64) float64 {
	if value >= min && value <= max {
		return value
	}
	if value > max {
		return max + bandedDistance(value-max, bandLength)
	}
	return min - bandedDistance(min-value, bandLength)
}

// bandedDistance maps an overshoot distance onto [0, bandLength).
func bandedDistance(distance, bandLength float64) float64 {
	if bandLength <= 0 || distance <= 0 {
		return 0
	}
	return (1 - 1/(distance/bandLength+1)) * bandLength
}
