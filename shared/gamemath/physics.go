package gamemath

// Accelerate moves speed by accel and caps the result at limit in the
// direction of accel.
func Accelerate(speed, accel, limit float64) float64 {
	speed += accel
	if accel > 0 && speed > limit {
		return limit
	}
	if accel < 0 && speed < -limit {
		return -limit
	}
	return speed
}

// Clamp applies lo and then hi, so hi wins when the range is empty.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
