package cube

// Cycle4 returns a copy of v in which the values held at the four slots in idx
// have moved one step around the cycle: the value at idx[i] lands on
// idx[i+1] when clockwise is set, and on idx[i-1] otherwise.
func Cycle4[T any](v []T, idx [4]int, clockwise bool) []T {
	out := make([]T, len(v))
	copy(out, v)
	cycle4(out, idx, clockwise)
	return out
}

// cycle4 is the in-place form of Cycle4.
func cycle4[T any](v []T, idx [4]int, clockwise bool) {
	if clockwise {
		last := v[idx[3]]
		v[idx[3]] = v[idx[2]]
		v[idx[2]] = v[idx[1]]
		v[idx[1]] = v[idx[0]]
		v[idx[0]] = last
		return
	}
	first := v[idx[0]]
	v[idx[0]] = v[idx[1]]
	v[idx[1]] = v[idx[2]]
	v[idx[2]] = v[idx[3]]
	v[idx[3]] = first
}

// ShiftOrientation returns (value + delta) mod modulus.
func ShiftOrientation(value, delta, modulus uint8) uint8 {
	return (value + delta) % modulus
}
