// Package cyclic provides index arithmetic for infinitely wrapping lists.
//
// Positions in an infinite scroll space are "raw" indices: unbounded signed
// integers. A raw index maps onto actual content by folding it into
// [0, length); how many full cycles away from zero it sits is its section.
package cyclic

// Normalize folds i into [0, n). Negative i wraps backwards, so
// Normalize(-1, 4) == 3. n must be positive.
func Normalize(i, n int) int {
	return ((i % n) + n) % n
}

// ShortestWrapDistance returns the signed number of steps from current to
// target along the shorter arc of an n-item cycle. When the two arcs are the
// same length (|target-current| == n/2 exactly) the negative direction is
// returned; callers depend on that tie-break being stable.
func ShortestWrapDistance(current, target, n int) int {
	d := target - current
	if abs(d) >= n/2 && d != 0 {
		if d > 0 {
			d -= n
		} else {
			d += n
		}
	}
	return d
}

// Section returns floor(raw / n): the number of full laps between raw index
// zero and raw. Plain integer division truncates toward zero, which puts
// raw -1 in section 0 instead of -1; the negative branch compensates.
func Section(raw, n int) int {
	if raw >= 0 {
		return raw / n
	}
	return (raw+1)/n - 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
