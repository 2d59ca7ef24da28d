package mandel

// Escape returns the number of iterations of z ← z² + c before the
// orbit leaves the circle |z| = 2, capped at maxIter. A return value of
// maxIter means the point is treated as inside the set. The escape test
// compares |z|² against 4, which avoids a square root on the hot path.
func Escape(c complex128, maxIter int) int {
	var z complex128
	n := 0
	for n < maxIter && real(z)*real(z)+imag(z)*imag(z) < 4 {
		z = z*z + c
		n++
	}
	return n
}
