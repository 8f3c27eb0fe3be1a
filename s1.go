package primecount

// S1 computes the ordinary leaves of the special-leaf decomposition:
// the sum of mu(n) * phi(x/n, c) over the squarefree n <= y whose
// least prime factor exceeds p_c. Each phi value is a PhiTiny closed
// form, so the whole sum is O(y).
func S1(x, y, c, pc int64, lpf []int32, mu []int8) int64 {
	sum := int64(0)
	for n := int64(1); n <= y; n++ {
		if mu[n] != 0 && int64(lpf[n]) > pc {
			sum += int64(mu[n]) * phiTiny(x/n, c)
		}
	}
	return sum
}
