package primecount

// phiTiny evaluates phi(x, a) in constant time for a <= phiTinyMaxA
// using the periodicity
//
//	phi(x, a) = (x / P_a) * phi(P_a) + phi(x mod P_a, a)
//
// where P_a is the a-th primorial. The per-residue tables are built
// once at startup.
const phiTinyMaxA = 7

var (
	// primorials[a] = p_1 * p_2 * ... * p_a.
	primorials = [phiTinyMaxA + 1]int64{1, 2, 6, 30, 210, 2310, 30030, 510510}

	// primorialTotients[a] = phi(primorials[a]).
	primorialTotients = [phiTinyMaxA + 1]int64{1, 1, 2, 8, 48, 480, 5760, 92160}

	// tinyPrimes[a] is the a-th prime, 1-indexed.
	tinyPrimes = [phiTinyMaxA + 1]int64{0, 2, 3, 5, 7, 11, 13, 17}

	// phiTinyTables[a][r] = phi(r, a) for 0 <= r < primorials[a].
	phiTinyTables [phiTinyMaxA + 1][]uint32
)

func init() {
	for a := 1; a <= phiTinyMaxA; a++ {
		pp := primorials[a]
		coprime := make([]bool, pp)
		for i := range coprime {
			coprime[i] = true
		}
		coprime[0] = false
		for _, p := range tinyPrimes[1 : a+1] {
			for n := int64(0); n < pp; n += p {
				coprime[n] = false
			}
		}
		table := make([]uint32, pp)
		count := uint32(0)
		for r := int64(0); r < pp; r++ {
			if coprime[r] {
				count++
			}
			table[r] = count
		}
		if int64(count) != primorialTotients[a] {
			panic("phiTiny: totient table mismatch")
		}
		phiTinyTables[a] = table
	}
}

func isPhiTiny(a int64) bool {
	return a <= phiTinyMaxA
}

func phiTiny(x, a int64) int64 {
	if a == 0 {
		return x
	}
	if a > phiTinyMaxA {
		panic("phiTiny: a > max_a")
	}
	pp := primorials[a]
	return (x/pp)*primorialTotients[a] + int64(phiTinyTables[a][x%pp])
}

// phiTinyGetC returns the largest a <= phiTinyMaxA whose a-th prime
// does not exceed sqrtx.
func phiTinyGetC(sqrtx int64) int64 {
	for a := int64(phiTinyMaxA); a > 0; a-- {
		if tinyPrimes[a] <= sqrtx {
			return a
		}
	}
	return 0
}
