package hash

// NextPrime returns the smallest prime that is at least start.
//
// start must be greater than 10. By Bertrand's postulate there is a prime in
// (start, 2*start), so only that range is scanned; -1 is returned if the scan
// is exhausted, which cannot happen for valid inputs.
func NextPrime(start int) int {
	if start%2 == 0 {
		start++
	}
	for i := start; i <= 2*start; i += 2 {
		if oddPrime(i) {
			return i
		}
	}
	return -1
}

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	return oddPrime(n)
}

// oddPrime tests an odd n > 1 by trial division over odd divisors.
func oddPrime(n int) bool {
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// RoundCapacity returns the capacity to use for a table that was requested
// to hold at least n slots: the smallest prime >= max(n, MinCapacity).
func RoundCapacity(n int) int {
	if n <= MinCapacity {
		return MinCapacity
	}
	return NextPrime(n)
}

// Grow returns the capacity that follows size on rehash.
func Grow(size int) int {
	return NextPrime(2*size + 1)
}
