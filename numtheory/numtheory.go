package numtheory

import "errors"

// Sentinel errors for the number-theory routines.
var (
	// ErrNegativeExponent indicates a negative exponent passed to a power.
	ErrNegativeExponent = errors.New("numtheory: exponent must be non-negative")

	// ErrBadModulus indicates a modulus smaller than 1.
	ErrBadModulus = errors.New("numtheory: modulus must be positive")

	// ErrNoInverse indicates that a has no inverse modulo m (gcd ≠ 1).
	ErrNoInverse = errors.New("numtheory: modular inverse does not exist")

	// ErrBadLimit indicates a negative sieve limit.
	ErrBadLimit = errors.New("numtheory: limit must be non-negative")

	// ErrBadArgument indicates an argument outside the defined domain.
	ErrBadArgument = errors.New("numtheory: argument out of domain")
)

// GCD returns the greatest common divisor of a and b, always non-negative.
// GCD(0, 0) is 0 by convention.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ExtendedGCD returns g = gcd(a, b) along with Bézout coefficients x, y
// satisfying a·x + b·y = g. For non-negative inputs g matches GCD(a, b).
func ExtendedGCD(a, b int64) (g, x, y int64) {
	// Iterative form: carry the coefficient rows (x0, y0) for the current
	// remainder and (x1, y1) for the next one.
	x0, y0 := int64(1), int64(0)
	x1, y1 := int64(0), int64(1)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}

	return a, x0, y0
}

// BinPow computes base^exp exactly by repeated squaring.
// The caller is responsible for keeping the result within int64.
//
// Complexity: O(log exp) multiplications.
func BinPow(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, ErrNegativeExponent
	}

	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}

	return result, nil
}

// ModPow computes base^exp mod m by repeated squaring.
// The result is always in [0, m), also for negative base.
//
// Complexity: O(log exp) multiplications.
func ModPow(base, exp, m int64) (int64, error) {
	if exp < 0 {
		return 0, ErrNegativeExponent
	}
	if m < 1 {
		return 0, ErrBadModulus
	}

	base = ((base % m) + m) % m
	result := int64(1) % m
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % m
		}
		base = base * base % m
		exp >>= 1
	}

	return result, nil
}

// ModInverse returns the x in [0, m) with a·x ≡ 1 (mod m).
// The inverse exists iff gcd(a, m) == 1; otherwise ErrNoInverse.
func ModInverse(a, m int64) (int64, error) {
	if m < 1 {
		return 0, ErrBadModulus
	}

	g, x, _ := ExtendedGCD(((a%m)+m)%m, m)
	if g != 1 {
		return 0, ErrNoInverse
	}

	return ((x % m) + m) % m, nil
}

// Sieve returns all primes ≤ n in ascending order via the sieve of
// Eratosthenes. Marking starts at p² since smaller multiples were already
// struck by smaller primes.
//
// Complexity: O(n log log n) time, O(n) space.
func Sieve(n int) ([]int, error) {
	if n < 0 {
		return nil, ErrBadLimit
	}
	if n < 2 {
		return []int{}, nil
	}

	composite := make([]bool, n+1)
	for p := 2; p*p <= n; p++ {
		if composite[p] {
			continue
		}
		for multiple := p * p; multiple <= n; multiple += p {
			composite[multiple] = true
		}
	}

	primes := make([]int, 0, n/2)
	for p := 2; p <= n; p++ {
		if !composite[p] {
			primes = append(primes, p)
		}
	}

	return primes, nil
}

// Factorize returns the prime factorization of n ≥ 1 in non-decreasing
// order, with multiplicity. Factorize(1) is the empty factorization.
//
// Complexity: O(√n) time.
func Factorize(n int64) ([]int64, error) {
	if n < 1 {
		return nil, ErrBadArgument
	}

	factors := []int64{}
	for d := int64(2); d*d <= n; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	// Whatever is left above √(original n) is prime.
	if n > 1 {
		factors = append(factors, n)
	}

	return factors, nil
}
