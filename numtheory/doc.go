// Package numtheory collects the elementary number-theory routines:
// Euclidean GCD, the extended Euclidean algorithm, binary exponentiation,
// modular inverses, the sieve of Eratosthenes, and trial-division
// factorization.
//
// Overview:
//
//   - GCD(a, b): iterative Euclid on absolute values; GCD(0, 0) = 0.
//   - ExtendedGCD(a, b): gcd g plus Bézout coefficients x, y with
//     a·x + b·y = g.
//   - BinPow(base, exp): exact integer power by squaring, O(log exp).
//   - ModPow(base, exp, mod): power by squaring reduced modulo mod; the
//     result is always in [0, mod).
//   - ModInverse(a, m): the x in [0, m) with a·x ≡ 1 (mod m), via the
//     extended Euclidean algorithm; exists iff gcd(a, m) == 1.
//   - Sieve(n): all primes ≤ n by the classic composite-marking sieve,
//     O(n log log n).
//   - Factorize(n): the prime factorization of n in non-decreasing order by
//     trial division up to √n, O(√n).
//
// Errors (sentinel):
//
//   - ErrNegativeExponent BinPow/ModPow with exp < 0.
//   - ErrBadModulus       ModPow/ModInverse with mod (m) < 1.
//   - ErrNoInverse        ModInverse when gcd(a, m) ≠ 1.
//   - ErrBadLimit         Sieve with n < 0.
//   - ErrBadArgument      Factorize with n < 1.
package numtheory
