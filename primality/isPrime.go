////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package primality contains the primality kernels used by the counters.
package primality

// Tester decides whether a single integer is prime. Implementations must be
// pure so they can be shared between worker goroutines.
type Tester func(n int64) bool

// IsPrime reports whether n is prime using trial division over the 6k±1
// wheel. Every int64 is valid input; zero and negatives are not prime.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	// i <= n/i is i*i <= n without the overflow near math.MaxInt64
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
