////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package services

import (
	"gitlab.com/elixxir/primecount/primality"
)

// CountSequential returns how many elements of seq are prime, visiting them
// in order on the calling goroutine.
func CountSequential(seq []int64) int64 {
	return CountWith(primality.IsPrime, seq)
}

// CountWith counts the elements of seq accepted by test. It is the body run
// by every parallel worker over its chunk.
func CountWith(test primality.Tester, seq []int64) int64 {
	var count int64
	for _, n := range seq {
		if test(n) {
			count++
		}
	}
	return count
}
