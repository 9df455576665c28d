////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package primality

import (
	"github.com/cznic/mathutil"
)

// Verify is an independent Tester backed by mathutil's deterministic
// Miller-Rabin test. It shares no code with IsPrime and is used to cross
// check counts.
func Verify(n int64) bool {
	if n < 2 {
		return false
	}
	return mathutil.IsPrimeUint64(uint64(n))
}
