////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/elixxir/primecount/primality"
)

func TestCountSequential(t *testing.T) {
	tests := []struct {
		name     string
		seq      []int64
		expected int64
	}{
		{"empty", nil, 0},
		{"two to eleven", []int64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, 5},
		{"non positive", []int64{1, 0, -5}, 0},
		{"single prime", []int64{17}, 1},
		{"duplicates", []int64{7, 7, 7, 8}, 3},
		{"boundary pair", []int64{997, 999}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountSequential(tt.seq))
		})
	}
}

// Counting does not depend on the order of the input.
func TestCountSequential_Reverse(t *testing.T) {
	seq := randomSequence(rand.New(rand.NewSource(7)), 5000)

	reversed := make([]int64, len(seq))
	for i, n := range seq {
		reversed[len(seq)-1-i] = n
	}

	assert.Equal(t, CountSequential(seq), CountSequential(reversed))
}

func TestCountSequential_MatchesVerify(t *testing.T) {
	seq := randomSequence(rand.New(rand.NewSource(11)), 5000)
	assert.Equal(t, CountWith(primality.Verify, seq), CountSequential(seq))
}

func TestCountWith(t *testing.T) {
	even := func(n int64) bool { return n%2 == 0 }
	assert.EqualValues(t, 3, CountWith(even, []int64{1, 2, 4, 5, 6}))
	assert.EqualValues(t, 0, CountWith(even, nil))
}

// randomSequence mixes small values, negatives and large values so every
// branch of the tester is exercised.
func randomSequence(rng *rand.Rand, n int) []int64 {
	seq := make([]int64, n)
	for i := range seq {
		switch rng.Intn(4) {
		case 0:
			seq[i] = rng.Int63n(100) - 50
		case 1:
			seq[i] = rng.Int63n(10000)
		default:
			seq[i] = rng.Int63n(1 << 32)
		}
	}
	return seq
}
