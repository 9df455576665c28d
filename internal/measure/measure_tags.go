////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package measure

// measure_tags.go contains the string constants for our measure tags

import "strconv"

// Constants for Tag strings used by Measure()
const (
	TagSequential = "Sequential Count"
	TagParallel   = "Parallel Count"
	TagWorker     = "Worker"
	TagVerify     = "Verification"
)

// Names of the phases added to RunMetrics
const (
	PhaseSequential = "sequential"
	PhaseParallel   = "parallel"
	PhaseVerify     = "verify"
)

// WorkerTag returns the tag used to measure the worker with the given index.
func WorkerTag(worker int) string {
	return TagWorker + strconv.Itoa(worker)
}
