////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package measure

// measure/run.go contains the RunMetrics object, constructors and its methods

import (
	"time"
)

// RunMetrics structure holds metrics for the life-cycle of a single
// invocation of the tool. It includes the events of every counting phase.
type RunMetrics struct {
	InputSize    int
	NumWorkers   int
	PhaseMetrics PhaseMetrics

	// Special recorded events
	StartTime time.Time
	EndTime   time.Time
}

// NewRunMetrics initializes a new RunMetrics object for an input of the
// given size counted with the given number of workers.
func NewRunMetrics(inputSize, numWorkers int) RunMetrics {
	return RunMetrics{
		InputSize:    inputSize,
		NumWorkers:   numWorkers,
		StartTime:    time.Now().Round(0),
		PhaseMetrics: PhaseMetrics{},
	}
}

// AddPhase adds a phase and its metrics to the RunMetrics object.
func (rm *RunMetrics) AddPhase(name string, metrics *Metrics) {
	rm.PhaseMetrics = append(rm.PhaseMetrics, phaseMetric{name, metrics})
}

// Phase returns the metrics of the named phase, or nil if it was never added.
func (rm *RunMetrics) Phase(name string) *Metrics {
	return rm.PhaseMetrics.Get(name)
}

// Finish stamps the end of the run.
func (rm *RunMetrics) Finish() {
	rm.EndTime = time.Now().Round(0)
}
