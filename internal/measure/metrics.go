////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package measure

// metrics.go contains the metrics object and its methods

import (
	"sync"
	"time"
)

// Metrics structure holds the list of events recorded during a counting
// phase. The RWMutex prevents two workers from writing to the list at the
// same time.
type Metrics struct {
	Events []Metric
	sync.RWMutex
}

// Metric structure holds a single measurement, which contains a tag and a
// timestamp from when the measurement was taken.
type Metric struct {
	Tag       string
	Timestamp time.Time
}

// Measure creates a new Metric object and appends it to the Metrics's event
// list. The Metric object is created from the specified tag and a timestamp
// created at the time of function call. The timestamp is returned.
func (ms *Metrics) Measure(tag string) time.Time {
	// Create new Metric object from the tag and new timestamp
	metric := Metric{
		Tag:       tag,
		Timestamp: time.Now(),
	}

	// Append the metric to the event list
	ms.Lock()
	ms.Events = append(ms.Events, metric)
	ms.Unlock()

	return metric.Timestamp
}

// GetEvents returns a copy of the Events array.
func (ms *Metrics) GetEvents() []Metric {
	ms.RLock()
	defer ms.RUnlock()
	metricsEvents := make([]Metric, len(ms.Events))

	copy(metricsEvents, ms.Events)

	return metricsEvents
}

// Span returns the time between the first two events recorded with the given
// tag. Events are measured in pairs, once on entry and once on exit, so the
// span is the time spent inside the measured section. The bool is false if
// fewer than two events carry the tag.
func (ms *Metrics) Span(tag string) (time.Duration, bool) {
	var start time.Time
	found := false

	for _, e := range ms.GetEvents() {
		if e.Tag != tag {
			continue
		}
		if !found {
			start = e.Timestamp
			found = true
			continue
		}
		return e.Timestamp.Sub(start), true
	}

	return 0, false
}
