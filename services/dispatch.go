////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package services

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/elixxir/primecount/internal/measure"
	"gitlab.com/elixxir/primecount/primality"
)

// DefaultMaxWorkers is the largest number of workers a single count may start
// unless the Dispatcher is built with another limit.
const DefaultMaxWorkers = 4096

var defaultDispatcher = NewDispatcher(DefaultMaxWorkers, primality.IsPrime, nil)

// CountParallel counts the primes in seq by splitting it into workers chunks
// and counting each chunk on its own goroutine. It fails if workers is not
// positive, if it exceeds DefaultMaxWorkers, or if any worker faults.
func CountParallel(seq []int64, workers int) (int64, error) {
	return defaultDispatcher.Count(seq, workers)
}

// Dispatcher runs parallel counts. It holds no state between calls other than
// the optional metrics it records worker events into.
type Dispatcher struct {
	maxWorkers int
	test       primality.Tester
	metrics    *measure.Metrics
}

// partialResult is what a single worker hands to the aggregator.
type partialResult struct {
	worker int
	count  int64
	err    error
}

// NewDispatcher builds a Dispatcher which starts at most maxWorkers
// goroutines per count and classifies numbers with test. If metrics is not
// nil every worker records a pair of WorkerTag events around its count.
func NewDispatcher(maxWorkers int, test primality.Tester,
	metrics *measure.Metrics) *Dispatcher {
	if maxWorkers <= 0 {
		panic(fmt.Sprintf("Max workers must be positive, received %v", maxWorkers))
	}
	if test == nil {
		panic("Cannot dispatch without a primality tester")
	}

	return &Dispatcher{
		maxWorkers: maxWorkers,
		test:       test,
		metrics:    metrics,
	}
}

// MaxWorkers returns the worker limit of the Dispatcher.
func (d *Dispatcher) MaxWorkers() int {
	return d.maxWorkers
}

// Count partitions seq into workers chunks, counts every chunk on its own
// goroutine and sums the partial results once all workers are done. Empty
// chunks still get a worker, which reports zero. If any worker fails the
// partial results of the others are discarded and the failure is returned.
func (d *Dispatcher) Count(seq []int64, workers int) (int64, error) {
	if workers <= 0 {
		return 0, errors.Wrapf(ErrInvalidConfiguration,
			"worker count must be positive, received %d", workers)
	}
	if workers > d.maxWorkers {
		return 0, errors.Wrapf(ErrResourceExhaustion,
			"cannot start %d workers, limit is %d", workers, d.maxWorkers)
	}

	chunks := Partition(len(seq), workers)
	jww.DEBUG.Printf("Dispatching %d numbers to %d workers, "+
		"base chunk size %d", len(seq), workers, chunks[0].Len())

	// Buffered so that no worker blocks on its send
	results := make(chan partialResult, len(chunks))

	var wg sync.WaitGroup
	for i, c := range chunks {
		wg.Add(1)
		go d.dispatch(i, c.Slice(seq), results, &wg)
	}

	wg.Wait()
	close(results)

	var total int64
	var failure error
	for r := range results {
		if r.err != nil {
			jww.WARN.Printf("Worker %d failed: %s", r.worker, r.err.Error())
			if failure == nil {
				failure = r.err
			}
			continue
		}
		total += r.count
	}

	if failure != nil {
		return 0, failure
	}

	return total, nil
}

// dispatch counts a single chunk and sends exactly one partialResult. A panic
// in the tester is turned into a WorkerFailure.
func (d *Dispatcher) dispatch(worker int, slice []int64,
	results chan<- partialResult, wg *sync.WaitGroup) {
	defer wg.Done()

	tag := measure.WorkerTag(worker)
	if d.metrics != nil {
		d.metrics.Measure(tag)
		defer d.metrics.Measure(tag)
	}

	defer func() {
		if r := recover(); r != nil {
			results <- partialResult{
				worker: worker,
				err: errors.Wrapf(ErrWorkerFailure,
					"worker %d panicked on %d numbers: %v", worker, len(slice), r),
			}
		}
	}()

	results <- partialResult{worker: worker, count: CountWith(d.test, slice)}
}
