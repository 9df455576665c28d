////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/elixxir/primecount/cmd/conf"
	"gitlab.com/elixxir/primecount/input"
	"gitlab.com/elixxir/primecount/internal/measure"
	"gitlab.com/elixxir/primecount/primality"
	"gitlab.com/elixxir/primecount/report"
	"gitlab.com/elixxir/primecount/services"
)

// Count reads the numbers in path, counts their primes sequentially and in
// parallel and writes the report to out. A non-positive MaxWorkers falls
// back to services.DefaultMaxWorkers and an empty Format to text.
func Count(path string, params *conf.Params, out io.Writer) error {
	numbers, err := input.ReadNumbers(path)
	if err != nil {
		return err
	}

	if len(numbers) == 0 {
		_, err = fmt.Fprintf(out, "No valid numbers found in %s\n", path)
		return errors.Wrap(err, "failed to write report")
	}

	workers := params.Dispatch.Workers
	jww.INFO.Printf("Counting primes in %d numbers from %s with %d workers",
		len(numbers), path, workers)

	rm := measure.NewRunMetrics(len(numbers), workers)

	seqMetrics := &measure.Metrics{}
	seqMetrics.Measure(measure.TagSequential)
	sequential := services.CountSequential(numbers)
	seqMetrics.Measure(measure.TagSequential)
	rm.AddPhase(measure.PhaseSequential, seqMetrics)

	maxWorkers := params.Dispatch.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = services.DefaultMaxWorkers
	}

	parMetrics := &measure.Metrics{}
	d := services.NewDispatcher(maxWorkers, primality.IsPrime, parMetrics)
	parMetrics.Measure(measure.TagParallel)
	parallel, err := d.Count(numbers, workers)
	parMetrics.Measure(measure.TagParallel)
	if err != nil {
		return errors.WithMessage(err, "parallel count failed")
	}
	rm.AddPhase(measure.PhaseParallel, parMetrics)

	if sequential != parallel {
		return errors.Errorf("sequential count %d does not match "+
			"parallel count %d", sequential, parallel)
	}

	r := report.New(path, &rm, sequential, parallel,
		services.Partition(len(numbers), workers))

	if params.Verify {
		verifyMetrics := &measure.Metrics{}
		verifyMetrics.Measure(measure.TagVerify)
		independent := services.CountWith(primality.Verify, numbers)
		verifyMetrics.Measure(measure.TagVerify)
		rm.AddPhase(measure.PhaseVerify, verifyMetrics)

		span, _ := verifyMetrics.Span(measure.TagVerify)
		jww.DEBUG.Printf("Independent count of %d primes took %s",
			independent, span)

		r.Verified = &report.Verification{
			Primes: independent,
			Match:  independent == sequential,
		}
	}

	rm.Finish()
	jww.DEBUG.Printf("Run over %d numbers finished in %s", rm.InputSize,
		rm.EndTime.Sub(rm.StartTime))

	format := params.Format
	if format == "" {
		format = report.FormatText
	}

	err = r.Write(out, format, params.ShowChunks)
	if err != nil {
		return err
	}

	if r.Verified != nil && !r.Verified.Match {
		return errors.Errorf("independent count %d does not match %d",
			r.Verified.Primes, sequential)
	}

	return nil
}
