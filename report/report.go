////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package report formats the outcome of a counting run.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/elixxir/primecount/internal/measure"
	"gitlab.com/elixxir/primecount/services"
	"gopkg.in/yaml.v2"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// IsFormat reports whether Write accepts format.
func IsFormat(format string) bool {
	return format == FormatText || format == FormatYAML
}

// Result is the outcome of one counting call.
type Result struct {
	Primes   int64
	Duration time.Duration
}

// ChunkResult describes the work done by a single parallel worker.
type ChunkResult struct {
	Worker int
	Begin  int
	End    int
	Busy   time.Duration
}

// Size returns the number of elements the worker counted.
func (c ChunkResult) Size() int {
	return c.End - c.Begin
}

// Verification is the count obtained with the independent tester.
type Verification struct {
	Primes int64
	Match  bool
}

// Report holds everything printed at the end of a run.
type Report struct {
	File       string
	Numbers    int
	Workers    int
	Sequential Result
	Parallel   Result
	Chunks     []ChunkResult
	Verified   *Verification
}

// New builds a Report from the metrics of a run. The durations of the two
// counts are the spans of TagSequential and TagParallel in their phases;
// chunk busy times are the spans of the worker tags in the parallel phase.
func New(file string, rm *measure.RunMetrics, sequential, parallel int64,
	chunks []services.Chunk) Report {
	r := Report{
		File:       file,
		Numbers:    rm.InputSize,
		Workers:    rm.NumWorkers,
		Sequential: Result{Primes: sequential},
		Parallel:   Result{Primes: parallel},
	}

	if m := rm.Phase(measure.PhaseSequential); m != nil {
		r.Sequential.Duration, _ = m.Span(measure.TagSequential)
	}

	if m := rm.Phase(measure.PhaseParallel); m != nil {
		r.Parallel.Duration, _ = m.Span(measure.TagParallel)
		for i, c := range chunks {
			busy, _ := m.Span(measure.WorkerTag(i))
			r.Chunks = append(r.Chunks, ChunkResult{
				Worker: i,
				Begin:  c.Begin(),
				End:    c.End(),
				Busy:   busy,
			})
		}
	}

	return r
}

// Speedup is the sequential time divided by the parallel time. It is zero
// when the parallel time was too short to measure.
func (r Report) Speedup() float64 {
	if r.Parallel.Duration <= 0 {
		return 0
	}
	return float64(r.Sequential.Duration) / float64(r.Parallel.Duration)
}

// Write prints the report to w in the given format.
func (r Report) Write(w io.Writer, format string, showChunks bool) error {
	var out []byte

	switch format {
	case FormatText:
		out = []byte(r.Text(showChunks))
	case FormatYAML:
		var err error
		out, err = r.YAML(showChunks)
		if err != nil {
			return err
		}
	default:
		return errors.Errorf("unknown report format %q", format)
	}

	_, err := w.Write(out)
	return errors.Wrap(err, "failed to write report")
}

// Text renders the human readable report.
func (r Report) Text(showChunks bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "File: %s (%d numbers)\n\n", r.File, r.Numbers)
	writeResult(&b, "Single-Threaded", r.Sequential)
	writeResult(&b, fmt.Sprintf("Multi-Threaded (%d threads)", r.Workers),
		r.Parallel)

	if r.Parallel.Duration > 0 {
		fmt.Fprintf(&b, "Speedup: %.2fx\n", r.Speedup())
	} else {
		b.WriteString("Speedup: n/a\n")
	}

	if r.Verified != nil {
		status := "ok"
		if !r.Verified.Match {
			status = "MISMATCH"
		}
		fmt.Fprintf(&b, "Verification: %s (independent count %d)\n",
			status, r.Verified.Primes)
	}

	if showChunks && len(r.Chunks) > 0 {
		b.WriteString("\nChunks:\n")
		for _, c := range r.Chunks {
			fmt.Fprintf(&b, "  [%d] [%d, %d) %d numbers, %s\n",
				c.Worker, c.Begin, c.End, c.Size(), formatMillis(c.Busy))
		}
	}

	return b.String()
}

func writeResult(b *strings.Builder, label string, res Result) {
	fmt.Fprintf(b, "[%s]\n", label)
	fmt.Fprintf(b, "  Primes found: %d\n", res.Primes)
	fmt.Fprintf(b, "  Time: %s\n\n", formatMillis(res.Duration))
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", millis(d))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

type yamlResult struct {
	Primes int64   `yaml:"primes"`
	Millis float64 `yaml:"ms"`
}

type yamlChunk struct {
	Worker int     `yaml:"worker"`
	Begin  int     `yaml:"begin"`
	End    int     `yaml:"end"`
	Size   int     `yaml:"size"`
	Millis float64 `yaml:"ms"`
}

type yamlVerification struct {
	Primes int64 `yaml:"primes"`
	Match  bool  `yaml:"match"`
}

type yamlReport struct {
	File       string            `yaml:"file"`
	Numbers    int               `yaml:"numbers"`
	Workers    int               `yaml:"workers"`
	Sequential yamlResult        `yaml:"sequential"`
	Parallel   yamlResult        `yaml:"parallel"`
	Speedup    float64           `yaml:"speedup"`
	Verified   *yamlVerification `yaml:"verified,omitempty"`
	Chunks     []yamlChunk       `yaml:"chunks,omitempty"`
}

// YAML renders the machine readable report. Durations are in milliseconds.
func (r Report) YAML(showChunks bool) ([]byte, error) {
	yr := yamlReport{
		File:       r.File,
		Numbers:    r.Numbers,
		Workers:    r.Workers,
		Sequential: yamlResult{r.Sequential.Primes, millis(r.Sequential.Duration)},
		Parallel:   yamlResult{r.Parallel.Primes, millis(r.Parallel.Duration)},
		Speedup:    r.Speedup(),
	}

	if r.Verified != nil {
		yr.Verified = &yamlVerification{r.Verified.Primes, r.Verified.Match}
	}

	if showChunks {
		for _, c := range r.Chunks {
			yr.Chunks = append(yr.Chunks, yamlChunk{
				Worker: c.Worker,
				Begin:  c.Begin,
				End:    c.End,
				Size:   c.Size(),
				Millis: millis(c.Busy),
			})
		}
	}

	out, err := yaml.Marshal(yr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal report")
	}
	return out, nil
}
