////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package input reads the numbers to be counted.
package input

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// ReadNumbers opens the file at path, expanding a leading ~, and parses it
// with Parse. An error is returned only if the file cannot be opened or read.
func ReadNumbers(path string) ([]int64, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not expand input path %q", path)
	}

	f, err := os.Open(expanded)
	if err != nil {
		return nil, errors.Wrap(err, "could not open input file")
	}
	defer func() {
		if err := f.Close(); err != nil {
			jww.WARN.Printf("Could not close input file %s: %+v", expanded, err)
		}
	}()

	numbers, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "could not read %s", expanded)
	}

	return numbers, nil
}

// Parse reads one integer per line from r. Surrounding whitespace is
// trimmed; empty lines and lines that are not base 10 int64 values are
// skipped without error. The returned numbers keep the order of the input.
func Parse(r io.Reader) ([]int64, error) {
	var numbers []int64
	skipped := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			skipped++
			continue
		}

		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			skipped++
			continue
		}
		numbers = append(numbers, n)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan input")
	}

	jww.DEBUG.Printf("Parsed %d numbers, skipped %d lines", len(numbers), skipped)

	return numbers, nil
}
