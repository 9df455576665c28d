////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/elixxir/primecount/cmd/conf"
	"gitlab.com/elixxir/primecount/report"
	"gitlab.com/elixxir/primecount/services"
	"gopkg.in/yaml.v2"
)

func writeNumbers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testParams(workers int) *conf.Params {
	return &conf.Params{
		Format: report.FormatText,
		Dispatch: conf.Dispatch{
			Workers:    workers,
			MaxWorkers: services.DefaultMaxWorkers,
		},
	}
}

func TestCount_Text(t *testing.T) {
	path := writeNumbers(t, "2\n3\nfoo\n4\n\n 5 \n6\n-7\n7\n")

	var out bytes.Buffer
	require.NoError(t, Count(path, testParams(3), &out))

	text := out.String()
	assert.Contains(t, text, "(7 numbers)")
	assert.Contains(t, text, "[Single-Threaded]\n  Primes found: 4\n")
	assert.Contains(t, text, "[Multi-Threaded (3 threads)]\n  Primes found: 4\n")
	assert.Contains(t, text, "Speedup: ")
	assert.NotContains(t, text, "Chunks:")
	assert.NotContains(t, text, "Verification:")
}

func TestCount_Empty(t *testing.T) {
	path := writeNumbers(t, "abc\n\n1.5\n")

	var out bytes.Buffer
	require.NoError(t, Count(path, testParams(2), &out))
	assert.Equal(t, "No valid numbers found in "+path+"\n", out.String())
}

func TestCount_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	var out bytes.Buffer
	err := Count(path, testParams(2), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Zero(t, out.Len())
}

func TestCount_InvalidWorkers(t *testing.T) {
	path := writeNumbers(t, "2\n3\n")

	var out bytes.Buffer
	err := Count(path, testParams(0), &out)
	require.Error(t, err)

	kind, ok := services.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, services.InvalidConfiguration, kind)
	assert.Zero(t, out.Len())
}

func TestCount_TooManyWorkers(t *testing.T) {
	path := writeNumbers(t, "2\n3\n")
	params := testParams(9)
	params.Dispatch.MaxWorkers = 8

	err := Count(path, params, &bytes.Buffer{})
	require.Error(t, err)

	kind, ok := services.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, services.ResourceExhaustion, kind)
}

// Params without a worker limit use the default one.
func TestCount_ZeroMaxWorkers(t *testing.T) {
	path := writeNumbers(t, "2\n3\n4\n5\n")
	params := &conf.Params{Dispatch: conf.Dispatch{Workers: 2}}

	var out bytes.Buffer
	require.NotPanics(t, func() {
		require.NoError(t, Count(path, params, &out))
	})
	assert.Contains(t, out.String(),
		"[Multi-Threaded (2 threads)]\n  Primes found: 3\n")

	params.Dispatch.Workers = services.DefaultMaxWorkers + 1
	err := Count(path, params, &bytes.Buffer{})
	kind, ok := services.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, services.ResourceExhaustion, kind)
}

// More workers than numbers is valid, the extra workers get empty chunks.
func TestCount_MoreWorkersThanNumbers(t *testing.T) {
	path := writeNumbers(t, "17\n")
	params := testParams(4)
	params.ShowChunks = true

	var out bytes.Buffer
	require.NoError(t, Count(path, params, &out))

	text := out.String()
	assert.Contains(t, text, "[Multi-Threaded (4 threads)]\n  Primes found: 1\n")
	assert.Contains(t, text, "  [0] [0, 0) 0 numbers")
	assert.Contains(t, text, "  [3] [0, 1) 1 numbers")
}

func TestCount_VerifyYAML(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString(strings.Repeat(" ", i%3))
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("\n")
	}
	path := writeNumbers(t, sb.String())

	params := testParams(7)
	params.Format = report.FormatYAML
	params.Verify = true
	params.ShowChunks = true

	var out bytes.Buffer
	require.NoError(t, Count(path, params, &out))

	decoded := struct {
		Numbers    int `yaml:"numbers"`
		Workers    int `yaml:"workers"`
		Sequential struct {
			Primes int64 `yaml:"primes"`
		} `yaml:"sequential"`
		Parallel struct {
			Primes int64 `yaml:"primes"`
		} `yaml:"parallel"`
		Verified struct {
			Primes int64 `yaml:"primes"`
			Match  bool  `yaml:"match"`
		} `yaml:"verified"`
		Chunks []struct {
			Size int `yaml:"size"`
		} `yaml:"chunks"`
	}{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, 1000, decoded.Numbers)
	assert.Equal(t, 7, decoded.Workers)
	assert.EqualValues(t, 168, decoded.Sequential.Primes)
	assert.EqualValues(t, 168, decoded.Parallel.Primes)
	assert.EqualValues(t, 168, decoded.Verified.Primes)
	assert.True(t, decoded.Verified.Match)

	require.Len(t, decoded.Chunks, 7)
	total := 0
	for i, c := range decoded.Chunks[:6] {
		assert.Equal(t, 142, c.Size, "chunk %d", i)
		total += c.Size
	}
	assert.Equal(t, 148, decoded.Chunks[6].Size)
	assert.Equal(t, 1000, total+decoded.Chunks[6].Size)
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	printVersion(&out)
	assert.True(t, strings.HasPrefix(out.String(),
		"Elixxir Prime Counter v"+SEMVER+" -- "+GITVERSION))
	assert.Contains(t, out.String(), "gitlab.com/elixxir/primecount")
}
