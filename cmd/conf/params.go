////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package conf

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gitlab.com/elixxir/primecount/report"
	"gitlab.com/elixxir/primecount/services"
)

// This object is used by the count command.
// It should be constructed using a viper object
type Params struct {
	Format     string `yaml:"format"`
	Verify     bool   `yaml:"verify"`
	ShowChunks bool   `yaml:"chunks"`
	Verbose    bool   `yaml:"verbose"`

	Dispatch Dispatch `yaml:"dispatch"`
	Paths    Paths    `yaml:"paths"`
}

// NewParams gets elements of the viper object
// and updates the params object. It returns params
// unless it fails to parse in which it case returns error
func NewParams(vip *viper.Viper) (*Params, error) {
	params := Params{}

	params.Format = strings.ToLower(vip.GetString("format"))
	if params.Format == "" {
		params.Format = report.FormatText
	}
	if !report.IsFormat(params.Format) {
		return nil, errors.Errorf("unknown output format %q, expected %q or %q",
			params.Format, report.FormatText, report.FormatYAML)
	}

	params.Verify = vip.GetBool("verify")
	params.ShowChunks = vip.GetBool("chunks")
	params.Verbose = vip.GetBool("verbose")

	// A non-positive worker count is passed through, the counter rejects it
	params.Dispatch.Workers = runtime.NumCPU()
	if vip.IsSet("dispatch.workers") {
		params.Dispatch.Workers = vip.GetInt("dispatch.workers")
	}

	params.Dispatch.MaxWorkers = services.DefaultMaxWorkers
	if vip.IsSet("dispatch.maxWorkers") {
		params.Dispatch.MaxWorkers = vip.GetInt("dispatch.maxWorkers")
		if params.Dispatch.MaxWorkers <= 0 {
			return nil, errors.Errorf("dispatch.maxWorkers must be positive, "+
				"received %d", params.Dispatch.MaxWorkers)
		}
	}

	params.Paths.Log = vip.GetString("paths.log")

	return &params, nil
}
