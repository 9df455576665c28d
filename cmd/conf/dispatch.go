////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package conf

// Dispatch contains the parallel counter config params
type Dispatch struct {
	Workers    int `yaml:"workers"`
	MaxWorkers int `yaml:"maxWorkers"`
}
