////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package conf

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by BindEnv.
const EnvPrefix = "primecount"

// BindEnv makes vip read its keys from PRIMECOUNT_ environment variables.
// Nested keys use underscores, so dispatch.workers is read from
// PRIMECOUNT_DISPATCH_WORKERS.
func BindEnv(vip *viper.Viper) {
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv() // read in environment variables that match
}
