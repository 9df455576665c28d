////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package cmd initializes the CLI and config parsers as well as the logger.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
	"gitlab.com/elixxir/primecount/cmd/conf"
	"gitlab.com/elixxir/primecount/report"
	"gitlab.com/elixxir/primecount/services"
)

var cfgFile string
var verbose bool
var showVer bool

// rootCmd represents the base command when called without any sub-commands
var rootCmd = &cobra.Command{
	Use:   "primecount [flags] <file>",
	Short: "Counts the primes in a file of integers",
	Long: `Reads one integer per line from the given file and counts how many
of them are prime, once on a single thread and once split across a pool of
workers, then reports both counts, their timings and the speedup.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if showVer {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVer {
			printVersion(cmd.OutOrStdout())
			return nil
		}

		params, err := conf.NewParams(viper.GetViper())
		if err != nil {
			return errors.WithMessage(err, "invalid configuration")
		}

		stop := ReceiveExitSignal()
		go func() {
			sig := <-stop
			jww.WARN.Printf("Received %s signal, exiting before the "+
				"count completed", sig)
			os.Exit(1)
		}()

		return Count(args[0], params, cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		jww.ERROR.Printf("Exiting with error: %+v", err)
		os.Exit(1)
	}
	jww.DEBUG.Printf("Exiting without error...")
}

// init is the initialization function for Cobra which defines commands
// and flags.
func init() {
	cobra.OnInitialize(initConfig, initLog)

	rootCmd.Flags().StringVarP(&cfgFile, "config", "", "",
		"config file (default is $HOME/.elixxir/primecount.yaml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Verbose mode for debugging")
	rootCmd.Flags().BoolVarP(&showVer, "version", "V", false,
		"Show the version information.")
	rootCmd.Flags().IntP("workers", "w", runtime.NumCPU(),
		"Number of workers used for the parallel count")
	rootCmd.Flags().Int("maxWorkers", services.DefaultMaxWorkers,
		"Largest worker count accepted before failing with resource "+
			"exhaustion")
	rootCmd.Flags().StringP("format", "f", report.FormatText,
		"Report format, either \"text\" or \"yaml\"")
	rootCmd.Flags().Bool("verify", false,
		"Recount with an independent primality test and compare")
	rootCmd.Flags().Bool("chunks", false,
		"Include the per-worker chunk breakdown in the report")
	rootCmd.Flags().String("logPath", "",
		"Write the log to this file instead of stdout")

	err := viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	handleBindingError(err, "verbose")

	err = viper.BindPFlag("dispatch.workers", rootCmd.Flags().Lookup("workers"))
	handleBindingError(err, "dispatch.workers")

	err = viper.BindPFlag("dispatch.maxWorkers",
		rootCmd.Flags().Lookup("maxWorkers"))
	handleBindingError(err, "dispatch.maxWorkers")

	err = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	handleBindingError(err, "format")

	err = viper.BindPFlag("verify", rootCmd.Flags().Lookup("verify"))
	handleBindingError(err, "verify")

	err = viper.BindPFlag("chunks", rootCmd.Flags().Lookup("chunks"))
	handleBindingError(err, "chunks")

	err = viper.BindPFlag("paths.log", rootCmd.Flags().Lookup("logPath"))
	handleBindingError(err, "paths.log")
}

func handleBindingError(err error, flag string) {
	if err != nil {
		jww.FATAL.Panicf("Error on binding flag \"%s\":%+v", flag, err)
	}
}

// initConfig reads in config file and ENV variables if set. A missing
// default config file is not an error, a missing explicit one is.
func initConfig() {
	explicit := cfgFile != ""

	//Use default config location if none is passed
	if !explicit {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			jww.ERROR.Println(err)
			os.Exit(1)
		}

		cfgFile = home + "/.elixxir/primecount.yaml"
	}

	conf.BindEnv(viper.GetViper())

	if _, err := os.Stat(cfgFile); err != nil {
		if explicit {
			jww.FATAL.Panicf("Invalid config file (%s): %s", cfgFile,
				err.Error())
		}
		return
	}

	viper.SetConfigFile(cfgFile)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		jww.FATAL.Panicf("Unable to read config file (%s): %s", cfgFile,
			err.Error())
	}
}

// initLog initializes logging thresholds and the log path.
func initLog() {
	// If verbose flag set then log more info for debugging
	if viper.GetBool("verbose") {
		jww.SetLogThreshold(jww.LevelDebug)
		jww.SetStdoutThreshold(jww.LevelDebug)
	} else {
		jww.SetLogThreshold(jww.LevelWarn)
		jww.SetStdoutThreshold(jww.LevelWarn)
	}

	logPath := viper.GetString("paths.log")
	if logPath == "" {
		return
	}

	// Create log file, overwrites if existing
	logPath, err := homedir.Expand(logPath)
	if err == nil {
		var logFile *os.File
		logFile, err = os.Create(logPath)
		if err == nil {
			jww.SetLogOutput(logFile)
			return
		}
	}
	fmt.Printf("Invalid or missing log path %s, "+
		"default path used.\n", logPath)
}
