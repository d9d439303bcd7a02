// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command sicasm assembles SIC/XE source into HTME object records.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/sicxe/config"
	"github.com/ezrec/sicxe/sicxe"
)

var (
	configPath string
	verbose    bool
	logLevel   string

	conf *config.Config
)

var rootCmd = &cobra.Command{
	Use:               "sicasm",
	Short:             "Two pass SIC/XE assembler",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pflags := rootCmd.PersistentFlags()
	pflags.StringVarP(&configPath, "config", "c", "", "TOML or YAML configuration file")
	pflags.BoolVarP(&verbose, "verbose", "v", false, "Trace each statement")
	pflags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warning, error")

	rootCmd.AddCommand(
		assembleCmd,
		listingCmd,
		symbolsCmd,
		validateCmd,
		opcodesCmd,
		templateCmd,
	)
}

// setup loads the configuration and sets the log level.
func setup(cmd *cobra.Command, args []string) (err error) {
	conf, err = config.Load(configPath)
	if err != nil {
		return
	}

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = logLevel
	}
	if verbose {
		conf.Verbose = true
	}

	level, err := conf.Level()
	if err != nil {
		return
	}
	if conf.Verbose && level < logrus.InfoLevel {
		level = logrus.InfoLevel
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)

	return
}

// assembler returns an assembler configured from the flags and file.
func assembler() *sicxe.Assembler {
	asm := &sicxe.Assembler{Logger: logrus.StandardLogger()}
	conf.Apply(asm)
	return asm
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}
