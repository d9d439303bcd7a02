// Package config loads assembler options from a TOML or YAML file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/sicxe/sicxe"
	"github.com/ezrec/sicxe/translate"
)

var f = translate.From

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = "warning"

// Config holds the assembler options.
type Config struct {
	Verbose              bool   `toml:"verbose" yaml:"verbose"`
	LenientOpcodes       bool   `toml:"lenient_opcodes" yaml:"lenient_opcodes"`
	StrictInstructions   bool   `toml:"strict_instructions" yaml:"strict_instructions"`
	RelativeConstants    bool   `toml:"relative_constants" yaml:"relative_constants"`
	DisableEndLabelFixup bool   `toml:"disable_end_label_fixup" yaml:"disable_end_label_fixup"`
	LogLevel             string `toml:"log_level" yaml:"log_level"`
}

// ErrConfigFormat names a configuration file with an unknown extension.
type ErrConfigFormat string

func (err ErrConfigFormat) Error() string {
	return f("config file '%v' is neither TOML nor YAML", string(err))
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{LogLevel: DefaultLogLevel}
}

// Load reads a configuration file, picking the decoder by extension. An
// empty path returns the defaults.
func Load(path string) (conf *Config, err error) {
	conf = Default()
	if len(path) == 0 {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		conf = nil
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = conf.DecodeTOML(string(data))
	case ".yaml", ".yml":
		err = conf.DecodeYAML(data)
	default:
		err = ErrConfigFormat(path)
	}

	if err != nil {
		conf = nil
	}

	return
}

// DecodeTOML overlays TOML text onto the configuration.
func (conf *Config) DecodeTOML(text string) (err error) {
	_, err = toml.Decode(text, conf)
	return
}

// DecodeYAML overlays YAML text onto the configuration.
func (conf *Config) DecodeYAML(data []byte) (err error) {
	return yaml.Unmarshal(data, conf)
}

// Level parses the configured log level.
func (conf *Config) Level() (level logrus.Level, err error) {
	name := conf.LogLevel
	if len(name) == 0 {
		name = DefaultLogLevel
	}
	return logrus.ParseLevel(name)
}

// Apply copies the options onto an assembler.
func (conf *Config) Apply(asm *sicxe.Assembler) {
	asm.Verbose = asm.Verbose || conf.Verbose
	asm.LenientOpcodes = conf.LenientOpcodes
	asm.StrictInstructions = conf.StrictInstructions
	asm.RelativeConstants = conf.RelativeConstants
	asm.DisableEndLabelFixup = conf.DisableEndLabelFixup
}
