// Package cliconfig provides configuration types and loading for the stablerand CLI.
package cliconfig

import "github.com/getmockd/stablerand/pkg/motif"

// Config represents the complete configuration for the stablerand CLI.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables (a .env file in the current directory is loaded first)
// 3. A file named with --config or STABLERAND_CONFIG
// 4. Local config file (.stablerandrc.yaml in current directory)
// 5. Global config file (~/.config/stablerand/config.yaml)
// 6. Default values (lowest priority)
type Config struct {
	// Output is the result format: text, json or yaml.
	Output string `yaml:"output" json:"output"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Dots are the defaults for `stablerand dots`.
	Dots motif.DotOptions `yaml:"dots" json:"dots"`

	// Variants are the defaults for `stablerand tiles`.
	Variants []motif.Variant `yaml:"variants,omitempty" json:"variants,omitempty"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`
}

// Layer is the partial configuration read from one source (a config file or
// the environment). A nil field is unset; a non-nil zero overrides the layers
// below it. Empty strings and an empty variant list are unset.
type Layer struct {
	Output    string          `yaml:"output"`
	LogLevel  string          `yaml:"logLevel"`
	LogFormat string          `yaml:"logFormat"`
	Dots      DotsLayer       `yaml:"dots"`
	Variants  []motif.Variant `yaml:"variants"`
}

// DotsLayer mirrors motif.DotOptions with every field optional.
type DotsLayer struct {
	Width      *float64 `yaml:"width"`
	Height     *float64 `yaml:"height"`
	Count      *int     `yaml:"count"`
	MinRadius  *float64 `yaml:"minRadius"`
	MaxRadius  *float64 `yaml:"maxRadius"`
	MinOpacity *float64 `yaml:"minOpacity"`
	MaxOpacity *float64 `yaml:"maxOpacity"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)
