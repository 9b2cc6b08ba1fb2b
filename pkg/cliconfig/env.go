package cliconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/getmockd/stablerand/pkg/motif"
)

// EnvPrefix is prepended to every variable name, so LOG_LEVEL becomes STABLERAND_LOG_LEVEL.
const EnvPrefix = "STABLERAND"

// DotEnvFile is the dotenv file loaded from the current directory.
const DotEnvFile = ".env"

// EnvConfig is the environment layer, decoded with envconfig.
type EnvConfig struct {
	Config    string `desc:"Path to a YAML config file"`
	Output    string `desc:"Result format: text, json or yaml"`
	LogLevel  string `split_words:"true" desc:"Log level: debug, info, warn, error"`
	LogFormat string `split_words:"true" desc:"Log format: text or json"`

	DotsWidth      *float64 `split_words:"true" desc:"Dot field width"`
	DotsHeight     *float64 `split_words:"true" desc:"Dot field height"`
	DotsCount      *int     `split_words:"true" desc:"Number of dots"`
	DotsMinRadius  *float64 `split_words:"true" desc:"Smallest dot radius"`
	DotsMaxRadius  *float64 `split_words:"true" desc:"Largest dot radius (exclusive)"`
	DotsMinOpacity *float64 `split_words:"true" desc:"Lowest dot opacity"`
	DotsMaxOpacity *float64 `split_words:"true" desc:"Highest dot opacity (exclusive)"`

	// VARIANTS is a comma-separated list of name=weight pairs.
	Variants []string `desc:"Tile variants as name=weight,name=weight"`
}

// LoadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ReadEnv decodes the STABLERAND_* variables.
func ReadEnv() (*EnvConfig, error) {
	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &env, nil
}

// toLayer converts the environment layer for merging. Unset dot variables
// stay nil, so STABLERAND_DOTS_MIN_OPACITY=0 still overrides a config file.
func (e *EnvConfig) toLayer() (*Layer, error) {
	variants, err := motif.ParseVariants(e.Variants)
	if err != nil {
		return nil, fmt.Errorf("%s_VARIANTS: %w", EnvPrefix, err)
	}
	return &Layer{
		Output:    e.Output,
		LogLevel:  e.LogLevel,
		LogFormat: e.LogFormat,
		Dots: DotsLayer{
			Width:      e.DotsWidth,
			Height:     e.DotsHeight,
			Count:      e.DotsCount,
			MinRadius:  e.DotsMinRadius,
			MaxRadius:  e.DotsMaxRadius,
			MinOpacity: e.DotsMinOpacity,
			MaxOpacity: e.DotsMaxOpacity,
		},
		Variants: variants,
	}, nil
}

// see https://github.com/kelseyhightower/envconfig/blob/v1.4.0/usage.go#L31
const envUsageFormat = `KEY	DESCRIPTION
{{range .}}{{usage_key .}}	{{usage_description .}}
{{end}}`

// PrintEnvUsage writes the table of recognised environment variables to w.
func PrintEnvUsage(w io.Writer) error {
	tabs := tabwriter.NewWriter(w, 1, 0, 4, ' ', 0)
	if err := envconfig.Usagef(EnvPrefix, &EnvConfig{}, tabs, envUsageFormat); err != nil {
		return err
	}
	return tabs.Flush()
}
