package cliconfig

import (
	"fmt"
	"math"

	"github.com/getmockd/stablerand/pkg/logging"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output %q must be one of text, json, yaml", c.Output)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("logLevel %q must be one of debug, info, warn, error", c.LogLevel)
	}
	switch c.LogFormat {
	case "", string(logging.FormatText), string(logging.FormatJSON):
	default:
		return fmt.Errorf("logFormat %q must be text or json", c.LogFormat)
	}
	if err := c.Dots.Validate(); err != nil {
		return fmt.Errorf("dots: %w", err)
	}
	for i, v := range c.Variants {
		if v.Name == "" {
			return fmt.Errorf("variants[%d]: name is required", i)
		}
		if v.Weight < 0 || math.IsNaN(v.Weight) || math.IsInf(v.Weight, 0) {
			return fmt.Errorf("variants[%d]: weight %g must be a non-negative number", i, v.Weight)
		}
	}
	return nil
}
