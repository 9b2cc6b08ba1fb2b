package cliconfig

import "github.com/getmockd/stablerand/pkg/motif"

// DefaultOutput is the default result format.
const DefaultOutput = OutputText

// DefaultLogLevel keeps the CLI quiet unless something is wrong.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log format.
const DefaultLogFormat = "text"

// DefaultVariants are the tile styles used when none are configured.
func DefaultVariants() []motif.Variant {
	return []motif.Variant{
		{Name: "plain", Weight: 5},
		{Name: "outline", Weight: 3},
		{Name: "accent", Weight: 2},
	}
}

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		Output:    DefaultOutput,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Dots:      motif.DefaultDotOptions(),
		Variants:  DefaultVariants(),
		Sources:   make(map[string]string),
	}
	for _, key := range fieldKeys {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}

// fieldKeys lists every tracked field, in display order.
var fieldKeys = []string{
	"output",
	"logLevel",
	"logFormat",
	"dots.width",
	"dots.height",
	"dots.count",
	"dots.minRadius",
	"dots.maxRadius",
	"dots.minOpacity",
	"dots.maxOpacity",
	"variants",
}

// FieldKeys returns the tracked field names in display order.
func FieldKeys() []string {
	out := make([]string, len(fieldKeys))
	copy(out, fieldKeys)
	return out
}
