package cliconfig

// MergeConfig applies every value set in source to target, updating sources
// tracking. Explicit zeros in source are applied.
func MergeConfig(target *Config, source *Layer, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	setString := func(key string, dst *string, v string) {
		if v != "" {
			*dst = v
			target.Sources[key] = sourceType
		}
	}
	setFloat := func(key string, dst *float64, v *float64) {
		if v != nil {
			*dst = *v
			target.Sources[key] = sourceType
		}
	}

	setString("output", &target.Output, source.Output)
	setString("logLevel", &target.LogLevel, source.LogLevel)
	setString("logFormat", &target.LogFormat, source.LogFormat)

	dots := source.Dots
	setFloat("dots.width", &target.Dots.Width, dots.Width)
	setFloat("dots.height", &target.Dots.Height, dots.Height)
	if dots.Count != nil {
		target.Dots.Count = *dots.Count
		target.Sources["dots.count"] = sourceType
	}
	setFloat("dots.minRadius", &target.Dots.MinRadius, dots.MinRadius)
	setFloat("dots.maxRadius", &target.Dots.MaxRadius, dots.MaxRadius)
	setFloat("dots.minOpacity", &target.Dots.MinOpacity, dots.MinOpacity)
	setFloat("dots.maxOpacity", &target.Dots.MaxOpacity, dots.MaxOpacity)

	// A variant list replaces the previous one wholesale.
	if len(source.Variants) > 0 {
		target.Variants = append(target.Variants[:0:0], source.Variants...)
		target.Sources["variants"] = sourceType
	}
}
