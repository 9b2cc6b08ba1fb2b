package motif

import (
	"fmt"
	"strings"

	"github.com/getmockd/stablerand/pkg/stablerand"
)

// MaxDots bounds the number of dots a single field may hold.
const MaxDots = 10000

// DotOptions controls the geometry of a dot field.
type DotOptions struct {
	Width      float64 `json:"width" yaml:"width"`
	Height     float64 `json:"height" yaml:"height"`
	Count      int     `json:"count" yaml:"count"`
	MinRadius  float64 `json:"minRadius" yaml:"minRadius"`
	MaxRadius  float64 `json:"maxRadius" yaml:"maxRadius"`
	MinOpacity float64 `json:"minOpacity" yaml:"minOpacity"`
	MaxOpacity float64 `json:"maxOpacity" yaml:"maxOpacity"`
}

// DefaultDotOptions returns the field used behind hero sections.
func DefaultDotOptions() DotOptions {
	return DotOptions{
		Width:      640,
		Height:     360,
		Count:      48,
		MinRadius:  1,
		MaxRadius:  4,
		MinOpacity: 0.15,
		MaxOpacity: 0.6,
	}
}

// Validate reports the first problem with the options.
func (o DotOptions) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: dot field size %gx%g must be positive", stablerand.ErrInvalidArgument, o.Width, o.Height)
	case o.Count < 0 || o.Count > MaxDots:
		return fmt.Errorf("%w: dot count %d must be between 0 and %d", stablerand.ErrInvalidArgument, o.Count, MaxDots)
	case o.MinRadius < 0 || o.MinRadius > o.MaxRadius:
		return fmt.Errorf("%w: radius range [%g, %g] is invalid", stablerand.ErrInvalidArgument, o.MinRadius, o.MaxRadius)
	case o.MinOpacity < 0 || o.MaxOpacity > 1 || o.MinOpacity > o.MaxOpacity:
		return fmt.Errorf("%w: opacity range [%g, %g] is invalid", stablerand.ErrInvalidArgument, o.MinOpacity, o.MaxOpacity)
	}
	return nil
}

// Dot is one circle in a field.
type Dot struct {
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	R       float64 `json:"r" yaml:"r"`
	Opacity float64 `json:"opacity" yaml:"opacity"`
}

// DotField is a keyed scatter of dots.
type DotField struct {
	Key    string  `json:"key" yaml:"key"`
	Seed   uint32  `json:"seed" yaml:"seed"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Dots   []Dot   `json:"dots" yaml:"dots"`
}

// Dots scatters opts.Count dots over the field. For each dot the generator is
// drawn for x, y, radius and opacity, in that order.
func Dots(key string, opts DotOptions) (*DotField, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g := stablerand.NewFromKey(key)
	field := &DotField{
		Key:    key,
		Seed:   g.Seed(),
		Width:  opts.Width,
		Height: opts.Height,
		Dots:   make([]Dot, 0, opts.Count),
	}
	for i := 0; i < opts.Count; i++ {
		var d Dot
		var err error
		if d.X, err = g.FloatRange(0, opts.Width); err != nil {
			return nil, err
		}
		if d.Y, err = g.FloatRange(0, opts.Height); err != nil {
			return nil, err
		}
		if d.R, err = g.FloatRange(opts.MinRadius, opts.MaxRadius); err != nil {
			return nil, err
		}
		if d.Opacity, err = g.FloatRange(opts.MinOpacity, opts.MaxOpacity); err != nil {
			return nil, err
		}
		field.Dots = append(field.Dots, d)
	}
	return field, nil
}

// SVG renders the field as a standalone SVG document.
func (f *DotField) SVG() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" aria-hidden="true">`,
		num(f.Width), num(f.Height), num(f.Width), num(f.Height))
	b.WriteByte('\n')
	for _, d := range f.Dots {
		fmt.Fprintf(&b, `  <circle cx="%s" cy="%s" r="%s" fill="currentColor" fill-opacity="%s"/>`,
			num(d.X), num(d.Y), num(d.R), num(d.Opacity))
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// num formats coordinates with two decimals, which is what the page markup uses.
func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
