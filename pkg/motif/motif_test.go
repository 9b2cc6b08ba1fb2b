package motif

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/stablerand/pkg/stablerand"
)

func TestDots_FirstDotGolden(t *testing.T) {
	field, err := Dots("42", DefaultDotOptions())
	require.NoError(t, err)
	require.Len(t, field.Dots, 48)
	assert.Equal(t, uint32(2309403825), field.Seed)

	d := field.Dots[0]
	assert.InDelta(t, 107.69279092550278, d.X, 1e-9)
	assert.InDelta(t, 103.91208305954933, d.Y, 1e-9)
	assert.InDelta(t, 1.55544312344864, d.R, 1e-9)
	assert.InDelta(t, 0.4293308691820129, d.Opacity, 1e-9)
}

func TestDots_StableAndBounded(t *testing.T) {
	opts := DotOptions{Width: 300, Height: 200, Count: 500, MinRadius: 2, MaxRadius: 6, MinOpacity: 0.1, MaxOpacity: 0.9}

	a, err := Dots("/work/northwind", opts)
	require.NoError(t, err)
	b, err := Dots("/work/northwind", opts)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same key produced different fields (-a +b):\n%s", diff)
	}

	for i, d := range a.Dots {
		if d.X < 0 || d.X >= opts.Width || d.Y < 0 || d.Y >= opts.Height {
			t.Fatalf("dot %d at (%g, %g) outside %gx%g", i, d.X, d.Y, opts.Width, opts.Height)
		}
		if d.R < opts.MinRadius || d.R >= opts.MaxRadius {
			t.Fatalf("dot %d radius %g outside range", i, d.R)
		}
		if d.Opacity < opts.MinOpacity || d.Opacity >= opts.MaxOpacity {
			t.Fatalf("dot %d opacity %g outside range", i, d.Opacity)
		}
	}
}

func TestDots_DifferentKeysDiffer(t *testing.T) {
	a, err := Dots("/about", DefaultDotOptions())
	require.NoError(t, err)
	b, err := Dots("/contact", DefaultDotOptions())
	require.NoError(t, err)
	assert.NotEqual(t, a.Dots, b.Dots)
}

func TestDots_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DotOptions)
	}{
		{"zero width", func(o *DotOptions) { o.Width = 0 }},
		{"negative height", func(o *DotOptions) { o.Height = -1 }},
		{"negative count", func(o *DotOptions) { o.Count = -1 }},
		{"too many dots", func(o *DotOptions) { o.Count = MaxDots + 1 }},
		{"inverted radius", func(o *DotOptions) { o.MinRadius, o.MaxRadius = 5, 1 }},
		{"negative radius", func(o *DotOptions) { o.MinRadius = -1 }},
		{"opacity above one", func(o *DotOptions) { o.MaxOpacity = 1.5 }},
		{"inverted opacity", func(o *DotOptions) { o.MinOpacity, o.MaxOpacity = 0.8, 0.2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultDotOptions()
			tt.mutate(&opts)
			_, err := Dots("k", opts)
			assert.ErrorIs(t, err, stablerand.ErrInvalidArgument)
		})
	}
}

func TestDots_EmptyField(t *testing.T) {
	opts := DefaultDotOptions()
	opts.Count = 0
	field, err := Dots("empty", opts)
	require.NoError(t, err)
	assert.Empty(t, field.Dots)
}

func TestDotField_SVG(t *testing.T) {
	opts := DefaultDotOptions()
	opts.Count = 3
	field, err := Dots("42", opts)
	require.NoError(t, err)

	svg := field.SVG()
	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 640.00 360.00"`))
	assert.Contains(t, svg, `<circle cx="107.69" cy="103.91" r="1.56" fill="currentColor" fill-opacity="0.43"/>`)
	assert.Equal(t, 3, strings.Count(svg, "<circle"))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestTiles_Golden(t *testing.T) {
	variants := []Variant{
		{Name: "plain", Weight: 5},
		{Name: "striped", Weight: 3},
		{Name: "dotted", Weight: 2},
	}
	tiles, err := Tiles("grid:/services", 6, variants)
	require.NoError(t, err)

	got := make([]string, len(tiles))
	for i, tile := range tiles {
		assert.Equal(t, i, tile.Index)
		got[i] = tile.Variant
	}
	assert.Equal(t, []string{"dotted", "striped", "striped", "plain", "striped", "striped"}, got)
}

func TestTiles_Errors(t *testing.T) {
	_, err := Tiles("k", 3, nil)
	assert.ErrorIs(t, err, stablerand.ErrInvalidArgument)

	_, err = Tiles("k", 3, []Variant{{Name: "a"}, {Name: "b"}})
	assert.ErrorIs(t, err, stablerand.ErrInvalidArgument)

	_, err = Tiles("k", -1, UniformVariants("a"))
	assert.ErrorIs(t, err, stablerand.ErrInvalidArgument)

	_, err = Tiles("k", 3, []Variant{{Name: "a", Weight: math.Inf(1)}})
	assert.ErrorIs(t, err, stablerand.ErrInvalidArgument)
}

func TestTiles_VariantsCheckedForAnyCount(t *testing.T) {
	for _, variants := range [][]Variant{
		nil,
		{{Name: "a"}, {Name: "b"}},
		{{Name: "a", Weight: -1}, {Name: "b", Weight: 2}},
	} {
		for _, count := range []int{0, 1, 3} {
			_, err := Tiles("k", count, variants)
			assert.ErrorIs(t, err, stablerand.ErrInvalidArgument, "count %d, variants %v", count, variants)
		}
	}

	tiles, err := Tiles("k", 0, UniformVariants("a"))
	require.NoError(t, err)
	assert.Empty(t, tiles)
}

func TestUniformVariants(t *testing.T) {
	assert.Equal(t, []Variant{{Name: "a", Weight: 1}, {Name: "b", Weight: 1}}, UniformVariants("a", "b"))
	assert.Empty(t, UniformVariants())
}

func TestRotation(t *testing.T) {
	heroes := []string{"orbit", "grid", "wave"}

	got, err := Rotation("hero:/", heroes)
	require.NoError(t, err)
	assert.Equal(t, []string{"grid", "wave", "orbit"}, got)
	assert.Equal(t, []string{"orbit", "grid", "wave"}, heroes)

	_, err = Rotation[string]("hero:/", nil)
	assert.ErrorIs(t, err, stablerand.ErrInvalidArgument)
}

func TestPick(t *testing.T) {
	got, err := Pick("hero:/", []string{"orbit", "grid", "wave"})
	require.NoError(t, err)
	assert.Equal(t, "orbit", got)

	_, err = Pick("hero:/", []string{})
	assert.ErrorIs(t, err, stablerand.ErrInvalidArgument)
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{in: "plain", want: Variant{Name: "plain", Weight: 1}},
		{in: "striped=3", want: Variant{Name: "striped", Weight: 3}},
		{in: " dotted = 0.5 ", want: Variant{Name: "dotted", Weight: 0.5}},
		{in: "off=0", want: Variant{Name: "off", Weight: 0}},
		{in: "", wantErr: true},
		{in: "=2", wantErr: true},
		{in: "a=-1", wantErr: true},
		{in: "a=lots", wantErr: true},
		{in: "a=NaN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, stablerand.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVariants(t *testing.T) {
	got, err := ParseVariants([]string{"a=2", "b"})
	require.NoError(t, err)
	assert.Equal(t, []Variant{{Name: "a", Weight: 2}, {Name: "b", Weight: 1}}, got)

	_, err = ParseVariants([]string{"a", "=1"})
	assert.Error(t, err)
}
