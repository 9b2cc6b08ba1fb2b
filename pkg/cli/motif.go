package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/stablerand/pkg/cli/internal/output"
	"github.com/getmockd/stablerand/pkg/motif"
	"github.com/getmockd/stablerand/pkg/stablerand"
)

func (a *app) newDotsCmd() *cobra.Command {
	var (
		svg    bool
		width  float64
		height float64
		count  int
	)
	cmd := &cobra.Command{
		Use:   "dots",
		Short: "Lay out a dot field",
		Long: `Scatter dots over a field keyed by --key. Geometry defaults come from the
configuration (dots.*) and can be overridden with flags. --svg renders the field
as an SVG document instead of data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireKey(cmd); err != nil {
				return err
			}
			opts := a.cfg.Dots
			if cmd.Flags().Changed("width") {
				opts.Width = width
			}
			if cmd.Flags().Changed("height") {
				opts.Height = height
			}
			if cmd.Flags().Changed("count") {
				opts.Count = count
			}

			field, err := motif.Dots(a.key, opts)
			if err != nil {
				return err
			}
			a.log.Debug("dot field ready", "dots", len(field.Dots), "width", field.Width, "height", field.Height)

			if svg {
				_, err := io.WriteString(writer(cmd), field.SVG())
				return err
			}
			return a.render(cmd, field, func(w io.Writer) error {
				tw := output.Table(w)
				fmt.Fprintln(tw, "X\tY\tR\tOPACITY")
				for _, d := range field.Dots {
					fmt.Fprintf(tw, "%.2f\t%.2f\t%.2f\t%.2f\n", d.X, d.Y, d.R, d.Opacity)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&svg, "svg", false, "Render as SVG")
	cmd.Flags().Float64Var(&width, "width", 0, "Field width (default from config)")
	cmd.Flags().Float64Var(&height, "height", 0, "Field height (default from config)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of dots (default from config)")
	return cmd
}

func (a *app) newTilesCmd() *cobra.Command {
	var (
		count    int
		variants []string
	)
	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "Pick tile variants for a grid",
		Long: `Pick a variant for each of --count grid positions. Variants come from the
configuration unless given with --variant name=weight (repeatable).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireKey(cmd); err != nil {
				return err
			}
			vs := a.cfg.Variants
			if len(variants) > 0 {
				parsed, err := motif.ParseVariants(variants)
				if err != nil {
					return err
				}
				vs = parsed
			}
			warnUnreachable(cmd, vs)

			tiles, err := motif.Tiles(a.key, count, vs)
			if err != nil {
				return err
			}
			return a.render(cmd, tiles, func(w io.Writer) error {
				tw := output.Table(w)
				fmt.Fprintln(tw, "INDEX\tVARIANT")
				for _, t := range tiles {
					fmt.Fprintf(tw, "%d\t%s\n", t.Index, t.Variant)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 12, "Number of tiles")
	cmd.Flags().StringArrayVar(&variants, "variant", nil, "Tile variant as name=weight (repeatable)")
	return cmd
}

func (a *app) newRotateCmd() *cobra.Command {
	var pick bool
	cmd := &cobra.Command{
		Use:   "rotate ITEM...",
		Short: "Order hero visuals for a key",
		Long:  `Print the rotation order of the given hero visuals for --key, or with --pick only the one shown.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireKey(cmd); err != nil {
				return err
			}
			var values []string
			if pick {
				v, err := motif.Pick(a.key, args)
				if err != nil {
					return err
				}
				values = []string{v}
			} else {
				order, err := motif.Rotation(a.key, args)
				if err != nil {
					return err
				}
				values = order
			}
			res := result{Key: a.key, Seed: stablerand.SeedFromKey(a.key), Values: values}
			return a.render(cmd, res, func(w io.Writer) error {
				return lines(w, values, identity)
			})
		},
	}
	cmd.Flags().BoolVar(&pick, "pick", false, "Print only the selected item")
	return cmd
}
