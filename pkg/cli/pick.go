package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/stablerand/pkg/cli/internal/output"
	"github.com/getmockd/stablerand/pkg/motif"
	"github.com/getmockd/stablerand/pkg/stablerand"
)

func identity(s string) string { return s }

// warnUnreachable flags variants that can never be picked.
func warnUnreachable(cmd *cobra.Command, variants []motif.Variant) {
	for _, v := range variants {
		if v.Weight == 0 {
			output.Warn(cmd.ErrOrStderr(), "%q has weight 0 and is never picked", v.Name)
		}
	}
}

func (a *app) newChoiceCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "choice ITEM...",
		Short: "Pick items uniformly",
		Long:  `Pick one of the given items per draw. With --count, pick repeatedly from the same sequence.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			g, err := a.generator(cmd)
			if err != nil {
				return err
			}
			values := make([]string, count)
			for i := range values {
				if values[i], err = stablerand.Choice(g, args); err != nil {
					return err
				}
			}
			return a.render(cmd, result{Key: a.key, Seed: g.Seed(), Values: values}, func(w io.Writer) error {
				return lines(w, values, identity)
			})
		},
	}
	addCountFlag(cmd, &count)
	return cmd
}

func (a *app) newWeightedCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "weighted NAME=WEIGHT...",
		Short: "Pick items by weight",
		Long: `Pick one of the given items per draw, with probability proportional to its
weight. An item without =WEIGHT has weight 1.`,
		Example: `  stablerand weighted plain=5 outline=3 accent=2 --key /services -n 4`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variants, err := motif.ParseVariants(args)
			if err != nil {
				return err
			}
			if err := checkCount(count); err != nil {
				return err
			}
			warnUnreachable(cmd, variants)
			names := make([]string, len(variants))
			weights := make([]float64, len(variants))
			for i, v := range variants {
				names[i], weights[i] = v.Name, v.Weight
			}

			g, err := a.generator(cmd)
			if err != nil {
				return err
			}
			values := make([]string, count)
			for i := range values {
				if values[i], err = stablerand.WeightedChoice(g, names, weights); err != nil {
					return err
				}
			}
			return a.render(cmd, result{Key: a.key, Seed: g.Seed(), Values: values}, func(w io.Writer) error {
				return lines(w, values, identity)
			})
		},
	}
	addCountFlag(cmd, &count)
	return cmd
}

func (a *app) newShuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle ITEM...",
		Short: "Permute items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator(cmd)
			if err != nil {
				return err
			}
			values := stablerand.Shuffle(g, args)
			return a.render(cmd, result{Key: a.key, Seed: g.Seed(), Values: values}, func(w io.Writer) error {
				return lines(w, values, identity)
			})
		},
	}
}
