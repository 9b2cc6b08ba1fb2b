package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/getmockd/stablerand/pkg/stablerand"
)

func (a *app) newSeedCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the seed derived from a key",
		Long: `Print the 32-bit seed derived from --key. With --count, print that many
successive hash outputs; the first is always the seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireKey(cmd); err != nil {
				return err
			}
			if err := checkCount(count); err != nil {
				return err
			}
			h := stablerand.HashKey(a.key)
			values := make([]uint32, count)
			for i := range values {
				values[i] = h.Next()
			}
			res := result{Key: a.key, Seed: values[0], Values: values}
			return a.render(cmd, res, func(w io.Writer) error {
				return lines(w, values, func(v uint32) string { return strconv.FormatUint(uint64(v), 10) })
			})
		},
	}
	addCountFlag(cmd, &count)
	return cmd
}

func (a *app) newDrawCmd() *cobra.Command {
	var (
		count int
		raw   bool
	)
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw floats in [0, 1)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			g, err := a.generator(cmd)
			if err != nil {
				return err
			}
			if raw {
				values := make([]uint32, count)
				for i := range values {
					values[i] = g.Uint32()
				}
				return a.render(cmd, result{Key: a.key, Seed: g.Seed(), Values: values}, func(w io.Writer) error {
					return lines(w, values, func(v uint32) string { return strconv.FormatUint(uint64(v), 10) })
				})
			}
			values := make([]float64, count)
			for i := range values {
				values[i] = g.Float()
			}
			return a.render(cmd, result{Key: a.key, Seed: g.Seed(), Values: values}, func(w io.Writer) error {
				return lines(w, values, formatFloat)
			})
		},
	}
	addCountFlag(cmd, &count)
	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw 32-bit values instead of floats")
	return cmd
}

func (a *app) newIntCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "int MIN MAX",
		Short: "Draw integers in [MIN, MAX]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid MIN %q: %w", args[0], err)
			}
			hi, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid MAX %q: %w", args[1], err)
			}
			if err := checkCount(count); err != nil {
				return err
			}
			g, err := a.generator(cmd)
			if err != nil {
				return err
			}
			values := make([]int, count)
			for i := range values {
				if values[i], err = g.Int(lo, hi); err != nil {
					return err
				}
			}
			return a.render(cmd, result{Key: a.key, Seed: g.Seed(), Values: values}, func(w io.Writer) error {
				return lines(w, values, strconv.Itoa)
			})
		},
	}
	addCountFlag(cmd, &count)
	return cmd
}

func (a *app) newFloatCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "float MIN MAX",
		Short: "Draw floats in [MIN, MAX)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid MIN %q: %w", args[0], err)
			}
			hi, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid MAX %q: %w", args[1], err)
			}
			if err := checkCount(count); err != nil {
				return err
			}
			g, err := a.generator(cmd)
			if err != nil {
				return err
			}
			values := make([]float64, count)
			for i := range values {
				if values[i], err = g.FloatRange(lo, hi); err != nil {
					return err
				}
			}
			return a.render(cmd, result{Key: a.key, Seed: g.Seed(), Values: values}, func(w io.Writer) error {
				return lines(w, values, formatFloat)
			})
		},
	}
	addCountFlag(cmd, &count)
	return cmd
}

func (a *app) newUUIDCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate version 4 UUIDs from a key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			g, err := a.generator(cmd)
			if err != nil {
				return err
			}
			values := make([]uuid.UUID, count)
			for i := range values {
				values[i] = g.UUID()
			}
			return a.render(cmd, result{Key: a.key, Seed: g.Seed(), Values: values}, func(w io.Writer) error {
				return lines(w, values, uuid.UUID.String)
			})
		},
	}
	addCountFlag(cmd, &count)
	return cmd
}
