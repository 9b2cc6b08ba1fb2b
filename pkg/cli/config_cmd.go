package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/stablerand/pkg/cli/internal/output"
	"github.com/getmockd/stablerand/pkg/cliconfig"
)

func (a *app) newConfigCmd() *cobra.Command {
	var env bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long: `Show the effective configuration and the source of each value
(default, global, local, file, env, flag). --env lists the recognised
environment variables instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if env {
				return cliconfig.PrintEnvUsage(writer(cmd))
			}
			return a.render(cmd, a.cfg, func(w io.Writer) error {
				return printConfigTable(w, a.cfg)
			})
		},
	}
	cmd.Flags().BoolVar(&env, "env", false, "List environment variables")
	return cmd
}

func printConfigTable(w io.Writer, cfg *cliconfig.Config) error {
	values := map[string]string{
		"output":          cfg.Output,
		"logLevel":        cfg.LogLevel,
		"logFormat":       cfg.LogFormat,
		"dots.width":      formatFloat(cfg.Dots.Width),
		"dots.height":     formatFloat(cfg.Dots.Height),
		"dots.count":      fmt.Sprint(cfg.Dots.Count),
		"dots.minRadius":  formatFloat(cfg.Dots.MinRadius),
		"dots.maxRadius":  formatFloat(cfg.Dots.MaxRadius),
		"dots.minOpacity": formatFloat(cfg.Dots.MinOpacity),
		"dots.maxOpacity": formatFloat(cfg.Dots.MaxOpacity),
	}
	variants := make([]string, len(cfg.Variants))
	for i, v := range cfg.Variants {
		variants[i] = v.Name + "=" + formatFloat(v.Weight)
	}
	values["variants"] = strings.Join(variants, ",")

	tw := output.Table(w)
	fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	for _, key := range cliconfig.FieldKeys() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", key, values[key], cfg.Sources[key])
	}
	return tw.Flush()
}
