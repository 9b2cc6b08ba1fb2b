package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/stablerand/pkg/cliconfig"
	"github.com/getmockd/stablerand/pkg/logging"
	"github.com/getmockd/stablerand/pkg/stablerand"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// app carries the state shared by every command of one invocation.
type app struct {
	// Persistent flags
	key        string
	output     string
	logLevel   string
	configPath string

	cfg *cliconfig.Config
	log *slog.Logger
}

// NewRootCmd builds the stablerand command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logging.Nop()}

	root := &cobra.Command{
		Use:   "stablerand",
		Short: "Deterministic keyed randomness for layout-stable visuals",
		Long: `stablerand derives a reproducible random sequence from a string key, such as a
route or a content slug, and uses it to draw numbers, pick and shuffle items, and
lay out decorative motifs. The same key always yields the same output.

Configuration can be provided via flags, environment variables (STABLERAND_*),
a .env file, or a configuration file. By default, stablerand looks for
.stablerandrc.yaml in the current directory and ~/.config/stablerand/config.yaml.`,
		// No Run function here means 'stablerand' with no args prints help.
		SilenceUsage:      true,
		SilenceErrors:     true, // We handle errors in Execute()
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.key, "key", "k", "", "Key the sequence is derived from (route, slug, id)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Output format: text, json, yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a config file")

	root.AddCommand(
		a.newSeedCmd(),
		a.newDrawCmd(),
		a.newIntCmd(),
		a.newFloatCmd(),
		a.newChoiceCmd(),
		a.newWeightedCmd(),
		a.newShuffleCmd(),
		a.newUUIDCmd(),
		a.newDotsCmd(),
		a.newTilesCmd(),
		a.newRotateCmd(),
		a.newConfigCmd(),
		a.newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := cliconfig.LoadAll(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
		cfg.Sources["output"] = cliconfig.SourceFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
		cfg.Sources["logLevel"] = cliconfig.SourceFlag
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.LogLevel)
	logCfg.Format = logging.ParseFormat(cfg.LogFormat)
	logCfg.Output = cmd.ErrOrStderr()
	a.log = logging.New(logCfg).With("command", cmd.Name())
	return nil
}

// generator returns a fresh generator for --key. The flag must be given, but
// may be empty: the empty key is a valid key.
func (a *app) generator(cmd *cobra.Command) (*stablerand.Generator, error) {
	if !cmd.Flags().Changed("key") {
		return nil, ErrKeyRequired
	}
	g := stablerand.NewFromKey(a.key)
	a.log.Debug("generator ready", "key", a.key, "seed", g.Seed())
	return g, nil
}

// requireKey checks --key for commands that build their own generators.
func (a *app) requireKey(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("key") {
		return ErrKeyRequired
	}
	a.log.Debug("using key", "key", a.key, "seed", stablerand.SeedFromKey(a.key))
	return nil
}

// writer is where results go.
func writer(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
