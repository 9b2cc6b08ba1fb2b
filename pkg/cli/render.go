package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/getmockd/stablerand/pkg/cli/internal/output"
	"github.com/getmockd/stablerand/pkg/cliconfig"
)

// maxCount bounds -n for the repeating commands.
const maxCount = 100000

// result is the structured form of a generator command's output.
type result struct {
	Key    string `json:"key" yaml:"key"`
	Seed   uint32 `json:"seed" yaml:"seed"`
	Values any    `json:"values" yaml:"values"`
}

// render writes v as JSON or YAML, or calls text for the text format.
func (a *app) render(cmd *cobra.Command, v any, text func(w io.Writer) error) error {
	w := writer(cmd)
	switch a.cfg.Output {
	case cliconfig.OutputJSON:
		return output.JSON(w, v)
	case cliconfig.OutputYAML:
		return output.YAML(w, v)
	default:
		return text(w)
	}
}

// lines prints one value per line.
func lines[T any](w io.Writer, values []T, format func(T) string) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, format(v)); err != nil {
			return err
		}
	}
	return nil
}

// formatFloat prints the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func addCountFlag(cmd *cobra.Command, n *int) {
	cmd.Flags().IntVarP(n, "count", "n", 1, "Number of values to draw")
}

func checkCount(n int) error {
	if n < 1 || n > maxCount {
		return fmt.Errorf("--count %d must be between 1 and %d", n, maxCount)
	}
	return nil
}
