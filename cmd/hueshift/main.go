// Command hueshift generates harmonious three-color palettes, in the
// browser or in the terminal.
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hueshift/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const tagline = "Three colors that get along."

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.ErrorNote(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hueshift",
		Short: "Harmonious color palette generator",
		Long: `hueshift picks a random base color and derives two companions by
rotating its hue. Serve the palette page with "hueshift serve" or print
palettes straight to the terminal with "hueshift generate".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newGenerateCmd(),
		newConvertCmd(),
		newHashPasswordCmd(),
		newVersionCmd(),
	)
	return root
}

// newRand seeds from the clock when seed is 0.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
