package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"hueshift/internal/colorspace"
	"hueshift/internal/palette"
	"hueshift/internal/ui"
)

type generateOptions struct {
	boldness string
	warmth   string
	seed     int64
	json     bool
}

type generateOutput struct {
	Params   palette.Params   `json:"params"`
	Scheme   string           `json:"scheme"`
	Spread   float64          `json:"spread"`
	Swatches []palette.Swatch `json:"swatches"`
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a palette to the terminal",
		Long: `Print a freshly generated palette. Without --boldness or --warmth the
palette is drawn the way the page does on first load.`,
		Example: `  hueshift generate
  hueshift generate --boldness bold --warmth warm
  hueshift generate --seed 42 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := !cmd.Flags().Changed("boldness") && !cmd.Flags().Changed("warmth")
			return runGenerate(cmd, opts, initial)
		},
	}

	cmd.Flags().StringVarP(&opts.boldness, "boldness", "b", "", "reserved, balanced or bold")
	cmd.Flags().StringVarP(&opts.warmth, "warmth", "w", "", "cool or warm (default any hue)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the clock)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON instead of a table")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions, initial bool) error {
	var params palette.Params
	var err error
	if params.Boldness, err = palette.ParseBoldness(opts.boldness); err != nil {
		return err
	}
	if params.Warmth, err = palette.ParseWarmth(opts.warmth); err != nil {
		return err
	}

	gen := palette.NewGenerator(newRand(opts.seed))
	var p palette.Palette
	if initial {
		params.Boldness = palette.BoldnessBalanced
		p, err = gen.Initial()
	} else {
		p, err = gen.Generate(params)
	}
	if err != nil {
		return err
	}

	swatches, err := p.Swatches()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(generateOutput{
			Params:   params,
			Scheme:   params.Boldness.Scheme(),
			Spread:   p.Spread,
			Swatches: swatches,
		})
	}

	rows := make([][]string, 0, len(swatches))
	for _, sw := range swatches {
		rgb, err := colorspace.HexToRGB(sw.Hex)
		if err != nil {
			return err
		}
		rows = append(rows, []string{sw.Role, ui.FormatSwatch(rgb, "        "), sw.Hex, sw.CSS})
	}

	fmt.Fprintf(out, "%s %s\n", ui.Heading("%s", params.Boldness.Scheme()), ui.Muted("%s", fmt.Sprintf("(spread %g°)", p.Spread)))
	fmt.Fprint(out, ui.RenderTable([]ui.TableColumn{
		{Header: "Role"},
		{Header: "Swatch"},
		{Header: "Hex"},
		{Header: "CSS"},
	}, rows))
	return nil
}
