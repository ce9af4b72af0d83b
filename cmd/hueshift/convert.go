package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hueshift/internal/colorspace"
	"hueshift/internal/ui"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert <#RRGGBB>...",
		Short:   "Convert hex colors to RGB and HSL",
		Example: `  hueshift convert '#ff0000' '#336699'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args)
		},
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	var (
		rows [][]string
		errs []error
	)
	for _, arg := range args {
		rgb, err := colorspace.HexToRGB(arg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		hsl, err := colorspace.RGBToHSL(rgb)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rows = append(rows, []string{
			ui.FormatSwatch(rgb, "    "),
			rgb.Hex(),
			fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B),
			hsl.CSS(),
		})
	}

	out := cmd.OutOrStdout()
	switch {
	case len(args) == 1 && len(rows) == 1:
		row := rows[0]
		fmt.Fprintln(out, row[0])
		fmt.Fprintln(out, ui.RenderSimpleTable([]ui.KV{
			{Key: "Hex", Value: row[1]},
			{Key: "RGB", Value: row[2]},
			{Key: "HSL", Value: row[3]},
		}))
	case len(rows) > 0:
		fmt.Fprint(out, ui.RenderTable([]ui.TableColumn{
			{Header: ""},
			{Header: "Hex"},
			{Header: "RGB", Align: ui.AlignRight},
			{Header: "HSL"},
		}, rows))
	}
	return errors.Join(errs...)
}
