// Command foilgen generates a NACA 4-digit airfoil, writes its 3D point
// cloud as a flat X Y Z table, and (best-effort) saves a PNG plot of the
// outline. Missing inputs are prompted for interactively, so it works
// both scripted and by hand:
//
//	foilgen 2412 --normal Z --chord 2 --points 21 -o wing.txt
//	foilgen                              # prompts for code, axis, chord
//
// A failed plot only prints a warning: the point file is the deliverable
// and is already on disk by then.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3brp/foilgen/export"
	"github.com/3brp/foilgen/geom"
	"github.com/3brp/foilgen/naca"
	"github.com/3brp/foilgen/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type options struct {
	normal   string
	chord    float64
	points   int
	output   string
	plotPath string
	noPlot   bool
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "foilgen [naca-code]",
		Short:         "Generate a NACA 4-digit airfoil point cloud (X Y Z columns) with an optional plot",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code := ""
			if len(args) > 0 {
				code = args[0]
			}
			return run(cmd, code, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.normal, "normal", "n", "", "axis the airfoil is normal to (X, Y, or Z; that column will be zeros)")
	cmd.Flags().Float64VarP(&opts.chord, "chord", "c", 0, "chord length (scaling); prompted for if not provided")
	cmd.Flags().IntVarP(&opts.points, "points", "p", naca.DefaultTotalPoints, "TOTAL number of output points (combined upper+lower)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "naca_airfoil.txt", "TXT output filename")
	cmd.Flags().StringVarP(&opts.plotPath, "plot", "P", "", "PNG plot filename (default: output base with .png)")
	cmd.Flags().BoolVar(&opts.noPlot, "no-plot", false, "skip saving the plot PNG")

	return cmd
}

func run(cmd *cobra.Command, code string, opts *options) error {
	in := bufio.NewReader(cmd.InOrStdin())

	// Interactive fallbacks for anything not given on the command line.
	if code == "" {
		code = prompt(cmd, in, "Enter NACA 4-digit code: ")
	}
	if opts.normal == "" {
		opts.normal = prompt(cmd, in, "Axis NORMAL TO (X, Y, Z): ")
	}
	if !cmd.Flags().Changed("chord") {
		raw := prompt(cmd, in, "Chord length: ")
		chord, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid chord length %q", raw)
		}
		opts.chord = chord
	}

	axis, err := geom.ParseAxis(opts.normal)
	if err != nil {
		return err
	}

	foil, err := naca.Generate(code, &naca.Options{TotalPoints: opts.points})
	if err != nil {
		return fmt.Errorf("generating airfoil: %w", err)
	}

	pts := geom.Embed(foil.Loop, axis, opts.chord)
	if err = geom.Validate(pts); err != nil {
		return fmt.Errorf("validation: %w", err)
	}

	if err = export.WriteFile(opts.output, pts); err != nil {
		return err
	}

	// Plot after the table is safely on disk; a plotting failure is a
	// warning, never a reason to discard the run.
	if !opts.noPlot {
		plotPath := opts.plotPath
		if plotPath == "" {
			base := strings.TrimSuffix(opts.output, filepath.Ext(opts.output))
			plotPath = base + ".png"
		}
		if err = render.SavePNG(foil.Loop, opts.chord, foil.Code, plotPath); err != nil {
			cmd.Printf("Warning: plotting failed (%v). Continuing without plot.\n", err)
		} else {
			cmd.Printf("Plot saved to %s\n", plotPath)
		}
	}

	cmd.Printf("Generated NACA %s: %s; chord=%.6f\n", foil.Code, foil.Params, opts.chord)
	cmd.Printf("Requested total points: %d; used points per surface: %d; generated points: %d\n",
		opts.points, foil.PointsPerSurface, len(pts))
	cmd.Printf("Saved %d points to %q (columns: X Y Z). Normal axis: %s\n", len(pts), opts.output, axis)

	return nil
}

// prompt prints msg and reads one trimmed line from in. EOF yields "".
func prompt(cmd *cobra.Command, in *bufio.Reader, msg string) string {
	cmd.Print(msg)
	line, _ := in.ReadString('\n')

	return strings.TrimSpace(line)
}
