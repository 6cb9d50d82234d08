package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/binarylab/internal/disk"
	"github.com/san-kum/binarylab/internal/dynamo"
	"github.com/san-kum/binarylab/internal/roche"
	"github.com/san-kum/binarylab/internal/storage"
	"github.com/san-kum/binarylab/internal/viz"
	"github.com/spf13/cobra"
)

const (
	heatmapWidth  = 64
	heatmapHeight = 24
)

func runRoche(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("roche")
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("m1") {
		cfg.Roche.M1 = m1
	}
	if f.Changed("m2") {
		cfg.Roche.M2 = m2
	}
	if f.Changed("a") {
		cfg.Roche.Separation = separation
	}
	if f.Changed("omega") {
		cfg.Roche.Omega = omega
	}
	if f.Changed("res") {
		cfg.Roche.Resolution = resolution
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p := cfg.RocheParams()
	lp := roche.EstimateLagrangePoints(p.M1, p.M2, p.Separation)

	var opts []roche.Option
	if rawField {
		opts = append(opts, roche.WithRaw())
	}
	g, err := roche.Evaluate(p, lp.Domain(), cfg.Roche.Resolution, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	x1, x2 := roche.MassPositions(p)
	fmt.Fprintf(out, "roche potential m1=%.3g m2=%.3g a=%.3g omega=%.3g\n", p.M1, p.M2, p.Separation, p.Omega)
	fmt.Fprintf(out, "masses at x=%.4f and x=%.4f, extent ±%.4f\n\n", x1, x2, lp.Extent)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINT\tX\tY")
	for i, pt := range lp.Points() {
		fmt.Fprintf(w, "L%d\t%.4f\t%.4f\n", i+1, pt[0], pt[1])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	lo, hi := g.Bounds()
	fmt.Fprintf(out, "\ngrid %dx%d  min %.4f  max %.4f  mean %.4f\n\n", g.Cols(), g.Rows(), lo, hi, g.Mean())
	printHeatmap(out, g)

	mid := nearestRow(g, 0)
	cut := asciigraph.Plot(g.Row(mid),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("potential along y = %.3f", g.Y[mid])),
	)
	fmt.Fprintf(out, "\n%s\n", cut)

	return writeGrid(out, "roche", map[string]float64{
		"m1":         p.M1,
		"m2":         p.M2,
		"separation": p.Separation,
		"omega":      p.Omega,
	}, g)
}

func runDisk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("disk")
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("temp") {
		cfg.Disk.Temperature = temperature
	}
	if f.Changed("mu") {
		cfg.Disk.MeanMolecularWeight = molecularWeight
	}
	if f.Changed("mass") {
		cfg.Disk.Mass = diskMass
	}
	if f.Changed("radius") {
		cfg.Disk.Radius = diskRadius
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p := cfg.DiskParams()
	heights := disk.DefaultHeights()
	g, err := disk.Evaluate(p, disk.DefaultRadii(), heights)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	x := cfg.Disk.Radius
	fmt.Fprintf(out, "thin disk T=%.3g K mu=%.3g M=%.3g Msun\n", p.Temperature, p.MeanMolecularWeight, p.Mass)
	fmt.Fprintf(out, "rs = %.4g cm  H(x=%.0f) = %.4g\n\n", disk.SchwarzschildRadius(p.Mass), x, disk.ScaleHeight(x, p.Mass))

	profile := disk.VerticalProfile(p, x, heights)
	graph := asciigraph.Plot(profile,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("rho/rho0 at x = %.0f, z in [%.0f, %.0f]", x, heights[0], heights[len(heights)-1])),
	)
	fmt.Fprintf(out, "%s\n\n", graph)

	printHeatmap(out, g)

	return writeGrid(out, "disk", map[string]float64{
		"temperature":           p.Temperature,
		"mean_molecular_weight": p.MeanMolecularWeight,
		"mass":                  p.Mass,
	}, g)
}

func printHeatmap(out io.Writer, g *dynamo.Grid) {
	if color {
		fmt.Fprint(out, viz.ColorHeatmap(g, heatmapWidth, heatmapHeight))
		return
	}
	for _, line := range viz.Heatmap(g, heatmapWidth, heatmapHeight) {
		fmt.Fprintln(out, line)
	}
}

func nearestRow(g *dynamo.Grid, y float64) int {
	best := 0
	for j, v := range g.Y {
		if math.Abs(v-y) < math.Abs(g.Y[best]-y) {
			best = j
		}
	}
	return best
}

func writeGrid(out io.Writer, kind string, params map[string]float64, g *dynamo.Grid) error {
	if csvPath != "" {
		if err := storage.WriteGridCSV(csvPath, g); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nwrote %s\n", csvPath)
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveGrid(kind, params, g)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "run id: %s\n", runID)
	}
	return nil
}
