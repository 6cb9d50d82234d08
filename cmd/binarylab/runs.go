package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/binarylab/internal/orbit"
	"github.com/san-kum/binarylab/internal/storage"
	"github.com/spf13/cobra"
)

func listRuns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tFRAME\tSTEPS\tGRID")

	for _, run := range runs {
		grid := ""
		if run.Rows > 0 {
			grid = fmt.Sprintf("%dx%d", run.Cols, run.Rows)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frame,
			run.Steps,
			grid,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	out := cmd.OutOrStdout()

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "kind: %s\n", meta.Kind)
	fmt.Fprintf(out, "time: %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))

	names := make([]string, 0, len(meta.Params))
	for k := range meta.Params {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(out, "  %s = %g\n", k, meta.Params[k])
	}

	if meta.Kind != "orbit" {
		g, err := st.LoadGrid(runID)
		if err != nil {
			return err
		}
		lo, hi := g.Bounds()
		fmt.Fprintf(out, "\ngrid %dx%d  min %.4f  max %.4f\n\n", g.Cols(), g.Rows(), lo, hi)
		printHeatmap(out, g)
		return nil
	}

	fmt.Fprintf(out, "frame: %s\nsteps: %d\ndt: %g\n", meta.Frame, meta.Steps, meta.Dt)

	trails, err := st.LoadTrails(runID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\ntrails:")
	for _, id := range orbit.AllBodies() {
		if pts := trails[id]; len(pts) > 0 {
			fmt.Fprintf(out, "  %s: %d points\n", id, len(pts))
		}
	}

	seps, err := st.LoadSeparations(runID)
	if err != nil {
		return err
	}
	if len(seps) > 1 {
		graph := asciigraph.Plot(seps,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("separation"),
		)
		fmt.Fprintf(out, "\n%s\n", graph)
	}

	printMetrics(out, meta.Metrics)
	return nil
}
