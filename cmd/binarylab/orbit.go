package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/binarylab/internal/analysis"
	"github.com/san-kum/binarylab/internal/config"
	"github.com/san-kum/binarylab/internal/export"
	"github.com/san-kum/binarylab/internal/metrics"
	"github.com/san-kum/binarylab/internal/orbit"
	"github.com/san-kum/binarylab/internal/session"
	"github.com/san-kum/binarylab/internal/storage"
	"github.com/san-kum/binarylab/internal/viz"
	"github.com/spf13/cobra"
)

func orbitConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig("orbit")
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("a") {
		cfg.Orbit.SemiMajorAxis = semiMajorAxis
	}
	if f.Changed("e") {
		cfg.Orbit.Eccentricity = eccentricity
	}
	if f.Changed("q") {
		cfg.Orbit.MassRatio = massRatio
	}
	if f.Changed("speed") {
		cfg.Orbit.Speed = speed
	}
	if f.Changed("frame") {
		cfg.Orbit.Frame = frameName
	}
	if f.Changed("dt") {
		cfg.Orbit.Dt = dt
	}
	if f.Changed("steps") {
		cfg.Orbit.Steps = steps
	}
	if f.Changed("trail") {
		cfg.Orbit.TrailLength = trailLength
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSession(cfg *config.Config) (*session.Session, error) {
	frame, err := cfg.OrbitFrame()
	if err != nil {
		return nil, err
	}
	return session.New(cfg.OrbitParams(), frame, cfg.Orbit.TrailLength)
}

func runOrbit(cmd *cobra.Command, args []string) error {
	cfg, err := orbitConfig(cmd)
	if err != nil {
		return err
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	for _, m := range metrics.Standard() {
		sess.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	p := sess.Params()
	if !jsonOut {
		fmt.Fprintf(out, "running orbit a=%.2f e=%.2f q=%.2f in %s frame...\n",
			p.SemiMajorAxis, p.Eccentricity, p.MassRatio, sess.Frame())
	}

	start := time.Now()
	result, err := sess.Run(ctx, cfg.Orbit.Dt, cfg.Orbit.Steps)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	elapsed := time.Since(start)

	if jsonOut {
		return export.WriteJSON(out, result, cfg.Orbit.Dt)
	}

	if err != nil {
		fmt.Fprintf(out, "interrupted after %d steps\n", result.StepsTaken)
	} else {
		fmt.Fprintf(out, "completed in %v\n", elapsed)
	}
	fmt.Fprintf(out, "steps: %d  theta: %.4f  time: %.4f\n\n", result.StepsTaken, result.State.Theta, result.State.Time)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tX\tY")
	for _, id := range orbit.Tracked(result.Frame) {
		if pos, ok := result.Final.Get(id); ok {
			fmt.Fprintf(w, "%s\t%.6f\t%.6f\n", id, pos[0], pos[1])
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(result.Separations) > 1 {
		graph := asciigraph.Plot(result.Separations,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("separation"),
		)
		fmt.Fprintf(out, "\n%s\n", graph)
	}

	printMetrics(out, result.Metrics)
	fmt.Fprintf(out, "  period: %s\n", formatPeriod(result.Separations, cfg.Orbit.Dt))

	if svgPath != "" {
		svg := export.TrailsToSVG(sess.Trails().Snapshot(), 600, 600, viz.CurrentTheme)
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nwrote %s\n", svgPath)
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveOrbit(result, cfg.Orbit.Dt, sess.Trails())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "run id: %s\n", runID)
	}

	return nil
}

func printMetrics(out io.Writer, values map[string]float64) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "\nmetrics:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %.6g\n", name, values[name])
	}
}

// formatPeriod reports the revolution period in playback seconds, or why
// none could be measured.
func formatPeriod(separations []float64, dt float64) string {
	period, err := analysis.DominantPeriod(separations, dt)
	switch {
	case errors.Is(err, analysis.ErrNoOscillation):
		return "n/a (circular)"
	case err != nil:
		return "n/a"
	}
	return fmt.Sprintf("%.4g", period)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := orbitConfig(cmd)
	if err != nil {
		return err
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(sess, cfg.Orbit.Dt), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := orbitConfig(cmd)
	if err != nil {
		return err
	}
	frame, err := cfg.OrbitFrame()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sweeping %d mass ratios...\n", len(ratios))

	results, err := session.Sweep(ctx, cfg.OrbitParams(), frame, ratios, cfg.Orbit.Dt, cfg.Orbit.Steps, metrics.Standard)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Q\tMU\tMIN\tMAX\tMEAN\tCOM DRIFT\tPERIOD\tSEPARATION")
	for _, r := range results {
		fmt.Fprintf(w, "%.3f\t%.3f\t%.4f\t%.4f\t%.4f\t%.2g\t%s\t%s\n",
			r.Params.MassRatio,
			r.Params.Mu(),
			r.Metrics["separation_min"],
			r.Metrics["separation_max"],
			r.Metrics["separation_mean"],
			r.Metrics["com_drift"],
			formatPeriod(r.Separations, cfg.Orbit.Dt),
			viz.Sparkline(r.Separations, 24),
		)
	}
	return w.Flush()
}
