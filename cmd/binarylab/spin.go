package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/san-kum/binarylab/internal/export"
	"github.com/san-kum/binarylab/internal/spin"
	"github.com/san-kum/binarylab/internal/viz"
	"github.com/spf13/cobra"
)

func runSpin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("spin")
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("m1") {
		cfg.Spin.PrimaryMass = primaryMass
	}
	if f.Changed("m2") {
		cfg.Spin.CompanionMass = companionMass
	}
	if f.Changed("distance") {
		cfg.Spin.Distance = distance
	}
	if f.Changed("lock") {
		cfg.Spin.Lock = lockName
	}
	if f.Changed("frame") {
		cfg.Spin.Frame = spinFrameName
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lock, err := spin.ParseLockState(cfg.Spin.Lock)
	if err != nil {
		return err
	}
	frame, err := spin.ParseFrame(cfg.Spin.Frame)
	if err != nil {
		return err
	}

	ticker := spin.Ticker{Angle: angle}
	for i := 0; i < ticks; i++ {
		ticker.Step()
	}

	sys := cfg.SpinSystem()
	sc := spin.Layout(sys, frame, lock, ticker.Angle)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s companion, %s frame, angle %.4f rad\n\n", lock, frame, ticker.Angle)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tMASS\tX\tY\tSPIN (deg)")
	rows := []struct {
		name            string
		mass, x, y, rot float64
	}{
		{"star", sc.Primary.Mass, sc.Primary.Position[0], sc.Primary.Position[1], sc.Primary.Rotation},
		{"companion", sc.Companion.Mass, sc.Companion.Position[0], sc.Companion.Position[1], sc.Companion.Rotation},
	}
	for _, b := range rows {
		fmt.Fprintf(w, "%s\t%.3g\t%.3f\t%.3f\t%.2f\n", b.name, b.mass, b.x, b.y, b.rot*180/math.Pi)
	}
	fmt.Fprintf(w, "com\t\t%.3f\t%.3f\t\n", sc.COM[0], sc.COM[1])
	if err := w.Flush(); err != nil {
		return err
	}
	for _, r := range sc.Guides {
		fmt.Fprintf(out, "guide orbit r=%.3f\n", r)
	}

	canvas := viz.NewCanvas(40, 20)
	viz.DrawSpin(canvas, sc, sys)
	fmt.Fprintf(out, "\n%s", canvas.String())

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.CanvasToSVG(canvas, 4, viz.CurrentTheme)), 0644); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nwrote %s\n", svgPath)
	}
	return nil
}
