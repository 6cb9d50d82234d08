package main

import (
	"fmt"
	"os"

	"github.com/san-kum/binarylab/internal/config"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	saveRun    bool
	csvPath    string
	svgPath    string
)

// Orbit flags are shared by orbit, live and sweep.
var (
	semiMajorAxis float64
	eccentricity  float64
	massRatio     float64
	speed         float64
	frameName     string
	dt            float64
	steps         int
	trailLength   int
	jsonOut       bool
	ratios        []float64
)

var (
	m1, m2     float64
	separation float64
	omega      float64
	resolution int
	rawField   bool
	color      bool
)

var (
	temperature     float64
	molecularWeight float64
	diskMass        float64
	diskRadius      float64
)

var (
	primaryMass   float64
	companionMass float64
	distance      float64
	lockName      string
	spinFrameName string
	angle         float64
	ticks         int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "binarylab",
		Short: "two-body orbits, Roche potentials and accretion disks",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".binarylab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	orbitCmd := &cobra.Command{
		Use:   "orbit",
		Short: "run a headless orbit and report positions and metrics",
		Args:  cobra.NoArgs,
		RunE:  runOrbit,
	}
	addOrbitFlags(orbitCmd)
	orbitCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of ticks")
	orbitCmd.Flags().StringVar(&svgPath, "svg", "", "write trails to an SVG file")
	orbitCmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	orbitCmd.Flags().BoolVar(&saveRun, "save", false, "store the run in the data directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive orbit view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addOrbitFlags(liveCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run one orbit per mass ratio in parallel",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addOrbitFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of ticks")
	sweepCmd.Flags().Float64SliceVar(&ratios, "ratios", []float64{0.1, 0.25, 0.5, 1, 2, 5}, "mass ratios to run")

	rocheCmd := &cobra.Command{
		Use:   "roche",
		Short: "evaluate the Roche potential and Lagrange points",
		Args:  cobra.NoArgs,
		RunE:  runRoche,
	}
	rocheCmd.Flags().Float64Var(&m1, "m1", 1, "primary mass")
	rocheCmd.Flags().Float64Var(&m2, "m2", 1, "secondary mass")
	rocheCmd.Flags().Float64Var(&separation, "a", 1, "separation")
	rocheCmd.Flags().Float64Var(&omega, "omega", 1, "angular velocity of the rotating frame")
	rocheCmd.Flags().IntVar(&resolution, "res", 200, "grid points per axis")
	rocheCmd.Flags().BoolVar(&rawField, "raw", false, "keep the raw potential instead of log10|phi|")
	rocheCmd.Flags().BoolVar(&color, "color", false, "colour the heatmap")
	rocheCmd.Flags().StringVar(&csvPath, "csv", "", "write the grid to a CSV file")
	rocheCmd.Flags().BoolVar(&saveRun, "save", false, "store the grid in the data directory")

	diskCmd := &cobra.Command{
		Use:   "disk",
		Short: "evaluate the thin-disk vertical density profile",
		Args:  cobra.NoArgs,
		RunE:  runDisk,
	}
	diskCmd.Flags().Float64Var(&temperature, "temp", 1e7, "temperature (K)")
	diskCmd.Flags().Float64Var(&molecularWeight, "mu", 1, "mean molecular weight")
	diskCmd.Flags().Float64Var(&diskMass, "mass", 100, "central mass (solar masses)")
	diskCmd.Flags().Float64Var(&diskRadius, "radius", config.DefaultDiskRadius, "radius for the vertical profile (rs)")
	diskCmd.Flags().BoolVar(&color, "color", false, "colour the heatmap")
	diskCmd.Flags().StringVar(&csvPath, "csv", "", "write the grid to a CSV file")
	diskCmd.Flags().BoolVar(&saveRun, "save", false, "store the grid in the data directory")

	spinCmd := &cobra.Command{
		Use:   "spin",
		Short: "show a tidally locked pair in one frame",
		Args:  cobra.NoArgs,
		RunE:  runSpin,
	}
	spinCmd.Flags().Float64Var(&primaryMass, "m1", 1, "primary mass")
	spinCmd.Flags().Float64Var(&companionMass, "m2", 1, "companion mass")
	spinCmd.Flags().Float64Var(&distance, "distance", 120, "separation")
	spinCmd.Flags().StringVar(&lockName, "lock", config.DefaultLockState, "synchronous, static or retrograde")
	spinCmd.Flags().StringVar(&spinFrameName, "frame", config.DefaultSpinFrame, "observer, center-of-mass or corotating")
	spinCmd.Flags().Float64Var(&angle, "angle", 0, "orbital angle (rad)")
	spinCmd.Flags().IntVar(&ticks, "ticks", 0, "advance --angle by this many ticks of 0.01 rad")
	spinCmd.Flags().StringVar(&svgPath, "svg", "", "write the drawing to an SVG file")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	rootCmd.AddCommand(orbitCmd, liveCmd, sweepCmd, rocheCmd, diskCmd, spinCmd, presetsCmd, listCmd, showCmd)
	return rootCmd
}

func addOrbitFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&semiMajorAxis, "a", 5, "semi-major axis")
	cmd.Flags().Float64Var(&eccentricity, "e", 0, "eccentricity")
	cmd.Flags().Float64Var(&massRatio, "q", 1, "mass ratio m2/m1")
	cmd.Flags().Float64Var(&speed, "speed", 1, "angular rate")
	cmd.Flags().StringVar(&frameName, "frame", config.DefaultFrame, "inertial, corotating or observer")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().IntVar(&trailLength, "trail", config.DefaultTrailLength, "trail length per body")
}

// loadConfig resolves defaults, then the preset, then the config file.
// Flags are applied afterwards by each command, only when set explicitly.
func loadConfig(model string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(model, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	return cfg, nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	models := config.Models()
	if len(args) == 1 {
		models = []string{args[0]}
	}

	for _, model := range models {
		presets := config.ListPresets(model)
		if len(presets) == 0 {
			fmt.Fprintf(out, "no presets for model: %s\n", model)
			continue
		}
		fmt.Fprintf(out, "presets for %s:\n", model)
		for _, p := range presets {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
	return nil
}
