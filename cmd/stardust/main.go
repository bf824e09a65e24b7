package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/stardust/internal/config"
	"github.com/san-kum/stardust/internal/render"
	"github.com/san-kum/stardust/internal/scenario"
	"github.com/san-kum/stardust/internal/store"
	"github.com/san-kum/stardust/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir   string
	evolution string
	renderer  string
	particles int
	steps     int
	seed      int64
	width     int
	height    int
	frameRate int
	// Config file
	configFile string
	// Export target
	exportPath string
	// Show frames during headless run
	showFrames bool
)

// main registers the stardust commands and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "stardust",
		Short: "particle playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view of the classic preset when no
			// command is given.
			return runLive(cmd, []string{"classic"})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".stardust", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a headless simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDemo,
	}
	runCmd.Flags().StringVar(&evolution, "evolution", "velocity", "evolution policy")
	runCmd.Flags().StringVar(&renderer, "renderer", "none", "render policy")
	runCmd.Flags().IntVar(&particles, "particles", 100, "particle count")
	runCmd.Flags().IntVar(&steps, "steps", 200, "engine steps")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().IntVar(&width, "width", 80, "field width")
	runCmd.Flags().IntVar(&height, "height", 24, "field height")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().BoolVar(&showFrames, "frames", false, "print rendered frames")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&evolution, "evolution", "", "evolution policy")
	liveCmd.Flags().IntVar(&particles, "particles", 0, "particle count")
	liveCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot metric series of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportPath, "out", "", "output file (default <run_id>.json)")

	rootCmd.AddCommand(runCmd, liveCmd, scenarioCmd, presetsCmd, listCmd, plotCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves the effective configuration for run and live:
// preset, then config file, then explicit CLI flags, in rising priority.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	name := "custom"
	cfg := config.DefaultConfig()

	if len(args) > 0 {
		name = args[0]
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", name, config.PresetNames())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override both preset and config file.
	if cmd.Flags().Changed("evolution") {
		cfg.Evolution = evolution
	}
	if cmd.Flags().Changed("renderer") {
		cfg.Renderer = renderer
	}
	if cmd.Flags().Changed("particles") {
		cfg.Particles = particles
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("fps") {
		cfg.FrameRate = frameRate
	}

	return cfg, name, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, name, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	reg := scenario.NewRegistry()

	var frameOut io.Writer
	if showFrames {
		frameOut = os.Stdout
	}

	fmt.Printf("running %s (%s / %s)...\n", name, cfg.Evolution, cfg.Renderer)
	start := time.Now()

	result, err := scenario.RunConfig(context.Background(), cfg, reg, st, frameOut)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", result.RunID)
	fmt.Printf("iterations: %d\n", result.Iterations)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nMETRIC\tFINAL")
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Fprintf(w, "%s\t%.4f\n", name, result.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if series, ok := result.Series["spread"]; ok && len(series) > 1 {
		fmt.Println()
		fmt.Println(render.Plot("spread", series, 10))
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, name, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	reg := scenario.NewRegistry()
	rng := rand.New(rand.NewSource(cfg.Seed))
	build, err := reg.Build(cfg, rng)
	if err != nil {
		return err
	}

	fps := cfg.FrameRate
	if fps <= 0 {
		fps = 30
	}

	return tui.Run(name, build, fps)
}

func runScenario(cmd *cobra.Command, args []string) error {
	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	reg := scenario.NewRegistry()

	fmt.Printf("scenario: %s\n", s.Name)
	if s.Description != "" {
		fmt.Println(s.Description)
	}

	results, err := scenario.Run(context.Background(), s, reg, st)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nSTEP\tRUN ID\tITERATIONS\tMEAN AGE\tSPREAD")
	for i, res := range results {
		runID := res.RunID
		if runID == "" {
			runID = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%.2f\n",
			i+1, runID, res.Iterations, res.Metrics["mean_age"], res.Metrics["spread"])
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEVOLUTION\tRENDERER\tPARTICLES\tSTEPS")
	for _, name := range config.PresetNames() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			name, cfg.Evolution, cfg.Renderer, cfg.Particles, cfg.Steps)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEVOLUTION\tRENDERER\tTIME\tPARTICLES\tITERATIONS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Evolution,
			run.Renderer,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Particles,
			run.Iterations,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("evolution: %s\n", meta.Evolution)
	fmt.Printf("particles: %d\n\n", meta.Particles)

	for _, name := range sortedSeriesKeys(series) {
		data := series[name]
		if len(data) < 2 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	path := exportPath
	if path == "" {
		path = runID + ".json"
	}

	st := store.New(dataDir)
	if err := st.ExportJSON(runID, path); err != nil {
		return err
	}

	fmt.Printf("exported %s to %s\n", runID, path)
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSeriesKeys(m map[string][]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
