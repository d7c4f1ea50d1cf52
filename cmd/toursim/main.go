package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/toursim/internal/config"
	"github.com/san-kum/toursim/internal/distmat"
	"github.com/san-kum/toursim/internal/export"
	"github.com/san-kum/toursim/internal/geom"
	"github.com/san-kum/toursim/internal/metrics"
	"github.com/san-kum/toursim/internal/server"
	"github.com/san-kum/toursim/internal/storage"
	"github.com/san-kum/toursim/internal/tour"
	"github.com/san-kum/toursim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	start      int
	addr       string
	outFile    string
	// Instance parameters, flag-overridable
	width     float64
	height    float64
	padding   float64
	minSep    float64
	scale     float64
	capDist   float64
	tickMs    int
	minPoints int
	maxPoints int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "toursim",
		Short: "greedy tour construction playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg, seed)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".toursim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().Float64Var(&width, "width", config.DefaultWidth, "canvas width")
	rootCmd.PersistentFlags().Float64Var(&height, "height", config.DefaultHeight, "canvas height")
	rootCmd.PersistentFlags().Float64Var(&padding, "padding", config.DefaultPadding, "placement padding")
	rootCmd.PersistentFlags().Float64Var(&minSep, "min-sep", config.DefaultMinSeparation, "minimum pairwise separation")
	rootCmd.PersistentFlags().Float64Var(&scale, "scale", config.DefaultScale, "distance scale factor")
	rootCmd.PersistentFlags().Float64Var(&capDist, "cap", config.DefaultCap, "distance cap")
	rootCmd.PersistentFlags().IntVar(&tickMs, "tick", config.DefaultTickMs, "replay tick interval (ms)")
	rootCmd.PersistentFlags().IntVar(&minPoints, "min-points", config.DefaultMinPoints, "minimum point count")
	rootCmd.PersistentFlags().IntVar(&maxPoints, "max-points", config.DefaultMaxPoints, "maximum point count")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate points, build a tour, save the run",
		RunE:  runTour,
	}
	runCmd.Flags().IntVar(&start, "start", 0, "start point id")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive animated replay (TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg, seed)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream replays over websockets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return server.New(cfg, seed).ListenAndServe(addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's cumulative cost",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a saved run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.svg)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run's step trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, serveCmd, listCmd, plotCmd, exportSVGCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// buildConfig layers preset, config file and changed flags over the
// defaults, in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("padding") {
		cfg.Padding = padding
	}
	if flags.Changed("min-sep") {
		cfg.MinSeparation = minSep
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("cap") {
		cfg.Cap = capDist
	}
	if flags.Changed("tick") {
		cfg.TickMs = tickMs
	}
	if flags.Changed("min-points") {
		cfg.MinPoints = minPoints
	}
	if flags.Changed("max-points") {
		cfg.MaxPoints = maxPoints
	}
	if cfg.Seed != 0 && !flags.Changed("seed") {
		seed = cfg.Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTour(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	points := geom.NewSampler(cfg.SamplerConfig(), seed).Generate()
	matrix := distmat.Compute(points, cfg.Scale, cfg.Cap)
	log.Info("generated", "points", len(points), "seed", seed)

	result, err := tour.Build(matrix, start)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tFROM\tTO\tCOST\tCUMULATIVE")
	for i, s := range result.Steps {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.2f\t%.2f\n", i, s.From, s.To, s.Cost, tour.PrefixCost(result.Steps, i))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	sum := metrics.Summarize(result.Steps)
	fmt.Printf("\ntour: %v\ntotal weight: %.2f\n", result.Path, result.TotalCost)
	if sum.Edges > 0 {
		fmt.Printf("edges: %d, mean %.2f, min %.2f, max %.2f\n", sum.Edges, sum.MeanEdge, sum.MinEdge, sum.MaxEdge)
	}

	runID, err := st.Save(storage.RunMetadata{
		Seed:          seed,
		Start:         start,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Scale:         cfg.Scale,
		Cap:           cfg.Cap,
		MinSeparation: cfg.MinSeparation,
		Points:        points,
		Path:          result.Path,
		TotalCost:     result.TotalCost,
	}, result.Steps)
	if err != nil {
		return err
	}
	log.Info("saved", "run", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPOINTS\tSTART\tWEIGHT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Points),
			run.Start,
			run.TotalCost,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(runID)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("no steps to plot")
	}

	data := make([]float64, len(steps))
	for i, s := range steps {
		data[i] = s.Cumulative
	}

	fmt.Printf("run: %s\npoints: %d, start: %d\n\n", meta.ID, len(meta.Points), meta.Start)
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("cumulative tour cost per step"),
	)
	fmt.Println(graph)
	fmt.Printf("\ntotal weight: %.2f\n", meta.TotalCost)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	w, h := meta.Width, meta.Height
	if w == 0 || h == 0 {
		w, h = config.DefaultWidth, config.DefaultHeight
	}
	svg := export.TourSVG(meta.Points, meta.Path, w, h)
	path := outFile
	if path == "" {
		path = filepath.Join(".", runID+".svg")
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	log.Info("exported", "file", path)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	steps, err := storage.New(dataDir).LoadSteps(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"step", "from", "to", "cost", "cumulative"}); err != nil {
		return err
	}
	for _, s := range steps {
		row := []string{
			strconv.Itoa(s.Index),
			strconv.Itoa(s.From),
			strconv.Itoa(s.To),
			strconv.FormatFloat(s.Cost, 'f', 6, 64),
			strconv.FormatFloat(s.Cumulative, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
