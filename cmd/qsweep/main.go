package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/qsweep/internal/config"
	"github.com/san-kum/qsweep/internal/qubit"
	"github.com/san-kum/qsweep/internal/storage"
	"github.com/san-kum/qsweep/internal/sweep"
	"github.com/san-kum/qsweep/internal/viz"
)

var (
	dataDir    string
	ec         float64
	nCharge    int
	ngPoints   int
	ratioMin   float64
	ratioMax   float64
	ratioCount int
	workers    int
	configFile string
	preset     string
	live       bool
	// spectrum parameters
	ratio     float64
	ng        float64
	numLevels int
)

// main registers the qsweep commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "qsweep",
		Short: "transmon qubit design sweep",
		Long:  "qsweep diagonalizes the charge-basis transmon Hamiltonian over a range of Ej/Ec ratios and reports qubit frequency, anharmonicity, and charge dispersion.",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qsweep", "data directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run an Ej/Ec design sweep",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&ec, "ec", config.DefaultEc, "charging energy Ec (GHz)")
	sweepCmd.Flags().IntVar(&nCharge, "n", config.DefaultN, "charge basis half-width N")
	sweepCmd.Flags().IntVar(&ngPoints, "ng-points", config.DefaultNgPoints, "offset-charge samples per ratio")
	sweepCmd.Flags().Float64Var(&ratioMin, "ratio-min", config.DefaultRatioMin, "smallest Ej/Ec ratio")
	sweepCmd.Flags().Float64Var(&ratioMax, "ratio-max", config.DefaultRatioMax, "largest Ej/Ec ratio")
	sweepCmd.Flags().IntVar(&ratioCount, "ratio-count", config.DefaultRatioCount, "number of ratios")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel ratio evaluations (0 = sequential)")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	sweepCmd.Flags().BoolVar(&live, "live", false, "show live progress view")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "print the lowest energy levels at one design point",
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().Float64Var(&ec, "ec", config.DefaultEc, "charging energy Ec (GHz)")
	spectrumCmd.Flags().IntVar(&nCharge, "n", config.DefaultN, "charge basis half-width N")
	spectrumCmd.Flags().Float64Var(&ratio, "ratio", 50, "Ej/Ec ratio")
	spectrumCmd.Flags().Float64Var(&ng, "ng", 0, "offset charge")
	spectrumCmd.Flags().IntVar(&numLevels, "levels", 5, "number of levels")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweeps",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored sweep results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export sweep points to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export sweep results to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available sweep presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-14s Ec=%.3g GHz  N=%d  ratios %g..%g x%d  ng points %d\n",
					name, p.Ec, p.N, p.RatioMin, p.RatioMax, p.RatioCount, p.NgPoints)
			}
			return nil
		},
	}

	rootCmd.AddCommand(sweepCmd, spectrumCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runOutcome hands the sweep result from the engine goroutine back to
// runSweep; the live view only ever sees the error side.
type runOutcome struct {
	result *sweep.Result
	err    error
}

func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

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

	// CLI flags override preset and config file.
	if cmd.Flags().Changed("ec") {
		cfg.Ec = ec
	}
	if cmd.Flags().Changed("n") {
		cfg.N = nCharge
	}
	if cmd.Flags().Changed("ng-points") {
		cfg.NgPoints = ngPoints
	}
	if cmd.Flags().Changed("ratio-min") {
		cfg.RatioMin = ratioMin
		cfg.Ratios = nil
	}
	if cmd.Flags().Changed("ratio-max") {
		cfg.RatioMax = ratioMax
		cfg.Ratios = nil
	}
	if cmd.Flags().Changed("ratio-count") {
		cfg.RatioCount = ratioCount
		cfg.Ratios = nil
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}

	return cfg, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	scfg := cfg.SweepConfig()

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eng := sweep.New()

	var result *sweep.Result
	if live {
		updates := make(chan sweep.Point, len(scfg.Ratios))
		uiDone := make(chan error, 1)
		outcome := make(chan runOutcome, 1)
		eng.AddObserver(sweep.ObserverFunc(func(p sweep.Point) { updates <- p }))

		go func() {
			r, runErr := eng.Run(ctx, scfg)
			uiDone <- runErr
			outcome <- runOutcome{result: r, err: runErr}
		}()

		m := viz.NewModel(len(scfg.Ratios), updates, uiDone, cancel)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			return err
		}

		// The engine returns promptly once its context is canceled, so
		// this receive also covers a quit before completion.
		out := <-outcome
		if errors.Is(out.err, context.Canceled) {
			fmt.Println("sweep canceled")
			return nil
		}
		if out.err != nil {
			return out.err
		}
		result = out.result
	} else {
		eng.AddObserver(sweep.ObserverFunc(func(p sweep.Point) {
			fmt.Printf("  Ej/Ec = %5.1f -> freq = %.2f GHz | anharmonicity = %6.1f MHz | dispersion = %.4g MHz\n",
				p.Ratio, p.Frequency, p.Anharmonicity*1000, p.Dispersion*1000)
		}))

		fmt.Printf("sweeping %d ratios (Ec=%.3g GHz, N=%d, %d ng points)...\n",
			len(scfg.Ratios), scfg.Ec, scfg.N, scfg.NgPoints)

		result, err = eng.Run(ctx, scfg)
		if err != nil {
			return err
		}
	}

	runID, err := st.Save(scfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	tr := qubit.New(ec, ratio*ec, nCharge)
	levels, err := qubit.LowestLevels(tr.Hamiltonian(ng), numLevels)
	if err != nil {
		return err
	}

	fmt.Printf("transmon spectrum: Ec=%.3g GHz, Ej/Ec=%.1f, ng=%.2f, N=%d\n\n", ec, ratio, ng, nCharge)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tENERGY (GHZ)\tTRANSITION (GHZ)")
	for i, e := range levels {
		if i == 0 {
			fmt.Fprintf(w, "%d\t%.6f\t\n", i, e)
			continue
		}
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\n", i, e, e-levels[i-1])
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tTIME\tEC\tN\tNG_POINTS\tRATIOS\tELAPSED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.3g\t%d\t%d\t%d\t%v\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ec,
			run.N,
			run.NgPoints,
			run.Points,
			run.Elapsed,
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

	points, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("Ec: %.3g GHz, N: %d, ng points: %d\n", meta.Ec, meta.N, meta.NgPoints)
	fmt.Printf("ratios: %d\n\n", len(points))

	result := sweep.Result{Points: points}

	fmt.Println(asciigraph.Plot(result.Frequencies(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("qubit frequency f01 (GHz) vs Ej/Ec"),
	))
	fmt.Println()

	anharmMHz := result.Anharmonicities()
	for i := range anharmMHz {
		anharmMHz[i] *= 1000
	}
	fmt.Println(asciigraph.Plot(anharmMHz,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("anharmonicity (MHz) vs Ej/Ec"),
	))
	fmt.Println()

	// Dispersion spans many orders of magnitude; plot the log10 of MHz.
	dispLog := result.Dispersions()
	for i := range dispLog {
		dispLog[i] = math.Log10(dispLog[i] * 1000)
	}
	fmt.Println(asciigraph.Plot(dispLog,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("log10 charge dispersion (MHz) vs Ej/Ec"),
	))

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, points)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, points)
}
