package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/regionprof/internal/config"
	"github.com/wesleyorama2/regionprof/internal/output"
	"github.com/wesleyorama2/regionprof/internal/workload"
)

var (
	runConfigFile   string
	runDuration     time.Duration
	runReportTarget time.Duration
	runReportFile   string
	runNoColor      bool
	runQuiet        bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a synthetic workload through the profiler",
	Long: `Run spawns the workers described by a workload file (or a built-in
demo workload), streams the profiler's flush lines as they happen, and
prints a per-region summary when the run ends.`,
	Example: `  # Built-in demo workload for 5 seconds
  regionprof run

  # Custom workload, JSON report on the side
  regionprof run -c workload.yaml -o report.json`,
	RunE: runWorkload,
}

func init() {
	runCmd.Flags().StringVarP(&runConfigFile, "config", "c", "", "workload file (JSON or YAML)")
	runCmd.Flags().DurationVarP(&runDuration, "duration", "d", 0, "override the run duration")
	runCmd.Flags().DurationVar(&runReportTarget, "report-target", 0, "override the reporting interval")
	runCmd.Flags().StringVarP(&runReportFile, "report", "o", "", "write a JSON report to this file")
	runCmd.Flags().BoolVar(&runNoColor, "no-color", false, "disable colored output")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "suppress live flush lines")
}

func runWorkload(cmd *cobra.Command, args []string) error {
	w, err := loadWorkload()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	scheme := output.SchemeFor(out, runNoColor)

	flushOut := out
	if runQuiet {
		flushOut = nopWriter{}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if w.Name != "" {
		scheme.Header.Fprintf(out, "workload: %s\n", w.Name)
	}
	scheme.Dim.Fprintf(out, "running %d region(s) for %s, reporting every %s\n",
		len(w.Regions), w.Duration, w.ReportTarget)

	runner := workload.NewRunner(w, flushOut)
	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("workload aborted: %w", err)
	}

	fmt.Fprintln(out)
	output.WriteSummaryTable(out, runner.Summary().Snapshot(), scheme)

	if runReportFile != "" {
		if err := writeReport(runner, runReportFile); err != nil {
			return err
		}
		scheme.Dim.Fprintf(out, "report written to %s\n", runReportFile)
	}
	return nil
}

// loadWorkload reads the workload file, or falls back to the built-in
// demo workload, then applies flag overrides.
func loadWorkload() (*config.Workload, error) {
	var w *config.Workload
	if runConfigFile != "" {
		loaded, err := config.Load(runConfigFile)
		if err != nil {
			return nil, err
		}
		w = loaded
	} else {
		w = demoWorkload()
	}

	if runDuration > 0 {
		w.Duration = config.Duration(runDuration)
	}
	if runReportTarget > 0 {
		w.ReportTarget = config.Duration(runReportTarget)
	}

	if errs := config.ValidateWorkload(w); len(errs) > 0 {
		return nil, fmt.Errorf("invalid workload after overrides: %s", errs[0].Error())
	}
	return w, nil
}

// demoWorkload is used when no workload file is given: two regions
// with clearly different duty cycles, so the flush lines and summary
// have something to show.
func demoWorkload() *config.Workload {
	return &config.Workload{
		SchemaVersion: config.SchemaVersion,
		Name:          "demo",
		Duration:      config.Duration(5 * time.Second),
		ReportTarget:  config.Duration(time.Second),
		Regions: []config.RegionSpec{
			{Name: "db", Workers: 4, Busy: config.Duration(2 * time.Millisecond), Idle: config.Duration(500 * time.Microsecond)},
			{Name: "render", Workers: 1, Busy: config.Duration(8 * time.Millisecond), Idle: config.Duration(2 * time.Millisecond)},
		},
	}
}

func writeReport(r *workload.Runner, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer f.Close()

	if err := r.Summary().WriteJSON(f); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}

// nopWriter swallows the live flush lines in quiet mode.
type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
