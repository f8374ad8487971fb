// Command scanplot loads a 2D lidar scan from CSV, runs it through a scan
// representation with the configured smoothing, and reports or plots the
// result.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/navscan/internal/config"
	"github.com/banshee-data/navscan/internal/monitoring"
	"github.com/banshee-data/navscan/internal/scan"
	"github.com/banshee-data/navscan/internal/scanplot"
	"github.com/banshee-data/navscan/internal/timeutil"
	"github.com/banshee-data/navscan/internal/version"
)

// Options holds the command-line configuration.
type Options struct {
	InputPath     string
	Polar         bool
	AssumeSorted  bool
	ConfigPath    string
	ProfilePath   string
	FootprintPath string
	Reads         int
	Debug         bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.InputPath, "in", "", "CSV scan file (x,y rows, or radius,theta rows with -polar)")
	flag.BoolVar(&opts.Polar, "polar", false, "input rows are radius,theta")
	flag.BoolVar(&opts.AssumeSorted, "sorted", false, "polar input is already ascending by theta")
	flag.StringVar(&opts.ConfigPath, "config", "", "scan tuning JSON (defaults apply when empty)")
	flag.StringVar(&opts.ProfilePath, "out", "", "write a range profile PNG to this path")
	flag.StringVar(&opts.FootprintPath, "footprint", "", "write an x/y scatter PNG to this path")
	flag.IntVar(&opts.Reads, "reads", 1, "number of polar reads to perform")
	flag.BoolVar(&opts.Debug, "debug", false, "log scan contract violations")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("scanplot", version.String())
		return
	}
	if opts.InputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(opts, timeutil.RealClock{}, os.Stdout); err != nil {
		log.Fatalf("scanplot: %v", err)
	}
}

func run(opts Options, clock timeutil.Clock, stdout io.Writer) error {
	cfg := config.EmptyScanConfig()
	if opts.ConfigPath != "" {
		loaded, err := config.LoadScanConfig(opts.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	settings := scanSettings(cfg)
	if opts.Debug {
		settings.DebugChecks = true
	}
	monitoring.SetDebug(settings.DebugChecks)

	f, err := os.Open(opts.InputPath)
	if err != nil {
		return fmt.Errorf("open scan: %w", err)
	}
	defer f.Close()

	rows, err := readRows(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.InputPath, err)
	}

	r := scan.NewAt(clock.Now())
	r.SetConfig(settings)
	r.Reserve(len(rows))
	if opts.Polar {
		r.SetPolar(polarRows(rows), opts.AssumeSorted)
	} else {
		r.SetCartesian(cartesianRows(rows))
	}

	var raw []scan.PolarPoint
	if opts.Polar {
		raw = polarRows(rows)
	} else {
		raw = scan.CartesianToPolarAll(cartesianRows(rows))
	}
	scan.SortByTheta(raw)

	reads := max(opts.Reads, 1)
	var smoothed []scan.PolarPoint
	for i := 0; i < reads; i++ {
		smoothed = r.Polar(true)
	}

	rawStats := scanplot.Summarize(raw)
	smoothStats := scanplot.Summarize(smoothed)
	fmt.Fprintf(stdout, "points: %d (authoritative: %s)\n", r.Size(), r.Authoritative())
	fmt.Fprintf(stdout, "smoothing: %s/%s window=%.6f rad reads=%d\n",
		settings.Smoothing, settings.Neighbourhood, settings.AngularWindow, reads)
	fmt.Fprintf(stdout, "raw range: min=%.3f max=%.3f mean=%.3f\n",
		rawStats.MinRadius, rawStats.MaxRadius, rawStats.MeanRadius)
	fmt.Fprintf(stdout, "smoothed range: min=%.3f max=%.3f mean=%.3f\n",
		smoothStats.MinRadius, smoothStats.MaxRadius, smoothStats.MeanRadius)

	plotOpts := scanplot.Options{
		Width:  vg.Length(cfg.GetPlotWidthIn()) * vg.Inch,
		Height: vg.Length(cfg.GetPlotHeightIn()) * vg.Inch,
	}
	if opts.ProfilePath != "" {
		plotOpts.Title = fmt.Sprintf("Range profile (%d points)", r.Size())
		if err := scanplot.RangeProfile(opts.ProfilePath, raw, smoothed, plotOpts); err != nil {
			return err
		}
		log.Printf("wrote %s", opts.ProfilePath)
	}
	if opts.FootprintPath != "" {
		plotOpts.Title = fmt.Sprintf("Footprint (%d points)", r.Size())
		if err := scanplot.Footprint(opts.FootprintPath, r.Cartesian(), plotOpts); err != nil {
			return err
		}
		log.Printf("wrote %s", opts.FootprintPath)
	}
	return nil
}

// scanSettings maps the JSON tuning onto scan.Config.
func scanSettings(cfg *config.ScanConfig) scan.Config {
	return scan.Config{
		AngularWindow: float32(cfg.GetAngularWindowRad()),
		Smoothing:     scan.SmoothingMode(cfg.GetSmoothingMode()),
		Neighbourhood: scan.Neighbourhood(cfg.GetNeighbourhood()),
		DebugChecks:   cfg.GetDebugChecks(),
	}
}
