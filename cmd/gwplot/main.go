// Command gwplot loads an SXS waveform, combines its modes into the plus and
// cross polarisations at a given inclination and phase, and renders them with
// the tapered spectrum to an HTML page.
//
// Usage:
//
//	gwplot -archive ./BBH_0305 -mass 60 -distance 400 -inc 0.5
//	gwplot -config run.json -o out.html
//	gwplot -window planck -eps 0.2 -size 256       # window only
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/RyanBlaney/gwmemory-go/logging"
	"github.com/RyanBlaney/gwmemory-go/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logging.Fatal(err, "gwplot failed")
	}
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLevel(level)
	logger := logging.WithFields(logging.Fields{"component": "gwplot"})

	if v, ok := version.Information(); ok {
		logger.Info("Starting", logging.Fields{"version": v})
	} else {
		logger.Warn(version.MissingMessage)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	res, err := analyze(cfg, logger)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()

	if err := render(res, f); err != nil {
		return err
	}
	logger.Info("Chart written", logging.Fields{"output": cfg.Output})
	return nil
}

// parseFlags builds the config from an optional JSON file, then applies any
// flags given explicitly on the command line.
func parseFlags(args []string) (*Config, error) {
	fs := flag.NewFlagSet("gwplot", flag.ContinueOnError)

	def := DefaultConfig()
	configPath := fs.String("config", "", "JSON config file")
	archive := fs.String("archive", def.Archive, "directory holding the SXS extraction groups")
	extraction := fs.String("extraction", def.Extraction, "extraction group to read")
	modes := fs.String("modes", "", `modes to load as "l,m;l,m" (default: all l<=4)`)
	mass := fs.Float64("mass", def.TotalMass, "total mass in solar masses")
	distance := fs.Float64("distance", def.Distance, "luminosity distance in Mpc")
	inc := fs.Float64("inc", def.Inclination, "inclination in radians")
	phase := fs.Float64("phase", def.Phase, "reference phase in radians")
	window := fs.String("window", def.Window, "taper: planck, tukey, hann, rectangular")
	eps := fs.Float64("eps", def.WindowParam, "taper fraction for planck/tukey")
	size := fs.Int("size", def.WindowSize, "window length when no archive is given")
	output := fs.String("o", def.Output, "output HTML file")
	logLevel := fs.String("log", def.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := def
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "archive":
			cfg.Archive = *archive
		case "extraction":
			cfg.Extraction = *extraction
		case "modes":
			cfg.Modes, parseErr = parseModes(*modes)
		case "mass":
			cfg.TotalMass = *mass
		case "distance":
			cfg.Distance = *distance
		case "inc":
			cfg.Inclination = *inc
		case "phase":
			cfg.Phase = *phase
		case "window":
			cfg.Window = *window
		case "eps":
			cfg.WindowParam = *eps
		case "size":
			cfg.WindowSize = *size
		case "o":
			cfg.Output = *output
		case "log":
			cfg.LogLevel = *logLevel
		}
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return cfg, nil
}
