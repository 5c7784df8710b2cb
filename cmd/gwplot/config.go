package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/RyanBlaney/gwmemory-go/waveform"
)

// Config controls a gwplot run
type Config struct {
	// Waveform source; an empty Archive plots the window only
	Archive    string          `json:"archive"`
	Extraction string          `json:"extraction"`
	Modes      []waveform.Mode `json:"modes,omitempty"`

	// Source parameters
	TotalMass   float64 `json:"total_mass"`  // solar masses
	Distance    float64 `json:"distance"`    // Mpc
	Inclination float64 `json:"inclination"` // radians
	Phase       float64 `json:"phase"`       // radians

	// Taper applied before the FFT
	Window      string  `json:"window"`
	WindowParam float64 `json:"window_param"`
	WindowSize  int     `json:"window_size"` // used when no archive is given

	Output   string `json:"output"`
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Extraction:  waveform.DefaultExtraction,
		TotalMass:   60,
		Distance:    400,
		Window:      "planck",
		WindowParam: 0.1,
		WindowSize:  512,
		Output:      "gwplot.html",
		LogLevel:    "info",
	}
}

// LoadConfig reads a JSON config over the defaults
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields that would otherwise produce silent NaNs
func (c *Config) Validate() error {
	var errs []error
	if c.Archive != "" {
		if c.TotalMass <= 0 {
			errs = append(errs, fmt.Errorf("total_mass must be positive, got %v", c.TotalMass))
		}
		if c.Distance <= 0 {
			errs = append(errs, fmt.Errorf("distance must be positive, got %v", c.Distance))
		}
	} else if c.WindowSize <= 0 {
		errs = append(errs, fmt.Errorf("window_size must be positive, got %d", c.WindowSize))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	return errors.Join(errs...)
}

// parseModes parses "l,m;l,m" into modes
func parseModes(s string) ([]waveform.Mode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var modes []waveform.Mode
	for _, pair := range strings.Split(s, ";") {
		parts := strings.Split(strings.TrimSpace(pair), ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid mode %q, want l,m", pair)
		}
		l, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid mode degree in %q: %w", pair, err)
		}
		m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid mode order in %q: %w", pair, err)
		}
		modes = append(modes, waveform.Mode{L: l, M: m})
	}
	return modes, nil
}
