package main

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/gwmemory-go/algorithms/spectral"
	"github.com/RyanBlaney/gwmemory-go/algorithms/windowing"
	"github.com/RyanBlaney/gwmemory-go/logging"
	"github.com/RyanBlaney/gwmemory-go/units"
	"github.com/RyanBlaney/gwmemory-go/waveform"
)

var errShortWaveform = errors.New("waveform needs at least two samples")

// Result holds everything gwplot draws
type Result struct {
	Times       []float64 // seconds
	Plus        []float64 // strain
	Cross       []float64 // strain
	Window      []float64
	WindowType  string
	Frequencies []float64 // Hz
	Amplitude   []float64 // |h+(f)|, strain/Hz
}

// analyze loads and combines the waveform in physical units, tapers h+ and
// takes its single-sided spectrum. Without an archive only the window is built.
func analyze(cfg *Config, logger logging.Logger) (*Result, error) {
	if cfg.Archive == "" {
		win, err := windowing.New(cfg.Window, cfg.WindowSize, cfg.WindowParam, true)
		if err != nil {
			return nil, err
		}
		logger.Info("No archive given, plotting window only", logging.Fields{
			"window": win.GetType(),
			"size":   win.GetSize(),
		})
		return &Result{Window: win.GetCoefficients(), WindowType: win.GetType()}, nil
	}

	wf, err := waveform.LoadSXS(waveform.DirArchive{Root: cfg.Archive}, waveform.LoadOptions{
		Modes:      cfg.Modes,
		Extraction: cfg.Extraction,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load waveform: %w", err)
	}
	if len(wf.Times) < 2 {
		return nil, errShortWaveform
	}
	logger.Info("Waveform loaded", logging.Fields{
		"modes":   len(wf.Modes),
		"samples": len(wf.Times),
	})

	pol, err := waveform.CombineModes(wf.Modes, cfg.Inclination, cfg.Phase)
	if err != nil {
		return nil, fmt.Errorf("failed to combine modes: %w", err)
	}

	// SXS stores r h / M against t / M
	mass := units.MSolToGeo(cfg.TotalMass)
	scale := mass / units.DistMpcToGeo(cfg.Distance)

	res := &Result{
		Times: units.ApplyTo(nil, wf.Times, func(t float64) float64 {
			return units.TimeGeoToS(t * mass)
		}),
		Plus:  make([]float64, len(pol.Plus)),
		Cross: make([]float64, len(pol.Cross)),
	}
	floats.ScaleTo(res.Plus, scale, pol.Plus)
	floats.ScaleTo(res.Cross, scale, pol.Cross)

	win, err := windowing.New(cfg.Window, len(res.Plus), cfg.WindowParam, true)
	if err != nil {
		return nil, err
	}
	res.Window = win.GetCoefficients()
	res.WindowType = win.GetType()

	fs := 1 / (res.Times[1] - res.Times[0])
	hf, freqs := spectral.NFFT(win.Apply(res.Plus), fs)

	res.Frequencies = freqs
	res.Amplitude = make([]float64, len(hf))
	for i, v := range hf {
		res.Amplitude[i] = cmplx.Abs(v)
	}

	logger.Debug("Spectrum computed", logging.Fields{
		"sampling_frequency": fs,
		"bins":               len(hf),
	})
	return res, nil
}
