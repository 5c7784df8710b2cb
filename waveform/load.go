// Package waveform loads numerical-relativity waveforms decomposed into
// spin-weighted spherical harmonic modes and recombines them into the plus
// and cross polarisations.
package waveform

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/gwmemory-go/logging"
)

// DefaultExtraction is the extraction group used when none is given
const DefaultExtraction = "OutermostExtraction.dir"

// ErrTimeGridMismatch is returned when modes in one archive are sampled on different times
var ErrTimeGridMismatch = errors.New("modes do not share a time grid")

// Mode identifies a spherical harmonic by degree L and order M
type Mode struct {
	L int `json:"l"`
	M int `json:"m"`
}

func (m Mode) String() string {
	return fmt.Sprintf("(%d,%d)", m.L, m.M)
}

// ModeFileName is the dataset name SXS uses for a mode
func ModeFileName(m Mode) string {
	return fmt.Sprintf("Y_l%d_m%d.dat", m.L, m.M)
}

// DefaultModes returns every mode with 2 <= l <= 4, ordered by l then m
func DefaultModes() []Mode {
	var modes []Mode
	for l := 2; l <= 4; l++ {
		for m := -l; m <= l; m++ {
			modes = append(modes, Mode{L: l, M: m})
		}
	}
	return modes
}

// Modes maps each mode to its complex time series
type Modes map[Mode][]complex128

// Sorted returns the modes present, ordered by l then m
func (m Modes) Sorted() []Mode {
	return slices.SortedFunc(maps.Keys(m), func(a, b Mode) int {
		if c := cmp.Compare(a.L, b.L); c != 0 {
			return c
		}
		return cmp.Compare(a.M, b.M)
	})
}

// LoadOptions selects what LoadSXS reads
type LoadOptions struct {
	Modes      []Mode `json:"modes,omitempty"` // empty means DefaultModes
	Extraction string `json:"extraction"`
}

// DefaultLoadOptions returns options loading all l <= 4 modes from the outermost extraction
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Extraction: DefaultExtraction}
}

// SXSWaveform holds the mode series of one waveform and their common sample times
type SXSWaveform struct {
	Modes Modes
	Times []float64
}

// LoadSXS reads the requested modes from an archive. Each dataset holds
// [time, real, imag] rows. A missing mode fails the whole load, as does a mode
// whose time column differs from the others.
func LoadSXS(archive Archive, opts LoadOptions) (*SXSWaveform, error) {
	modes := opts.Modes
	if len(modes) == 0 {
		modes = DefaultModes()
	}
	extraction := opts.Extraction
	if extraction == "" {
		extraction = DefaultExtraction
	}

	logger := logging.WithFields(logging.Fields{
		"component":  "sxs_loader",
		"extraction": extraction,
	})

	out := &SXSWaveform{Modes: make(Modes, len(modes))}

	for _, mode := range modes {
		table, err := archive.Dataset(extraction, ModeFileName(mode))
		if err != nil {
			return nil, fmt.Errorf("failed to load mode %s: %w", mode, err)
		}

		rows, cols := table.Dims()
		if cols < 3 {
			return nil, fmt.Errorf("mode %s: %w: %d columns, need time, real, imag",
				mode, ErrMalformedDataset, cols)
		}

		times := mat.Col(nil, 0, table)
		if out.Times == nil {
			out.Times = times
		} else if !floats.Equal(out.Times, times) {
			return nil, fmt.Errorf("%w: mode %s has %d samples that differ from the first mode's %d",
				ErrTimeGridMismatch, mode, len(times), len(out.Times))
		}

		series := make([]complex128, rows)
		for i := range rows {
			series[i] = complex(table.At(i, 1), table.At(i, 2))
		}
		out.Modes[mode] = series

		logger.Debug("Loaded mode", logging.Fields{
			"mode":    mode.String(),
			"samples": rows,
		})
	}

	return out, nil
}
