package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/gwmemory-go/logging"
	"github.com/RyanBlaney/gwmemory-go/units"
	"github.com/RyanBlaney/gwmemory-go/waveform"
)

const testSamples = 128

// writeQuadrupole writes a circular (2,2) mode h22 = exp(-i w t) sampled at t/M = 0..n-1
func writeQuadrupole(t *testing.T, omega float64) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, waveform.DefaultExtraction)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	var b strings.Builder
	for i := range testSamples {
		x := float64(i)
		fmt.Fprintf(&b, "%g %.17g %.17g\n", x, math.Cos(omega*x), -math.Sin(omega*x))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Y_l2_m2.dat"), []byte(b.String()), 0o644))
	return root
}

func TestParseModes(t *testing.T) {
	modes, err := parseModes("2,2; 2,-2;3, 3")
	require.NoError(t, err)
	assert.Equal(t, []waveform.Mode{{L: 2, M: 2}, {L: 2, M: -2}, {L: 3, M: 3}}, modes)

	modes, err = parseModes("")
	require.NoError(t, err)
	assert.Nil(t, modes)

	for _, bad := range []string{"2", "2,x", "a,1", "2,2,2"} {
		_, err := parseModes(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseFlagsOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"archive": "/data/BBH",
		"total_mass": 20,
		"modes": [{"l": 2, "m": 2}],
		"window": "tukey"
	}`), 0o644))

	cfg, err := parseFlags([]string{"-config", path, "-mass", "35", "-modes", "3,3"})
	require.NoError(t, err)

	assert.Equal(t, "/data/BBH", cfg.Archive)
	assert.Equal(t, 35.0, cfg.TotalMass)
	assert.Equal(t, []waveform.Mode{{L: 3, M: 3}}, cfg.Modes)
	assert.Equal(t, "tukey", cfg.Window)
	assert.Equal(t, waveform.DefaultExtraction, cfg.Extraction)
	assert.Equal(t, 400.0, cfg.Distance)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Archive = "x"
	cfg.TotalMass = 0
	cfg.Distance = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_mass")
	assert.Contains(t, err.Error(), "distance")

	cfg = DefaultConfig()
	cfg.WindowSize = 0
	assert.Error(t, cfg.Validate())
}

func TestAnalyzeWaveform(t *testing.T) {
	const omega = 2 * math.Pi * 16 / testSamples

	cfg := DefaultConfig()
	cfg.Archive = writeQuadrupole(t, omega)
	cfg.Modes = []waveform.Mode{{L: 2, M: 2}}

	res, err := analyze(cfg, &logging.NoOpLogger{})
	require.NoError(t, err)

	mass := units.MSolToGeo(cfg.TotalMass)
	scale := mass / units.DistMpcToGeo(cfg.Distance)
	y22 := math.Sqrt(5 / (4 * math.Pi))

	require.Len(t, res.Plus, testSamples)
	for i := range res.Plus {
		x := float64(i)
		assert.InDelta(t, scale*y22*math.Cos(omega*x), res.Plus[i], 1e-30)
		assert.InDelta(t, scale*y22*math.Sin(omega*x), res.Cross[i], 1e-30)
	}

	dt := units.TimeGeoToS(mass)
	assert.InDelta(t, dt, res.Times[1]-res.Times[0], 1e-15)

	require.Len(t, res.Amplitude, testSamples/2+1)
	require.Len(t, res.Frequencies, testSamples/2+1)
	assert.InDelta(t, 1/(2*dt), res.Frequencies[testSamples/2], 1e-6)

	peak := 0
	for i, a := range res.Amplitude {
		if a > res.Amplitude[peak] {
			peak = i
		}
	}
	assert.Equal(t, 16, peak)
	assert.Equal(t, "planck", res.WindowType)
	assert.Equal(t, 0.0, res.Window[0])
}

func TestAnalyzeErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Archive = t.TempDir()
	cfg.Modes = []waveform.Mode{{L: 2, M: 2}}
	_, err := analyze(cfg, &logging.NoOpLogger{})
	assert.ErrorIs(t, err, waveform.ErrDatasetNotFound)

	cfg = DefaultConfig()
	cfg.Window = "kaiser"
	_, err = analyze(cfg, &logging.NoOpLogger{})
	assert.Error(t, err)
}

func TestRenderWindowOnly(t *testing.T) {
	res, err := analyze(DefaultConfig(), &logging.NoOpLogger{})
	require.NoError(t, err)
	require.Len(t, res.Window, 512)

	var buf bytes.Buffer
	require.NoError(t, render(res, &buf))
	assert.Contains(t, buf.String(), "<html")
	assert.Contains(t, buf.String(), "planck window")
}

func TestRunWritesChart(t *testing.T) {
	prev := logging.GetGlobalLogger()
	logging.SetGlobalLogger(nil)
	defer logging.SetGlobalLogger(prev)

	out := filepath.Join(t.TempDir(), "out.html")
	archive := writeQuadrupole(t, 0.3)

	err := run([]string{"-archive", archive, "-modes", "2,2", "-window", "hann", "-o", out, "-log", "error"})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Polarisations")
}
