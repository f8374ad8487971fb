package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/navscan/internal/config"
	"github.com/banshee-data/navscan/internal/scan"
	"github.com/banshee-data/navscan/internal/timeutil"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestReadRows(t *testing.T) {
	rows, err := readRows(strings.NewReader("# x,y\n1,0\n\n 0, 1\n-1,0\n"))
	require.NoError(t, err)
	assert.Equal(t, [][2]float32{{1, 0}, {0, 1}, {-1, 0}}, rows)

	_, err = readRows(strings.NewReader("1,2,3\n"))
	assert.ErrorContains(t, err, "expected 2 fields")

	_, err = readRows(strings.NewReader("1,abc\n"))
	assert.ErrorContains(t, err, "record 1 field 2")
}

func TestScanSettings(t *testing.T) {
	assert.Equal(t, scan.DefaultConfig(), scanSettings(config.EmptyScanConfig()))

	mode, nb := "once", "angular"
	cfg := &config.ScanConfig{SmoothingMode: &mode, Neighbourhood: &nb}
	got := scanSettings(cfg)
	assert.Equal(t, scan.SmoothOnce, got.Smoothing)
	assert.Equal(t, scan.NeighbourhoodAngular, got.Neighbourhood)
}

func TestRun_Cartesian(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "scan.csv", "# x,y\n1,0\n0,1\n-1,0\n")

	var out bytes.Buffer
	clock := timeutil.NewMockClock(time.Unix(1700000000, 0))
	err := run(Options{
		InputPath:     in,
		ProfilePath:   filepath.Join(dir, "profile.png"),
		FootprintPath: filepath.Join(dir, "footprint.png"),
		Reads:         1,
	}, clock, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "points: 3 (authoritative: cartesian)")
	assert.Contains(t, out.String(), "smoothed range: min=1.000 max=1.000 mean=1.000")
	assert.FileExists(t, filepath.Join(dir, "profile.png"))
	assert.FileExists(t, filepath.Join(dir, "footprint.png"))
}

func TestRun_PolarRepeatedReads(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "scan.csv", "5,0\n4,0.08\n3,0.16\n")
	cfgPath := writeFile(t, dir, "scan.json", `{"angular_window_rad": 0.1}`)

	var out bytes.Buffer
	err := run(Options{
		InputPath:    in,
		Polar:        true,
		AssumeSorted: true,
		ConfigPath:   cfgPath,
		Reads:        2,
	}, timeutil.RealClock{}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "authoritative: polar")
	assert.Contains(t, out.String(), "raw range: min=3.000 max=5.000 mean=4.000")
	// Two reads with every-read smoothing flatten the profile to the minimum.
	assert.Contains(t, out.String(), "smoothed range: min=3.000 max=3.000 mean=3.000")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	err := run(Options{InputPath: filepath.Join(dir, "missing.csv")}, timeutil.RealClock{}, &out)
	assert.ErrorContains(t, err, "open scan")

	in := writeFile(t, dir, "scan.csv", "1,0\n")
	bad := writeFile(t, dir, "bad.json", `{"smoothing_mode": "never"}`)
	err = run(Options{InputPath: in, ConfigPath: bad}, timeutil.RealClock{}, &out)
	assert.ErrorContains(t, err, "smoothing_mode")
}
