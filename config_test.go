package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fractermrc")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigParsing(t *testing.T) {
	path := writeConfigFile(t, `
# comment
fractal = julia
palette = Ocean
julia = dragon
iterations = 512
supersampling = false
`)
	c := loadConfigFile(path, t.TempDir())
	if c.DefaultFractal != FractalJulia {
		t.Errorf("fractal = %v, want julia", c.DefaultFractal)
	}
	if c.DefaultPalette != "ocean" {
		t.Errorf("palette = %q, want ocean (lowercased)", c.DefaultPalette)
	}
	if c.JuliaPreset != "dragon" {
		t.Errorf("julia preset = %q, want dragon", c.JuliaPreset)
	}
	if c.Iterations != 512 {
		t.Errorf("iterations = %d, want 512", c.Iterations)
	}
	if c.Supersampling {
		t.Errorf("supersampling should be off")
	}
}

func TestConfigDefaultsOnMissingFile(t *testing.T) {
	c := loadConfigFile(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	if c.DefaultFractal != FractalMandelbrot || c.Iterations != defaultIterations || !c.Supersampling {
		t.Errorf("missing file should yield defaults, got %+v", c)
	}
}

func TestConfigIgnoresGarbage(t *testing.T) {
	path := writeConfigFile(t, `
not a key value line
iterations = not-a-number
fractal = no-such-fractal
iterations = -40
`)
	c := loadConfigFile(path, t.TempDir())
	// Unparseable numbers keep the default; out-of-range ones clamp.
	if c.Iterations != 1 {
		t.Errorf("iterations = %d, want clamp to 1", c.Iterations)
	}
	if c.DefaultFractal != FractalMandelbrot {
		t.Errorf("unknown fractal should fall back to mandelbrot")
	}
}

func TestConfigApply(t *testing.T) {
	e := NewEngine()
	c := &Config{
		DefaultFractal: FractalJulia,
		JuliaPreset:    "dendrite",
		Iterations:     1000,
		Supersampling:  true,
	}
	c.apply(e)
	if e.Params.Type != FractalJulia {
		t.Errorf("type = %v, want julia", e.Params.Type)
	}
	if e.Params.JuliaC != (Complex{0, 1}) {
		t.Errorf("julia constant = %v, want dendrite 0+1i", e.Params.JuliaC)
	}
	if e.Params.Iterations != 1000 {
		t.Errorf("iterations = %d, want 1000", e.Params.Iterations)
	}
}

func TestConfigExportPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := &Config{ExportDirectory: dir}
	got := c.GetExportPath("a.png")
	if got != filepath.Join(dir, "a.png") {
		t.Errorf("export path = %q", got)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("export directory should be created on demand: %v", err)
	}
}
