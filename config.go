package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config is read once at startup from ~/.fractermrc, a plain key=value
// file. Anything unparseable falls back to the default; a broken config
// never blocks startup.
type Config struct {
	ExportDirectory string
	DefaultFractal  FractalType
	DefaultPalette  string
	JuliaPreset     string
	Iterations      int
	Supersampling   bool
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFile(filepath.Join(homeDir, ".fractermrc"), homeDir)
}

func defaultConfig() *Config {
	return &Config{
		DefaultFractal: FractalMandelbrot,
		Iterations:     defaultIterations,
		Supersampling:  true,
	}
}

func loadConfigFile(configPath, homeDir string) *Config {
	config := defaultConfig()

	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "exportdirectory", "export_directory", "exportdir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.ExportDirectory = value
		case "fractal", "default_fractal":
			config.DefaultFractal = ParseFractalType(strings.ToLower(value))
		case "palette", "default_palette":
			config.DefaultPalette = strings.ToLower(value)
		case "julia", "julia_preset":
			config.JuliaPreset = strings.ToLower(value)
		case "iterations":
			if n, err := strconv.Atoi(value); err == nil {
				config.Iterations = clampInt(n, 1, iterationCap)
			}
		case "supersampling", "supersample":
			config.Supersampling = strings.ToLower(value) == "true"
		}
	}

	return config
}

// GetExportPath resolves a filename against the configured export
// directory, creating it on demand.
func (c *Config) GetExportPath(filename string) string {
	if c.ExportDirectory == "" {
		return filename
	}
	os.MkdirAll(c.ExportDirectory, 0755)
	return filepath.Join(c.ExportDirectory, filename)
}

// apply seeds a fresh engine with the configured defaults.
func (c *Config) apply(e *Engine) {
	e.SetIterations(c.Iterations)
	if c.DefaultFractal != e.Params.Type {
		e.SetFractal(c.DefaultFractal)
		e.VP.Snap()
	}
	if c.JuliaPreset != "" && e.ApplyJuliaPreset(c.JuliaPreset) {
		e.VP.Snap()
	}
	if c.DefaultPalette != "" {
		e.Params.EscapePalette = escapePalettes[paletteIndexFor(FractalMandelbrot, c.DefaultPalette)].Name
		e.Params.DepthPalette = depthPalettes[paletteIndexFor(FractalKoch, c.DefaultPalette)].Name
	}
	if !c.Supersampling {
		e.MaxSupersample = 1
	}
}
