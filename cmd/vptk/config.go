// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/katalvlaran/vptk/drawing"
	"github.com/katalvlaran/vptk/reducer"
)

// Stock form values.
const (
	defaultResolution  = 600
	defaultOutDiameter = 90.0
)

// config is the resolved command configuration: flags first, then VPTK_*
// environment variables, then the stock defaults.
type config struct {
	Resolution  int
	Inputs      reducer.Inputs
	OutDiameter float64
	Layers      drawing.Flags

	PNGPath string
	DBPath  string

	Strict  bool
	Sync    bool
	Timeout time.Duration

	LogLevel slog.Level
}

// parseConfig reads args (without the program name). getenv supplies the
// environment so tests can inject their own.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	var cfg config
	def := reducer.DefaultInputs()
	layers := drawing.DefaultFlags()

	fs := flag.NewFlagSet("vptk", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&cfg.Resolution, "resolution", envIntOrDefault(getenv, "VPTK_RESOLUTION", defaultResolution), "profile points")
	fs.Float64Var(&cfg.Inputs.I, "i", envFloatOrDefault(getenv, "VPTK_I", def.I), "transmission ratio")
	fs.Float64Var(&cfg.Inputs.Dsh, "dsh", envFloatOrDefault(getenv, "VPTK_DSH", def.Dsh), "ball diameter, mm")
	fs.Float64Var(&cfg.Inputs.Rout, "rout", envFloatOrDefault(getenv, "VPTK_ROUT", def.Rout), "outer trough radius, mm")
	fs.Float64Var(&cfg.Inputs.U, "u", envFloatOrDefault(getenv, "VPTK_U", def.U), "wave count")
	fs.Float64Var(&cfg.OutDiameter, "d", envFloatOrDefault(getenv, "VPTK_D", defaultOutDiameter), "outer diameter, mm")

	fs.BoolVar(&cfg.Layers.BaseWheelShape, "profile", layers.BaseWheelShape, "draw the rigid-wheel profile")
	fs.BoolVar(&cfg.Layers.Separator, "separator", layers.Separator, "draw the separator circles")
	fs.BoolVar(&cfg.Layers.Eccentric, "eccentric", layers.Eccentric, "draw the eccentric")
	fs.BoolVar(&cfg.Layers.Balls, "balls", layers.Balls, "draw the balls")
	fs.BoolVar(&cfg.Layers.OutDiameter, "outline", layers.OutDiameter, "draw the outer diameter")

	fs.StringVar(&cfg.PNGPath, "png", envOrDefault(getenv, "VPTK_PNG", ""), "write a PNG preview to this path")
	fs.StringVar(&cfg.DBPath, "db", envOrDefault(getenv, "VPTK_DB", ""), "record the run in this SQLite database")

	fs.BoolVar(&cfg.Strict, "strict", false, "refuse designs that fail the validity check")
	fs.BoolVar(&cfg.Sync, "sync", false, "run the calculation on the calling goroutine")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "abort the calculation after this long (0 = never)")
	level := fs.String("log-level", envOrDefault(getenv, "VPTK_LOG_LEVEL", "info"), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		return config{}, fmt.Errorf("log level: %w", err)
	}
	if cfg.Resolution < 1 {
		return config{}, fmt.Errorf("resolution must be at least 1, got %d", cfg.Resolution)
	}

	return cfg, nil
}

func envOrDefault(getenv func(string) string, key, defaultVal string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envIntOrDefault(getenv func(string) string, key string, defaultVal int) int {
	if v := getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloatOrDefault(getenv func(string) string, key string, defaultVal float64) float64 {
	if v := getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
