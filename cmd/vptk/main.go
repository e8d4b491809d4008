// SPDX-License-Identifier: MIT

// Command vptk derives the geometry of a wave ball reducer, checks the design,
// generates the rigid-wheel profile and optionally renders a PNG preview and
// records the run.
//
//	vptk -i 17 -dsh 6 -rout 38 -png wheel.png -db runs.db
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/vptk/drawing"
	"github.com/katalvlaran/vptk/history"
	"github.com/katalvlaran/vptk/preview"
	"github.com/katalvlaran/vptk/profile"
	"github.com/katalvlaran/vptk/reducer"
	"github.com/katalvlaran/vptk/task"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "vptk:", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Stdout)
	stop()
	os.Exit(code)
}

// run executes one design pass and returns the process exit code.
func run(ctx context.Context, cfg config, stdout io.Writer) int {
	bp := cfg.Inputs.Derive()
	report(stdout, bp)

	v := bp.Validity()
	if !v.Passes {
		if cfg.Strict {
			slog.Error("design rejected", "rin", bp.Rin, "boundary", v.Boundary, "error", v.Err())
			return 1
		}
		slog.Warn("design fails the validity check", "rin", bp.Rin, "boundary", v.Boundary)
	}

	mode := task.Background
	if cfg.Sync {
		mode = task.Synchronous
	}
	m := task.NewManager(task.Options{Mode: mode, Logger: slog.Default(), Timeout: cfg.Timeout})
	defer m.Close()

	tk, err := m.Start(ctx, task.Request{Resolution: cfg.Resolution, Params: bp.ProfileParams()})
	if err != nil {
		slog.Error("failed to start calculation", "error", err)
		return 1
	}
	for msg := range tk.Events() {
		if msg.Kind == task.ProgressUpdate {
			slog.Info("progress", "stage", msg.Stage, "percent", msg.Progress)
		}
	}
	res, runErr := tk.Wait(context.Background())

	if cfg.DBPath != "" {
		if err := record(cfg, tk, v, res, runErr); err != nil {
			slog.Error("failed to record run", "path", cfg.DBPath, "error", err)
		}
	}

	if runErr != nil {
		if errors.Is(runErr, task.ErrAborted) {
			slog.Warn("calculation aborted", "task_id", tk.ID())
		} else {
			slog.Error("calculation failed", "task_id", tk.ID(), "error", runErr)
		}
		return 1
	}

	fmt.Fprintf(stdout, "profile: %s points, %s ball centres\n",
		humanize.Comma(int64(res.Curve.Len())), humanize.Comma(int64(len(res.Shaft.Centers()))))

	if cfg.PNGPath != "" {
		if err := writePreview(cfg, bp, res); err != nil {
			slog.Error("failed to write preview", "path", cfg.PNGPath, "error", err)
			return 1
		}
	}

	return 0
}

// report prints the derived parameter table.
func report(w io.Writer, bp reducer.BasicParams) {
	rows := []struct {
		name  string
		value float64
	}{
		{"dsh", bp.Dsh}, {"u", bp.U}, {"i", bp.I},
		{"e", bp.E}, {"zg", bp.Zg}, {"zsh", bp.Zsh},
		{"Rout", bp.Rout}, {"Rin", bp.Rin}, {"rsh", bp.Rsh}, {"rd", bp.Rd},
		{"hc", bp.Hc}, {"Rsep_m", bp.RsepM}, {"Rsep_out", bp.RsepOut}, {"Rsep_in", bp.RsepIn},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-9s %s\n", r.name, humanize.FtoaWithDigits(r.value, 4))
	}
}

func record(cfg config, tk *task.Task, v reducer.ValidityResult, res profile.Result, runErr error) error {
	st, err := history.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	run := history.Run{
		TaskID:     tk.ID(),
		Inputs:     cfg.Inputs,
		Resolution: cfg.Resolution,
		Passes:     v.Passes,
		Boundary:   v.Boundary,
		Status:     tk.State().String(),
		Points:     res.Curve.Len(),
		Balls:      len(res.Shaft.Centers()),
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	saved, err := st.Record(context.Background(), run)
	if err != nil {
		return err
	}
	slog.Info("run recorded", "id", saved.ID, "path", cfg.DBPath)

	return nil
}

func writePreview(cfg config, bp reducer.BasicParams, res profile.Result) error {
	d := drawing.Build(bp, res, cfg.OutDiameter, cfg.Layers)

	f, err := os.Create(cfg.PNGPath)
	if err != nil {
		return err
	}
	if err := preview.Render(f, d, preview.DefaultOptions()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if fi, err := os.Stat(cfg.PNGPath); err == nil {
		slog.Info("preview written", "path", cfg.PNGPath, "size", humanize.Bytes(uint64(fi.Size())))
	}

	return nil
}
