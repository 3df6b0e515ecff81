package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"mapforge/internal/mapgen"
	"mapforge/internal/render"
)

var opts = struct {
	Output   string
	PNG      string
	PNGScale int
	Verbose  bool
}{}

func main() {
	cfg := mapgen.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.StringVar(&opts.Output, "o", "map.json", "JSON output file (- for stdout, empty to skip)")
	flag.StringVar(&opts.PNG, "png", "", "optional PNG preview file")
	flag.IntVar(&opts.PNGScale, "png-scale", render.DefaultPreviewOptions().Scale, "preview pixels per cell")
	flag.BoolVar(&opts.Verbose, "v", false, "enable debug logging")
	flag.Parse()

	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if err := run(cfg); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(cfg mapgen.Config) error {
	if opts.Output == "" && opts.PNG == "" {
		return errors.New("nothing to do: both -o and -png are empty")
	}
	m, err := mapgen.Generate(cfg, slog.Default())
	if err != nil {
		return err
	}
	if opts.Output != "" {
		if err := writeJSON(m, opts.Output); err != nil {
			return fmt.Errorf("writing %s: %w", opts.Output, err)
		}
		slog.Info("wrote map", "path", opts.Output)
	}
	if opts.PNG != "" {
		po := render.DefaultPreviewOptions()
		po.Scale = opts.PNGScale
		if err := render.SavePNG(opts.PNG, render.Preview(m, po)); err != nil {
			return fmt.Errorf("writing %s: %w", opts.PNG, err)
		}
		slog.Info("wrote preview", "path", opts.PNG)
	}
	return nil
}

func writeJSON(m *mapgen.Map, path string) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	if err := m.WriteJSON(bw); err != nil {
		return err
	}
	return bw.Flush()
}
