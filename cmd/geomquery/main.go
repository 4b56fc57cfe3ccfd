// geomquery loads a scene file, casts its probe rays and reports overlapping
// bodies.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"geomkit/internal/log"
	"geomkit/internal/scene"

	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "geomquery: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	scenePath string
	logLevel  string
	dev       bool
	format    string
	dump      string
	timeout   time.Duration
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("geomquery", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.scenePath, "scene", "", "scene file (.yaml, .yml or .json)")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")
	fs.BoolVar(&opts.dev, "dev", false, "human-readable console logs")
	fs.StringVar(&opts.format, "format", "text", "report format: text or json")
	fs.StringVar(&opts.dump, "dump", "", "print the scene with ids and colors normalized as yaml or json and exit")
	fs.DurationVar(&opts.timeout, "timeout", 30*time.Second, "give up on the ray batches after this long")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.scenePath == "" && fs.NArg() > 0 {
		opts.scenePath = fs.Arg(0)
	}
	if opts.scenePath == "" {
		return opts, errors.New("no scene file given (use -scene)")
	}
	if opts.format != "text" && opts.format != "json" {
		return opts, fmt.Errorf("unknown report format %q", opts.format)
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger, err := log.New(level, opts.dev)
	if err != nil {
		return err
	}
	defer logger.Sync()

	file, err := scene.Load(opts.scenePath)
	if err != nil {
		return err
	}
	if opts.dump != "" {
		return dumpScene(file, opts.dump, stdout)
	}

	world, err := file.Build(logger.With(zap.String("scene", opts.scenePath)))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	rep, err := buildReport(ctx, file, world)
	if err != nil {
		return err
	}
	if opts.format == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	rep.writeText(stdout)
	return nil
}

func dumpScene(file *scene.File, name string, w io.Writer) error {
	if err := file.NormalizeColors(); err != nil {
		return err
	}
	switch name {
	case "yaml":
		return file.Encode(w, scene.FormatYAML)
	case "json":
		return file.Encode(w, scene.FormatJSON)
	default:
		return fmt.Errorf("unknown dump format %q", name)
	}
}
