package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/go-drift/pane/cmd/pane/internal/config"
	"github.com/go-drift/pane/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a tree to a PNG",
		Long: `Lay out a widget tree and paint each widget's bounds in its theme's
palette color, deepest widgets on top.

Flags:
  -o, --output FILE   PNG to write (required)
  --theme FILE        Theme file, overriding the one named by the document
  --set NAME=VALUE    Set a slider's value before rendering (repeatable)
  --scale N           Scale the output image (default: 1)
  --labels            Draw widget names
  --outline           Draw widget borders
  --watch             Render again whenever the tree or theme file changes`,
		Usage: "pane render <file.yaml> -o out.png [--theme FILE] [--set NAME=VALUE]... [--scale N] [--labels] [--outline] [--watch]",
		Run:   runRender,
	})
}

type renderOptions struct {
	treeOptions
	output string
	raster raster.Options
	watch  bool
}

func parseRenderArgs(args []string) (renderOptions, error) {
	var opts renderOptions
	for i := 0; i < len(args); i++ {
		used, err := opts.parseTreeFlag(args, i)
		if err != nil {
			return opts, err
		}
		if used > 0 {
			i += used - 1
			continue
		}
		switch arg := args[i]; arg {
		case "-o", "--output":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a file path", arg)
			}
			opts.output = args[i+1]
			i++
		case "--scale":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--scale requires a number")
			}
			s, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil || s <= 0 {
				return opts, fmt.Errorf("invalid --scale %q", args[i+1])
			}
			opts.raster.Scale = s
			i++
		case "--labels":
			opts.raster.Labels = true
		case "--outline":
			opts.raster.Outline = true
		case "--watch":
			opts.watch = true
		default:
			if strings.HasPrefix(arg, "-") || opts.file != "" {
				return opts, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.file = arg
		}
	}
	if opts.output == "" {
		return opts, fmt.Errorf("an output file is required (-o out.png)")
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	if err := renderOnce(opts); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchAndRender(ctx, opts)
}

func renderOnce(opts renderOptions) error {
	backend := raster.New(opts.raster)
	tree, p, err := loadTree(opts.treeOptions, backend)
	if err != nil {
		return err
	}
	if err := backend.WritePNG(opts.output); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}

	size := tree.Root.Size()
	fmt.Fprintf(stdout, "Wrote %s (%gx%g, %d frames)\n", opts.output, size.Width, size.Height, p.Frames())
	return nil
}

// watchAndRender renders again on every change to the document or its
// theme until ctx is done. Render errors are printed and watching goes on.
func watchAndRender(ctx context.Context, opts renderOptions) error {
	paths := []string{opts.file}
	if doc, err := config.Load(opts.file); err == nil {
		paths = append(paths, doc.ThemePath(opts.theme))
	}
	fw, err := newFileWatcher(paths...)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", opts.file, err)
	}
	fmt.Fprintf(stdout, "Watching %s for changes\n", opts.file)
	return fw.run(ctx, func(path string) {
		if err := renderOnce(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
}
