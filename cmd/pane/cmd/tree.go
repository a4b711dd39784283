package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-drift/pane/cmd/pane/internal/config"
	"github.com/go-drift/pane/pkg/errors"
	"github.com/go-drift/pane/pkg/layout"
)

// treeOptions are the flags shared by commands that load a document.
type treeOptions struct {
	file  string
	theme string
	sets  []string
}

// parseTreeFlag consumes --theme and --set. It returns how many arguments
// it used, or 0 when arg is not one of its flags.
func (o *treeOptions) parseTreeFlag(args []string, i int) (int, error) {
	arg := args[i]
	for _, name := range []string{"--theme", "--set"} {
		var value string
		used := 0
		switch {
		case arg == name:
			if i+1 >= len(args) {
				return 0, fmt.Errorf("%s requires a value", name)
			}
			value, used = args[i+1], 2
		case strings.HasPrefix(arg, name+"="):
			value, used = strings.TrimPrefix(arg, name+"="), 1
		default:
			continue
		}
		if name == "--theme" {
			o.theme = value
		} else {
			o.sets = append(o.sets, value)
		}
		return used, nil
	}
	return 0, nil
}

// loadTree builds the document, lays it out through a pipeline feeding
// backend, then applies --set values and flushes again.
func loadTree(o treeOptions, backend layout.Backend) (*config.Tree, *layout.PipelineOwner, error) {
	if o.file == "" {
		return nil, nil, fmt.Errorf("a tree file is required")
	}
	doc, err := config.Load(o.file)
	if err != nil {
		return nil, nil, err
	}
	th, err := doc.ResolveTheme(o.theme)
	if err != nil {
		return nil, nil, err
	}
	tree, err := doc.Build(th)
	if err != nil {
		return nil, nil, err
	}

	p := layout.NewPipelineOwner(backend)
	if err := p.Attach(tree.Root); err != nil {
		return nil, nil, err
	}
	if err := p.Flush(); err != nil {
		return nil, nil, err
	}
	if len(o.sets) == 0 {
		return tree, p, nil
	}
	for _, set := range o.sets {
		if err := applySet(tree, set); err != nil {
			return nil, nil, err
		}
	}
	if err := p.Flush(); err != nil {
		return nil, nil, err
	}
	return tree, p, nil
}

func applySet(tree *config.Tree, set string) error {
	name, raw, ok := strings.Cut(set, "=")
	if !ok {
		return errors.Config("cmd.set", fmt.Errorf("--set wants NAME=VALUE, got %q", set))
	}
	s, found := tree.Sliders[name]
	if !found {
		return errors.Config("cmd.set", fmt.Errorf("no slider named %q (have %s)", name, strings.Join(sliderNames(tree), ", ")))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Config("cmd.set", fmt.Errorf("slider %s: %w", name, err))
	}
	s.SetValue(v)
	return nil
}

func sliderNames(tree *config.Tree) []string {
	names := make([]string, 0, len(tree.Sliders))
	for name := range tree.Sliders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
