package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/pane/pkg/layout"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Print the computed geometry of a tree",
		Long: `Lay out a widget tree and print every widget's bounds in root
coordinates, parents first.

Flags:
  --theme FILE        Theme file, overriding the one named by the document
  --set NAME=VALUE    Set a slider's value before printing (repeatable)`,
		Usage: "pane layout <file.yaml> [--theme FILE] [--set NAME=VALUE]...",
		Run:   runLayout,
	})
}

func runLayout(args []string) error {
	var opts treeOptions
	for i := 0; i < len(args); i++ {
		used, err := opts.parseTreeFlag(args, i)
		if err != nil {
			return err
		}
		if used > 0 {
			i += used - 1
			continue
		}
		if strings.HasPrefix(args[i], "-") || opts.file != "" {
			return fmt.Errorf("unexpected argument: %s", args[i])
		}
		opts.file = args[i]
	}

	tree, _, err := loadTree(opts, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%-28s %-6s %8s %8s %8s %8s  %s\n", "WIDGET", "LAYOUT", "X", "Y", "W", "H", "POLICY")
	tree.Root.Walk(func(w *layout.Widget) bool {
		b := w.GlobalBounds()
		name := strings.Repeat("  ", w.Depth()) + w.Name()
		policy := w.HPolicy().String() + "/" + w.VPolicy().String()
		if w.Disabled() {
			policy += " disabled"
		}
		fmt.Fprintf(stdout, "%-28s %-6s %8.1f %8.1f %8.1f %8.1f  %s\n",
			name, w.Layout().Kind(), b.Left, b.Top, b.Width(), b.Height(), policy)
		return true
	})
	for _, name := range sliderNames(tree) {
		fmt.Fprintf(stdout, "slider %s = %g\n", name, tree.Sliders[name].Value())
	}
	return nil
}
