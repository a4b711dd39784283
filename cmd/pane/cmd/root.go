// Package cmd implements the pane CLI commands.
//
// The command structure follows a root command that dispatches to
// subcommands (layout, render).
package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-drift/pane/pkg/errors"
	"github.com/go-drift/pane/pkg/layout"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "pane",
	Short: "pane - lay out and render widget trees",
	Long: `pane lays out a widget tree described in YAML and prints the
resulting geometry or renders it to a PNG.

Use "pane <command> --help" for more information about a command.`,
	Usage: "pane [--verbose] <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands    = make(map[string]*Command)
	subcommands []*Command
)

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

var verbose bool

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	subcommands = append(subcommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	var filtered []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filtered) == 0 {
				printHelp()
				return nil
			}
			filtered = append(filtered, arg)
		case "-v", "--version", "version":
			if len(filtered) == 0 {
				fmt.Fprintf(stdout, "pane version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filtered = append(filtered, arg)
		case "--verbose":
			enableVerbose()
		default:
			filtered = append(filtered, arg)
		}
	}
	args = filtered

	if len(args) == 0 {
		printHelp()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printHelp()
		return fmt.Errorf("unknown command: %s", args[0])
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}
	return run(cmd, cmdArgs)
}

// run calls the command, turning a panic into an error. With --verbose,
// structured errors are also sent to the error handler.
func run(cmd *Command, args []string) (err error) {
	defer errors.RecoverWithCallback("cmd."+cmd.Name, func(r any) {
		err = &errors.PaneError{Op: "cmd." + cmd.Name, Kind: errors.KindPanic, Err: fmt.Errorf("%v", r)}
	})
	err = cmd.Run(args)
	var pe *errors.PaneError
	if verbose && stderrors.As(err, &pe) {
		errors.Report(pe)
	}
	return err
}

// enableVerbose routes layout tracing and error reports to stderr.
func enableVerbose() {
	verbose = true
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	layout.SetLogger(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: true})
}

func printHelp() {
	fmt.Fprintln(stdout, rootCmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range subcommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --verbose            Log layout passes and errors to stderr")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  pane layout tree.yaml               Print computed geometry")
	fmt.Fprintln(stdout, "  pane render tree.yaml -o out.png    Render to a PNG")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
