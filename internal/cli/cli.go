package cli

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// stdin is the answer source for prompts and the plain exam UI; tests
// replace it.
var stdin io.Reader = os.Stdin

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

// RunWithInput runs the CLI reading prompts and exam answers from in.
func RunWithInput(args []string, in io.Reader, stdout, stderr io.Writer) int {
	original := stdin
	stdin = in
	defer func() { stdin = original }()
	return Run(args, stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  pracexam <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"pracexam <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .pracexam/config.yml", []string{
		"pracexam init [--spec <path>]",
	}, runInit),
	command("validate", "Validate the config and question bank", []string{
		"pracexam validate [--spec <path>] [--bank <path>]",
	}, runValidate),
	command("take", "Take a timed practice exam", []string{
		"pracexam take [--spec <path>] [--bank <path>] [--size N] [--minutes N]",
		"              [--results-dir <dir>] [--ui auto|live|plain] [--no-color] [--seed N] [--verbose]",
	}, runTake),
	command("history", "List past exam results", []string{
		"pracexam history [--spec <path>] [--results-dir <dir>] [--last N]",
	}, runHistory),
	command("stats", "Show per-question accuracy across exams", []string{
		"pracexam stats [--spec <path>] [--results-dir <dir>] [--top N]",
	}, runStats),
	command("report", "Generate an HTML history report", []string{
		"pracexam report [--spec <path>] [--results-dir <dir>] [--output <path>]",
	}, runReport),
}
