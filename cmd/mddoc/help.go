package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mddoc <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render a markdown document to standalone HTML")
	fmt.Fprintln(w, "  test       Run the Go examples of a markdown document")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A document path without a command is rendered.")
	fmt.Fprintln(w, "Run 'mddoc help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mddoc render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a markdown document to <output>/<name>.html.")
	fmt.Fprintln(w, "The document must start with a `% Title` line.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>                     Output directory, must exist (default \"doc\")")
	fmt.Fprintln(w, "  -c, --config <name>                    Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --markdown-css <url>               Stylesheet URL (repeatable)")
	fmt.Fprintln(w, "      --markdown-in-header <file>        File appended to <head> (repeatable)")
	fmt.Fprintln(w, "      --markdown-before-content <file>   File inserted before the title (repeatable)")
	fmt.Fprintln(w, "      --markdown-after-content <file>    File inserted after the content (repeatable)")
	fmt.Fprintln(w, "      --markdown-playground-url <url>    Playground URL for runnable examples")
	fmt.Fprintln(w, "      --no-toc                           Disable table of contents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Watch:")
	fmt.Fprintln(w, "      --watch                            Re-render when the input or fragments change")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                          Show progress and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  1 input unreadable, 2 input not UTF-8, 3 fragment unreadable,")
	fmt.Fprintln(w, "  4 output not writable, 5 missing title, 6 write failed, 64 usage")
}

// printTestUsage prints usage for the test command.
func printTestUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mddoc test <input> [flags] [-- harness-args...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build and run the Go code blocks of a markdown document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  -L, --library-path <dir>    Module directory visible to examples (repeatable)")
	fmt.Fprintln(w, "      --test-args <args>      Space separated harness arguments")
	fmt.Fprintln(w, "      --test-threads <n>      Examples run in parallel (0 = GOMAXPROCS)")
	fmt.Fprintln(w, "      --timeout <duration>    Per-example timeout (default 60s)")
	fmt.Fprintln(w, "      --go <path>             Go command used to build examples")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show progress and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Harness arguments:")
	fmt.Fprintln(w, "  [FILTERS...]  --exact  --skip <s>  --ignored  --include-ignored")
	fmt.Fprintln(w, "  --list  --format pretty|terse|json  -q  --test-threads <n>  --nocapture")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "test":
		printTestUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mddoc version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mddoc help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
