package main

import (
	"fmt"
	"io"
	"strings"

	md2site "github.com/alnah/go-md2site"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the site from the content directory")
	fmt.Fprintln(w, "  convert    Convert a single markdown file to an HTML page")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every .md/.markdown file under the content directory into the")
	fmt.Fprintln(w, "output directory, mirroring paths, after copying the static directory.")
	fmt.Fprintln(w, "The output directory is deleted first unless --no-clean is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --content <dir>       Markdown sources (default: content)")
	fmt.Fprintln(w, "      --static <dir>        Static files copied as-is (default: static)")
	fmt.Fprintln(w, "  -o, --output <dir>        Generated site (default: public)")
	fmt.Fprintln(w, "      --ignore <glob>       Skip matching content paths (repeatable)")
	fmt.Fprintln(w, "      --no-clean            Keep existing output directory contents")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	printPageFlagUsage(w)
	printCommonFlagUsage(w)
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site convert <file.md|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert one markdown document to an HTML page. Reads stdin for -.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <file>       Output file (default: stdout)")
	printPageFlagUsage(w)
	printCommonFlagUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site config [build flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration build would use, as YAML, after merging the")
	fmt.Fprintln(w, "config file, MD2SITE_* environment variables and flags.")
}

func printPageFlagUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -t, --template <s>        Template name or file path")
	fmt.Fprintf(w, "                            Built-in: %s\n", strings.Join(md2site.Templates(), ", "))
	fmt.Fprintln(w, "      --style <s>           CSS style name or file path")
	fmt.Fprintf(w, "                            Built-in: %s\n", strings.Join(md2site.Styles(), ", "))
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/ and styles/")
	fmt.Fprintln(w, "      --rewrite-links       Point relative .md links at .html pages")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Engine:")
	fmt.Fprintln(w, "      --engine <s>          native (default) or goldmark")
	fmt.Fprintln(w, "      --highlight[=style]   Highlight fenced code (default style: github)")
}

func printCommonFlagUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2site version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2site help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
