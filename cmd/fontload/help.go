package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fontload <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  load       Decode, parse and register every font variant")
	fmt.Fprintln(w, "  list       List the families of the font table")
	fmt.Fprintln(w, "  preview    Print a specimen PDF through headless Chrome")
	fmt.Fprintln(w, "  encode     Turn a TTF/OTF file into a base64 payload asset")
	fmt.Fprintln(w, "  doctor     Check the system for preview requirements")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'fontload help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by load, list and preview.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Font table:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (.yaml, .yml, .toml)")
	fmt.Fprintln(w, "      --assets <dir>        Custom asset directory")
	fmt.Fprintln(w, "      --parser <s>          Font parser: ximage, gotext")
	fmt.Fprintln(w, "      --no-builtin          Skip the built-in font table")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  FONTLOAD_CONFIG, FONTLOAD_PARSER, FONTLOAD_TIMEOUT,")
	fmt.Fprintln(w, "  FONTLOAD_LOG_LEVEL, FONTLOAD_ASSET_PATH")
}

func printLoadUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fontload load [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Load every font variant into memory and report the outcome.")
	fmt.Fprintln(w, "Failed variants are reported but do not stop the others.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --strict              Exit 1 when any variant fails")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fontload list [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the families and variants of the font table without loading them.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fontload preview [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Register the font table in headless Chrome and print a specimen PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Specimen:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF (default: specimen.pdf)")
	fmt.Fprintln(w, "      --html                Also write the specimen HTML")
	fmt.Fprintln(w, "      --sample <path>       Markdown sample text")
	fmt.Fprintln(w, "      --title <s>           Specimen title")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4")
	fmt.Fprintln(w, "  -t, --timeout <d>         Browser timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

func printEncodeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fontload encode <font> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Encode a TTF/OTF file as a line-wrapped base64 payload.")
	fmt.Fprintln(w, "The payload is decoded and parsed again before it is written.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>       Output file (\"-\" = stdout, default: <font>.b64)")
	fmt.Fprintln(w, "  -w, --wrap <n>            Line width (0 = single line, default: 76)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fontload doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Chrome, the built-in fonts and the environment.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "load":
		printLoadUsage(env.Stdout)
	case "list":
		printListUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "encode":
		printEncodeUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: fontload version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: fontload help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
