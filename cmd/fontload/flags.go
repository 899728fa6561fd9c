package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// errHelpRequested signals that -h/--help printed usage; it exits 0.
var errHelpRequested = errors.New("help requested")

// DefaultWrap is the default payload line width of the encode command.
const DefaultWrap = 76

// commonFlags holds flags shared by the commands that build a font table.
type commonFlags struct {
	config    string
	assetPath string
	parser    string
	noBuiltin bool
	quiet     bool
	verbose   bool
}

// loadFlags holds flags for the load command.
type loadFlags struct {
	common commonFlags
	strict bool
}

// listFlags holds flags for the list command.
type listFlags struct {
	common commonFlags
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common   commonFlags
	output   string
	html     bool
	sample   string
	title    string
	pageSize string
	timeout  string
}

// encodeFlags holds flags for the encode command.
type encodeFlags struct {
	output string
	wrap   int
	quiet  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.assetPath, "assets", "", "custom asset directory (fonts/, styles/, templates/, samples/)")
	fs.StringVar(&f.parser, "parser", "", "font parser: ximage, gotext")
	fs.BoolVar(&f.noBuiltin, "no-builtin", false, "skip the built-in font table")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// newFlagSet returns a silent FlagSet; errors are reported by runMain.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parse runs fs.Parse, printing usage on -h and tagging other errors as usage errors.
func parse(fs *flag.FlagSet, args []string, usage func(io.Writer), env *Environment) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(env.Stdout)
			return errHelpRequested
		}
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	return nil
}

func parseLoadFlags(args []string, env *Environment) (*loadFlags, []string, error) {
	fs := newFlagSet("load")
	f := &loadFlags{}
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.strict, "strict", false, "exit non-zero when any variant fails")
	if err := parse(fs, args, printLoadUsage, env); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseListFlags(args []string, env *Environment) (*listFlags, []string, error) {
	fs := newFlagSet("list")
	f := &listFlags{}
	addCommonFlags(fs, &f.common)
	if err := parse(fs, args, printListUsage, env); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parsePreviewFlags(args []string, env *Environment) (*previewFlags, []string, error) {
	fs := newFlagSet("preview")
	f := &previewFlags{}
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "specimen.pdf", "output PDF path")
	fs.BoolVar(&f.html, "html", false, "also write the specimen HTML next to the PDF")
	fs.StringVar(&f.sample, "sample", "", "markdown sample file")
	fs.StringVar(&f.title, "title", "", "specimen title")
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: letter, a4")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "browser timeout (e.g., 30s, 2m)")
	if err := parse(fs, args, printPreviewUsage, env); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseEncodeFlags(args []string, env *Environment) (*encodeFlags, []string, error) {
	fs := newFlagSet("encode")
	f := &encodeFlags{}
	fs.StringVarP(&f.output, "output", "o", "", `output file ("-" = stdout, default: <font>.b64)`)
	fs.IntVarP(&f.wrap, "wrap", "w", DefaultWrap, "line width (0 = single line)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	if err := parse(fs, args, printEncodeUsage, env); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
