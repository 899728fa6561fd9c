package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	fontload "github.com/alnah/go-fontload"
	"github.com/alnah/go-fontload/internal/hints"
)

// runLoad loads the table into an in-memory collection and prints a report.
func runLoad(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseLoadFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: load takes no arguments, got %q", ErrUsage, positional)
	}

	s, err := newSession(&f.common, env, nil)
	if err != nil {
		return err
	}

	coll := fontload.NewCollection()
	loader, err := fontload.NewLoader(s.table, coll, s.loaderOptions()...)
	if err != nil {
		return err
	}
	results := loader.Load(ctx)

	summary := fontload.Summarize(results)
	if !f.common.quiet {
		printLoadReport(env.Stdout, results, coll)
	}

	if f.strict && summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d%s", ErrVariantsFailed, summary.Failed, len(results), hints.ForFailedVariants())
	}
	return nil
}

// printLoadReport writes one line per variant followed by a summary.
func printLoadReport(w io.Writer, results []fontload.Result, coll *fontload.Collection) {
	for _, r := range results {
		if !r.OK() {
			fmt.Fprintf(w, "  [FAIL] %s %s: %v\n", r.Family, r.Weight, r.Err)
			continue
		}
		line := fmt.Sprintf("  [OK] %s %s", r.Family, r.Weight)
		if face, ok := coll.Lookup(r.Family, r.Weight); ok && face.Font != nil {
			if name := face.Font.Name(); name != "" {
				line += fmt.Sprintf(" (%s, %d upem)", name, face.Font.UnitsPerEm())
			}
		}
		fmt.Fprintln(w, line)
	}

	s := fontload.Summarize(results)
	fmt.Fprintf(w, "Loaded %d of %d variants", s.Loaded, len(results))
	if s.Failed > 0 {
		fmt.Fprintf(w, " (%d failed)", s.Failed)
	}
	fmt.Fprintf(w, " across %d families\n", len(coll.Families()))
}

// runList prints the families of the resolved table without loading them.
func runList(args []string, env *Environment) error {
	f, positional, err := parseListFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: list takes no arguments, got %q", ErrUsage, positional)
	}

	s, err := newSession(&f.common, env, nil)
	if err != nil {
		return err
	}

	printTable(env.Stdout, s.table)
	return nil
}

// printTable writes an aligned family listing.
func printTable(w io.Writer, t fontload.Table) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FAMILY\tVARIANTS\tSIZE")
	for _, e := range t {
		var names []string
		size := 0
		for _, v := range e.Variants() {
			names = append(names, v.String())
			p, _ := e.Payload(v)
			size += decodedLen(p)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Family, strings.Join(names, ","), formatSize(size))
	}
	_ = tw.Flush()
}

// decodedLen estimates the decoded size of a payload, ignoring whitespace.
func decodedLen(payload string) int {
	return base64.StdEncoding.DecodedLen(len(fontload.Clean(payload)))
}

// formatSize renders a byte count as B, KB or MB.
func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
