package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"

	fontload "github.com/alnah/go-fontload"
	"github.com/alnah/go-fontload/internal/assets"
	"github.com/alnah/go-fontload/internal/fileutil"
	"github.com/alnah/go-fontload/internal/hints"
)

// runEncode turns a TTF/OTF file into a line-wrapped base64 payload asset.
// The payload is decoded and parsed again before it is written.
func runEncode(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseEncodeFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: encode takes exactly one font file", ErrUsage)
	}
	if f.wrap < 0 {
		return fmt.Errorf("%w: --wrap must be >= 0, got %d", ErrUsage, f.wrap)
	}
	input := positional[0]

	data, err := os.ReadFile(input) // #nosec G304 -- path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	kind, _ := filetype.Match(data)
	if !filetype.IsFont(data) {
		return fmt.Errorf("%w: %s (detected %s)", assets.ErrNotAFont, input, kindName(kind.Extension))
	}

	payload := fontload.EncodeWrapped(data, f.wrap) + "\n"

	family := familyName(input)
	d, err := fontload.NewDescriptor(family, fontload.VariantNormal, payload)
	if err != nil {
		return err
	}
	face, err := fontload.SFNTLoader{}.LoadFace(ctx, d)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	output := f.output
	if output == "" {
		output = fileutil.ReplaceExt(input, ".b64")
	}
	if output == "-" {
		_, err := fmt.Fprint(env.Stdout, payload)
		return err
	}
	if err := fileutil.WriteFileAtomic(output, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}

	if !f.quiet {
		name := face.Font.Name()
		if name == "" {
			name = family
		}
		fmt.Fprintf(env.Stdout, "Encoded %s (%s, family %q, %s) -> %s\n",
			input, kind.Extension, name, d.Format, output)
	}
	return nil
}

// familyName derives a placeholder family name from a file name.
func familyName(path string) string {
	return fileutil.ReplaceExt(filepath.Base(path), "")
}

// kindName names a detected file type for error messages.
func kindName(ext string) string {
	if ext == "" || ext == "unknown" {
		return "unknown type"
	}
	return ext
}
