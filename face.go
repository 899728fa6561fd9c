package fontload

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Parser backend names.
const (
	ParserXImage = "ximage"
	ParserGoText = "gotext"
)

// ParsedFont is the parser-independent view of a loaded font.
type ParsedFont interface {
	// Name returns the family name stored in the font, or "" if it has none.
	Name() string
	// UnitsPerEm returns the design grid size.
	UnitsPerEm() int
}

// Face is a parsed font ready for registration.
type Face struct {
	*Descriptor
	Font ParsedFont
}

// FaceLoader turns a descriptor into a parsed face.
// Implementations must be safe for concurrent use.
type FaceLoader interface {
	LoadFace(ctx context.Context, d *Descriptor) (*Face, error)
}

// FaceLoaderFunc adapts a function to FaceLoader.
type FaceLoaderFunc func(ctx context.Context, d *Descriptor) (*Face, error)

// LoadFace calls f(ctx, d).
func (f FaceLoaderFunc) LoadFace(ctx context.Context, d *Descriptor) (*Face, error) {
	return f(ctx, d)
}

// Parsers lists the accepted parser backend names.
func Parsers() []string {
	return []string{ParserXImage, ParserGoText}
}

// NewFaceLoader returns the face loader for a parser backend name.
// The empty name selects ParserXImage.
func NewFaceLoader(parser string) (FaceLoader, error) {
	switch strings.ToLower(parser) {
	case "", ParserXImage:
		return SFNTLoader{}, nil
	case ParserGoText:
		return GoTextLoader{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownParser, parser, ParserXImage, ParserGoText)
	}
}

// SFNTLoader parses faces with golang.org/x/image/font/opentype.
type SFNTLoader struct{}

// LoadFace implements FaceLoader.
func (SFNTLoader) LoadFace(ctx context.Context, d *Descriptor) (*Face, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := opentype.Parse(d.Data())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFont, err)
	}
	return &Face{Descriptor: d, Font: sfntFont{f: f}}, nil
}

// sfntFont implements ParsedFont using sfnt.Font.
type sfntFont struct {
	f *sfnt.Font
}

func (s sfntFont) Name() string {
	name, err := s.f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

func (s sfntFont) UnitsPerEm() int {
	return int(s.f.UnitsPerEm())
}

// GoTextLoader parses faces with github.com/go-text/typesetting.
type GoTextLoader struct{}

// LoadFace implements FaceLoader.
// Only the first face of a collection file is used.
func (GoTextLoader) LoadFace(ctx context.Context, d *Descriptor) (*Face, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	faces, err := gotext.ParseTTC(bytes.NewReader(d.Data()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFont, err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: no faces in font data", ErrParseFont)
	}
	return &Face{Descriptor: d, Font: goTextFont{f: faces[0]}}, nil
}

// goTextFont implements ParsedFont using go-text's font.Face.
type goTextFont struct {
	f *gotext.Face
}

func (g goTextFont) Name() string {
	return g.f.Describe().Family
}

func (g goTextFont) UnitsPerEm() int {
	return int(g.f.Upem())
}

// Compile-time interface checks.
var (
	_ FaceLoader = SFNTLoader{}
	_ FaceLoader = GoTextLoader{}
	_ FaceLoader = FaceLoaderFunc(nil)
)
