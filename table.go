package fontload

import (
	"encoding/base64"
	"slices"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// Built-in family names.
const (
	FamilyGo               = "Go"
	FamilyGoMono           = "Go Mono"
	FamilyGoSmallcaps      = "Go Smallcaps"
	FamilyLatinModernRoman = "Latin Modern Roman"
	FamilyLatinModernSans  = "Latin Modern Sans"
	FamilyLatinModernMono  = "Latin Modern Mono"
)

// Cache for the built-in table (payloads encoded once on first access).
var (
	defaultTable     Table
	defaultTableOnce sync.Once
)

// DefaultTable returns the compiled-in font table.
// Go Smallcaps and Latin Modern Mono ship without a bold variant.
// The returned slice is a copy; the payload strings are shared.
func DefaultTable() Table {
	defaultTableOnce.Do(func() {
		defaultTable = Table{
			{Family: FamilyGo, Normal: encode(goregular.TTF), Bold: encode(gobold.TTF)},
			{Family: FamilyGoMono, Normal: encode(gomono.TTF), Bold: encode(gomonobold.TTF)},
			{Family: FamilyGoSmallcaps, Normal: encode(gosmallcaps.TTF)},
			{Family: FamilyLatinModernRoman, Normal: encode(lmroman10regular.TTF), Bold: encode(lmroman10bold.TTF)},
			{Family: FamilyLatinModernSans, Normal: encode(lmsans10regular.TTF), Bold: encode(lmsans10bold.TTF)},
			{Family: FamilyLatinModernMono, Normal: encode(lmmono10regular.TTF)},
		}
	})
	return slices.Clone(defaultTable)
}

// Encode returns the base64 payload for raw font data.
func Encode(data []byte) string {
	return encode(data)
}

func encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// EncodeWrapped returns the base64 payload split into lines of at most width
// characters, the shape payloads take in generated text assets. A width below
// one disables wrapping. Clean(EncodeWrapped(d, n)) == Encode(d).
func EncodeWrapped(data []byte, width int) string {
	src := encode(data)
	if width < 1 || len(src) <= width {
		return src
	}
	var b strings.Builder
	b.Grow(len(src) + len(src)/width)
	for len(src) > width {
		b.WriteString(src[:width])
		b.WriteByte('\n')
		src = src[width:]
	}
	b.WriteString(src)
	return b.String()
}
