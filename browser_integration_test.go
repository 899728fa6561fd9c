//go:build integration

package fontload

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-fontload/internal/logging"
)

// testTimeout bounds browser round-trips in integration tests.
const testTimeout = 30 * time.Second

// newTestRegistry starts a registry that is closed when the test ends.
// Rod downloads Chromium on first run if none is found.
func newTestRegistry(t *testing.T) *BrowserRegistry {
	t.Helper()
	r := NewBrowserRegistry(testTimeout)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func assertValidPDF(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("data does not have PDF magic bytes, got prefix: %q", data[:min(10, len(data))])
	}
	if len(data) < 100 {
		t.Errorf("PDF data suspiciously small: %d bytes", len(data))
	}
}

func TestBrowserRegistry_Integration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("registered faces render without fallback", func(t *testing.T) {
		t.Parallel()

		r := newTestRegistry(t)
		results := LoadFonts(ctx, DefaultTable(), r, WithLogger(logging.Discard()))
		if sum := Summarize(results); sum.Failed != 0 {
			for _, res := range results {
				if !res.OK() {
					t.Errorf("%s %s: %v", res.Family, res.Variant, res.Err)
				}
			}
			t.FailNow()
		}

		for _, sf := range SpecimenFamilies(DefaultTable()) {
			for _, w := range sf.Weights {
				ok, err := r.Check(ctx, sf.Family, w)
				if err != nil {
					t.Fatalf("Check(%s, %s): %v", sf.Family, w, err)
				}
				if !ok {
					t.Errorf("Check(%s, %s) = false", sf.Family, w)
				}
			}
		}
	})

	t.Run("corrupted payload is rejected by the browser", func(t *testing.T) {
		t.Parallel()

		r := newTestRegistry(t)
		// Parsing is skipped so the payload reaches the FontFace API.
		passthrough := FaceLoaderFunc(func(_ context.Context, d *Descriptor) (*Face, error) {
			return &Face{Descriptor: d}, nil
		})
		results := LoadFonts(ctx, Table{{Family: "Broken", Normal: "QUJD"}}, r,
			WithFaceLoader(passthrough), WithLogger(logging.Discard()))
		if len(results) != 1 || results[0].OK() {
			t.Fatalf("results = %+v, want one failure", results)
		}
	})

	t.Run("specimen prints to PDF", func(t *testing.T) {
		t.Parallel()

		spec, err := NewSpecimen(nil)
		if err != nil {
			t.Fatalf("NewSpecimen: %v", err)
		}
		r := newTestRegistry(t)
		res, err := spec.Render(ctx, r, DefaultTable(), SpecimenRequest{PageSize: PageSizeA4},
			WithLogger(logging.Discard()))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		assertValidPDF(t, res.PDF)

		out := filepath.Join(t.TempDir(), "specimen.pdf")
		if err := os.WriteFile(out, res.PDF, 0o644); err != nil {
			t.Fatalf("writing PDF: %v", err)
		}
	})
}
