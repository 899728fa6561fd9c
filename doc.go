// Package fontload loads a table of embedded fonts into a registry.
//
// # Quick Start
//
// Load the built-in table into an in-memory collection:
//
//	coll := fontload.NewCollection()
//	results := fontload.LoadFonts(ctx, fontload.DefaultTable(), coll)
//	sum := fontload.Summarize(results)
//	fmt.Printf("%d loaded, %d failed\n", sum.Loaded, sum.Failed)
//
// LoadFonts never fails as a whole. Each present variant yields one Result in
// table order; a failed variant carries an error wrapping ErrVariantLoad and
// does not affect the others.
//
// # Loading Pipeline
//
// Every variant goes through the same stages, concurrently with the others:
//
//  1. Clean strips whitespace from the base64 payload
//  2. NewDescriptor decodes it and tags family, weight, style and format
//  3. A FaceLoader parses the font (x/image/sfnt or go-text/typesetting)
//  4. The Registry receives the parsed Face
//
// # Overlapping Work
//
// Loader.Start returns immediately with a Pending handle. Callers can prepare
// a document while fonts load and call Wait before the fonts are needed:
//
//	loader, err := fontload.NewLoader(table, registry)
//	pending := loader.Start(ctx)
//	// ... build the page ...
//	results := pending.Wait()
//
// # Registries
//
// Collection keeps faces in memory. BrowserRegistry adds them to a headless
// Chrome page through the FontFace API; Specimen uses it to print a PDF page
// showing every family in each of its weights.
//
// # Browser Requirements
//
// BrowserRegistry requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package fontload
