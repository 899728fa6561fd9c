package fontload

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-fontload/internal/assets"
)

// DefaultSpecimenTitle heads the specimen page.
const DefaultSpecimenTitle = "Font specimen"

// AssetLoader loads the specimen style, template and sample text.
type AssetLoader = assets.AssetLoader

// Page is a registry that can also display and print a document.
type Page interface {
	Registry
	Mount(ctx context.Context, html string) error
	PrintPDF(ctx context.Context, size string) ([]byte, error)
}

// SpecimenFamily is one family shown on the specimen page.
type SpecimenFamily struct {
	Family  string
	Weights []Weight
}

// SpecimenFamilies lists the families and present weights of a table.
func SpecimenFamilies(t Table) []SpecimenFamily {
	out := make([]SpecimenFamily, 0, len(t))
	for _, e := range t {
		vs := e.Variants()
		if len(vs) == 0 {
			continue
		}
		sf := SpecimenFamily{Family: e.Family, Weights: make([]Weight, 0, len(vs))}
		for _, v := range vs {
			sf.Weights = append(sf.Weights, v.Weight())
		}
		out = append(out, sf)
	}
	return out
}

// specimenData feeds the specimen template.
type specimenData struct {
	Title    string
	CSS      template.CSS
	Sample   template.HTML
	Families []SpecimenFamily
}

// Specimen renders a font specimen page: every family in each of its weights,
// set in a Markdown sample.
type Specimen struct {
	md   goldmark.Markdown
	tmpl *template.Template
	css  string
}

// NewSpecimen creates a Specimen from the named style and template of loader.
// A nil loader selects the embedded assets.
func NewSpecimen(loader AssetLoader) (*Specimen, error) {
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}

	css, err := loader.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return nil, fmt.Errorf("loading specimen style: %w", err)
	}
	src, err := loader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading specimen template: %w", err)
	}
	tmpl, err := template.New("specimen").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpecimenTemplate, err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles; the sample must survive Mount as-is
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	return &Specimen{md: md, tmpl: tmpl, css: css}, nil
}

// DefaultSample returns the embedded Markdown sample text.
func DefaultSample() (string, error) {
	return assets.LoadSample(assets.DefaultSampleName)
}

// HTML renders the specimen page for families using the Markdown sample.
// Goldmark has no context support, so conversion runs in a goroutine and
// the call returns early if ctx is done.
func (s *Specimen) HTML(ctx context.Context, title, sample string, families []SpecimenFamily) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if title == "" {
		title = DefaultSpecimenTitle
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var body bytes.Buffer
		if err := s.md.Convert([]byte(sample), &body); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}

		var page bytes.Buffer
		data := specimenData{
			Title:    title,
			CSS:      template.CSS(s.css),          // #nosec G203 -- style comes from trusted assets
			Sample:   template.HTML(body.String()), // #nosec G203 -- goldmark escapes raw HTML (WithUnsafe not set)
			Families: families,
		}
		if err := s.tmpl.Execute(&page, data); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrSpecimenTemplate, err)}
			return
		}
		done <- result{html: page.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// SpecimenRequest describes one specimen render.
type SpecimenRequest struct {
	Title    string
	Sample   string // Markdown; empty selects DefaultSample
	PageSize string // PageSizeLetter or PageSizeA4
}

// SpecimenResult holds the rendered page and the load outcomes.
type SpecimenResult struct {
	HTML    string
	PDF     []byte
	Results []Result
}

// Render loads table into page and prints the specimen.
// The page is mounted while fonts are still loading; printing waits for the
// load barrier so every face that could be registered is used.
func (s *Specimen) Render(ctx context.Context, page Page, table Table, req SpecimenRequest, opts ...Option) (*SpecimenResult, error) {
	sample := req.Sample
	if sample == "" {
		var err error
		if sample, err = DefaultSample(); err != nil {
			return nil, err
		}
	}

	loader, err := NewLoader(table, page, opts...)
	if err != nil {
		return nil, err
	}
	pending := loader.Start(ctx)

	doc, err := s.HTML(ctx, req.Title, sample, SpecimenFamilies(table))
	if err != nil {
		pending.Wait()
		return nil, err
	}
	if err := page.Mount(ctx, doc); err != nil {
		pending.Wait()
		return nil, err
	}

	results := pending.Wait()

	pdf, err := page.PrintPDF(ctx, req.PageSize)
	if err != nil {
		return nil, err
	}
	return &SpecimenResult{HTML: doc, PDF: pdf, Results: results}, nil
}
