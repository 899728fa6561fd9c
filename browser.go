package fontload

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-fontload/internal/process"
)

// DefaultTimeout bounds each browser round-trip.
const DefaultTimeout = 30 * time.Second

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
)

// Page dimensions in inches.
var pageSizes = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
}

const marginInches = 0.5

// addFontJS builds a FontFace from a data URI source, waits for it to load and
// adds it to the document's font set.
const addFontJS = `async (family, source, weight, style, display) => {
	const face = new FontFace(family, source, { weight, style, display });
	await face.load();
	document.fonts.add(face);
	return face.status;
}`

// checkFontJS reports whether a CSS font shorthand can be rendered without fallback.
const checkFontJS = `(spec) => document.fonts.check(spec)`

// mountJS swaps head and body for those of an HTML document while keeping the
// Document, and with it every font already added to document.fonts.
const mountJS = `(html) => {
	const doc = new DOMParser().parseFromString(html, 'text/html');
	document.head.replaceChildren(...doc.head.childNodes);
	document.body.replaceChildren(...doc.body.childNodes);
	return true;
}`

// fontsReadyJS resolves once every pending font load has settled.
const fontsReadyJS = `() => document.fonts.ready.then(() => document.fonts.size)`

// blankDocument is the page the registry starts from.
const blankDocument = `<!DOCTYPE html><html><head><meta charset="utf-8"><title>fontload</title></head><body></body></html>`

// BrowserRegistry registers faces in a headless Chrome page through the
// FontFace API. Rod downloads Chromium on first run if none is found.
// The browser is started lazily on the first call that needs it.
// BrowserRegistry is safe for concurrent use.
type BrowserRegistry struct {
	timeout time.Duration
	start   func() (*launcher.Launcher, *rod.Browser, error)

	mu        sync.Mutex
	launcher  *launcher.Launcher
	browser   *rod.Browser
	page      *rod.Page
	launchErr error // first launch failure, returned to every later caller
}

// NewBrowserRegistry creates a BrowserRegistry; timeout <= 0 selects DefaultTimeout.
func NewBrowserRegistry(timeout time.Duration) *BrowserRegistry {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &BrowserRegistry{timeout: timeout, start: launchBrowser}
}

// launchBrowser starts Chrome and connects to it.
func launchBrowser() (*launcher.Launcher, *rod.Browser, error) {
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return l, b, nil
}

// ensurePage lazily launches the browser and opens the working page.
func (r *BrowserRegistry) ensurePage() (*rod.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.page != nil {
		return r.page, nil
	}
	// A failed launch is not retried
	if r.launchErr != nil {
		return nil, r.launchErr
	}

	if r.browser == nil {
		l, b, err := r.start()
		if err != nil {
			r.launchErr = err
			return nil, err
		}
		r.launcher = l
		r.browser = b
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	if err := page.Timeout(r.timeout).SetDocumentContent(blankDocument); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("%w: %w", ErrPageLoad, err)
	}
	r.page = page
	return page, nil
}

// bound scopes page operations to ctx and the registry timeout.
func (r *BrowserRegistry) bound(ctx context.Context, page *rod.Page) *rod.Page {
	return page.Context(ctx).Timeout(r.timeout)
}

// Add implements Registry. It resolves once the browser reports the face as loaded.
func (r *BrowserRegistry) Add(ctx context.Context, f *Face) error {
	if f == nil || f.Descriptor == nil {
		return ErrNilFace
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	page, err := r.ensurePage()
	if err != nil {
		return err
	}

	res, err := r.bound(ctx, page).Eval(addFontJS, f.Family, f.URL(), f.Weight.String(), f.Style, f.Display)
	if err != nil {
		return fmt.Errorf("FontFace load: %w", err)
	}
	if status := res.Value.Str(); status != "loaded" {
		return fmt.Errorf("FontFace status %q", status)
	}
	return nil
}

// Check reports whether the page can render family at weight w without falling back.
func (r *BrowserRegistry) Check(ctx context.Context, family string, w Weight) (bool, error) {
	page, err := r.ensurePage()
	if err != nil {
		return false, err
	}
	spec := fmt.Sprintf(`%s 16px "%s"`, w, strings.ReplaceAll(family, `"`, `\"`))
	res, err := r.bound(ctx, page).Eval(checkFontJS, spec)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrPageLoad, err)
	}
	return res.Value.Bool(), nil
}

// Mount replaces the visible document with html, keeping registered fonts.
func (r *BrowserRegistry) Mount(ctx context.Context, html string) error {
	page, err := r.ensurePage()
	if err != nil {
		return err
	}
	if _, err := r.bound(ctx, page).Eval(mountJS, html); err != nil {
		return fmt.Errorf("%w: %w", ErrPageLoad, err)
	}
	return nil
}

// PrintPDF waits for pending font loads to settle and prints the page.
// size is PageSizeLetter or PageSizeA4; anything else falls back to letter.
func (r *BrowserRegistry) PrintPDF(ctx context.Context, size string) ([]byte, error) {
	page, err := r.ensurePage()
	if err != nil {
		return nil, err
	}
	p := r.bound(ctx, page)

	if _, err := p.Eval(fontsReadyJS); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPageLoad, err)
	}

	reader, err := p.PDF(buildPDFOptions(size))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// buildPDFOptions constructs proto.PagePrintToPDF for a page size.
func buildPDFOptions(size string) *proto.PagePrintToPDF {
	dims, ok := pageSizes[strings.ToLower(size)]
	if !ok {
		dims = pageSizes[PageSizeLetter]
	}
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(dims[0]),
		PaperHeight:     floatPtr(dims[1]),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// Close releases browser resources. The Chrome process group is killed even if
// the DevTools close fails.
func (r *BrowserRegistry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
		r.page = nil
	}
	if r.launcher != nil {
		if pid := r.launcher.PID(); pid > 0 {
			process.KillProcessGroup(pid)
		}
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// Compile-time interface check.
var _ Page = (*BrowserRegistry)(nil)
