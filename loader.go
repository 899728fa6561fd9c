package fontload

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-fontload/internal/logging"
)

// ErrNilRegistry is returned by NewLoader when no registry is given.
var ErrNilRegistry = errors.New("font registry cannot be nil")

// Loader decodes the variants of a font table and registers them.
// A Loader can be started any number of times; each run walks the whole table.
type Loader struct {
	table    Table
	registry Registry
	faces    FaceLoader
	logger   *log.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithFaceLoader sets the backend used to parse descriptors.
// The default is SFNTLoader.
func WithFaceLoader(fl FaceLoader) Option {
	return func(l *Loader) {
		if fl != nil {
			l.faces = fl
		}
	}
}

// WithLogger sets the logger progress and failures are reported to.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader for table that registers faces into reg.
func NewLoader(table Table, reg Registry, opts ...Option) (*Loader, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	l := &Loader{
		table:    table,
		registry: reg,
		faces:    SFNTLoader{},
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Pending tracks a started load. Results become available once Done is closed.
type Pending struct {
	done    chan struct{}
	results []Result
}

// Done is closed after every variant load has finished.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until every variant load has finished and returns one Result per
// present variant, in table order.
func (p *Pending) Wait() []Result {
	<-p.done
	return slices.Clone(p.results)
}

// job is one present variant of one entry.
type job struct {
	family  string
	variant Variant
	payload string
}

// Start launches one goroutine per present variant and returns without waiting.
// Failures are logged and recorded on the Result; they never stop other loads.
// ctx is handed to the face loader and the registry; Start itself does not
// cancel anything.
func (l *Loader) Start(ctx context.Context) *Pending {
	l.logger.Info("loading fonts", "families", len(l.table), "variants", l.table.VariantCount())

	jobs := make([]job, 0, l.table.VariantCount())
	for _, e := range l.table {
		l.logger.Info("→ loading font", "family", e.Family)
		for _, v := range e.Variants() {
			payload, _ := e.Payload(v)
			jobs = append(jobs, job{family: e.Family, variant: v, payload: payload})
		}
	}

	p := &Pending{
		done:    make(chan struct{}),
		results: make([]Result, len(jobs)),
	}

	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.results[i] = l.loadVariant(ctx, j)
		}()
	}

	go func() {
		wg.Wait()
		s := Summarize(p.results)
		l.logger.Info("✅ font loading finished", "loaded", s.Loaded, "failed", s.Failed)
		close(p.done)
	}()

	return p
}

// Load starts the table load and waits for every variant to finish.
func (l *Loader) Load(ctx context.Context) []Result {
	return l.Start(ctx).Wait()
}

// loadVariant decodes, parses and registers a single variant.
// Panics from the face loader or registry are turned into failures.
func (l *Loader) loadVariant(ctx context.Context, j job) (res Result) {
	res = Result{Family: j.family, Variant: j.variant, Weight: j.variant.Weight()}
	label := fmt.Sprintf("%s (%s)", j.family, j.variant)

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("%w: %s: internal error: %v", ErrVariantLoad, label, r)
		}
		if res.Err != nil {
			l.logger.Error("❌ font load failed", "family", j.family, "variant", j.variant.String(), "err", res.Err)
			return
		}
		l.logger.Info("✅ font loaded", "family", j.family, "variant", j.variant.String())
	}()

	d, err := NewDescriptor(j.family, j.variant, j.payload)
	if err != nil {
		res.Err = fmt.Errorf("%w: %s: %w", ErrVariantLoad, label, err)
		return res
	}
	l.logger.Debug("decoded payload", "family", j.family, "variant", j.variant.String(),
		"mime", d.MIME, "format", d.Format, "bytes", len(d.Data()))

	face, err := l.faces.LoadFace(ctx, d)
	if err != nil {
		res.Err = fmt.Errorf("%w: %s: %w", ErrVariantLoad, label, err)
		return res
	}
	if face.Font != nil {
		l.logger.Debug("parsed face", "family", j.family, "variant", j.variant.String(),
			"name", face.Font.Name(), "upem", face.Font.UnitsPerEm())
	}

	if err := l.registry.Add(ctx, face); err != nil {
		res.Err = fmt.Errorf("%w: %s: %w: %w", ErrVariantLoad, label, ErrRegister, err)
		return res
	}
	return res
}

// LoadFonts loads table into reg and waits for completion.
// It never fails: a nil registry is reported through the logger and yields no results.
func LoadFonts(ctx context.Context, table Table, reg Registry, opts ...Option) []Result {
	l, err := NewLoader(table, reg, opts...)
	if err != nil {
		fallback := &Loader{logger: logging.Default()}
		for _, opt := range opts {
			opt(fallback)
		}
		fallback.logger.Error("❌ font loading skipped", "err", err)
		return nil
	}
	return l.Load(ctx)
}
