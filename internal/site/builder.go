// Package site turns normalized articles into a static set of interlinked pages.
//
// A Builder is created once per run from the raw records. It owns the
// accepted article list (in input order), the rejection log, and the output
// directory. It is not safe for concurrent use; two builders writing the same
// directory overwrite each other's files without detection.
package site

import (
	"time"

	"github.com/google/uuid"

	"noticias/internal/logger"
	"noticias/internal/models"
	"noticias/internal/normalizer"
)

// Default page settings.
const (
	DefaultOutputDir = "output"
	DefaultSiteTitle = "Noticias del Fuego"
)

// Fixed page names.
const (
	IndexPage   = "index.html"
	SummaryPage = "resumen.html"
)

// Option configures a Builder.
type Option func(*Builder)

// WithPolicy sets the length policy applied while normalizing.
func WithPolicy(p normalizer.Policy) Option {
	return func(b *Builder) { b.policy = p }
}

// WithOutputDir sets the directory pages are written to.
func WithOutputDir(dir string) Option {
	return func(b *Builder) {
		if dir != "" {
			b.outputDir = dir
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithClock overrides the time source used for footers and signatures.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithSiteTitle sets the heading shown on every page.
func WithSiteTitle(title string) Option {
	return func(b *Builder) {
		if title != "" {
			b.siteTitle = title
		}
	}
}

// WithMarkdownBody renders article bodies as Markdown instead of plain text.
func WithMarkdownBody(enabled bool) Option {
	return func(b *Builder) { b.markdownBody = enabled }
}

// WithSigning appends a metadata block to every written page.
func WithSigning(enabled bool) Option {
	return func(b *Builder) { b.sign = enabled }
}

// WithBuildID fixes the build identifier instead of generating one.
func WithBuildID(id string) Option {
	return func(b *Builder) {
		if id != "" {
			b.buildID = id
		}
	}
}

// Builder holds the accepted articles for one site build.
type Builder struct {
	articles     []models.Article
	rejections   []normalizer.Rejection
	skipped      int
	total        int
	policy       normalizer.Policy
	outputDir    string
	siteTitle    string
	buildID      string
	markdownBody bool
	sign         bool
	now          func() time.Time
	log          *logger.Logger
	renderer     *renderer
}

// New normalizes records and returns a builder over the accepted ones.
// Records are never modified.
func New(records []models.RawArticle, opts ...Option) *Builder {
	b := &Builder{
		policy:    normalizer.DefaultPolicy(),
		outputDir: DefaultOutputDir,
		siteTitle: DefaultSiteTitle,
		buildID:   uuid.NewString(),
		now:       time.Now,
		log:       logger.Discard(),
	}

	for _, opt := range opts {
		opt(b)
	}

	b.log = b.log.With("build", b.buildID)

	result := normalizer.NewProcessor(b.policy, b.log).Process(records)
	b.articles = result.Articles
	b.rejections = result.Rejections
	b.skipped = result.Skipped
	b.total = result.Total
	b.renderer = newRenderer(b.markdownBody)

	return b
}

// Articles returns a copy of the accepted articles in input order.
func (b *Builder) Articles() []models.Article {
	return append([]models.Article(nil), b.articles...)
}

// Rejections returns the records dropped for a reportable reason.
func (b *Builder) Rejections() []normalizer.Rejection {
	return append([]normalizer.Rejection(nil), b.rejections...)
}

// Skipped returns how many records were dropped for an empty field.
func (b *Builder) Skipped() int {
	return b.skipped
}

// OutputDir returns the target directory.
func (b *Builder) OutputDir() string {
	return b.outputDir
}

// BuildID returns the identifier stamped on this build.
func (b *Builder) BuildID() string {
	return b.buildID
}
