package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"noticias/pkg/metadata"
)

// ErrSlugCollision is returned when two pages would share a file name.
var ErrSlugCollision = errors.New("slug collision")

// reservedSlugs are taken by the fixed pages.
var reservedSlugs = map[string]string{
	strings.TrimSuffix(IndexPage, ".html"):   IndexPage,
	strings.TrimSuffix(SummaryPage, ".html"): SummaryPage,
}

// CollisionError names the titles competing for one slug.
type CollisionError struct {
	Slug   string
	Titles []string
}

// Error implements error.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: %q is claimed by %s", ErrSlugCollision, e.Slug+".html", strings.Join(quoteAll(e.Titles), " and "))
}

// Unwrap returns ErrSlugCollision.
func (e *CollisionError) Unwrap() error {
	return ErrSlugCollision
}

// Report summarizes a completed build.
type Report struct {
	BuildID   string
	OutputDir string
	Files     []string
	Articles  int
	Indexed   int
	Rejected  int
	Skipped   int
}

// CheckCollisions reports every slug shared by two accepted articles or
// equal to a fixed page name.
func (b *Builder) CheckCollisions() error {
	seen := make(map[string]string, len(b.articles))

	var errs []error

	for _, a := range b.articles {
		slug := a.Slug()

		if fixed, ok := reservedSlugs[slug]; ok {
			errs = append(errs, &CollisionError{Slug: slug, Titles: []string{a.Title, fixed}})
			continue
		}

		if first, ok := seen[slug]; ok {
			errs = append(errs, &CollisionError{Slug: slug, Titles: []string{first, a.Title}})
			continue
		}

		seen[slug] = a.Title
	}

	return errors.Join(errs...)
}

// Generate writes index.html (narrowed by filter), resumen.html, and one page
// per accepted article. Slug collisions abort before anything is written.
// File-system errors are returned unchanged; files written before the
// failure stay on disk.
func (b *Builder) Generate(filter Filter) (*Report, error) {
	if err := b.CheckCollisions(); err != nil {
		b.log.Error("slug collision, nothing written", "error", err)
		return nil, err
	}

	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return nil, err
	}

	report := &Report{
		BuildID:   b.buildID,
		OutputDir: b.outputDir,
		Articles:  len(b.articles),
		Rejected:  len(b.rejections),
		Skipped:   b.skipped,
	}

	generated := b.now()
	base := page{
		SiteTitle: b.siteTitle,
		Generated: generated.Format(footerTimeFormat),
	}

	// 1. Index
	subset := b.Apply(filter)
	report.Indexed = len(subset)

	indexBase := base
	indexBase.PageTitle = b.siteTitle

	content, err := b.renderer.renderIndex(indexBase, GroupByAuthor(subset), filter)
	if err != nil {
		return nil, err
	}

	if err := b.write(report, IndexPage, content); err != nil {
		return report, err
	}

	// 2. Summary
	summaryBase := base
	summaryBase.PageTitle = "Resumen - " + b.siteTitle

	content, err = b.renderer.renderSummary(summaryBase, b.Summary(), len(b.rejections)+b.skipped)
	if err != nil {
		return report, err
	}

	if err := b.write(report, SummaryPage, content); err != nil {
		return report, err
	}

	// 3. Articles, always the full set so navigation links resolve.
	for _, a := range b.articles {
		prev, next := b.Neighbors(a.Slug())

		articleBase := base
		articleBase.PageTitle = a.Title

		content, err = b.renderer.renderArticle(articleBase, a, prev, next)
		if err != nil {
			return report, err
		}

		if err := b.write(report, a.FileName(), content); err != nil {
			return report, err
		}
	}

	b.log.Info("site generated", "dir", b.outputDir, "files", len(report.Files),
		"indexed", report.Indexed, "filter", filter.String())

	return report, nil
}

func (b *Builder) write(report *Report, name, content string) error {
	if b.sign {
		content = metadata.Sign(content, metadata.Metadata{
			BuildID:    b.buildID,
			LastModify: b.now(),
		})
	}

	path := filepath.Join(b.outputDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}

	report.Files = append(report.Files, name)
	b.log.Info("page written", "path", path)

	return nil
}

// ArticleFiles lists the page names of the accepted articles in order.
func (b *Builder) ArticleFiles() []string {
	names := make([]string, 0, len(b.articles))
	for _, a := range b.articles {
		names = append(names, a.FileName())
	}

	return names
}

func quoteAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = fmt.Sprintf("%q", s)
	}

	return out
}
