package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"noticias/internal/models"
)

// footerTimeFormat is day/month/year as shown in page footers.
const footerTimeFormat = "02/01/2006 15:04:05"

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// page carries the fields the shared layout needs.
type page struct {
	SiteTitle string
	PageTitle string
	Generated string
}

type indexPage struct {
	page
	Sections []authorSection
	Filter   string
	Count    int
}

type authorSection struct {
	Author string
	Anchor string
	Cards  []card
}

type card struct {
	Title   string
	Snippet string
	Href    string
}

type summaryPage struct {
	page
	Rows      []AuthorCount
	Total     int
	Discarded int
}

type articlePage struct {
	page
	Title      string
	Author     string
	Paragraphs []string
	BodyHTML   template.HTML
	Prev       *navLink
	Next       *navLink
}

type navLink struct {
	Title string
	Href  string
}

// renderer executes the embedded page templates.
type renderer struct {
	index    *template.Template
	summary  *template.Template
	article  *template.Template
	markdown goldmark.Markdown
}

func newRenderer(markdownBody bool) *renderer {
	r := &renderer{
		index:   parsePage("index.html.tmpl"),
		summary: parsePage("summary.html.tmpl"),
		article: parsePage("article.html.tmpl"),
	}

	// Raw HTML in bodies is omitted because WithUnsafe is never set.
	if markdownBody {
		r.markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	}

	return r
}

func parsePage(name string) *template.Template {
	return template.Must(template.New(name).ParseFS(templateFS, "templates/layout.html.tmpl", "templates/"+name))
}

func (r *renderer) renderIndex(base page, groups []AuthorGroup, filter Filter) (string, error) {
	data := indexPage{page: base, Filter: filter.String()}
	used := make(map[string]bool, len(groups))

	for i, g := range groups {
		section := authorSection{Author: g.Author, Anchor: uniqueAnchor(used, g.Author, i)}

		for _, a := range g.Articles {
			section.Cards = append(section.Cards, card{
				Title:   a.Title,
				Snippet: a.Snippet(models.DefaultSnippetLength),
				Href:    a.FileName(),
			})
		}

		data.Count += len(g.Articles)
		data.Sections = append(data.Sections, section)
	}

	return execute(r.index, data)
}

func (r *renderer) renderSummary(base page, counts []AuthorCount, discarded int) (string, error) {
	data := summaryPage{page: base, Rows: counts, Discarded: discarded}
	for _, c := range counts {
		data.Total += c.Count
	}

	return execute(r.summary, data)
}

func (r *renderer) renderArticle(base page, a models.Article, prev, next *models.Article) (string, error) {
	data := articlePage{
		page:   base,
		Title:  a.Title,
		Author: a.Author,
		Prev:   link(prev),
		Next:   link(next),
	}

	if r.markdown != nil {
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(a.Body), &buf); err != nil {
			return "", fmt.Errorf("markdown body %q: %w", a.Slug(), err)
		}

		data.BodyHTML = template.HTML(buf.String())
	} else {
		data.Paragraphs = paragraphs(a.Body)
	}

	return execute(r.article, data)
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}

	return buf.String(), nil
}

func link(a *models.Article) *navLink {
	if a == nil {
		return nil
	}

	return &navLink{Title: a.Title, Href: a.FileName()}
}

// paragraphs splits plain text on blank lines.
func paragraphs(body string) []string {
	var out []string

	for _, p := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// authorAnchor builds the in-page id for an author section. Authors whose
// name has no ASCII letters or digits fall back to their position.
func authorAnchor(author string, position int) string {
	if slug := models.Slugify(author); slug != "" {
		return "autor-" + slug
	}

	return "autor-" + strconv.Itoa(position+1)
}

// uniqueAnchor returns authorAnchor, suffixed with a counter starting at the
// section position when an earlier section already took the same id.
func uniqueAnchor(used map[string]bool, author string, position int) string {
	base := authorAnchor(author, position)
	anchor := base

	for n := position + 1; used[anchor]; n++ {
		anchor = base + "-" + strconv.Itoa(n)
	}

	used[anchor] = true

	return anchor
}
