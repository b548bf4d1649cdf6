package site

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"noticias/internal/models"
	"noticias/pkg/utils"
)

// Filter narrows the index page. Zero fields match everything.
type Filter struct {
	Keyword string
	Initial string
}

// IsZero reports whether the filter matches every article.
func (f Filter) IsZero() bool {
	return f.Keyword == "" && strings.TrimSpace(f.Initial) == ""
}

// String describes the filter for page headings and logs.
func (f Filter) String() string {
	var parts []string

	if f.Keyword != "" {
		parts = append(parts, fmt.Sprintf("palabra clave %q", f.Keyword))
	}

	if i := strings.TrimSpace(f.Initial); i != "" {
		parts = append(parts, fmt.Sprintf("inicial de apellido %q", i))
	}

	return strings.Join(parts, ", ")
}

// AuthorGroup is one author's articles in original order.
type AuthorGroup struct {
	Author   string
	Articles []models.Article
}

// AuthorCount is one row of the summary page.
type AuthorCount struct {
	Author string
	Count  int
}

// FilterByKeyword returns articles whose body contains keyword, ignoring case.
func (b *Builder) FilterByKeyword(keyword string) []models.Article {
	return FilterByKeyword(b.articles, keyword)
}

// FilterByInitial returns articles whose author surname starts with letter.
func (b *Builder) FilterByInitial(letter string) []models.Article {
	return FilterByInitial(b.articles, letter)
}

// Apply runs both filters of f over the accepted articles.
func (b *Builder) Apply(f Filter) []models.Article {
	return FilterByInitial(FilterByKeyword(b.articles, f.Keyword), f.Initial)
}

// GroupByAuthor groups all accepted articles by author.
func (b *Builder) GroupByAuthor() []AuthorGroup {
	return GroupByAuthor(b.articles)
}

// Summary counts accepted articles per author in first-seen order.
func (b *Builder) Summary() []AuthorCount {
	groups := GroupByAuthor(b.articles)
	counts := make([]AuthorCount, 0, len(groups))

	for _, g := range groups {
		counts = append(counts, AuthorCount{Author: g.Author, Count: len(g.Articles)})
	}

	return counts
}

// Neighbors returns the articles before and after slug in the full accepted
// ordering. Either is nil at the ends; both are nil for an unknown slug.
func (b *Builder) Neighbors(slug string) (prev, next *models.Article) {
	for i := range b.articles {
		if b.articles[i].Slug() != slug {
			continue
		}

		if i > 0 {
			p := b.articles[i-1]
			prev = &p
		}

		if i < len(b.articles)-1 {
			n := b.articles[i+1]
			next = &n
		}

		return prev, next
	}

	return nil, nil
}

// FilterByKeyword returns the articles whose lowercased body contains the
// lowercased keyword. The keyword is used as given, spaces included; only
// the empty string returns every article.
func FilterByKeyword(articles []models.Article, keyword string) []models.Article {
	if keyword == "" {
		return append([]models.Article(nil), articles...)
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(keyword)

	var out []models.Article

	for _, a := range articles {
		if strings.Contains(lower.String(a.Body), needle) {
			out = append(out, a)
		}
	}

	return out
}

// FilterByInitial returns the articles whose surname, the last token of the
// author, starts with the first letter of letter, ignoring case. Single-word
// authors are their own surname. An empty letter returns every article.
func FilterByInitial(articles []models.Article, letter string) []models.Article {
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return append([]models.Article(nil), articles...)
	}

	want, _ := utf8.DecodeRuneInString(letter)
	helper := utils.NewStringHelper()

	var out []models.Article

	for _, a := range articles {
		surname := helper.LastField(a.Author)
		if surname == "" {
			continue
		}

		got, _ := utf8.DecodeRuneInString(surname)
		if strings.EqualFold(string(got), string(want)) {
			out = append(out, a)
		}
	}

	return out
}

// GroupByAuthor groups articles by exact author string, keeping authors in
// first-seen order and articles in their original order within each group.
func GroupByAuthor(articles []models.Article) []AuthorGroup {
	index := make(map[string]int)

	var groups []AuthorGroup

	for _, a := range articles {
		i, ok := index[a.Author]
		if !ok {
			i = len(groups)
			index[a.Author] = i
			groups = append(groups, AuthorGroup{Author: a.Author})
		}

		groups[i].Articles = append(groups[i].Articles, a)
	}

	return groups
}
