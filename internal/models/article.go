// Package models defines the data structures shared by the normalizer and the site builder.
package models

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultSnippetLength is the preview length used on index cards.
const DefaultSnippetLength = 300

// Ellipsis marks a truncated snippet.
const Ellipsis = "…"

// slugSeparators matches every run of characters that cannot appear in a slug.
var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// RawArticle is an unvalidated candidate record as supplied by a loader.
type RawArticle struct {
	Title  string `yaml:"title" json:"title"`
	Author string `yaml:"author" json:"author"`
	Body   string `yaml:"body" json:"body"`
	// Source identifies where the record came from (file path, feed link).
	Source string `yaml:"-" json:"source,omitempty"`
}

// Article is an accepted, normalized piece of content.
// Values are built by the normalizer and never modified afterwards.
type Article struct {
	Title  string `yaml:"title" json:"title"`
	Author string `yaml:"author" json:"author"`
	Body   string `yaml:"body" json:"body"`
}

// NewArticle creates an article from already normalized fields.
func NewArticle(title, author, body string) Article {
	return Article{Title: title, Author: author, Body: body}
}

// Snippet returns the body cut to length runes, followed by an ellipsis
// when something was cut. A length of zero or less yields only the ellipsis.
func (a Article) Snippet(length int) string {
	if length < 0 {
		length = 0
	}

	if utf8.RuneCountInString(a.Body) <= length {
		return a.Body
	}

	runes := []rune(a.Body)

	return string(runes[:length]) + Ellipsis
}

// Slug returns the filename-safe form of the title.
func (a Article) Slug() string {
	return Slugify(a.Title)
}

// FileName is the page name the article is written to.
func (a Article) FileName() string {
	return a.Slug() + ".html"
}

// Slugify lowercases text and collapses every run of characters outside
// [a-z0-9] into a single hyphen, trimming hyphens at both ends.
// Letters outside ASCII are treated as separators, not transliterated.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugSeparators.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
