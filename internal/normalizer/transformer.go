package normalizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"noticias/internal/models"
	"noticias/pkg/utils"
)

// Transformer trims raw records and builds normalized articles.
type Transformer struct {
	lower   cases.Caser
	strings *utils.StringHelper
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{
		lower:   cases.Lower(language.Und),
		strings: utils.NewStringHelper(),
	}
}

// Trim returns a copy of rec with every field trimmed and in NFC form.
func (t *Transformer) Trim(rec models.RawArticle) models.RawArticle {
	return models.RawArticle{
		Title:  t.clean(rec.Title),
		Author: t.clean(rec.Author),
		Body:   t.clean(rec.Body),
		Source: rec.Source,
	}
}

// NormalizeAuthor capitalizes each whitespace-separated token: first letter
// upper, the rest lower. Tokens are joined with single spaces. No name-aware
// exceptions apply, so "de la cruz" becomes "De La Cruz".
func (t *Transformer) NormalizeAuthor(author string) string {
	tokens := strings.Fields(author)
	for i, tok := range tokens {
		tokens[i] = t.capitalize(tok)
	}

	return strings.Join(tokens, " ")
}

// Transform builds an article from a trimmed, validated record.
func (t *Transformer) Transform(rec models.RawArticle) models.Article {
	return models.NewArticle(rec.Title, t.NormalizeAuthor(rec.Author), rec.Body)
}

func (t *Transformer) clean(s string) string {
	return t.strings.TrimWhitespace(norm.NFC.String(s))
}

func (t *Transformer) capitalize(tok string) string {
	r, size := utf8.DecodeRuneInString(tok)
	if r == utf8.RuneError && size <= 1 {
		return t.lower.String(tok)
	}

	return string(unicode.ToTitle(r)) + t.lower.String(tok[size:])
}
