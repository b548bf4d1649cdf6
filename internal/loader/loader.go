// Package loader reads raw article records from YAML lists, directories of
// Markdown files with front matter, and RSS/Atom feed files.
//
// Loaders never validate; records come back as found so the normalizer can
// decide what to keep. Feed bodies are the one exception: their HTML is
// reduced to plain text first.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/adrg/frontmatter"
	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"noticias/internal/config"
	"noticias/internal/models"
	"noticias/pkg/utils"
)

// ErrUnknownFormat is returned when the input format cannot be determined.
var ErrUnknownFormat = errors.New("unknown input format")

// document is the on-disk shape of a YAML article list.
type document struct {
	Articles []models.RawArticle `yaml:"articles"`
}

// frontMatter holds the Markdown header fields we read.
type frontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// Load reads records from path in source order using the given format.
func Load(path, format string) ([]models.RawArticle, error) {
	if format == "" || format == config.FormatAuto {
		detected, err := Detect(path)
		if err != nil {
			return nil, err
		}

		format = detected
	}

	switch format {
	case config.FormatYAML:
		return LoadYAML(path)
	case config.FormatMarkdown:
		return LoadMarkdown(path)
	case config.FormatFeed:
		return LoadFeed(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Detect picks a format from the path: directories and .md files are
// Markdown, .yaml/.yml are YAML, .xml/.rss/.atom are feeds.
func Detect(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	if info.IsDir() {
		return config.FormatMarkdown, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return config.FormatYAML, nil
	case ".md", ".markdown":
		return config.FormatMarkdown, nil
	case ".xml", ".rss", ".atom":
		return config.FormatFeed, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// LoadYAML reads a file with a top-level articles list.
func LoadYAML(path string) ([]models.RawArticle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for i := range doc.Articles {
		doc.Articles[i].Source = fmt.Sprintf("%s#%d", path, i+1)
	}

	return doc.Articles, nil
}

// LoadMarkdown reads one Markdown file, or every *.md file of a directory in
// lexical order. Title and author come from the front matter; the rest of
// the file is the body.
func LoadMarkdown(path string) ([]models.RawArticle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	files := []string{path}

	if info.IsDir() {
		files, err = filepath.Glob(filepath.Join(path, "*.md"))
		if err != nil {
			return nil, err
		}

		sort.Strings(files)
	}

	records := make([]models.RawArticle, 0, len(files))

	for _, file := range files {
		rec, err := parseMarkdownFile(file)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, nil
}

func parseMarkdownFile(path string) (models.RawArticle, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return models.RawArticle{}, err
	}

	var meta frontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return models.RawArticle{}, fmt.Errorf("parse frontmatter %s: %w", path, err)
	}

	return models.RawArticle{
		Title:  meta.Title,
		Author: meta.Author,
		Body:   string(body),
		Source: path,
	}, nil
}

// LoadFeed reads a local RSS or Atom file. The body is the item content,
// falling back to its description, reduced from HTML to plain text.
func LoadFeed(path string) ([]models.RawArticle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	feed, err := gofeed.NewParser().Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", path, err)
	}

	records := make([]models.RawArticle, 0, len(feed.Items))

	for i, item := range feed.Items {
		author := ""
		if item.Author != nil {
			author = item.Author.Name
		}

		body := HTMLText(item.Content)
		if body == "" {
			body = HTMLText(item.Description)
		}

		source := item.Link
		if source == "" {
			source = fmt.Sprintf("%s#%d", path, i+1)
		}

		records = append(records, models.RawArticle{
			Title:  item.Title,
			Author: author,
			Body:   body,
			Source: source,
		})
	}

	return records, nil
}

// blockElements end a paragraph in HTMLText output.
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "table": true, "tr": true,
	"section": true, "article": true, "figure": true, "figcaption": true,
}

// HTMLText turns an HTML fragment into plain text. Block elements become
// paragraphs separated by a blank line, whitespace inside a paragraph is
// collapsed, entities are decoded, and script/style content is dropped.
// Plain text passes through with its paragraphs intact.
func HTMLText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	var sb strings.Builder
	writeText(&sb, doc.Find("body"))

	helper := utils.NewStringHelper()

	var paragraphs []string

	for _, p := range strings.Split(sb.String(), "\n\n") {
		if p = helper.NormalizeWhitespace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	return strings.Join(paragraphs, "\n\n")
}

func writeText(sb *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		switch name := goquery.NodeName(node); {
		case name == "#text":
			sb.WriteString(node.Text())
		case name == "script" || name == "style" || name == "#comment":
			// dropped
		case name == "br":
			sb.WriteString(" ")
		case blockElements[name]:
			sb.WriteString("\n\n")
			writeText(sb, node)
			sb.WriteString("\n\n")
		default:
			writeText(sb, node)
		}
	})
}
