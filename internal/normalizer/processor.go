// Package normalizer filters, validates and normalizes raw article records.
package normalizer

import (
	"errors"
	"fmt"

	"noticias/internal/logger"
	"noticias/internal/models"
)

// Result is the outcome of one normalization run.
// Empty-field records are counted in Skipped and do not appear in Rejections.
type Result struct {
	Articles   []models.Article
	Rejections []Rejection
	Skipped    int
	Total      int
}

// String returns a one-line summary of the run.
func (r *Result) String() string {
	return fmt.Sprintf(
		"Total: %d | Accepted: %d | Rejected: %d | Skipped: %d",
		r.Total,
		len(r.Articles),
		len(r.Rejections),
		r.Skipped,
	)
}

// Processor runs trimming, validation and normalization over a record list.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	log         *logger.Logger
}

// NewProcessor creates a new processor instance. A nil logger discards output.
func NewProcessor(policy Policy, log *logger.Logger) *Processor {
	if log == nil {
		log = logger.Discard()
	}

	return &Processor{
		validator:   NewValidator(policy),
		transformer: NewTransformer(),
		log:         log,
	}
}

// Process normalizes records in order. Invalid records are dropped and
// reported in the result; the input slice is never modified.
func (p *Processor) Process(records []models.RawArticle) *Result {
	result := &Result{
		Articles:   make([]models.Article, 0, len(records)),
		Rejections: []Rejection{},
		Total:      len(records),
	}

	for i, raw := range records {
		// 1. Trim
		rec := p.transformer.Trim(raw)

		// 2. Validate
		if err := p.validator.Validate(rec); err != nil {
			var rej *Rejection
			if !errors.As(err, &rej) {
				p.log.Error("unexpected validation error", "index", i, "error", err)
				continue
			}

			rej.Index = i

			if rej.Kind == KindEmptyField {
				result.Skipped++
				p.log.Debug("record skipped", "index", i, "field", rej.Field, "source", rej.Source)

				continue
			}

			result.Rejections = append(result.Rejections, *rej)
			p.log.Warn("record rejected", "index", i, "kind", string(rej.Kind), "field", rej.Field, "reason", rej.Error())

			continue
		}

		// 3. Normalize
		result.Articles = append(result.Articles, p.transformer.Transform(rec))
	}

	p.log.Info("normalization complete", "total", result.Total, "accepted", len(result.Articles),
		"rejected", len(result.Rejections), "skipped", result.Skipped)

	return result
}
