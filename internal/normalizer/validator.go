package normalizer

import (
	"errors"
	"fmt"

	"noticias/internal/models"
	"noticias/pkg/utils"
)

// Validation errors.
var (
	ErrEmptyField = errors.New("field is empty")
	ErrTooShort   = errors.New("field is too short")
	ErrNoSlug     = errors.New("title does not produce a usable slug")
)

// Kind classifies why a record was dropped.
type Kind string

// Rejection kinds.
const (
	KindEmptyField Kind = "EmptyField"
	KindTooShort   Kind = "TooShort"
	KindNoSlug     Kind = "NoSlug"
)

// Field names used in rejections.
const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldBody   = "body"
)

// Default minimum lengths, in runes.
const (
	DefaultMinTitleLength = 10
	DefaultMinBodyLength  = 10
)

// Rejection describes a dropped record.
type Rejection struct {
	Kind   Kind
	Field  string
	Value  string
	Source string
	Min    int
	Index  int
}

// Error implements error.
func (r *Rejection) Error() string {
	switch r.Kind {
	case KindTooShort:
		return fmt.Sprintf("record %d: %s %q is too short (minimum %d characters)", r.Index, r.Field, r.Value, r.Min)
	case KindEmptyField:
		return fmt.Sprintf("record %d: %s is empty", r.Index, r.Field)
	case KindNoSlug:
		return fmt.Sprintf("record %d: title %q does not produce a usable slug", r.Index, r.Value)
	default:
		return fmt.Sprintf("record %d: rejected (%s)", r.Index, r.Kind)
	}
}

// Unwrap exposes the sentinel matching the rejection kind.
func (r *Rejection) Unwrap() error {
	switch r.Kind {
	case KindEmptyField:
		return ErrEmptyField
	case KindTooShort:
		return ErrTooShort
	case KindNoSlug:
		return ErrNoSlug
	default:
		return nil
	}
}

// Policy configures the minimum length check.
// Some inputs skip it entirely, so it can be switched off.
type Policy struct {
	Enabled  bool `yaml:"enabled"`
	MinTitle int  `yaml:"min_title_length"`
	MinBody  int  `yaml:"min_body_length"`
}

// DefaultPolicy enforces 10-character titles and bodies.
func DefaultPolicy() Policy {
	return Policy{
		Enabled:  true,
		MinTitle: DefaultMinTitleLength,
		MinBody:  DefaultMinBodyLength,
	}
}

// Validator checks trimmed records against the emptiness and length rules.
type Validator struct {
	policy  Policy
	strings *utils.StringHelper
}

// NewValidator creates a new validator instance.
func NewValidator(policy Policy) *Validator {
	return &Validator{
		policy:  policy,
		strings: utils.NewStringHelper(),
	}
}

// Policy returns the active length policy.
func (v *Validator) Policy() Policy {
	return v.policy
}

// Validate checks a trimmed record. It returns a *Rejection or nil.
// Title is checked before author and body.
func (v *Validator) Validate(rec models.RawArticle) error {
	fields := []struct {
		name  string
		value string
	}{
		{FieldTitle, rec.Title},
		{FieldAuthor, rec.Author},
		{FieldBody, rec.Body},
	}

	for _, f := range fields {
		if f.value == "" {
			return &Rejection{Kind: KindEmptyField, Field: f.name, Source: rec.Source}
		}
	}

	if v.policy.Enabled {
		if v.strings.RuneLen(rec.Title) < v.policy.MinTitle {
			return &Rejection{Kind: KindTooShort, Field: FieldTitle, Value: rec.Title, Min: v.policy.MinTitle, Source: rec.Source}
		}

		if v.strings.RuneLen(rec.Body) < v.policy.MinBody {
			return &Rejection{Kind: KindTooShort, Field: FieldBody, Value: rec.Body, Min: v.policy.MinBody, Source: rec.Source}
		}
	}

	if models.Slugify(rec.Title) == "" {
		return &Rejection{Kind: KindNoSlug, Field: FieldTitle, Value: rec.Title, Source: rec.Source}
	}

	return nil
}
