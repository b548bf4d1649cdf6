package normalizer

import (
	"errors"
	"strings"
	"testing"

	"noticias/internal/models"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	if v == nil {
		t.Fatal("NewValidator returned nil")
	}

	if v.Policy().MinTitle != DefaultMinTitleLength || v.Policy().MinBody != DefaultMinBodyLength {
		t.Errorf("unexpected default policy: %+v", v.Policy())
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(DefaultPolicy())

	valid := models.RawArticle{Title: "Valid Title", Author: "john doe", Body: "Valid text content OK"}
	if err := v.Validate(valid); err != nil {
		t.Errorf("Validate returned unexpected error for valid record: %v", err)
	}
}

func TestValidator_Validate_Errors(t *testing.T) {
	v := NewValidator(DefaultPolicy())

	tests := []struct {
		name      string
		rec       models.RawArticle
		wantKind  Kind
		wantField string
		wantErr   error
		wantMsg   string
	}{
		{
			name:      "Empty title",
			rec:       models.RawArticle{Author: "A B", Body: "Valid text content longer"},
			wantKind:  KindEmptyField,
			wantField: FieldTitle,
			wantErr:   ErrEmptyField,
			wantMsg:   "title is empty",
		},
		{
			name:      "Empty author",
			rec:       models.RawArticle{Title: "Valid Title", Body: "Valid text content longer"},
			wantKind:  KindEmptyField,
			wantField: FieldAuthor,
			wantErr:   ErrEmptyField,
			wantMsg:   "author is empty",
		},
		{
			name:      "Empty body",
			rec:       models.RawArticle{Title: "Valid Title", Author: "A B"},
			wantKind:  KindEmptyField,
			wantField: FieldBody,
			wantErr:   ErrEmptyField,
			wantMsg:   "body is empty",
		},
		{
			name:      "Short title",
			rec:       models.RawArticle{Title: "Short", Author: "A B", Body: "Valid text content longer"},
			wantKind:  KindTooShort,
			wantField: FieldTitle,
			wantErr:   ErrTooShort,
			wantMsg:   `title "Short" is too short`,
		},
		{
			name:      "Short body",
			rec:       models.RawArticle{Title: "Valid Title", Author: "john doe", Body: "Short"},
			wantKind:  KindTooShort,
			wantField: FieldBody,
			wantErr:   ErrTooShort,
			wantMsg:   "minimum 10 characters",
		},
		{
			name:      "Title without slug",
			rec:       models.RawArticle{Title: "¿¿¿ñññ??? !!!", Author: "A B", Body: "Valid text content longer"},
			wantKind:  KindNoSlug,
			wantField: FieldTitle,
			wantErr:   ErrNoSlug,
			wantMsg:   "usable slug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.rec)
			if err == nil {
				t.Fatal("Validate expected error but got nil")
			}

			var rej *Rejection
			if !errors.As(err, &rej) {
				t.Fatalf("Validate error %T is not *Rejection", err)
			}

			if rej.Kind != tt.wantKind || rej.Field != tt.wantField {
				t.Errorf("got kind=%s field=%s, want kind=%s field=%s", rej.Kind, rej.Field, tt.wantKind, tt.wantField)
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.wantErr)
			}

			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate error = %v, want substring %v", err, tt.wantMsg)
			}
		})
	}
}

func TestValidator_PolicyDisabled(t *testing.T) {
	v := NewValidator(Policy{Enabled: false})

	if err := v.Validate(models.RawArticle{Title: "Short", Author: "A", Body: "Tiny"}); err != nil {
		t.Errorf("disabled policy should accept short fields, got %v", err)
	}

	if err := v.Validate(models.RawArticle{Title: "Short", Author: "", Body: "Tiny"}); !errors.Is(err, ErrEmptyField) {
		t.Errorf("disabled policy must still reject empty fields, got %v", err)
	}
}

func TestValidator_CustomThresholds(t *testing.T) {
	v := NewValidator(Policy{Enabled: true, MinTitle: 3, MinBody: 50})

	err := v.Validate(models.RawArticle{Title: "Abc", Author: "A", Body: "Valid text content longer"})
	if !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected body TooShort, got %v", err)
	}

	var rej *Rejection
	if errors.As(err, &rej) && rej.Min != 50 {
		t.Errorf("Min = %d, want 50", rej.Min)
	}
}
